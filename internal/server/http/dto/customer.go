package dto

import "github.com/polkiloo/storeadmin/internal/domain/model"

// CustomerListQuery is the query string of the customer list endpoint.
type CustomerListQuery struct {
	Search string `form:"search"`
	Sort   string `form:"sort"`
}

// CustomerListResponse lists customers in the requested order.
type CustomerListResponse struct {
	Customers []model.Customer `json:"customers"`
	Count     int              `json:"count"`
}
