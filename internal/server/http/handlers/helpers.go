package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeadmin/internal/adapter/backend"
	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/server/http/dto"
	"github.com/polkiloo/storeadmin/internal/server/http/middleware"
)

const invalidBackendResponse = "invalid response from backend"

// CurrentSession extracts the authenticated session from context.
func CurrentSession(c *gin.Context) *model.Session {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return nil
	}
	session, _ := val.(*model.Session)
	return session
}

// respondError maps err to a status code and writes the error body.
func respondError(c *gin.Context, err error) {
	status, message := errorStatus(err)
	c.JSON(status, dto.ErrorResponse{Error: message})
}

func errorStatus(err error) (int, string) {
	var (
		decodeErr    *backend.DecodeError
		transportErr *backend.TransportError
		apiErr       *backend.APIError
	)

	switch {
	case errors.As(err, &decodeErr):
		return http.StatusBadGateway, invalidBackendResponse
	case errors.As(err, &transportErr):
		return http.StatusBadGateway, backend.GenericMessage(transportErr.Op)
	case errors.As(err, &apiErr):
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusNotFound, http.StatusBadRequest, http.StatusUnprocessableEntity:
			return apiErr.StatusCode, apiErr.Message
		default:
			return http.StatusBadGateway, apiErr.Message
		}
	case errors.Is(err, domainErrors.ErrInvalidCredentials),
		errors.Is(err, domainErrors.ErrSessionExpired):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidFilter):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, backend.ErrInvalidID):
		return http.StatusBadRequest, backend.ErrInvalidID.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
