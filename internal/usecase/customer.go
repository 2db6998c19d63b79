package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/polkiloo/storeadmin/internal/adapter/backend"
	"github.com/polkiloo/storeadmin/internal/config"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/orderview"
)

// CustomerUseCase lists customers with search and sorting.
type CustomerUseCase struct {
	backend backend.Client
	locale  language.Tag
}

// NewCustomerUseCase constructs CustomerUseCase. An unparseable locale falls
// back to English collation.
func NewCustomerUseCase(client backend.Client, cfg *config.Config, logger *slog.Logger) *CustomerUseCase {
	locale, err := language.Parse(cfg.CollationLocale)
	if err != nil {
		logger.Warn("unknown collation locale, using en",
			slog.String("locale", cfg.CollationLocale),
			slog.String("error", err.Error()),
		)
		locale = language.English
	}
	return &CustomerUseCase{backend: client, locale: locale}
}

// List fetches customers, keeps those matching search, and sorts them by key.
func (u *CustomerUseCase) List(ctx context.Context, session *model.Session, search, key string) ([]model.Customer, error) {
	records, err := u.backend.ListCustomers(ctx, session.BackendToken)
	if err != nil {
		return nil, err
	}
	customers := orderview.FilterCustomers(orderview.NormalizeCustomers(records), search)
	orderview.SortCustomers(customers, orderview.ParseCustomerSort(key), u.locale)
	return customers, nil
}
