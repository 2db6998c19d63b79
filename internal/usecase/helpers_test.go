package usecase

import (
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/polkiloo/storeadmin/internal/config"
	"github.com/polkiloo/storeadmin/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		SessionTTL:      time.Hour,
		OrdersPageSize:  2,
		CollationLocale: "en",
	}
}

func testSession(id string) *model.Session {
	return &model.Session{
		ID:           id,
		Operator:     model.Operator{ID: "1", Email: "ops@shop.io"},
		BackendToken: "backend-" + id,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func strPtr(s string) *string { return &s }

func orderRecord(id, status, createdAt string) model.OrderRecord {
	return model.OrderRecord{
		OrderID:      json.RawMessage(id),
		CustomerName: strPtr("Customer " + id),
		Status:       strPtr(status),
		CreatedAt:    strPtr(createdAt),
		TotalAmount:  json.RawMessage(`"10.00"`),
	}
}
