package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/orderview"
)

const (
	opLogin             = "log in"
	opListOrders        = "load orders"
	opUpdateOrderStatus = "update order status"
	opListCustomers     = "load customers"
	opListNotifications = "load notifications"
	opUnreadCount       = "load unread notifications"
	opMarkRead          = "mark notification read"
)

// Client exposes the storefront backend operations used by the admin console.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ListOrders(ctx context.Context, token string) ([]model.OrderRecord, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status model.OrderStatus) error
	ListCustomers(ctx context.Context, token string) ([]model.CustomerRecord, error)
	ListNotifications(ctx context.Context, token string) ([]model.Notification, error)
	UnreadNotifications(ctx context.Context, token string) (int, error)
	MarkNotificationRead(ctx context.Context, token, id string) error
}

// LoginResult carries the bearer token and operator returned by the backend.
type LoginResult struct {
	Token    string
	Operator model.Operator
}

// HTTPClient implements Client over the backend REST API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    json.RawMessage `json:"id"`
		Name  string          `json:"name"`
		Email string          `json:"email"`
		Role  string          `json:"role"`
	} `json:"user"`
}

type statusRequest struct {
	Status model.OrderStatus `json:"status"`
}

type notificationRecord struct {
	ID        json.RawMessage `json:"id"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Read      bool            `json:"is_read"`
	CreatedAt string          `json:"created_at"`
}

type unreadResponse struct {
	Count       *int `json:"count"`
	UnreadCount *int `json:"unread_count"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewHTTPClient creates a backend client with the given request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("backend url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Login exchanges operator credentials for a backend bearer token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var resp loginResponse
	if err := c.do(ctx, opLogin, http.MethodPost, "", loginRequest{Email: email, Password: password}, &resp, "api", "auth", "login"); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &DecodeError{Op: opLogin, Err: errors.New("missing token")}
	}
	return &LoginResult{
		Token: resp.Token,
		Operator: model.Operator{
			ID:    model.RawText(resp.User.ID),
			Name:  resp.User.Name,
			Email: resp.User.Email,
			Role:  resp.User.Role,
		},
	}, nil
}

// ListOrders fetches every order visible to the operator.
func (c *HTTPClient) ListOrders(ctx context.Context, token string) ([]model.OrderRecord, error) {
	var body json.RawMessage
	if err := c.do(ctx, opListOrders, http.MethodGet, token, nil, &body, "api", "admin", "orders"); err != nil {
		return nil, err
	}
	var records []model.OrderRecord
	if err := decodeList(body, "orders", &records); err != nil {
		return nil, &DecodeError{Op: opListOrders, Err: err}
	}
	return records, nil
}

// UpdateOrderStatus requests an in-place status change. A nil error means the
// backend accepted it; otherwise the error carries the reason.
func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, token, orderID string, status model.OrderStatus) error {
	return c.do(ctx, opUpdateOrderStatus, http.MethodPut, token, statusRequest{Status: status}, nil, "api", "admin", "orders", orderID, "status")
}

// ListCustomers fetches every customer.
func (c *HTTPClient) ListCustomers(ctx context.Context, token string) ([]model.CustomerRecord, error) {
	var body json.RawMessage
	if err := c.do(ctx, opListCustomers, http.MethodGet, token, nil, &body, "api", "admin", "customers"); err != nil {
		return nil, err
	}
	var records []model.CustomerRecord
	if err := decodeList(body, "customers", &records); err != nil {
		return nil, &DecodeError{Op: opListCustomers, Err: err}
	}
	return records, nil
}

// ListNotifications fetches the operator's notifications.
func (c *HTTPClient) ListNotifications(ctx context.Context, token string) ([]model.Notification, error) {
	var body json.RawMessage
	if err := c.do(ctx, opListNotifications, http.MethodGet, token, nil, &body, "api", "admin", "notifications"); err != nil {
		return nil, err
	}
	var records []notificationRecord
	if err := decodeList(body, "notifications", &records); err != nil {
		return nil, &DecodeError{Op: opListNotifications, Err: err}
	}
	result := make([]model.Notification, 0, len(records))
	for _, r := range records {
		result = append(result, model.Notification{
			ID:        model.RawText(r.ID),
			Title:     r.Title,
			Message:   r.Message,
			Read:      r.Read,
			CreatedAt: orderview.ParseTime(r.CreatedAt),
		})
	}
	return result, nil
}

// UnreadNotifications returns the number of unread notifications.
func (c *HTTPClient) UnreadNotifications(ctx context.Context, token string) (int, error) {
	var resp unreadResponse
	if err := c.do(ctx, opUnreadCount, http.MethodGet, token, nil, &resp, "api", "admin", "notifications", "unread-count"); err != nil {
		return 0, err
	}
	switch {
	case resp.Count != nil:
		return *resp.Count, nil
	case resp.UnreadCount != nil:
		return *resp.UnreadCount, nil
	default:
		return 0, &DecodeError{Op: opUnreadCount, Err: errors.New("missing count")}
	}
}

// MarkNotificationRead flags one notification as read.
func (c *HTTPClient) MarkNotificationRead(ctx context.Context, token, id string) error {
	return c.do(ctx, opMarkRead, http.MethodPut, token, nil, nil, "api", "admin", "notifications", id, "read")
}

func (c *HTTPClient) do(ctx context.Context, op, method, token string, payload, out any, segments ...string) error {
	endpoint, err := c.endpoint(segments...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("backend request failed",
			slog.String("op", op),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return &APIError{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(body, op)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

// endpoint appends segments to the base URL. Each segment is escaped, so an
// identifier can never address a different backend resource.
func (c *HTTPClient) endpoint(segments ...string) (string, error) {
	u := *c.baseURL
	plain := strings.TrimSuffix(u.Path, "/")
	escaped := strings.TrimSuffix(u.EscapedPath(), "/")
	for _, segment := range segments {
		if segment == "" || segment == "." || segment == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidID, segment)
		}
		plain += "/" + segment
		escaped += "/" + url.PathEscape(segment)
	}
	u.Path = plain
	u.RawPath = escaped
	return u.String(), nil
}

func errorMessage(body []byte, op string) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return GenericMessage(op)
}

// decodeList accepts either a bare JSON array or an object wrapping the array
// under key or "data".
func decodeList(body json.RawMessage, key string, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return err
		}
		list, ok := wrapped[key]
		if !ok {
			list, ok = wrapped["data"]
		}
		if !ok {
			return fmt.Errorf("missing %q list", key)
		}
		trimmed = list
	}
	return json.Unmarshal(trimmed, out)
}
