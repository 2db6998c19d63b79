package backend

import (
	"errors"
	"fmt"
)

// ErrInvalidID reports an identifier that cannot be used as a URL path segment.
var ErrInvalidID = errors.New("invalid identifier")

// TransportError reports a request that never produced an HTTP response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports a non-2xx response. Message comes from the body's error or
// message field, or a generic "failed to <op>" when the body has neither.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

// DecodeError reports a 2xx response whose body could not be parsed.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: invalid response body: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// GenericMessage is the fallback text shown for a failed operation.
func GenericMessage(op string) string {
	return "failed to " + op
}
