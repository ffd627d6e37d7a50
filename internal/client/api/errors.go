package api

import "errors"

// ErrUnavailable wraps transport-level failures (connection refused, DNS,
// timeout). It deliberately carries no server message because none arrived.
var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx response from the portal. Message is the server's
// `message` field when present, so the UI can surface it verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "request failed"
}

// ErrorMessage extracts a user-facing message from err: the server-provided
// message for API errors, fallback otherwise.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
