package acl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/disaster-response/internal/adapters/clients"
	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// maxErrorBody caps how much of an upstream error body is read.
const maxErrorBody = 64 << 10

// ErrorResponse is the normalized error body of an upstream API.
//
// Supported shapes:
//
//	Google APIs: {"error":{"code":400,"message":"...","status":"INVALID_ARGUMENT"}}
//	XRPC:        {"error":"ExpiredToken","message":"..."}
//	Mapbox:      {"message":"..."}
type ErrorResponse struct {
	Code    string
	Message string
}

type errorEnvelope struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

type googleError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ParseErrorResponse attempts to parse an error response body.
// Returns nil if the body is empty or cannot be parsed.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var env errorEnvelope
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&env); err != nil {
		return nil
	}

	resp := &ErrorResponse{Message: env.Message}

	raw := bytes.TrimSpace(env.Error)
	switch {
	case len(raw) == 0:
	case raw[0] == '{':
		var g googleError
		if err := json.Unmarshal(raw, &g); err == nil {
			resp.Code = g.Status
			if g.Message != "" {
				resp.Message = g.Message
			}
		}
	case raw[0] == '"':
		_ = json.Unmarshal(raw, &resp.Code)
	}

	if resp.Code == "" && resp.Message == "" {
		return nil
	}

	return resp
}

// StatusError is a non-2xx upstream response. It unwraps to
// domain.ErrUnavailable: an upstream refusal is never the caller's fault.
type StatusError struct {
	Service string
	Status  int
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s returned %d (%s): %s", e.Service, e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("%s returned %d: %s", e.Service, e.Status, e.Message)
}

func (e *StatusError) Unwrap() error {
	return domain.ErrUnavailable
}

// MapHTTPError maps a failed upstream call to a domain error.
//
//   - resp: the HTTP response (nil for transport errors)
//   - clientErr: any error from the HTTP client
//   - serviceName: the upstream, used in error context
//   - operation: what was being done, e.g. "geocode", "search posts"
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	statusErr := &StatusError{
		Service: serviceName,
		Status:  resp.StatusCode,
		Message: defaultMessageForStatus(resp.StatusCode, operation),
	}
	if errResp := ParseErrorResponse(resp.Body); errResp != nil {
		statusErr.Code = errResp.Code
		if errResp.Message != "" {
			statusErr.Message = errResp.Message
		}
	}

	return statusErr
}

// IsAuthError reports whether err is an upstream rejection of the
// credentials sent, either by status or by an expired-token code.
func IsAuthError(err error) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	return statusErr.Status == http.StatusUnauthorized || statusErr.Code == "ExpiredToken"
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))

	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusForbidden:
		return "access denied"
	case http.StatusUnauthorized:
		return "authentication required"
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}
