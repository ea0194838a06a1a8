// Package dto provides the request and response shapes of the HTTP API and
// the error envelope shared by every endpoint.
package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details carries field-level messages for validation errors.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeConflict     = "CONFLICT"
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeForbidden    = "FORBIDDEN"
	ErrorCodeUnauthorized = "UNAUTHORIZED"
	ErrorCodeUnavailable  = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal     = "INTERNAL_ERROR"
	ErrorCodeTimeout      = "TIMEOUT"
	ErrorCodeBadRequest   = "BAD_REQUEST"
)

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// MapError maps err to a status and envelope. Client errors keep their own
// message; everything else is reported as a 500 with internalMessage so no
// upstream or database detail leaks.
func MapError(err error, internalMessage string) (int, *ErrorResponse) {
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, ErrBinding):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeBadRequest, "Invalid request body.")

	case IsValidationError(err):
		return http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation, "request validation failed", ValidationErrors(err))

	case errors.As(err, &validationErr):
		resp := NewErrorResponse(ErrorCodeValidation, validationErr.Message)
		if validationErr.Field != "" {
			resp.Error.Details = map[string]string{validationErr.Field: validationErr.Message}
		}
		return http.StatusBadRequest, resp

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timed out")

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, notFoundMessage(err))

	case domain.IsForbidden(err):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeForbidden, err.Error())

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, err.Error())

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, internalMessage)
	}
}

// notFoundMessage renders "Disaster not found" style messages.
func notFoundMessage(err error) string {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) && nf.Entity != "" {
		return strings.ToUpper(nf.Entity[:1]) + nf.Entity[1:] + " not found"
	}
	return "Not found"
}

// HandleError writes the error envelope for err. Server-side failures are
// logged with the request-scoped logger.
func HandleError(c *gin.Context, err error, internalMessage string) {
	HandleErrorAs(c, err, internalMessage, func(resp *ErrorResponse) any { return resp })
}

// HandleErrorAs is HandleError for endpoints whose error body wraps the
// standard envelope.
func HandleErrorAs(c *gin.Context, err error, internalMessage string, wrap func(*ErrorResponse) any) {
	status, resp := MapError(err, internalMessage)
	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), internalMessage,
			slog.Any("error", err),
			slog.String("route", c.FullPath()),
		)
	}

	c.JSON(status, wrap(resp))
}

// AbortWithCode aborts the handler chain with the given code and message.
func AbortWithCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// GetTraceID returns the active OpenTelemetry trace id, or "".
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}
	return ""
}
