package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/disaster-response/internal/adapters/clients"
	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// BaseAdapter provides common functionality for ACL adapters.
// Embed this in upstream-specific adapters. It also satisfies
// ports.HealthChecker by reporting the client's circuit breaker.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a base adapter named after the client's upstream.
func NewBaseAdapter(client *clients.Client) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: client.ServiceName(),
	}
}

// Client returns the underlying HTTP client.
func (a *BaseAdapter) Client() *clients.Client {
	return a.client
}

// ServiceName returns the name of the upstream.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Name implements ports.HealthChecker.
func (a *BaseAdapter) Name() string {
	return a.serviceName
}

// Check implements ports.HealthChecker. An upstream is unready while its
// circuit is open; no request is sent.
func (a *BaseAdapter) Check(_ context.Context) error {
	return a.client.CircuitErr()
}

// DoRequest executes req and returns the successful response. The caller
// closes the body. Failures are mapped to domain errors.
func (a *BaseAdapter) DoRequest(ctx context.Context, req *http.Request, operation string) (*http.Response, error) {
	resp, err := a.client.Do(ctx, req)
	return a.checkResponse(resp, err, operation)
}

// Get performs a GET request and returns the successful response.
func (a *BaseAdapter) Get(ctx context.Context, path, operation string) (*http.Response, error) {
	resp, err := a.client.Get(ctx, path)
	return a.checkResponse(resp, err, operation)
}

// Post performs a JSON POST request and returns the response body.
func (a *BaseAdapter) Post(ctx context.Context, path string, body io.Reader, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Post(ctx, path, body)
	resp, err = a.checkResponse(resp, err, operation)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// PostJSON marshals payload and posts it.
func (a *BaseAdapter) PostJSON(ctx context.Context, path string, payload any, operation string) (io.ReadCloser, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", operation, err)
	}
	return a.Post(ctx, path, bytes.NewReader(buf), operation)
}

func (a *BaseAdapter) checkResponse(resp *http.Response, err error, operation string) (*http.Response, error) {
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, operation)
	}

	return resp, nil
}

// DecodeResponse reads and decodes a JSON response body into the target type.
// Closes the body after reading.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// ValidateRequired checks that a required upstream field is not empty.
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return domain.NewValidationError(fieldName, "is required")
	}

	return nil
}

// Translator converts an external DTO to a domain type, validating it on the way.
type Translator[External any, Domain any] func(ext *External) (*Domain, error)

// TranslateSlice applies translate to each item, skipping the ones it
// rejects, and returns how many were skipped.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, int) {
	result := make([]D, 0, len(items))
	skipped := 0

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			skipped++
			continue
		}

		result = append(result, *translated)
	}

	return result, skipped
}
