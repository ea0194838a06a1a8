package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// Page size bounds for keyset-paginated listings.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// cursorFieldCreatedAt is the only sort key listings page on.
const cursorFieldCreatedAt = "created_at"

// Cursor errors.
var (
	// ErrInvalidCursor is returned when a cursor cannot be decoded.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrNoCursor marks a first-page request.
	ErrNoCursor = errors.New("no cursor provided")
)

// PaginationRequest is the ?cursor=&limit= query of a listing.
type PaginationRequest struct {
	// Cursor is the opaque NextCursor of the previous page.
	Cursor string `form:"cursor"`

	Limit int `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit clamped to [1, MaxLimit], DefaultLimit when unset.
func (p *PaginationRequest) GetLimit() int {
	switch {
	case p.Limit <= 0:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}

// DecodeCursor decodes the cursor. It returns ErrNoCursor when none was sent.
func (p *PaginationRequest) DecodeCursor() (*CursorData, error) {
	return DecodeCursor(p.Cursor)
}

// ToPageRequest converts the query into a repository page request.
func (p *PaginationRequest) ToPageRequest() (ports.PageRequest, error) {
	page := ports.PageRequest{Limit: p.GetLimit()}

	cursor, err := p.DecodeCursor()
	if errors.Is(err, ErrNoCursor) {
		return page, nil
	}
	if err != nil {
		return page, err
	}

	if cursor.Field != cursorFieldCreatedAt || cursor.ID == "" {
		return page, ErrInvalidCursor
	}
	createdAt, err := time.Parse(time.RFC3339Nano, cursor.Value)
	if err != nil {
		return page, ErrInvalidCursor
	}

	page.After = &ports.PageCursor{CreatedAt: createdAt, ID: cursor.ID}
	return page, nil
}

// PaginatedResponse is one page of a listing.
type PaginatedResponse[T any] struct {
	Items []T `json:"items"`

	// NextCursor is empty on the last page.
	NextCursor string `json:"nextCursor,omitempty"`

	HasMore bool `json:"hasMore"`
}

// NewPaginatedResponse builds a page from up to limit+1 items; the extra
// item only signals that another page exists.
func NewPaginatedResponse[T any](items []T, limit int, cursorBuilder func(T) *CursorData) *PaginatedResponse[T] {
	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}
	if items == nil {
		items = []T{}
	}

	var next string
	if hasMore && len(items) > 0 && cursorBuilder != nil {
		next = EncodeCursor(cursorBuilder(items[len(items)-1]))
	}

	return &PaginatedResponse[T]{Items: items, NextCursor: next, HasMore: hasMore}
}

// CursorData is the decoded form of a cursor: sort field, sort value and
// the row id as tie-breaker.
type CursorData struct {
	Field string `json:"f"`
	Value string `json:"v"`
	ID    string `json:"id"`
}

// NewCursor creates cursor data.
func NewCursor(field, value, id string) *CursorData {
	return &CursorData{Field: field, Value: value, ID: id}
}

// CreatedAtCursor positions a cursor after the row created at createdAt.
func CreatedAtCursor(createdAt time.Time, id string) *CursorData {
	return NewCursor(cursorFieldCreatedAt, createdAt.UTC().Format(time.RFC3339Nano), id)
}

// EncodeCursor encodes data as URL-safe base64 JSON.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	b, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(b)
}

// DecodeCursor reverses EncodeCursor. It returns ErrNoCursor for "".
func DecodeCursor(encoded string) (*CursorData, error) {
	if encoded == "" {
		return nil, ErrNoCursor
	}

	b, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}
