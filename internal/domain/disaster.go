package domain

import (
	"strings"
	"time"
)

// Disaster is an incident being coordinated.
type Disaster struct {
	ID           string
	Title        string
	LocationName string
	Description  string
	Tags         []string
	Location     Point
	OwnerID      string
	AuditTrail   []AuditEntry
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDisaster is the caller-supplied part of a disaster. LocationName may be
// empty when Description is set; it is then extracted from the description.
type NewDisaster struct {
	Title        string
	LocationName string
	Description  string
	Tags         []string
}

// Validate checks the presence rules for a new disaster.
func (n NewDisaster) Validate() error {
	if err := ValidateTitle(n.Title); err != nil {
		return err
	}
	if strings.TrimSpace(n.LocationName) == "" && strings.TrimSpace(n.Description) == "" {
		return NewValidationError("location_name", "location_name or description is required")
	}
	return nil
}

// DisasterUpdate is a partial update; nil fields are left unchanged.
type DisasterUpdate struct {
	Title       *string
	Description *string
	Tags        []string
	TagsSet     bool
}

// Validate rejects a title that is present but blank.
func (u DisasterUpdate) Validate() error {
	if u.Title != nil {
		return ValidateTitle(*u.Title)
	}
	return nil
}

// Empty reports whether the update changes nothing.
func (u DisasterUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && !u.TagsSet
}

// DisasterFilter narrows a disaster listing.
type DisasterFilter struct {
	// Tag keeps disasters whose tags contain this exact value.
	Tag string
}

// ValidateTitle requires a non-blank title.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "Title is required and must be a non-empty string.")
	}
	return nil
}
