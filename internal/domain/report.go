package domain

import (
	"strings"
	"time"
)

// StatusPending is the verification status of a report nobody has verified.
const StatusPending = "pending"

// Report is a user- or feed-sourced submission about a disaster.
type Report struct {
	ID         string
	DisasterID string
	UserID     string
	Content    string
	ImageURL   string
	// SourceURI identifies the feed post a report was ingested from; empty
	// for user submissions.
	SourceURI string

	// VerificationStatus is "pending" until an image is verified, then the
	// model's assessment text.
	VerificationStatus string
	VerificationLabel  VerificationLabel
	AuditTrail         []AuditEntry
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewReport is a report to insert or, when SourceURI is set, upsert.
type NewReport struct {
	DisasterID string
	UserID     string
	Content    string
	ImageURL   string
	SourceURI  string
	CreatedAt  time.Time
}

// Validate requires the owning disaster and some content.
func (n NewReport) Validate() error {
	if strings.TrimSpace(n.DisasterID) == "" {
		return NewValidationError("disaster_id", "disaster_id is required")
	}
	if strings.TrimSpace(n.Content) == "" {
		return NewValidationError("content", "content is required")
	}
	return nil
}

// ReportUpdate is a partial update; nil fields are left unchanged.
type ReportUpdate struct {
	Content            *string
	ImageURL           *string
	VerificationStatus *string
}

// Empty reports whether the update changes nothing.
func (u ReportUpdate) Empty() bool {
	return u.Content == nil && u.ImageURL == nil && u.VerificationStatus == nil
}

// ReportVerification records the outcome of an image verification.
type ReportVerification struct {
	Status string
	Label  VerificationLabel
	Entry  AuditEntry
}
