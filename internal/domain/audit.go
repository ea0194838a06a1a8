package domain

import "time"

// AuditAction names a recorded change.
type AuditAction string

// Audit actions.
const (
	AuditCreate      AuditAction = "create"
	AuditUpdate      AuditAction = "update"
	AuditVerifyImage AuditAction = "verify_image"
)

// SystemUser attributes changes made without an authenticated caller.
const SystemUser = "system"

// AuditEntry is one element of an entity's append-only audit trail.
type AuditEntry struct {
	Action    AuditAction
	UserID    string
	Timestamp time.Time

	// Set for verify_image entries only.
	Label    VerificationLabel
	ImageURL string
}

// NewAuditEntry stamps an action by userID at now. An empty userID is
// recorded as the system user.
func NewAuditEntry(action AuditAction, userID string, now time.Time) AuditEntry {
	if userID == "" {
		userID = SystemUser
	}
	return AuditEntry{Action: action, UserID: userID, Timestamp: now.UTC()}
}
