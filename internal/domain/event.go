package domain

import "time"

// EventType names a broadcast event.
type EventType string

// Broadcast event types.
const (
	EventDisasterUpdated    EventType = "disaster_updated"
	EventResourcesUpdated   EventType = "resources_updated"
	EventSocialMediaUpdated EventType = "social_media_updated"
	EventReportUpdated      EventType = "report_updated"
)

// Event is a change notification fanned out to subscribers. Payload is one of
// DisasterChanged, DisasterDeleted, ResourcesChanged, SocialPostsFetched or
// ReportChanged.
type Event struct {
	// ID is assigned at publish time when empty, so every sink sees the same id.
	ID         string
	Type       EventType
	DisasterID string
	Payload    any
	OccurredAt time.Time
}

// DisasterChanged carries a created or updated disaster.
type DisasterChanged struct {
	Disaster *Disaster
}

// DisasterDeleted carries the id of a deleted disaster.
type DisasterDeleted struct {
	ID string
}

// ResourcesChanged carries resources created or looked up for a disaster.
type ResourcesChanged struct {
	DisasterID string
	Resources  []Resource
}

// SocialPostsFetched carries the posts ingested for a disaster.
type SocialPostsFetched struct {
	DisasterID string
	Posts      []SocialPost
}

// ReportChanged carries an updated report.
type ReportChanged struct {
	Report *Report
}

// NewDisasterUpdatedEvent announces a created or updated disaster.
func NewDisasterUpdatedEvent(d *Disaster, now time.Time) Event {
	return Event{Type: EventDisasterUpdated, DisasterID: d.ID, Payload: DisasterChanged{Disaster: d}, OccurredAt: now}
}

// NewDisasterDeletedEvent announces a deletion.
func NewDisasterDeletedEvent(id string, now time.Time) Event {
	return Event{Type: EventDisasterUpdated, DisasterID: id, Payload: DisasterDeleted{ID: id}, OccurredAt: now}
}

// NewResourcesUpdatedEvent announces resources for a disaster.
func NewResourcesUpdatedEvent(disasterID string, resources []Resource, now time.Time) Event {
	return Event{
		Type:       EventResourcesUpdated,
		DisasterID: disasterID,
		Payload:    ResourcesChanged{DisasterID: disasterID, Resources: resources},
		OccurredAt: now,
	}
}

// NewSocialMediaUpdatedEvent announces freshly ingested feed posts.
func NewSocialMediaUpdatedEvent(disasterID string, posts []SocialPost, now time.Time) Event {
	return Event{
		Type:       EventSocialMediaUpdated,
		DisasterID: disasterID,
		Payload:    SocialPostsFetched{DisasterID: disasterID, Posts: posts},
		OccurredAt: now,
	}
}

// NewReportUpdatedEvent announces a changed report.
func NewReportUpdatedEvent(r *Report, now time.Time) Event {
	return Event{Type: EventReportUpdated, DisasterID: r.DisasterID, Payload: ReportChanged{Report: r}, OccurredAt: now}
}
