// Package events delivers domain change events: an in-process hub feeding the
// Server-Sent Events stream, a Kafka sink, and a fan-out publisher over both.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// Envelope is the wire form of an event on every sink.
type Envelope struct {
	ID        string           `json:"id"`
	Type      domain.EventType `json:"type"`
	Payload   any              `json:"payload"`
	Timestamp time.Time        `json:"timestamp"`
}

// Message is an encoded event ready for a transport.
type Message struct {
	ID   string
	Type domain.EventType
	// Data is the JSON-encoded Envelope.
	Data []byte
}

// Encode renders e as a JSON envelope.
func Encode(e domain.Event) (Message, error) {
	data, err := json.Marshal(Envelope{
		ID:        e.ID,
		Type:      e.Type,
		Payload:   payloadView(e),
		Timestamp: e.OccurredAt.UTC(),
	})
	if err != nil {
		return Message{}, fmt.Errorf("encode %s event: %w", e.Type, err)
	}
	return Message{ID: e.ID, Type: e.Type, Data: data}, nil
}

type auditView struct {
	Action    string    `json:"action"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
}

type disasterView struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	LocationName string      `json:"location_name"`
	Description  string      `json:"description"`
	Tags         []string    `json:"tags"`
	Latitude     float64     `json:"latitude"`
	Longitude    float64     `json:"longitude"`
	OwnerID      string      `json:"owner_id"`
	AuditTrail   []auditView `json:"audit_trail"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type resourceView struct {
	ID           string    `json:"id"`
	DisasterID   string    `json:"disaster_id"`
	Name         string    `json:"name"`
	LocationName string    `json:"location_name"`
	Type         string    `json:"type"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Distance     *float64  `json:"distance_meters,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type reportView struct {
	ID                 string      `json:"id"`
	DisasterID         string      `json:"disaster_id"`
	UserID             string      `json:"user_id"`
	Content            string      `json:"content"`
	ImageURL           string      `json:"image_url,omitempty"`
	SourceURI          string      `json:"source_uri,omitempty"`
	VerificationStatus string      `json:"verification_status"`
	VerificationLabel  string      `json:"verification_label,omitempty"`
	AuditTrail         []auditView `json:"audit_trail"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

type postView struct {
	URI       string    `json:"uri"`
	CID       string    `json:"cid,omitempty"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

func payloadView(e domain.Event) any {
	switch p := e.Payload.(type) {
	case domain.DisasterChanged:
		return newDisasterView(p.Disaster)
	case domain.DisasterDeleted:
		return map[string]string{"deleted": p.ID}
	case domain.ResourcesChanged:
		resources := make([]resourceView, len(p.Resources))
		for i := range p.Resources {
			resources[i] = newResourceView(&p.Resources[i])
		}
		return struct {
			DisasterID string         `json:"disasterId"`
			Resources  []resourceView `json:"resources"`
			Timestamp  time.Time      `json:"timestamp"`
		}{p.DisasterID, resources, e.OccurredAt.UTC()}
	case domain.SocialPostsFetched:
		posts := make([]postView, len(p.Posts))
		for i, post := range p.Posts {
			posts[i] = postView{post.URI, post.CID, post.Text, post.Author, post.Timestamp.UTC()}
		}
		return struct {
			DisasterID string     `json:"disasterId"`
			Reports    []postView `json:"reports"`
		}{p.DisasterID, posts}
	case domain.ReportChanged:
		return newReportView(p.Report)
	default:
		return e.Payload
	}
}

func newAuditViews(entries []domain.AuditEntry) []auditView {
	out := make([]auditView, len(entries))
	for i, a := range entries {
		out[i] = auditView{string(a.Action), a.UserID, a.Timestamp.UTC(), string(a.Label), a.ImageURL}
	}
	return out
}

func newDisasterView(d *domain.Disaster) *disasterView {
	if d == nil {
		return nil
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &disasterView{
		ID:           d.ID,
		Title:        d.Title,
		LocationName: d.LocationName,
		Description:  d.Description,
		Tags:         tags,
		Latitude:     d.Location.Lat,
		Longitude:    d.Location.Lng,
		OwnerID:      d.OwnerID,
		AuditTrail:   newAuditViews(d.AuditTrail),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func newResourceView(r *domain.Resource) resourceView {
	v := resourceView{
		ID:           r.ID,
		DisasterID:   r.DisasterID,
		Name:         r.Name,
		LocationName: r.LocationName,
		Type:         r.Type,
		Latitude:     r.Location.Lat,
		Longitude:    r.Location.Lng,
		CreatedAt:    r.CreatedAt,
	}
	if r.DistanceMeters > 0 {
		d := r.DistanceMeters
		v.Distance = &d
	}
	return v
}

func newReportView(r *domain.Report) *reportView {
	if r == nil {
		return nil
	}
	return &reportView{
		ID:                 r.ID,
		DisasterID:         r.DisasterID,
		UserID:             r.UserID,
		Content:            r.Content,
		ImageURL:           r.ImageURL,
		SourceURI:          r.SourceURI,
		VerificationStatus: r.VerificationStatus,
		VerificationLabel:  string(r.VerificationLabel),
		AuditTrail:         newAuditViews(r.AuditTrail),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
