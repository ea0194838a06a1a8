package dto

import (
	"time"

	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// AuditEntryResponse is one audit trail element.
type AuditEntryResponse struct {
	Action    string    `json:"action"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
}

// DisasterResponse is the API form of a disaster.
type DisasterResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	LocationName string               `json:"location_name"`
	Description  string               `json:"description"`
	Tags         []string             `json:"tags"`
	Latitude     float64              `json:"latitude"`
	Longitude    float64              `json:"longitude"`
	OwnerID      string               `json:"owner_id"`
	AuditTrail   []AuditEntryResponse `json:"audit_trail"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// ResourceResponse is the API form of a resource.
type ResourceResponse struct {
	ID             string    `json:"id"`
	DisasterID     string    `json:"disaster_id"`
	Name           string    `json:"name"`
	LocationName   string    `json:"location_name"`
	Type           string    `json:"type"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters *float64  `json:"distance_meters,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReportResponse is the API form of a report.
type ReportResponse struct {
	ID                 string               `json:"id"`
	DisasterID         string               `json:"disaster_id"`
	UserID             string               `json:"user_id"`
	Content            string               `json:"content"`
	ImageURL           string               `json:"image_url,omitempty"`
	SourceURI          string               `json:"source_uri,omitempty"`
	VerificationStatus string               `json:"verification_status"`
	VerificationLabel  string               `json:"verification_label,omitempty"`
	AuditTrail         []AuditEntryResponse `json:"audit_trail"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// SocialPostResponse is a feed post matched for a disaster.
type SocialPostResponse struct {
	URI       string    `json:"uri"`
	CID       string    `json:"cid,omitempty"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// DisasterEnvelope wraps a disaster with a status message.
type DisasterEnvelope struct {
	Message  string            `json:"message"`
	Disaster *DisasterResponse `json:"disaster"`
}

// MessageResponse is a bare status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Coordinates is a lat/lng pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeResponse is the result of POST /geocode.
type GeocodeResponse struct {
	LocationName string      `json:"location_name"`
	Coordinates  Coordinates `json:"coordinates"`
}

// ResourcesResponse lists resources.
type ResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// SocialReportsResponse lists feed posts.
type SocialReportsResponse struct {
	Reports []SocialPostResponse `json:"reports"`
}

// ReportsResponse lists reports.
type ReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// ReportEnvelope wraps a report with a status message.
type ReportEnvelope struct {
	Message string          `json:"message"`
	Report  *ReportResponse `json:"report"`
}

// VerificationSummary is the verdict part of a verification response.
type VerificationSummary struct {
	Status string `json:"status"`
	Label  string `json:"label"`
}

// VerifyImageResponse is the result of POST /disasters/:id/verify-image.
type VerifyImageResponse struct {
	Success      bool                `json:"success"`
	Report       *ReportResponse     `json:"report"`
	Verification VerificationSummary `json:"verification"`
}

// VerifyImageFailure is the error envelope of the verify endpoint, which
// also carries success:false.
type VerifyImageFailure struct {
	Success bool `json:"success"`
	ErrorResponse
}

// ServiceStatusResponse is the body of GET /.
type ServiceStatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// NewAuditEntryResponses converts an audit trail.
func NewAuditEntryResponses(entries []domain.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, len(entries))
	for i, a := range entries {
		out[i] = AuditEntryResponse{
			Action:    string(a.Action),
			UserID:    a.UserID,
			Timestamp: a.Timestamp.UTC(),
			Label:     string(a.Label),
			ImageURL:  a.ImageURL,
		}
	}
	return out
}

// NewDisasterResponse converts a disaster.
func NewDisasterResponse(d *domain.Disaster) *DisasterResponse {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &DisasterResponse{
		ID:           d.ID,
		Title:        d.Title,
		LocationName: d.LocationName,
		Description:  d.Description,
		Tags:         tags,
		Latitude:     d.Location.Lat,
		Longitude:    d.Location.Lng,
		OwnerID:      d.OwnerID,
		AuditTrail:   NewAuditEntryResponses(d.AuditTrail),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// NewDisasterResponses converts a disaster list.
func NewDisasterResponses(ds []domain.Disaster) []DisasterResponse {
	out := make([]DisasterResponse, len(ds))
	for i := range ds {
		out[i] = *NewDisasterResponse(&ds[i])
	}
	return out
}

// NewResourceResponse converts a resource. The distance is only set on
// nearby search results.
func NewResourceResponse(r *domain.Resource) ResourceResponse {
	resp := ResourceResponse{
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
		resp.DistanceMeters = &d
	}
	return resp
}

// NewResourceResponses converts a resource list.
func NewResourceResponses(rs []domain.Resource) []ResourceResponse {
	out := make([]ResourceResponse, len(rs))
	for i := range rs {
		out[i] = NewResourceResponse(&rs[i])
	}
	return out
}

// NewReportResponse converts a report.
func NewReportResponse(r *domain.Report) *ReportResponse {
	return &ReportResponse{
		ID:                 r.ID,
		DisasterID:         r.DisasterID,
		UserID:             r.UserID,
		Content:            r.Content,
		ImageURL:           r.ImageURL,
		SourceURI:          r.SourceURI,
		VerificationStatus: r.VerificationStatus,
		VerificationLabel:  string(r.VerificationLabel),
		AuditTrail:         NewAuditEntryResponses(r.AuditTrail),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// NewReportResponses converts a report list.
func NewReportResponses(rs []domain.Report) []ReportResponse {
	out := make([]ReportResponse, len(rs))
	for i := range rs {
		out[i] = *NewReportResponse(&rs[i])
	}
	return out
}

// NewSocialPostResponses converts feed posts.
func NewSocialPostResponses(posts []domain.SocialPost) []SocialPostResponse {
	out := make([]SocialPostResponse, len(posts))
	for i, p := range posts {
		out[i] = SocialPostResponse{URI: p.URI, CID: p.CID, Text: p.Text, Author: p.Author, Timestamp: p.Timestamp.UTC()}
	}
	return out
}
