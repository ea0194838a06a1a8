package dto

import (
	"strings"

	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// CreateDisasterRequest is the body of POST /disasters. Presence rules are
// checked by the domain so the messages match the API contract.
type CreateDisasterRequest struct {
	Title        string   `json:"title"`
	LocationName string   `json:"location_name" validate:"max=256"`
	Description  string   `json:"description"   validate:"max=10000"`
	Tags         []string `json:"tags"          validate:"max=32,dive,max=64"`
}

// ToDomain converts the request.
func (r *CreateDisasterRequest) ToDomain() domain.NewDisaster {
	return domain.NewDisaster{
		Title:        r.Title,
		LocationName: r.LocationName,
		Description:  r.Description,
		Tags:         cleanTags(r.Tags),
	}
}

// UpdateDisasterRequest is the body of PUT /disasters/:id. Absent fields
// are left unchanged.
type UpdateDisasterRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description" validate:"omitempty,max=10000"`
	Tags        *[]string `json:"tags"        validate:"omitempty,max=32,dive,max=64"`
}

// ToDomain converts the request.
func (r *UpdateDisasterRequest) ToDomain() domain.DisasterUpdate {
	u := domain.DisasterUpdate{Title: r.Title, Description: r.Description}
	if r.Tags != nil {
		u.Tags = cleanTags(*r.Tags)
		u.TagsSet = true
	}
	return u
}

// ListDisastersQuery filters GET /disasters.
type ListDisastersQuery struct {
	Tag string `form:"tag" validate:"max=64"`
}

// GeocodeRequest is the body of POST /geocode.
type GeocodeRequest struct {
	Description string `json:"description"`
}

// CreateResourceRequest is the body of POST /resources. Coordinates are
// geocoded from location_name when either is missing.
type CreateResourceRequest struct {
	DisasterID   string   `json:"disaster_id"   validate:"uuid"`
	Name         string   `json:"name"`
	LocationName string   `json:"location_name"`
	Type         string   `json:"type"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// ToDomain converts the request.
func (r *CreateResourceRequest) ToDomain() domain.NewResource {
	nr := domain.NewResource{
		DisasterID:   strings.TrimSpace(r.DisasterID),
		Name:         strings.TrimSpace(r.Name),
		LocationName: strings.TrimSpace(r.LocationName),
		Type:         strings.TrimSpace(r.Type),
	}
	if r.Latitude != nil && r.Longitude != nil {
		nr.Location = &domain.Point{Lat: *r.Latitude, Lng: *r.Longitude}
	}
	return nr
}

// NearbyQuery holds the raw GET /disasters/:id/resources parameters.
type NearbyQuery struct {
	Lat    string `form:"lat"`
	Lon    string `form:"lon"`
	Radius string `form:"radius"`
}

// CreateReportRequest is the body of POST /disasters/:id/reports.
type CreateReportRequest struct {
	Content  string `json:"content"   validate:"max=10000"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

// UpdateReportRequest is the body of PUT /reports/:id.
type UpdateReportRequest struct {
	Content            *string `json:"content"             validate:"omitempty,max=10000"`
	ImageURL           *string `json:"image_url"           validate:"omitempty,url"`
	VerificationStatus *string `json:"verification_status" validate:"omitempty,max=2000"`
}

// ToDomain converts the request.
func (r *UpdateReportRequest) ToDomain() domain.ReportUpdate {
	return domain.ReportUpdate{
		Content:            r.Content,
		ImageURL:           r.ImageURL,
		VerificationStatus: r.VerificationStatus,
	}
}

// VerifyImageRequest is the body of POST /disasters/:id/verify-image.
type VerifyImageRequest struct {
	ImageURL string `json:"image_url"`
	ReportID string `json:"report_id" validate:"uuid"`
}

// cleanTags trims tags and drops blanks.
func cleanTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
