package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/disaster-response/internal/adapters/http/dto"
	"github.com/jsamuelsen/disaster-response/internal/domain"
)

func TestDisasterHandler_Create(t *testing.T) {
	tests := []struct {
		name        string
		user        string
		body        any
		setup       func(*testAPI)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing header",
			body:        map[string]any{"title": "NYC Flood", "location_name": "Manhattan, NYC"},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Missing X-User-ID header",
		},
		{
			name:        "unknown user",
			user:        "mallory",
			body:        map[string]any{"title": "NYC Flood", "location_name": "Manhattan, NYC"},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid user ID",
		},
		{
			name:        "missing title",
			user:        contributor,
			body:        map[string]any{"location_name": "Manhattan, NYC"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Title is required and must be a non-empty string.",
		},
		{
			name:        "tags not an array",
			user:        contributor,
			body:        `{"title":"NYC Flood","location_name":"Manhattan, NYC","tags":"flood"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Tags must be an array of strings.",
		},
		{
			name:        "title not a string",
			user:        contributor,
			body:        `{"title":42,"location_name":"Manhattan, NYC"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Title is required and must be a non-empty string.",
		},
		{
			name:        "malformed body",
			user:        contributor,
			body:        `{"title":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body.",
		},
		{
			name:       "no location",
			user:       contributor,
			body:       map[string]any{"title": "NYC Flood"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "geocoder down",
			user: contributor,
			body: map[string]any{"title": "NYC Flood", "location_name": "Manhattan, NYC"},
			setup: func(a *testAPI) {
				a.geocoder.EXPECT().Geocode(mock.Anything, "Manhattan, NYC").
					Return(nil, domain.NewUnavailableError("mapbox", "connection refused"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to create disaster. Please try again.",
		},
		{
			name: "unknown place",
			user: contributor,
			body: map[string]any{"title": "NYC Flood", "location_name": "Atlantis"},
			setup: func(a *testAPI) {
				a.geocoder.EXPECT().Geocode(mock.Anything, "Atlantis").
					Return(nil, domain.NewNotFoundError("location", "Atlantis"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to create disaster. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			if tt.setup != nil {
				tt.setup(api)
			}

			w := api.do(t, http.MethodPost, "/api/v1/disasters", tt.user, tt.body)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, w))
			}
		})
	}
}

func TestDisasterHandler_CreateGeocodesAndAddsReliefHub(t *testing.T) {
	api := newTestAPI(t)
	api.extractor.EXPECT().ExtractLocation(mock.Anything, "Heavy flooding in Manhattan").Return("Manhattan, NYC", nil)
	api.geocoder.EXPECT().Geocode(mock.Anything, "Manhattan, NYC").Return(manhattan, nil)

	w := api.do(t, http.MethodPost, "/api/v1/disasters", contributor, map[string]any{
		"title":       "NYC Flood",
		"description": "Heavy flooding in Manhattan",
		"tags":        []string{"flood", " urgent "},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env struct {
		Message  string               `json:"message"`
		Disaster dto.DisasterResponse `json:"disaster"`
	}
	decode(t, w, &env)

	assert.Equal(t, "Disaster created successfully with auto-geocoded location.", env.Message)
	d := env.Disaster
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "Manhattan, NYC", d.LocationName)
	assert.Equal(t, []string{"flood", "urgent"}, d.Tags)
	assert.InDelta(t, 40.7831, d.Latitude, 1e-9)
	assert.Equal(t, contributor, d.OwnerID)
	require.Len(t, d.AuditTrail, 1)
	assert.Equal(t, "create", d.AuditTrail[0].Action)
	assert.Equal(t, contributor, d.AuditTrail[0].UserID)

	w = api.do(t, http.MethodGet, "/api/v1/resources", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page dto.PaginatedResponse[dto.ResourceResponse]
	decode(t, w, &page)
	require.Len(t, page.Items, 1)
	hub := page.Items[0]
	assert.Equal(t, "NYC Flood Relief Center 2025-06-17", hub.Name)
	assert.Equal(t, "Manhattan, NYC - Relief Hub", hub.LocationName)
	assert.Equal(t, domain.ResourceTypeFloodRelief, hub.Type)
	assert.Greater(t, hub.Longitude, d.Longitude)
}

func TestDisasterHandler_ListGetUpdateDelete(t *testing.T) {
	api := newTestAPI(t)
	api.geocoder.EXPECT().Geocode(mock.Anything, mock.Anything).Return(manhattan, nil)

	flood := api.createDisaster(t, map[string]any{"title": "NYC Flood", "location_name": "Manhattan, NYC", "tags": []string{"flood"}})
	api.clock.Advance(time.Minute)
	fire := api.createDisaster(t, map[string]any{"title": "Brooklyn Fire", "location_name": "Brooklyn, NYC", "tags": []string{"fire"}})

	t.Run("list newest first", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/disasters", contributor, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got []dto.DisasterResponse
		decode(t, w, &got)
		require.Len(t, got, 2)
		assert.Equal(t, fire.ID, got[0].ID)
		assert.Equal(t, flood.ID, got[1].ID)
	})

	t.Run("list by tag", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/disasters?tag=flood", contributor, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got []dto.DisasterResponse
		decode(t, w, &got)
		require.Len(t, got, 1)
		assert.Equal(t, flood.ID, got[0].ID)
	})

	t.Run("get", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/disasters/"+flood.ID, contributor, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got dto.DisasterResponse
		decode(t, w, &got)
		assert.Equal(t, "NYC Flood", got.Title)
	})

	t.Run("get unknown", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/disasters/missing", contributor, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Disaster not found", errorMessage(t, w))
	})

	t.Run("update", func(t *testing.T) {
		w := api.do(t, http.MethodPut, "/api/v1/disasters/"+flood.ID, admin, map[string]any{
			"description": "Water receding",
			"tags":        []string{"flood", "recovery"},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var env struct {
			Message  string               `json:"message"`
			Disaster dto.DisasterResponse `json:"disaster"`
		}
		decode(t, w, &env)
		assert.Equal(t, "Disaster updated.", env.Message)
		assert.Equal(t, "NYC Flood", env.Disaster.Title)
		assert.Equal(t, "Water receding", env.Disaster.Description)
		assert.Equal(t, []string{"flood", "recovery"}, env.Disaster.Tags)
		require.Len(t, env.Disaster.AuditTrail, 2)
		assert.Equal(t, "update", env.Disaster.AuditTrail[1].Action)
		assert.Equal(t, admin, env.Disaster.AuditTrail[1].UserID)
	})

	t.Run("update blank title", func(t *testing.T) {
		w := api.do(t, http.MethodPut, "/api/v1/disasters/"+flood.ID, contributor, map[string]any{"title": "  "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update title not a string", func(t *testing.T) {
		w := api.do(t, http.MethodPut, "/api/v1/disasters/"+flood.ID, contributor, `{"title":["NYC"]}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Title is required and must be a non-empty string.", errorMessage(t, w))
	})

	t.Run("update unknown", func(t *testing.T) {
		w := api.do(t, http.MethodPut, "/api/v1/disasters/missing", contributor, map[string]any{"title": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete requires admin", func(t *testing.T) {
		w := api.do(t, http.MethodDelete, "/api/v1/disasters/"+fire.ID, contributor, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := api.do(t, http.MethodDelete, "/api/v1/disasters/"+fire.ID, admin, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.MessageResponse
		decode(t, w, &resp)
		assert.Equal(t, "Disaster deleted.", resp.Message)

		w = api.do(t, http.MethodDelete, "/api/v1/disasters/"+fire.ID, admin, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
