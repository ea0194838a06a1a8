package handlers

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/disaster-response/internal/adapters/http/dto"
	"github.com/jsamuelsen/disaster-response/internal/domain"
)

func TestResourceHandler_Create(t *testing.T) {
	api := newTestAPI(t)
	api.geocoder.EXPECT().Geocode(mock.Anything, "Manhattan, NYC").Return(manhattan, nil)
	d := api.createDisaster(t, map[string]any{"title": "NYC Flood", "location_name": "Manhattan, NYC"})

	t.Run("missing fields", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/resources", "", map[string]any{"name": "Shelter"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required fields: disaster_id, name, location_name, type", errorMessage(t, w))
	})

	t.Run("explicit coordinates", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/resources", "", map[string]any{
			"disaster_id":   d.ID,
			"name":          "Red Cross Shelter",
			"location_name": "Lower East Side, NYC",
			"type":          "shelter",
			"latitude":      40.715,
			"longitude":     -73.984,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var got dto.ResourceResponse
		decode(t, w, &got)
		assert.Equal(t, "Red Cross Shelter", got.Name)
		assert.InDelta(t, 40.715, got.Latitude, 1e-9)
		assert.Nil(t, got.DistanceMeters)
	})

	t.Run("geocoded", func(t *testing.T) {
		api.geocoder.EXPECT().Geocode(mock.Anything, "Brooklyn, NYC").Return(&domain.GeocodeResult{
			LocationName: "Brooklyn, NYC",
			Point:        domain.Point{Lat: 40.6782, Lng: -73.9442},
		}, nil)

		w := api.do(t, http.MethodPost, "/api/v1/resources", "", map[string]any{
			"disaster_id":   d.ID,
			"name":          "Food Bank",
			"location_name": "Brooklyn, NYC",
			"type":          "food",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var got dto.ResourceResponse
		decode(t, w, &got)
		assert.InDelta(t, 40.6782, got.Latitude, 1e-9)
	})

	t.Run("unknown disaster", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/resources", "", map[string]any{
			"disaster_id":   "5f0c7e2a-3b9d-4c61-9a1e-2d4f6b8a0c13",
			"name":          "Shelter",
			"location_name": "Queens",
			"type":          "shelter",
			"latitude":      40.7,
			"longitude":     -73.8,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed disaster id", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/resources", "", map[string]any{"disaster_id": "42"})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		decode(t, w, &resp)
		assert.Equal(t, "must be a valid UUID", resp.Error.Details["disaster_id"])
	})
}

func TestResourceHandler_ListPaginates(t *testing.T) {
	api := newTestAPI(t)
	api.geocoder.EXPECT().Geocode(mock.Anything, mock.Anything).Return(manhattan, nil)

	// Each disaster adds one relief hub.
	for _, title := range []string{"First", "Second", "Third"} {
		api.createDisaster(t, map[string]any{"title": title, "location_name": "Manhattan, NYC"})
		api.clock.Advance(time.Second)
	}

	var names []string
	cursor := ""
	for range 3 {
		path := "/api/v1/resources?limit=2"
		if cursor != "" {
			path += "&cursor=" + url.QueryEscape(cursor)
		}
		w := api.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page dto.PaginatedResponse[dto.ResourceResponse]
		decode(t, w, &page)
		for _, r := range page.Items {
			names = append(names, r.Name)
		}
		if !page.HasMore {
			break
		}
		cursor = page.NextCursor
	}

	assert.Equal(t, []string{
		"Third Relief Center 2025-06-17",
		"Second Relief Center 2025-06-17",
		"First Relief Center 2025-06-17",
	}, names)

	w := api.do(t, http.MethodGet, "/api/v1/resources?cursor=garbage", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResourceHandler_Nearby(t *testing.T) {
	api := newTestAPI(t)
	api.geocoder.EXPECT().Geocode(mock.Anything, "Manhattan, NYC").Return(manhattan, nil)
	d := api.createDisaster(t, map[string]any{"title": "NYC Flood", "location_name": "Manhattan, NYC"})

	w := api.do(t, http.MethodPost, "/api/v1/resources", "", map[string]any{
		"disaster_id":   d.ID,
		"name":          "Far Shelter",
		"location_name": "Philadelphia",
		"type":          "shelter",
		"latitude":      39.9526,
		"longitude":     -75.1652,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantNames  []string
	}{
		{
			name:       "default radius",
			query:      "?lat=40.7831&lon=-73.9712",
			wantStatus: http.StatusOK,
			wantNames:  []string{"NYC Flood Relief Center 2025-06-17"},
		},
		{
			name:       "wide radius nearest first",
			query:      "?lat=40.7831&lon=-73.9712&radius=200000",
			wantStatus: http.StatusOK,
			wantNames:  []string{"NYC Flood Relief Center 2025-06-17", "Far Shelter"},
		},
		{
			name:       "unparsable radius uses default",
			query:      "?lat=40.7831&lon=-73.9712&radius=far",
			wantStatus: http.StatusOK,
			wantNames:  []string{"NYC Flood Relief Center 2025-06-17"},
		},
		{name: "missing lat", query: "?lon=-73.9712", wantStatus: http.StatusBadRequest},
		{name: "bad lon", query: "?lat=40.7&lon=west", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(t, http.MethodGet, "/api/v1/disasters/"+d.ID+"/resources"+tt.query, contributor, nil)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, "Latitude and longitude are required.", errorMessage(t, w))
				return
			}

			var resp dto.ResourcesResponse
			decode(t, w, &resp)
			names := make([]string, len(resp.Resources))
			for i, r := range resp.Resources {
				names[i] = r.Name
				require.NotNil(t, r.DistanceMeters)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}
