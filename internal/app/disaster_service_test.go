package app

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/mocks"
	"github.com/jsamuelsen/disaster-response/internal/platform/metrics"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

type disasterMocks struct {
	disasters *mocks.MockDisasterRepository
	resources *mocks.MockResourceRepository
	extractor *mocks.MockLocationExtractor
	geocoder  *mocks.MockGeocoder
	events    *mocks.MockEventPublisher
	flags     *mocks.MockFeatureFlags
}

func newDisasterService(t *testing.T, m *metrics.Metrics) (*DisasterService, disasterMocks) {
	t.Helper()
	dm := disasterMocks{
		disasters: mocks.NewMockDisasterRepository(t),
		resources: mocks.NewMockResourceRepository(t),
		extractor: mocks.NewMockLocationExtractor(t),
		geocoder:  mocks.NewMockGeocoder(t),
		events:    mocks.NewMockEventPublisher(t),
		flags:     mocks.NewMockFeatureFlags(t),
	}
	svc := NewDisasterService(DisasterServiceConfig{
		Disasters: dm.disasters,
		Resources: dm.resources,
		Locator: NewGeocodeService(GeocodeServiceConfig{
			Extractor: dm.extractor,
			Geocoder:  dm.geocoder,
			Logger:    discardLogger(),
		}),
		Events:  dm.events,
		Flags:   dm.flags,
		Metrics: m,
		Clock:   fakeClock(),
		Logger:  discardLogger(),
	})
	return svc, dm
}

func eventOfType(typ domain.EventType) any {
	return mock.MatchedBy(func(e domain.Event) bool { return e.Type == typ })
}

func storedDisaster() *domain.Disaster {
	return &domain.Disaster{
		ID:           "d-1",
		Title:        "NYC Flood",
		LocationName: "Manhattan, NYC",
		Description:  "Heavy flooding in Manhattan",
		Tags:         []string{"flood", "urgent"},
		Location:     manhattan.Point,
		OwnerID:      "netrunnerX",
		CreatedAt:    testNow,
		UpdatedAt:    testNow,
	}
}

func TestDisasterService_Create(t *testing.T) {
	m := metrics.NewForTesting()
	svc, dm := newDisasterService(t, m)
	stored := storedDisaster()

	dm.extractor.EXPECT().ExtractLocation(mock.Anything, "Heavy flooding in Manhattan").Return("Manhattan, NYC", nil)
	dm.geocoder.EXPECT().Geocode(mock.Anything, "Manhattan, NYC").Return(manhattan, nil)
	dm.disasters.EXPECT().Create(mock.Anything, mock.MatchedBy(func(d *domain.Disaster) bool {
		return d.Title == "NYC Flood" &&
			d.LocationName == "Manhattan, NYC" &&
			d.Location == manhattan.Point &&
			d.OwnerID == "netrunnerX" &&
			len(d.AuditTrail) == 1 &&
			d.AuditTrail[0] == domain.AuditEntry{Action: domain.AuditCreate, UserID: "netrunnerX", Timestamp: testNow}
	})).Return(stored, nil)
	dm.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagAutoReliefResource, true).Return(true)
	dm.resources.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r domain.NewResource) bool {
		return r.DisasterID == "d-1" &&
			r.Name == "NYC Flood Relief Center 2025-06-17" &&
			r.LocationName == "Manhattan, NYC - Relief Hub" &&
			r.Type == domain.ResourceTypeFloodRelief &&
			r.Location != nil &&
			math.Abs(domain.HaversineDistance(manhattan.Point, *r.Location)-100) < 0.5
	})).Return(&domain.Resource{ID: "r-1", DisasterID: "d-1", Type: domain.ResourceTypeFloodRelief}, nil)
	dm.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventResourcesUpdated)).Return(nil).Once()
	dm.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventDisasterUpdated)).Return(nil).Once()

	got, err := svc.Create(context.Background(), "netrunnerX", domain.NewDisaster{
		Title:       "  NYC Flood ",
		Description: "Heavy flooding in Manhattan",
		Tags:        []string{"flood", "urgent"},
	})
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ReliefHubsCreated), 0)
}

func TestDisasterService_CreateReliefHubFailureIsIgnored(t *testing.T) {
	m := metrics.NewForTesting()
	svc, dm := newDisasterService(t, m)

	dm.geocoder.EXPECT().Geocode(mock.Anything, "Manhattan, NYC").Return(manhattan, nil)
	dm.disasters.EXPECT().Create(mock.Anything, mock.Anything).Return(storedDisaster(), nil)
	dm.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagAutoReliefResource, true).Return(true)
	dm.resources.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))
	dm.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventDisasterUpdated)).Return(nil).Once()

	_, err := svc.Create(context.Background(), "netrunnerX", domain.NewDisaster{
		Title:        "NYC Flood",
		LocationName: "Manhattan, NYC",
	})
	require.NoError(t, err)
	assert.InDelta(t, 0, testutil.ToFloat64(m.ReliefHubsCreated), 0)
}

func TestDisasterService_CreateWithoutReliefHub(t *testing.T) {
	svc, dm := newDisasterService(t, nil)

	dm.geocoder.EXPECT().Geocode(mock.Anything, "Manhattan, NYC").Return(manhattan, nil)
	dm.disasters.EXPECT().Create(mock.Anything, mock.Anything).Return(storedDisaster(), nil)
	dm.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagAutoReliefResource, true).Return(false)
	dm.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventDisasterUpdated)).
		Return(errors.New("broker down")).Once()

	_, err := svc.Create(context.Background(), "", domain.NewDisaster{
		Title:        "NYC Flood",
		LocationName: "Manhattan, NYC",
	})
	require.NoError(t, err, "publish failures must not fail the request")
}

func TestDisasterService_CreateErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    domain.NewDisaster
		setup    func(disasterMocks)
		errCheck func(error) bool
	}{
		{
			name:     "missing title",
			input:    domain.NewDisaster{LocationName: "Manhattan, NYC"},
			setup:    func(disasterMocks) {},
			errCheck: domain.IsValidation,
		},
		{
			name:     "no location or description",
			input:    domain.NewDisaster{Title: "NYC Flood"},
			setup:    func(disasterMocks) {},
			errCheck: domain.IsValidation,
		},
		{
			name:  "geocoding fails",
			input: domain.NewDisaster{Title: "NYC Flood", LocationName: "Atlantis"},
			setup: func(dm disasterMocks) {
				dm.geocoder.EXPECT().Geocode(mock.Anything, "Atlantis").
					Return(nil, domain.NewNotFoundError("location", "Atlantis"))
			},
			errCheck: func(err error) bool { return !domain.IsUserFacing(err) },
		},
		{
			name:  "insert fails",
			input: domain.NewDisaster{Title: "NYC Flood", LocationName: "Manhattan, NYC"},
			setup: func(dm disasterMocks) {
				dm.geocoder.EXPECT().Geocode(mock.Anything, "Manhattan, NYC").Return(manhattan, nil)
				dm.disasters.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
			errCheck: func(err error) bool { return !domain.IsUserFacing(err) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, dm := newDisasterService(t, nil)
			tt.setup(dm)

			_, err := svc.Create(context.Background(), "netrunnerX", tt.input)
			require.Error(t, err)
			assert.True(t, tt.errCheck(err), "unexpected error: %v", err)
		})
	}
}

func TestDisasterService_Update(t *testing.T) {
	svc, dm := newDisasterService(t, nil)
	updated := storedDisaster()
	updated.Title = "NYC Flood (updated)"

	dm.disasters.EXPECT().Update(mock.Anything, "d-1",
		mock.MatchedBy(func(u domain.DisasterUpdate) bool {
			return u.Title != nil && *u.Title == "NYC Flood (updated)"
		}),
		domain.AuditEntry{Action: domain.AuditUpdate, UserID: "netrunnerX", Timestamp: testNow},
	).Return(updated, nil)
	dm.events.EXPECT().Publish(mock.Anything, eventOfType(domain.EventDisasterUpdated)).Return(nil)

	title := " NYC Flood (updated) "
	got, err := svc.Update(context.Background(), "netrunnerX", "d-1", domain.DisasterUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestDisasterService_UpdateErrors(t *testing.T) {
	t.Run("blank title", func(t *testing.T) {
		svc, _ := newDisasterService(t, nil)
		blank := "  "
		_, err := svc.Update(context.Background(), "netrunnerX", "d-1", domain.DisasterUpdate{Title: &blank})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("unknown disaster", func(t *testing.T) {
		svc, dm := newDisasterService(t, nil)
		dm.disasters.EXPECT().Update(mock.Anything, "missing", mock.Anything, mock.Anything).
			Return(nil, domain.NewNotFoundError("disaster", "missing"))

		desc := "x"
		_, err := svc.Update(context.Background(), "netrunnerX", "missing", domain.DisasterUpdate{Description: &desc})
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestDisasterService_Delete(t *testing.T) {
	t.Run("publishes deletion", func(t *testing.T) {
		svc, dm := newDisasterService(t, nil)
		dm.disasters.EXPECT().Delete(mock.Anything, "d-1").Return(nil)
		dm.events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventDisasterUpdated &&
				e.Payload == domain.DisasterDeleted{ID: "d-1"} &&
				e.OccurredAt.Equal(testNow)
		})).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), "d-1"))
	})

	t.Run("unknown disaster", func(t *testing.T) {
		svc, dm := newDisasterService(t, nil)
		dm.disasters.EXPECT().Delete(mock.Anything, "missing").Return(domain.NewNotFoundError("disaster", "missing"))

		assert.True(t, domain.IsNotFound(svc.Delete(context.Background(), "missing")))
	})
}

func TestDisasterService_List(t *testing.T) {
	svc, dm := newDisasterService(t, nil)
	dm.disasters.EXPECT().List(mock.Anything, domain.DisasterFilter{Tag: "flood"}).
		Return([]domain.Disaster{*storedDisaster()}, nil)

	got, err := svc.List(context.Background(), domain.DisasterFilter{Tag: " flood "})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
