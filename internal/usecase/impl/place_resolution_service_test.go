package impl

import (
	"context"
	"errors"
	"math"
	"testing"

	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/service"
	"placebook/internal/infra/geocoding"
	mockSvc "placebook/internal/mocks/service"
	"placebook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type placeResolutionMocks struct {
	geocoder    *mockSvc.MockGeocoder
	searcher    *mockSvc.MockPlaceSearcher
	suggestions *mockSvc.MockSuggestionProvider
}

func newPlaceResolutionService(t *testing.T) (usecase.PlaceResolutionUsecase, *placeResolutionMocks) {
	t.Helper()

	m := &placeResolutionMocks{
		geocoder:    mockSvc.NewMockGeocoder(t),
		searcher:    mockSvc.NewMockPlaceSearcher(t),
		suggestions: mockSvc.NewMockSuggestionProvider(t),
	}

	srv := NewPlaceResolutionService(PlaceResolutionServiceParams{
		Geocoder:    m.geocoder,
		Searcher:    m.searcher,
		Suggestions: m.suggestions,
		Config:      newTestConfig(),
		Logger:      newTestLogger(),
	})

	return srv, m
}

// newEndToEndResolution wires the real geocoding adapters on top of a mocked provider.
func newEndToEndResolution(t *testing.T) (usecase.PlaceResolutionUsecase, *mockSvc.MockPlaceProvider) {
	t.Helper()

	provider := mockSvc.NewMockPlaceProvider(t)
	cfg := newTestConfig()
	logger := newTestLogger()

	srv := NewPlaceResolutionService(PlaceResolutionServiceParams{
		Geocoder:    geocoding.NewGeocoder(provider, nil, logger),
		Searcher:    geocoding.NewPlaceSearcher(provider, cfg.Geocoding, nil, logger),
		Suggestions: mockSvc.NewMockSuggestionProvider(t),
		Config:      cfg,
		Logger:      logger,
	})

	return srv, provider
}

func TestPlaceResolutionService_ResolveMapSelection_EmpireStateBuilding(t *testing.T) {
	srv, provider := newEndToEndResolution(t)
	ctx := context.Background()
	tap := entity.Coordinate{Latitude: 40.7484, Longitude: -73.9857}

	match := service.Placemark{
		ExternalID:         "W34633854",
		Name:               "Empire State Building",
		Coordinate:         tap,
		SubThoroughfare:    "20",
		Thoroughfare:       "W 34th St",
		Locality:           "New York",
		AdministrativeArea: "NY",
		PostalCode:         "10001",
		Country:            "United States",
	}
	provider.EXPECT().
		Search(ctx, "Empire State Building", mock.AnythingOfType("*service.Region"), mock.AnythingOfType("int")).
		Return([]service.Placemark{match}, nil).
		Once()

	location, err := srv.ResolveMapSelection(ctx, tap, "Empire State Building")
	require.NoError(t, err)

	assert.Equal(t, "Empire State Building", location.Name)
	assert.Equal(t, "20, W 34th St, New York, NY, 10001, United States", location.Address)
	assert.Equal(t, "W34633854", location.ExternalPlaceID)
	assert.Equal(t, 40.7484, location.Latitude)
	assert.Equal(t, -73.9857, location.Longitude)
	assert.Equal(t, entity.OriginMapSelection, location.Origin)
	assert.True(t, location.IsTransient())
}

func TestPlaceResolutionService_ResolveMapSelection_DistantMatchFallsBackToGeocoder(t *testing.T) {
	srv, provider := newEndToEndResolution(t)
	ctx := context.Background()
	tap := entity.Coordinate{Latitude: 10.0, Longitude: 20.0}

	provider.EXPECT().
		Search(ctx, "Nonexistent Shop", mock.AnythingOfType("*service.Region"), mock.AnythingOfType("int")).
		Return([]service.Placemark{{
			Name:       "Nonexistent Shop",
			Coordinate: entity.Coordinate{Latitude: 10.09, Longitude: 20.0}, // ~10 km north
		}}, nil).
		Once()
	provider.EXPECT().
		ReverseGeocode(ctx, tap).
		Return([]service.Placemark{{
			Name:       "Unnamed Road",
			Coordinate: tap,
			Country:    "Some Country",
		}}, nil).
		Once()

	location, err := srv.ResolveMapSelection(ctx, tap, "Nonexistent Shop")
	require.NoError(t, err)

	assert.Equal(t, "Unnamed Road", location.Name)
	assert.Equal(t, "Some Country", location.Address)
	assert.Equal(t, 10.0, location.Latitude)
	assert.Equal(t, 20.0, location.Longitude)
	assert.Equal(t, entity.OriginMapSelection, location.Origin)
}

func TestPlaceResolutionService_ResolveMapSelection_InvalidCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		coord entity.Coordinate
	}{
		{name: "latitude above range", coord: entity.Coordinate{Latitude: 91, Longitude: 0}},
		{name: "longitude below range", coord: entity.Coordinate{Latitude: 0, Longitude: -180.5}},
		{name: "not a number", coord: entity.Coordinate{Latitude: math.NaN(), Longitude: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any upstream call fails the test.
			srv, _ := newEndToEndResolution(t)

			location, err := srv.ResolveMapSelection(context.Background(), tt.coord, "Cafe")
			require.Error(t, err)
			assert.Nil(t, location)
			assert.ErrorIs(t, err, domainerrors.ErrGeocodingFailed)
		})
	}
}

func TestPlaceResolutionService_ResolveMapSelection_HintUsedWhenGeocoderHasNoName(t *testing.T) {
	srv, m := newPlaceResolutionService(t)
	ctx := context.Background()
	tap := entity.Coordinate{Latitude: 48.8584, Longitude: 2.2945}

	m.searcher.EXPECT().
		SearchNearby(ctx, "Tour Eiffel", service.Region{Center: tap, RadiusMeters: 1000}).
		Return(nil, false).
		Once()
	m.geocoder.EXPECT().
		ReverseGeocode(ctx, tap).
		Return(&entity.LocationMetadata{Address: "Avenue Anatole France, Paris"}, nil).
		Once()

	location, err := srv.ResolveMapSelection(ctx, tap, "  Tour Eiffel ")
	require.NoError(t, err)
	assert.Equal(t, "Tour Eiffel", location.Name)
	assert.Equal(t, "Avenue Anatole France, Paris", location.Address)
}

func TestPlaceResolutionService_ResolveMapSelection_GeocoderFailureWithHint(t *testing.T) {
	srv, m := newPlaceResolutionService(t)
	ctx := context.Background()
	tap := entity.Coordinate{Latitude: 1, Longitude: 1}

	m.searcher.EXPECT().SearchNearby(ctx, "Somewhere", mock.Anything).Return(nil, false).Once()
	m.geocoder.EXPECT().
		ReverseGeocode(ctx, tap).
		Return(nil, domainerrors.NewGeocodingFailedError("no address found")).
		Once()

	location, err := srv.ResolveMapSelection(ctx, tap, "Somewhere")
	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrGeocodingFailed)
}

func TestPlaceResolutionService_ResolveCurrentLocation(t *testing.T) {
	t.Run("geocoder name", func(t *testing.T) {
		srv, m := newPlaceResolutionService(t)
		ctx := context.Background()
		here := entity.Coordinate{Latitude: 25.0339639, Longitude: 121.5644722}

		m.geocoder.EXPECT().
			ReverseGeocode(ctx, here).
			Return(&entity.LocationMetadata{Name: "Taipei 101", Address: "Xinyi Road, Taipei"}, nil).
			Once()

		location, err := srv.ResolveCurrentLocation(ctx, here)
		require.NoError(t, err)
		assert.Equal(t, "Taipei 101", location.Name)
		assert.Equal(t, entity.OriginMyLocation, location.Origin)
		assert.Equal(t, here, location.Coordinate())
	})

	t.Run("falls back to address then unknown", func(t *testing.T) {
		srv, m := newPlaceResolutionService(t)
		ctx := context.Background()
		first := entity.Coordinate{Latitude: 1, Longitude: 2}
		second := entity.Coordinate{Latitude: 3, Longitude: 4}

		m.geocoder.EXPECT().ReverseGeocode(ctx, first).Return(&entity.LocationMetadata{Address: "Main Street"}, nil).Once()
		m.geocoder.EXPECT().ReverseGeocode(ctx, second).Return(&entity.LocationMetadata{}, nil).Once()

		location, err := srv.ResolveCurrentLocation(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, "Main Street", location.Name)

		location, err = srv.ResolveCurrentLocation(ctx, second)
		require.NoError(t, err)
		assert.Equal(t, entity.UnknownLocationName, location.Name)
	})
}

func TestPlaceResolutionService_GetSuggestions(t *testing.T) {
	srv, m := newPlaceResolutionService(t)
	ctx := context.Background()

	expected := []entity.Location{{Name: "Blue Bottle Coffee", Origin: entity.OriginSuggestion}}
	m.suggestions.EXPECT().Suggest(ctx, "session-1", "blue bot").Return(expected).Once()

	assert.Equal(t, expected, srv.GetSuggestions(ctx, "session-1", "blue bot"))
}

func TestPlaceResolutionService_ResolveSuggestion(t *testing.T) {
	suggestion := entity.Location{Name: "Blue Bottle Coffee", Address: "Mint Plaza", Origin: entity.OriginSuggestion}

	t.Run("resolved", func(t *testing.T) {
		srv, m := newPlaceResolutionService(t)
		ctx := context.Background()

		resolved := &entity.Location{Name: "Blue Bottle Coffee", Latitude: 37.7825, Longitude: -122.4079, Origin: entity.OriginSearchResult}
		m.suggestions.EXPECT().Resolve(ctx, suggestion).Return(resolved, true).Once()

		location, err := srv.ResolveSuggestion(ctx, suggestion)
		require.NoError(t, err)
		assert.Same(t, resolved, location)
	})

	t.Run("not found", func(t *testing.T) {
		srv, m := newPlaceResolutionService(t)
		ctx := context.Background()

		m.suggestions.EXPECT().Resolve(ctx, suggestion).Return(nil, false).Once()

		location, err := srv.ResolveSuggestion(ctx, suggestion)
		assert.Nil(t, location)
		assert.True(t, errors.Is(err, domainerrors.ErrPlaceNotFound))
	})
}

func TestPlaceResolutionService_ResolveMapSelection_NearbyMatchKeepsTappedCoordinate(t *testing.T) {
	srv, provider := newEndToEndResolution(t)
	ctx := context.Background()
	tap := entity.Coordinate{Latitude: 40.7484, Longitude: -73.9857}

	// About 200 m north of the tap: close enough to trust, but not the same point.
	provider.EXPECT().
		Search(ctx, "Herald Square", mock.AnythingOfType("*service.Region"), mock.AnythingOfType("int")).
		Return([]service.Placemark{{
			ExternalID:   "N42",
			Name:         "Herald Square",
			Coordinate:   entity.Coordinate{Latitude: 40.7502, Longitude: -73.9857},
			Thoroughfare: "Broadway",
			Locality:     "New York",
		}}, nil).
		Once()

	location, err := srv.ResolveMapSelection(ctx, tap, "Herald Square")
	require.NoError(t, err)

	assert.Equal(t, "Herald Square", location.Name)
	assert.Equal(t, "Broadway, New York", location.Address)
	assert.Equal(t, "N42", location.ExternalPlaceID)
	assert.Equal(t, tap, location.Coordinate())
}

func TestPlaceResolutionService_ResolveMapSelection_GeocoderPlacemarkKeepsTappedCoordinate(t *testing.T) {
	srv, provider := newEndToEndResolution(t)
	ctx := context.Background()
	tap := entity.Coordinate{Latitude: 51.50072919, Longitude: -0.12462480}

	// Reverse geocoders snap to the nearest indexed object.
	provider.EXPECT().
		ReverseGeocode(ctx, tap).
		Return([]service.Placemark{{
			Name:         "Elizabeth Tower",
			Coordinate:   entity.Coordinate{Latitude: 51.5007, Longitude: -0.1245},
			Thoroughfare: "Bridge Street",
			Locality:     "London",
		}}, nil).
		Times(2)

	location, err := srv.ResolveMapSelection(ctx, tap, "")
	require.NoError(t, err)

	assert.Equal(t, "Elizabeth Tower", location.Name)
	assert.Equal(t, "Bridge Street, London", location.Address)
	assert.Equal(t, tap, location.Coordinate())

	current, err := srv.ResolveCurrentLocation(ctx, tap)
	require.NoError(t, err)
	assert.Equal(t, tap, current.Coordinate())
}
