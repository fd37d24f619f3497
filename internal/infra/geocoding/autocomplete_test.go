package geocoding

import (
	"context"
	"errors"
	"testing"
	"time"

	"placebook/config"
	"placebook/internal/domain/entity"
	"placebook/internal/domain/service"
	mockSvc "placebook/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAutocompleter(t *testing.T, provider service.PlaceProvider) *Autocompleter {
	t.Helper()

	cfg := &config.AutocompleteConfig{
		Debounce:    10 * time.Millisecond,
		HandleTTL:   time.Minute,
		SessionTTL:  time.Minute,
		ResultLimit: 4,
	}

	a := NewAutocompleter(provider, cfg, nil, newTestLogger())
	t.Cleanup(a.Close)

	return a
}

func TestAutocompleter_Suggest_MapsCompletions(t *testing.T) {
	provider := mockSvc.NewMockPlaceProvider(t)
	a := newTestAutocompleter(t, provider)

	provider.EXPECT().
		Complete(mock.Anything, "empire", 4).
		Return([]service.Completion{
			{Title: "Empire State Building", Subtitle: "350 5th Avenue, New York", Handle: "W34633854"},
			{Title: "Empire Diner", Subtitle: "210 10th Avenue, New York", Handle: "N42"},
		}, nil).
		Once()

	suggestions := a.Suggest(context.Background(), "user-1", "empire")
	require.Len(t, suggestions, 2)

	first := suggestions[0]
	assert.Equal(t, "Empire State Building", first.Name)
	assert.Equal(t, "350 5th Avenue, New York", first.Address)
	assert.Equal(t, entity.OriginSuggestion, first.Origin)
	assert.True(t, first.IsTransient())
	assert.Zero(t, first.Latitude)
	assert.Zero(t, first.Longitude)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, suggestions[1].ID)
}

func TestAutocompleter_Suggest_UpstreamErrorYieldsEmpty(t *testing.T) {
	provider := mockSvc.NewMockPlaceProvider(t)
	a := newTestAutocompleter(t, provider)

	provider.EXPECT().
		Complete(mock.Anything, "pizza", 4).
		Return(nil, errors.New("timeout")).
		Once()

	suggestions := a.Suggest(context.Background(), "user-1", "pizza")
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestAutocompleter_Suggest_SessionsAreIndependent(t *testing.T) {
	provider := mockSvc.NewMockPlaceProvider(t)
	a := newTestAutocompleter(t, provider)

	provider.EXPECT().
		Complete(mock.Anything, mock.AnythingOfType("string"), 4).
		RunAndReturn(func(_ context.Context, fragment string, _ int) ([]service.Completion, error) {
			return []service.Completion{{Title: fragment, Handle: "N1"}}, nil
		}).
		Twice()

	results := make(chan []entity.Location, 2)
	go func() { results <- a.Suggest(context.Background(), "alice", "cafe") }()
	go func() { results <- a.Suggest(context.Background(), "bob", "bar") }()

	names := []string{}
	for range 2 {
		suggestions := <-results
		require.Len(t, suggestions, 1)
		names = append(names, suggestions[0].Name)
	}
	assert.ElementsMatch(t, []string{"cafe", "bar"}, names)
}

func TestAutocompleter_Resolve_UsesRetainedHandle(t *testing.T) {
	provider := mockSvc.NewMockPlaceProvider(t)
	a := newTestAutocompleter(t, provider)
	ctx := context.Background()

	provider.EXPECT().
		Complete(mock.Anything, "empire", 4).
		Return([]service.Completion{
			{Title: "Empire State Building", Subtitle: "New York", Handle: "W34633854"},
		}, nil).
		Once()

	provider.EXPECT().
		ResolveCompletion(ctx, "W34633854").
		Return(&service.Placemark{
			ExternalID:   "W34633854",
			Name:         "Empire State Building",
			Coordinate:   entity.Coordinate{Latitude: 40.7484284999, Longitude: -73.9856546},
			Thoroughfare: "5th Avenue",
			Locality:     "New York",
		}, nil).
		Once()

	suggestions := a.Suggest(ctx, "user-1", "empire")
	require.Len(t, suggestions, 1)

	location, ok := a.Resolve(ctx, suggestions[0])
	require.True(t, ok)
	assert.Equal(t, entity.OriginSearchResult, location.Origin)
	assert.Equal(t, "Empire State Building", location.Name)
	assert.Equal(t, "5th Avenue, New York", location.Address)
	assert.Equal(t, "W34633854", location.ExternalPlaceID)
	assert.InDelta(t, 40.7484285, location.Latitude, 1e-12)
	assert.InDelta(t, -73.9856546, location.Longitude, 1e-12)
	assert.NotEqual(t, suggestions[0].ID, location.ID)
}

func TestAutocompleter_Resolve_ExpiredHandleFallsBackToSearch(t *testing.T) {
	provider := mockSvc.NewMockPlaceProvider(t)
	a := newTestAutocompleter(t, provider)
	ctx := context.Background()

	suggestion := entity.NewLocation(entity.LocationParams{
		Name:    "Joe's Pizza",
		Address: "7 Carmine Street, New York",
		Origin:  entity.OriginSuggestion,
	})

	provider.EXPECT().
		Search(ctx, "Joe's Pizza, 7 Carmine Street, New York", (*service.Region)(nil), 1).
		Return([]service.Placemark{{
			Name:       "Joe's Pizza",
			Coordinate: entity.Coordinate{Latitude: 40.730599, Longitude: -74.002791},
		}}, nil).
		Once()

	location, ok := a.Resolve(ctx, *suggestion)
	require.True(t, ok)
	assert.Equal(t, entity.OriginSearchResult, location.Origin)
	assert.Equal(t, "Joe's Pizza", location.Name)
	// The placemark has no address components, so the suggestion subtitle is kept.
	assert.Equal(t, "7 Carmine Street, New York", location.Address)
	assert.InDelta(t, 40.730599, location.Latitude, 1e-12)
}

func TestAutocompleter_Resolve_FailedHandleFallsBackToSearch(t *testing.T) {
	provider := mockSvc.NewMockPlaceProvider(t)
	a := newTestAutocompleter(t, provider)
	ctx := context.Background()

	provider.EXPECT().
		Complete(mock.Anything, "joe", 4).
		Return([]service.Completion{{Title: "Joe's Pizza", Handle: "N7"}}, nil).
		Once()
	provider.EXPECT().
		ResolveCompletion(ctx, "N7").
		Return(nil, errors.New("lookup failed")).
		Once()
	provider.EXPECT().
		Search(ctx, "Joe's Pizza", (*service.Region)(nil), 1).
		Return(nil, nil).
		Once()

	suggestions := a.Suggest(ctx, "user-1", "joe")
	require.Len(t, suggestions, 1)

	location, ok := a.Resolve(ctx, suggestions[0])
	assert.False(t, ok)
	assert.Nil(t, location)
}

func TestAutocompleter_Resolve_NothingToSearch(t *testing.T) {
	provider := mockSvc.NewMockPlaceProvider(t)
	a := newTestAutocompleter(t, provider)

	location, ok := a.Resolve(context.Background(), entity.Location{ID: uuid.New()})
	assert.False(t, ok)
	assert.Nil(t, location)
}

func TestAutocompleter_EndSession(t *testing.T) {
	provider := mockSvc.NewMockPlaceProvider(t)
	cfg := &config.AutocompleteConfig{Debounce: time.Second}
	a := NewAutocompleter(provider, cfg, nil, newTestLogger())

	result := make(chan []entity.Location, 1)
	go func() { result <- a.Suggest(context.Background(), "user-1", "pizza") }()

	require.Eventually(t, func() bool {
		d := a.session("user-1")

		return d.Pending()
	}, time.Second, 5*time.Millisecond)

	a.EndSession("user-1")

	select {
	case suggestions := <-result:
		assert.Empty(t, suggestions)
	case <-time.After(2 * time.Second):
		t.Fatal("pending suggestion was not resolved")
	}
}

func TestAutocompleter_Close(t *testing.T) {
	provider := mockSvc.NewMockPlaceProvider(t)
	cfg := &config.AutocompleteConfig{Debounce: time.Second}
	a := NewAutocompleter(provider, cfg, nil, newTestLogger())

	result := make(chan []entity.Location, 1)
	go func() { result <- a.Suggest(context.Background(), "user-2", "tacos") }()

	require.Eventually(t, func() bool {
		return a.session("user-2").Pending()
	}, time.Second, 5*time.Millisecond)

	a.Close()

	select {
	case suggestions := <-result:
		assert.Empty(t, suggestions)
	case <-time.After(2 * time.Second):
		t.Fatal("pending suggestion was not resolved")
	}
	assert.Zero(t, a.sessions.ItemCount())
}
