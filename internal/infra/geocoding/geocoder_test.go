package geocoding

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/service"
	mockSvc "placebook/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGeocoder_ReverseGeocode_Success(t *testing.T) {
	provider := mockSvc.NewMockPlaceProvider(t)
	g := NewGeocoder(provider, nil, newTestLogger())

	ctx := context.Background()
	coord := entity.Coordinate{Latitude: 40.748817, Longitude: -73.985428}

	provider.EXPECT().ReverseGeocode(ctx, coord).Return([]service.Placemark{
		{
			ExternalID:         "W34633854",
			Name:               "Empire State Building",
			SubThoroughfare:    "350",
			Thoroughfare:       "5th Avenue",
			Locality:           "New York",
			AdministrativeArea: "New York",
			PostalCode:         "10118",
			Country:            "United States",
		},
		{Name: "ignored"},
	}, nil).Once()

	metadata, err := g.ReverseGeocode(ctx, coord)
	require.NoError(t, err)
	assert.Equal(t, "Empire State Building", metadata.Name)
	assert.Equal(t, "350, 5th Avenue, New York, New York, 10118, United States", metadata.Address)
	assert.Equal(t, "W34633854", metadata.ExternalPlaceID)
}

func TestGeocoder_ReverseGeocode_NoResults(t *testing.T) {
	provider := mockSvc.NewMockPlaceProvider(t)
	g := NewGeocoder(provider, nil, newTestLogger())

	ctx := context.Background()
	coord := entity.Coordinate{Latitude: 0, Longitude: -160}

	provider.EXPECT().ReverseGeocode(ctx, coord).Return(nil, nil).Once()

	metadata, err := g.ReverseGeocode(ctx, coord)
	assert.Nil(t, metadata)
	require.ErrorIs(t, err, domainerrors.ErrGeocodingFailed)

	var failed *domainerrors.GeocodingFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "no address found", failed.Reason)
}

func TestGeocoder_ReverseGeocode_UpstreamError(t *testing.T) {
	provider := mockSvc.NewMockPlaceProvider(t)
	g := NewGeocoder(provider, nil, newTestLogger())

	ctx := context.Background()
	coord := entity.Coordinate{Latitude: 1, Longitude: 1}

	provider.EXPECT().ReverseGeocode(ctx, coord).Return(nil, errors.New("connection refused")).Once()

	_, err := g.ReverseGeocode(ctx, coord)
	require.ErrorIs(t, err, domainerrors.ErrGeocodingFailed)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		name string
		pm   service.Placemark
		want string
	}{
		{
			name: "all components",
			pm: service.Placemark{
				SubThoroughfare: "1", Thoroughfare: "Main St", Locality: "Springfield",
				AdministrativeArea: "IL", PostalCode: "62701", Country: "USA",
			},
			want: "1, Main St, Springfield, IL, 62701, USA",
		},
		{
			name: "gaps are skipped",
			pm:   service.Placemark{Thoroughfare: "Unnamed Road", Country: "Kenya"},
			want: "Unnamed Road, Kenya",
		},
		{
			name: "blank components are skipped",
			pm:   service.Placemark{Locality: "  ", Country: "France"},
			want: "France",
		},
		{
			name: "nothing",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAddress(tt.pm))
		})
	}
}
