package geocoding

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/service"
)

const addressSeparator = ", "

// geocoder implements service.Geocoder on top of a place provider.
type geocoder struct {
	provider service.PlaceProvider
	metrics  *Metrics
	logger   *slog.Logger
}

// NewGeocoder creates the reverse geocoding adapter.
func NewGeocoder(provider service.PlaceProvider, metrics *Metrics, logger *slog.Logger) service.Geocoder {
	return &geocoder{
		provider: provider,
		metrics:  metrics,
		logger:   logger,
	}
}

// ReverseGeocode makes exactly one upstream call. The caller validates coord.
func (g *geocoder) ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*entity.LocationMetadata, error) {
	started := time.Now()

	placemarks, err := g.provider.ReverseGeocode(ctx, coord)
	if err != nil {
		g.metrics.Observe(OperationReverseGeocode, OutcomeError, started)
		g.logger.Warn("Reverse geocoding failed",
			slog.Float64("latitude", coord.Latitude),
			slog.Float64("longitude", coord.Longitude),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewGeocodingFailedError(err.Error())
	}

	if len(placemarks) == 0 {
		g.metrics.Observe(OperationReverseGeocode, OutcomeEmpty, started)

		return nil, domainerrors.NewGeocodingFailedError("no address found")
	}

	g.metrics.Observe(OperationReverseGeocode, OutcomeSuccess, started)

	return metadataFromPlacemark(placemarks[0]), nil
}

func metadataFromPlacemark(pm service.Placemark) *entity.LocationMetadata {
	return &entity.LocationMetadata{
		Name:            strings.TrimSpace(pm.Name),
		Address:         FormatAddress(pm),
		ExternalPlaceID: pm.ExternalID,
	}
}

// FormatAddress joins the non-empty address components of pm, from house
// number to country, with ", ".
func FormatAddress(pm service.Placemark) string {
	components := []string{
		pm.SubThoroughfare,
		pm.Thoroughfare,
		pm.Locality,
		pm.AdministrativeArea,
		pm.PostalCode,
		pm.Country,
	}

	parts := make([]string, 0, len(components))
	for _, c := range components {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}

	return strings.Join(parts, addressSeparator)
}
