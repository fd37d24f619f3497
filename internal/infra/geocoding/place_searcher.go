package geocoding

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"placebook/config"
	"placebook/internal/domain/entity"
	"placebook/internal/domain/service"

	"github.com/paulmach/orb/geo"
)

const (
	// DefaultSearchRadiusMeters is used when a region carries no radius.
	DefaultSearchRadiusMeters = 1000.0
	// DefaultMaxMatchDistanceMeters is the farthest a match may be from the region center.
	DefaultMaxMatchDistanceMeters = 500.0
	defaultSearchLimit            = 5
)

// placeSearcher implements service.PlaceSearcher.
type placeSearcher struct {
	provider         service.PlaceProvider
	maxMatchDistance float64
	resultLimit      int
	metrics          *Metrics
	logger           *slog.Logger
}

// NewPlaceSearcher creates the nearby search adapter.
func NewPlaceSearcher(provider service.PlaceProvider, cfg *config.GeocodingConfig, metrics *Metrics, logger *slog.Logger) service.PlaceSearcher {
	maxDistance := DefaultMaxMatchDistanceMeters
	limit := defaultSearchLimit
	if cfg != nil {
		if cfg.MaxMatchDistanceMeters > 0 {
			maxDistance = cfg.MaxMatchDistanceMeters
		}
		if cfg.ResultLimit > 0 {
			limit = cfg.ResultLimit
		}
	}

	return &placeSearcher{
		provider:         provider,
		maxMatchDistance: maxDistance,
		resultLimit:      limit,
		metrics:          metrics,
		logger:           logger,
	}
}

// SearchNearby trusts only the top result and only when it lies within the
// match distance of the region center. It never returns an error.
func (s *placeSearcher) SearchNearby(ctx context.Context, query string, region service.Region) (*entity.LocationMetadata, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, false
	}

	if region.RadiusMeters <= 0 {
		region.RadiusMeters = DefaultSearchRadiusMeters
	}

	started := time.Now()

	placemarks, err := s.provider.Search(ctx, query, &region, s.resultLimit)
	if err != nil {
		s.metrics.Observe(OperationSearchNearby, OutcomeError, started)
		s.logger.Warn("Nearby place search failed",
			slog.String("query", query),
			slog.Any("error", err),
		)

		return nil, false
	}

	if len(placemarks) == 0 {
		s.metrics.Observe(OperationSearchNearby, OutcomeEmpty, started)

		return nil, false
	}

	top := placemarks[0]
	distance := geo.DistanceHaversine(region.Center.Point(), top.Coordinate.Point())
	if distance > s.maxMatchDistance {
		s.metrics.Observe(OperationSearchNearby, OutcomeRejected, started)
		s.logger.Debug("Nearby search match too far from selected point",
			slog.String("query", query),
			slog.String("match", top.Name),
			slog.Float64("distance_meters", distance),
		)

		return nil, false
	}

	s.metrics.Observe(OperationSearchNearby, OutcomeSuccess, started)

	return metadataFromPlacemark(top), true
}
