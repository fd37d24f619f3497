package impl

import (
	"context"
	"log/slog"
	"strings"

	"placebook/config"
	deliverycontext "placebook/internal/delivery/context"
	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/service"
	"placebook/internal/usecase"

	"go.uber.org/fx"
)

type placeResolutionService struct {
	geocoder     service.Geocoder
	searcher     service.PlaceSearcher
	suggestions  service.SuggestionProvider
	searchRadius float64
	logger       *slog.Logger
}

// PlaceResolutionServiceParams holds dependencies for PlaceResolutionService, injected by Fx.
type PlaceResolutionServiceParams struct {
	fx.In

	Geocoder    service.Geocoder
	Searcher    service.PlaceSearcher
	Suggestions service.SuggestionProvider
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPlaceResolutionService creates a new place resolution service instance
func NewPlaceResolutionService(params PlaceResolutionServiceParams) usecase.PlaceResolutionUsecase {
	radius := 0.0
	if params.Config != nil && params.Config.Geocoding != nil {
		radius = params.Config.Geocoding.SearchRadiusMeters
	}

	return &placeResolutionService{
		geocoder:     params.Geocoder,
		searcher:     params.Searcher,
		suggestions:  params.Suggestions,
		searchRadius: radius,
		logger:       params.Logger,
	}
}

func (srv *placeResolutionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveMapSelection tries a hinted nearby search first and falls back to
// reverse geocoding. The returned location keeps the tapped coordinate.
func (srv *placeResolutionService) ResolveMapSelection(ctx context.Context, coord entity.Coordinate, hintName string) (*entity.Location, error) {
	return srv.resolve(ctx, coord, hintName, entity.OriginMapSelection)
}

// ResolveCurrentLocation reverse geocodes the device position.
func (srv *placeResolutionService) ResolveCurrentLocation(ctx context.Context, coord entity.Coordinate) (*entity.Location, error) {
	return srv.resolve(ctx, coord, "", entity.OriginMyLocation)
}

func (srv *placeResolutionService) resolve(ctx context.Context, coord entity.Coordinate, hintName string, origin entity.LocationOrigin) (*entity.Location, error) {
	if !coord.IsValid() {
		return nil, domainerrors.NewGeocodingFailedError("invalid coordinate")
	}

	hint := strings.TrimSpace(hintName)
	if hint != "" {
		region := service.Region{Center: coord, RadiusMeters: srv.searchRadius}
		if metadata, ok := srv.searcher.SearchNearby(ctx, hint, region); ok {
			srv.log(ctx).Debug("Resolved map selection by nearby search",
				slog.String("hint", hint),
				slog.String("name", metadata.Name),
			)

			return buildResolvedLocation(coord, metadata, hint, origin), nil
		}
	}

	metadata, err := srv.geocoder.ReverseGeocode(ctx, coord)
	if err != nil {
		srv.log(ctx).Info("Reverse geocoding failed",
			slog.Float64("latitude", coord.Latitude),
			slog.Float64("longitude", coord.Longitude),
			slog.Any("error", err),
		)

		return nil, err
	}

	return buildResolvedLocation(coord, metadata, hint, origin), nil
}

func buildResolvedLocation(coord entity.Coordinate, metadata *entity.LocationMetadata, hint string, origin entity.LocationOrigin) *entity.Location {
	if metadata == nil {
		metadata = &entity.LocationMetadata{}
	}

	return entity.NewLocation(entity.LocationParams{
		ExternalPlaceID: metadata.ExternalPlaceID,
		Name:            firstNonEmpty(metadata.Name, hint, metadata.Address, entity.UnknownLocationName),
		Address:         metadata.Address,
		Coordinate:      coord,
		Origin:          origin,
	})
}

// GetSuggestions returns debounced autocomplete suggestions for the session.
func (srv *placeResolutionService) GetSuggestions(ctx context.Context, sessionKey, query string) []entity.Location {
	return srv.suggestions.Suggest(ctx, sessionKey, query)
}

// ResolveSuggestion turns a picked suggestion into a search result with coordinates.
func (srv *placeResolutionService) ResolveSuggestion(ctx context.Context, suggestion entity.Location) (*entity.Location, error) {
	location, ok := srv.suggestions.Resolve(ctx, suggestion)
	if !ok {
		return nil, domainerrors.ErrPlaceNotFound.WithDetails(suggestion.Name)
	}

	return location, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}

	return ""
}
