package geocoding

import (
	"context"
	"log/slog"

	"placebook/config"
	"placebook/internal/domain/service"
	"placebook/internal/infra/geocoding/nominatim"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// Module provides the place provider, the resolution adapters and their metrics.
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(registry *prometheus.Registry) (*Metrics, error) {
			return NewMetrics(registry)
		},
		func(cfg *config.Config) *config.GeocodingConfig {
			return cfg.Geocoding
		},
		func(cfg *config.Config) *config.AutocompleteConfig {
			return cfg.Autocomplete
		},
		nominatim.NewPlaceProvider,
		NewGeocoder,
		NewPlaceSearcher,
		NewAutocompleterWithLifecycle,
		NewSuggestionProvider,
	),
)

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// AutocompleterParams defines the dependencies of the fx-managed autocompleter
type AutocompleterParams struct {
	fx.In
	fx.Lifecycle

	Provider service.PlaceProvider
	Config   *config.AutocompleteConfig
	Metrics  *Metrics
	Logger   *slog.Logger
}

// NewAutocompleterWithLifecycle closes all suggestion sessions on shutdown.
func NewAutocompleterWithLifecycle(params AutocompleterParams) *Autocompleter {
	a := NewAutocompleter(params.Provider, params.Config, params.Metrics, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			a.Close()

			return nil
		},
	})

	return a
}
