package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"placebook/config"
	"placebook/internal/errors"
	"placebook/internal/infra/geocoding"
	"placebook/internal/infra/geocoding/nominatim"
	logs "placebook/internal/infra/log"
	"placebook/internal/usecase"
	"placebook/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app holds what the subcommands share. Everything is built lazily so that
// `placectl token` does not need a reachable geocoder.
type app struct {
	loadConfig func() (*config.Config, error)
	logOutput  io.Writer

	cfg           *config.Config
	logger        *slog.Logger
	autocompleter *geocoding.Autocompleter
}

func newApp() *app {
	return &app{
		loadConfig: config.New,
		logOutput:  os.Stderr,
	}
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "placebook",
		Short:         "Placebook command line tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return a.init()
	}

	rootCmd.AddCommand(
		resolveCommand(a),
		suggestCommand(a),
		tokenCommand(a),
	)

	return rootCmd
}

func (a *app) init() error {
	if a.cfg == nil {
		cfg, err := a.loadConfig()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		a.cfg = cfg
	}

	logger, err := logs.NewWithWriter(a.cfg, a.logOutput)
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	a.logger = logger

	return nil
}

// placeResolver wires the resolution use case by hand, without fx.
func (a *app) placeResolver() (usecase.PlaceResolutionUsecase, error) {
	provider, err := nominatim.NewPlaceProvider(a.cfg, a.logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create place provider")
	}

	metrics, err := geocoding.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}

	a.autocompleter = geocoding.NewAutocompleter(provider, a.cfg.Autocomplete, metrics, a.logger)

	return impl.NewPlaceResolutionService(impl.PlaceResolutionServiceParams{
		Geocoder:    geocoding.NewGeocoder(provider, metrics, a.logger),
		Searcher:    geocoding.NewPlaceSearcher(provider, a.cfg.Geocoding, metrics, a.logger),
		Suggestions: geocoding.NewSuggestionProvider(a.autocompleter),
		Config:      a.cfg,
		Logger:      a.logger,
	}), nil
}

func (a *app) close() {
	if a.autocompleter != nil {
		a.autocompleter.Close()
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
