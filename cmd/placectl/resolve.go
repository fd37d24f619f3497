package main

import (
	"placebook/internal/domain/entity"

	"github.com/spf13/cobra"
)

// placeOutput is the printed form of a resolved or suggested place
type placeOutput struct {
	Name            string  `json:"name"`
	Address         string  `json:"address,omitempty"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	ExternalPlaceID string  `json:"external_place_id,omitempty"`
	Origin          string  `json:"origin"`
}

func toPlaceOutput(l *entity.Location) placeOutput {
	return placeOutput{
		Name:            l.Name,
		Address:         l.Address,
		Latitude:        l.Latitude,
		Longitude:       l.Longitude,
		ExternalPlaceID: l.ExternalPlaceID,
		Origin:          l.Origin.String(),
	}
}

func resolveCommand(a *app) *cobra.Command {
	var (
		lat, lon float64
		hint     string
		current  bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a coordinate to a named place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver, err := a.placeResolver()
			if err != nil {
				return err
			}

			coord := entity.Coordinate{Latitude: lat, Longitude: lon}

			var location *entity.Location
			if current {
				location, err = resolver.ResolveCurrentLocation(cmd.Context(), coord)
			} else {
				location, err = resolver.ResolveMapSelection(cmd.Context(), coord, hint)
			}
			if err != nil {
				return err
			}

			return printJSON(cmd, toPlaceOutput(location))
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude in degrees")
	cmd.Flags().StringVar(&hint, "hint", "", "Name shown on the map at the tapped point")
	cmd.Flags().BoolVar(&current, "current", false, "Resolve as the device's current location")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}
