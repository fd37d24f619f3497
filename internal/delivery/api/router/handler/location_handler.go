package handler

import (
	"log/slog"
	"net/http"

	"placebook/internal/delivery/api/response"
	"placebook/internal/domain/entity"
	"placebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// SaveResolvedLocationRequest carries a transient location returned by the places endpoints
type SaveResolvedLocationRequest struct {
	Name            string   `json:"name" validate:"required,max=200"`
	Address         string   `json:"address" validate:"max=500"`
	Latitude        *float64 `json:"latitude" validate:"required,latitude"`
	Longitude       *float64 `json:"longitude" validate:"required,longitude"`
	ExternalPlaceID string   `json:"external_place_id,omitempty" validate:"max=64"`
	Origin          string   `json:"origin" validate:"required,oneof=my_location search_result map_selection"`
}

// ListLocations handles GET /collections/:id/locations
func (h *LocationHandler) ListLocations(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	collectionID, ok, err := parseIDParam(c, "id", "collection ID")
	if !ok {
		return err
	}

	locations, err := h.locationUC.ListLocations(c.Request().Context(), userID, collectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLocationResponses(locations))
}

// AddLocation handles POST /collections/:id/locations
func (h *LocationHandler) AddLocation(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	collectionID, ok, err := parseIDParam(c, "id", "collection ID")
	if !ok {
		return err
	}

	var req usecase.AddLocationInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	location, err := h.locationUC.AddLocation(c.Request().Context(), userID, collectionID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toLocationResponse(location))
}

// SaveResolvedLocation handles POST /collections/:id/locations/resolved
func (h *LocationHandler) SaveResolvedLocation(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	collectionID, ok, err := parseIDParam(c, "id", "collection ID")
	if !ok {
		return err
	}

	var req SaveResolvedLocationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	resolved := entity.NewLocation(entity.LocationParams{
		ExternalPlaceID: req.ExternalPlaceID,
		Name:            req.Name,
		Address:         req.Address,
		Coordinate:      entity.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude},
		Origin:          entity.LocationOrigin(req.Origin),
	})

	location, err := h.locationUC.SaveResolvedLocation(c.Request().Context(), userID, collectionID, resolved)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toLocationResponse(location))
}

// GetLocation handles GET /locations/:id
func (h *LocationHandler) GetLocation(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	locationID, ok, err := parseIDParam(c, "id", "location ID")
	if !ok {
		return err
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), userID, locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(location))
}

// UpdateLocation handles PUT /locations/:id
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	locationID, ok, err := parseIDParam(c, "id", "location ID")
	if !ok {
		return err
	}

	var req usecase.UpdateLocationInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	location, err := h.locationUC.UpdateLocation(c.Request().Context(), userID, locationID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(location))
}

// DeleteLocation handles DELETE /locations/:id
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	locationID, ok, err := parseIDParam(c, "id", "location ID")
	if !ok {
		return err
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), userID, locationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
