package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"placebook/internal/delivery/api/response"
	"placebook/internal/domain/entity"
	"placebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	PlaceUC usecase.PlaceResolutionUsecase
	Logger  *slog.Logger
}

// PlaceHandler serves map selection, current position and autocomplete
type PlaceHandler struct {
	placeUC usecase.PlaceResolutionUsecase
	logger  *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{
		placeUC: params.PlaceUC,
		logger:  params.Logger,
	}
}

// ResolvePlaceRequest is a tapped or current coordinate. Range checks are
// left to the use case so that they surface as GEOCODING_FAILED.
type ResolvePlaceRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	HintName  string   `json:"hint_name,omitempty" validate:"max=200"`
}

func (r *ResolvePlaceRequest) coordinate() entity.Coordinate {
	return entity.Coordinate{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

// ResolveSuggestionRequest identifies a suggestion returned by GetSuggestions
type ResolveSuggestionRequest struct {
	ID      string `json:"id" validate:"omitempty,uuid"`
	Name    string `json:"name" validate:"max=200"`
	Address string `json:"address" validate:"max=500"`
}

// ResolveMapSelection handles POST /places/resolve
func (h *PlaceHandler) ResolveMapSelection(c echo.Context) error {
	var req ResolvePlaceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	location, err := h.placeUC.ResolveMapSelection(c.Request().Context(), req.coordinate(), req.HintName)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(location))
}

// ResolveCurrentLocation handles POST /places/current
func (h *PlaceHandler) ResolveCurrentLocation(c echo.Context) error {
	var req ResolvePlaceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	location, err := h.placeUC.ResolveCurrentLocation(c.Request().Context(), req.coordinate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(location))
}

// GetSuggestions handles GET /places/suggestions?q=&session=
// A request superseded by a newer one in the same session answers with an empty list.
func (h *PlaceHandler) GetSuggestions(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	sessionKey := userID.String()
	if session := strings.TrimSpace(c.QueryParam("session")); session != "" {
		sessionKey += ":" + session
	}

	suggestions := h.placeUC.GetSuggestions(c.Request().Context(), sessionKey, c.QueryParam("q"))

	out := make([]*LocationResponse, 0, len(suggestions))
	for i := range suggestions {
		out = append(out, toLocationResponse(&suggestions[i]))
	}

	return response.Success(c, http.StatusOK, out)
}

// ResolveSuggestion handles POST /places/suggestions/resolve
func (h *PlaceHandler) ResolveSuggestion(c echo.Context) error {
	var req ResolveSuggestionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	suggestion := entity.Location{
		Name:    req.Name,
		Address: req.Address,
		Origin:  entity.OriginSuggestion,
	}
	if req.ID != "" {
		suggestion.ID = uuid.MustParse(req.ID)
	}

	location, err := h.placeUC.ResolveSuggestion(c.Request().Context(), suggestion)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(location))
}
