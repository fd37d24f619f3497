package handler

import (
	"log/slog"
	"net/http"

	"placebook/internal/delivery/api/response"
	"placebook/internal/errors"
	"placebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const mimeGeoJSON = "application/geo+json"

// CollectionHandlerParams holds dependencies for CollectionHandler, injected by Fx.
type CollectionHandlerParams struct {
	fx.In

	CollectionUC usecase.CollectionUsecase
	Logger       *slog.Logger
}

// CollectionHandler holds dependencies for collection-related handlers
type CollectionHandler struct {
	collectionUC usecase.CollectionUsecase
	logger       *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler
func NewCollectionHandler(params CollectionHandlerParams) *CollectionHandler {
	return &CollectionHandler{
		collectionUC: params.CollectionUC,
		logger:       params.Logger,
	}
}

// ListCollections handles GET /collections
func (h *CollectionHandler) ListCollections(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	collections, err := h.collectionUC.ListCollections(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*CollectionResponse, 0, len(collections))
	for _, collection := range collections {
		out = append(out, toCollectionResponse(collection))
	}

	return response.Success(c, http.StatusOK, out)
}

// CreateCollection handles POST /collections
func (h *CollectionHandler) CreateCollection(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req usecase.CreateCollectionInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	collection, err := h.collectionUC.CreateCollection(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCollectionResponse(collection))
}

// GetCollection handles GET /collections/:id
func (h *CollectionHandler) GetCollection(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	collectionID, ok, err := parseIDParam(c, "id", "collection ID")
	if !ok {
		return err
	}

	collection, err := h.collectionUC.GetCollection(c.Request().Context(), userID, collectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCollectionResponse(collection))
}

// UpdateCollection handles PUT /collections/:id
func (h *CollectionHandler) UpdateCollection(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	collectionID, ok, err := parseIDParam(c, "id", "collection ID")
	if !ok {
		return err
	}

	var req usecase.UpdateCollectionInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	collection, err := h.collectionUC.UpdateCollection(c.Request().Context(), userID, collectionID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCollectionResponse(collection))
}

// DeleteCollection handles DELETE /collections/:id
func (h *CollectionHandler) DeleteCollection(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	collectionID, ok, err := parseIDParam(c, "id", "collection ID")
	if !ok {
		return err
	}

	if err := h.collectionUC.DeleteCollection(c.Request().Context(), userID, collectionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ShareCollection handles POST /collections/:id/share
func (h *CollectionHandler) ShareCollection(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	collectionID, ok, err := parseIDParam(c, "id", "collection ID")
	if !ok {
		return err
	}

	collection, err := h.collectionUC.ShareCollection(c.Request().Context(), userID, collectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCollectionResponse(collection))
}

// ShareQRCode handles GET /collections/:id/share/qr and answers with a PNG
func (h *CollectionHandler) ShareQRCode(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	collectionID, ok, err := parseIDParam(c, "id", "collection ID")
	if !ok {
		return err
	}

	png, err := h.collectionUC.ShareQRCode(c.Request().Context(), userID, collectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ExportGeoJSON handles GET /collections/:id/geojson
func (h *CollectionHandler) ExportGeoJSON(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	collectionID, ok, err := parseIDParam(c, "id", "collection ID")
	if !ok {
		return err
	}

	fc, err := h.collectionUC.ExportGeoJSON(c.Request().Context(), userID, collectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode GeoJSON")
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}

// GetSharedCollection handles the public GET /shared/:token
func (h *CollectionHandler) GetSharedCollection(c echo.Context) error {
	shared, err := h.collectionUC.GetSharedCollection(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SharedCollectionResponse{
		Collection: toCollectionResponse(shared.Collection),
		Locations:  toLocationResponses(shared.Locations),
	})
}
