// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"placebook/internal/delivery/api/middleware"
	"placebook/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlaceHandler      *handler.PlaceHandler
	CollectionHandler *handler.CollectionHandler
	LocationHandler   *handler.LocationHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Registry          *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	placeHandler      *handler.PlaceHandler
	collectionHandler *handler.CollectionHandler
	locationHandler   *handler.LocationHandler
	authMiddleware    *middleware.AuthMiddleware
	registry          *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		placeHandler:      params.PlaceHandler,
		collectionHandler: params.CollectionHandler,
		locationHandler:   params.LocationHandler,
		authMiddleware:    params.AuthMiddleware,
		registry:          params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	// Public read-only view of a shared collection
	e.GET("/shared/:token", r.collectionHandler.GetSharedCollection)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	placesGroup := apiV1.Group("/places")
	{
		placesGroup.POST("/resolve", r.placeHandler.ResolveMapSelection)
		placesGroup.POST("/current", r.placeHandler.ResolveCurrentLocation)
		placesGroup.GET("/suggestions", r.placeHandler.GetSuggestions)
		placesGroup.POST("/suggestions/resolve", r.placeHandler.ResolveSuggestion)
	}

	collectionsGroup := apiV1.Group("/collections")
	{
		collectionsGroup.GET("", r.collectionHandler.ListCollections)
		collectionsGroup.POST("", r.collectionHandler.CreateCollection)
		collectionsGroup.GET("/:id", r.collectionHandler.GetCollection)
		collectionsGroup.PUT("/:id", r.collectionHandler.UpdateCollection)
		collectionsGroup.DELETE("/:id", r.collectionHandler.DeleteCollection)
		collectionsGroup.POST("/:id/share", r.collectionHandler.ShareCollection)
		collectionsGroup.GET("/:id/share/qr", r.collectionHandler.ShareQRCode)
		collectionsGroup.GET("/:id/geojson", r.collectionHandler.ExportGeoJSON)

		collectionsGroup.GET("/:id/locations", r.locationHandler.ListLocations)
		collectionsGroup.POST("/:id/locations", r.locationHandler.AddLocation)
		collectionsGroup.POST("/:id/locations/resolved", r.locationHandler.SaveResolvedLocation)
	}

	locationsGroup := apiV1.Group("/locations")
	{
		locationsGroup.GET("/:id", r.locationHandler.GetLocation)
		locationsGroup.PUT("/:id", r.locationHandler.UpdateLocation)
		locationsGroup.DELETE("/:id", r.locationHandler.DeleteLocation)
	}
}
