package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"placebook/internal/delivery/api/middleware"
	"placebook/internal/delivery/api/router/handler"
	"placebook/internal/delivery/api/validator"
	"placebook/internal/domain/entity"
	"placebook/internal/domain/service"
	mockSvc "placebook/internal/mocks/service"
	mockUsecase "placebook/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerMocks struct {
	tokens      *mockSvc.MockTokenService
	places      *mockUsecase.MockPlaceResolutionUsecase
	collections *mockUsecase.MockCollectionUsecase
	locations   *mockUsecase.MockLocationUsecase
}

func newTestEcho(t *testing.T) (*echo.Echo, *routerMocks) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := &routerMocks{
		tokens:      mockSvc.NewMockTokenService(t),
		places:      mockUsecase.NewMockPlaceResolutionUsecase(t),
		collections: mockUsecase.NewMockCollectionUsecase(t),
		locations:   mockUsecase.NewMockLocationUsecase(t),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "placebook_test_total", Help: "test"}))

	r := NewRouter(RouterParams{
		PlaceHandler:      handler.NewPlaceHandler(handler.PlaceHandlerParams{PlaceUC: m.places, Logger: logger}),
		CollectionHandler: handler.NewCollectionHandler(handler.CollectionHandlerParams{CollectionUC: m.collections, Logger: logger}),
		LocationHandler:   handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: m.locations, Logger: logger}),
		AuthMiddleware:    middleware.NewAuthMiddleware(m.tokens, logger),
		Registry:          registry,
	})

	e := echo.New()
	e.Validator = validator.New()
	r.RegisterRoutes(e)

	return e, m
}

func TestRouter_PublicRoutes(t *testing.T) {
	e, _ := newTestEcho(t)

	tests := []struct {
		path         string
		wantContains string
	}{
		{path: "/health", wantContains: `"status":"ok"`},
		{path: "/metrics", wantContains: "placebook_test_total"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantContains)
		})
	}
}

func TestRouter_APIRequiresToken(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/collections", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AuthenticatedRequestReachesHandler(t *testing.T) {
	e, m := newTestEcho(t)
	userID := uuid.New()

	m.tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Type: "access"}, nil).Once()
	m.collections.EXPECT().ListCollections(mock.Anything, userID).Return([]*entity.Collection{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/collections", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_SharedCollectionIsPublic(t *testing.T) {
	e, m := newTestEcho(t)

	m.collections.EXPECT().GetSharedCollection(mock.Anything, "abc123").Return(nil, assert.AnError).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shared/abc123", nil))

	// A non-domain error falls through to echo's default handler
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
