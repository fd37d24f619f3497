package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"placebook/config"
	deliverycontext "placebook/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	var seenCtxID string
	e.GET("/", mw.Process(func(c echo.Context) error {
		seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "abc-123", seenCtxID)
}

func TestRequestIDMiddleware_GeneratesWhenMissing(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.Default())
	e.GET("/", mw.Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LogsServerErrorsWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	e.GET("/ok", mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))
	e.GET("/boom", mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusInternalServerError)
	}))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Zero(t, buf.Len())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "HTTP Request", line["msg"])
	assert.Equal(t, "ERROR", line["level"])
	assert.EqualValues(t, http.StatusInternalServerError, line["status"])
}
