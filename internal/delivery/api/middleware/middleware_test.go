package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"placebook/internal/delivery/api/response"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/service"
	"placebook/internal/errors"
	mockSvc "placebook/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(tokens *mockSvc.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Type: "access"}, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/collections", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewAuthMiddleware(tokens, newTestLogger()).Authenticate(func(c echo.Context) error {
				got, ok := GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, userID, got)

				return c.NoContent(http.StatusNoContent)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "TOKEN_INVALID", decodeError(t, rec).Code)
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "domain error",
			err:        domainerrors.ErrCollectionNotFound.WrapMessage("lookup"),
			wantStatus: http.StatusNotFound,
			wantCode:   "COLLECTION_NOT_FOUND",
		},
		{
			name:       "geocoding failure",
			err:        domainerrors.NewGeocodingFailedError("no address found"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "GEOCODING_FAILED",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(newTestLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}
