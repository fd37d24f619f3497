package middleware

import (
	"log/slog"
	"strings"

	"placebook/internal/delivery/api/response"
	deliverycontext "placebook/internal/delivery/context"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware validates JWT access tokens
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate requires a valid bearer access token and stores its user ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}

// GetUserID returns the user ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}
