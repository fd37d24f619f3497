package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUserID is the key for the authenticated user ID in echo.Context.
const KeyUserID ContextKey = "user_id"

// SetUserID stores the authenticated user ID in echo.Context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID returns the authenticated user ID, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}
