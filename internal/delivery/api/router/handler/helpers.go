package handler

import (
	"placebook/internal/delivery/api/middleware"
	"placebook/internal/delivery/api/response"
	"placebook/internal/delivery/api/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the request into req and runs struct validation.
// When it reports false the error response has already been written.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, validator.FieldErrors(err))
	}

	return true, nil
}

// requireUser returns the authenticated user. When it reports false a 401 has been written.
func requireUser(c echo.Context) (uuid.UUID, bool, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, true, nil
}

// parseIDParam parses a UUID path parameter. When it reports false a 400 has been written.
func parseIDParam(c echo.Context, param, label string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+label)
	}

	return id, true, nil
}
