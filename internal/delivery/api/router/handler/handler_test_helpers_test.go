package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"placebook/internal/delivery/api/response"
	"placebook/internal/delivery/api/validator"
	deliverycontext "placebook/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type successBody struct {
	Data json.RawMessage    `json:"data"`
	Meta *response.MetaInfo `json:"meta"`
}

func newRequestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// newUserContext builds a request already authenticated as userID.
func newUserContext(userID uuid.UUID, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newRequestContext(method, target, body)
	deliverycontext.SetUserID(c, userID)

	return c, rec
}

func withIDParam(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body successBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	var out T
	require.NoError(t, json.Unmarshal(body.Data, &out))

	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}
