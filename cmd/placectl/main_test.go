package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"placebook/config"
	"placebook/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://nominatim.test"

func newTestApp() *app {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "placectl-test-secret"
	cfg.SecretKey.AccessTTL = time.Hour
	cfg.ApplyDefaults()
	cfg.Geocoding.BaseURL = testBaseURL
	cfg.Geocoding.UserAgent = "placectl-test"

	return &app{cfg: cfg, logOutput: io.Discard}
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand(a)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	a.close()

	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	a := newTestApp()
	userID := uuid.New()

	out, err := run(t, a, "token", "--user", userID.String())
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, userID.String(), got["user_id"])
	assert.Equal(t, "1h0m0s", got["expires_in"])

	tokens, err := auth.NewJWTService(a.cfg)
	require.NoError(t, err)
	claims, err := tokens.ValidateToken(got["access_token"])
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestTokenCommand_InvalidUser(t *testing.T) {
	_, err := run(t, newTestApp(), "token", "--user", "nobody")
	assert.ErrorContains(t, err, "invalid --user")
}

func TestResolveCommand(t *testing.T) {
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/reverse", httpmock.NewStringResponder(http.StatusOK, `{
		"place_id": 1,
		"osm_type": "way",
		"osm_id": 34633854,
		"lat": "40.7484284",
		"lon": "-73.9856546",
		"name": "Empire State Building",
		"display_name": "Empire State Building, 350, 5th Avenue, Manhattan, New York, 10118, United States",
		"address": {"house_number": "350", "road": "5th Avenue", "city": "New York", "postcode": "10118", "country": "United States"}
	}`))

	out, err := run(t, newTestApp(), "resolve", "--lat", "40.7484", "--lon", "-73.9857")
	require.NoError(t, err)

	var got placeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Empire State Building", got.Name)
	assert.Equal(t, "map_selection", got.Origin)
	// The tapped coordinate is kept, not the provider's
	assert.InDelta(t, 40.7484, got.Latitude, 1e-9)
	assert.InDelta(t, -73.9857, got.Longitude, 1e-9)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestResolveCommand_RequiresCoordinates(t *testing.T) {
	_, err := run(t, newTestApp(), "resolve", "--lat", "40.7484")
	assert.Error(t, err)
}
