package auth

import (
	"testing"
	"time"

	"placebook/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, defaultAccessTTL, svc.GetAccessTokenDuration())
}

func TestJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.AccessTTL = time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.GetAccessTokenDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "another_secret_key_that_is_long_enough"
	validator, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		accessSecret: testSecret,
		accessTTL:    time.Minute,
		now:          func() time.Time { return time.Now().Add(-time.Hour) },
	}

	token, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherTokenTypes(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"type":    "refresh",
		"exp":     time.Now().Add(time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
