// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"placebook/config"
	"placebook/internal/domain/service"
	"placebook/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess  = "access"
	defaultAccessTTL = 15 * time.Minute
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := cfg.SecretKey.AccessTTL
	if ttl <= 0 {
		ttl = defaultAccessTTL
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates a signed HS256 access token for a user.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := &service.Claims{
		UserID: userID,
		Type:   tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken checks the signature, expiry and type of an access token.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	if claims.Type != tokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	if claims.UserID == uuid.Nil {
		return nil, errors.New("token carries no user")
	}

	return claims, nil
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}
