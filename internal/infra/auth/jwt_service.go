package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"tesotunes/config"
	"tesotunes/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// jwtClaims is the wire shape of our token claims.
type jwtClaims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTokenTTL,
		refreshTTL:    refreshTokenTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user and roles.
func (s *jwtService) GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, roles, s.accessTTL, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, nil, s.refreshTTL, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken checks a token's signature and expiry and returns its
// claims. The token type claim decides which secret verifies it.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	// First parse without verification to learn the token type; the
	// second parse verifies against the matching secret.
	unverified := &jwtClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, unverified); err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	secret := s.accessSecret
	switch unverified.Type {
	case tokenTypeAccess:
	case tokenTypeRefresh:
		secret = s.refreshSecret
	default:
		return nil, errors.Errorf("unknown token type: %q", unverified.Type)
	}

	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate token")
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token subject")
	}

	return &service.Claims{
		UserID:           userID,
		Roles:            claims.Roles,
		Type:             claims.Type,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

// HashToken returns the SHA-256 hex digest under which a raw refresh
// token is stored. Raw tokens never touch the database.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		Roles: roles,
		Type:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
