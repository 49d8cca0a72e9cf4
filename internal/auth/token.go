package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds the token verification parameters. Tokens are issued elsewhere.
type Config struct {
	Secret string
	Issuer string
}

// Claims is the verified content of a bearer token.
type Claims struct {
	OwnerID   string
	TokenID   string
	ExpiresAt time.Time
}

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// ParseToken validates an HS256 signed token and returns its claims. The token
// subject is the owner ID. Tokens without a jti claim are identified by the
// digest of the raw token.
func ParseToken(token string, cfg Config) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || registered.Subject == "" {
		return nil, ErrInvalidToken
	}

	tokenID := registered.ID
	if tokenID == "" {
		digest := sha256.Sum256([]byte(token))
		tokenID = hex.EncodeToString(digest[:])
	}

	return &Claims{
		OwnerID:   registered.Subject,
		TokenID:   tokenID,
		ExpiresAt: registered.ExpiresAt.Time,
	}, nil
}

// SignToken issues an HS256 token for ownerID. Used by tests and local tooling.
func SignToken(cfg Config, ownerID, tokenID string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   ownerID,
		ID:        tokenID,
		Issuer:    cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}
