package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pageza/devconnector/backend/internal/types"
)

// TokenConfig holds the signing secret and token lifetime
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// TokenService issues and verifies HS256 identity tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg TokenConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for iat/exp and expiry checks
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs a token for userID that expires after the configured TTL
func (s *TokenService) Issue(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := &types.TokenClaims{
		User: types.TokenUser{ID: userID.String()},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify checks the signature and expiry of token and returns the user id it carries
func (s *TokenService) Verify(token string) (uuid.UUID, error) {
	claims := &types.TokenClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	_, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return uuid.Nil, ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, ErrTokenExpired
		default:
			return uuid.Nil, ErrTokenMalformed
		}
	}

	userID, err := uuid.Parse(claims.User.ID)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, ErrTokenMalformed
	}
	return userID, nil
}
