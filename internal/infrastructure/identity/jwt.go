package identity

import (
	"errors"
	"strings"
	"time"

	"rotaclick/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrUnknownRole  = errors.New("unknown role")
)

type Claims struct {
	Role      string `json:"role"`
	CarrierID string `json:"carrier_id,omitempty"`
	Email     string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Actor converts verified claims into the caller identity used by the use
// cases. The subject is the user id.
func (c *Claims) Actor() entities.Actor {
	return entities.Actor{UserID: c.Subject, Role: c.Role, CarrierID: c.CarrierID}
}

// TokenService signs and verifies HS256 tokens issued by the identity
// provider that fronts the platform.
type TokenService struct {
	secret []byte
	issuer string
}

func NewTokenService(secret, issuer string) *TokenService {
	return &TokenService{secret: []byte(secret), issuer: issuer}
}

func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := new(Claims)
	token, err := jwt.NewParser(opts...).ParseWithClaims(strings.TrimSpace(tokenStr), claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	if !knownRole(claims.Role) {
		return nil, ErrUnknownRole
	}
	return claims, nil
}

// Sign issues a token for the given actor. Used by cmd/devtoken and tests.
func (s *TokenService) Sign(actor entities.Actor, ttl time.Duration) (string, error) {
	if !knownRole(actor.Role) {
		return "", ErrUnknownRole
	}
	now := time.Now().UTC()
	claims := Claims{
		Role:      actor.Role,
		CarrierID: actor.CarrierID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func knownRole(role string) bool {
	switch role {
	case entities.RoleAdmin, entities.RoleCarrier, entities.RoleCustomer:
		return true
	default:
		return false
	}
}
