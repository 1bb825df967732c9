// Package auth defines the credential verification seam used by the auth
// gate. Every scheme (locally issued JWTs today, a hosted identity provider
// tomorrow) plugs in behind the single Verifier interface.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Subject is the outcome of a successful verification: who the credential
// belongs to, plus the claims the scheme carries.
type Subject struct {
	ID   string
	Role string
}

// Identity is the fully resolved principal attached to a request after the
// subject's profile has been loaded. Request-scoped; never persisted.
type Identity struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Role        string
	CreatedAt   int64
}

// Verifier validates an opaque bearer credential. Implementations must treat
// any failure (malformed, expired, revoked, upstream timeout) as a plain
// verification error; the gate maps them all to an unauthenticated rejection.
type Verifier interface {
	Verify(ctx context.Context, token string) (Subject, error)
}

var ErrTokenInvalid = errors.New("token invalid or expired")

type claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies and mints HS256 tokens signed with a shared secret.
type JWTVerifier struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTVerifier(secret string, ttl time.Duration) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), ttl: ttl}
}

// Mint issues a signed token for the given account. Used by the login flow.
func (v *JWTVerifier) Mint(userID uuid.UUID, role string) (string, error) {
	now := time.Now()
	c := &claims{
		UserID: userID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(v.secret)
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (Subject, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Subject{}, ErrTokenInvalid
	}

	id := c.UserID
	if id == "" {
		id = c.Subject
	}
	if id == "" {
		return Subject{}, ErrTokenInvalid
	}

	return Subject{ID: id, Role: c.Role}, nil
}
