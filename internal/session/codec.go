// Package session implements the signed, self-contained session tokens
// used for authentication, plus the cookie plumbing around them.
package session

import (
	"errors"
	"fmt"
	"time"

	"whosmudassir/shop-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is how long a session stays valid after each issue or refresh.
const TTL = time.Hour

var (
	ErrSigningKey       = errors.New("session signing key is not configured")
	ErrInvalidSignature = errors.New("session token signature is invalid")
	ErrExpired          = errors.New("session token is expired")
)

type Claims struct {
	User model.PublicUser `json:"user"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a fixed HS256 key.
// Tokens with any other signing method are rejected outright.
type Codec struct {
	key []byte
}

func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, ErrSigningKey
	}

	return &Codec{key: []byte(secret)}, nil
}

// Sign serializes the user into a token that expires at the given time.
// Callers must pass a model.PublicUser so the password hash can never
// end up inside a token.
func (c *Codec) Sign(user model.PublicUser, expiresAt time.Time) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	return t.SignedString(c.key)
}

// Verify decodes a token, returning ErrInvalidSignature for tokens not
// signed with our key and ErrExpired for tokens past their expiry.
func (c *Codec) Verify(token string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return c.key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, err
		}
	}

	return claims, nil
}
