// internal/share/share.go
//
// Share tokens for generated puzzles.
// A token is an HS256 JWT holding the generation parameters (seed, size,
// target). Generation is deterministic for a seed, so the puzzle can be
// rebuilt from the token alone without storing it.

package share

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("share: invalid token")

// Params are the inputs needed to regenerate a puzzle.
type Params struct {
	Seed   int64 `json:"seed"`
	Size   int   `json:"size"`
	Target int   `json:"target"`
}

type claims struct {
	Params
	jwt.RegisteredClaims
}

// Sign returns a token for p valid for ttl.
func Sign(secret string, p Params, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("share: empty secret")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Params: p,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString([]byte(secret))
}

// Parse validates token and returns its parameters. Any failure (bad
// signature, wrong algorithm, expired, missing fields) wraps ErrInvalidToken.
func Parse(secret, token string) (Params, error) {
	var c claims
	t, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !t.Valid || c.Seed == 0 || c.Size <= 0 || c.Target <= 0 {
		return Params{}, ErrInvalidToken
	}
	return c.Params, nil
}
