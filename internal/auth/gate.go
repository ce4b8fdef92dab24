// Package auth verifies the bearer tokens issued by the storefront's auth
// service and turns them into profiles.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nikolayk812/storefront/internal/domain"
)

type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type Gate struct {
	secret []byte
	now    func() time.Time
}

func NewGate(secret string) (*Gate, error) {
	if secret == "" {
		return nil, errors.New("secret is empty")
	}

	return &Gate{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs a token for the profile valid for ttl.
func (g *Gate) Issue(profile domain.Profile, ttl time.Duration) (string, error) {
	if profile.ID == "" {
		return "", domain.ErrOwnerIDEmpty
	}

	now := g.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:  profile.Name,
		Email: profile.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}

	return signed, nil
}

// Authenticate accepts either a raw token or an Authorization header value.
func (g *Gate) Authenticate(token string) (domain.Profile, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return domain.Profile{}, fmt.Errorf("token is empty: %w", domain.ErrUnauthenticated)
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(g.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("jwt.ParseWithClaims: %w: %w", domain.ErrUnauthenticated, err)
	}

	if claims.Subject == "" {
		return domain.Profile{}, fmt.Errorf("subject is empty: %w", domain.ErrUnauthenticated)
	}

	first, last := splitName(claims.Name)

	return domain.Profile{
		ID:        claims.Subject,
		Name:      claims.Name,
		FirstName: first,
		LastName:  last,
		Email:     claims.Email,
	}, nil
}

func (g *Gate) IsAuthenticated(token string) bool {
	_, err := g.Authenticate(token)
	return err == nil
}

// splitName puts the first word in the first name and the rest in the last name.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}

	return parts[0], strings.Join(parts[1:], " ")
}
