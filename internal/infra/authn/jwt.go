// Package authn issues and verifies the bearer tokens that carry a
// marketplace principal.
package authn

import (
	"fmt"
	"time"

	"artmarket/internal/domain/access"

	"github.com/golang-jwt/jwt/v5"
)

type Service struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{key: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for p.
func (s *Service) Issue(p access.Principal) (string, error) {
	if len(s.key) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": p.ID(),
		"role":    string(p.Role()),
		"exp":     s.now().Add(s.ttl).Unix(),
	})
	return token.SignedString(s.key)
}

// Authenticate verifies a token and returns the principal it carries. Any
// failure yields access.ErrUnauthenticated.
func (s *Service) Authenticate(tokenString string) (access.Principal, error) {
	if tokenString == "" || len(s.key) == 0 {
		return access.Principal{}, access.ErrUnauthenticated
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return access.Principal{}, access.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return access.Principal{}, access.ErrUnauthenticated
	}
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return access.Principal{}, access.ErrUnauthenticated
	}
	roleStr, _ := claims["role"].(string)
	role, ok := access.ParseRole(roleStr)
	if !ok {
		return access.Principal{}, access.ErrUnauthenticated
	}

	return access.Grant(uint(userID), role), nil
}
