package client

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 30 * time.Second

// tokenSigner mints short-lived service tokens for upstream calls.
type tokenSigner struct {
	secret  []byte
	subject string
	ttl     time.Duration
	now     func() time.Time
}

func (s *tokenSigner) sign() (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"exp":  now.Add(s.ttl).Unix(),
		"iat":  now.Unix(),
		"sub":  s.subject,
		"type": "access",
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
