package services

import (
	"errors"
	"fmt"
	"time"

	"shopcart/internal/apperrors"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// TokenProvider issues and parses HS256 tokens whose subject is the customer email.
type TokenProvider struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewTokenProvider creates a TokenProvider. The secret is loaded once at startup.
func NewTokenProvider(secret string, validity time.Duration) *TokenProvider {
	return &TokenProvider{
		secret:   []byte(secret),
		validity: validity,
		now:      time.Now,
	}
}

// CreateToken signs a token for identity that expires after the configured validity.
func (p *TokenProvider) CreateToken(identity string) (string, error) {
	now := p.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Id:        uuid.New().String(),
		Subject:   identity,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(p.validity).Unix(),
	})

	tokenString, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// GetPayload verifies the token and returns the identity it was issued for.
func (p *TokenProvider) GetPayload(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return "", apperrors.NewAuthenticationError("invalid token", err)
	}
	if !token.Valid {
		return "", apperrors.NewAuthenticationError("invalid token", nil)
	}
	if claims.Subject == "" {
		return "", apperrors.NewAuthenticationError("invalid token", errors.New("token has no subject"))
	}
	return claims.Subject, nil
}
