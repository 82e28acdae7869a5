// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// auth service via the [auth.TokenSigner] interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret is returned by [NewTokenService] when no signing key is supplied.
var ErrEmptySecret = errors.New("sec: signing secret must not be empty")

// TokenService signs and verifies JWTs using HS256 with a shared secret.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a new TokenService.
//
// The secret is copied; now may be nil, in which case [time.Now] is used.
func NewTokenService(secret []byte, now func() time.Time) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if now == nil {
		now = time.Now
	}

	key := make([]byte, len(secret))
	copy(key, secret)

	return &TokenService{secret: key, now: now}, nil
}

// Now returns the service clock. Callers use it to stamp temporal claims so
// signing and verification agree on the current time.
func (service *TokenService) Now() time.Time {
	return service.now()
}

// Sign serializes and signs the given claims.
func (service *TokenService) Sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}
	return signedToken, nil
}

// Parse verifies tokenString and decodes its payload into claims.
//
// Tokens without an expiry, with a non-HMAC algorithm, or past their expiry
// are rejected.
func (service *TokenService) Parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
			}
			return service.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil {
		return fmt.Errorf("sec: invalid token: %w", err)
	}
	if !token.Valid {
		return errors.New("sec: invalid token claims")
	}
	return nil
}
