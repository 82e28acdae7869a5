// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/yomira-gate/internal/platform/apperr"
	"github.com/taibuivan/yomira-gate/internal/platform/sec"
)

// ErrInvalidCredentials is returned for every failed login, whichever field was wrong.
var ErrInvalidCredentials = apperr.Unauthorized(InvalidCredentialsMessage)

// # Contracts & Types

// TokenSigner defines the contract for minting signed tokens.
type TokenSigner interface {
	// Sign serializes and signs claims.
	Sign(claims jwt.Claims) (string, error)

	// Now is the clock used to stamp issued-at and expiry.
	Now() time.Time
}

// AccessClaims is the payload of an access token: the claim set plus the
// standard issued-at and expiry claims.
type AccessClaims struct {
	ClaimSet
	jwt.RegisteredClaims
}

// Service implements the login use case for the single [Principal].
//
// # Concurrency
//
// Service holds only read-only state and may be shared by all requests.
type Service struct {
	principal Principal
	signer    TokenSigner
}

// NewService constructs a new [Service] for principal.
func NewService(principal Principal, signer TokenSigner) *Service {
	return &Service{principal: principal, signer: signer}
}

// # Authentication Flow

// LoginInput holds the application-level credentials of a login attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult is a successfully issued access token.
type LoginResult struct {
	AccessToken string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

/*
Login verifies input against the principal and issues an access token.

Description: The username must match exactly and the password must match the
stored bcrypt hash. The hash comparison runs even when the username is wrong,
so both failures cost the same work and produce the same error.

Returns:
  - *LoginResult: The signed token and its validity window
  - err: [ErrInvalidCredentials], or an internal [apperr.AppError] wrapping
    a hashing or signing failure
*/
func (service *Service) Login(input LoginInput) (*LoginResult, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	usernameMatches := input.Username == service.principal.Username

	passwordMatches, err := sec.ComparePassword(input.Password, service.principal.PasswordHash)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_password_check_failed: %w", err))
	}

	if !usernameMatches || !passwordMatches {
		return nil, ErrInvalidCredentials
	}

	result, err := service.issue()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_token_generation_failed: %w", err))
	}

	return result, nil
}

// Profile returns the principal's public claim set.
func (service *Service) Profile() ClaimSet {
	return ToClaimSet(service.principal)
}

// issue signs a freshly projected claim set valid for [AccessTokenTTL].
func (service *Service) issue() (*LoginResult, error) {
	issuedAt := service.signer.Now().Truncate(time.Second)
	expiresAt := issuedAt.Add(AccessTokenTTL)

	token, err := service.signer.Sign(AccessClaims{
		ClaimSet: ToClaimSet(service.principal),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		IssuedAt:    issuedAt,
		ExpiresAt:   expiresAt,
	}, nil
}
