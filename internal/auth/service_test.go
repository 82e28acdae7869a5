// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/yomira-gate/internal/auth"
	"github.com/taibuivan/yomira-gate/internal/platform/apperr"
	"github.com/taibuivan/yomira-gate/internal/platform/sec"
)

const (
	testPassword = "correct horse battery staple"
	testSecret   = "jwt-test-secret"
)

var issuedAt = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

var (
	hashOnce sync.Once
	testHash string
)

// passwordHash generates the bcrypt hash of testPassword once per test binary.
func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		testHash = string(hash)
	})
	return testHash
}

func newTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	tokens, err := sec.NewTokenService([]byte(testSecret), func() time.Time { return issuedAt })
	require.NoError(t, err)
	return tokens
}

func newService(t *testing.T) (*auth.Service, *sec.TokenService) {
	t.Helper()
	tokens := newTokenService(t)
	return auth.NewService(auth.DefaultPrincipal(passwordHash(t)), tokens), tokens
}

// failingSigner simulates a signing primitive failure.
type failingSigner struct{}

func (failingSigner) Sign(jwt.Claims) (string, error) { return "", errors.New("hsm offline") }
func (failingSigner) Now() time.Time { return issuedAt }

/*
TestService_Login_Success checks that a valid login yields a token whose
claims equal the claim set and that expires exactly one hour after issuance.
*/
func TestService_Login_Success(t *testing.T) {
	service, tokens := newService(t)

	result, err := service.Login(auth.LoginInput{Username: "gor_manukyan", Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)

	assert.Equal(t, issuedAt, result.IssuedAt)
	assert.Equal(t, issuedAt.Add(time.Hour), result.ExpiresAt)

	var claims auth.AccessClaims
	require.NoError(t, tokens.Parse(result.AccessToken, &claims))

	assert.Equal(t, service.Profile(), claims.ClaimSet)
	assert.Equal(t, issuedAt, claims.IssuedAt.Time.UTC())
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

/*
TestService_Login_InvalidCredentials verifies that every failing combination
returns the very same error.
*/
func TestService_Login_InvalidCredentials(t *testing.T) {
	service, _ := newService(t)

	tests := []struct {
		name  string
		input auth.LoginInput
	}{
		{"wrong_password", auth.LoginInput{Username: "gor_manukyan", Password: "wrong"}},
		{"wrong_username", auth.LoginInput{Username: "someone_else", Password: testPassword}},
		{"both_wrong", auth.LoginInput{Username: "someone_else", Password: "wrong"}},
		{"username_case", auth.LoginInput{Username: "GOR_MANUKYAN", Password: testPassword}},
		{"missing_username", auth.LoginInput{Password: testPassword}},
		{"missing_password", auth.LoginInput{Username: "gor_manukyan"}},
		{"empty", auth.LoginInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Login(tt.input)
			assert.Nil(t, result)
			require.ErrorIs(t, err, auth.ErrInvalidCredentials)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
			assert.Equal(t, "Invalid credentials", appErr.Message)
		})
	}
}

/*
TestService_Login_InternalFailures checks that primitive failures surface as
generic internal errors that still carry the cause for logging.
*/
func TestService_Login_InternalFailures(t *testing.T) {
	t.Run("malformed_stored_hash", func(t *testing.T) {
		service := auth.NewService(auth.DefaultPrincipal("not-a-hash"), newTokenService(t))

		_, err := service.Login(auth.LoginInput{Username: "gor_manukyan", Password: testPassword})
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
		assert.Equal(t, "Internal server error", appErr.Error())
		assert.Error(t, appErr.Cause)
	})

	t.Run("signing_failure", func(t *testing.T) {
		service := auth.NewService(auth.DefaultPrincipal(passwordHash(t)), failingSigner{})

		_, err := service.Login(auth.LoginInput{Username: "gor_manukyan", Password: testPassword})
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
		assert.ErrorContains(t, appErr.Cause, "hsm offline")
	})
}

/*
TestService_Login_Concurrent runs parallel logins against the shared service.
*/
func TestService_Login_Concurrent(t *testing.T) {
	service, tokens := newService(t)

	var wg sync.WaitGroup
	results := make([]string, 8)
	errs := make([]error, 8)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			password := testPassword
			if i%2 == 1 {
				password = "wrong"
			}
			result, err := service.Login(auth.LoginInput{Username: "gor_manukyan", Password: password})
			errs[i] = err
			if result != nil {
				results[i] = result.AccessToken
			}
		}(i)
	}
	wg.Wait()

	for i := range results {
		if i%2 == 1 {
			assert.ErrorIs(t, errs[i], auth.ErrInvalidCredentials)
			continue
		}
		require.NoError(t, errs[i])
		assert.NoError(t, tokens.Parse(results[i], &auth.AccessClaims{}))
	}
}

/*
TestService_Profile returns the redacted projection of the principal.
*/
func TestService_Profile(t *testing.T) {
	principal := auth.DefaultPrincipal(passwordHash(t))
	service := auth.NewService(principal, newTokenService(t))

	assert.Equal(t, auth.ToClaimSet(principal), service.Profile())
}
