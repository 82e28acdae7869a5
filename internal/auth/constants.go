// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the lifetime of an issued access token. There is no renewal.
	AccessTokenTTL = 1 * time.Hour

	// InvalidCredentialsMessage is the only message a failed login ever returns.
	InvalidCredentialsMessage = "Invalid credentials"
)

// # Field Identifiers

const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldAccessToken = "access_token"
)
