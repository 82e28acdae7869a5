// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password using the bcrypt algorithm.
// A cost of 0 selects [bcrypt.DefaultCost].
func HashPassword(plainTextPassword string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// ComparePassword compares a plain-text password with its bcrypt hash.
//
// A mismatch is reported as (false, nil). Any other failure, such as a
// malformed stored hash, is returned as an error so callers can tell a wrong
// password apart from a broken deployment.
func ComparePassword(plainTextPassword, existingHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("sec: failed to compare password hash: %w", err)
	}
}

// HashCost returns the bcrypt cost encoded in hash, or an error if hash is
// not a bcrypt hash at all.
func HashCost(existingHash string) (int, error) {
	cost, err := bcrypt.Cost([]byte(existingHash))
	if err != nil {
		return 0, fmt.Errorf("sec: invalid bcrypt hash: %w", err)
	}
	return cost, nil
}
