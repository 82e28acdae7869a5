// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-gate/internal/platform/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BASIC_AUTH_USER", "svc")
	t.Setenv("BASIC_AUTH_PASS", "hunter2")
	t.Setenv("USER_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("JWT_SECRET", "signing-key")
}

/*
TestLoadFrom_Defaults verifies that optional settings fall back to their defaults.
*/
func TestLoadFrom_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.ServerPort)
	assert.Equal(t, "svc", cfg.BasicAuthUser)
	assert.Equal(t, "hunter2", cfg.BasicAuthPass)
	assert.Equal(t, "signing-key", cfg.JWTSecret)
	assert.Equal(t, "public/secret.zip", cfg.AssetPath)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.AllowsAnyOrigin())
}

/*
TestLoadFrom_MissingSecret checks that each required variable is enforced.
*/
func TestLoadFrom_MissingSecret(t *testing.T) {
	for _, name := range []string{"BASIC_AUTH_USER", "BASIC_AUTH_PASS", "USER_PASSWORD_HASH", "JWT_SECRET"} {
		t.Run(name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(name, "")

			_, err := config.LoadFrom("")
			assert.Error(t, err)
		})
	}
}

/*
TestLoadFrom_EnvFile checks that a dotenv file fills gaps without overriding
variables already present in the environment.
*/
func TestLoadFrom_EnvFile(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_PORT", "9000")

	path := filepath.Join(t.TempDir(), ".env")
	content := "SERVER_PORT=4000\nASSET_PATH=/srv/bundle.zip\nCORS_ORIGINS=https://a.example, https://b.example\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv writes into the process environment; register cleanup for the keys it sets.
	t.Setenv("ASSET_PATH", "")
	require.NoError(t, os.Unsetenv("ASSET_PATH"))
	t.Setenv("CORS_ORIGINS", "")
	require.NoError(t, os.Unsetenv("CORS_ORIGINS"))

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "/srv/bundle.zip", cfg.AssetPath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.AllowsAnyOrigin())
	assert.True(t, cfg.AllowedOrigin("https://b.example"))
	assert.False(t, cfg.AllowedOrigin("https://evil.example"))
}

/*
TestLoadFrom_MissingEnvFile confirms an absent dotenv file is not an error.
*/
func TestLoadFrom_MissingEnvFile(t *testing.T) {
	setRequired(t)

	_, err := config.LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.NoError(t, err)
}
