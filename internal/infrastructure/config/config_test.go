package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	names := []string{"ACCOUNTS_LOG_LEVEL", "ACCOUNTS_LOG_FORMAT", "ACCOUNTS_STORAGE_DRIVER", "ACCOUNTS_SEED_ENABLED", "ACCOUNTS_SERVER_PORT"}
	for _, alias := range envAliases {
		names = append(names, alias)
	}
	for _, name := range names {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	chdir(t, t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "purchase_orders", cfg.Tables.PurchaseOrders)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("ACCOUNTS_LOG_LEVEL", "debug")
	t.Setenv("ACCOUNTS_LOG_FORMAT", "json")
	t.Setenv("ACCOUNTS_STORAGE_DRIVER", "dynamodb")
	t.Setenv("PORT", "9090")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("CONTACTS_TABLE", "contacts-dev")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DriverDynamoDB, cfg.Storage.Driver)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://dynamodb:8000", cfg.AWS.Endpoint)
	assert.Equal(t, "contacts-dev", cfg.Tables.Contacts)
}

func TestLoad_PrefixedWinsOverAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ACCOUNTS_SERVER_PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_SeedEnabledFromEnv(t *testing.T) {
	tests := []struct {
		driver string
		value  string
		want   bool
	}{
		{DriverMemory, "true", true},
		{DriverMemory, "false", false},
		{DriverDynamoDB, "true", true},
		{DriverDynamoDB, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.driver+"/"+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("ACCOUNTS_STORAGE_DRIVER", tt.driver)
			if tt.value != "" {
				t.Setenv("ACCOUNTS_SEED_ENABLED", tt.value)
			}

			cfg, err := Load("")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Seed.Enabled)
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	content := "storage:\n  driver: dynamodb\nseed:\n  enabled: true\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverDynamoDB, cfg.Storage.Driver)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"log level", map[string]string{"ACCOUNTS_LOG_LEVEL": "loud"}},
		{"log format", map[string]string{"ACCOUNTS_LOG_FORMAT": "xml"}},
		{"driver", map[string]string{"ACCOUNTS_STORAGE_DRIVER": "postgres"}},
		{"port", map[string]string{"PORT": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
