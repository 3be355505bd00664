package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{"defaults are valid", Config{Port: "3000", Env: "development", DBDriver: "sqlite"}, false},
		{"missing port", Config{Env: "development", DBDriver: "sqlite"}, true},
		{"unknown driver", Config{Port: "3000", Env: "development", DBDriver: "mysql"}, true},
		{"postgres in development", Config{Port: "3000", Env: "development", DBDriver: "postgres"}, false},
		{"production postgres default password", Config{Port: "3000", Env: "production", DBDriver: "postgres", DBPassword: "password"}, true},
		{"production postgres strong password", Config{Port: "3000", Env: "production", DBDriver: "postgres", DBPassword: "s3cure-enough"}, false},
		{"production sqlite only warns", Config{Port: "3000", Env: "production", DBDriver: "sqlite"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file::memory:?cache=shared", cfg.DBPath)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, "stdout", cfg.TracingExport)
	assert.InDelta(t, 1.0, cfg.TracingRatio, 0.0001)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("DB_DRIVER")
	defer viper.Reset()

	os.Setenv("PORT", "8080")
	os.Setenv("DB_DRIVER", "  SQLITE  ")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver, "driver is trimmed and lowercased")
}
