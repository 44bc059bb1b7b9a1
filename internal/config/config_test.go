package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "crm",
		DatabasePassword: "secret",
		DatabaseHost:     "db",
		DatabasePort:     "5433",
		DatabaseName:     "crm_test",
		DatabaseSSLMode:  "disable",
	}

	assert.Equal(t, "postgres://crm:secret@db:5433/crm_test?sslmode=disable", buildDatabaseURL(cfg))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		config      *Config
		expectError bool
	}{
		{
			name:   "Valid development config",
			config: &Config{Environment: "development", DatabaseName: "crm", BcryptCost: bcrypt.MinCost},
		},
		{
			name:        "Missing database",
			config:      &Config{Environment: "development", BcryptCost: bcrypt.DefaultCost},
			expectError: true,
		},
		{
			name:        "Bcrypt cost out of range",
			config:      &Config{Environment: "development", DatabaseName: "crm", BcryptCost: 99},
			expectError: true,
		},
		{
			name:        "Weak bcrypt cost in production",
			config:      &Config{Environment: "production", DatabaseName: "crm", BcryptCost: bcrypt.MinCost},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(tc.config)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	assert.True(t, (&Config{Environment: "development"}).IsDevelopment())
	assert.True(t, (&Config{Environment: "production"}).IsProduction())
	assert.False(t, (&Config{Environment: "test"}).IsProduction())
}

func TestShutdownTimeout(t *testing.T) {
	assert.Equal(t, 10*time.Second, (&Config{}).ShutdownTimeout())
	assert.Equal(t, 3*time.Second, (&Config{ShutdownTimeoutSec: 3}).ShutdownTimeout())
}
