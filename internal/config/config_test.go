package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestLoadRouterConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *RouterConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  consumer_name: "test-consumer"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
gateway:
  base_url: "https://svix.example.com"
  auth_token: "testtoken"
  timeout: "10s"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *RouterConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "test-consumer", cfg.NATS.ConsumerName)
				assert.Equal(t, 5, cfg.NATS.MaxReconnects)
				assert.Equal(t, "https://svix.example.com", cfg.Gateway.BaseURL)
				assert.Equal(t, "testtoken", cfg.Gateway.AuthToken)
				assert.Equal(t, 10*time.Second, cfg.Gateway.Timeout)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
gateway:
  base_url: "https://svix.example.com"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *RouterConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "DOMAIN_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "webhook-router", cfg.NATS.ConsumerName)
				assert.Equal(t, "30s", cfg.NATS.AckWait.String())
				assert.Equal(t, 3, cfg.NATS.MaxDeliver)
				assert.Equal(t, 30*time.Second, cfg.Gateway.Timeout)
				assert.Equal(t, time.Minute, cfg.Gateway.RetryMaxElapsed)
			},
		},
		{
			name: "missing nats url",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
gateway:
  base_url: "https://svix.example.com"
`,
			expectError: true,
		},
		{
			name: "missing gateway base url",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
database:
  host: localhost
  port: invalid
`,
			expectError: true, // Invalid port should cause unmarshal error
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := writeConfigFile(t, tt.configFile)

			cfg, err := LoadRouterConfig(configFile, t.TempDir())
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: false
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 15
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
gateway:
  base_url: "https://svix.example.com"
  auth_token: "testtoken"
auth:
  jwt_public_key: "test-key"
  api_keys:
    - key-one
    - key-two
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 15, cfg.Server.ReadTimeout)
				assert.Equal(t, "test-key", cfg.Auth.JWTPublicKey)
				assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
gateway:
  base_url: "https://svix.example.com"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 10, cfg.Server.WriteTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  user: testuser
  dbname: testdb
gateway:
  base_url: "https://svix.example.com"
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := writeConfigFile(t, tt.configFile)

			cfg, err := LoadAPIConfig(configFile, t.TempDir())
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable",
		cfg.DSN())
}
