package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 9090

[database]
user = "amenity"
password = "secret"
dbname = "amenity_service"

[logs]
level = "debug"

[reservation_service]
url = "http://reservations:8090"
timeout = 3

[wizard]
session_ttl_minutes = 15
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "http://reservations:8090", cfg.ReservationService.URL)
	assert.Equal(t, 15, cfg.Wizard.SessionTTLMinutes)

	// Defaults fill unset fields
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 5, cfg.Wizard.CleanupIntervalMinutes)
	assert.True(t, cfg.Metrics.Enabled)

	assert.Equal(t,
		"host=localhost port=5432 user=amenity password=secret dbname=amenity_service sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing database user",
			`[database]
dbname = "x"
[reservation_service]
url = "http://r"`,
		},
		{
			"missing reservation service url",
			`[database]
user = "u"
dbname = "x"`,
		},
		{
			"bad wizard ttl",
			`[database]
user = "u"
dbname = "x"
[reservation_service]
url = "http://r"
[wizard]
session_ttl_minutes = 0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
