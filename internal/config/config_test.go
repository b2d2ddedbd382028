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

func TestLoad(t *testing.T) {
	t.Run("minimal config gets defaults", func(t *testing.T) {
		path := writeConfig(t, `
[scheduling]
provider = "calcom"
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.HTTPPort)
		assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "info", cfg.Logs.Level)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, 9, cfg.Business.WorkStartHour)
		assert.Equal(t, 17, cfg.Business.WorkEndHour)
		assert.Equal(t, 30, cfg.Business.StepMinutes)
		assert.Equal(t, 60, cfg.Business.DurationMinutes)
	})

	t.Run("explicit values survive defaults", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 9090

[scheduling]
provider = "crm"

[business]
work_start_hour = 8
work_end_hour = 20
step_minutes = 15
duration_minutes = 45
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.HTTPPort)
		assert.Equal(t, "crm", cfg.Scheduling.Provider)
		assert.Equal(t, 8, cfg.Business.WorkStartHour)
		assert.Equal(t, 15, cfg.Business.StepMinutes)
		assert.Equal(t, 45, cfg.Business.DurationMinutes)
	})

	t.Run("missing scheduling provider", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 8080
`)

		_, err := Load(path)
		assert.ErrorContains(t, err, "scheduling.provider")
	})

	t.Run("inverted working hours", func(t *testing.T) {
		path := writeConfig(t, `
[scheduling]
provider = "calcom"

[business]
work_start_hour = 18
work_end_hour = 9
`)

		_, err := Load(path)
		assert.ErrorContains(t, err, "work_end_hour")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "postgres",
		Password: "secret", DBName: "callassist", SSLMode: "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=callassist sslmode=disable",
		d.DSN())
}
