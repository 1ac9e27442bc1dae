package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8081", cfg.Backends.PatientsBaseURL)
	assert.Equal(t, "http://localhost:8082", cfg.Backends.RecordsBaseURL)
	assert.Equal(t, "http://localhost:8083/api/v1", cfg.Backends.InvoicesBaseURL)
	assert.Equal(t, "http://localhost:8084/api/v1", cfg.Backends.AppointmentsBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 50, cfg.ToastMaxEntries)
	assert.Equal(t, 3*time.Second, cfg.ToastDefaultDuration)
	assert.Equal(t, ":8080", cfg.ListenAddr())
	assert.Empty(t, cfg.DBDSN)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PATIENTS_API_BASE_URL", "http://patients.internal:9000")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("PORT", "9090")
	t.Setenv("TOAST_MAX_ENTRIES", "5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://patients.internal:9000", cfg.Backends.PatientsBaseURL)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, ":9090", cfg.ListenAddr())
	assert.Equal(t, 5, cfg.ToastMaxEntries)
}

func TestLoad_AdminAddrWinsOverPort(t *testing.T) {
	t.Setenv("ADMIN_ADDR", "127.0.0.1:7000")
	t.Setenv("PORT", "9090")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.ListenAddr())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("records_api_base_url: http://records:8082\nlog_level: debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://records:8082", cfg.Backends.RecordsBaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_RejectsInvalidURL(t *testing.T) {
	t.Setenv("INVOICES_API_BASE_URL", "not-a-url")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoices")
}
