package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("JOBFINDER_API_URL", "https://jobs.example.com")
	t.Setenv("JOBFINDER_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://jobs.example.com", cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout())
	assert.Equal(t, DefaultDebounce, cfg.Debounce())
}

func TestLoad_RequiresBaseURL(t *testing.T) {
	t.Setenv("JOBFINDER_API_URL", "")
	t.Setenv("JOBFINDER_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"base_url": "https://file.example.com",
		"timeout_sec": 5,
		"debounce_ms": 100,
		"session_file": "`+filepath.ToSlash(filepath.Join(dir, "session.json"))+`"
	}`), 0o600))

	t.Setenv("JOBFINDER_API_URL", "https://env.example.com")
	t.Setenv("JOBFINDER_SESSION_FILE", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.BaseURL, "environment wins over the file")
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, 100*time.Millisecond, cfg.Debounce())
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BaseURL: "https://x.example.com"}, false},
		{"missing url", Config{}, true},
		{"relative url", Config{BaseURL: "/just/a/path"}, true},
		{"negative timeout", Config{BaseURL: "https://x.example.com", TimeoutSec: -1}, true},
		{"negative debounce", Config{BaseURL: "https://x.example.com", DebounceMS: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
