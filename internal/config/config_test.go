package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearConfigEnv unsets every variable Load reads so tests see the defaults
// regardless of the host environment.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT",
		"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_TIMEOUT_SECONDS",
		"CHUNK_MAX_CHARS", "CHUNK_OVERLAP", "ACCOUNT_HEAD_CHARS", "CHUNK_CONCURRENCY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 120*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 8000, cfg.Chunking.MaxChunkChars)
	assert.Equal(t, 500, cfg.Chunking.ChunkOverlap)
	assert.Equal(t, 3000, cfg.Chunking.AccountHeadChars)
	assert.Equal(t, 4, cfg.Chunking.ChunkConcurrency)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "30")
	t.Setenv("CHUNK_MAX_CHARS", "4000")
	t.Setenv("CHUNK_OVERLAP", "250")
	t.Setenv("CHUNK_CONCURRENCY", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 4000, cfg.Chunking.MaxChunkChars)
	assert.Equal(t, 250, cfg.Chunking.ChunkOverlap)
	assert.Equal(t, 1, cfg.Chunking.ChunkConcurrency)
}

func TestLoad_UnparsableIntFallsBack(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("CHUNK_MAX_CHARS", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Chunking.MaxChunkChars)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "overlap equal to max chunk size", key: "CHUNK_OVERLAP", val: "8000"},
		{name: "negative overlap", key: "CHUNK_OVERLAP", val: "-1"},
		{name: "zero chunk size", key: "CHUNK_MAX_CHARS", val: "0"},
		{name: "zero concurrency", key: "CHUNK_CONCURRENCY", val: "0"},
		{name: "zero head chars", key: "ACCOUNT_HEAD_CHARS", val: "0"},
		{name: "port out of range", key: "SERVER_PORT", val: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
