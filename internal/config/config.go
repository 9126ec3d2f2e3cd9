// Package config loads application configuration from the environment into an
// explicit struct. Nothing in this codebase reads environment variables
// anywhere else; the config is built once and passed in.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Chunking ChunkingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// ChunkingConfig tunes how statement text is split and dispatched.
type ChunkingConfig struct {
	MaxChunkChars    int
	ChunkOverlap     int
	AccountHeadChars int
	ChunkConcurrency int
}

// Defaults match the reference processing behavior: 8000-char chunks with a
// 500-char overlap, account info from the first 3000 chars.
const (
	defaultModel            = "gemini-2.5-flash"
	defaultMaxChunkChars    = 8000
	defaultChunkOverlap     = 500
	defaultAccountHeadChars = 3000
	defaultChunkConcurrency = 4
)

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8000),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", defaultModel),
			Timeout: time.Duration(getEnvAsInt("GEMINI_TIMEOUT_SECONDS", 120)) * time.Second,
		},
		Chunking: ChunkingConfig{
			MaxChunkChars:    getEnvAsInt("CHUNK_MAX_CHARS", defaultMaxChunkChars),
			ChunkOverlap:     getEnvAsInt("CHUNK_OVERLAP", defaultChunkOverlap),
			AccountHeadChars: getEnvAsInt("ACCOUNT_HEAD_CHARS", defaultAccountHeadChars),
			ChunkConcurrency: getEnvAsInt("CHUNK_CONCURRENCY", defaultChunkConcurrency),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Chunking.MaxChunkChars <= 0 {
		return fmt.Errorf("CHUNK_MAX_CHARS must be positive, got %d", c.Chunking.MaxChunkChars)
	}
	if c.Chunking.ChunkOverlap < 0 || c.Chunking.ChunkOverlap >= c.Chunking.MaxChunkChars {
		return fmt.Errorf("CHUNK_OVERLAP must be in [0, CHUNK_MAX_CHARS), got %d", c.Chunking.ChunkOverlap)
	}
	if c.Chunking.AccountHeadChars <= 0 {
		return fmt.Errorf("ACCOUNT_HEAD_CHARS must be positive, got %d", c.Chunking.AccountHeadChars)
	}
	if c.Chunking.ChunkConcurrency < 1 {
		return fmt.Errorf("CHUNK_CONCURRENCY must be at least 1, got %d", c.Chunking.ChunkConcurrency)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT out of range: %d", c.Server.Port)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
