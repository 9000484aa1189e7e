package config

import (
	"os"
	"strconv"
)

// ApplyEnv overlays server settings from the environment.
func (c *Config) ApplyEnv() {
	c.Server.Addr = envOr("CLIPSTRUCT_ADDR", c.Server.Addr)
	c.Server.RateLimitPerMin = envInt("CLIPSTRUCT_RATE_LIMIT", c.Server.RateLimitPerMin)
	c.Server.MaxBodyBytes = envInt64("CLIPSTRUCT_MAX_BODY_BYTES", c.Server.MaxBodyBytes)
	c.MaxConcurrent = envInt("CLIPSTRUCT_MAX_CONCURRENT", c.MaxConcurrent)
	c.normalize()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
