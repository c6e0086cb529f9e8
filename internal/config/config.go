package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AssistantConfig struct {
	BaseURL        string `yaml:"baseURL"`
	APIKey         string `yaml:"apiKey"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// Timeout returns the request timeout for the generation backend.
func (a AssistantConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

type Config struct {
	Port         string          `yaml:"port"`
	CookieDomain string          `yaml:"cookieDomain"`
	CookieSecure bool            `yaml:"cookieSecure"`
	Assistant    AssistantConfig `yaml:"assistant"`

	CSRFKey    []byte `yaml:"-"`
	SessionKey []byte `yaml:"-"`
}

// LoadConfig reads the optional YAML file at CONFIG_PATH (default
// config.yaml; a missing file is fine) and then applies environment
// overrides. Security keys come from the environment only.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port: "8585",
		Assistant: AssistantConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-4o-mini",
		},
	}

	path := getEnv("CONFIG_PATH", "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Env-only setup, nothing to merge.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.CookieDomain = getEnv("COOKIE_DOMAIN", cfg.CookieDomain)
	if v, ok := os.LookupEnv("COOKIE_SECURE"); ok {
		cfg.CookieSecure = v == "true"
	}
	cfg.Assistant.BaseURL = getEnv("ASSISTANT_BASE_URL", cfg.Assistant.BaseURL)
	cfg.Assistant.APIKey = getEnv("ASSISTANT_API_KEY", cfg.Assistant.APIKey)
	cfg.Assistant.Model = getEnv("ASSISTANT_MODEL", cfg.Assistant.Model)
	if v := os.Getenv("ASSISTANT_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Assistant.TimeoutSeconds = n
		} else {
			slog.Warn("Invalid ASSISTANT_TIMEOUT_SECONDS, keeping previous value", "value", v)
		}
	}

	cfg.CSRFKey = loadKey("CSRF_KEY")
	cfg.SessionKey = loadKey("SESSION_KEY")

	// Make sure port is valid
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT, falling back to default", "PORT", cfg.Port)
		cfg.Port = "8585"
	}

	return cfg, nil
}

// loadKey decodes a base64 key from the environment, generating a random
// development key when it is missing or too short.
func loadKey(envVar string) []byte {
	keyStr := os.Getenv(envVar)
	if keyStr == "" {
		slog.Warn("Key not set, generating a random key for development. It will change on each restart.", "env", envVar)
		return generateRandomBytes(32)
	}
	decoded, err := base64.StdEncoding.DecodeString(keyStr)
	if err != nil || len(decoded) < 32 {
		slog.Warn("Key is invalid or shorter than 32 bytes, generating a random key for development.", "env", envVar)
		return generateRandomBytes(32)
	}
	return decoded
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func generateRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		slog.Error("Failed to read random bytes", "error", err)
		fallbackKey := "fallback-insecure-key-" + strconv.FormatInt(time.Now().UnixNano(), 10)
		if len(fallbackKey) < n {
			paddedKey := make([]byte, n)
			copy(paddedKey, fallbackKey)
			return paddedKey
		}
		return []byte(fallbackKey)[:n]
	}
	return b
}
