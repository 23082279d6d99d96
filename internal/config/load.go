package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is prepended to all environment variable names, so the server
// port is configured with FORGE_SERVER_PORT, the API key with
// FORGE_LLM_GEMINI_API_KEY, and so on.
const envPrefix = "FORGE"

// configKeys lists every key we read. AutomaticEnv alone does not surface
// env-only values through Unmarshal, so each key is bound explicitly.
var configKeys = []string{
	"server.port",
	"server.log_level",
	"llm.gemini_api_key",
	"llm.model_name",
	"llm.base_url",
	"llm.max_attempts",
	"llm.timeout_seconds",
}

// Load reads configuration from environment variables, applies defaults,
// and validates the result. Returns a populated Config struct or an error
// if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.model_name", "gemini-2.5-flash-preview-09-2025")
	v.SetDefault("llm.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("llm.max_attempts", 3)
	v.SetDefault("llm.timeout_seconds", 30)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
