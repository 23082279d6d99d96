package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the Gemini generation backend.
type LLMConfig struct {
	// GeminiAPIKey authenticates against the generation endpoint. It is
	// deliberately not marked required: a missing key is a recoverable
	// condition surfaced to the user on each generation call, not a
	// startup failure.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// ModelName is the Gemini model invoked via generateContent.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// BaseURL is the API root the client posts to. Overridable so tests
	// can point the client at a local server.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// MaxAttempts bounds the retry loop, counting the first attempt.
	MaxAttempts int `mapstructure:"max_attempts" validate:"required,gte=1,lte=10"`

	// TimeoutSeconds is the per-attempt request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gte=1"`
}
