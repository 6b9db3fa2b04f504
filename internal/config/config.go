package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Reddit RedditConfig `mapstructure:"reddit" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// LogFile, when set, mirrors JSON logs into a size-rotated file.
	LogFile string `mapstructure:"log_file"`

	// StrictErrors maps backend failures to non-200 status codes instead of
	// reporting them inside a 200 response.
	StrictErrors bool `mapstructure:"strict_errors"`

	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	APIKey      string `mapstructure:"api_key"      validate:"required"`
	ModelName   string `mapstructure:"model_name"   validate:"required"`
	DefaultMode string `mapstructure:"default_mode" validate:"required,oneof=report rephrase"`

	// BaseURL overrides the Gemini API endpoint. Empty means the SDK default.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// TimeoutSeconds bounds each backend call. Zero leaves the SDK default in place.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// RedditConfig configures the listing proxy used by the web client.
type RedditConfig struct {
	BaseURL      string `mapstructure:"base_url"      validate:"required,url"`
	UserAgent    string `mapstructure:"user_agent"    validate:"required"`
	DefaultLimit int    `mapstructure:"default_limit" validate:"gt=0"`
	MaxLimit     int    `mapstructure:"max_limit"     validate:"gtefield=DefaultLimit"`
}
