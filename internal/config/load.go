package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment variable read by Load.
	EnvPrefix = "POSTCRAFT"

	// PrimaryKeyEnv is the environment variable holding the Gemini credential.
	PrimaryKeyEnv = "GOOGLE_API_KEY"

	// FallbackKeyEnv is accepted as an alias for PrimaryKeyEnv.
	FallbackKeyEnv = "GEMINI_API_KEY"
)

// Option customizes a Load call.
type Option func(*loadOptions)

type loadOptions struct {
	configFile string
	dotEnvFile string
	viper      *viper.Viper
}

// WithConfigFile reads settings from the given file in addition to the environment.
func WithConfigFile(path string) Option {
	return func(o *loadOptions) {
		o.configFile = path
	}
}

// WithDotEnv loads variables from the given .env file before reading the environment.
// Variables that are already set are never overridden.
func WithDotEnv(path string) Option {
	return func(o *loadOptions) {
		o.dotEnvFile = path
	}
}

// WithViper uses v instead of a fresh viper instance, so command-line flags
// bound by the caller take part in resolution.
func WithViper(v *viper.Viper) Option {
	return func(o *loadOptions) {
		o.viper = v
	}
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(opts ...Option) (*Config, error) {
	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.dotEnvFile != "" {
		if err := godotenv.Load(o.dotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", o.dotEnvFile, err)
		}
	}

	ApplyCredentialAlias()

	v := o.viper
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("llm.api_key", EnvPrefix+"_LLM_API_KEY", PrimaryKeyEnv); err != nil {
		return nil, fmt.Errorf("failed to bind api key environment: %w", err)
	}

	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", o.configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// ApplyCredentialAlias copies FallbackKeyEnv into PrimaryKeyEnv when the
// primary variable is unset or empty and the fallback holds a value.
func ApplyCredentialAlias() {
	if os.Getenv(PrimaryKeyEnv) != "" {
		return
	}
	if fallback := os.Getenv(FallbackKeyEnv); fallback != "" {
		_ = os.Setenv(PrimaryKeyEnv, fallback)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_file", "")
	v.SetDefault("server.strict_errors", false)
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("llm.model_name", "gemini-2.5-flash")
	v.SetDefault("llm.default_mode", "report")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout_seconds", 0)

	v.SetDefault("reddit.base_url", "https://www.reddit.com")
	v.SetDefault("reddit.user_agent", "PostCraftAI/1.0")
	v.SetDefault("reddit.default_limit", 12)
	v.SetDefault("reddit.max_limit", 50)
}
