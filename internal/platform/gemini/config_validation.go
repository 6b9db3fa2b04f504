package gemini

import (
	"fmt"
	"net/url"

	"github.com/phrazzld/postcraft-api/internal/config"
	"github.com/phrazzld/postcraft-api/internal/generation"
)

// validateConfig checks the settings the generator cannot run without.
func validateConfig(cfg config.LLMConfig) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("%w: API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: timeout cannot be negative", generation.ErrInvalidConfig)
	}

	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: invalid base URL %q", generation.ErrInvalidConfig, cfg.BaseURL)
		}
	}

	return nil
}
