package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/postcraft-api/internal/config"
	"github.com/phrazzld/postcraft-api/internal/generation"
	"github.com/phrazzld/postcraft-api/internal/platform/logger"
	"github.com/phrazzld/postcraft-api/internal/redact"
	"google.golang.org/genai"
)

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used when the request context carries no logger
	logger *slog.Logger

	// client is the Gemini API client shared by every request
	client *genai.Client
}

// Option customizes a GeminiGenerator.
type Option func(*genai.ClientConfig)

// WithHTTPClient makes the genai client send requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPClient = hc
	}
}

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key and optional endpoint settings
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	opts ...Option,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = cfg.BaseURL
	}
	if cfg.TimeoutSeconds > 0 {
		clientConfig.HTTPOptions.Timeout = genai.Ptr(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}
	for _, opt := range opts {
		opt(clientConfig)
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	logger.InfoContext(ctx, "Gemini client initialized",
		"model", cfg.ModelName,
		"custom_base_url", cfg.BaseURL != "",
		"timeout_seconds", cfg.TimeoutSeconds)

	return &GeminiGenerator{
		logger: logger,
		client: client,
	}, nil
}

// GenerateText sends req.Prompt as a single user turn to req.Model and returns
// the response text exactly as produced.
func (g *GeminiGenerator) GenerateText(ctx context.Context, req generation.Request) (string, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	var genConfig *genai.GenerateContentConfig
	if req.DisableThinking {
		genConfig = &genai.GenerateContentConfig{
			ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
		}
	}

	log.DebugContext(ctx, "Making Gemini API call",
		"model", req.Model,
		"prompt_length", len(req.Prompt),
		"thinking_disabled", req.DisableThinking)

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		classified := classifyError(err)
		log.ErrorContext(ctx, "Gemini API call failed",
			"model", req.Model,
			"error", redact.Error(classified))
		return "", classified
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if reason := blockReason(resp); reason != "" {
		log.WarnContext(ctx, "Gemini blocked the request", "reason", reason)
		return "", fmt.Errorf("%w: %s", generation.ErrContentBlocked, reason)
	}

	text := resp.Text()
	log.DebugContext(ctx, "Gemini API call successful",
		"model", req.Model,
		"output_length", len(text))

	return text, nil
}

// blockReason reports why the backend refused to answer, or "" if it did not.
func blockReason(resp *genai.GenerateContentResponse) string {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return string(resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return string(genai.FinishReasonSafety)
	}
	return ""
}
