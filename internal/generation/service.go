package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/postcraft-api/internal/platform/logger"
	"github.com/phrazzld/postcraft-api/internal/platform/metrics"
	"github.com/phrazzld/postcraft-api/internal/redact"
)

// Result is the outcome of a successful generation.
type Result struct {
	// ID identifies the generation in logs.
	ID uuid.UUID

	Mode Mode

	// Text is the backend output, unmodified.
	Text string
}

// Service renders prompts and forwards them to a shared Generator.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	generator   Generator
	model       string
	defaultMode Mode
	metrics     metrics.GenerationMetrics
	logger      *slog.Logger
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithMetrics records one observation per generation.
func WithMetrics(m metrics.GenerationMetrics) ServiceOption {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLogger sets the fallback logger used when the request context carries none.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service around generator.
func NewService(generator Generator, model string, defaultMode Mode, opts ...ServiceOption) (*Service, error) {
	if generator == nil {
		return nil, fmt.Errorf("%w: generator cannot be nil", ErrInvalidConfig)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}
	if _, ok := templates[defaultMode]; !ok {
		return nil, fmt.Errorf("%w: default mode: %w", ErrInvalidConfig, ErrUnknownMode)
	}

	s := &Service{
		generator:   generator,
		model:       model,
		defaultMode: defaultMode,
		metrics:     metrics.Noop{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// DefaultMode returns the mode used when a caller does not choose one.
func (s *Service) DefaultMode() Mode {
	return s.defaultMode
}

// Generate builds the prompt for mode (the default mode when empty) and runs
// it through the generator. Backend errors are returned wrapped so that their
// original message is preserved at the end of Error().
func (s *Service) Generate(ctx context.Context, mode Mode, content string) (*Result, error) {
	if mode == "" {
		mode = s.defaultMode
	}

	prompt, err := BuildPrompt(mode, content)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("generation_id", id.String()),
		slog.String("mode", string(mode)),
	)

	log.DebugContext(ctx, "sending prompt to generator",
		"model", s.model,
		"content_length", len(content),
		"prompt_length", len(prompt.Text),
		"thinking_disabled", prompt.DisableThinking)

	start := time.Now()
	text, err := s.generator.GenerateText(ctx, Request{
		Model:           s.model,
		Prompt:          prompt.Text,
		DisableThinking: prompt.DisableThinking,
	})
	elapsed := time.Since(start)

	if err != nil {
		s.metrics.ObserveGeneration(string(mode), metrics.OutcomeError, elapsed.Seconds())
		log.WarnContext(ctx, "generation failed",
			"error", redact.Error(err),
			"duration_ms", elapsed.Milliseconds())
		return nil, wrapBackendError(err)
	}

	s.metrics.ObserveGeneration(string(mode), metrics.OutcomeSuccess, elapsed.Seconds())
	log.InfoContext(ctx, "generation completed",
		"output_length", len(text),
		"duration_ms", elapsed.Milliseconds())

	return &Result{ID: id, Mode: mode, Text: text}, nil
}

// BackendError carries a backend failure. Its message is exactly the message
// of the underlying error, while errors.Is also matches ErrGenerationFailed.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return e.Err.Error()
}

func (e *BackendError) Unwrap() []error {
	return []error{ErrGenerationFailed, e.Err}
}

func wrapBackendError(err error) error {
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Err: err}
}
