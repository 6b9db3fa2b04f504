package gemini

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/postcraft-api/internal/generation"
	"google.golang.org/genai"
)

// classifiedError pairs a backend failure with the generation sentinel that
// describes it. The message is the backend's own.
type classifiedError struct {
	kind error
	err  error
}

func (e *classifiedError) Error() string {
	return e.err.Error()
}

func (e *classifiedError) Unwrap() []error {
	return []error{e.kind, e.err}
}

// classifyError maps an error from the genai client onto a generation error kind.
// The returned error keeps err's message and still matches err with errors.Is/As.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var kind error
	var apiErr genai.APIError
	switch {
	case errors.As(err, &apiErr):
		kind = kindForStatus(apiErr.Code)
	case errors.Is(err, context.DeadlineExceeded):
		kind = generation.ErrBackendUnavailable
	case errors.Is(err, context.Canceled):
		return err
	default:
		kind = generation.ErrBackendUnavailable
	}

	return &classifiedError{kind: kind, err: err}
}

func kindForStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return generation.ErrUnauthorized
	case code == http.StatusTooManyRequests:
		return generation.ErrQuotaExceeded
	case code >= 500:
		return generation.ErrBackendUnavailable
	default:
		return generation.ErrGenerationFailed
	}
}
