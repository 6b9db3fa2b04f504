package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrUnknownMode is returned when a mode name does not match any prompt template
	ErrUnknownMode = errors.New("unknown generation mode")

	// ErrGenerationFailed is returned when text generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate text")

	// ErrInvalidResponse is returned when the LLM response cannot be used
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrBackendUnavailable is returned when the backend cannot be reached or reports a server error
	ErrBackendUnavailable = errors.New("language model backend unavailable")

	// ErrQuotaExceeded is returned when the backend rejects the call for rate or quota reasons
	ErrQuotaExceeded = errors.New("language model quota exceeded")

	// ErrUnauthorized is returned when the backend rejects the configured credential
	ErrUnauthorized = errors.New("language model credential rejected")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
