package generation

import "context"

// Request is a single call to the language model backend.
type Request struct {
	// Model is the backend model identifier, e.g. "gemini-2.5-flash".
	Model string

	// Prompt is the complete text sent to the model.
	Prompt string

	// DisableThinking sets the backend's thinking budget to zero.
	DisableThinking bool
}

// Generator defines the interface for generating text from a prompt.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
//
// Implementations must be safe for concurrent use: a single Generator is
// created at startup and shared by every request.
type Generator interface {
	// GenerateText sends req to the backend and returns the generated text
	// unmodified, or an error describing why the call failed.
	GenerateText(ctx context.Context, req Request) (string, error)
}
