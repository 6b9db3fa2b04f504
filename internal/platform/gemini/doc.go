// Package gemini provides an implementation of the generation.Generator interface
// backed by Google's Gemini API.
//
// This package is an infrastructure adapter: it translates a generation.Request
// into a single GenerateContent call and hands the model's text back unchanged.
// Nothing about the Gemini wire format leaks out of the package.
//
// Key components:
//
// 1. GeminiGenerator:
//   - Implements the generation.Generator interface
//   - Owns one *genai.Client, created at startup and shared by all requests
//   - Disables thinking (budget 0) when the request asks for it
//
// 2. Error Handling:
//   - Classifies API failures by HTTP status into generation sentinel errors
//   - Keeps the original SDK message as the error string
//   - Reports safety blocks and empty responses as their own error kinds
//
// No retries are attempted. A failed call is reported to the caller as-is.
//
// The package depends on Google's google.golang.org/genai client library.
package gemini
