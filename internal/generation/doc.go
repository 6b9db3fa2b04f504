// Package generation turns caller-supplied text into prompts for a generative
// language model and runs them through a Generator. It owns the two fixed
// prompt templates (sentiment report and rephrase) and the stateless Service
// that HTTP handlers and the CLI share.
//
// The Generator interface is the boundary to the external LLM backend; the
// Gemini adapter lives in internal/platform/gemini.
package generation
