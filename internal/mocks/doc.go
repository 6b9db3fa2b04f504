// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline fakes in individual test files, packages import
// these standardized implementations:
//
//	gen := mocks.NewMockGeneratorWithText("rephrased text")
//	svc, _ := generation.NewService(gen, "gemini-2.5-flash", generation.ModeRephrase)
//
// Every mock records the calls it receives so tests can assert on the exact
// requests that reached the backend boundary.
package mocks
