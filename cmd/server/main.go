// Package main implements the entry point for the PostCraft API server,
// which turns collected posts into sentiment reports and rephrases text
// through Google's Gemini models.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
