// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. Backend errors can echo request URLs, headers and
// credentials; this package keeps API keys and tokens out of the log stream.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order; replacements may reference capture groups.
var rules = []rule{
	// Google API keys have a fixed prefix and length.
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},

	// key=... query parameters as used by the Gemini REST endpoint.
	{regexp.MustCompile(`(?i)([?&](?:key|api_key|access_token)=)[^&\s"']+`), "${1}" + RedactedKeyPlaceholder},

	// Header-style credentials.
	{regexp.MustCompile(`(?i)(x-goog-api-key["']?\s*[:=]\s*["']?)[^\s"',}]+`), "${1}" + RedactedKeyPlaceholder},
	{regexp.MustCompile(`(?i)(authorization["']?\s*[:=]\s*["']?bearer\s+)[A-Za-z0-9_\-.~+/=]+`), "${1}" + RedactedCredentialPlaceholder},

	// Generic key=value or key: value secrets.
	{
		regexp.MustCompile(`(?i)((?:api[_-]?key|secret|token|password)["']?\s*[:=]\s*["']?)[A-Za-z0-9_\-.~+/]{8,}`),
		"${1}" + RedactedCredentialPlaceholder,
	},

	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
