package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/postcraft-api/internal/api/shared"
	"github.com/phrazzld/postcraft-api/internal/generation"
	"github.com/phrazzld/postcraft-api/internal/platform/reddit"
)

// MapErrorToStatusCode maps generation errors to HTTP status codes.
// It is only consulted when strict error statuses are enabled.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, generation.ErrUnknownMode):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, generation.ErrQuotaExceeded):
		return http.StatusTooManyRequests

	case errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	case errors.Is(err, generation.ErrBackendUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// DescribeDecodeError turns a JSON decoding failure into a client message.
func DescribeDecodeError(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return fmt.Sprintf("Invalid %s: must be a %s", typeErr.Field, typeErr.Type.Kind())
		}
		return "Invalid request body: expected a JSON object"
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("Invalid JSON at offset %d", syntaxErr.Offset)
	case errors.Is(err, shared.ErrTrailingData):
		return "Invalid request body: " + err.Error()
	default:
		return "Invalid request format"
	}
}

// SanitizeValidationError removes internal struct names from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation failed"
	}

	fe := verrs[0]
	field := jsonFieldName(fe.Field())
	if fe.Tag() == "required" {
		return fmt.Sprintf("Invalid %s: field required", field)
	}
	return fmt.Sprintf("Invalid %s: failed on the '%s' tag", field, fe.Tag())
}

func jsonFieldName(structField string) string {
	switch structField {
	case "Content":
		return "content"
	default:
		return structField
	}
}

// redditErrorMessage returns the client-facing text for a query validation error.
func redditErrorMessage(err error) string {
	switch {
	case errors.Is(err, reddit.ErrMissingSub):
		return "Missing sub"
	case errors.Is(err, reddit.ErrInvalidPermalink):
		return "Missing or invalid permalink"
	case errors.Is(err, reddit.ErrInvalidMode):
		return "Invalid mode"
	default:
		return err.Error()
	}
}
