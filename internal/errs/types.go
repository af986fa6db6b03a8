package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "rating", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the single client-facing error type of the API.
//
// It implements the `error` interface and is serialized directly as the
// response body by the global error handler:
//
//	{"error": "Destination not found!", "code": "NOT_FOUND"}
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message, rendered under the "error" key.
//   - Status: HTTP status code, only used to write the response.
//   - Override: the message is safe to show to end users as-is.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code     string       `json:"code,omitempty"`
	Message  string       `json:"error"`
	Status   int          `json:"-"`
	Override bool         `json:"-"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// Error returns the Message, so printing/logging the error shows the message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. Code and Status are
// not compared.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
