// response/error.go
// This package provides the error taxonomy for GitHub API responses and the
// classification logic that maps an HTTP status and body onto exactly one error kind.
package response

import (
	"fmt"
	"net/http"
	"strings"
)

// StatusTooManyRedirects is a synthetic status code used when the redirect hop limit
// is exceeded. It is outside the range of real server statuses so callers can tell
// the two apart.
const StatusTooManyRedirects = 599

// Kind identifies the category of a GitHubError. Every failed request maps onto
// exactly one kind.
type Kind int

const (
	// KindHTTP is any non-success status not covered by a more specific kind.
	// The literal status code is carried on the error.
	KindHTTP Kind = iota
	// KindJSON is a payload that failed to decode after a successful status.
	KindJSON
	// KindAuth covers credential problems: failed App JWT signing, 401, and
	// 403 responses without the rate-limit signal.
	KindAuth
	// KindRateLimit is a 403 with an exhausted quota signal.
	KindRateLimit
	// KindNotFound is a 404.
	KindNotFound
	// KindValidation is a 422.
	KindValidation
	// KindTransport covers failures below HTTP: timeouts, connection failures.
	KindTransport
)

// String returns the name of the kind for logging and error rendering.
func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindJSON:
		return "json"
	case KindAuth:
		return "auth"
	case KindRateLimit:
		return "rate_limit"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// ErrorDetail represents one entry of a 422 validation error response.
type ErrorDetail struct {
	Resource string `json:"resource,omitempty"`
	Field    string `json:"field,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
}

// GitHubError is the terminal, tagged outcome of a failed request. Values are
// produced only by this package; callers inspect Kind (and StatusCode for KindHTTP)
// to decide how to react.
type GitHubError struct {
	Kind             Kind
	StatusCode       int // zero when no HTTP status applies (KindJSON, KindTransport)
	Message          string
	DocumentationURL string
	Errors           []ErrorDetail // populated for KindValidation when present
}

// Error returns a string representation of the GitHubError, making it compatible
// with the error interface.
func (e *GitHubError) Error() string {
	msg := e.Message
	if msg == "" && e.StatusCode != 0 {
		msg = http.StatusText(e.StatusCode)
	}

	if e.StatusCode != 0 {
		return fmt.Sprintf("github: %s (status %d): %s", e.Kind, e.StatusCode, msg)
	}
	return fmt.Sprintf("github: %s: %s", e.Kind, msg)
}

// NewHTTPError builds a KindHTTP error carrying the literal status code.
func NewHTTPError(statusCode int, message string) *GitHubError {
	return &GitHubError{Kind: KindHTTP, StatusCode: statusCode, Message: message}
}

// NewJSONError builds a KindJSON error for a payload that failed to decode.
func NewJSONError(message string) *GitHubError {
	return &GitHubError{Kind: KindJSON, Message: message}
}

// NewAuthError builds a KindAuth error.
func NewAuthError(message string) *GitHubError {
	return &GitHubError{Kind: KindAuth, Message: message}
}

// NewTransportError wraps a transport-level failure (timeout, connection refused,
// DNS failure) as a KindTransport error.
func NewTransportError(err error) *GitHubError {
	return &GitHubError{Kind: KindTransport, Message: err.Error()}
}

// AsGitHubError extracts a *GitHubError from an error value. The client returns
// *GitHubError from every operation, so this is a convenience for callers holding
// a plain error.
func AsGitHubError(err error) (*GitHubError, bool) {
	ghErr, ok := err.(*GitHubError)
	return ghErr, ok
}

// firstLine trims a raw body down to something usable as an error message.
func firstLine(body string) string {
	body = strings.TrimSpace(body)
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		body = body[:idx]
	}
	return body
}
