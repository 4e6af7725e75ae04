// status.go
// This package provides status code predicates shared by the response classifier
// and the redirect handler.
package status

import (
	"net/http"
)

// IsSuccessStatusCode reports whether the provided status code counts as a successful
// GitHub API response. 304 Not Modified is a success: it signals that a conditional
// request matched and the cached representation is still valid.
func IsSuccessStatusCode(statusCode int) bool {
	if statusCode >= 200 && statusCode <= 299 {
		return true
	}
	return statusCode == http.StatusNotModified
}

// IsRedirectStatusCode checks if the provided HTTP status code is one of the redirect codes.
// Redirect status codes instruct the client to make a new request to a different URI, as
// defined in the response's Location header.
func IsRedirectStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// IsPermanentRedirect checks if the provided HTTP status code is one of the permanent redirect codes.
func IsPermanentRedirect(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// IsRateLimited reports whether a 403 response carries GitHub's exhausted-quota signal.
// GitHub uses 403 for both "forbidden" and "rate limited"; the X-RateLimit-Remaining
// header disambiguates the two.
func IsRateLimited(statusCode int, header http.Header) bool {
	if statusCode != http.StatusForbidden {
		return false
	}
	return header.Get("X-RateLimit-Remaining") == "0"
}
