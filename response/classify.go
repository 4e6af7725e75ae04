// response/classify.go
package response

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/deploymenttheory/go-api-github-client/status"
)

// apiErrorBody is the JSON envelope GitHub uses for error responses.
type apiErrorBody struct {
	Message          string        `json:"message"`
	DocumentationURL string        `json:"documentation_url"`
	Errors           []ErrorDetail `json:"errors"`
}

// Classify maps an HTTP status, response headers, and body onto a GitHubError.
// It returns nil for successful statuses ([200,299] and 304). The mapping is pure:
// identical inputs always produce identical outputs, and no response is ever retried
// here.
//
// A 403 is ambiguous upstream; it is disambiguated using the rate-limit headers
// before falling back to an auth error.
func Classify(statusCode int, header http.Header, body []byte) *GitHubError {
	if status.IsSuccessStatusCode(statusCode) {
		return nil
	}

	parsed := parseErrorBody(header, body)

	switch {
	case status.IsRateLimited(statusCode, header):
		return &GitHubError{
			Kind:             KindRateLimit,
			StatusCode:       statusCode,
			Message:          parsed.Message,
			DocumentationURL: parsed.DocumentationURL,
		}

	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &GitHubError{
			Kind:             KindAuth,
			StatusCode:       statusCode,
			Message:          parsed.Message,
			DocumentationURL: parsed.DocumentationURL,
		}

	case statusCode == http.StatusNotFound:
		return &GitHubError{
			Kind:             KindNotFound,
			StatusCode:       statusCode,
			Message:          parsed.Message,
			DocumentationURL: parsed.DocumentationURL,
		}

	case statusCode == http.StatusUnprocessableEntity:
		return &GitHubError{
			Kind:             KindValidation,
			StatusCode:       statusCode,
			Message:          parsed.Message,
			DocumentationURL: parsed.DocumentationURL,
			Errors:           parsed.Errors,
		}

	default:
		return &GitHubError{
			Kind:             KindHTTP,
			StatusCode:       statusCode,
			Message:          parsed.Message,
			DocumentationURL: parsed.DocumentationURL,
		}
	}
}

// parseErrorBody extracts a human-readable message from an error response body.
// GitHub speaks JSON, but intermediary proxies can answer with HTML or plain text,
// so both get a best-effort extraction rather than being discarded.
func parseErrorBody(header http.Header, body []byte) apiErrorBody {
	if len(body) == 0 {
		return apiErrorBody{}
	}

	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed
	}

	contentType := header.Get("Content-Type")
	if strings.Contains(contentType, "text/html") || looksLikeHTML(body) {
		if msg := extractHTMLMessage(body); msg != "" {
			return apiErrorBody{Message: msg}
		}
	}

	return apiErrorBody{Message: firstLine(string(body))}
}

// looksLikeHTML sniffs for an HTML document when no usable Content-Type is present.
func looksLikeHTML(body []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(body))
	return bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html"))
}

// extractHTMLMessage pulls the text of <title> and <p> elements out of an HTML error
// page, joining them into a single message.
func extractHTMLMessage(body []byte) string {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var messages []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "title" || n.Data == "p") {
			var text strings.Builder
			var collect func(*html.Node)
			collect = func(c *html.Node) {
				if c.Type == html.TextNode {
					text.WriteString(strings.TrimSpace(c.Data) + " ")
				}
				for child := c.FirstChild; child != nil; child = child.NextSibling {
					collect(child)
				}
			}
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				collect(child)
			}
			if content := strings.TrimSpace(text.String()); content != "" {
				messages = append(messages, content)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.Join(messages, "; ")
}
