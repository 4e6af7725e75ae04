// headers/headers.go
package headers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/deploymenttheory/go-api-github-client/authcontext"
	"github.com/deploymenttheory/go-api-github-client/headers/redact"
	"github.com/deploymenttheory/go-api-github-client/logger"
	"github.com/deploymenttheory/go-api-github-client/version"
)

const (
	// AcceptHeaderValue is the GitHub REST media type requested on every call.
	AcceptHeaderValue = "application/vnd.github+json"
	// APIVersionHeader carries the pinned REST API version marker.
	APIVersionHeader = "X-GitHub-Api-Version"
	// APIVersionValue is the REST API version this client is written against.
	APIVersionValue = "2022-11-28"
)

// HeaderHandler is responsible for managing and setting headers on HTTP requests.
type HeaderHandler struct {
	req               *http.Request
	log               logger.Logger
	auth              authcontext.AuthContext
	hideSensitiveData bool
}

// NewHeaderHandler creates a new instance of HeaderHandler for a given http.Request,
// logger, and auth context.
func NewHeaderHandler(req *http.Request, log logger.Logger, auth authcontext.AuthContext, hideSensitiveData bool) *HeaderHandler {
	return &HeaderHandler{
		req:               req,
		log:               log,
		auth:              auth,
		hideSensitiveData: hideSensitiveData,
	}
}

// SetRequestHeaders applies the caller-independent default headers, the content type
// when a body is present, and the Authorization header derived from the auth context.
// A header derivation failure is returned before the request is sent anywhere.
func (h *HeaderHandler) SetRequestHeaders(contentType string) error {
	h.req.Header.Set("Accept", AcceptHeaderValue)
	h.req.Header.Set(APIVersionHeader, APIVersionValue)
	h.req.Header.Set("User-Agent", version.UserAgent())

	if contentType != "" {
		h.req.Header.Set("Content-Type", contentType)
	}

	value, ok, err := h.auth.AuthorizationHeader()
	if err != nil {
		return err
	}
	if ok {
		h.req.Header.Set("Authorization", value)
	}

	h.logHeaders()
	return nil
}

// logHeaders logs the headers applied to the request, redacting sensitive values.
func (h *HeaderHandler) logHeaders() {
	if h.log.GetLogLevel() > logger.LogLevelDebug {
		return
	}

	redacted := make(map[string]string, len(h.req.Header))
	for key, values := range h.req.Header {
		if len(values) == 0 {
			continue
		}
		redacted[key] = redact.RedactSensitiveHeaderData(h.hideSensitiveData, key, values[0])
	}

	h.log.Debug("HTTP request headers applied",
		zap.String("auth_method", h.auth.Describe()),
		zap.Any("headers", redacted),
	)
}
