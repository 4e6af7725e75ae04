// redirecthandler/redirecthandler.go
package redirecthandler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/deploymenttheory/go-api-github-client/logger"
)

// RedirectHandler contains the redirect policy applied to the HTTP client: whether to
// follow redirects at all, how many hops to allow, and which headers to strip when a
// redirect crosses to another host. It holds no per-request state, so one handler is
// safe for concurrent requests.
type RedirectHandler struct {
	Logger           logger.Logger
	MaxRedirects     int      // Maximum allowed redirects to prevent infinite loops.
	SensitiveHeaders []string // Headers to be removed on cross-domain redirects.
}

// NewRedirectHandler creates a new instance of RedirectHandler.
func NewRedirectHandler(log logger.Logger, maxRedirects int) *RedirectHandler {
	return &RedirectHandler{
		Logger:           log,
		MaxRedirects:     maxRedirects,
		SensitiveHeaders: []string{"Authorization", "Cookie"},
	}
}

// MaxRedirectsError represents an error when the maximum number of redirects is reached.
type MaxRedirectsError struct {
	MaxRedirects int
}

func (e *MaxRedirectsError) Error() string {
	return fmt.Sprintf("maximum redirects reached: %d", e.MaxRedirects)
}

// WithRedirectHandling applies the redirect handling policy to an http.Client.
func (r *RedirectHandler) WithRedirectHandling(client *http.Client) {
	client.CheckRedirect = r.checkRedirect
}

// checkRedirect implements the redirect policy. The standard library invokes it before
// following each redirect hop, with via holding the requests already made.
func (r *RedirectHandler) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= r.MaxRedirects {
		r.Logger.Warn("Maximum redirects reached",
			zap.Int("max_redirects", r.MaxRedirects),
			zap.String("url", req.URL.String()),
		)
		return &MaxRedirectsError{MaxRedirects: r.MaxRedirects}
	}

	// Strip credentials when the redirect leaves the original host.
	if len(via) > 0 && req.URL.Host != via[0].URL.Host {
		for _, header := range r.SensitiveHeaders {
			req.Header.Del(header)
		}
		r.Logger.Debug("Removed sensitive headers on cross-host redirect",
			zap.String("original_host", via[0].URL.Host),
			zap.String("redirect_host", req.URL.Host),
		)
	}

	r.Logger.Debug("Following redirect",
		zap.String("url", req.URL.String()),
		zap.Int("redirect_count", len(via)),
	)
	return nil
}

// SetupRedirectHandler configures the HTTP client for redirect handling based on the
// client configuration. With followRedirects disabled the client returns the first
// response as-is and never follows the Location header.
func SetupRedirectHandler(client *http.Client, followRedirects bool, maxRedirects int, log logger.Logger) error {
	if !followRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
		log.Debug("Redirect following disabled")
		return nil
	}

	if maxRedirects < 1 {
		return log.Error("Invalid maxRedirects value", zap.Int("max_redirects", maxRedirects))
	}

	handler := NewRedirectHandler(log, maxRedirects)
	handler.WithRedirectHandling(client)
	log.Debug("Redirect handling enabled", zap.Int("max_redirects", maxRedirects))
	return nil
}
