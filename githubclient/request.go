// githubclient/request.go
package githubclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deploymenttheory/go-api-github-client/headers"
	"github.com/deploymenttheory/go-api-github-client/redirecthandler"
	"github.com/deploymenttheory/go-api-github-client/response"
)

// Retrier wraps the execution of a single request. The attempt function performs one
// full request/response cycle; a Retrier may invoke it more than once to implement
// backoff policy. The client itself never retries: with a nil Retrier each operation
// performs exactly one attempt.
type Retrier func(ctx context.Context, attempt func(context.Context) (*response.Envelope, error)) (*response.Envelope, error)

// Do constructs and executes one API request against the base URL. A non-nil body is
// JSON-encoded. The returned error, when non-nil, is always a *response.GitHubError.
func (c *Client) Do(ctx context.Context, method, endpoint string, query url.Values, body any) (*response.Envelope, error) {
	var bodyBytes []byte
	contentType := ""

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, response.NewJSONError(fmt.Sprintf("encoding request body: %v", err))
		}
		bodyBytes = data
		contentType = "application/json"
	}

	return c.execute(ctx, c.config.BaseURL, method, endpoint, query, contentType, bodyBytes)
}

// DoUpload executes one binary content upload against the upload URL.
func (c *Client) DoUpload(ctx context.Context, method, endpoint string, query url.Values, contentType string, content []byte) (*response.Envelope, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return c.execute(ctx, c.config.UploadURL, method, endpoint, query, contentType, content)
}

// execute performs one request/response cycle: resolve the URL, derive auth and
// default headers, perform the I/O, classify the outcome. The lifecycle is linear
// with two exit points: an auth error before the request is sent, or a classified
// error / decoded envelope after.
func (c *Client) execute(ctx context.Context, baseURL, method, endpoint string, query url.Values, contentType string, bodyBytes []byte) (*response.Envelope, error) {
	requestURL, err := resolveRequestURL(baseURL, endpoint, query)
	if err != nil {
		return nil, response.NewTransportError(fmt.Errorf("resolving request URL: %w", err))
	}

	log := c.Logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("method", method),
		zap.String("endpoint", endpoint),
	)

	attempt := func(ctx context.Context) (*response.Envelope, error) {
		var bodyReader io.Reader
		if bodyBytes != nil {
			bodyReader = bytes.NewReader(bodyBytes)
		}

		req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
		if err != nil {
			return nil, response.NewTransportError(err)
		}

		headerHandler := headers.NewHeaderHandler(req, log, c.config.Auth, c.config.HideSensitiveData)
		if err := headerHandler.SetRequestHeaders(contentType); err != nil {
			// Credential derivation failed; surface before any network I/O.
			return nil, response.NewAuthError(err.Error())
		}

		startTime := time.Now()
		resp, err := c.http.Do(req)
		if err != nil {
			log.Warn("Request transport failure", zap.Error(err))
			return nil, classifyTransportFailure(err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, response.NewTransportError(fmt.Errorf("reading response body: %w", err))
		}

		log.Debug("Request completed",
			zap.Int("status_code", resp.StatusCode),
			zap.Duration("duration", time.Since(startTime)),
		)

		if ghErr := response.Classify(resp.StatusCode, resp.Header, respBody); ghErr != nil {
			log.Warn("Request classified as error",
				zap.String("kind", ghErr.Kind.String()),
				zap.Int("status_code", ghErr.StatusCode),
			)
			return nil, ghErr
		}

		return &response.Envelope{
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       respBody,
		}, nil
	}

	if c.config.Retrier != nil {
		return c.config.Retrier(ctx, attempt)
	}
	return attempt(ctx)
}

// classifyTransportFailure maps an error from http.Client.Do onto the error taxonomy.
// Exceeding the redirect hop limit gets a synthetic status so it remains
// distinguishable from a server-sent status; everything else is a transport failure.
func classifyTransportFailure(err error) *response.GitHubError {
	var maxRedirects *redirecthandler.MaxRedirectsError
	if errors.As(err, &maxRedirects) {
		return response.NewHTTPError(response.StatusTooManyRedirects, err.Error())
	}
	return response.NewTransportError(err)
}

// resolveRequestURL joins the base URL with the endpoint path and appends the query
// string. url.Values cannot hold duplicate keys with Set-based population, and
// Encode produces each key once in sorted order.
func resolveRequestURL(baseURL, endpoint string, query url.Values) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + endpoint

	if len(query) > 0 {
		parsed.RawQuery = query.Encode()
	}

	return parsed.String(), nil
}
