// response/classify_test.go
package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitHeaders(remaining string) http.Header {
	h := http.Header{}
	h.Set("X-RateLimit-Remaining", remaining)
	return h
}

// TestClassify exercises the status-to-kind mapping table.
func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		header       http.Header
		body         string
		expectedKind Kind
		expectedMsg  string
	}{
		{
			name:       "200 is success",
			statusCode: http.StatusOK,
			body:       `{"id": 1}`,
		},
		{
			name:       "304 is success",
			statusCode: http.StatusNotModified,
			body:       "",
		},
		{
			name:         "401 without rate limit headers is auth",
			statusCode:   http.StatusUnauthorized,
			body:         `{"message": "Requires authentication"}`,
			expectedKind: KindAuth,
			expectedMsg:  "Requires authentication",
		},
		{
			name:         "403 without rate limit signal is auth",
			statusCode:   http.StatusForbidden,
			header:       rateLimitHeaders("37"),
			body:         `{"message": "Resource not accessible by integration"}`,
			expectedKind: KindAuth,
			expectedMsg:  "Resource not accessible by integration",
		},
		{
			name:         "403 with exhausted quota is rate limit",
			statusCode:   http.StatusForbidden,
			header:       rateLimitHeaders("0"),
			body:         `{"message": "API rate limit exceeded"}`,
			expectedKind: KindRateLimit,
			expectedMsg:  "API rate limit exceeded",
		},
		{
			name:         "404 is not found",
			statusCode:   http.StatusNotFound,
			body:         "",
			expectedKind: KindNotFound,
		},
		{
			name:         "422 is validation",
			statusCode:   http.StatusUnprocessableEntity,
			body:         "",
			expectedKind: KindValidation,
		},
		{
			name:         "500 with plain body is http",
			statusCode:   http.StatusInternalServerError,
			body:         "boom",
			expectedKind: KindHTTP,
			expectedMsg:  "boom",
		},
		{
			name:         "502 falls back to http",
			statusCode:   http.StatusBadGateway,
			body:         `{"message": "Server Error"}`,
			expectedKind: KindHTTP,
			expectedMsg:  "Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := tt.header
			if header == nil {
				header = http.Header{}
			}

			result := Classify(tt.statusCode, header, []byte(tt.body))

			if tt.statusCode == http.StatusOK || tt.statusCode == http.StatusNotModified {
				require.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.Equal(t, tt.expectedKind, result.Kind)
			assert.Equal(t, tt.statusCode, result.StatusCode)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, result.Message)
			}
		})
	}
}

// TestClassifyIdempotent verifies that identical inputs yield identical outputs.
func TestClassifyIdempotent(t *testing.T) {
	header := rateLimitHeaders("0")
	body := []byte(`{"message": "API rate limit exceeded"}`)

	first := Classify(http.StatusForbidden, header, body)
	second := Classify(http.StatusForbidden, header, body)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first, second)
}

func TestClassifyValidationDetails(t *testing.T) {
	body := `{
		"message": "Validation Failed",
		"documentation_url": "https://docs.github.com/rest/issues/issues#create-an-issue",
		"errors": [{"resource": "Issue", "field": "title", "code": "missing_field"}]
	}`

	result := Classify(http.StatusUnprocessableEntity, http.Header{}, []byte(body))

	require.NotNil(t, result)
	assert.Equal(t, KindValidation, result.Kind)
	assert.Equal(t, "Validation Failed", result.Message)
	assert.Equal(t, "https://docs.github.com/rest/issues/issues#create-an-issue", result.DocumentationURL)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Issue", result.Errors[0].Resource)
	assert.Equal(t, "title", result.Errors[0].Field)
	assert.Equal(t, "missing_field", result.Errors[0].Code)
}

func TestClassifyHTMLErrorBody(t *testing.T) {
	header := http.Header{}
	header.Set("Content-Type", "text/html")
	body := `<html><head><title>502 Bad Gateway</title></head><body><p>The server returned an invalid response.</p></body></html>`

	result := Classify(http.StatusBadGateway, header, []byte(body))

	require.NotNil(t, result)
	assert.Equal(t, KindHTTP, result.Kind)
	assert.Contains(t, result.Message, "502 Bad Gateway")
	assert.Contains(t, result.Message, "The server returned an invalid response.")
}

func TestGitHubErrorString(t *testing.T) {
	err := NewHTTPError(http.StatusBadGateway, "upstream broke")
	assert.Equal(t, "github: http (status 502): upstream broke", err.Error())

	authErr := NewAuthError("signing app JWT: invalid key")
	assert.Equal(t, "github: auth: signing app JWT: invalid key", authErr.Error())

	blank := NewHTTPError(http.StatusServiceUnavailable, "")
	assert.Contains(t, blank.Error(), "Service Unavailable")
}

func TestAsGitHubError(t *testing.T) {
	var err error = NewAuthError("bad credentials")

	ghErr, ok := AsGitHubError(err)
	require.True(t, ok)
	assert.Equal(t, KindAuth, ghErr.Kind)

	_, ok = AsGitHubError(assert.AnError)
	assert.False(t, ok)
}
