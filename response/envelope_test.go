// response/envelope_test.go
package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeDecode(t *testing.T) {
	env := &Envelope{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       []byte(`{"id": 1296269, "full_name": "octocat/Hello-World"}`),
	}

	var out struct {
		ID       int64  `json:"id"`
		FullName string `json:"full_name"`
	}

	require.Nil(t, env.Decode(&out))
	assert.Equal(t, int64(1296269), out.ID)
	assert.Equal(t, "octocat/Hello-World", out.FullName)
}

func TestEnvelopeDecodeMalformedBody(t *testing.T) {
	env := &Envelope{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       []byte(`{"id": `),
	}

	var out map[string]any
	err := env.Decode(&out)

	require.NotNil(t, err)
	assert.Equal(t, KindJSON, err.Kind)
	assert.Contains(t, err.Message, "decoding response body")
}

func TestEnvelopeDecodeEmptyBody(t *testing.T) {
	env := &Envelope{StatusCode: http.StatusNoContent, Header: http.Header{}}

	var out map[string]any
	assert.Nil(t, env.Decode(&out))
	assert.Nil(t, env.Decode(nil))
}

func TestEnvelopeNextPageURL(t *testing.T) {
	header := http.Header{}
	header.Set("Link", `<https://api.github.com/repos/octocat/Hello-World/issues?page=2>; rel="next", <https://api.github.com/repos/octocat/Hello-World/issues?page=5>; rel="last"`)

	env := &Envelope{StatusCode: http.StatusOK, Header: header}

	assert.Equal(t, "https://api.github.com/repos/octocat/Hello-World/issues?page=2", env.NextPageURL())
	assert.Equal(t, "https://api.github.com/repos/octocat/Hello-World/issues?page=5", env.LastPageURL())
}

func TestEnvelopeNextPageURLAbsent(t *testing.T) {
	env := &Envelope{StatusCode: http.StatusOK, Header: http.Header{}}
	assert.Empty(t, env.NextPageURL())
}

func TestParseLinks(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected map[string]string
	}{
		{
			name:     "empty header",
			header:   "",
			expected: map[string]string{},
		},
		{
			name:   "next and last",
			header: `<https://api.github.com/r?page=2>; rel="next", <https://api.github.com/r?page=9>; rel="last"`,
			expected: map[string]string{
				"next": "https://api.github.com/r?page=2",
				"last": "https://api.github.com/r?page=9",
			},
		},
		{
			name:   "prev first and extra params",
			header: `<https://api.github.com/r?page=1>; rel="prev"; title="previous", <https://api.github.com/r?page=1>; rel="first"`,
			expected: map[string]string{
				"prev":  "https://api.github.com/r?page=1",
				"first": "https://api.github.com/r?page=1",
			},
		},
		{
			name:     "malformed segment skipped",
			header:   `https://api.github.com/r?page=2; rel="next", nonsense`,
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLinks(tt.header))
		})
	}
}
