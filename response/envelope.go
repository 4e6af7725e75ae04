// response/envelope.go
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope is the raw status/headers/body triple returned by a successful execution,
// prior to payload-specific decoding. The executor does not know individual payload
// schemas; each endpoint decodes the envelope into its own result type.
type Envelope struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the envelope body into out. A nil out discards the body. An empty
// body with a non-nil out is a success for endpoints that legitimately return no
// content (204, 304). Decode failures yield a KindJSON error; this is the only point
// where payload decoding is checked.
func (e *Envelope) Decode(out any) *GitHubError {
	if out == nil || len(e.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(e.Body, out); err != nil {
		return NewJSONError(fmt.Sprintf("decoding response body: %v", err))
	}
	return nil
}

// NextPageURL returns the URL of the next page from the Link header, or "" when the
// response reports no next page. Absence of a "next" link is the upstream API's
// last-page signal.
func (e *Envelope) NextPageURL() string {
	return parseLinks(e.Header.Get("Link"))["next"]
}

// LastPageURL returns the URL of the last page from the Link header, or "".
func (e *Envelope) LastPageURL() string {
	return parseLinks(e.Header.Get("Link"))["last"]
}
