// githubclient/pagination.go
package githubclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/go-querystring/query"

	"github.com/deploymenttheory/go-api-github-client/response"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 30
)

// ListOptions specifies the pagination parameters shared by all list operations.
// They travel as query parameters and are not part of any response payload.
type ListOptions struct {
	Page    int `url:"page,omitempty"`
	PerPage int `url:"per_page,omitempty"`
}

// withDefaults returns a copy with unset fields replaced by the upstream defaults.
func (o ListOptions) withDefaults() ListOptions {
	if o.Page <= 0 {
		o.Page = DefaultPage
	}
	if o.PerPage <= 0 {
		o.PerPage = DefaultPerPage
	}
	return o
}

// listQuery encodes a typed options struct into query parameters. The struct's `url`
// tags define the parameter names; zero values are omitted.
func listQuery(opts any) (url.Values, error) {
	values, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	return values, nil
}

// PageIterator lazily walks the pages of a list operation. Each call to Next performs
// one independent request; the sequence terminates when the response reports no
// "next" link and stops permanently on the first classified error. Iterators are not
// safe for concurrent use; restart by constructing a new iterator.
type PageIterator[T any] struct {
	fetch    func(ctx context.Context, page int) ([]T, *response.Envelope, error)
	nextPage int
	done     bool
	err      error
}

func newPageIterator[T any](startPage int, fetch func(ctx context.Context, page int) ([]T, *response.Envelope, error)) *PageIterator[T] {
	if startPage <= 0 {
		startPage = DefaultPage
	}
	return &PageIterator[T]{fetch: fetch, nextPage: startPage}
}

// HasNext reports whether another page can be fetched.
func (it *PageIterator[T]) HasNext() bool {
	return !it.done
}

// Err returns the error that terminated the sequence, if any.
func (it *PageIterator[T]) Err() error {
	return it.err
}

// Next fetches the next page. After an error or the last page, further calls return
// nil without issuing requests.
func (it *PageIterator[T]) Next(ctx context.Context) ([]T, error) {
	if it.done {
		return nil, it.err
	}

	items, envelope, err := it.fetch(ctx, it.nextPage)
	if err != nil {
		it.done = true
		it.err = err
		return nil, err
	}

	next := nextPageNumber(envelope)
	if next == 0 {
		it.done = true
	} else {
		it.nextPage = next
	}

	return items, nil
}

// nextPageNumber extracts the page number from the envelope's "next" link, or 0 when
// the sequence is exhausted.
func nextPageNumber(envelope *response.Envelope) int {
	nextURL := envelope.NextPageURL()
	if nextURL == "" {
		return 0
	}

	parsed, err := url.Parse(nextURL)
	if err != nil {
		return 0
	}

	page, err := strconv.Atoi(parsed.Query().Get("page"))
	if err != nil || page <= 0 {
		return 0
	}
	return page
}
