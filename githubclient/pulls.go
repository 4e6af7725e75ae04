// githubclient/pulls.go
package githubclient

import (
	"context"
	"fmt"

	"github.com/deploymenttheory/go-api-github-client/response"
)

// PullsHandle scopes operations to the pull requests of a single repository.
type PullsHandle struct {
	client *Client
	owner  string
	repo   string
}

func (h *PullsHandle) path(suffix string) string {
	return fmt.Sprintf("/repos/%s/%s/pulls%s", h.owner, h.repo, suffix)
}

// PullRequestListOptions specifies the optional parameters for listing pull requests.
type PullRequestListOptions struct {
	ListOptions
	State string `url:"state,omitempty"` // open, closed, all
	Head  string `url:"head,omitempty"`  // user:ref-name or organization:ref-name
	Base  string `url:"base,omitempty"`
}

// PullRequestCreate is the payload for opening a pull request.
type PullRequestCreate struct {
	Title string `json:"title"`
	Head  string `json:"head"`
	Base  string `json:"base"`
	Body  string `json:"body,omitempty"`
	Draft bool   `json:"draft,omitempty"`
}

// PullRequestMergeOptions is the payload for merging a pull request.
type PullRequestMergeOptions struct {
	CommitTitle   string `json:"commit_title,omitempty"`
	CommitMessage string `json:"commit_message,omitempty"`
	MergeMethod   string `json:"merge_method,omitempty"` // merge, squash, rebase
}

// MergeResult is the response to a merge request.
type MergeResult struct {
	SHA     string `json:"sha"`
	Merged  bool   `json:"merged"`
	Message string `json:"message,omitempty"`
}

// Get fetches a single pull request by number.
//
// GitHub API docs: https://docs.github.com/rest/pulls/pulls#get-a-pull-request
func (h *PullsHandle) Get(ctx context.Context, number int) (*PullRequest, error) {
	envelope, err := h.client.Do(ctx, "GET", h.path(fmt.Sprintf("/%d", number)), nil, nil)
	if err != nil {
		return nil, err
	}

	var pull PullRequest
	if decodeErr := envelope.Decode(&pull); decodeErr != nil {
		return nil, decodeErr
	}
	return &pull, nil
}

// List fetches one page of the repository's pull requests.
//
// GitHub API docs: https://docs.github.com/rest/pulls/pulls#list-pull-requests
func (h *PullsHandle) List(ctx context.Context, opts PullRequestListOptions) ([]PullRequest, *response.Envelope, error) {
	opts.ListOptions = opts.ListOptions.withDefaults()

	query, err := listQuery(opts)
	if err != nil {
		return nil, nil, response.NewJSONError(fmt.Sprintf("encoding list options: %v", err))
	}

	envelope, doErr := h.client.Do(ctx, "GET", h.path(""), query, nil)
	if doErr != nil {
		return nil, nil, doErr
	}

	var pulls []PullRequest
	if decodeErr := envelope.Decode(&pulls); decodeErr != nil {
		return nil, nil, decodeErr
	}
	return pulls, envelope, nil
}

// ListAll returns a lazy iterator over all pages of the repository's pull requests.
func (h *PullsHandle) ListAll(opts PullRequestListOptions) *PageIterator[PullRequest] {
	return newPageIterator(opts.Page, func(ctx context.Context, page int) ([]PullRequest, *response.Envelope, error) {
		opts.Page = page
		return h.List(ctx, opts)
	})
}

// Create opens a new pull request.
//
// GitHub API docs: https://docs.github.com/rest/pulls/pulls#create-a-pull-request
func (h *PullsHandle) Create(ctx context.Context, req PullRequestCreate) (*PullRequest, error) {
	envelope, err := h.client.Do(ctx, "POST", h.path(""), nil, req)
	if err != nil {
		return nil, err
	}

	var pull PullRequest
	if decodeErr := envelope.Decode(&pull); decodeErr != nil {
		return nil, decodeErr
	}
	return &pull, nil
}

// Merge merges a pull request.
//
// GitHub API docs: https://docs.github.com/rest/pulls/pulls#merge-a-pull-request
func (h *PullsHandle) Merge(ctx context.Context, number int, opts PullRequestMergeOptions) (*MergeResult, error) {
	envelope, err := h.client.Do(ctx, "PUT", h.path(fmt.Sprintf("/%d/merge", number)), nil, opts)
	if err != nil {
		return nil, err
	}

	var result MergeResult
	if decodeErr := envelope.Decode(&result); decodeErr != nil {
		return nil, decodeErr
	}
	return &result, nil
}
