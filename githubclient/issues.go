// githubclient/issues.go
package githubclient

import (
	"context"
	"fmt"

	"github.com/deploymenttheory/go-api-github-client/response"
)

// IssuesHandle scopes operations to the issues of a single repository.
type IssuesHandle struct {
	client *Client
	owner  string
	repo   string
}

func (h *IssuesHandle) path(suffix string) string {
	return fmt.Sprintf("/repos/%s/%s/issues%s", h.owner, h.repo, suffix)
}

// IssueListOptions specifies the optional parameters for listing issues.
type IssueListOptions struct {
	ListOptions
	State     string `url:"state,omitempty"`  // open, closed, all
	Labels    string `url:"labels,omitempty"` // comma-separated label names
	Sort      string `url:"sort,omitempty"`
	Direction string `url:"direction,omitempty"`
}

// IssueRequest is the payload for creating or updating an issue.
type IssueRequest struct {
	Title     string   `json:"title"`
	Body      string   `json:"body,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Milestone int      `json:"milestone,omitempty"`
}

// Get fetches a single issue by number.
//
// GitHub API docs: https://docs.github.com/rest/issues/issues#get-an-issue
func (h *IssuesHandle) Get(ctx context.Context, number int) (*Issue, error) {
	envelope, err := h.client.Do(ctx, "GET", h.path(fmt.Sprintf("/%d", number)), nil, nil)
	if err != nil {
		return nil, err
	}

	var issue Issue
	if decodeErr := envelope.Decode(&issue); decodeErr != nil {
		return nil, decodeErr
	}
	return &issue, nil
}

// List fetches one page of the repository's issues. The envelope carries the
// pagination links of the page.
//
// GitHub API docs: https://docs.github.com/rest/issues/issues#list-repository-issues
func (h *IssuesHandle) List(ctx context.Context, opts IssueListOptions) ([]Issue, *response.Envelope, error) {
	opts.ListOptions = opts.ListOptions.withDefaults()

	query, err := listQuery(opts)
	if err != nil {
		return nil, nil, response.NewJSONError(fmt.Sprintf("encoding list options: %v", err))
	}

	envelope, doErr := h.client.Do(ctx, "GET", h.path(""), query, nil)
	if doErr != nil {
		return nil, nil, doErr
	}

	var issues []Issue
	if decodeErr := envelope.Decode(&issues); decodeErr != nil {
		return nil, nil, decodeErr
	}
	return issues, envelope, nil
}

// ListAll returns a lazy iterator over all pages of the repository's issues,
// starting at opts.Page.
func (h *IssuesHandle) ListAll(opts IssueListOptions) *PageIterator[Issue] {
	return newPageIterator(opts.Page, func(ctx context.Context, page int) ([]Issue, *response.Envelope, error) {
		opts.Page = page
		return h.List(ctx, opts)
	})
}

// Create opens a new issue.
//
// GitHub API docs: https://docs.github.com/rest/issues/issues#create-an-issue
func (h *IssuesHandle) Create(ctx context.Context, req IssueRequest) (*Issue, error) {
	envelope, err := h.client.Do(ctx, "POST", h.path(""), nil, req)
	if err != nil {
		return nil, err
	}

	var issue Issue
	if decodeErr := envelope.Decode(&issue); decodeErr != nil {
		return nil, decodeErr
	}
	return &issue, nil
}
