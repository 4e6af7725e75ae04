// githubclient/users.go
package githubclient

import (
	"context"
	"fmt"

	"github.com/deploymenttheory/go-api-github-client/response"
)

// UserHandle scopes operations to a single user by login.
type UserHandle struct {
	client *Client
	login  string
}

// CurrentUserHandle scopes operations to the authenticated user.
type CurrentUserHandle struct {
	client *Client
}

// RepositoryListOptions specifies the optional parameters for listing repositories.
type RepositoryListOptions struct {
	ListOptions
	Type      string `url:"type,omitempty"` // all, owner, member
	Sort      string `url:"sort,omitempty"`
	Direction string `url:"direction,omitempty"`
}

// Get fetches the user's public profile.
//
// GitHub API docs: https://docs.github.com/rest/users/users#get-a-user
func (h *UserHandle) Get(ctx context.Context) (*User, error) {
	envelope, err := h.client.Do(ctx, "GET", fmt.Sprintf("/users/%s", h.login), nil, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if decodeErr := envelope.Decode(&user); decodeErr != nil {
		return nil, decodeErr
	}
	return &user, nil
}

// ListRepositories fetches one page of the user's public repositories.
//
// GitHub API docs: https://docs.github.com/rest/repos/repos#list-repositories-for-a-user
func (h *UserHandle) ListRepositories(ctx context.Context, opts RepositoryListOptions) ([]Repository, *response.Envelope, error) {
	return listRepositories(ctx, h.client, fmt.Sprintf("/users/%s/repos", h.login), opts)
}

// ListAllRepositories returns a lazy iterator over all pages of the user's repositories.
func (h *UserHandle) ListAllRepositories(opts RepositoryListOptions) *PageIterator[Repository] {
	return newPageIterator(opts.Page, func(ctx context.Context, page int) ([]Repository, *response.Envelope, error) {
		opts.Page = page
		return h.ListRepositories(ctx, opts)
	})
}

// Get fetches the authenticated user's profile.
//
// GitHub API docs: https://docs.github.com/rest/users/users#get-the-authenticated-user
func (h *CurrentUserHandle) Get(ctx context.Context) (*User, error) {
	envelope, err := h.client.Do(ctx, "GET", "/user", nil, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if decodeErr := envelope.Decode(&user); decodeErr != nil {
		return nil, decodeErr
	}
	return &user, nil
}

// ListRepositories fetches one page of the repositories the authenticated user can access.
//
// GitHub API docs: https://docs.github.com/rest/repos/repos#list-repositories-for-the-authenticated-user
func (h *CurrentUserHandle) ListRepositories(ctx context.Context, opts RepositoryListOptions) ([]Repository, *response.Envelope, error) {
	return listRepositories(ctx, h.client, "/user/repos", opts)
}

// ListAllRepositories returns a lazy iterator over all pages of the authenticated
// user's repositories.
func (h *CurrentUserHandle) ListAllRepositories(opts RepositoryListOptions) *PageIterator[Repository] {
	return newPageIterator(opts.Page, func(ctx context.Context, page int) ([]Repository, *response.Envelope, error) {
		opts.Page = page
		return h.ListRepositories(ctx, opts)
	})
}

// listRepositories is the shared implementation for user-scoped repository listings.
func listRepositories(ctx context.Context, client *Client, endpoint string, opts RepositoryListOptions) ([]Repository, *response.Envelope, error) {
	opts.ListOptions = opts.ListOptions.withDefaults()

	query, err := listQuery(opts)
	if err != nil {
		return nil, nil, response.NewJSONError(fmt.Sprintf("encoding list options: %v", err))
	}

	envelope, doErr := client.Do(ctx, "GET", endpoint, query, nil)
	if doErr != nil {
		return nil, nil, doErr
	}

	var repositories []Repository
	if decodeErr := envelope.Decode(&repositories); decodeErr != nil {
		return nil, nil, decodeErr
	}
	return repositories, envelope, nil
}
