// githubclient/repositories.go
package githubclient

import (
	"context"
	"fmt"
)

// RepositoryHandle scopes operations to a single repository. It holds only its scope
// identifiers and a reference to the shared client; it never caches results, so each
// call is an independent request.
type RepositoryHandle struct {
	client *Client
	owner  string
	repo   string
}

func (r *RepositoryHandle) path(suffix string) string {
	return fmt.Sprintf("/repos/%s/%s%s", r.owner, r.repo, suffix)
}

// Get fetches the repository.
//
// GitHub API docs: https://docs.github.com/rest/repos/repos#get-a-repository
func (r *RepositoryHandle) Get(ctx context.Context) (*Repository, error) {
	envelope, err := r.client.Do(ctx, "GET", r.path(""), nil, nil)
	if err != nil {
		return nil, err
	}

	var repository Repository
	if decodeErr := envelope.Decode(&repository); decodeErr != nil {
		return nil, decodeErr
	}
	return &repository, nil
}

// ListLanguages fetches the languages of the repository, keyed by language name with
// the number of bytes written in that language.
//
// GitHub API docs: https://docs.github.com/rest/repos/repos#list-repository-languages
func (r *RepositoryHandle) ListLanguages(ctx context.Context) (map[string]int, error) {
	envelope, err := r.client.Do(ctx, "GET", r.path("/languages"), nil, nil)
	if err != nil {
		return nil, err
	}

	languages := map[string]int{}
	if decodeErr := envelope.Decode(&languages); decodeErr != nil {
		return nil, decodeErr
	}
	return languages, nil
}

// Issues returns a handle for the repository's issues.
func (r *RepositoryHandle) Issues() *IssuesHandle {
	return &IssuesHandle{client: r.client, owner: r.owner, repo: r.repo}
}

// Pulls returns a handle for the repository's pull requests.
func (r *RepositoryHandle) Pulls() *PullsHandle {
	return &PullsHandle{client: r.client, owner: r.owner, repo: r.repo}
}

// UploadReleaseAsset uploads content as an asset of a release, against the upload URL.
//
// GitHub API docs: https://docs.github.com/rest/releases/assets#upload-a-release-asset
func (r *RepositoryHandle) UploadReleaseAsset(ctx context.Context, releaseID int64, name, contentType string, content []byte) (*ReleaseAsset, error) {
	query, err := listQuery(struct {
		Name string `url:"name"`
	}{Name: name})
	if err != nil {
		return nil, err
	}

	endpoint := r.path(fmt.Sprintf("/releases/%d/assets", releaseID))
	envelope, uploadErr := r.client.DoUpload(ctx, "POST", endpoint, query, contentType, content)
	if uploadErr != nil {
		return nil, uploadErr
	}

	var asset ReleaseAsset
	if decodeErr := envelope.Decode(&asset); decodeErr != nil {
		return nil, decodeErr
	}
	return &asset, nil
}
