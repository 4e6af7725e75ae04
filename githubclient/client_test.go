// githubclient/client_test.go
package githubclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-api-github-client/authcontext"
	"github.com/deploymenttheory/go-api-github-client/response"
)

// newTestClient builds a client against the given test server with a quiet logger.
func newTestClient(t *testing.T, server *httptest.Server, auth authcontext.AuthContext) *Client {
	t.Helper()

	config := DefaultClientConfig(auth)
	config.BaseURL = server.URL
	config.UploadURL = server.URL
	config.LogLevel = "LogLevelError"

	client, err := BuildClient(config, false)
	require.NoError(t, err)
	return client
}

func TestRepositoryGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/repos/octocat/hello-world", r.URL.Path)
		assert.Equal(t, "Bearer ghp_x", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.Equal(t, "2022-11-28", r.Header.Get("X-GitHub-Api-Version"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":1296269,"name":"hello-world","full_name":"octocat/hello-world","private":false}`)
	}))
	defer server.Close()

	client := newTestClient(t, server, authcontext.PersonalToken{Token: "ghp_x"})

	repo, err := client.Repository("octocat", "hello-world").Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1296269), repo.ID)
	assert.Equal(t, "octocat/hello-world", repo.FullName)
}

func TestRepositoryGetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found","documentation_url":"https://docs.github.com/rest"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server, authcontext.Anonymous{})

	repo, err := client.Repository("octocat", "missing").Get(context.Background())
	require.Error(t, err)
	assert.Nil(t, repo)

	ghErr, ok := response.AsGitHubError(err)
	require.True(t, ok)
	assert.Equal(t, response.KindNotFound, ghErr.Kind)
	assert.Equal(t, http.StatusNotFound, ghErr.StatusCode)
	assert.Equal(t, "Not Found", ghErr.Message)
}

func TestUserGetConcurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login := r.URL.Path[len("/users/"):]
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"login":%q,"id":%d}`, login, len(login))
	}))
	defer server.Close()

	client := newTestClient(t, server, authcontext.Anonymous{})

	const workers = 10
	var wg sync.WaitGroup
	errs := make([]error, workers)
	users := make([]*User, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			users[i], errs[i] = client.User(fmt.Sprintf("user-%d", i)).Get(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, fmt.Sprintf("user-%d", i), users[i].Login)
	}
}

func TestCurrentUserGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Basic b2N0b2NhdDpzZWNyZXQ=", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"login":"octocat","id":1}`)
	}))
	defer server.Close()

	client := newTestClient(t, server, authcontext.BasicAuth{Username: "octocat", Password: "secret"})

	user, err := client.CurrentUser().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
}

func TestIssueCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/repos/octocat/hello-world/issues", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req IssueRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Found a bug", req.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"number":1347,"title":"Found a bug","state":"open"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server, authcontext.PersonalToken{Token: "ghp_x"})

	issue, err := client.Repository("octocat", "hello-world").Issues().Create(context.Background(), IssueRequest{
		Title: "Found a bug",
		Body:  "I'm having a problem with this.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1347, issue.Number)
	assert.Equal(t, "open", issue.State)
}

func TestIssueCreateValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"message":"Validation Failed","errors":[{"resource":"Issue","field":"title","code":"missing_field"}]}`)
	}))
	defer server.Close()

	client := newTestClient(t, server, authcontext.PersonalToken{Token: "ghp_x"})

	_, err := client.Repository("octocat", "hello-world").Issues().Create(context.Background(), IssueRequest{})
	require.Error(t, err)

	ghErr, ok := response.AsGitHubError(err)
	require.True(t, ok)
	assert.Equal(t, response.KindValidation, ghErr.Kind)
	require.Len(t, ghErr.Errors, 1)
	assert.Equal(t, "title", ghErr.Errors[0].Field)
	assert.Equal(t, "missing_field", ghErr.Errors[0].Code)
}

func TestPullRequestMerge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/repos/octocat/hello-world/pulls/42/merge", r.URL.Path)

		var opts PullRequestMergeOptions
		require.NoError(t, json.NewDecoder(r.Body).Decode(&opts))
		assert.Equal(t, "squash", opts.MergeMethod)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"sha":"6dcb09b5b57875f334f61aebed695e2e4193db5e","merged":true,"message":"Pull Request successfully merged"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server, authcontext.PersonalToken{Token: "ghp_x"})

	result, err := client.Repository("octocat", "hello-world").Pulls().Merge(context.Background(), 42, PullRequestMergeOptions{
		MergeMethod: "squash",
	})
	require.NoError(t, err)
	assert.True(t, result.Merged)
	assert.Equal(t, "6dcb09b5b57875f334f61aebed695e2e4193db5e", result.SHA)
}

func TestRepositoryListLanguages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/hello-world/languages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"Go":123456,"Shell":789}`)
	}))
	defer server.Close()

	client := newTestClient(t, server, authcontext.Anonymous{})

	languages, err := client.Repository("octocat", "hello-world").ListLanguages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Go": 123456, "Shell": 789}, languages)
}

func TestUploadReleaseAsset(t *testing.T) {
	payload := []byte("binary-content")

	uploadServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/repos/octocat/hello-world/releases/7/assets", r.URL.Path)
		assert.Equal(t, "app.zip", r.URL.Query().Get("name"))
		assert.Equal(t, "application/zip", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":99,"name":"app.zip","content_type":"application/zip","size":14}`)
	}))
	defer uploadServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upload must not hit the API base URL")
	}))
	defer apiServer.Close()

	config := DefaultClientConfig(authcontext.PersonalToken{Token: "ghp_x"})
	config.BaseURL = apiServer.URL
	config.UploadURL = uploadServer.URL
	config.LogLevel = "LogLevelError"

	client, err := BuildClient(config, false)
	require.NoError(t, err)

	asset, err := client.Repository("octocat", "hello-world").
		UploadReleaseAsset(context.Background(), 7, "app.zip", "application/zip", payload)
	require.NoError(t, err)
	assert.Equal(t, int64(99), asset.ID)
	assert.Equal(t, "app.zip", asset.Name)
}

func TestBuildClientInvalidConfig(t *testing.T) {
	_, err := BuildClient(ClientConfig{}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestClientConfigReturnsCopy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client := newTestClient(t, server, authcontext.Anonymous{})

	config := client.Config()
	config.BaseURL = "https://mutated.example.com"
	assert.Equal(t, server.URL, client.Config().BaseURL)
}
