// githubclient/client.go
/* The githubclient package provides a typed client for the GitHub REST API. A Client
owns one immutable configuration (base URL, upload URL, auth context, timeout and
redirect policy) and acts as the factory root for resource handles scoped to a
repository, issue list, pull request list, or user. All handles share the Client's
executor; each holds only its own scope identifiers, so handles are cheap to create
and safe to use concurrently. */
package githubclient

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/deploymenttheory/go-api-github-client/logger"
	"github.com/deploymenttheory/go-api-github-client/redirecthandler"
)

// Client issues requests against the GitHub REST API. It carries no mutable state
// after construction; configuration changes require constructing a new Client.
type Client struct {
	config ClientConfig
	http   *http.Client

	Logger logger.Logger
}

// BuildClient creates a new GitHub API client with the provided configuration.
// With populateDefaultValues set, unset fields are filled from the defaults before
// validation.
func BuildClient(config ClientConfig, populateDefaultValues bool) (*Client, error) {
	if populateDefaultValues {
		SetDefaultValuesClientConfig(&config)
	}

	if err := validateClientConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)
	log := logger.BuildLogger(parsedLogLevel, config.LogOutputFormat, config.LogConsoleSeparator)

	httpClient := &http.Client{
		Timeout: config.CustomTimeout,
	}

	if err := redirecthandler.SetupRedirectHandler(httpClient, config.FollowRedirects, config.MaxRedirects, log); err != nil {
		return nil, err
	}

	client := &Client{
		config: config,
		http:   httpClient,
		Logger: log,
	}

	log.Debug("New GitHub API client initialized",
		zap.String("base_url", config.BaseURL),
		zap.String("upload_url", config.UploadURL),
		zap.String("auth_method", config.Auth.Describe()),
		zap.Duration("timeout", config.CustomTimeout),
		zap.Bool("follow_redirects", config.FollowRedirects),
		zap.Int("max_redirects", config.MaxRedirects),
		zap.Bool("hide_sensitive_data", config.HideSensitiveData),
	)

	return client, nil
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() ClientConfig {
	return c.config
}

// Repository returns a handle scoped to one repository.
func (c *Client) Repository(owner, repo string) *RepositoryHandle {
	return &RepositoryHandle{client: c, owner: owner, repo: repo}
}

// User returns a handle scoped to one user by login.
func (c *Client) User(login string) *UserHandle {
	return &UserHandle{client: c, login: login}
}

// CurrentUser returns a handle scoped to the authenticated user.
func (c *Client) CurrentUser() *CurrentUserHandle {
	return &CurrentUserHandle{client: c}
}
