// githubclient/models.go
package githubclient

import (
	"time"
)

// User represents a GitHub account, either a user or an organization.
type User struct {
	Login       string    `json:"login"`
	ID          int64     `json:"id"`
	NodeID      string    `json:"node_id,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	HTMLURL     string    `json:"html_url,omitempty"`
	Type        string    `json:"type,omitempty"`
	SiteAdmin   bool      `json:"site_admin,omitempty"`
	Name        string    `json:"name,omitempty"`
	Company     string    `json:"company,omitempty"`
	Blog        string    `json:"blog,omitempty"`
	Location    string    `json:"location,omitempty"`
	Email       string    `json:"email,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	PublicRepos int       `json:"public_repos,omitempty"`
	Followers   int       `json:"followers,omitempty"`
	Following   int       `json:"following,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Repository represents a GitHub repository.
type Repository struct {
	ID              int64      `json:"id"`
	NodeID          string     `json:"node_id,omitempty"`
	Name            string     `json:"name"`
	FullName        string     `json:"full_name"`
	Owner           *User      `json:"owner,omitempty"`
	Private         bool       `json:"private"`
	HTMLURL         string     `json:"html_url,omitempty"`
	Description     string     `json:"description,omitempty"`
	Fork            bool       `json:"fork,omitempty"`
	Language        string     `json:"language,omitempty"`
	ForksCount      int        `json:"forks_count,omitempty"`
	StargazersCount int        `json:"stargazers_count,omitempty"`
	WatchersCount   int        `json:"watchers_count,omitempty"`
	OpenIssuesCount int        `json:"open_issues_count,omitempty"`
	DefaultBranch   string     `json:"default_branch,omitempty"`
	Topics          []string   `json:"topics,omitempty"`
	Archived        bool       `json:"archived,omitempty"`
	Visibility      string     `json:"visibility,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	PushedAt        *time.Time `json:"pushed_at,omitempty"`
}

// Label represents a label attached to an issue or pull request.
type Label struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// Milestone represents a repository milestone.
type Milestone struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	State       string `json:"state,omitempty"`
	Description string `json:"description,omitempty"`
}

// Issue represents a GitHub issue.
type Issue struct {
	ID        int64      `json:"id"`
	Number    int        `json:"number"`
	State     string     `json:"state"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	User      *User      `json:"user,omitempty"`
	Labels    []Label    `json:"labels,omitempty"`
	Assignees []*User    `json:"assignees,omitempty"`
	Milestone *Milestone `json:"milestone,omitempty"`
	Comments  int        `json:"comments,omitempty"`
	HTMLURL   string     `json:"html_url,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// PullRequestBranch represents one side of a pull request.
type PullRequestBranch struct {
	Label string      `json:"label,omitempty"`
	Ref   string      `json:"ref"`
	SHA   string      `json:"sha,omitempty"`
	Repo  *Repository `json:"repo,omitempty"`
}

// PullRequest represents a GitHub pull request.
type PullRequest struct {
	ID        int64              `json:"id"`
	Number    int                `json:"number"`
	State     string             `json:"state"`
	Title     string             `json:"title"`
	Body      string             `json:"body,omitempty"`
	User      *User              `json:"user,omitempty"`
	HTMLURL   string             `json:"html_url,omitempty"`
	Draft     bool               `json:"draft,omitempty"`
	Merged    bool               `json:"merged,omitempty"`
	Mergeable *bool              `json:"mergeable,omitempty"`
	Head      *PullRequestBranch `json:"head,omitempty"`
	Base      *PullRequestBranch `json:"base,omitempty"`
	CreatedAt *time.Time         `json:"created_at,omitempty"`
	UpdatedAt *time.Time         `json:"updated_at,omitempty"`
	MergedAt  *time.Time         `json:"merged_at,omitempty"`
}

// ReleaseAsset represents an asset uploaded to a release.
type ReleaseAsset struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Label              string `json:"label,omitempty"`
	ContentType        string `json:"content_type,omitempty"`
	Size               int    `json:"size,omitempty"`
	BrowserDownloadURL string `json:"browser_download_url,omitempty"`
}
