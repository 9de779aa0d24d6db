// Package github provides the simulated GitHub side of launchpad: a token
// "connection" and a fixed catalog of repositories typed with go-github.
// No request is sent to the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
	"github.com/google/go-github/v66/github"
)

// Connection errors.
var (
	ErrTokenRequired = errors.New("personal access token is required")
	ErrNotConnected  = errors.New("not connected to GitHub")
	ErrRepoNotFound  = errors.New("repository not found")
)

// Repository is a catalog entry. Framework is the detected deploy target.
type Repository struct {
	*github.Repository

	Framework   string
	LastUpdated string
}

// Client is a simulated GitHub connection.
type Client struct {
	owner     string
	now       func() time.Time
	connected bool
	repos     []Repository
}

// NewClient creates a disconnected client whose catalog belongs to owner.
func NewClient(owner string) *Client {
	return &Client{owner: owner, now: time.Now}
}

// Connect accepts any non-empty token and loads the catalog.
func (c *Client) Connect(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTokenRequired
	}
	c.repos = mockRepositories(c.owner, c.now())
	c.connected = true
	logr.FromContextOrDiscard(ctx).Info("connected to GitHub", "owner", c.owner, "repositories", len(c.repos))
	return nil
}

// Connected reports whether Connect succeeded.
func (c *Client) Connected() bool {
	return c.connected
}

// Owner returns the account login.
func (c *Client) Owner() string {
	return c.owner
}

// Search returns repositories whose name or description contains term,
// case-insensitively. An empty term returns the whole catalog.
func (c *Client) Search(term string) ([]Repository, error) {
	if !c.connected {
		return nil, ErrNotConnected
	}
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]Repository, 0, len(c.repos))
	for _, r := range c.repos {
		if term == "" ||
			strings.Contains(strings.ToLower(r.GetName()), term) ||
			strings.Contains(strings.ToLower(r.GetDescription()), term) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Get finds a repository by id.
func (c *Client) Get(id int64) (Repository, error) {
	if !c.connected {
		return Repository{}, ErrNotConnected
	}
	for _, r := range c.repos {
		if r.GetID() == id {
			return r, nil
		}
	}
	return Repository{}, fmt.Errorf("%w: %d", ErrRepoNotFound, id)
}

// Visibility returns "private" or "public".
func (r Repository) Visibility() string {
	if r.GetPrivate() {
		return "private"
	}
	return "public"
}

func mockRepositories(owner string, now time.Time) []Repository {
	type entry struct {
		id          int64
		name        string
		description string
		language    string
		stars       int
		updated     time.Duration
		private     bool
		framework   string
	}
	entries := []entry{
		{1, "my-react-app", "A modern React application with TypeScript", "TypeScript", 42, 2 * 24 * time.Hour, false, "React.js"},
		{2, "node-api-server", "REST API server built with Node.js and Express", "JavaScript", 18, 7 * 24 * time.Hour, true, "Node.js"},
		{3, "vue-dashboard", "Admin dashboard built with Vue 3 and Tailwind CSS", "Vue", 67, 3 * 24 * time.Hour, false, "Vue.js"},
	}

	repos := make([]Repository, 0, len(entries))
	for _, e := range entries {
		pushed := now.Add(-e.updated)
		repos = append(repos, Repository{
			Repository: &github.Repository{
				ID:              github.Int64(e.id),
				Name:            github.String(e.name),
				FullName:        github.String(owner + "/" + e.name),
				Description:     github.String(e.description),
				Language:        github.String(e.language),
				StargazersCount: github.Int(e.stars),
				Private:         github.Bool(e.private),
				DefaultBranch:   github.String("main"),
				HTMLURL:         github.String("https://github.com/" + owner + "/" + e.name),
				PushedAt:        &github.Timestamp{Time: pushed},
			},
			Framework:   e.framework,
			LastUpdated: lastUpdated(pushed, now),
		})
	}
	return repos
}

// lastUpdated renders pushed relative to now, e.g. "2 days ago".
func lastUpdated(pushed, now time.Time) string {
	return humanize.RelTime(pushed, now, "ago", "from now")
}
