package profile

import (
	"context"
	"fmt"

	"github.com/google/go-github/v74/github"
)

// GitHubContributionCounter counts a user's commits through the GitHub commit
// search API.
type GitHubContributionCounter struct {
	client *github.Client
}

// NewGitHubContributionCounter creates a counter. The token is optional but
// unauthenticated search requests are rate limited aggressively.
func NewGitHubContributionCounter(token string) *GitHubContributionCounter {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &GitHubContributionCounter{client: client}
}

// CountCommits returns the total number of commits authored by the user.
// Only the result total is needed, so a single-item page is requested.
func (c *GitHubContributionCounter) CountCommits(ctx context.Context, username string) (int, error) {
	query := fmt.Sprintf("author:%s", username)
	result, _, err := c.client.Search.Commits(ctx, query, &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to search commits for %s: %w", username, err)
	}
	return result.GetTotal(), nil
}

var _ ContributionCounter = (*GitHubContributionCounter)(nil)
