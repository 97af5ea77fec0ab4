package github

import (
	"context"

	gh "github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"

	"github.com/gnomegl/gitroast/internal/models"
	"github.com/gnomegl/gitroast/internal/retry"
)

// Repository fetches a single repository's metadata.
func (c *Client) Repository(ctx context.Context, owner, name string) (*gh.Repository, error) {
	return retry.Do(ctx, func() (*gh.Repository, error) {
		repo, resp, err := c.gh.Repositories.Get(ctx, owner, name)
		if err != nil {
			return nil, mapError(resp, err, "repository "+owner+"/"+name)
		}
		return repo, nil
	})
}

// User fetches a profile resource.
func (c *Client) User(ctx context.Context, username string) (*gh.User, error) {
	return retry.Do(ctx, func() (*gh.User, error) {
		user, resp, err := c.gh.Users.Get(ctx, username)
		if err != nil {
			return nil, mapError(resp, err, "user "+username)
		}
		return user, nil
	})
}

// RepositoryCommits pages through a repository's commit list, newest
// first, until a short page or maxCommits collected. Entries without a
// commit body are skipped rather than failing the fetch.
func (c *Client) RepositoryCommits(ctx context.Context, owner, name string, maxCommits int) ([]models.CommitInfo, error) {
	var commits []models.CommitInfo
	opt := &gh.CommitsListOptions{
		ListOptions: gh.ListOptions{PerPage: c.perPage, Page: 1},
	}

	for len(commits) < maxCommits {
		page, err := retry.Do(ctx, func() ([]*gh.RepositoryCommit, error) {
			list, resp, err := c.gh.Repositories.ListCommits(ctx, owner, name, opt)
			if err != nil {
				return nil, mapError(resp, err, "commits for "+owner+"/"+name)
			}
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		if page == nil {
			break
		}

		for _, commit := range page {
			if commit == nil || commit.Commit == nil {
				continue
			}
			info := models.CommitInfo{
				Message:  commit.Commit.GetMessage(),
				RepoName: name,
			}
			if commit.Commit.Author != nil {
				info.AuthorName = commit.Commit.Author.GetName()
				info.Date = commit.Commit.Author.GetDate().Time
			}
			commits = append(commits, info)
		}

		c.logger.WithFields(logrus.Fields{
			"repo":      owner + "/" + name,
			"page":      opt.Page,
			"collected": len(commits),
		}).Debug("fetched commit page")

		if len(page) < c.perPage {
			break
		}
		opt.Page++
	}

	if len(commits) > maxCommits {
		commits = commits[:maxCommits]
	}
	return commits, nil
}

// UserRepositories pages through a user's public repositories, most
// recently updated first, with forks filtered out.
func (c *Client) UserRepositories(ctx context.Context, username string) ([]*gh.Repository, error) {
	var repos []*gh.Repository
	opt := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: c.perPage, Page: 1},
	}

	for {
		page, err := retry.Do(ctx, func() ([]*gh.Repository, error) {
			list, resp, err := c.gh.Repositories.ListByUser(ctx, username, opt)
			if err != nil {
				return nil, mapError(resp, err, "repositories for "+username)
			}
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		if page == nil {
			break
		}

		for _, repo := range page {
			if repo == nil || repo.GetFork() {
				continue
			}
			repos = append(repos, repo)
		}

		if len(page) < c.perPage {
			break
		}
		opt.Page++
	}

	c.logger.WithFields(logrus.Fields{
		"user":  username,
		"repos": len(repos),
	}).Debug("fetched repository list")

	return repos, nil
}

// ReadmeText fetches and decodes a repository's README. A missing README,
// a response without content, or a decode failure all report exists=false
// instead of an error: documentation absence is a finding, not a failure.
func (c *Client) ReadmeText(ctx context.Context, owner, name string) (string, bool) {
	content, err := retry.Do(ctx, func() (*gh.RepositoryContent, error) {
		readme, resp, err := c.gh.Repositories.GetReadme(ctx, owner, name, nil)
		if err != nil {
			return nil, mapError(resp, err, "readme for "+owner+"/"+name)
		}
		return readme, nil
	})
	if err != nil || content == nil {
		c.logger.WithField("repo", owner+"/"+name).Debug("no readme found")
		return "", false
	}

	text, err := content.GetContent()
	if err != nil || text == "" {
		return "", false
	}
	return text, true
}
