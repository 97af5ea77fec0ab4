package github

import (
	"context"

	gh "github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// Client fetches the raw material for an analysis: repositories, commits,
// profiles and READMEs. Every remote call is routed through the retry
// executor so transient rate limiting never surfaces directly.
type Client struct {
	gh      *gh.Client
	logger  *logrus.Logger
	perPage int
}

func NewClient(token string, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
	}

	api := gh.NewClient(nil)
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		api = gh.NewClient(oauth2.NewClient(context.Background(), ts))
	}

	return &Client{
		gh:      api,
		logger:  logger,
		perPage: 100,
	}
}

// ValidateToken checks the supplied credential against the authenticated
// user endpoint. A 403 is tolerated: rate limiting doesn't mean the token
// is bad.
func (c *Client) ValidateToken(ctx context.Context) error {
	_, resp, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == 403 {
			c.logger.Warn("rate limited, skipping token validation")
			return nil
		}
		return mapError(resp, err, "authenticated user")
	}
	return nil
}
