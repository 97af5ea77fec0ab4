package config

import (
	"github.com/urfave/cli/v2"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// AppConfig carries everything a run needs, resolved from flags and
// environment.
type AppConfig struct {
	Target       string
	Token        string
	OpenAIKey    string
	Model        string
	OutputFormat string
	NoAI         bool
	Verbose      bool

	MaxProfileRepos   int
	MaxCommitsPerRepo int
	MaxRepoCommits    int
}

func ParseConfig(c *cli.Context) (*AppConfig, error) {
	if c.NArg() == 0 {
		return nil, cli.ShowAppHelp(c)
	}

	format := c.String("output")
	if format != OutputJSON {
		format = OutputText
	}

	return &AppConfig{
		Target:            c.Args().First(),
		Token:             c.String("token"),
		OpenAIKey:         c.String("openai-key"),
		Model:             c.String("model"),
		OutputFormat:      format,
		NoAI:              c.Bool("no-ai"),
		Verbose:           c.Bool("verbose"),
		MaxProfileRepos:   c.Int("max-repos"),
		MaxCommitsPerRepo: c.Int("max-commits"),
		MaxRepoCommits:    c.Int("max-repo-commits"),
	}, nil
}
