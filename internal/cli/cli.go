package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/gnomegl/gitroast/internal/utils"
)

const helpTemplate = `{{.Name}} - {{.Usage}}

Usage: {{.HelpName}} [options] <repo-url|owner/repo|username>

Options:
   {{range .VisibleFlags}}{{.}}
   {{end}}`

func NewApp(action cli.ActionFunc) *cli.App {
	cli.AppHelpTemplate = helpTemplate

	return &cli.App{
		Name:    "gitroast",
		Usage:   "Analyzes GitHub repos and profiles, then grades and roasts what it finds",
		Version: "v" + utils.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "GitHub personal access token",
				EnvVars: []string{"GITROAST_GITHUB_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "openai-key",
				Aliases: []string{"k"},
				Usage:   "OpenAI API key for generated roasts (falls back to templates without it)",
				EnvVars: []string{"OPENAI_API_KEY"},
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "Chat model to use for generated roasts",
				EnvVars: []string{"GITROAST_MODEL"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format (text, json)",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:    "no-ai",
				Aliases: []string{"n"},
				Usage:   "Skip generated roasts and use templates only",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
			&cli.IntFlag{
				Name:  "max-repos",
				Usage: "Maximum repositories to analyze on a profile",
				Value: 20,
			},
			&cli.IntFlag{
				Name:  "max-commits",
				Usage: "Maximum commits to fetch per repository on a profile",
				Value: 100,
			},
			&cli.IntFlag{
				Name:  "max-repo-commits",
				Usage: "Maximum commits to fetch for a single repository analysis",
				Value: 1000,
			},
		},
		Action:    action,
		ArgsUsage: "<repo-url|owner/repo|username>",
		Authors: []*cli.Author{
			{Name: "gnomegl"},
		},
	}
}
