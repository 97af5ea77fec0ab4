package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/gnomegl/gitroast/internal/art"
	"github.com/gnomegl/gitroast/internal/auth"
	appcli "github.com/gnomegl/gitroast/internal/cli"
	"github.com/gnomegl/gitroast/internal/config"
	"github.com/gnomegl/gitroast/internal/display"
	"github.com/gnomegl/gitroast/internal/github"
	"github.com/gnomegl/gitroast/internal/llm"
	"github.com/gnomegl/gitroast/internal/service"
)

func runApp(c *cli.Context) error {
	cfg, err := config.ParseConfig(c)
	if err != nil || cfg == nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	textOutput := cfg.OutputFormat == config.OutputText
	if textOutput {
		art.PrintLogo()
	}

	ctx := context.Background()

	token := auth.ResolveToken(cfg.Token)
	client := github.NewClient(token, logger)
	if token != "" {
		if err := client.ValidateToken(ctx); err != nil {
			return fmt.Errorf("token validation failed: %w", err)
		}
	}

	opts := []service.Option{
		service.WithLimits(service.Limits{
			MaxProfileRepos:   cfg.MaxProfileRepos,
			MaxCommitsPerRepo: cfg.MaxCommitsPerRepo,
			MaxRepoCommits:    cfg.MaxRepoCommits,
		}),
		service.WithProgress(textOutput),
	}
	if cfg.OpenAIKey != "" && !cfg.NoAI {
		opts = append(opts, service.WithGenerator(llm.NewGenerator(cfg.OpenAIKey, cfg.Model, logger)))
	}

	orchestrator := service.NewOrchestrator(client, logger, opts...)

	result, err := orchestrator.Analyze(ctx, cfg.Target)
	if err != nil {
		return friendlyError(err)
	}

	if cfg.OutputFormat == config.OutputJSON {
		return display.RenderJSON(os.Stdout, result)
	}
	display.Render(os.Stdout, result)
	return nil
}

// friendlyError rewrites the common failure modes into messages that
// tell the user what to actually do.
func friendlyError(err error) error {
	switch {
	case github.IsNotFound(err):
		return errors.New("not found on GitHub. Make sure the repo or user exists and is public")
	case github.IsRateLimited(err):
		return errors.New("rate limit exceeded. Try again later or pass a GitHub token with --token")
	case errors.Is(err, service.ErrNoCommits),
		errors.Is(err, service.ErrNoPublicRepos),
		errors.Is(err, service.ErrNoCommitsAcrossRepos):
		return fmt.Errorf("%w. Nothing to roast, which is a roast in itself", err)
	default:
		return err
	}
}

func main() {
	// Missing .env files are fine; the flags and environment still work.
	_ = godotenv.Load()

	app := appcli.NewApp(runApp)
	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
