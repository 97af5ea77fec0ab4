// Package service orchestrates a full analysis run: resolve the target,
// fetch its history, extract features, grade them and render content.
package service

import (
	"context"
	"errors"
	"sort"

	gh "github.com/google/go-github/v57/github"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/gnomegl/gitroast/internal/analyzer"
	"github.com/gnomegl/gitroast/internal/models"
	"github.com/gnomegl/gitroast/internal/resolver"
	"github.com/gnomegl/gitroast/internal/roast"
)

var (
	ErrNoCommits            = errors.New("no commits found in repository")
	ErrNoPublicRepos        = errors.New("no public repositories found for this user")
	ErrNoCommitsAcrossRepos = errors.New("no commits found across all repositories")
)

// DataSource is the slice of the API client the orchestrator needs.
type DataSource interface {
	Repository(ctx context.Context, owner, name string) (*gh.Repository, error)
	User(ctx context.Context, username string) (*gh.User, error)
	RepositoryCommits(ctx context.Context, owner, name string, maxCommits int) ([]models.CommitInfo, error)
	UserRepositories(ctx context.Context, username string) ([]*gh.Repository, error)
	ReadmeText(ctx context.Context, owner, name string) (string, bool)
}

// ContentGenerator produces a content bundle from an analysis. The
// generative provider implements this; a nil generator means template
// content only.
type ContentGenerator interface {
	Generate(ctx context.Context, analysis *models.Analysis) (*models.ContentBundle, error)
}

// Limits caps how much history a single run will pull.
type Limits struct {
	MaxProfileRepos   int
	MaxCommitsPerRepo int
	MaxRepoCommits    int
}

func DefaultLimits() Limits {
	return Limits{
		MaxProfileRepos:   20,
		MaxCommitsPerRepo: 100,
		MaxRepoCommits:    1000,
	}
}

type Orchestrator struct {
	source       DataSource
	generator    ContentGenerator
	logger       *logrus.Logger
	limits       Limits
	showProgress bool
}

type Option func(*Orchestrator)

func WithGenerator(g ContentGenerator) Option {
	return func(o *Orchestrator) { o.generator = g }
}

func WithLimits(limits Limits) Option {
	return func(o *Orchestrator) { o.limits = limits }
}

func WithProgress(show bool) Option {
	return func(o *Orchestrator) { o.showProgress = show }
}

func NewOrchestrator(source DataSource, logger *logrus.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		source: source,
		logger: logger,
		limits: DefaultLimits(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Analyze runs the whole pipeline for a raw target string and returns
// the final result. Content generation failures never fail the run;
// they downgrade it to template content.
func (o *Orchestrator) Analyze(ctx context.Context, input string) (*models.AnalysisResult, error) {
	target := resolver.Resolve(input)

	var analysis *models.Analysis
	var err error
	if target.Kind == models.TargetProfile {
		analysis, err = o.analyzeProfile(ctx, target)
	} else {
		analysis, err = o.analyzeRepository(ctx, target)
	}
	if err != nil {
		return nil, err
	}

	bundle := o.generateContent(ctx, analysis)

	return &models.AnalysisResult{
		Kind:             target.Kind,
		Subject:          analysis.Subject,
		Grade:            bundle.Grade,
		GradeDescription: bundle.GradeDescription,
		Roasts:           bundle.Roasts,
		Achievements:     bundle.Achievements,
		Suggestions:      bundle.Suggestions,
		Stats: models.StatsSummary{
			TotalCommits:        analysis.Stats.TotalCommits,
			LateNightCommits:    analysis.Stats.LateNightCommits,
			LateNightPercentage: analysis.Stats.LateNightPercentage,
			WeekendCommits:      analysis.Stats.WeekendCommits,
			AuthorCount:         analysis.Stats.AuthorCount,
		},
	}, nil
}

func (o *Orchestrator) analyzeRepository(ctx context.Context, target models.Target) (*models.Analysis, error) {
	o.logger.WithField("repo", target.FullName()).Info("analyzing repository")

	repo, err := o.source.Repository(ctx, target.Owner, target.Name)
	if err != nil {
		return nil, err
	}

	commits, err := o.source.RepositoryCommits(ctx, target.Owner, target.Name, o.limits.MaxRepoCommits)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, ErrNoCommits
	}

	readmeText, _ := o.source.ReadmeText(ctx, target.Owner, target.Name)

	return &models.Analysis{
		Subject: models.Subject{
			Kind:     models.TargetRepository,
			FullName: target.FullName(),
			Owner:    target.Owner,
			Repo:     target.Name,
		},
		Stats:    analyzer.AnalyzeCommits(commits),
		Readme:   analyzer.AnalyzeReadme(readmeText),
		Metadata: analyzer.AnalyzeRepoMetadata(repo),
	}, nil
}

func (o *Orchestrator) analyzeProfile(ctx context.Context, target models.Target) (*models.Analysis, error) {
	o.logger.WithField("user", target.Username).Info("analyzing profile")

	user, err := o.source.User(ctx, target.Username)
	if err != nil {
		return nil, err
	}

	repos, err := o.source.UserRepositories(ctx, target.Username)
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		return nil, ErrNoPublicRepos
	}

	toAnalyze := repos
	if len(toAnalyze) > o.limits.MaxProfileRepos {
		toAnalyze = toAnalyze[:o.limits.MaxProfileRepos]
	}

	var bar *progressbar.ProgressBar
	if o.showProgress {
		bar = progressbar.Default(int64(len(toAnalyze)), "roasting repos")
	}

	var allCommits []models.CommitInfo
	var activity []models.RepoActivity
	for _, repo := range toAnalyze {
		if bar != nil {
			bar.Add(1)
		}
		name := repo.GetName()
		if name == "" {
			continue
		}

		commits, err := o.source.RepositoryCommits(ctx, target.Username, name, o.limits.MaxCommitsPerRepo)
		if err != nil {
			// One broken repo should not sink the whole profile.
			o.logger.WithError(err).WithField("repo", name).Warn("skipping repository")
			continue
		}
		if len(commits) == 0 {
			continue
		}

		allCommits = append(allCommits, commits...)
		activity = append(activity, models.RepoActivity{
			Name:     name,
			Commits:  len(commits),
			Stars:    repo.GetStargazersCount(),
			Language: repo.GetLanguage(),
		})
	}

	if len(allCommits) == 0 {
		return nil, ErrNoCommitsAcrossRepos
	}

	o.logger.WithFields(logrus.Fields{
		"user":    target.Username,
		"commits": len(allCommits),
		"repos":   len(activity),
	}).Info("collected profile history")

	sort.SliceStable(activity, func(i, j int) bool {
		return activity[i].Commits > activity[j].Commits
	})
	if len(activity) > 5 {
		activity = activity[:5]
	}

	return &models.Analysis{
		Subject: models.Subject{
			Kind:          models.TargetProfile,
			FullName:      target.Username,
			Username:      target.Username,
			TotalRepos:    len(repos),
			AnalyzedRepos: len(toAnalyze),
			PublicRepos:   user.GetPublicRepos(),
			Followers:     user.GetFollowers(),
			Following:     user.GetFollowing(),
			Bio:           user.GetBio(),
			TopRepos:      activity,
		},
		Stats: analyzer.AnalyzeCommits(allCommits),
	}, nil
}

// generateContent tries the generative provider and falls back to the
// template engine on any failure, prepending a status roast so the
// downgrade is visible in the output itself.
func (o *Orchestrator) generateContent(ctx context.Context, analysis *models.Analysis) *models.ContentBundle {
	if o.generator != nil {
		bundle, err := o.generator.Generate(ctx, analysis)
		if err == nil {
			o.logger.Info("generated roast accepted")
			return bundle
		}
		o.logger.WithError(err).Warn("generation failed, falling back to templates")
	}

	bundle := roast.GenerateTemplate(analysis)
	bundle.Roasts = append([]models.Roast{fallbackNotice()}, bundle.Roasts...)
	return bundle
}

func fallbackNotice() models.Roast {
	return models.Roast{
		Emoji:    "🤖",
		Title:    "LLM Status Update",
		Content:  "Our LLM is out sick today, but who needs it? I've learned enough from roasting thousands of repos that I can handle this without AI. Your code is still getting destroyed, just the old-fashioned way.",
		Severity: 1,
	}
}
