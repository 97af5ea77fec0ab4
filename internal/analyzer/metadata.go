package analyzer

import (
	"regexp"
	"strings"

	gh "github.com/google/go-github/v57/github"

	"github.com/gnomegl/gitroast/internal/models"
)

var (
	placeholderName = regexp.MustCompile(`test|temp|untitled|new|asdf|foo|bar|example`)
	digitRun        = regexp.MustCompile(`\d{5,}`)
)

// AnalyzeRepoMetadata normalizes a raw repository resource into a fully
// defaulted record and classifies its name and description. go-github's
// getters are the normalization boundary: every nullable field comes out
// as a safe zero value here and is never re-guarded downstream.
func AnalyzeRepoMetadata(repo *gh.Repository) *models.RepoMetadata {
	if repo == nil {
		repo = &gh.Repository{}
	}

	meta := &models.RepoMetadata{
		Name:          repo.GetName(),
		Description:   repo.GetDescription(),
		Stars:         repo.GetStargazersCount(),
		Forks:         repo.GetForksCount(),
		Watchers:      repo.GetWatchersCount(),
		OpenIssues:    repo.GetOpenIssuesCount(),
		Topics:        repo.Topics,
		HasLicense:    repo.GetLicense() != nil,
		Language:      repo.GetLanguage(),
		Archived:      repo.GetArchived(),
		DefaultBranch: repo.GetDefaultBranch(),
		CreatedAt:     repo.GetCreatedAt().Time,
		UpdatedAt:     repo.GetUpdatedAt().Time,
		PushedAt:      repo.GetPushedAt().Time,
	}
	if meta.DefaultBranch == "" {
		meta.DefaultBranch = "main"
	}
	if license := repo.GetLicense(); license != nil {
		meta.LicenseName = license.GetName()
	}

	meta.NameQuality = classifyName(meta.Name)
	meta.DescriptionQuality = classifyDescription(meta.Description)
	return meta
}

// classifyName applies the quality rules in priority order; the first
// match wins, so "test12345" is placeholder garbage, not random numbers.
func classifyName(name string) models.NameQuality {
	switch {
	case placeholderName.MatchString(strings.ToLower(name)):
		return models.NamePlaceholderGarbage
	case digitRun.MatchString(name):
		return models.NameRandomNumbers
	case len(name) < 3:
		return models.NameTooShort
	case len(name) > 50:
		return models.NameEssay
	default:
		return models.NameAcceptable
	}
}

func classifyDescription(description string) models.DescriptionQuality {
	switch {
	case description == "":
		return models.DescriptionNonexistent
	case len(description) < 20:
		return models.DescriptionPathetic
	case len(description) < 50:
		return models.DescriptionLazy
	default:
		return models.DescriptionDecent
	}
}
