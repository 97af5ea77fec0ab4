package analyzer

import (
	"regexp"
	"strings"

	"github.com/gnomegl/gitroast/internal/models"
)

var (
	installSection    = regexp.MustCompile(`(?i)##?\s*(install|installation|getting started|setup)`)
	usageSection      = regexp.MustCompile(`(?i)##?\s*(usage|how to use|examples)`)
	contributeSection = regexp.MustCompile(`(?i)##?\s*(contribut|development)`)
	licenseSection    = regexp.MustCompile(`(?i)##?\s*license`)
	badgeMarkup       = regexp.MustCompile(`\[!\[.*?\]\(.*?\)\]\(.*?\)`)
)

// AnalyzeReadme classifies README content. Empty or absent content
// short-circuits to a non-existent record.
func AnalyzeReadme(content string) *models.ReadmeAnalysis {
	if content == "" {
		return &models.ReadmeAnalysis{Exists: false}
	}

	analysis := &models.ReadmeAnalysis{
		Exists:                 true,
		WordCount:              len(strings.Fields(content)),
		LineCount:              len(strings.Split(content, "\n")),
		HasInstallSection:      installSection.MatchString(content),
		HasUsageSection:        usageSection.MatchString(content),
		HasContributingSection: contributeSection.MatchString(content),
		HasLicenseSection:      licenseSection.MatchString(content),
		HasBadges:              badgeMarkup.MatchString(content),
		HasCodeBlocks:          strings.Contains(content, "```"),
		CodeBlockCount:         strings.Count(content, "```") / 2,
	}

	analysis.Quality = readmeQuality(content, analysis.WordCount)
	return analysis
}

// readmeQuality is a strictly ordered ladder: length gates first, then
// word-count tiers with exclusive upper bounds.
func readmeQuality(content string, wordCount int) models.ReadmeQuality {
	switch {
	case len(strings.TrimSpace(content)) < 50:
		return models.ReadmeWorthless
	case wordCount < 50:
		return models.ReadmePathetic
	case wordCount < 200:
		return models.ReadmeLazy
	case wordCount < 500:
		return models.ReadmeMinimal
	default:
		return models.ReadmeDecent
	}
}
