// Package display renders analysis results to the terminal, either as
// colored report output or as raw JSON for piping.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/gnomegl/gitroast/internal/models"
)

var (
	headerColor  = color.New(color.Bold, color.FgCyan)
	gradeColor   = color.New(color.Bold, color.FgYellow)
	titleColor   = color.New(color.Bold, color.FgRed)
	dimColor     = color.New(color.Faint)
	sectionColor = color.New(color.Bold, color.FgMagenta)
)

// RenderJSON writes the result as indented JSON, nothing else.
func RenderJSON(w io.Writer, result *models.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// Render writes the full colored report.
func Render(w io.Writer, result *models.AnalysisResult) {
	fmt.Fprintln(w)
	headerColor.Fprintf(w, "ROAST REPORT: %s\n", result.Subject.FullName)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	renderSubject(w, result)
	renderGrade(w, result)
	renderRoasts(w, result.Roasts)
	renderAchievements(w, result.Achievements)
	renderSuggestions(w, result.Suggestions)
	renderStats(w, result.Stats)
}

func renderSubject(w io.Writer, result *models.AnalysisResult) {
	subject := result.Subject
	if result.Kind == models.TargetProfile {
		fmt.Fprintf(w, "%s @%s\n", color.WhiteString("Profile:"), subject.Username)
		if subject.Bio != "" {
			fmt.Fprintf(w, "%s %s\n", color.WhiteString("Bio:"), subject.Bio)
		}
		fmt.Fprintf(w, "%s %d public, %d analyzed\n",
			color.WhiteString("Repositories:"), subject.TotalRepos, subject.AnalyzedRepos)
		fmt.Fprintf(w, "%s %d followers, %d following\n",
			color.WhiteString("Social:"), subject.Followers, subject.Following)
		if len(subject.TopRepos) > 0 {
			fmt.Fprintf(w, "%s\n", color.WhiteString("Most active repos:"))
			for _, repo := range subject.TopRepos {
				lang := repo.Language
				if lang == "" {
					lang = "unknown"
				}
				fmt.Fprintf(w, "  %s (%d commits, %d stars, %s)\n", repo.Name, repo.Commits, repo.Stars, lang)
			}
		}
	} else {
		fmt.Fprintf(w, "%s %s\n", color.WhiteString("Repository:"), subject.FullName)
	}
	fmt.Fprintln(w)
}

func renderGrade(w io.Writer, result *models.AnalysisResult) {
	gradeColor.Fprintf(w, "GRADE: %s\n", result.Grade)
	fmt.Fprintln(w, result.GradeDescription)
	fmt.Fprintln(w)
}

func renderRoasts(w io.Writer, roasts []models.Roast) {
	sectionColor.Fprintln(w, "THE ROASTS")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, roast := range roasts {
		titleColor.Fprintf(w, "%s %s", roast.Emoji, roast.Title)
		dimColor.Fprintf(w, "  [severity %s]\n", strings.Repeat("🔥", roast.Severity))
		fmt.Fprintln(w, roast.Content)
		fmt.Fprintln(w)
	}
}

func renderAchievements(w io.Writer, achievements []models.Achievement) {
	if len(achievements) == 0 {
		return
	}
	sectionColor.Fprintln(w, "ACHIEVEMENTS UNLOCKED")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, a := range achievements {
		fmt.Fprintf(w, "%s %s\n", a.Emoji, color.New(color.Bold).Sprint(a.Title))
		fmt.Fprintf(w, "   %s\n", a.Description)
	}
	fmt.Fprintln(w)
}

func renderSuggestions(w io.Writer, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	sectionColor.Fprintln(w, "UNSOLICITED ADVICE")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, s := range suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}
	fmt.Fprintln(w)
}

func renderStats(w io.Writer, stats models.StatsSummary) {
	sectionColor.Fprintln(w, "THE NUMBERS")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%s %d\n", color.WhiteString("Total commits:"), stats.TotalCommits)
	fmt.Fprintf(w, "%s %d (%d%%)\n", color.WhiteString("Late night commits:"), stats.LateNightCommits, stats.LateNightPercentage)
	fmt.Fprintf(w, "%s %d\n", color.WhiteString("Weekend commits:"), stats.WeekendCommits)
	fmt.Fprintf(w, "%s %d\n", color.WhiteString("Contributors:"), stats.AuthorCount)
}
