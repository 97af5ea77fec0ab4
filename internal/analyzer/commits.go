// Package analyzer turns raw fetched data into the immutable feature
// records the grader and both content generators consume.
package analyzer

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/gnomegl/gitroast/internal/models"
)

var wipPattern = []string{"wip", "work in progress", "todo"}

// AnalyzeCommits builds commit statistics over a fetched commit set.
// Commits without an author timestamp are discarded: they cannot be
// placed on the clock. All histograms and ratios are derived in UTC.
func AnalyzeCommits(commits []models.CommitInfo) *models.CommitStats {
	stats := &models.CommitStats{}
	authors := make(map[string]struct{})

	var totalLength int
	var haveShortest, haveLongest bool

	for _, commit := range commits {
		if commit.Date.IsZero() {
			continue
		}

		date := commit.Date.UTC()
		hour := date.Hour()
		day := mondayIndexed(date.Weekday())

		message := firstLine(commit.Message)

		stats.TotalCommits++
		stats.CommitsByHour[hour]++
		stats.CommitsByDay[day]++
		stats.Messages = append(stats.Messages, message)
		authors[commit.AuthorName] = struct{}{}

		if hour >= 23 || hour < 5 {
			stats.LateNightCommits++
		}
		if day == 5 || day == 6 { // Saturday, Sunday
			stats.WeekendCommits++
		}

		length := len(message)
		totalLength += length
		if length <= 3 {
			stats.SingleCharMessages++
		}

		lower := strings.ToLower(message)
		if strings.Contains(lower, "fix") {
			stats.FixCommits++
		}
		if containsAny(lower, wipPattern) {
			stats.WipCommits++
		}
		if strings.Contains(lower, "merge") {
			stats.MergeCommits++
		}

		// First occurrence wins ties, in fetch order.
		if !haveShortest || length < len(stats.ShortestMessage) {
			stats.ShortestMessage = message
			haveShortest = true
		}
		if !haveLongest || length > len(stats.LongestMessage) {
			stats.LongestMessage = message
			haveLongest = true
		}
	}

	if stats.TotalCommits > 0 {
		stats.AverageMessageLength = int(math.Round(float64(totalLength) / float64(stats.TotalCommits)))
		stats.LateNightPercentage = roundPercent(stats.LateNightCommits, stats.TotalCommits)
		stats.WeekendPercentage = roundPercent(stats.WeekendCommits, stats.TotalCommits)
	}

	stats.Authors = make([]string, 0, len(authors))
	for name := range authors {
		stats.Authors = append(stats.Authors, name)
	}
	sort.Strings(stats.Authors)
	stats.AuthorCount = len(stats.Authors)

	stats.SuspiciousPatterns = detectPatterns(stats)
	return stats
}

// detectPatterns thresholds the behavioral ratios. Each check is
// independent; all of them may fire on the same history.
func detectPatterns(stats *models.CommitStats) []models.Pattern {
	if stats.TotalCommits == 0 {
		return nil
	}

	total := float64(stats.TotalCommits)
	var patterns []models.Pattern

	if float64(stats.LateNightCommits)/total > 0.3 {
		patterns = append(patterns, models.PatternNightOwl)
	}
	if float64(stats.WeekendCommits)/total > 0.4 {
		patterns = append(patterns, models.PatternNoLife)
	}
	if float64(stats.SingleCharMessages)/total > 0.2 {
		patterns = append(patterns, models.PatternLazyMessages)
	}
	if float64(stats.FixCommits)/total > 0.3 {
		patterns = append(patterns, models.PatternBugFactory)
	}
	if float64(stats.WipCommits)/total > 0.15 {
		patterns = append(patterns, models.PatternNeverFinishes)
	}

	return patterns
}

// mondayIndexed maps time.Weekday (Sunday=0) to Monday=0..Sunday=6.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
