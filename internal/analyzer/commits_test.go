package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnomegl/gitroast/internal/models"
)

func commitAt(t *testing.T, stamp, message string) models.CommitInfo {
	t.Helper()
	date, err := time.Parse(time.RFC3339, stamp)
	require.NoError(t, err)
	return models.CommitInfo{AuthorName: "dev", Message: message, Date: date}
}

func TestAnalyzeCommitsHistograms(t *testing.T) {
	commits := []models.CommitInfo{
		// Monday 03:30 UTC: late night.
		commitAt(t, "2024-03-04T03:30:00Z", "refactor parser"),
		// Saturday 14:00 UTC: weekend.
		commitAt(t, "2024-03-09T14:00:00Z", "add tests"),
		// Wednesday 23:10 UTC: late night again.
		commitAt(t, "2024-03-06T23:10:00Z", "late tweak"),
	}

	stats := AnalyzeCommits(commits)

	assert.Equal(t, 3, stats.TotalCommits)
	assert.Equal(t, 1, stats.CommitsByHour[3])
	assert.Equal(t, 1, stats.CommitsByHour[14])
	assert.Equal(t, 1, stats.CommitsByHour[23])
	assert.Equal(t, 1, stats.CommitsByDay[0]) // Monday
	assert.Equal(t, 1, stats.CommitsByDay[2]) // Wednesday
	assert.Equal(t, 1, stats.CommitsByDay[5]) // Saturday

	assert.Equal(t, 2, stats.LateNightCommits)
	assert.Equal(t, 1, stats.WeekendCommits)
	assert.Equal(t, 67, stats.LateNightPercentage)
	assert.Equal(t, 33, stats.WeekendPercentage)
}

func TestAnalyzeCommitsTimesInUTC(t *testing.T) {
	// 23:30 in UTC+5 is 18:30 UTC, so not late night.
	zone := time.FixedZone("east", 5*3600)
	local := time.Date(2024, 3, 4, 23, 30, 0, 0, zone)

	stats := AnalyzeCommits([]models.CommitInfo{{AuthorName: "dev", Message: "m", Date: local}})

	assert.Equal(t, 0, stats.LateNightCommits)
	assert.Equal(t, 1, stats.CommitsByHour[18])
}

func TestAnalyzeCommitsMessageClassification(t *testing.T) {
	commits := []models.CommitInfo{
		commitAt(t, "2024-03-04T12:00:00Z", "."),
		commitAt(t, "2024-03-04T12:01:00Z", "fix login bug"),
		commitAt(t, "2024-03-04T12:02:00Z", "Hotfix for prod"),
		commitAt(t, "2024-03-04T12:03:00Z", "WIP: new dashboard"),
		commitAt(t, "2024-03-04T12:04:00Z", "Merge branch 'main'"),
		commitAt(t, "2024-03-04T12:05:00Z", "add TODO list feature"),
	}

	stats := AnalyzeCommits(commits)

	assert.Equal(t, 1, stats.SingleCharMessages)
	assert.Equal(t, 2, stats.FixCommits)
	assert.Equal(t, 2, stats.WipCommits) // "WIP:" and "TODO"
	assert.Equal(t, 1, stats.MergeCommits)
}

func TestAnalyzeCommitsFirstLineOnly(t *testing.T) {
	stats := AnalyzeCommits([]models.CommitInfo{
		commitAt(t, "2024-03-04T12:00:00Z", "short summary\n\nvery long body that should not count toward message length at all"),
	})

	require.Len(t, stats.Messages, 1)
	assert.Equal(t, "short summary", stats.Messages[0])
	assert.Equal(t, len("short summary"), stats.AverageMessageLength)
}

func TestAnalyzeCommitsExtremesFirstWins(t *testing.T) {
	stats := AnalyzeCommits([]models.CommitInfo{
		commitAt(t, "2024-03-04T12:00:00Z", "aaa"),
		commitAt(t, "2024-03-04T12:01:00Z", "bbb"), // same length, later
		commitAt(t, "2024-03-04T12:02:00Z", "a much longer commit message"),
	})

	assert.Equal(t, "aaa", stats.ShortestMessage)
	assert.Equal(t, "a much longer commit message", stats.LongestMessage)
}

func TestAnalyzeCommitsSkipsUndatedCommits(t *testing.T) {
	stats := AnalyzeCommits([]models.CommitInfo{
		{AuthorName: "dev", Message: "no date"},
		commitAt(t, "2024-03-04T12:00:00Z", "dated"),
	})

	assert.Equal(t, 1, stats.TotalCommits)
	assert.Equal(t, []string{"dated"}, stats.Messages)
}

func TestAnalyzeCommitsAuthors(t *testing.T) {
	stats := AnalyzeCommits([]models.CommitInfo{
		{AuthorName: "zoe", Message: "m", Date: time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)},
		{AuthorName: "alice", Message: "m", Date: time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC)},
		{AuthorName: "zoe", Message: "m", Date: time.Date(2024, 3, 4, 14, 0, 0, 0, time.UTC)},
	})

	assert.Equal(t, []string{"alice", "zoe"}, stats.Authors)
	assert.Equal(t, 2, stats.AuthorCount)
}

func TestAnalyzeCommitsEmpty(t *testing.T) {
	stats := AnalyzeCommits(nil)

	assert.Equal(t, 0, stats.TotalCommits)
	assert.Equal(t, 0, stats.AverageMessageLength)
	assert.Equal(t, 0, stats.LateNightPercentage)
	assert.Empty(t, stats.SuspiciousPatterns)
}

func TestDetectPatternsThresholds(t *testing.T) {
	tests := []struct {
		name    string
		stats   models.CommitStats
		want    models.Pattern
		present bool
	}{
		{"night owl at exactly 30% stays quiet", models.CommitStats{TotalCommits: 10, LateNightCommits: 3}, models.PatternNightOwl, false},
		{"night owl above 30% fires", models.CommitStats{TotalCommits: 10, LateNightCommits: 4}, models.PatternNightOwl, true},
		{"no life at exactly 40% stays quiet", models.CommitStats{TotalCommits: 10, WeekendCommits: 4}, models.PatternNoLife, false},
		{"no life above 40% fires", models.CommitStats{TotalCommits: 10, WeekendCommits: 5}, models.PatternNoLife, true},
		{"lazy messages above 20% fires", models.CommitStats{TotalCommits: 10, SingleCharMessages: 3}, models.PatternLazyMessages, true},
		{"bug factory above 30% fires", models.CommitStats{TotalCommits: 10, FixCommits: 4}, models.PatternBugFactory, true},
		{"never finishes at exactly 15% stays quiet", models.CommitStats{TotalCommits: 20, WipCommits: 3}, models.PatternNeverFinishes, false},
		{"never finishes above 15% fires", models.CommitStats{TotalCommits: 20, WipCommits: 4}, models.PatternNeverFinishes, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := tt.stats
			patterns := detectPatterns(&stats)
			stats.SuspiciousPatterns = patterns
			assert.Equal(t, tt.present, stats.HasPattern(tt.want))
		})
	}
}

func TestDetectPatternsStack(t *testing.T) {
	stats := &models.CommitStats{
		TotalCommits:       10,
		LateNightCommits:   5,
		WeekendCommits:     5,
		SingleCharMessages: 5,
		FixCommits:         5,
		WipCommits:         5,
	}

	patterns := detectPatterns(stats)
	assert.Len(t, patterns, 5)
}
