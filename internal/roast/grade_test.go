package roast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnomegl/gitroast/internal/models"
)

func cleanStats() *models.CommitStats {
	return &models.CommitStats{
		TotalCommits:         200,
		AverageMessageLength: 45,
		AuthorCount:          3,
	}
}

func TestComputeGradeClean(t *testing.T) {
	analysis := &models.Analysis{
		Stats: cleanStats(),
		Readme: &models.ReadmeAnalysis{
			Exists:  true,
			Quality: models.ReadmeDecent,
		},
		Metadata: &models.RepoMetadata{
			NameQuality:        models.NameAcceptable,
			DescriptionQuality: models.DescriptionDecent,
			HasLicense:         true,
			Topics:             []string{"cli"},
		},
	}

	// 100 + 5 commit bonus = 105.
	assert.Equal(t, 105, score(analysis))
	assert.Equal(t, models.GradeAPlus, ComputeGrade(analysis))
}

func TestComputeGradePatternStacking(t *testing.T) {
	stats := cleanStats()
	stats.SuspiciousPatterns = []models.Pattern{
		models.PatternNightOwl,
		models.PatternLazyMessages,
	}
	analysis := &models.Analysis{
		Stats: stats,
		Readme: &models.ReadmeAnalysis{
			Exists:  true,
			Quality: models.ReadmeLazy,
		},
		Metadata: &models.RepoMetadata{
			NameQuality:        models.NameAcceptable,
			DescriptionQuality: models.DescriptionPathetic,
			HasLicense:         true,
			Topics:             nil,
		},
	}

	// 100 -15 -25 -10 -5 -3 +5 = 47.
	assert.Equal(t, 47, score(analysis))
	assert.Equal(t, models.GradeD, ComputeGrade(analysis))
}

func disasterStats() *models.CommitStats {
	return &models.CommitStats{
		TotalCommits:         5,
		AverageMessageLength: 4,
		SuspiciousPatterns: []models.Pattern{
			models.PatternNightOwl,
			models.PatternNoLife,
			models.PatternLazyMessages,
			models.PatternBugFactory,
			models.PatternNeverFinishes,
		},
	}
}

func TestComputeGradeFloorsAtF(t *testing.T) {
	// Every deduction at once pushes the score far below zero.
	analysis := &models.Analysis{
		Stats:  disasterStats(),
		Readme: &models.ReadmeAnalysis{Exists: false},
		Metadata: &models.RepoMetadata{
			Name:               "test",
			NameQuality:        models.NamePlaceholderGarbage,
			DescriptionQuality: models.DescriptionNonexistent,
		},
	}

	assert.Less(t, score(analysis), 0)
	assert.Equal(t, models.GradeF, ComputeGrade(analysis))
}

func TestComputeGradeShortMessageTiersStack(t *testing.T) {
	stats := cleanStats()
	stats.AverageMessageLength = 8

	// Both the under-20 and under-10 deductions apply.
	withShort := score(&models.Analysis{Stats: stats})
	stats.AverageMessageLength = 45
	clean := score(&models.Analysis{Stats: stats})
	assert.Equal(t, clean-30, withShort)
}

func TestComputeGradeProfileSkipsRepoSections(t *testing.T) {
	// Profile analyses carry no readme or metadata; nothing to deduct there.
	analysis := &models.Analysis{Stats: cleanStats()}
	assert.Equal(t, 105, score(analysis))
}

func TestComputeGradeNoLicenseNeedsCommits(t *testing.T) {
	meta := &models.RepoMetadata{
		NameQuality:        models.NameAcceptable,
		DescriptionQuality: models.DescriptionDecent,
		Topics:             []string{"go"},
	}

	few := &models.Analysis{
		Stats:    &models.CommitStats{TotalCommits: 15, AverageMessageLength: 40},
		Metadata: meta,
	}
	many := &models.Analysis{
		Stats:    &models.CommitStats{TotalCommits: 100, AverageMessageLength: 40},
		Metadata: meta,
	}

	assert.Equal(t, 100, score(few))
	assert.Equal(t, 100, score(many)) // -5 license, +5 commit bonus
}

func TestBucketBoundaries(t *testing.T) {
	tests := []struct {
		points int
		want   models.Grade
	}{
		{95, models.GradeAPlus},
		{90, models.GradeAPlus},
		{89, models.GradeA},
		{80, models.GradeA},
		{79, models.GradeB},
		{65, models.GradeB},
		{64, models.GradeC},
		{50, models.GradeC},
		{49, models.GradeD},
		{35, models.GradeD},
		{34, models.GradeF},
		{-60, models.GradeF},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bucket(tt.points), "points=%d", tt.points)
	}
}
