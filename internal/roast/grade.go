// Package roast grades an analysis and renders it into roast content,
// either through the deterministic template engine or as the validation
// target for generated content.
package roast

import "github.com/gnomegl/gitroast/internal/models"

// ComputeGrade scores an analysis and buckets it into a letter grade.
// Deductions stack; the score is not clamped before bucketing, so a
// sufficiently bad history lands in F no matter how far below zero.
func ComputeGrade(analysis *models.Analysis) models.Grade {
	return bucket(score(analysis))
}

func score(analysis *models.Analysis) int {
	stats := analysis.Stats
	points := 100

	if stats.HasPattern(models.PatternNightOwl) {
		points -= 15
	}
	if stats.HasPattern(models.PatternNoLife) {
		points -= 20
	}
	if stats.HasPattern(models.PatternLazyMessages) {
		points -= 25
	}
	if stats.HasPattern(models.PatternBugFactory) {
		points -= 30
	}
	if stats.HasPattern(models.PatternNeverFinishes) {
		points -= 20
	}

	// Both tiers apply to very short messages.
	if stats.AverageMessageLength < 20 {
		points -= 15
	}
	if stats.AverageMessageLength < 10 {
		points -= 15
	}

	if stats.TotalCommits < 10 {
		points -= 10
	}

	if readme := analysis.Readme; readme != nil {
		switch {
		case !readme.Exists:
			points -= 20
		case readme.Quality == models.ReadmeWorthless || readme.Quality == models.ReadmePathetic:
			points -= 15
		case readme.Quality == models.ReadmeLazy || readme.Quality == models.ReadmeMinimal:
			points -= 10
		}
	}

	if meta := analysis.Metadata; meta != nil {
		if meta.NameQuality == models.NamePlaceholderGarbage {
			points -= 10
		}
		switch meta.DescriptionQuality {
		case models.DescriptionNonexistent:
			points -= 10
		case models.DescriptionPathetic, models.DescriptionLazy:
			points -= 5
		}
		if !meta.HasLicense && stats.TotalCommits > 20 {
			points -= 5
		}
		if len(meta.Topics) == 0 {
			points -= 3
		}
	}

	if stats.TotalCommits > 50 && stats.TotalCommits < 5000 {
		points += 5
	}

	return points
}

func bucket(points int) models.Grade {
	switch {
	case points >= 90:
		return models.GradeAPlus
	case points >= 80:
		return models.GradeA
	case points >= 65:
		return models.GradeB
	case points >= 50:
		return models.GradeC
	case points >= 35:
		return models.GradeD
	default:
		return models.GradeF
	}
}
