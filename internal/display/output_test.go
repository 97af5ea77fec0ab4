package display

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnomegl/gitroast/internal/models"
)

func sampleResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		Kind: models.TargetRepository,
		Subject: models.Subject{
			Kind:     models.TargetRepository,
			FullName: "octocat/hello-world",
			Owner:    "octocat",
			Repo:     "hello-world",
		},
		Grade:            models.GradeC,
		GradeDescription: "Yikes.",
		Roasts: []models.Roast{
			{Emoji: "🔥", Title: "Burn One", Content: "content one", Severity: 3},
		},
		Achievements: []models.Achievement{
			{Emoji: "🏆", Title: "Trophy", Description: "for showing up"},
		},
		Suggestions: []string{"do better"},
		Stats:        models.StatsSummary{TotalCommits: 42, LateNightCommits: 10, LateNightPercentage: 24},
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "repo", decoded["analysisType"])
	assert.Equal(t, "C", decoded["grade"])
}

func TestRenderReport(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	Render(&buf, sampleResult())

	out := buf.String()
	assert.Contains(t, out, "ROAST REPORT: octocat/hello-world")
	assert.Contains(t, out, "GRADE: C")
	assert.Contains(t, out, "Burn One")
	assert.Contains(t, out, "Trophy")
	assert.Contains(t, out, "do better")
	assert.Contains(t, out, "Total commits: 42")
}

func TestRenderProfileSubject(t *testing.T) {
	color.NoColor = true
	result := sampleResult()
	result.Kind = models.TargetProfile
	result.Subject = models.Subject{
		Kind:          models.TargetProfile,
		FullName:      "torvalds",
		Username:      "torvalds",
		TotalRepos:    8,
		AnalyzedRepos: 8,
		Followers:     100,
		TopRepos:      []models.RepoActivity{{Name: "linux", Commits: 100, Stars: 5, Language: "C"}},
	}

	var buf bytes.Buffer
	Render(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "Profile: @torvalds")
	assert.Contains(t, out, "linux (100 commits, 5 stars, C)")
}
