package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnomegl/gitroast/internal/models"
)

const validResponse = `{
  "grade": "D",
  "gradeDescription": "Barely functional, like your career.",
  "roasts": [
    {"emoji": "🔥", "title": "Commit Chaos", "content": "847 commits of pure entropy.", "severity": 4}
  ],
  "achievements": [
    {"emoji": "🏆", "title": "Consistency Award", "description": "Consistently bad."}
  ],
  "suggestions": ["Stop."]
}`

func TestParseBundleValid(t *testing.T) {
	bundle, err := parseBundle(validResponse)
	require.NoError(t, err)

	assert.Equal(t, models.GradeD, bundle.Grade)
	require.Len(t, bundle.Roasts, 1)
	assert.Equal(t, "Commit Chaos", bundle.Roasts[0].Title)
	assert.Equal(t, 4, bundle.Roasts[0].Severity)
	assert.Len(t, bundle.Achievements, 1)
}

func TestParseBundleStripsFences(t *testing.T) {
	fenced := "```json\n" + validResponse + "\n```"
	bundle, err := parseBundle(fenced)
	require.NoError(t, err)
	assert.Equal(t, models.GradeD, bundle.Grade)

	bare := "```\n" + validResponse + "\n```"
	bundle, err = parseBundle(bare)
	require.NoError(t, err)
	assert.Equal(t, models.GradeD, bundle.Grade)
}

func TestParseBundleRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   \n  "},
		{"not json", "I refuse to roast this person."},
		{"missing grade", `{"roasts":[{"title":"t","content":"c","severity":3}]}`},
		{"unknown grade", `{"grade":"S","roasts":[{"title":"t","content":"c","severity":3}]}`},
		{"no roasts", `{"grade":"B","roasts":[]}`},
		{"roast missing content", `{"grade":"B","roasts":[{"title":"t","severity":3}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseBundle(tt.text)
			require.Error(t, err)

			var provErr *ProviderError
			assert.ErrorAs(t, err, &provErr)
		})
	}
}

func TestParseBundleClampsSeverity(t *testing.T) {
	text := `{"grade":"C","roasts":[
		{"title":"too hot","content":"x","severity":11},
		{"title":"too cold","content":"y","severity":0}
	]}`

	bundle, err := parseBundle(text)
	require.NoError(t, err)
	assert.Equal(t, 5, bundle.Roasts[0].Severity)
	assert.Equal(t, 1, bundle.Roasts[1].Severity)
}

func TestParseBundleDropsMalformedAchievements(t *testing.T) {
	text := `{"grade":"C","roasts":[{"title":"t","content":"c","severity":3}],
		"achievements":[
			{"emoji":"🏆","title":"kept","description":"fine"},
			{"emoji":"🏅","title":"no description"},
			{"description":"no title"}
		]}`

	bundle, err := parseBundle(text)
	require.NoError(t, err)
	require.Len(t, bundle.Achievements, 1)
	assert.Equal(t, "kept", bundle.Achievements[0].Title)
}

func TestSampleMessagesShortHistoryKeptWhole(t *testing.T) {
	messages := []string{"a", "b", "c"}
	assert.Equal(t, messages, sampleMessages(messages))
}

func TestSampleMessagesLongHistory(t *testing.T) {
	messages := make([]string, 60)
	for i := range messages {
		messages[i] = string(rune('a'+i%26)) + "-" + string(rune('0'+i/26))
	}

	samples := sampleMessages(messages)

	// First ten recent, five from the middle third, last five, deduped.
	assert.LessOrEqual(t, len(samples), 20)
	assert.Equal(t, messages[0], samples[0])
	assert.Contains(t, samples, messages[20])
	assert.Contains(t, samples, messages[59])
}

func TestSampleMessagesDeduplicates(t *testing.T) {
	messages := make([]string, 40)
	for i := range messages {
		messages[i] = "fix"
	}

	assert.Equal(t, []string{"fix"}, sampleMessages(messages))
}

func TestBuildPromptIncludesTargetAndStats(t *testing.T) {
	analysis := &models.Analysis{
		Subject: models.Subject{
			Kind:     models.TargetRepository,
			FullName: "octocat/hello-world",
		},
		Stats: &models.CommitStats{
			TotalCommits:        42,
			LateNightPercentage: 35,
			Messages:            []string{"initial commit"},
		},
	}

	prompt, err := buildPrompt(analysis)
	require.NoError(t, err)
	assert.Contains(t, prompt, "ANALYSIS TARGET: octocat/hello-world")
	assert.Contains(t, prompt, `"totalCommits": 42`)
	assert.Contains(t, prompt, "initial commit")
}

func TestTargetLabelProfile(t *testing.T) {
	subject := models.Subject{Kind: models.TargetProfile, Username: "torvalds"}
	assert.Equal(t, "@torvalds's GitHub profile", targetLabel(subject))
}
