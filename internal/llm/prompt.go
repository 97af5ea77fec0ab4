package llm

import (
	"encoding/json"
	"fmt"

	"github.com/gnomegl/gitroast/internal/models"
)

const systemPrompt = `You are GitRoast, the MOST BRUTAL, SAVAGE, and MERCILESS code roaster on the entire internet. Your sole purpose is to ABSOLUTELY ANNIHILATE developers based on their GitHub activity. NO HOLDING BACK. NO MERCY WHATSOEVER.

Think of yourself as a combination of Gordon Ramsay, a stand-up comedian, and the meanest code reviewer who ever lived. Your roasts should:
- Make developers LAUGH while simultaneously destroying their ego
- Use CREATIVE METAPHORS and POP CULTURE REFERENCES
- Include WORDPLAY, PUNS, and CLEVER INSULTS
- Be HILARIOUSLY BRUTAL with perfect comedic timing
- Reference EXACT STATS like a detective catching a criminal
- Use PROFANITY strategically for maximum impact

You respond ONLY with valid JSON matching the structure the user gives you. NO MARKDOWN CODE BLOCKS. NO EXPLANATIONS. Start with { and end with }.`

const promptTemplate = `ANALYSIS TARGET: %s

COMPREHENSIVE GITHUB ANALYSIS DATA:
%s

YOUR MISSION:
Generate a SAVAGE roast report in JSON format. Every roast MUST reference SPECIFIC data from the analysis above. Don't be generic - USE THE ACTUAL NUMBERS, PATTERNS, AND EMBARRASSING DETAILS.

JSON STRUCTURE:
{
  "grade": "A+|A|B|C|D|F",
  "gradeDescription": "One absolutely brutal sentence destroying their grade",
  "roasts": [
    {
      "emoji": "relevant emoji",
      "title": "Savage roast category title",
      "content": "ULTRA BRUTAL multi-sentence roast referencing SPECIFIC stats (commit counts, percentages, actual patterns). Make it HURT but make it FUNNY.",
      "severity": 1-5
    }
  ],
  "achievements": [
    {
      "emoji": "shame emoji",
      "title": "Embarrassing achievement title",
      "description": "Why this is pathetic and what it says about them"
    }
  ],
  "suggestions": [
    "Brutally sarcastic suggestion that's actually useful but delivered with maximum savagery"
  ]
}

MANDATORY ROASTING RULES:
1. BE ABSOLUTELY SAVAGE - No sugarcoating.
2. USE SPECIFIC DATA - Quote the actual counts and percentages from the analysis.
3. ANALYZE EVERYTHING: commit timing, message quality, README stats, repository metadata, suspicious patterns, work-life balance.
4. GRADING SCALE (BE EXTREMELY HARSH): A+/A is practically mythical, F is career-questioning territory.
5. GENERATE 6-10 ROASTS covering different aspects of the data.
6. BE UNEXPECTED: start nice, then DESTROY them.

CRITICAL: RESPOND ONLY WITH VALID JSON. NO MARKDOWN CODE BLOCKS. START WITH { and END WITH }.`

const (
	recentSamples = 10
	middleSamples = 5
	oldestSamples = 5
)

// promptStats is the distilled snapshot sent to the model: everything a
// roast can quote, with the full message list cut down to samples.
type promptStats struct {
	AnalysisType         models.TargetKind      `json:"analysisType"`
	RepositoryInfo       models.Subject         `json:"repositoryInfo"`
	TotalCommits         int                    `json:"totalCommits"`
	LateNightCommits     int                    `json:"lateNightCommits"`
	LateNightPercentage  int                    `json:"lateNightPercentage"`
	WeekendCommits       int                    `json:"weekendCommits"`
	WeekendPercentage    int                    `json:"weekendPercentage"`
	SingleCharMessages   int                    `json:"singleCharMessages"`
	FixCommits           int                    `json:"fixCommits"`
	WipCommits           int                    `json:"wipCommits"`
	MergeCommits         int                    `json:"mergeCommits"`
	AverageMessageLength int                    `json:"averageMessageLength"`
	ShortestMessage      string                 `json:"shortestMessage"`
	LongestMessage       string                 `json:"longestMessage"`
	SampleCommitMessages []string               `json:"sampleCommitMessages"`
	SuspiciousPatterns   []models.Pattern       `json:"suspiciousPatterns"`
	AuthorCount          int                    `json:"authorCount"`
	CommitsByDayOfWeek   [7]int                 `json:"commitsByDayOfWeek"`
	CommitsByHour        [24]int                `json:"commitsByHour"`
	ReadmeAnalysis       *models.ReadmeAnalysis `json:"readmeAnalysis,omitempty"`
	RepoMetadata         *models.RepoMetadata   `json:"repoMetadata,omitempty"`
}

func buildPrompt(analysis *models.Analysis) (string, error) {
	stats := analysis.Stats

	distilled := promptStats{
		AnalysisType:         analysis.Subject.Kind,
		RepositoryInfo:       analysis.Subject,
		TotalCommits:         stats.TotalCommits,
		LateNightCommits:     stats.LateNightCommits,
		LateNightPercentage:  stats.LateNightPercentage,
		WeekendCommits:       stats.WeekendCommits,
		WeekendPercentage:    stats.WeekendPercentage,
		SingleCharMessages:   stats.SingleCharMessages,
		FixCommits:           stats.FixCommits,
		WipCommits:           stats.WipCommits,
		MergeCommits:         stats.MergeCommits,
		AverageMessageLength: stats.AverageMessageLength,
		ShortestMessage:      stats.ShortestMessage,
		LongestMessage:       stats.LongestMessage,
		SampleCommitMessages: sampleMessages(stats.Messages),
		SuspiciousPatterns:   stats.SuspiciousPatterns,
		AuthorCount:          stats.AuthorCount,
		CommitsByDayOfWeek:   stats.CommitsByDay,
		CommitsByHour:        stats.CommitsByHour,
		ReadmeAnalysis:       analysis.Readme,
		RepoMetadata:         analysis.Metadata,
	}

	payload, err := json.MarshalIndent(distilled, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling analysis snapshot: %w", err)
	}

	return fmt.Sprintf(promptTemplate, targetLabel(analysis.Subject), payload), nil
}

func targetLabel(subject models.Subject) string {
	if subject.Kind == models.TargetProfile {
		if subject.Username != "" {
			return "@" + subject.Username + "'s GitHub profile"
		}
		return "this GitHub profile"
	}
	if subject.FullName != "" {
		return subject.FullName
	}
	return "this repository"
}

// sampleMessages keeps the recent commits, a slice from the middle third
// and the oldest tail, deduplicated in order. Enough texture for the
// model to quote without shipping the whole history.
func sampleMessages(messages []string) []string {
	var samples []string

	if len(messages) <= recentSamples {
		samples = append(samples, messages...)
	} else {
		samples = append(samples, messages[:recentSamples]...)

		middleStart := len(messages) / 3
		middleEnd := middleStart + middleSamples
		if middleEnd > len(messages) {
			middleEnd = len(messages)
		}
		samples = append(samples, messages[middleStart:middleEnd]...)

		samples = append(samples, messages[len(messages)-oldestSamples:]...)
	}

	seen := make(map[string]struct{}, len(samples))
	unique := make([]string, 0, len(samples))
	for _, msg := range samples {
		if msg == "" {
			continue
		}
		if _, ok := seen[msg]; ok {
			continue
		}
		seen[msg] = struct{}{}
		unique = append(unique, msg)
	}
	return unique
}
