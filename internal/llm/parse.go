package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gnomegl/gitroast/internal/models"
)

var validGrades = map[models.Grade]struct{}{
	models.GradeAPlus: {},
	models.GradeA:     {},
	models.GradeB:     {},
	models.GradeC:     {},
	models.GradeD:     {},
	models.GradeF:     {},
}

// parseBundle turns raw model output into a validated content bundle.
// Models wrap JSON in markdown fences no matter how firmly told not to,
// so the fences are stripped before decoding.
func parseBundle(text string) (*models.ContentBundle, error) {
	cleaned := stripFences(strings.TrimSpace(text))
	if cleaned == "" {
		return nil, &ProviderError{Reason: "empty response"}
	}

	var bundle models.ContentBundle
	if err := json.Unmarshal([]byte(cleaned), &bundle); err != nil {
		return nil, &ProviderError{Reason: "decoding response", Err: err}
	}

	if err := validateBundle(&bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := text[3:]
	end := strings.Index(body, "```")
	if end == -1 {
		return text
	}
	body = strings.TrimSpace(body[:end])
	body = strings.TrimPrefix(body, "json")
	return strings.TrimSpace(body)
}

func validateBundle(bundle *models.ContentBundle) error {
	if _, ok := validGrades[bundle.Grade]; !ok {
		return &ProviderError{Reason: fmt.Sprintf("invalid grade %q", bundle.Grade)}
	}
	if len(bundle.Roasts) == 0 {
		return &ProviderError{Reason: "response contains no roasts"}
	}

	for i := range bundle.Roasts {
		roast := &bundle.Roasts[i]
		if roast.Title == "" || roast.Content == "" {
			return &ProviderError{Reason: fmt.Sprintf("roast %d missing title or content", i)}
		}
		if roast.Severity < 1 {
			roast.Severity = 1
		}
		if roast.Severity > 5 {
			roast.Severity = 5
		}
	}

	// Incomplete achievements are dropped rather than failing the whole
	// bundle; the roasts are the payload.
	kept := bundle.Achievements[:0]
	for _, a := range bundle.Achievements {
		if a.Title != "" && a.Description != "" {
			kept = append(kept, a)
		}
	}
	bundle.Achievements = kept

	return nil
}
