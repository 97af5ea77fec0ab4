package resolver

import (
	"testing"

	"github.com/gnomegl/gitroast/internal/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.Target
	}{
		{"bare username", "torvalds", models.Target{Kind: models.TargetProfile, Username: "torvalds"}},
		{"owner/repo", "facebook/react", models.Target{Kind: models.TargetRepository, Owner: "facebook", Name: "react"}},
		{"https repo url", "https://github.com/golang/go", models.Target{Kind: models.TargetRepository, Owner: "golang", Name: "go"}},
		{"profile url", "https://github.com/octocat", models.Target{Kind: models.TargetProfile, Username: "octocat"}},
		{"profile url trailing slash", "https://github.com/octocat/", models.Target{Kind: models.TargetProfile, Username: "octocat"}},
		{"ssh clone url", "git@github.com:torvalds/linux.git", models.Target{Kind: models.TargetRepository, Owner: "torvalds", Name: "linux"}},
		{"dot git suffix", "https://github.com/golang/go.git", models.Target{Kind: models.TargetRepository, Owner: "golang", Name: "go"}},
		{"query string stripped", "https://github.com/golang/go?tab=readme-ov-file", models.Target{Kind: models.TargetRepository, Owner: "golang", Name: "go"}},
		{"deep url keeps owner and repo", "https://github.com/golang/go/tree/master/src", models.Target{Kind: models.TargetRepository, Owner: "golang", Name: "go"}},
		{"surrounding whitespace", "  torvalds  ", models.Target{Kind: models.TargetProfile, Username: "torvalds"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.input)
			if got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveNeverFails(t *testing.T) {
	// Garbage in, username out. The resolver has no failure mode.
	for _, input := range []string{"", "   ", "not a url at all!!"} {
		got := Resolve(input)
		if got.Kind != models.TargetProfile {
			t.Errorf("Resolve(%q).Kind = %v, want profile", input, got.Kind)
		}
	}
}
