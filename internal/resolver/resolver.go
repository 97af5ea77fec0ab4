package resolver

import (
	"regexp"
	"strings"

	"github.com/gnomegl/gitroast/internal/models"
)

var (
	repoURLPattern    = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+)`)
	profileURLPattern = regexp.MustCompile(`github\.com[:/]([^/]+)/?$`)
	ownerRepoPattern  = regexp.MustCompile(`^([^/]+)/([^/]+)$`)
)

// Resolve turns a free-form identifier (URL, owner/repo, bare username)
// into a typed target. It never fails: anything that doesn't look like a
// URL or an owner/repo pair is treated as a username.
func Resolve(input string) models.Target {
	cleaned := strings.TrimSpace(input)
	if i := strings.IndexAny(cleaned, "?#"); i >= 0 {
		cleaned = cleaned[:i]
	}
	cleaned = strings.TrimSuffix(cleaned, ".git")

	if m := repoURLPattern.FindStringSubmatch(cleaned); m != nil {
		return models.Target{Kind: models.TargetRepository, Owner: m[1], Name: m[2]}
	}
	if m := profileURLPattern.FindStringSubmatch(cleaned); m != nil {
		return models.Target{Kind: models.TargetProfile, Username: m[1]}
	}
	if m := ownerRepoPattern.FindStringSubmatch(cleaned); m != nil {
		return models.Target{Kind: models.TargetRepository, Owner: m[1], Name: m[2]}
	}

	return models.Target{Kind: models.TargetProfile, Username: cleaned}
}
