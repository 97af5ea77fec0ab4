package auth

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

const tokenEnvVar = "GITROAST_GITHUB_TOKEN"

// ResolveToken finds a GitHub token: the explicit flag value wins and is
// saved for next time, then the environment, then the saved file. An
// empty result means unauthenticated, which still works at lower rate
// limits.
func ResolveToken(flagToken string) string {
	if flagToken != "" {
		saveToken(flagToken)
		return flagToken
	}

	if token := os.Getenv(tokenEnvVar); token != "" {
		return token
	}

	if data, err := os.ReadFile(tokenPath()); err == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			return token
		}
	}

	color.Yellow("No GitHub token found. Running unauthenticated; you may hit rate limits.")
	color.Yellow("Create one at https://github.com/settings/tokens and pass it with --token or %s.", tokenEnvVar)
	return ""
}

func tokenPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		return ""
	}
	return filepath.Join(configDir, "gitroast", "token")
}

func saveToken(token string) {
	path := tokenPath()
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}
	if err := os.WriteFile(path, []byte(token), 0600); err == nil {
		color.Green("Token saved for future runs")
	}
}
