package utils

import (
	"runtime/debug"
	"strings"
)

// version will be set by GoReleaser during builds
var version string

// GetVersion returns the current version of the application, preferring
// the ldflags value over Go's build info. Any leading "v" is stripped.
func GetVersion() string {
	v := version
	if v == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v = info.Main.Version
		} else {
			v = "unknown"
		}
	}
	return strings.TrimPrefix(v, "v")
}
