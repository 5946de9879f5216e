package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are set via ldflags, e.g.
// -X github.com/heartmarshall/moodjournal-backend/internal/app.Version=1.0.0
// Commit and BuildTime fall back to the VCS stamp of the build.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	Commit, BuildTime = vcsStamp(info.Settings, Commit, BuildTime)
}

func vcsStamp(settings []debug.BuildSetting, commit, built string) (string, string) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" && s.Value != "" {
				commit = s.Value
				if len(commit) > 12 {
					commit = commit[:12]
				}
			}
		case "vcs.time":
			if built == "unknown" && s.Value != "" {
				built = s.Value
			}
		}
	}
	return commit, built
}

// BuildVersion formats the build identity for startup logs.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
