// Package version carries build information set by ldflags:
//
//	go build -ldflags "-X github.com/ironsheep/textswap/internal/version.Version=v1.2.0"
//
// Unset values fall back to the module build info, then to placeholders.
package version

import "runtime/debug"

var (
	Version   = ""
	BuildTime = ""
	GitCommit = ""
	GitBranch = ""
)

// Info is the build information as a JSON-friendly value.
type Info struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GitBranch string `json:"git_branch"`
}

// Get returns the current build information.
// Priority: ldflags > debug.ReadBuildInfo > placeholder.
func Get() Info {
	info := Info{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GitBranch: GitBranch,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" && bi.Main.Version != "" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = s.Value
					if len(info.GitCommit) > 7 {
						info.GitCommit = info.GitCommit[:7]
					}
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = s.Value
				}
			}
		}
	}

	if info.Version == "" {
		info.Version = "(devel)"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	if info.GitBranch == "" {
		info.GitBranch = "unknown"
	}
	return info
}
