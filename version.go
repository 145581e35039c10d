package id3v1

import "runtime"

// Version is the semantic version of the id3v1 library. The major and
// minor track the ID3.py lineage this package descends from.
const Version = "1.2.0"

// VersionInfo contains build-time version details.
type VersionInfo struct {
	Version   string
	GitCommit string // set via -ldflags
	BuildTime string // set via -ldflags
	GoVersion string
}

// GetVersionInfo returns the library version along with build
// metadata, when it was baked in via -ldflags.
func GetVersionInfo() VersionInfo {
	goVer := goVersion
	if goVer == "unknown" {
		goVer = runtime.Version()
	}
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVer,
	}
}

// Populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)
