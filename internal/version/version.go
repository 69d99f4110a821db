package version

import (
	"runtime/debug"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is the version of the apidoc binary.
// It is set using `go build -ldflags "-X apidoc.me/internal/version.Version=v1.2.3"`.
var Version string

// Channel tells us which ReleaseChannel this build of apidoc is under.
var Channel ReleaseChannel

type ReleaseChannel string

const (
	GA       ReleaseChannel = "ga"      // A tagged release in semver: v0.3.0
	DevBuild ReleaseChannel = "devel"   // A development build with the commit of the build: devel-0140ab0f78fd
	unknown  ReleaseChannel = "unknown" // Anything else, e.g. a hand-edited link flag
)

func init() {
	// If version is already set via a compiler link flag, then we don't need to do anything
	if Version == "" {
		// Otherwise, we want to read the information from this built binary
		Version = "devel"

		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}

		vcsVersion := ""
		vcsModified := ""
		for _, p := range info.Settings {
			switch p.Key {
			case "vcs.revision":
				vcsVersion = p.Value
			case "vcs.modified":
				if p.Value == "true" {
					vcsModified = "-modified"
				}
			}
		}
		if vcsVersion != "" {
			Version += "-" + vcsVersion + vcsModified
		}
	}
	Channel = channelFor(Version)
}

func channelFor(version string) ReleaseChannel {
	switch {
	case semver.IsValid(version):
		return GA
	case strings.HasPrefix(version, "devel-") || version == "devel":
		return DevBuild
	default:
		return unknown
	}
}

// UserAgent is the User-Agent header sent with every API request.
func UserAgent() string {
	return "apidoc-cli/" + Version
}
