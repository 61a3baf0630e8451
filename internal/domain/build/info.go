// Package build provides domain entities for build information.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String formats the build info for a version banner.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("swipenav %s (commit %s, built %s, %s)", version, i.Commit, i.BuildDate, i.GoVersion)
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/swipenav"
}
