package main

import (
	"os"
	"runtime"
	"strings"

	"github.com/bnema/swipenav/internal/cli/cmd"
	"github.com/bnema/swipenav/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// Run GUI mode for browse command
	if len(os.Args) > 1 && os.Args[1] == "browse" {
		uri, configPath := parseBrowseArgs(os.Args[2:])
		os.Args = os.Args[:1]
		os.Exit(runGUI(uri, configPath))
		return
	}

	// Pass build info to CLI
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Default: run CLI (shows help if no subcommand)
	cmd.Execute()
}

// parseBrowseArgs extracts the optional URL and --config/-c from the browse
// arguments, which never reach cobra.
func parseBrowseArgs(args []string) (uri, configPath string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		case uri == "" && !strings.HasPrefix(arg, "-"):
			uri = arg
		}
	}
	return normalizeURI(uri), configPath
}

// normalizeURI defaults to the home page and adds https:// to bare hosts.
func normalizeURI(uri string) string {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return defaultHomepage
	}
	if strings.Contains(uri, "://") || strings.HasPrefix(uri, "about:") || strings.HasPrefix(uri, "file:") {
		return uri
	}
	return "https://" + uri
}
