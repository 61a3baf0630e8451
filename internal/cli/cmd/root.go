// Package cmd provides Cobra CLI commands for swipenav.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/swipenav/internal/cli"
	"github.com/bnema/swipenav/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = newRootCmd()
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swipenav",
		Short: "Swipe-to-navigate overlay for web views",
		Long: `Swipenav - edge panels that follow a horizontal drag and navigate back or forward.

Dragging right past a quarter of the viewport width goes back, dragging left
goes forward. Shorter drags spring back to rest.

Use 'swipenav browse' to open a GTK4 window with the overlay on a WebKitGTK
web view, or explore the subcommands to render panels, export animation
frames, replay drags and try the gesture in the terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: configFile, LogOutput: cmd.ErrOrStderr()})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// browseCmd is a placeholder for help - actual execution is in main.go
var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Open a web view with the swipe overlay",
	Long: `Open a GTK4 window with a WebKitGTK web view and the swipe overlay.

If a URL is provided, navigate to it. The config file is watched and
changes apply to the running overlay.

Examples:
  swipenav browse                  # Open https://example.com
  swipenav browse example.org      # Open a URL`,
	Run: func(_ *cobra.Command, _ []string) {
		// This is handled by main.go before cobra runs
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/swipenav/config.toml)")
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
