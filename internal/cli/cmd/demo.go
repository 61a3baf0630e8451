package cmd

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/swipenav/internal/cli/model"
	"github.com/bnema/swipenav/internal/logging"
)

var demoOpts = struct {
	viewport *viewportValue
	step     float64
}{viewport: newViewportValue()}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Try the swipe gesture in the terminal",
	Long: `Drive the swipe overlay with the keyboard against an in-memory history.

Arrow keys drag, space releases, esc cancels. The panels, the decision and
the history position update live, including the spring-back animation.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	f := demoCmd.Flags()
	f.Var(demoOpts.viewport, "viewport", "viewport size")
	f.Float64Var(&demoOpts.step, "step", 10, "drag distance per key press")
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("app not initialized")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("demo needs an interactive terminal; use simulate for scripted drags")
	}

	// Log lines would tear the alt screen.
	quiet := logging.DefaultConfig()
	quiet.Output = io.Discard
	ctx := logging.WithContext(app.Ctx(), logging.New(quiet))

	m := model.NewDemoModel(ctx, app.Theme, model.DemoModelConfig{
		Config:   app.Config,
		Viewport: demoOpts.viewport.size,
		Step:     demoOpts.step,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
