package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/swipenav/internal/bootstrap"
	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/infrastructure/config"
	"github.com/bnema/swipenav/internal/infrastructure/svg"
)

var renderOpts = struct {
	side      sideValue
	progress  float64
	viewport  *viewportValue
	output    string
	precision int
}{viewport: newViewportValue()}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one panel state as SVG",
	Long: `Render the side panel for a given progress and print it as an SVG document.

The panel geometry and colors come from the [panel] config section.

Examples:
  swipenav render --side back --progress 0.6
  swipenav render --side forward --progress 1 -o forward.svg`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	f := renderCmd.Flags()
	f.Var(&renderOpts.side, "side", "panel side (back or forward)")
	f.Float64Var(&renderOpts.progress, "progress", 1, "panel progress, clamped to [0,1]")
	f.Var(renderOpts.viewport, "viewport", "viewport size")
	f.StringVarP(&renderOpts.output, "output", "o", "", "write to file instead of stdout")
	f.IntVar(&renderOpts.precision, "precision", 3, "decimals per coordinate (0 = exact)")
}

func runRender(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	if renderOpts.output != "" {
		f, err := os.Create(renderOpts.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", renderOpts.output, err)
		}
		defer f.Close()
		out = f
	}

	if err := renderPanelSVG(out, app.Config, renderOpts.side.side, renderOpts.progress, renderOpts.viewport.size, renderOpts.precision); err != nil {
		return err
	}
	if renderOpts.output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", renderOpts.output)
	}
	return nil
}

// renderPanelSVG renders side at progress and writes it as SVG.
func renderPanelSVG(w io.Writer, cfg *config.Config, side entity.Side, progress float64, viewport entity.Size, precision int) error {
	renderer := bootstrap.Renderer(cfg)
	pair := renderer.Render(side, progress, viewport)
	if err := svg.Encode(w, pair, renderer.PanelSize(), cfg.Panel.Style(), svg.Options{MaxPrecision: precision}); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	return nil
}
