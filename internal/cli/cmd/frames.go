package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/swipenav/internal/bootstrap"
	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/domain/panel"
	"github.com/bnema/swipenav/internal/infrastructure/config"
	"github.com/bnema/swipenav/internal/infrastructure/svg"
	"github.com/bnema/swipenav/internal/logging"
	"github.com/bnema/swipenav/internal/ui/animation"
)

const framesFilePerm = 0o644

var framesOpts = struct {
	side      sideValue
	from      float64
	duration  time.Duration
	fps       int
	viewport  *viewportValue
	dir       string
	jobs      int
	precision int
}{viewport: newViewportValue()}

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Export the spring-back animation as SVG frames",
	Long: `Export the animation from a released panel back to rest as numbered SVG files.

Without --duration the length is the configured max_rest_duration_ms scaled
by the starting progress, exactly as a release at that progress would animate.

Examples:
  swipenav frames --side back --from 0.8 --dir out/
  swipenav frames --side forward --from 1 --fps 30 --duration 400ms --dir out/`,
	RunE: runFrames,
}

func init() {
	rootCmd.AddCommand(framesCmd)
	f := framesCmd.Flags()
	f.Var(&framesOpts.side, "side", "panel side (back or forward)")
	f.Float64Var(&framesOpts.from, "from", 1, "starting progress")
	f.DurationVar(&framesOpts.duration, "duration", 0, "animation length (0 = derive from config)")
	f.IntVar(&framesOpts.fps, "fps", 60, "frames per second")
	f.Var(framesOpts.viewport, "viewport", "viewport size")
	f.StringVar(&framesOpts.dir, "dir", "frames", "output directory")
	f.IntVarP(&framesOpts.jobs, "jobs", "j", runtime.NumCPU(), "parallel writers")
	f.IntVar(&framesOpts.precision, "precision", 3, "decimals per coordinate (0 = exact)")
}

func runFrames(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if framesOpts.fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", framesOpts.fps)
	}

	from := entity.ClampProgress(framesOpts.from)
	duration := framesOpts.duration
	if duration <= 0 {
		duration = time.Duration(float64(app.Config.Gesture.MaxRestDuration()) * from)
	}

	renderer := bootstrap.Renderer(app.Config)
	frames := restFrames(renderer, framesOpts.side.side, from, framesOpts.viewport.size, duration, framesOpts.fps)

	paths, err := writeFrames(app.Ctx(), framesOpts.dir, frames, renderer.PanelSize(), app.Config, framesOpts.jobs, framesOpts.precision)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames (%s) to %s\n", len(paths), duration, framesOpts.dir)
	return nil
}

// restFrames samples the animation from progress back to rest. The first
// frame is the released state and the last one is rest.
func restFrames(renderer panel.Renderer, side entity.Side, from float64, viewport entity.Size, duration time.Duration, fps int) []entity.PathPair {
	now := time.Unix(0, 0)
	var frames []entity.PathPair
	anim := animation.New(func(_ entity.Side, paths entity.PathPair) {
		frames = append(frames, paths)
	}, func() time.Time { return now })

	anim.Apply(side, renderer.Render(side, from, viewport), entity.Immediate())
	anim.Apply(side, renderer.Render(side, entity.ProgressRest, viewport), entity.Animated(duration))

	interval := time.Second / time.Duration(fps)
	for anim.Running() {
		now = now.Add(interval)
		anim.Tick(now)
	}
	return frames
}

// writeFrames writes frame_NNNN.svg files concurrently.
func writeFrames(ctx context.Context, dir string, frames []entity.PathPair, size entity.Size, cfg *config.Config, jobs, precision int) ([]string, error) {
	log := logging.FromContext(ctx)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	style := cfg.Panel.Style()
	opts := svg.Options{MaxPrecision: precision}
	paths := make([]string, len(frames))

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, pair := range frames {
		paths[i] = filepath.Join(dir, fmt.Sprintf("frame_%04d.svg", i))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return writeFrame(paths[i], pair, size, style, opts)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug().Int("frames", len(frames)).Str("dir", dir).Msg("frames exported")
	return paths, nil
}

func writeFrame(path string, pair entity.PathPair, size entity.Size, style entity.PanelStyle, opts svg.Options) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, framesFilePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := svg.Encode(f, pair, size, style, opts); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
