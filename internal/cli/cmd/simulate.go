package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/swipenav/internal/bootstrap"
	"github.com/bnema/swipenav/internal/cli/model"
	"github.com/bnema/swipenav/internal/cli/styles"
	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/infrastructure/config"
	"github.com/bnema/swipenav/internal/infrastructure/headless"
	"github.com/bnema/swipenav/internal/infrastructure/history"
	"github.com/bnema/swipenav/internal/ui/coordinator"
)

var simulateOpts = struct {
	viewport *viewportValue
	history  []string
	cancel   bool
}{viewport: newViewportValue()}

var simulateCmd = &cobra.Command{
	Use:   "simulate OFFSET...",
	Short: "Replay drag offsets through the swipe coordinator",
	Long: `Replay a horizontal drag against an in-memory history and print the
panel progress after every offset, the release decision and the resulting
history position.

The first offset begins the drag, every offset is then reported as a move and
the drag is released at the last one. Positive offsets drag toward back.

Examples:
  swipenav simulate 0 20 50 80
  swipenav simulate --cancel 0 -40 -90
  swipenav simulate --history https://a.test --history https://b.test 0 100`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	f := simulateCmd.Flags()
	f.Var(simulateOpts.viewport, "viewport", "viewport size")
	f.StringArrayVar(&simulateOpts.history, "history", nil, "history entries, oldest first; the last one is current")
	f.BoolVar(&simulateOpts.cancel, "cancel", false, "cancel the drag instead of releasing it")
}

type simulationStep struct {
	Phase    entity.GesturePhase
	Offset   float64
	Progress entity.Progress
	Err      error
}

type simulation struct {
	Steps        []simulationStep
	Decision     entity.Decision
	SameLocation string
	Entries      []string
	Current      int
}

type staticViewport entity.Size

func (v staticViewport) ViewportSize() entity.Size { return entity.Size(v) }

func runSimulate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	offsets, err := parseOffsets(args)
	if err != nil {
		return err
	}
	entries := simulateOpts.history
	if len(entries) == 0 {
		entries = model.DefaultDemoHistory
	}

	res := simulate(app.Ctx(), app.Config, simulateOpts.viewport.size, entries, offsets, simulateOpts.cancel)
	fmt.Fprint(cmd.OutOrStdout(), renderSimulation(styles.NewSwipeRenderer(app.Theme), app.Theme, res))
	return nil
}

func parseOffsets(args []string) ([]float64, error) {
	offsets := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q: %w", arg, err)
		}
		offsets = append(offsets, v)
	}
	return offsets, nil
}

// simulate replays offsets on a headless coordinator. Time only advances
// after the release, to play the rest animation and the same-location check.
func simulate(ctx context.Context, cfg *config.Config, viewport entity.Size, entries []string, offsets []float64, cancel bool) simulation {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }
	loop := headless.NewLoop(clock)
	nav := history.NewNavigator(entries...)

	swipe := bootstrap.NewSwipe(ctx, cfg, coordinator.SwipeDeps{
		Navigator:  nav,
		Viewport:   staticViewport(viewport),
		FrameClock: loop,
		Scheduler:  loop,
		Now:        clock,
	})

	var (
		res      simulation
		progress entity.Progress
	)
	swipe.Coordinator.SetCallbacks(coordinator.SwipeCallbacks{
		OnProgressChanged: func(side entity.Side, p float64) {
			if side == entity.SideBack {
				progress.Back = p
			} else {
				progress.Forward = p
			}
		},
		OnAnimatedTransition: func(_ entity.Side, _ float64, d time.Duration) {
			res.Decision = entity.Rest(d)
		},
		OnCommit: func(side entity.Side) {
			if side == entity.SideBack {
				res.Decision = entity.CommitBack()
			} else {
				res.Decision = entity.CommitForward()
			}
		},
		OnSameLocation: func(uri string) {
			res.SameLocation = uri
		},
	})

	step := func(phase entity.GesturePhase, offset float64) {
		err := swipe.Coordinator.HandleGesture(ctx, phase, offset)
		res.Steps = append(res.Steps, simulationStep{Phase: phase, Offset: offset, Progress: progress, Err: err})
	}

	step(entity.GestureBegan, offsets[0])
	for _, offset := range offsets[1:] {
		step(entity.GestureChanged, offset)
	}
	release := entity.GestureEnded
	if cancel {
		release = entity.GestureCancelled
	}
	step(release, offsets[len(offsets)-1])

	loop.Drain(now, headless.DefaultFrameInterval, func(t time.Time) { now = t })

	res.Entries, res.Current = nav.Entries()
	return res
}

func renderSimulation(r *styles.SwipeRenderer, theme *styles.Theme, res simulation) string {
	var sb strings.Builder
	for _, s := range res.Steps {
		sb.WriteString(r.RenderStep(s.Phase, s.Offset, s.Progress))
		if s.Err != nil {
			sb.WriteString("  " + theme.WarningStyle.Render(s.Err.Error()) + "\n")
		}
	}
	sb.WriteString(r.RenderDecision(res.Decision))
	if res.SameLocation != "" {
		sb.WriteString("  " + theme.WarningStyle.Render(styles.IconWarning+" stayed on "+res.SameLocation) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(r.RenderHistory(res.Entries, res.Current))
	return sb.String()
}
