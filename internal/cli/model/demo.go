// Package model holds the bubbletea models behind interactive commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/swipenav/internal/bootstrap"
	"github.com/bnema/swipenav/internal/cli/styles"
	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/infrastructure/config"
	"github.com/bnema/swipenav/internal/infrastructure/headless"
	"github.com/bnema/swipenav/internal/infrastructure/history"
	"github.com/bnema/swipenav/internal/ui/coordinator"
)

const defaultDemoStep = 10.0

// DefaultDemoHistory is the back/forward list the demo starts with. The
// fragment-only entry shows the same-location notice after a back swipe.
var DefaultDemoHistory = []string{
	"https://example.com/",
	"https://example.com/docs",
	"https://example.com/docs#install",
	"https://example.com/blog",
}

// DemoModelConfig configures the swipe demo.
type DemoModelConfig struct {
	Config   *config.Config
	Viewport entity.Size
	// Step is the drag distance of one key press in pixels.
	Step    float64
	History []string
	Now     func() time.Time
}

// demoState is shared with the coordinator callbacks.
type demoState struct {
	progress [len(entity.Sides)]float64
	event    string
}

// DemoModel drives a real swipe coordinator from the keyboard.
type DemoModel struct {
	ctx     context.Context
	theme   *styles.Theme
	swipeR  *styles.SwipeRenderer
	keys    styles.DemoKeyMap
	help    help.Model
	history *history.Navigator
	swipe   *bootstrap.Swipe
	loop    *headless.Loop
	state   *demoState

	step     float64
	offset   float64
	dragging bool
	ticking  bool
	err      error
	quitting bool
}

// NewDemoModel creates the demo model.
func NewDemoModel(ctx context.Context, theme *styles.Theme, cfg DemoModelConfig) DemoModel {
	if cfg.Config == nil {
		cfg.Config = config.DefaultConfig()
	}
	if cfg.Viewport.IsEmpty() {
		cfg.Viewport = entity.Sz(300, 600)
	}
	if cfg.Step <= 0 {
		cfg.Step = defaultDemoStep
	}
	entries := cfg.History
	if len(entries) == 0 {
		entries = DefaultDemoHistory
	}

	nav := history.NewNavigator(entries...)
	loop := headless.NewLoop(cfg.Now)
	state := &demoState{}
	viewport := cfg.Viewport

	swipe := bootstrap.NewSwipe(ctx, cfg.Config, coordinator.SwipeDeps{
		Navigator:  nav,
		Viewport:   fixedViewport(viewport),
		FrameClock: loop,
		Scheduler:  loop,
		Now:        cfg.Now,
	})
	swipe.Coordinator.SetCallbacks(coordinator.SwipeCallbacks{
		OnProgressChanged: func(side entity.Side, progress float64) {
			state.progress[side] = progress
		},
		OnAnimatedTransition: func(side entity.Side, progress float64, duration time.Duration) {
			state.progress[side] = progress
			if side == entity.SideBack {
				state.event = fmt.Sprintf("rest (%s)", duration)
			}
		},
		OnCommit: func(side entity.Side) {
			state.event = "commit " + side.String()
		},
		OnSameLocation: func(uri string) {
			state.event = "same location: " + uri
		},
	})

	return DemoModel{
		ctx:     ctx,
		theme:   theme,
		swipeR:  styles.NewSwipeRenderer(theme),
		keys:    styles.DefaultDemoKeyMap(),
		help:    styles.NewStyledHelp(theme),
		history: nav,
		swipe:   swipe,
		loop:    loop,
		state:   state,
		step:    cfg.Step,
	}
}

type fixedViewport entity.Size

func (v fixedViewport) ViewportSize() entity.Size { return entity.Size(v) }

// Init implements tea.Model.
func (DemoModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case frameMsg:
		m.ticking = false
		m.loop.Advance(time.Time(msg))
		return m, m.ensureTicking()
	}
	return m, nil
}

func (m DemoModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.DragBack):
		m.drag(m.step)
	case key.Matches(msg, m.keys.DragForward):
		m.drag(-m.step)
	case key.Matches(msg, m.keys.Release):
		m.release(entity.GestureEnded)
	case key.Matches(msg, m.keys.Cancel):
		m.release(entity.GestureCancelled)
	case key.Matches(msg, m.keys.ToggleBack):
		m.toggle(entity.SideBack)
	case key.Matches(msg, m.keys.ToggleFwd):
		m.toggle(entity.SideForward)
	}
	return m, m.ensureTicking()
}

func (m *DemoModel) drag(delta float64) {
	coord := m.swipe.Coordinator
	if !m.dragging {
		m.offset = 0
		m.err = coord.HandleGesture(m.ctx, entity.GestureBegan, 0)
		m.dragging = true
		m.state.event = "dragging"
	}
	m.offset += delta
	m.err = coord.HandleGesture(m.ctx, entity.GestureChanged, m.offset)
}

func (m *DemoModel) release(phase entity.GesturePhase) {
	if !m.dragging {
		return
	}
	m.dragging = false
	m.err = m.swipe.Coordinator.HandleGesture(m.ctx, phase, m.offset)
	if phase == entity.GestureCancelled && m.err == nil {
		m.state.event = "cancelled, " + m.state.event
	}
}

func (m *DemoModel) toggle(side entity.Side) {
	ctrl := m.swipe.Controller
	if side == entity.SideBack {
		m.swipe.Coordinator.SetEnableBack(!ctrl.EnableBack())
	} else {
		m.swipe.Coordinator.SetEnableForward(!ctrl.EnableForward())
	}
}

// ensureTicking starts the frame ticker while the loop has work.
func (m *DemoModel) ensureTicking() tea.Cmd {
	if m.ticking || !m.loop.Pending() {
		return nil
	}
	m.ticking = true
	return tickFrame()
}

// View implements tea.Model.
func (m DemoModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.theme.BoxHeader.Render("swipenav demo"))
	sb.WriteString("\n")

	back := m.state.progress[entity.SideBack]
	forward := m.state.progress[entity.SideForward]
	page := m.theme.Viewport.Width(40).Render(m.theme.Normal.Render(m.history.URI()))
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		m.swipeR.RenderChevron(entity.SideBack, back),
		" ", page, " ",
		m.swipeR.RenderChevron(entity.SideForward, forward),
	))
	sb.WriteString("\n\n")

	sb.WriteString(m.swipeR.RenderProgress(entity.Progress{Back: back, Forward: forward}))
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")

	entries, current := m.history.Entries()
	sb.WriteString(m.swipeR.RenderHistory(entries, current))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

func (m DemoModel) renderStatus() string {
	ctrl := m.swipe.Controller
	flags := []string{
		m.badge("back", ctrl.EnableBack()),
		m.badge("forward", ctrl.EnableForward()),
	}
	if m.swipe.Coordinator.Animating() {
		flags = append(flags, m.theme.Badge.Render("animating"))
	}

	line := "  " + strings.Join(flags, " ")
	if m.dragging {
		line += m.theme.Subtle.Render(fmt.Sprintf("  offset %.0f", m.offset))
	}
	if m.state.event != "" {
		line += "  " + m.theme.Highlight.Render(m.state.event)
	}
	if m.err != nil {
		line += "\n  " + m.theme.ErrorStyle.Render(m.err.Error())
	}
	return line + "\n"
}

func (m DemoModel) badge(label string, on bool) string {
	if on {
		return m.theme.Badge.Render(label)
	}
	return m.theme.BadgeMuted.Render(label + " off")
}
