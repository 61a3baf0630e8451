package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/swipenav/internal/cli/styles"
	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/infrastructure/config"
)

type demoFixture struct {
	now   time.Time
	model DemoModel
}

func newDemoFixture(t *testing.T) *demoFixture {
	t.Helper()
	f := &demoFixture{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	f.model = NewDemoModel(context.Background(), styles.NewTheme(config.DefaultConfig()), DemoModelConfig{
		Viewport: entity.Sz(300, 600),
		Step:     10,
		Now:      func() time.Time { return f.now },
	})
	return f
}

func (f *demoFixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(DemoModel)
	return cmd
}

func (f *demoFixture) press(keyType tea.KeyType, times int) {
	for i := 0; i < times; i++ {
		f.send(tea.KeyMsg{Type: keyType})
	}
}

func (f *demoFixture) frame(after time.Duration) tea.Cmd {
	f.now = f.now.Add(after)
	return f.send(frameMsg(f.now))
}

func TestDemoModel_DragShowsProgress(t *testing.T) {
	f := newDemoFixture(t)

	f.press(tea.KeyRight, 3)

	assert.True(t, f.model.dragging)
	assert.InDelta(t, 30.0/75.0, f.model.state.progress[entity.SideBack], 1e-9)
	assert.Equal(t, 0.0, f.model.state.progress[entity.SideForward])
	assert.Contains(t, f.model.View(), "offset 30")
}

func TestDemoModel_CommitBackNavigatesHistory(t *testing.T) {
	f := newDemoFixture(t)

	f.press(tea.KeyRight, 8)
	f.press(tea.KeySpace, 1)

	assert.False(t, f.model.dragging)
	assert.Equal(t, "https://example.com/docs#install", f.model.history.URI())
	assert.Equal(t, "commit back", f.model.state.event)
	assert.Equal(t, 0.0, f.model.state.progress[entity.SideBack])
}

func TestDemoModel_ShortReleaseAnimatesToRest(t *testing.T) {
	f := newDemoFixture(t)

	f.press(tea.KeyRight, 3)
	cmd := f.send(tea.KeyMsg{Type: tea.KeySpace})

	require.NotNil(t, cmd, "release should start the frame ticker")
	assert.True(t, f.model.swipe.Coordinator.Animating())
	assert.Equal(t, "rest (100ms)", f.model.state.event)

	f.frame(50 * time.Millisecond)
	assert.True(t, f.model.swipe.Coordinator.Animating())

	cmd = f.frame(100 * time.Millisecond)
	assert.False(t, f.model.swipe.Coordinator.Animating())
	assert.Nil(t, cmd, "ticker stops once nothing is pending")
	assert.Equal(t, "https://example.com/blog", f.model.history.URI())
}

func TestDemoModel_SameLocationAfterFragmentBack(t *testing.T) {
	f := newDemoFixture(t)

	// blog -> docs#install
	f.press(tea.KeyRight, 8)
	f.press(tea.KeySpace, 1)
	f.frame(600 * time.Millisecond)
	assert.Equal(t, "commit back", f.model.state.event)

	// docs#install -> docs
	f.press(tea.KeyRight, 8)
	f.press(tea.KeySpace, 1)
	f.frame(600 * time.Millisecond)
	assert.Equal(t, "same location: https://example.com/docs", f.model.state.event)
}

func TestDemoModel_ForwardDisabledUntilToggled(t *testing.T) {
	f := newDemoFixture(t)

	// At the newest entry forward is not possible anyway; go back first.
	f.press(tea.KeyRight, 8)
	f.press(tea.KeySpace, 1)

	f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	assert.False(t, f.model.swipe.Controller.EnableForward())

	f.press(tea.KeyLeft, 8)
	f.press(tea.KeySpace, 1)
	assert.Equal(t, "https://example.com/docs#install", f.model.history.URI())

	f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	f.press(tea.KeyLeft, 8)
	f.press(tea.KeySpace, 1)
	assert.Equal(t, "https://example.com/blog", f.model.history.URI())
}

func TestDemoModel_CancelPastLimitNavigates(t *testing.T) {
	f := newDemoFixture(t)

	f.press(tea.KeyRight, 8)
	f.press(tea.KeyEsc, 1)

	assert.False(t, f.model.dragging)
	assert.Equal(t, "https://example.com/docs#install", f.model.history.URI())
	assert.Equal(t, "cancelled, commit back", f.model.state.event)
}

func TestDemoModel_ShortCancelStays(t *testing.T) {
	f := newDemoFixture(t)

	f.press(tea.KeyRight, 3)
	f.press(tea.KeyEsc, 1)

	assert.Equal(t, "https://example.com/blog", f.model.history.URI())
	assert.Contains(t, f.model.state.event, "cancelled")
}

func TestDemoModel_Quit(t *testing.T) {
	f := newDemoFixture(t)

	cmd := f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.True(t, f.model.quitting)
	assert.Empty(t, f.model.View())
}
