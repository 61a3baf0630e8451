package gesture_test

import (
	"testing"
	"time"

	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/domain/gesture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistory struct {
	back    bool
	forward bool
}

func (h *fakeHistory) CanGoBack() bool    { return h.back }
func (h *fakeHistory) CanGoForward() bool { return h.forward }

func newController(t *testing.T, history *fakeHistory, opts ...gesture.Option) *gesture.Controller {
	t.Helper()
	c := gesture.NewController(history, opts...)
	require.NoError(t, c.BeginSession(0, 300))
	return c
}

func TestBeginSession_DerivesMaxSwipeDistance(t *testing.T) {
	c := newController(t, &fakeHistory{back: true, forward: true})

	s, ok := c.Session()
	require.True(t, ok)
	assert.InDelta(t, 75.0, s.MaxSwipeDistance, 1e-9)
	assert.True(t, s.EnableBack)
	assert.True(t, s.EnableForward)
}

func TestUpdate_ProgressIsProportionalBelowThreshold(t *testing.T) {
	c := newController(t, &fakeHistory{back: true, forward: true})

	for delta := 1.0; delta < 75; delta += 7 {
		p, err := c.Update(delta)
		require.NoError(t, err)
		assert.InDelta(t, delta/75, p.Back, 1e-12, "delta %v", delta)
		assert.Zero(t, p.Forward)

		p, err = c.Update(-delta)
		require.NoError(t, err)
		assert.InDelta(t, delta/75, p.Forward, 1e-12, "delta -%v", delta)
		assert.Zero(t, p.Back)
	}
}

func TestUpdate_ClampsAtThreshold(t *testing.T) {
	c := newController(t, &fakeHistory{back: true, forward: true})

	for _, delta := range []float64{75, 80, 500} {
		p, err := c.Update(delta)
		require.NoError(t, err)
		assert.Equal(t, 1.0, p.Back)

		p, err = c.Update(-delta)
		require.NoError(t, err)
		assert.Equal(t, 1.0, p.Forward)
	}
}

func TestScenario_PartialDragRestsProportionally(t *testing.T) {
	c := newController(t, &fakeHistory{back: true, forward: true})

	p, err := c.Update(50)
	require.NoError(t, err)
	assert.InDelta(t, 0.667, p.Back, 1e-3)
	assert.Zero(t, p.Forward)

	d, err := c.End(50)
	require.NoError(t, err)
	assert.Equal(t, entity.DecisionRest, d.Kind)
	assert.InDelta(t, 0.1667, d.RestDuration.Seconds(), 1e-4)
}

func TestScenario_OvershootCommitsBack(t *testing.T) {
	c := newController(t, &fakeHistory{back: true, forward: true})

	p, err := c.Update(80)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Back)

	d, err := c.End(80)
	require.NoError(t, err)
	assert.Equal(t, entity.CommitBack(), d)
}

func TestScenario_DisabledBackKeepsBothAtRest(t *testing.T) {
	c := gesture.NewController(&fakeHistory{back: true, forward: true})
	c.SetEnableBack(false)
	require.NoError(t, c.BeginSession(0, 300))

	p, err := c.Update(50)
	require.NoError(t, err)
	assert.True(t, p.IsRest())

	d, err := c.End(80)
	require.NoError(t, err)
	assert.Equal(t, entity.DecisionRest, d.Kind)
}

func TestEnd_Decisions(t *testing.T) {
	tests := []struct {
		name    string
		history fakeHistory
		offset  float64
		want    entity.DecisionKind
	}{
		{"beyond threshold back", fakeHistory{back: true}, 76, entity.DecisionCommitBack},
		{"exactly at threshold rests", fakeHistory{back: true}, 75, entity.DecisionRest},
		{"beyond threshold forward", fakeHistory{forward: true}, -76, entity.DecisionCommitForward},
		{"cannot go back", fakeHistory{forward: true}, 200, entity.DecisionRest},
		{"cannot go forward", fakeHistory{back: true}, -200, entity.DecisionRest},
		{"no movement", fakeHistory{back: true, forward: true}, 0, entity.DecisionRest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := tt.history
			c := newController(t, &history)

			d, err := c.End(tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Kind)
			if d.IsCommit() {
				assert.Zero(t, d.RestDuration)
			}
		})
	}
}

func TestEnd_RestDurationIsBounded(t *testing.T) {
	c := newController(t, &fakeHistory{})

	for delta := -400.0; delta <= 400; delta += 13 {
		d, err := c.End(delta)
		require.NoError(t, err)
		require.Equal(t, entity.DecisionRest, d.Kind)
		assert.GreaterOrEqual(t, d.RestDuration, time.Duration(0))
		assert.LessOrEqual(t, d.RestDuration, gesture.DefaultMaxRestDuration)
	}
}

func TestEnd_CancelledDragUsesSameDecision(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  entity.Decision
	}{
		{name: "past back limit", delta: 80, want: entity.CommitBack()},
		{name: "past forward limit", delta: -200, want: entity.CommitForward()},
		{name: "short drag", delta: 30, want: entity.Rest(100 * time.Millisecond)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(t, &fakeHistory{back: true, forward: true})

			d, err := c.End(tt.delta)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestEnableFlags_AreSnapshotPerSession(t *testing.T) {
	c := newController(t, &fakeHistory{back: true, forward: true})
	c.SetEnableBack(false)

	p, err := c.Update(30)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, p.Back, 1e-12, "flag change must not affect the running session")

	c.EndSession()
	require.NoError(t, c.BeginSession(0, 300))
	p, err = c.Update(30)
	require.NoError(t, err)
	assert.True(t, p.IsRest())
}

func TestBeginSession_InvalidViewport(t *testing.T) {
	c := gesture.NewController(&fakeHistory{back: true, forward: true})

	err := c.BeginSession(10, 0)
	require.ErrorIs(t, err, gesture.ErrInvalidViewport)
	assert.True(t, c.Active())

	p, err := c.Update(60)
	require.NoError(t, err)
	assert.True(t, p.IsRest())

	d, err := c.End(500)
	require.NoError(t, err)
	assert.Equal(t, entity.Rest(0), d)
}

func TestNoActiveSession(t *testing.T) {
	c := gesture.NewController(&fakeHistory{back: true})

	_, err := c.Update(10)
	assert.ErrorIs(t, err, gesture.ErrNoActiveSession)
	_, err = c.End(10)
	assert.ErrorIs(t, err, gesture.ErrNoActiveSession)

	require.NoError(t, c.BeginSession(0, 300))
	c.EndSession()
	c.EndSession()
	assert.False(t, c.Active())
	_, err = c.Update(10)
	assert.ErrorIs(t, err, gesture.ErrNoActiveSession)
}

func TestOptions(t *testing.T) {
	c := gesture.NewController(&fakeHistory{back: true},
		gesture.WithMaxSwipeDistance(100),
		gesture.WithMaxRestDuration(time.Second),
	)
	require.NoError(t, c.BeginSession(20, 300))

	p, err := c.Update(70)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p.Back, 1e-12)

	d, err := c.End(70)
	require.NoError(t, err)
	assert.Equal(t, entity.Rest(500*time.Millisecond), d)
}

func TestNilHistoryNeverCommits(t *testing.T) {
	c := gesture.NewController(nil)
	require.NoError(t, c.BeginSession(0, 300))

	p, err := c.Update(100)
	require.NoError(t, err)
	assert.True(t, p.IsRest())
}
