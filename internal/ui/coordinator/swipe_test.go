package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_port "github.com/bnema/swipenav/internal/application/port/gomocks"
	"github.com/bnema/swipenav/internal/application/port/mocks"
	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/domain/gesture"
	"github.com/bnema/swipenav/internal/domain/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type progressEvent struct {
	side     entity.Side
	progress float64
}

type animatedEvent struct {
	side     entity.Side
	progress float64
	duration time.Duration
}

type swipeFixture struct {
	coord    *SwipeCoordinator
	nav      *mocks.MockNavigator
	surfaces map[entity.Side]*mocks.MockPanelSurface
	now      time.Time

	progress []progressEvent
	animated []animatedEvent
	commits  []entity.Side
}

func newSwipeFixture(t *testing.T, canBack, canForward bool, frames *mock_port.MockFrameClock, sched *mock_port.MockScheduler) *swipeFixture {
	t.Helper()

	f := &swipeFixture{
		nav:      mocks.NewMockNavigator(t),
		surfaces: make(map[entity.Side]*mocks.MockPanelSurface),
		now:      time.Unix(1000, 0),
	}
	f.nav.EXPECT().CanGoBack().Return(canBack).Maybe()
	f.nav.EXPECT().CanGoForward().Return(canForward).Maybe()

	viewport := mocks.NewMockViewport(t)
	viewport.EXPECT().ViewportSize().Return(entity.Sz(300, 600)).Maybe()

	deps := SwipeDeps{
		Navigator: f.nav,
		Viewport:  viewport,
		Now:       func() time.Time { return f.now },
	}
	if frames != nil {
		deps.FrameClock = frames
	}
	if sched != nil {
		deps.Scheduler = sched
	}

	f.coord = NewSwipeCoordinator(context.Background(), gesture.NewController(f.nav), deps)
	f.coord.SetCallbacks(SwipeCallbacks{
		OnProgressChanged: func(side entity.Side, progress float64) {
			f.progress = append(f.progress, progressEvent{side, progress})
		},
		OnAnimatedTransition: func(side entity.Side, progress float64, d time.Duration) {
			f.animated = append(f.animated, animatedEvent{side, progress, d})
		},
		OnCommit: func(side entity.Side) {
			f.commits = append(f.commits, side)
		},
	})

	for _, side := range entity.Sides {
		surface := mocks.NewMockPanelSurface(t)
		surface.EXPECT().SetPaths(mock.Anything).Maybe()
		f.surfaces[side] = surface
		require.NoError(t, f.coord.Attach(side, surface))
	}
	return f
}

func (f *swipeFixture) drag(t *testing.T, offsets ...float64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.coord.HandleGesture(ctx, entity.GestureBegan, 0))
	for _, off := range offsets {
		require.NoError(t, f.coord.HandleGesture(ctx, entity.GestureChanged, off))
	}
}

func (f *swipeFixture) lastProgress(side entity.Side) float64 {
	for i := len(f.progress) - 1; i >= 0; i-- {
		if f.progress[i].side == side {
			return f.progress[i].progress
		}
	}
	return -1
}

func renderAt(side entity.Side, progress float64) entity.PathPair {
	return panel.NewCurvedRenderer().Render(side, progress, entity.Sz(300, 600))
}

func TestSwipeCoordinator_AttachTwiceFails(t *testing.T) {
	f := newSwipeFixture(t, true, true, nil, nil)

	err := f.coord.Attach(entity.SideBack, mocks.NewMockPanelSurface(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPanelAlreadyAttached)
}

func TestSwipeCoordinator_AttachNilSurfaceFails(t *testing.T) {
	coord := NewSwipeCoordinator(context.Background(), gesture.NewController(nil), SwipeDeps{})

	assert.Error(t, coord.Attach(entity.SideBack, nil))
}

func TestSwipeCoordinator_AttachPresentsRestGeometry(t *testing.T) {
	f := newSwipeFixture(t, true, true, nil, nil)

	for _, side := range entity.Sides {
		assert.True(t, f.coord.Presented(side).Equal(renderAt(side, 0)), side.String())
	}
}

func TestSwipeCoordinator_DragUpdatesActiveSideAndRestsOther(t *testing.T) {
	f := newSwipeFixture(t, true, true, nil, nil)

	f.drag(t, 50)

	assert.InDelta(t, 50.0/75.0, f.lastProgress(entity.SideBack), 1e-9)
	assert.Equal(t, 0.0, f.lastProgress(entity.SideForward))
	assert.True(t, f.coord.Presented(entity.SideBack).Equal(renderAt(entity.SideBack, 50.0/75.0)))

	// Reversing direction swaps which side is active.
	require.NoError(t, f.coord.HandleGesture(context.Background(), entity.GestureChanged, -30))
	assert.Equal(t, 0.0, f.lastProgress(entity.SideBack))
	assert.InDelta(t, 30.0/75.0, f.lastProgress(entity.SideForward), 1e-9)
}

func TestSwipeCoordinator_DragBeyondLimitClampsProgress(t *testing.T) {
	f := newSwipeFixture(t, true, true, nil, nil)

	f.drag(t, 500)

	assert.Equal(t, 1.0, f.lastProgress(entity.SideBack))
}

func TestSwipeCoordinator_DisabledDirectionStaysAtRest(t *testing.T) {
	f := newSwipeFixture(t, true, true, nil, nil)
	f.coord.SetEnableBack(false)

	f.drag(t, 80)
	assert.Equal(t, 0.0, f.lastProgress(entity.SideBack))

	require.NoError(t, f.coord.HandleGesture(context.Background(), entity.GestureEnded, 80))
	assert.Empty(t, f.commits)
}

func TestSwipeCoordinator_CommitBackNavigates(t *testing.T) {
	f := newSwipeFixture(t, true, false, nil, nil)
	f.nav.EXPECT().URI().Return("https://example.com/b").Once()
	f.nav.EXPECT().GoBack(mock.Anything).Return(nil).Once()

	f.drag(t, 80)
	require.NoError(t, f.coord.HandleGesture(context.Background(), entity.GestureEnded, 80))

	assert.Equal(t, []entity.Side{entity.SideBack}, f.commits)
	assert.Equal(t, 0.0, f.lastProgress(entity.SideBack))
	assert.True(t, f.coord.Presented(entity.SideBack).Equal(renderAt(entity.SideBack, 0)))
	assert.Empty(t, f.animated)
}

func TestSwipeCoordinator_CommitForwardNavigates(t *testing.T) {
	f := newSwipeFixture(t, false, true, nil, nil)
	f.nav.EXPECT().URI().Return("https://example.com/a").Once()
	f.nav.EXPECT().GoForward(mock.Anything).Return(nil).Once()

	f.drag(t, -120)
	require.NoError(t, f.coord.HandleGesture(context.Background(), entity.GestureEnded, -120))

	assert.Equal(t, []entity.Side{entity.SideForward}, f.commits)
}

func TestSwipeCoordinator_NavigationErrorStillResetsPanels(t *testing.T) {
	f := newSwipeFixture(t, true, false, nil, nil)
	f.nav.EXPECT().URI().Return("https://example.com/b").Once()
	f.nav.EXPECT().GoBack(mock.Anything).Return(errors.New("boom")).Once()

	f.drag(t, 100)
	require.NoError(t, f.coord.HandleGesture(context.Background(), entity.GestureEnded, 100))

	assert.True(t, f.coord.Presented(entity.SideBack).Equal(renderAt(entity.SideBack, 0)))
}

func TestSwipeCoordinator_ReleaseBelowThresholdAnimatesToRest(t *testing.T) {
	ctrl := gomock.NewController(t)
	frames := mock_port.NewMockFrameClock(ctrl)

	var onFrame func(time.Time) bool
	frames.EXPECT().RequestFrames(gomock.Any()).DoAndReturn(func(fn func(time.Time) bool) {
		onFrame = fn
	}).Times(1)

	f := newSwipeFixture(t, true, true, frames, nil)
	f.drag(t, 50)
	require.NoError(t, f.coord.HandleGesture(context.Background(), entity.GestureEnded, 50))

	assert.Empty(t, f.commits)
	require.Len(t, f.animated, 2)
	for _, ev := range f.animated {
		assert.Equal(t, 0.0, ev.progress)
		assert.InDelta(t, float64(250*time.Millisecond)*50/75, float64(ev.duration), float64(time.Microsecond))
	}
	require.NotNil(t, onFrame)
	assert.True(t, f.coord.Animating())

	start := f.coord.Presented(entity.SideBack)
	assert.True(t, start.Equal(renderAt(entity.SideBack, 50.0/75.0)))

	f.now = f.now.Add(50 * time.Millisecond)
	assert.True(t, onFrame(f.now))
	mid := f.coord.Presented(entity.SideBack)
	assert.False(t, mid.Equal(start))

	f.now = f.now.Add(time.Second)
	assert.False(t, onFrame(f.now))
	assert.True(t, f.coord.Presented(entity.SideBack).Equal(renderAt(entity.SideBack, 0)))
	assert.False(t, f.coord.Animating())
}

func TestSwipeCoordinator_NewDragSupersedesRestAnimation(t *testing.T) {
	ctrl := gomock.NewController(t)
	frames := mock_port.NewMockFrameClock(ctrl)
	frames.EXPECT().RequestFrames(gomock.Any()).Times(1)

	f := newSwipeFixture(t, true, true, frames, nil)
	f.drag(t, 60)
	require.NoError(t, f.coord.HandleGesture(context.Background(), entity.GestureEnded, 60))
	require.True(t, f.coord.Animating())

	f.drag(t, 30)

	assert.False(t, f.coord.Animating())
	assert.True(t, f.coord.Presented(entity.SideBack).Equal(renderAt(entity.SideBack, 30.0/75.0)))
}

func TestSwipeCoordinator_WithoutFrameClockRestIsImmediate(t *testing.T) {
	f := newSwipeFixture(t, true, true, nil, nil)

	f.drag(t, 50)
	require.NoError(t, f.coord.HandleGesture(context.Background(), entity.GestureEnded, 50))

	assert.Empty(t, f.animated)
	assert.False(t, f.coord.Animating())
	assert.True(t, f.coord.Presented(entity.SideBack).Equal(renderAt(entity.SideBack, 0)))
}

func TestSwipeCoordinator_CancelPastLimitCommits(t *testing.T) {
	f := newSwipeFixture(t, true, true, nil, nil)
	f.nav.EXPECT().URI().Return("https://example.com/b").Once()
	f.nav.EXPECT().GoBack(mock.Anything).Return(nil).Once()

	f.drag(t, 80)
	require.NoError(t, f.coord.HandleGesture(context.Background(), entity.GestureCancelled, 80))

	assert.Equal(t, []entity.Side{entity.SideBack}, f.commits)
	assert.Equal(t, 0.0, f.lastProgress(entity.SideBack))
}

func TestSwipeCoordinator_CancelBelowLimitRests(t *testing.T) {
	f := newSwipeFixture(t, true, true, nil, nil)

	f.drag(t, 40)
	require.NoError(t, f.coord.HandleGesture(context.Background(), entity.GestureCancelled, 40))

	assert.Empty(t, f.commits)
	assert.True(t, f.coord.Presented(entity.SideBack).Equal(renderAt(entity.SideBack, 0)))
}

func TestSwipeCoordinator_UpdateWithoutSessionFails(t *testing.T) {
	f := newSwipeFixture(t, true, true, nil, nil)

	err := f.coord.HandleGesture(context.Background(), entity.GestureChanged, 10)
	assert.ErrorIs(t, err, gesture.ErrNoActiveSession)

	err = f.coord.HandleGesture(context.Background(), entity.GestureEnded, 10)
	assert.ErrorIs(t, err, gesture.ErrNoActiveSession)
}

func TestSwipeCoordinator_InvalidViewportKeepsPanelsAtRest(t *testing.T) {
	nav := mocks.NewMockNavigator(t)
	nav.EXPECT().CanGoBack().Return(true).Maybe()
	nav.EXPECT().CanGoForward().Return(true).Maybe()
	viewport := mocks.NewMockViewport(t)
	viewport.EXPECT().ViewportSize().Return(entity.Sz(0, 0)).Maybe()

	coord := NewSwipeCoordinator(context.Background(), gesture.NewController(nav), SwipeDeps{
		Navigator: nav,
		Viewport:  viewport,
	})
	var got []float64
	coord.SetCallbacks(SwipeCallbacks{OnProgressChanged: func(_ entity.Side, p float64) { got = append(got, p) }})

	err := coord.HandleGesture(context.Background(), entity.GestureBegan, 0)
	assert.ErrorIs(t, err, gesture.ErrInvalidViewport)

	require.NoError(t, coord.HandleGesture(context.Background(), entity.GestureChanged, 500))
	require.NoError(t, coord.HandleGesture(context.Background(), entity.GestureEnded, 500))
	for _, p := range got {
		assert.Equal(t, 0.0, p)
	}
	assert.True(t, coord.Presented(entity.SideBack).IsEmpty())
}

func TestSwipeCoordinator_UnknownPhase(t *testing.T) {
	f := newSwipeFixture(t, true, true, nil, nil)

	assert.Error(t, f.coord.HandleGesture(context.Background(), entity.GesturePhase(42), 0))
}
