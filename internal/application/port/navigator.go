package port

import (
	"context"

	"github.com/bnema/swipenav/internal/domain/entity"
)

// Navigator is the content view's history, as seen by the swipe overlay.
type Navigator interface {
	// CanGoBack returns true if back navigation is available.
	CanGoBack() bool
	// CanGoForward returns true if forward navigation is available.
	CanGoForward() bool
	// GoBack navigates back in history.
	GoBack(ctx context.Context) error
	// GoForward navigates forward in history.
	GoForward(ctx context.Context) error
	// URI returns the current location.
	URI() string
}

// Viewport reports the size of the content view hosting the panels.
type Viewport interface {
	ViewportSize() entity.Size
}

// PanelSurface draws the paths of one side panel.
// Implementations are called on the UI thread.
type PanelSurface interface {
	SetPaths(paths entity.PathPair)
}
