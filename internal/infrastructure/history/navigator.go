// Package history provides an in-memory back/forward list that satisfies
// port.Navigator. It backs the CLI simulator and tests; the GTK host uses
// the web view's own history instead.
package history

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/swipenav/internal/logging"
)

// ErrNoHistory is returned when navigating past either end of the list.
var ErrNoHistory = errors.New("no history entry in that direction")

// Navigator is a browser-style back/forward list.
type Navigator struct {
	mu      sync.RWMutex
	entries []string
	current int
}

// NewNavigator creates a navigator positioned at the last of the given
// entries. With no entries the current URI is empty.
func NewNavigator(entries ...string) *Navigator {
	n := &Navigator{current: -1}
	for _, uri := range entries {
		n.visit(uri)
	}
	return n
}

// Visit loads a new location, dropping any forward entries.
func (n *Navigator) Visit(uri string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.visit(uri)
}

func (n *Navigator) visit(uri string) {
	n.entries = append(n.entries[:n.current+1], uri)
	n.current = len(n.entries) - 1
}

// CanGoBack returns true if there is an entry before the current one.
func (n *Navigator) CanGoBack() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current > 0
}

// CanGoForward returns true if there is an entry after the current one.
func (n *Navigator) CanGoForward() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current >= 0 && n.current < len(n.entries)-1
}

// GoBack moves to the previous entry.
func (n *Navigator) GoBack(ctx context.Context) error {
	return n.step(ctx, -1)
}

// GoForward moves to the next entry.
func (n *Navigator) GoForward(ctx context.Context) error {
	return n.step(ctx, 1)
}

func (n *Navigator) step(ctx context.Context, delta int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	next := n.current + delta
	if n.current < 0 || next < 0 || next >= len(n.entries) {
		return ErrNoHistory
	}
	from := n.entries[n.current]
	n.current = next

	logging.FromContext(ctx).Debug().
		Str("from", from).
		Str("to", n.entries[next]).
		Int("index", next).
		Msg("history step")
	return nil
}

// URI returns the current location.
func (n *Navigator) URI() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.current < 0 {
		return ""
	}
	return n.entries[n.current]
}

// Entries returns a copy of the list and the index of the current entry.
func (n *Navigator) Entries() ([]string, int) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, len(n.entries))
	copy(out, n.entries)
	return out, n.current
}
