package coordinator

import (
	"context"
	"net/url"
	"time"

	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/logging"
)

// DefaultSameLocationDelay is how long the coordinator waits after a back
// navigation before checking whether the location actually changed.
const DefaultSameLocationDelay = 200 * time.Millisecond

// commit performs a committed navigation. The panels snap back to rest
// regardless of whether the navigation succeeds.
func (c *SwipeCoordinator) commit(ctx context.Context, side entity.Side) {
	log := logging.FromContext(ctx)

	if c.callbacks.OnCommit != nil {
		c.callbacks.OnCommit(side)
	}

	if c.navigator == nil {
		log.Warn().Str("side", side.String()).Msg("swipe committed without a navigator")
		c.resetPanels(entity.Immediate())
		return
	}

	previous := c.navigator.URI()
	var err error
	switch side {
	case entity.SideBack:
		err = c.navigator.GoBack(ctx)
	case entity.SideForward:
		err = c.navigator.GoForward(ctx)
	}
	c.resetPanels(entity.Immediate())

	if err != nil {
		log.Error().Err(err).Str("side", side.String()).Str("uri", previous).Msg("swipe navigation failed")
		return
	}
	log.Info().Str("side", side.String()).Str("from", previous).Msg("swipe navigation")

	if side == entity.SideBack {
		c.scheduleSameLocationCheck(ctx, previous)
	}
}

// scheduleSameLocationCheck arms a one-shot check that reports back
// navigations which did not leave the page, such as fragment-only entries.
func (c *SwipeCoordinator) scheduleSameLocationCheck(ctx context.Context, previous string) {
	if c.scheduler == nil || c.callbacks.OnSameLocation == nil {
		return
	}
	if c.cancelCheck != nil {
		c.cancelCheck()
		c.cancelCheck = nil
	}

	log := logging.FromContext(ctx)
	c.cancelCheck = c.scheduler.AfterFunc(c.sameLocationDelay, func() {
		c.cancelCheck = nil
		current := c.navigator.URI()
		if !SameLocation(previous, current) {
			return
		}
		log.Debug().Str("uri", current).Msg("back navigation stayed on the same location")
		c.callbacks.OnSameLocation(current)
	})
}

// SameLocation reports whether two URIs point at the same document,
// ignoring the fragment. Unparseable URIs are compared verbatim.
func SameLocation(a, b string) bool {
	ua, errA := url.Parse(a)
	ub, errB := url.Parse(b)
	if errA != nil || errB != nil {
		return a == b
	}
	ua.Fragment, ua.RawFragment = "", ""
	ub.Fragment, ub.RawFragment = "", ""
	return ua.String() == ub.String()
}
