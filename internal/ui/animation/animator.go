// Package animation tweens panel paths between render calls.
package animation

import (
	"time"

	"github.com/bnema/swipenav/internal/domain/entity"
)

// Sink receives every path pair presented for a key.
type Sink[K comparable] func(key K, paths entity.PathPair)

// transition is the in-flight interpolation of one key.
type transition struct {
	from     entity.PathPair
	to       entity.PathPair
	start    time.Time
	duration time.Duration
}

func (tr *transition) sample(now time.Time) (entity.PathPair, bool) {
	elapsed := now.Sub(tr.start)
	if elapsed >= tr.duration {
		return tr.to, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := float64(elapsed) / float64(tr.duration)
	return tr.from.Lerp(tr.to, t), false
}

// Animator keeps one presented value and at most one in-flight transition per
// key. Starting any render for a key removes its in-flight transition first,
// so animations never queue or compound.
//
// Animator is driven by Tick from the host's frame clock and must only be used
// from the UI goroutine.
type Animator[K comparable] struct {
	now      func() time.Time
	sink     Sink[K]
	current  map[K]entity.PathPair
	inflight map[K]*transition
}

// New creates an animator. now defaults to time.Now.
func New[K comparable](sink Sink[K], now func() time.Time) *Animator[K] {
	if now == nil {
		now = time.Now
	}
	return &Animator[K]{
		now:      now,
		sink:     sink,
		current:  make(map[K]entity.PathPair),
		inflight: make(map[K]*transition),
	}
}

// Apply presents target for key using mode. It returns true when an animation
// was scheduled and the caller should keep delivering frames.
func (a *Animator[K]) Apply(key K, target entity.PathPair, mode entity.RenderMode) bool {
	now := a.now()
	from := a.presentAt(key, now)
	delete(a.inflight, key)

	if !mode.Animated {
		a.present(key, target)
		return false
	}

	a.current[key] = from
	a.inflight[key] = &transition{
		from:     from,
		to:       target.Clone(),
		start:    now,
		duration: mode.Duration,
	}
	return true
}

// Tick advances every in-flight transition to now and reports whether any is
// still running. Finished transitions hold their end value.
func (a *Animator[K]) Tick(now time.Time) bool {
	for key, tr := range a.inflight {
		paths, done := tr.sample(now)
		if done {
			delete(a.inflight, key)
		}
		a.present(key, paths)
	}
	return len(a.inflight) > 0
}

// Cancel removes the in-flight transition of key, freezing the presented value.
func (a *Animator[K]) Cancel(key K) {
	if _, ok := a.inflight[key]; !ok {
		return
	}
	a.current[key] = a.presentAt(key, a.now())
	delete(a.inflight, key)
}

// Presented returns the last value pushed to the sink for key.
func (a *Animator[K]) Presented(key K) entity.PathPair {
	return a.current[key]
}

// Target returns where key is heading: the in-flight target or the presented value.
func (a *Animator[K]) Target(key K) entity.PathPair {
	if tr, ok := a.inflight[key]; ok {
		return tr.to
	}
	return a.current[key]
}

// Animating reports whether key has an in-flight transition.
func (a *Animator[K]) Animating(key K) bool {
	_, ok := a.inflight[key]
	return ok
}

// Running reports whether any key has an in-flight transition.
func (a *Animator[K]) Running() bool {
	return len(a.inflight) > 0
}

func (a *Animator[K]) presentAt(key K, now time.Time) entity.PathPair {
	if tr, ok := a.inflight[key]; ok {
		paths, _ := tr.sample(now)
		return paths
	}
	return a.current[key]
}

func (a *Animator[K]) present(key K, paths entity.PathPair) {
	a.current[key] = paths
	if a.sink != nil {
		a.sink(key, paths)
	}
}
