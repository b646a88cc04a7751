// Package sections tracks which home page section is currently in view.
package sections

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Registry resolves anchor ids to rendered sections.
type Registry interface {
	// Offset returns the absolute page offset of the section, or false when
	// the section is not rendered.
	Offset(id string) (float64, bool)
}

// OffsetMap is a Registry over fixed offsets.
type OffsetMap map[string]float64

func (m OffsetMap) Offset(id string) (float64, bool) {
	off, ok := m[id]
	return off, ok
}

// Entry reports a section's intersection with the trigger zone.
type Entry struct {
	ID           string
	Intersecting bool
}

// Observer is an installed intersection observer.
type Observer interface {
	Disconnect()
}

// Viewport delivers scroll and visibility events.
type Viewport interface {
	OnScroll(fn func(scrollY float64)) (remove func())
	ObserveIntersections(m Margins, ids []string, fn func([]Entry)) Observer
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// Tracker keeps exactly one active anchor for nav highlighting. Scroll and
// visibility callbacks may interleave; whichever runs last wins.
type Tracker struct {
	registry Registry
	viewport Viewport
	settings Settings
	logger   *zap.Logger

	// OnChange, when set, is called after the active anchor changes. It is
	// never running once Dispose has returned, so it must not call Dispose.
	OnChange func(id string)

	// notifyMu serializes OnChange against Dispose.
	notifyMu     sync.Mutex
	mu           sync.Mutex
	active       string
	started      bool
	disposed     bool
	intersecting map[string]bool
	removeScroll func()
	stopAttach   func() bool
	observer     Observer
}

// New returns a tracker that has not been started.
func New(registry Registry, viewport Viewport, settings Settings, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		registry:     registry,
		viewport:     viewport,
		settings:     settings,
		logger:       logger,
		active:       Home,
		intersecting: make(map[string]bool),
	}
}

// Active returns the current anchor id.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Start installs the signals for a home layout. Any other layout pins the
// active anchor to Projects and installs nothing. Start is a no-op after the
// first call.
func (t *Tracker) Start(layout Layout) {
	t.mu.Lock()
	if t.started || t.disposed {
		t.mu.Unlock()
		return
	}
	t.started = true
	t.active = InitialActive(layout)
	t.mu.Unlock()

	if layout != LayoutHome {
		return
	}

	remove := t.viewport.OnScroll(t.handleScroll)
	stop := t.viewport.AfterFunc(t.settings.AttachDelay, t.attach)

	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		stop()
		remove()
		return
	}
	t.removeScroll, t.stopAttach = remove, stop
	t.mu.Unlock()
}

func (t *Tracker) attach() {
	ids := make([]string, 0, len(Anchors))
	for _, a := range Anchors {
		if _, ok := t.registry.Offset(a.ID); !ok {
			t.logger.Warn("section not rendered, not observing", zap.String("anchor", a.ID))
			continue
		}
		ids = append(ids, a.ID)
	}

	t.mu.Lock()
	disposed := t.disposed
	t.mu.Unlock()
	if disposed {
		return
	}

	obs := t.viewport.ObserveIntersections(t.settings.Margins, ids, t.handleIntersections)

	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		obs.Disconnect()
		return
	}
	t.observer = obs
	t.mu.Unlock()
}

func (t *Tracker) handleIntersections(entries []Entry) {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}
	next := ""
	for _, e := range entries {
		was := t.intersecting[e.ID]
		t.intersecting[e.ID] = e.Intersecting
		if e.Intersecting && !was {
			next = e.ID
		}
	}
	changed := t.setLocked(next)
	t.mu.Unlock()
	t.notify(changed)
}

func (t *Tracker) handleScroll(scrollY float64) {
	probe := scrollY + t.settings.ProbeOffset
	next := ""
	for i := len(Anchors) - 1; i >= 0; i-- {
		id := Anchors[i].ID
		off, ok := t.registry.Offset(id)
		if !ok {
			t.logger.Warn("section not rendered, skipping", zap.String("anchor", id))
			continue
		}
		if off <= probe {
			next = id
			break
		}
	}

	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}
	changed := t.setLocked(next)
	t.mu.Unlock()
	t.notify(changed)
}

// setLocked returns the new id when the active anchor changed.
func (t *Tracker) setLocked(id string) string {
	if id == "" || id == t.active {
		return ""
	}
	t.active = id
	return id
}

func (t *Tracker) notify(id string) {
	if id == "" || t.OnChange == nil {
		return
	}
	t.notifyMu.Lock()
	defer t.notifyMu.Unlock()
	t.mu.Lock()
	disposed := t.disposed
	t.mu.Unlock()
	if disposed {
		return
	}
	t.OnChange(id)
}

// Dispose removes every listener, observer and pending timer. It waits for an
// OnChange already in flight; callbacks that arrive afterwards are ignored.
// Dispose is idempotent.
func (t *Tracker) Dispose() {
	t.notifyMu.Lock()
	defer t.notifyMu.Unlock()

	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}
	t.disposed = true
	stop, remove, obs := t.stopAttach, t.removeScroll, t.observer
	t.stopAttach, t.removeScroll, t.observer = nil, nil, nil
	t.mu.Unlock()

	if stop != nil {
		stop()
	}
	if remove != nil {
		remove()
	}
	if obs != nil {
		obs.Disconnect()
	}
}
