// Package hud implements the overlay presentation controller: the state
// machine that decides when the volume indicator appears, how long it stays
// up under repeated volume events, and how it animates in and out.
package hud

import (
	"fmt"
	"sync"
	"time"

	"volumehud/internal/domain"
	"volumehud/internal/logger"
	"volumehud/internal/segment"
)

// DefaultHeight is the overlay height, in layout units, before the first
// height recomputation.
const DefaultHeight = 20.0

// statusBarInset is added to the bar height when the overlay sits where the
// status bar would be.
const statusBarInset = 6.0

// Option configures the controller.
type Option func(*Controller)

// WithLayout supplies an orientation/container context for height
// computation. Without it the overlay height is always barHeight plus the
// status-bar inset.
func WithLayout(ls domain.LayoutSource) Option {
	return func(c *Controller) {
		c.layout = ls
	}
}

// Controller owns the overlay's visibility state machine and the hide
// debounce timer. All state mutations are serialized behind one mutex;
// timer and animation callbacks carry a generation token so a stale
// callback arriving after a newer transition is ignored.
type Controller struct {
	cfg       *Config
	surface   domain.Surface
	volume    domain.VolumeSource
	lifecycle domain.LifecycleSource
	layout    domain.LayoutSource
	log       *logger.Logger

	mu            sync.Mutex
	visibility    domain.Visibility
	pendingHideAt time.Time
	observing     bool
	suspended     bool

	hideTimer *time.Timer
	hideSeq   int
	gen       int

	cancelVolume    func()
	cancelLifecycle func()

	observers []domain.Observer
}

// New wires a controller to its collaborators. A nil cfg gets the stock
// defaults. The surface receives the initial appearance and height
// immediately.
func New(cfg *Config, surface domain.Surface, volume domain.VolumeSource, lifecycle domain.LifecycleSource, log *logger.Logger, opts ...Option) *Controller {
	if cfg == nil {
		cfg = NewConfig()
	}
	c := &Controller{
		cfg:        cfg,
		surface:    surface,
		volume:     volume,
		lifecycle:  lifecycle,
		log:        log,
		visibility: domain.Hidden,
	}
	for _, opt := range opts {
		opt(c)
	}
	cfg.setOnChange(c.refresh)
	surface.Apply(cfg.Appearance())
	surface.SetHeight(c.overlayHeight())
	return c
}

// Config returns the controller's configuration.
func (c *Controller) Config() *Config { return c.cfg }

// AddObserver registers an overlay lifecycle observer.
func (c *Controller) AddObserver(o domain.Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// RemoveObserver unregisters a previously added observer.
func (c *Controller) RemoveObserver(o domain.Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.observers {
		if existing == o {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

// Start subscribes to volume changes and lifecycle transitions. Idempotent:
// when already observing it does nothing. A failure to reach the volume
// source is non-fatal — it is logged and reported, the lifecycle
// subscription stays up, and a later Start may succeed.
func (c *Controller) Start() error {
	c.mu.Lock()
	if c.observing {
		c.mu.Unlock()
		return nil
	}
	needLifecycle := c.cancelLifecycle == nil
	c.mu.Unlock()

	if needLifecycle {
		cancel := c.lifecycle.Subscribe(c.onPhase)
		c.mu.Lock()
		c.cancelLifecycle = cancel
		c.mu.Unlock()
	}

	if err := c.subscribeVolume(); err != nil {
		c.log.Error("start: %v", err)
		return err
	}
	c.log.Debug("observing volume changes")
	return nil
}

// Stop unsubscribes from the volume source. Idempotent. The lifecycle
// subscription is kept so Start/Stop semantics survive backgrounding; an
// in-flight hide timer is left to fire harmlessly.
func (c *Controller) Stop() {
	c.mu.Lock()
	cancel := c.cancelVolume
	c.cancelVolume = nil
	c.observing = false
	c.suspended = false
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		c.log.Debug("stopped observing volume changes")
	}
}

// Close stops observation and drops the lifecycle subscription. The
// controller is not usable afterwards.
func (c *Controller) Close() {
	c.Stop()
	c.mu.Lock()
	cancel := c.cancelLifecycle
	c.cancelLifecycle = nil
	c.cancelHideLocked()
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Show presents the overlay, or refreshes it when already up. A no-op while
// the host is not foreground-active: no state change, no timer activity.
// Every call cancels and replaces any pending hide timer, so at most one is
// pending at any instant.
func (c *Controller) Show() {
	if !c.lifecycle.Active() {
		c.log.Debug("show ignored: host not active")
		return
	}

	// The change event is only a trigger; the current level is re-queried.
	level, err := c.volume.Current()
	if err != nil {
		c.log.Warn("show: reading volume: %v", err)
		level = 0
	}

	c.mu.Lock()
	levels := segment.Fill(level, c.cfg.SegmentCount())
	transitioned := c.visibility == domain.Hidden
	var g int
	enter := time.Duration(0)
	if transitioned {
		c.gen++
		g = c.gen
		c.visibility = domain.Showing
		enter = c.cfg.EnterDuration()
	}
	style := c.cfg.AnimationStyle()
	c.scheduleHideLocked(c.cfg.MinimumVisible() + enter)
	obs := c.snapshotObserversLocked()
	c.mu.Unlock()

	c.surface.SetLevels(levels)
	if !transitioned {
		return
	}
	c.surface.Attach()
	for _, o := range obs {
		o.WillShow()
	}
	c.surface.Animate(domain.TransitionEnter, style, enter, func() { c.enterDone(g) })
}

// Hide animates the overlay out and detaches it. Runs regardless of the
// current state; hiding an already hidden overlay re-runs the animation
// harmlessly.
func (c *Controller) Hide() {
	c.mu.Lock()
	c.cancelHideLocked()
	c.gen++
	g := c.gen
	c.visibility = domain.Hiding
	// The exit runs at the full configured duration for both styles.
	d := c.cfg.AnimationDuration()
	style := c.cfg.AnimationStyle()
	c.mu.Unlock()

	c.surface.Animate(domain.TransitionExit, style, d, func() { c.exitDone(g) })
}

// UpdateHeight recomputes the overlay height from the configuration and the
// layout context and pushes it to the surface.
func (c *Controller) UpdateHeight() {
	c.surface.SetHeight(c.overlayHeight())
}

// Visibility returns the current state-machine position.
func (c *Controller) Visibility() domain.Visibility {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibility
}

// Observing reports whether the controller is subscribed to the volume
// source.
func (c *Controller) Observing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.observing
}

// Suspended reports whether observation was auto-stopped by a background
// transition and will auto-resume on foreground.
func (c *Controller) Suspended() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suspended
}

// PendingHideAt returns when the pending hide timer fires, or the zero time
// when none is scheduled.
func (c *Controller) PendingHideAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingHideAt
}

// ── Event handlers ───────────────────────────────────────────────

func (c *Controller) onVolumeChange(ev domain.VolumeChange) {
	// Both directions trigger display; the payload is otherwise unused.
	c.log.Debug("volume %0.4f -> %0.4f", ev.Old, ev.New)
	c.Show()
}

func (c *Controller) onPhase(p domain.Phase) {
	switch p {
	case domain.PhaseBackground:
		c.collapseToBackground()
	case domain.PhaseActive:
		c.resumeFromBackground()
	}
}

// collapseToBackground hides immediately (no animation), cancels the hide
// timer, and suspends observation if it was running.
func (c *Controller) collapseToBackground() {
	c.mu.Lock()
	cancel := c.cancelVolume
	c.cancelVolume = nil
	if c.observing {
		c.observing = false
		c.suspended = true
	}
	c.cancelHideLocked()
	wasUp := c.visibility != domain.Hidden
	c.gen++
	c.visibility = domain.Hidden
	obs := c.snapshotObserversLocked()
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if wasUp {
		c.surface.Detach()
		for _, o := range obs {
			o.DidHide()
		}
		c.surface.Rest()
	}
	c.log.Debug("host resigned active, overlay collapsed")
}

// resumeFromBackground restores observation if backgrounding suspended it.
// Visibility is untouched; the overlay reappears on the next volume event.
func (c *Controller) resumeFromBackground() {
	c.mu.Lock()
	resume := c.suspended && !c.observing
	c.suspended = false
	c.mu.Unlock()

	if !resume {
		return
	}
	if err := c.subscribeVolume(); err != nil {
		c.log.Error("resume: %v", err)
		return
	}
	c.log.Debug("host became active, observation resumed")
}

func (c *Controller) enterDone(g int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if g != c.gen || c.visibility != domain.Showing {
		return
	}
	c.visibility = domain.Visible
}

func (c *Controller) exitDone(g int) {
	c.mu.Lock()
	if g != c.gen {
		c.mu.Unlock()
		return
	}
	c.visibility = domain.Hidden
	obs := c.snapshotObserversLocked()
	c.mu.Unlock()

	c.surface.Detach()
	for _, o := range obs {
		o.DidHide()
	}
	// Back to resting values so the next Attach appears without a glitch.
	c.surface.Rest()
}

// refresh is invoked by the configuration after every successful write.
func (c *Controller) refresh() {
	c.surface.Apply(c.cfg.Appearance())
	c.UpdateHeight()

	c.mu.Lock()
	up := c.visibility != domain.Hidden
	c.mu.Unlock()
	if !up {
		return
	}
	if level, err := c.volume.Current(); err == nil {
		c.surface.SetLevels(segment.Fill(level, c.cfg.SegmentCount()))
	}
}

// ── Internals ────────────────────────────────────────────────────

func (c *Controller) subscribeVolume() error {
	cancel, err := c.volume.Subscribe(c.onVolumeChange)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	c.mu.Lock()
	c.cancelVolume = cancel
	c.observing = true
	c.mu.Unlock()
	return nil
}

// scheduleHideLocked replaces any pending hide timer with a fresh one.
// Callers hold c.mu.
func (c *Controller) scheduleHideLocked(d time.Duration) {
	if c.hideTimer != nil {
		c.hideTimer.Stop()
	}
	c.hideSeq++
	seq := c.hideSeq
	c.pendingHideAt = time.Now().Add(d)
	c.hideTimer = time.AfterFunc(d, func() { c.hideFired(seq) })
}

// cancelHideLocked stops the pending hide timer and invalidates any fire
// already in flight. Callers hold c.mu.
func (c *Controller) cancelHideLocked() {
	if c.hideTimer != nil {
		c.hideTimer.Stop()
		c.hideTimer = nil
	}
	c.hideSeq++
	c.pendingHideAt = time.Time{}
}

func (c *Controller) hideFired(seq int) {
	c.mu.Lock()
	if seq != c.hideSeq {
		c.mu.Unlock()
		return
	}
	c.pendingHideAt = time.Time{}
	c.hideTimer = nil
	c.mu.Unlock()
	c.Hide()
}

// snapshotObserversLocked copies the observer list so notifications run
// outside the mutex. Callers hold c.mu.
func (c *Controller) snapshotObserversLocked() []domain.Observer {
	if len(c.observers) == 0 {
		return nil
	}
	return append([]domain.Observer(nil), c.observers...)
}

// overlayHeight applies the height rules: barHeight plus the status-bar
// inset, except in landscape with a navigation-bar-style container, where
// the container's bar height wins. Compact devices never show a status bar
// in landscape, whatever the hint says.
func (c *Controller) overlayHeight() float64 {
	hidden := c.cfg.StatusBarHidden()
	if c.layout != nil {
		landscape := c.layout.Orientation() == domain.Landscape
		if c.layout.Compact() && landscape {
			hidden = true
		}
		if !hidden && landscape {
			if ch := c.layout.ContainerBarHeight(); ch > 0 {
				return ch
			}
		}
	}
	return c.cfg.BarHeight() + statusBarInset
}
