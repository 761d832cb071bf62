package hud

import (
	"sync"
	"time"

	"volumehud/internal/domain"
)

// StatusBarStyle is the host status-bar appearance hint. Purely
// presentational; forwarded to the surface, never interpreted here.
type StatusBarStyle int

const (
	StatusBarDefault StatusBarStyle = iota
	StatusBarLight
	StatusBarDark
)

// Config holds every tunable of the overlay. All fields are readable and
// writable at any time; a successful write triggers a re-render of the
// surface and never blocks. Writes are validated at this boundary so the
// renderer can assume well-formed values.
type Config struct {
	mu sync.Mutex

	style           domain.AnimationStyle
	animation       time.Duration
	minimumVisible  time.Duration
	segmentCount    int
	spacing         float64
	barHeight       float64
	tint            string
	track           string
	background      string
	statusBarHidden bool
	statusBarStyle  StatusBarStyle

	// onChange is installed by the controller; invoked after every
	// successful write, outside the lock.
	onChange func()
}

// NewConfig returns a Config with the stock defaults: a sliding bar of 16
// continuous segments that stays up for two seconds.
func NewConfig() *Config {
	return &Config{
		style:          domain.StyleSlide,
		animation:      300 * time.Millisecond,
		minimumVisible: 2 * time.Second,
		segmentCount:   16,
		spacing:        0,
		barHeight:      8,
		tint:           "#fafafa",
		track:          "#52525b",
		background:     "#18181b",
	}
}

// SetAnimationStyle selects slide or fade transitions.
func (c *Config) SetAnimationStyle(s domain.AnimationStyle) {
	c.mu.Lock()
	c.style = s
	c.mu.Unlock()
	c.notify()
}

// AnimationStyle returns the current transition style.
func (c *Config) AnimationStyle() domain.AnimationStyle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.style
}

// SetAnimationDuration sets how long enter/exit transitions run. Rejects
// negative durations.
func (c *Config) SetAnimationDuration(d time.Duration) error {
	if d < 0 {
		return domain.ErrInvalidDuration
	}
	c.mu.Lock()
	c.animation = d
	c.mu.Unlock()
	c.notify()
	return nil
}

// AnimationDuration returns the transition duration.
func (c *Config) AnimationDuration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.animation
}

// EnterDuration returns the effective enter-animation duration: zero when
// the style is fade, which shows instantly.
func (c *Config) EnterDuration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.style == domain.StyleFade {
		return 0
	}
	return c.animation
}

// SetMinimumVisible sets how long the overlay must stay fully visible once
// shown. Rejects negative durations.
func (c *Config) SetMinimumVisible(d time.Duration) error {
	if d < 0 {
		return domain.ErrInvalidDuration
	}
	c.mu.Lock()
	c.minimumVisible = d
	c.mu.Unlock()
	c.notify()
	return nil
}

// MinimumVisible returns the minimum visible duration.
func (c *Config) MinimumVisible() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minimumVisible
}

// SetSegmentCount sets the number of fill segments. Counts below 1 are
// rejected so layout never divides by zero.
func (c *Config) SetSegmentCount(n int) error {
	if n < 1 {
		return domain.ErrInvalidSegmentCount
	}
	c.mu.Lock()
	c.segmentCount = n
	c.mu.Unlock()
	c.notify()
	return nil
}

// SegmentCount returns the segment count.
func (c *Config) SegmentCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.segmentCount
}

// SetSpacing sets the gap between segments. Zero yields a continuous bar.
func (c *Config) SetSpacing(s float64) error {
	if s < 0 {
		return domain.ErrInvalidSpacing
	}
	c.mu.Lock()
	c.spacing = s
	c.mu.Unlock()
	c.notify()
	return nil
}

// Spacing returns the inter-segment spacing.
func (c *Config) Spacing() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spacing
}

// SetBarHeight sets the bar height in layout units. Must be positive.
func (c *Config) SetBarHeight(h float64) error {
	if h <= 0 {
		return domain.ErrInvalidBarHeight
	}
	c.mu.Lock()
	c.barHeight = h
	c.mu.Unlock()
	c.notify()
	return nil
}

// BarHeight returns the bar height.
func (c *Config) BarHeight() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.barHeight
}

// SetTint sets the lit-segment color.
func (c *Config) SetTint(color string) {
	c.mu.Lock()
	c.tint = color
	c.mu.Unlock()
	c.notify()
}

// SetTrack sets the unlit-track color.
func (c *Config) SetTrack(color string) {
	c.mu.Lock()
	c.track = color
	c.mu.Unlock()
	c.notify()
}

// SetBackground sets the overlay background color.
func (c *Config) SetBackground(color string) {
	c.mu.Lock()
	c.background = color
	c.mu.Unlock()
	c.notify()
}

// SetStatusBarHidden sets the status-bar-hidden layout hint.
func (c *Config) SetStatusBarHidden(hidden bool) {
	c.mu.Lock()
	c.statusBarHidden = hidden
	c.mu.Unlock()
	c.notify()
}

// StatusBarHidden returns the status-bar-hidden hint.
func (c *Config) StatusBarHidden() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusBarHidden
}

// SetStatusBarStyle sets the status-bar appearance hint.
func (c *Config) SetStatusBarStyle(s StatusBarStyle) {
	c.mu.Lock()
	c.statusBarStyle = s
	c.mu.Unlock()
	c.notify()
}

// StatusBarStyle returns the status-bar appearance hint.
func (c *Config) StatusBarStyle() StatusBarStyle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusBarStyle
}

// Appearance returns a snapshot of the presentational settings for the
// surface.
func (c *Config) Appearance() domain.Appearance {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Appearance{
		Style:        c.style,
		BarHeight:    c.barHeight,
		SegmentCount: c.segmentCount,
		Spacing:      c.spacing,
		Tint:         c.tint,
		Track:        c.track,
		Background:   c.background,
	}
}

func (c *Config) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (c *Config) setOnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}
