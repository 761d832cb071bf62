// Package domain defines the core types and collaborator ports for the
// volume overlay. The controller depends only on these interfaces and is
// fully testable with mocks.
package domain

// AnimationStyle selects how the overlay enters and exits the screen.
type AnimationStyle int

const (
	// StyleSlide slides the bar in from its hidden offset.
	StyleSlide AnimationStyle = iota
	// StyleFade cross-fades the bar. The enter transition is instant;
	// only the exit is animated.
	StyleFade
)

// String returns the style name for logs and config files.
func (s AnimationStyle) String() string {
	switch s {
	case StyleSlide:
		return "slide"
	case StyleFade:
		return "fade"
	default:
		return "unknown"
	}
}

// Visibility is the overlay's position in the show/hide state machine.
// Showing and Hiding are the transient animation phases.
type Visibility int

const (
	Hidden Visibility = iota
	Showing
	Visible
	Hiding
)

// String returns the visibility name for logs and test failures.
func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Showing:
		return "showing"
	case Visible:
		return "visible"
	case Hiding:
		return "hiding"
	default:
		return "unknown"
	}
}

// Phase is an application-lifecycle transition.
type Phase int

const (
	// PhaseActive means the host is foreground and interactive.
	PhaseActive Phase = iota
	// PhaseBackground means the host resigned active.
	PhaseBackground
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseActive {
		return "active"
	}
	return "background"
}

// Orientation is the coarse orientation class of the host viewport.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// Transition identifies the direction of a surface animation.
type Transition int

const (
	TransitionEnter Transition = iota
	TransitionExit
)

// VolumeChange is emitted by a VolumeSource whenever the hardware volume
// moves. Both values are scalars in [0, 1]. The controller treats the
// event purely as a trigger and re-queries the current level itself.
type VolumeChange struct {
	Old float64
	New float64
}

// Appearance is a snapshot of the presentational configuration, pushed to
// the surface whenever a setting changes.
type Appearance struct {
	Style        AnimationStyle
	BarHeight    float64
	SegmentCount int
	Spacing      float64
	Tint         string
	Track        string
	Background   string
}
