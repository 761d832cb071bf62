package domain

import "time"

// VolumeSource observes the system output volume. Implementations can poll
// an OS mixer, bridge a platform notification, or be driven manually.
type VolumeSource interface {
	// Current returns the present volume scalar in [0, 1].
	Current() (float64, error)

	// Subscribe registers fn to be called on every volume change.
	// The returned cancel function removes the subscription; calling it
	// more than once is harmless. Subscribe reports an error when the
	// underlying mixer cannot be reached.
	Subscribe(fn func(VolumeChange)) (cancel func(), err error)
}

// LifecycleSource reports whether the host application is foreground-active
// and emits transitions between active and background.
type LifecycleSource interface {
	Active() bool
	Subscribe(fn func(Phase)) (cancel func())
}

// LayoutSource supplies the orientation context used when recomputing the
// overlay height. ContainerBarHeight returns 0 when the content has no
// enclosing navigation-bar-style container.
type LayoutSource interface {
	Orientation() Orientation
	Compact() bool
	ContainerBarHeight() float64
}

// Surface is the display capability the controller drives. Implementations
// are thin adapters per UI framework; none of these methods may block.
type Surface interface {
	// Attach presents the overlay above all normal content.
	Attach()

	// Detach removes the overlay. The surface stays configured so a later
	// Attach reappears without a visual glitch.
	Detach()

	// Rest restores the resting (fully visible) opacity and offset.
	// Called after an exit animation so the next Attach starts clean.
	Rest()

	// SetLevels replaces the per-segment fill fractions, each in [0, 1].
	SetLevels(levels []float64)

	// SetHeight sets the overlay height in layout units.
	SetHeight(h float64)

	// Apply installs a new appearance snapshot and triggers a re-render.
	Apply(a Appearance)

	// Animate runs the given transition over d and invokes done exactly
	// once when it completes. A zero duration completes immediately.
	Animate(t Transition, style AnimationStyle, d time.Duration, done func())
}

// Observer receives overlay lifecycle notifications. WillShow fires
// synchronously before the enter animation begins; DidHide fires after the
// overlay is fully gone. Callbacks must not call back into the controller.
type Observer interface {
	WillShow()
	DidHide()
}
