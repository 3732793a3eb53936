package disc

import "time"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Engine is the animation and drag capability bound to one disc element.
// The widget only ever drives the disc through it
//
//counterfeiter:generate . Engine
type Engine interface {
	// NewTimeline creates a paused timeline turning the disc once per period, forever.
	// When counterRotate is set, the disc's items turn the other way so they stay upright
	NewTimeline(period time.Duration, counterRotate bool) (Timeline, error)
	NewDraggable(handlers DragHandlers) (Draggable, error)
}

//counterfeiter:generate . Timeline
type Timeline interface {
	Pause()
	Resume()
	// Progress is the position within the current turn, in [0, 1)
	Progress() float64
	SetProgress(fraction float64)
	SetRate(rate float64)
	// RampRateTo eases the playback rate from its current value to rate over duration
	RampRateTo(rate float64, duration time.Duration)
	Destroy()
}

//counterfeiter:generate . Draggable
type Draggable interface {
	Destroy()
}

// DragHandlers receive the gestures of a rotation drag. Rotations are the
// disc's absolute angle in degrees, accumulated across turns
type DragHandlers struct {
	OnPress   func()
	OnDrag    func(rotation float64)
	OnRelease func()
}

// Player is the optional audio side of the disc
//
//counterfeiter:generate . Player
type Player interface {
	Play(src string)
	Pause()
}
