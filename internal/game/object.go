package game

import (
	"time"

	"github.com/nehah091/basket-dash/internal/protocol"
)

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes share interior area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// FallingObject is one shape in flight, or briefly lingering after a catch.
type FallingObject struct {
	ID       int
	X, Y     float64
	Size     float64
	Shape    protocol.Shape
	Color    string
	Speed    float64 // px/s
	Caught   bool
	CaughtAt time.Duration
}

// Fall advances the object by dt seconds.
func (o *FallingObject) Fall(dt float64) {
	o.Y += o.Speed * dt
}

// Bounds returns the object's box.
func (o *FallingObject) Bounds() Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Size, H: o.Size}
}

// Catch marks the object caught at the given simulation time.
// It returns false if the object was already caught.
func (o *FallingObject) Catch(at time.Duration) bool {
	if o.Caught {
		return false
	}
	o.Caught = true
	o.CaughtAt = at
	return true
}

// Expired reports whether the object should leave the live set at time now:
// caught objects after their linger window, missed ones once below the field.
func (o *FallingObject) Expired(now time.Duration, fieldHeight float64) bool {
	if o.Caught {
		return now-o.CaughtAt >= CaughtLinger
	}
	return o.Y > fieldHeight
}

func (o *FallingObject) toProtocol() protocol.ObjectState {
	return protocol.ObjectState{
		ID:     o.ID,
		X:      o.X,
		Y:      o.Y,
		Size:   o.Size,
		Shape:  o.Shape,
		Color:  o.Color,
		Caught: o.Caught,
	}
}
