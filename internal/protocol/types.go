// Package protocol defines the values the simulation hands to its collaborators:
// frame snapshots for the renderer and catch events for sound and celebrations.
package protocol

import (
	"math"
	"time"
)

// Shape of a falling object
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeStar
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeStar:
		return "star"
	}
	return "unknown"
}

// ObjectState is a falling object as seen by the renderer
type ObjectState struct {
	ID     int
	X      float64
	Y      float64
	Size   float64
	Shape  Shape
	Color  string // hex, e.g. "#ffbe3d"
	Caught bool
}

// Snapshot is a read-only copy of the session after a step
type Snapshot struct {
	Width         float64
	Height        float64
	CatcherX      float64
	CatcherWidth  float64
	CatcherHeight float64
	Objects       []ObjectState
	Score         int
	TimeLeft      time.Duration
	Paused        bool
	GameOver      bool
	TimeUp        bool
	Difficulty    string
	Theme         string
}

// SecondsLeft is the time left rounded up to a whole second, for display.
func (s Snapshot) SecondsLeft() int {
	return int(math.Ceil(s.TimeLeft.Seconds()))
}

// Ready reports whether the playfield has a usable size.
func (s Snapshot) Ready() bool {
	return s.Width > 0 && s.Height > 0
}

// CatchEvent reports that an object was caught at simulation time At
type CatchEvent struct {
	ObjectID int
	At       time.Duration
	Shape    Shape
	Color    string
}
