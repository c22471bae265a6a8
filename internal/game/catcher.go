package game

import "math"

// Catcher is the player's basket. X is its left edge, VX its velocity in px/s.
type Catcher struct {
	X     float64
	VX    float64
	Width float64
	// Height is the band at the bottom of the field the basket occupies.
	Height float64
}

func NewCatcher() *Catcher {
	return &Catcher{
		Width:  CatcherWidth,
		Height: CatcherHeight,
	}
}

// Center puts the catcher in the middle of a field of the given width and stops it.
func (c *Catcher) Center(fieldWidth float64) {
	x := math.Floor((fieldWidth - c.Width) / 2)
	c.X = math.Max(0, x)
	c.VX = 0
}

// MaxX is the rightmost left-edge position inside a field of the given width.
func (c *Catcher) MaxX(fieldWidth float64) float64 {
	return math.Max(0, fieldWidth-c.Width)
}

// Move advances the catcher by dt seconds.
//
// Left and right are independent: holding both applies both kicks and both
// accelerations, so they cancel out arithmetically instead of one winning.
func (c *Catcher) Move(left, right bool, dt float64, p Profile, fieldWidth float64) {
	vx := c.VX

	if left {
		if math.Abs(vx) < p.MinStart {
			vx = -p.MinStart
		}
		vx -= p.Accel * dt
	}
	if right {
		if math.Abs(vx) < p.MinStart {
			vx = p.MinStart
		}
		vx += p.Accel * dt
	}

	if !left && !right {
		if vx > 0 {
			vx = math.Max(0, vx-p.Friction*dt)
		} else if vx < 0 {
			vx = math.Min(0, vx+p.Friction*dt)
		}
	}

	vx = clamp(vx, -p.MaxSpeed, p.MaxSpeed)

	maxX := c.MaxX(fieldWidth)
	x := clamp(c.X+vx*dt, 0, maxX)

	// Parked on an edge: drop velocity so the basket doesn't jitter into the wall
	if x <= 0 || x >= maxX {
		vx = 0
	}

	c.X = x
	c.VX = vx
}

// Top returns the y of the catcher's top edge in a field of the given height.
func (c *Catcher) Top(fieldHeight float64) float64 {
	return fieldHeight - c.Height
}

// Bounds returns the catcher's box in a field of the given height.
func (c *Catcher) Bounds(fieldHeight float64) Rect {
	return Rect{X: c.X, Y: c.Top(fieldHeight), W: c.Width, H: c.Height}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
