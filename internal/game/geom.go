package game

import "math"

// Side identifies which face of a rectangle a collision resolved against.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Hit describes a resolved circle-rectangle collision: the side the circle
// must be pushed out of, and the closest point on the rectangle to the
// circle center.
type Hit struct {
	Side   Side
	PX, PY float64
}

// ResolveCircleRect tests a circle against a rectangle using the
// closest-point method: the circle center is clamped into the rectangle and
// the side is read off which edge the clamped point landed on. Top and
// bottom are checked before left and right, so corner contacts resolve
// vertically.
func ResolveCircleRect(cx, cy, radius float64, rect Rect) (Hit, bool) {
	px := math.Max(rect.X, math.Min(cx, rect.Right()))
	py := math.Max(rect.Y, math.Min(cy, rect.Bottom()))

	dx := cx - px
	dy := cy - py
	if dx*dx+dy*dy > radius*radius {
		return Hit{}, false
	}

	hit := Hit{PX: px, PY: py}
	switch {
	case py == rect.Y:
		hit.Side = SideTop
	case py == rect.Bottom():
		hit.Side = SideBottom
	case px == rect.X:
		hit.Side = SideLeft
	default:
		hit.Side = SideRight
	}
	return hit, true
}

// CircleNearRect is the proximity test shared by goal and enemy contact
// checks. It measures the circle center against the rectangle center,
// rejects when either axis distance exceeds half-extent plus radius, accepts
// when the center sits over either axis band of the rectangle, and falls
// back to a squared corner-distance check otherwise. More permissive than
// ResolveCircleRect near corners; both goal and enemy checks rely on that.
func CircleNearRect(cx, cy, radius float64, rect Rect) bool {
	dx := math.Abs(cx - rect.CenterX())
	dy := math.Abs(cy - rect.CenterY())

	if dx > rect.W/2+radius {
		return false
	}
	if dy > rect.H/2+radius {
		return false
	}

	if dx <= rect.W/2 || dy <= rect.H/2 {
		return true
	}

	cornerX := dx - rect.W/2
	cornerY := dy - rect.H/2
	return cornerX*cornerX+cornerY*cornerY <= radius*radius
}
