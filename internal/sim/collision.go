package sim

import (
	"math"

	"github.com/vmatyush/brickstorm/internal/core"
)

// Axis indicates which axis a collision resolves along.
type Axis int

const (
	AxisNone Axis = iota
	AxisX         // Reflect horizontal velocity
	AxisY         // Reflect vertical velocity
)

// Hit is the result of a circle-vs-rectangle test.
type Hit struct {
	Hit      bool
	Axis     Axis
	OverlapX float64
	OverlapY float64
}

// CircleRectHit tests a circle of radius r centered at (cx, cy) against rect.
// The circle center is clamped into the rectangle to find the closest point;
// a squared-distance compare against r² decides the hit. On hit, the per-axis
// overlaps pick the bounce axis: the smaller overlap wins, tie goes to X.
//
// This is a deliberate approximation rather than a swept test; tunneling at
// high speed is absorbed by the pierce mechanic instead of being fixed here.
func CircleRectHit(cx, cy, r float64, rect core.RectF) Hit {
	closestX := core.ClampF(cx, rect.X, rect.Right())
	closestY := core.ClampF(cy, rect.Y, rect.Bottom())

	dx := cx - closestX
	dy := cy - closestY
	if dx*dx+dy*dy > r*r {
		return Hit{}
	}

	overlapX := (r + rect.W/2) - math.Abs(cx-rect.CenterX())
	overlapY := (r + rect.H/2) - math.Abs(cy-rect.CenterY())

	axis := AxisX
	if overlapY < overlapX {
		axis = AxisY
	}

	return Hit{Hit: true, Axis: axis, OverlapX: overlapX, OverlapY: overlapY}
}
