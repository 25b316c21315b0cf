package host

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/platformkit/motion"
)

// FlatFloor is an analytic resolver for headless simulation and tests: an
// infinite floor at FloorY, an optional ceiling, and optional walls. It
// moves a point character and reports the same contact flags a geometry
// host would.
type FlatFloor struct {
	FloorY float64

	CeilingY   float64
	HasCeiling bool

	WallX   float64
	HasWall bool

	Pos cp.Vector
}

// NewFlatFloor places a character at start above a floor at floorY.
func NewFlatFloor(floorY float64, start cp.Vector) *FlatFloor {
	return &FlatFloor{FloorY: floorY, Pos: start}
}

// MoveAndCollide integrates position and resolves against the configured
// surfaces. Landing zeroes the vertical velocity the way a geometry host
// would; a ceiling hit stops the position but leaves velocity to the
// responder.
func (f *FlatFloor) MoveAndCollide(vel cp.Vector, dt float64) (cp.Vector, motion.ContactState) {
	var contact motion.ContactState

	f.Pos = f.Pos.Add(vel.Mult(dt))

	if f.HasCeiling && f.Pos.Y < f.CeilingY {
		f.Pos.Y = f.CeilingY
		contact.OnCeiling = true
	}

	if f.Pos.Y >= f.FloorY && vel.Y >= 0 {
		f.Pos.Y = f.FloorY
		vel.Y = 0
		contact.OnFloor = true
	}

	if f.HasWall {
		if vel.X > 0 && f.Pos.X >= f.WallX {
			f.Pos.X = f.WallX
			vel.X = 0
			contact.OnWall = true
			contact.WallNormal = cp.Vector{X: -1}
		} else if vel.X < 0 && f.Pos.X <= -f.WallX {
			f.Pos.X = -f.WallX
			vel.X = 0
			contact.OnWall = true
			contact.WallNormal = cp.Vector{X: 1}
		}
	}

	return vel, contact
}
