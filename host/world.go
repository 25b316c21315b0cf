// Package host resolves proposed character velocities against world
// geometry and reports contact flags back to the motion core.
package host

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/platformkit/motion"
)

// TileSize is the side length of one tile in pixels.
const TileSize = 32

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeCharacter
)

// Material identifies what kind of surface a tile presents.
type Material int

const (
	MaterialNone Material = iota
	MaterialSolid
	MaterialIce
)

// Tile values in a TileMap.
const (
	TileEmpty = 0
	TileSolid = 1
	TileIce   = 2
)

// TileMap is a row-major grid of tile values.
type TileMap struct {
	Width  int
	Height int
	Tiles  []int
}

// At returns the tile value at (x, y), or TileEmpty out of bounds.
func (m *TileMap) At(x, y int) int {
	if m == nil || x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return TileEmpty
	}
	return m.Tiles[y*m.Width+x]
}

// World owns the Chipmunk space, the static tile shapes, and the character
// body. The space carries no gravity of its own; the motion core integrates
// gravity and the world only resolves the resulting velocity.
type World struct {
	space *cp.Space
	body  *cp.Body
	shape *cp.Shape

	materials map[*cp.Shape]Material

	contact  motion.ContactState
	floorMat Material
}

// NewWorld builds a collision world for the tile map with a character body
// of the given size spawned at pos (top-left corner in pixels).
func NewWorld(tiles *TileMap, pos cp.Vector, width, height float64) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	w := &World{
		space:     space,
		materials: make(map[*cp.Shape]Material),
	}
	w.buildStaticShapes(tiles)

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: pos.X + width/2, Y: pos.Y + height/2})
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeCharacter)
	space.AddBody(body)
	space.AddShape(shape)

	w.body = body
	w.shape = shape
	w.setupHandlers()
	return w
}

// MoveAndCollide applies the proposed velocity, steps the space one tick,
// and returns the resolved velocity plus the contacts touched during the
// step.
func (w *World) MoveAndCollide(vel cp.Vector, dt float64) (cp.Vector, motion.ContactState) {
	w.contact = motion.ContactState{}
	w.floorMat = MaterialNone

	w.body.SetVelocityVector(vel)
	w.space.Step(dt)

	return w.body.Velocity(), w.contact
}

// Position returns the character's center position.
func (w *World) Position() cp.Vector {
	return w.body.Position()
}

// SetPosition teleports the character, clearing velocity.
func (w *World) SetPosition(p cp.Vector) {
	w.body.SetPosition(p)
	w.body.SetVelocityVector(cp.Vector{})
}

// FloorMaterial reports the material under the character's feet during the
// last step, for terrain friction overrides.
func (w *World) FloorMaterial() Material {
	return w.floorMat
}

func (w *World) buildStaticShapes(tiles *TileMap) {
	if tiles == nil {
		return
	}

	// Merge horizontal runs of the same material into single boxes to keep
	// the shape count down and avoid internal-edge catching.
	for y := 0; y < tiles.Height; y++ {
		x := 0
		for x < tiles.Width {
			v := tiles.At(x, y)
			if v == TileEmpty {
				x++
				continue
			}
			run := 1
			for x+run < tiles.Width && tiles.At(x+run, y) == v {
				run++
			}

			bb := cp.BB{
				L: float64(x * TileSize),
				B: float64(y * TileSize),
				R: float64((x + run) * TileSize),
				T: float64((y + 1) * TileSize),
			}
			shape := cp.NewBox2(w.space.StaticBody, bb, 0)
			shape.SetFriction(0)
			shape.SetElasticity(0)
			shape.SetCollisionType(collisionTypeSolid)
			w.space.AddShape(shape)

			mat := MaterialSolid
			if v == TileIce {
				mat = MaterialIce
			}
			w.materials[shape] = mat

			x += run
		}
	}
}

func (w *World) setupHandlers() {
	handler := w.space.NewCollisionHandler(collisionTypeCharacter, collisionTypeSolid)
	handler.UserData = w
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return true
		}

		shapeA, shapeB := arb.Shapes()
		solid := shapeB
		n := arb.Normal()
		if shapeB == world.shape {
			solid = shapeA
			n = n.Neg()
		}

		// n points from the character into the surface; screen space is
		// y-down, so a floor contact points down.
		switch {
		case n.Y > 0.5:
			world.contact.OnFloor = true
			if mat, ok := world.materials[solid]; ok {
				world.floorMat = mat
			}
		case n.Y < -0.5:
			world.contact.OnCeiling = true
		}
		if math.Abs(n.X) > 0.5 {
			world.contact.OnWall = true
			world.contact.WallNormal = cp.Vector{X: -n.X}
		}
		return true
	}
}
