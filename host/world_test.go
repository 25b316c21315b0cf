package host

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/platformkit/motion"
)

func testMap(rows []string) *TileMap {
	m := &TileMap{Width: len(rows[0]), Height: len(rows)}
	for _, row := range rows {
		for _, r := range row {
			switch r {
			case '#':
				m.Tiles = append(m.Tiles, TileSolid)
			case '~':
				m.Tiles = append(m.Tiles, TileIce)
			default:
				m.Tiles = append(m.Tiles, TileEmpty)
			}
		}
	}
	return m
}

// settle steps the world with a constant velocity until a floor contact
// appears or the tick budget runs out.
func settle(t *testing.T, w *World, vel cp.Vector, ticks int) motion.ContactState {
	t.Helper()
	var contact motion.ContactState
	for i := 0; i < ticks && !contact.OnFloor; i++ {
		_, contact = w.MoveAndCollide(vel, 1.0/60)
	}
	return contact
}

func TestWorldFloorContact(t *testing.T) {
	m := testMap([]string{
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"##########",
	})
	w := NewWorld(m, cp.Vector{X: 2 * TileSize, Y: 1 * TileSize}, 24, 48)

	contact := settle(t, w, cp.Vector{Y: 300}, 120)
	if !contact.OnFloor {
		t.Fatal("never touched the floor")
	}
	if got := w.FloorMaterial(); got != MaterialSolid {
		t.Errorf("FloorMaterial = %v, want solid", got)
	}
}

func TestWorldIceMaterial(t *testing.T) {
	m := testMap([]string{
		"..........",
		"..........",
		"~~~~~~~~~~",
	})
	w := NewWorld(m, cp.Vector{X: 2 * TileSize, Y: 0}, 24, 48)

	contact := settle(t, w, cp.Vector{Y: 300}, 120)
	if !contact.OnFloor {
		t.Fatal("never touched the ice")
	}
	if got := w.FloorMaterial(); got != MaterialIce {
		t.Errorf("FloorMaterial = %v, want ice", got)
	}
}

func TestWorldWallContact(t *testing.T) {
	m := testMap([]string{
		".........#",
		".........#",
		".........#",
		"##########",
	})
	w := NewWorld(m, cp.Vector{X: 1 * TileSize, Y: 1 * TileSize}, 24, 48)

	if contact := settle(t, w, cp.Vector{Y: 300}, 120); !contact.OnFloor {
		t.Fatal("never reached the floor")
	}

	var hit bool
	var normal cp.Vector
	for i := 0; i < 300 && !hit; i++ {
		_, contact := w.MoveAndCollide(cp.Vector{X: 200, Y: 10}, 1.0/60)
		if contact.OnWall {
			hit = true
			normal = contact.WallNormal
		}
	}
	if !hit {
		t.Fatal("never touched the wall")
	}
	if normal.X != -1 {
		t.Errorf("wall normal = %v, want pointing back at the character", normal)
	}
}

func TestTileMapAt(t *testing.T) {
	m := testMap([]string{
		".#",
		"~.",
	})
	if got := m.At(1, 0); got != TileSolid {
		t.Errorf("At(1,0) = %v, want solid", got)
	}
	if got := m.At(0, 1); got != TileIce {
		t.Errorf("At(0,1) = %v, want ice", got)
	}
	if got := m.At(-1, 0); got != TileEmpty {
		t.Errorf("At(-1,0) = %v, want empty out of bounds", got)
	}
	if got := m.At(5, 5); got != TileEmpty {
		t.Errorf("At(5,5) = %v, want empty out of bounds", got)
	}
}
