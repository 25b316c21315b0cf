package motion

import "github.com/jakecoffman/cp"

// ContactState is what the host's collision resolver reports back after
// moving the character: which surfaces were touched this tick and, for
// walls, the surface normal pointing away from the wall.
type ContactState struct {
	OnFloor    bool
	OnCeiling  bool
	OnWall     bool
	WallNormal cp.Vector
}
