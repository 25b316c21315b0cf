package motion

// InputSample is an immutable per-tick snapshot of the control signals the
// host's input boundary produced. MoveX is in [-1, 1]; the jump fields are
// edge/level queries for a single jump action.
type InputSample struct {
	MoveX        float64
	JumpPressed  bool
	JumpHeld     bool
	JumpReleased bool
	FastFallHeld bool
}
