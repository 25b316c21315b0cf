package motion

import "github.com/jakecoffman/cp"

// Snapshot is a structured telemetry view of the controller for debug
// overlays and tuning tools.
type Snapshot struct {
	Velocity cp.Vector     `json:"velocity"`
	Facing   int           `json:"facing"`
	Regime   string        `json:"regime"`
	HoldTime float64       `json:"hold_time"`

	OnFloor     bool `json:"on_floor"`
	Jumping     bool `json:"jumping"`
	Falling     bool `json:"falling"`
	FastFalling bool `json:"fast_falling"`
	Stomping    bool `json:"stomping"`

	BufferRemaining float64 `json:"buffer_remaining"`
	CoyoteRemaining float64 `json:"coyote_remaining"`
	GraceRemaining  float64 `json:"grace_remaining"`

	HeightRatio float64          `json:"height_ratio"`
	Constants   DerivedConstants `json:"constants"`
}

// Snapshot captures the controller's current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Velocity: c.vel,
		Facing:   c.facing,
		Regime:   c.regime.String(),
		HoldTime: c.session.HoldTime,

		OnFloor:     c.onFloor,
		Jumping:     c.session.Jumping,
		Falling:     c.session.Falling,
		FastFalling: c.session.FastFalling,
		Stomping:    c.session.Stomping,

		BufferRemaining: c.timers.Buffer.Remaining(),
		CoyoteRemaining: c.timers.Coyote.Remaining(),
		GraceRemaining:  c.timers.Grace.Remaining(),

		HeightRatio: c.JumpHeightRatio(),
		Constants:   c.consts,
	}
}
