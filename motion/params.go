package motion

// TickRate is the fixed simulation rate all tick-count parameters assume.
const TickRate = 60.0

// TimingParameters are the designer-facing inputs for character movement.
// Durations are integer tick counts at TickRate; speeds and distances are in
// pixels and pixels/second. Zero or negative tick counts are clamped to one
// tick at compile time so they can never divide to NaN or Inf.
type TimingParameters struct {
	TerminalHorizontalSpeed float64 `yaml:"terminal_horizontal_speed"`
	TerminalVerticalSpeed   float64 `yaml:"terminal_vertical_speed"`
	MaxMovingSpeed          float64 `yaml:"max_moving_speed"`

	TimeToMaxSpeedTicks int `yaml:"time_to_max_speed"`
	TimeToTurnTicks     int `yaml:"time_to_turn"`
	TimeToStopTicks     int `yaml:"time_to_stop"`
	AirTimeToMaxTicks   int `yaml:"air_control_time_to_max"`
	AirTimeToStopTicks  int `yaml:"air_friction_time_to_stop"`

	MaxJumpHeight       float64 `yaml:"max_jump_height"`
	JumpTimeToPeakTicks int     `yaml:"jump_time_to_peak"`
	JumpTimeToFallTicks int     `yaml:"jump_time_to_fall"`
	GravityMultiplier   float64 `yaml:"gravity_multiplier"`

	ApexThreshold         float64 `yaml:"apex_threshold"`
	JumpCutoffMultiplier  float64 `yaml:"jump_cutoff_multiplier"`
	FastFallMultiplier    float64 `yaml:"fast_fall_multiplier"`
	VariableFastFallSpeed float64 `yaml:"variable_fast_fall_speed"`
	StompBounceVelocity   float64 `yaml:"stomp_bounce_velocity"`

	RunningHorizontalBoost float64 `yaml:"running_horizontal_boost"`
	HeadBumpRebound        float64 `yaml:"head_bump_rebound"`

	InputBufferTicks int `yaml:"input_buffer_frames"`
	CoyoteTicks      int `yaml:"coyote_frames"`
	GraceTicks       int `yaml:"grace_frames"`
	ShortHopTicks    int `yaml:"short_hop_frames"`
	TapVsHoldTicks   int `yaml:"tap_vs_hold_frames"`

	VariableJumpEnabled      bool `yaml:"variable_jump_enabled"`
	DynamicGravityTransition bool `yaml:"dynamic_gravity_transition"`
}

// DerivedConstants are the per-second physical constants compiled from
// TimingParameters. Accelerations and gravities are in pixels/second²,
// InitialJumpVelocity in pixels/second.
type DerivedConstants struct {
	ForwardAccel float64
	TurnAccel    float64
	Friction     float64
	AirAccel     float64
	AirFriction  float64

	UpGravity           float64
	DownGravity         float64
	InitialJumpVelocity float64
}

// Seconds converts a tick count into seconds at TickRate.
func Seconds(ticks int) float64 {
	return float64(ticks) / TickRate
}

func minTicks(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Normalize returns a copy with every tick-count parameter clamped to at
// least one tick and the gravity multiplier defaulted to 1 when unset.
func (p TimingParameters) Normalize() TimingParameters {
	p.TimeToMaxSpeedTicks = minTicks(p.TimeToMaxSpeedTicks)
	p.TimeToTurnTicks = minTicks(p.TimeToTurnTicks)
	p.TimeToStopTicks = minTicks(p.TimeToStopTicks)
	p.AirTimeToMaxTicks = minTicks(p.AirTimeToMaxTicks)
	p.AirTimeToStopTicks = minTicks(p.AirTimeToStopTicks)
	p.JumpTimeToPeakTicks = minTicks(p.JumpTimeToPeakTicks)
	p.JumpTimeToFallTicks = minTicks(p.JumpTimeToFallTicks)
	p.InputBufferTicks = minTicks(p.InputBufferTicks)
	p.CoyoteTicks = minTicks(p.CoyoteTicks)
	p.GraceTicks = minTicks(p.GraceTicks)
	p.ShortHopTicks = minTicks(p.ShortHopTicks)
	p.TapVsHoldTicks = minTicks(p.TapVsHoldTicks)
	if p.GravityMultiplier == 0 {
		p.GravityMultiplier = 1
	}
	if p.MaxMovingSpeed < p.TerminalHorizontalSpeed {
		p.MaxMovingSpeed = p.TerminalHorizontalSpeed
	}
	return p
}

// Compile converts designer timings into physical constants. It is a pure
// function; callers invoke it explicitly whenever parameters change rather
// than relying on setter side effects.
//
// Gravity follows from h = ½·g·t² at the apex, so g = 2h/t² and the launch
// velocity is v₀ = g·t.
func Compile(p TimingParameters) DerivedConstants {
	p = p.Normalize()

	timeToPeak := Seconds(p.JumpTimeToPeakTicks)
	timeToFall := Seconds(p.JumpTimeToFallTicks)

	up := p.GravityMultiplier * 2 * p.MaxJumpHeight / (timeToPeak * timeToPeak)
	down := p.GravityMultiplier * 2 * p.MaxJumpHeight / (timeToFall * timeToFall)

	return DerivedConstants{
		ForwardAccel: p.TerminalHorizontalSpeed / Seconds(p.TimeToMaxSpeedTicks),
		TurnAccel:    2 * p.TerminalHorizontalSpeed / Seconds(p.TimeToTurnTicks),
		Friction:     p.TerminalHorizontalSpeed / Seconds(p.TimeToStopTicks),
		AirAccel:     p.TerminalHorizontalSpeed / Seconds(p.AirTimeToMaxTicks),
		AirFriction:  p.TerminalHorizontalSpeed / Seconds(p.AirTimeToStopTicks),

		UpGravity:           up,
		DownGravity:         down,
		InitialJumpVelocity: up * timeToPeak,
	}
}
