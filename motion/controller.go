package motion

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/platformkit/common"
	"github.com/milk9111/platformkit/curve"
)

// Momentum thresholds as fractions of terminal horizontal speed: at or above
// runningThreshold the launch counts as a running jump; at or above
// boostThreshold it also earns the one-time horizontal boost. Leaving the
// ground faster than graceThreshold grants the extended grace window.
const (
	runningThreshold = 0.7
	boostThreshold   = 0.9
	graceThreshold   = 0.8
)

// jumpSession tracks the state of one jump from launch to landing.
type jumpSession struct {
	HoldTime     float64
	TakeoffSpeed float64
	Jumping      bool
	Falling      bool
	FastFalling  bool
	Stomping     bool
}

// Controller owns per-character movement state and drives the per-tick
// update. It exclusively proposes velocities; the host applies them against
// world geometry and reports back the resolved velocity and contact flags.
// One controller instance per character, mutated only within its own tick.
type Controller struct {
	params TimingParameters
	consts DerivedConstants
	height curve.Curve

	timers  TimerSet
	session jumpSession
	vel     cp.Vector
	// proposed is the velocity handed to the host this tick, kept so landing
	// can report the pre-resolution impact speed.
	proposed cp.Vector

	facing     int
	onFloor    bool
	wasOnFloor bool
	regime     GravityRegime

	terrainFriction float64

	events EventQueue
}

// Option configures a Controller.
type Option func(*Controller)

// WithHeightCurve replaces the default jump-height curve.
func WithHeightCurve(c curve.Curve) Option {
	return func(ctrl *Controller) {
		if c != nil {
			ctrl.height = c
		}
	}
}

// NewController compiles the given parameters and returns a controller in
// the grounded idle state, facing right.
func NewController(params TimingParameters, opts ...Option) *Controller {
	params = params.Normalize()
	c := &Controller{
		params:     params,
		consts:     Compile(params),
		height:     curve.Default(),
		facing:     1,
		onFloor:    true,
		wasOnFloor: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reconfigure swaps in new parameters and recompiles the derived constants.
// Explicit by design: recompilation is never a hidden side effect of
// assignment.
func (c *Controller) Reconfigure(params TimingParameters) DerivedConstants {
	c.params = params.Normalize()
	c.consts = Compile(c.params)
	return c.consts
}

// SetHeightCurve swaps the jump-height curve at runtime, e.g. after a
// tuning reload.
func (c *Controller) SetHeightCurve(h curve.Curve) {
	if h != nil {
		c.height = h
	}
}

// Constants returns the currently compiled physical constants.
func (c *Controller) Constants() DerivedConstants {
	return c.consts
}

// Move runs the pre-resolution half of the tick: timers, gravity,
// horizontal motion, and the jump state machine. It returns the velocity to
// hand to the host's collision-aware resolver.
func (c *Controller) Move(in InputSample, dt float64) cp.Vector {
	c.timers.Tick(dt)

	if in.JumpPressed {
		c.timers.Buffer.Start(Seconds(c.params.InputBufferTicks))
	}

	c.regime = c.applyGravity(dt)
	c.applyHorizontal(in.MoveX, dt)
	c.updateJump(in, dt)
	c.updateFacing(in.MoveX)

	c.proposed = c.vel
	return c.vel
}

func (c *Controller) updateJump(in InputSample, dt float64) {
	c.updateFastFall(in)

	if c.timers.Buffer.Active() && !c.session.Jumping &&
		(c.onFloor || c.timers.Coyote.Active() || c.timers.Grace.Active()) {
		c.launchJump()
	}

	if c.session.Jumping && in.JumpHeld {
		c.session.HoldTime += dt
	}

	// Early release shortens the arc; it never cancels the session and
	// never touches an already-descending velocity.
	if in.JumpReleased && c.session.Jumping && c.params.VariableJumpEnabled && c.vel.Y < 0 {
		c.vel.Y *= c.params.JumpCutoffMultiplier
	}
}

func (c *Controller) updateFastFall(in InputSample) {
	was := c.session.FastFalling
	now := c.session.Stomping || (in.FastFallHeld && !c.onFloor)
	c.session.FastFalling = now
	if now && !was {
		c.events.Push(Event{Type: EventFastFallStarted})
	}
}

// launchJump consumes the buffered jump: all forgiveness timers stop, the
// launch velocity is set, and momentum is classified. Arc height is
// independent of running speed; fast launches get a horizontal-only bonus.
func (c *Controller) launchJump() {
	c.timers.Buffer.Stop()
	c.timers.Coyote.Stop()
	c.timers.Grace.Stop()

	c.vel.Y = -c.consts.InitialJumpVelocity

	speed := math.Abs(c.vel.X)
	c.session.TakeoffSpeed = speed
	wasRunning := speed >= runningThreshold*c.params.TerminalHorizontalSpeed
	if speed >= boostThreshold*c.params.TerminalHorizontalSpeed {
		boost := c.params.RunningHorizontalBoost
		if c.vel.X < 0 {
			boost = -boost
		}
		c.vel.X = common.Clamp(c.vel.X+boost, -c.params.MaxMovingSpeed, c.params.MaxMovingSpeed)
	}

	c.session.Jumping = true
	c.session.Falling = false
	c.session.HoldTime = 0

	c.events.Push(Event{Type: EventJumped, Data: JumpedEvent{
		LaunchVelocity: c.vel,
		WasRunning:     wasRunning,
	}})
}

func (c *Controller) updateFacing(moveX float64) {
	sign := common.Sign(moveX)
	if sign == 0 || sign == c.facing {
		return
	}
	c.facing = sign
	c.events.Push(Event{Type: EventDirectionChanged, Data: DirectionChangedEvent{Facing: sign}})
}

// Resolve runs the post-resolution half of the tick: it accepts the host's
// resolved velocity and contact flags, reacts to collisions, detects the
// landing and leaving-ground edges, and persists state for next tick.
func (c *Controller) Resolve(resolved cp.Vector, contact ContactState) {
	c.vel = resolved
	c.onFloor = contact.OnFloor

	// The host may have zeroed the vertical velocity on contact, so the
	// ascending check uses the velocity proposed before resolution.
	if contact.OnCeiling && c.proposed.Y < 0 {
		c.vel.Y = c.params.HeadBumpRebound
		c.session.Jumping = false
		c.events.Push(Event{Type: EventHitCeiling, Data: HitCeilingEvent{PreClampVelocity: c.proposed.Y}})
	}

	if contact.OnWall {
		// No velocity change; wall sliding/stopping belongs to the host.
		c.events.Push(Event{Type: EventHitWall, Data: HitWallEvent{Normal: contact.WallNormal}})
	}

	switch {
	case contact.OnFloor && !c.wasOnFloor:
		c.land()
	case !contact.OnFloor && c.wasOnFloor && !c.session.Jumping:
		c.leaveGround()
	}

	c.wasOnFloor = contact.OnFloor
}

func (c *Controller) land() {
	wasFastFalling := c.session.FastFalling
	landingVel := c.proposed.Y

	c.session.Jumping = false
	c.session.Falling = false
	c.session.FastFalling = false
	c.session.HoldTime = 0

	c.events.Push(Event{Type: EventLanded, Data: LandedEvent{
		LandingVelocity: landingVel,
		WasFastFalling:  wasFastFalling,
	}})

	// A press buffered during the fall fires on the landing tick itself.
	if c.timers.Buffer.Active() {
		c.launchJump()
	}
}

func (c *Controller) leaveGround() {
	c.timers.Coyote.Start(Seconds(c.params.CoyoteTicks))
	c.events.Push(Event{Type: EventCoyoteStarted})

	if math.Abs(c.vel.X) > graceThreshold*c.params.TerminalHorizontalSpeed {
		c.timers.Grace.Start(Seconds(c.params.GraceTicks))
		c.events.Push(Event{Type: EventGraceStarted})
	}
}

// Drain returns the notifications emitted this tick in emission order.
func (c *Controller) Drain() []Event {
	return c.events.Drain()
}

// TriggerStomp starts a stomp: an immediate fast downward move that converts
// into an upward bounce at the next floor contact.
func (c *Controller) TriggerStomp() {
	if c.onFloor {
		return
	}
	c.session.Stomping = true
	speed := c.params.VariableFastFallSpeed
	if speed <= 0 {
		speed = c.params.TerminalVerticalSpeed
	}
	c.vel.Y = math.Min(speed, c.params.TerminalVerticalSpeed)
	c.updateFastFall(InputSample{})
}

// SetTerrainFriction overrides the compiled ground friction, e.g. for ice or
// mud. A non-positive value restores the compiled constant.
func (c *Controller) SetTerrainFriction(v float64) {
	c.terrainFriction = v
}

// AddHorizontalBoost adds a one-off horizontal velocity bonus, clamped to
// the max moving speed.
func (c *Controller) AddHorizontalBoost(dv float64) {
	c.vel.X = common.Clamp(c.vel.X+dv, -c.params.MaxMovingSpeed, c.params.MaxMovingSpeed)
}

// Velocity returns the controller's current view of the velocity.
func (c *Controller) Velocity() cp.Vector {
	return c.vel
}

// SetVelocity overrides the current velocity, for spawn/respawn integration.
func (c *Controller) SetVelocity(v cp.Vector) {
	c.vel = v
}

func (c *Controller) Facing() int          { return c.facing }
func (c *Controller) IsOnFloor() bool      { return c.onFloor }
func (c *Controller) IsJumping() bool      { return c.session.Jumping }
func (c *Controller) IsFalling() bool      { return c.session.Falling }
func (c *Controller) IsFastFalling() bool  { return c.session.FastFalling }
func (c *Controller) IsStomping() bool     { return c.session.Stomping }
func (c *Controller) HasCoyoteTime() bool  { return c.timers.Coyote.Active() }
func (c *Controller) HasGracePeriod() bool { return c.timers.Grace.Active() }
func (c *Controller) HasJumpBuffer() bool  { return c.timers.Buffer.Active() }

// Regime reports which gravity branch shaped the last tick.
func (c *Controller) Regime() GravityRegime {
	return c.regime
}

// HoldTime returns seconds the jump button has been held this session.
func (c *Controller) HoldTime() float64 {
	return c.session.HoldTime
}

// IsShortHop reports whether the current jump was released within the short
// hop window. False at launch, before any hold time accumulates.
func (c *Controller) IsShortHop() bool {
	h := c.session.HoldTime
	return h > 0 && h < Seconds(c.params.ShortHopTicks)
}

// IsFullHop reports whether the button has been held past the tap-vs-hold
// threshold.
func (c *Controller) IsFullHop() bool {
	return c.session.HoldTime >= Seconds(c.params.TapVsHoldTicks)
}

// JumpHeightRatio samples the height curve at the normalized hold time, for
// callers scaling jump-related effects. It does not alter physics; the
// cutoff mechanism already handles variable height.
func (c *Controller) JumpHeightRatio() float64 {
	if !c.params.VariableJumpEnabled || !c.session.Jumping {
		return 1
	}
	t := common.Clamp(c.session.HoldTime/Seconds(c.params.TapVsHoldTicks), 0, 1)
	return common.Clamp(c.height.Sample(t), 0, 1)
}
