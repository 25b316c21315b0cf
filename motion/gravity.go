package motion

import (
	"math"

	"github.com/milk9111/platformkit/common"
)

// GravityRegime classifies which gravity branch shaped the current tick,
// for telemetry and presentation.
type GravityRegime int

const (
	RegimeGrounded GravityRegime = iota
	RegimeRising
	RegimeApexBlend
	RegimeFalling
	RegimeFastFalling
	RegimeStompBounce
)

func (r GravityRegime) String() string {
	switch r {
	case RegimeGrounded:
		return "grounded"
	case RegimeRising:
		return "rising"
	case RegimeApexBlend:
		return "apex_blend"
	case RegimeFalling:
		return "falling"
	case RegimeFastFalling:
		return "fast_falling"
	case RegimeStompBounce:
		return "stomp_bounce"
	}
	return "unknown"
}

// applyGravity advances vertical velocity one tick and returns the regime
// used. A grounded character accumulates no vertical velocity; the grounded
// branch only converts a pending stomp into its upward bounce. A negative
// vertical velocity while still flagged grounded means a jump launched this
// tick, which takes the ascending branch instead.
func (c *Controller) applyGravity(dt float64) GravityRegime {
	if c.onFloor && c.vel.Y >= 0 {
		if c.session.Stomping {
			c.vel.Y = -c.params.StompBounceVelocity
			c.session.Stomping = false
			c.session.FastFalling = false
			return RegimeStompBounce
		}
		c.session.Jumping = false
		c.session.Falling = false
		c.session.FastFalling = false
		c.session.HoldTime = 0
		return RegimeGrounded
	}

	var gravity float64
	regime := RegimeFalling

	if c.vel.Y < 0 {
		c.session.Falling = false
		rising := math.Abs(c.vel.Y)
		if c.params.DynamicGravityTransition && c.params.ApexThreshold > 0 && rising < c.params.ApexThreshold {
			// Blend up→down gravity near the apex to avoid the abrupt
			// discontinuity at the rise/fall flip.
			t := (c.params.ApexThreshold - rising) / c.params.ApexThreshold
			gravity = common.Lerp(c.consts.UpGravity, c.consts.DownGravity, t)
			regime = RegimeApexBlend
		} else {
			gravity = c.consts.UpGravity
			regime = RegimeRising
		}
	} else {
		c.session.Falling = true
		gravity = c.consts.DownGravity
		if c.session.FastFalling {
			regime = RegimeFastFalling
			if c.params.VariableFastFallSpeed > 0 {
				// Capped fast fall: integrate, then clamp to the cap.
				limit := math.Min(c.params.VariableFastFallSpeed, c.params.TerminalVerticalSpeed)
				c.vel.Y = math.Min(c.vel.Y+gravity*dt, limit)
				return regime
			}
			gravity *= c.params.FastFallMultiplier
		}
	}

	c.vel.Y += gravity * dt
	if c.vel.Y > c.params.TerminalVerticalSpeed {
		c.vel.Y = c.params.TerminalVerticalSpeed
	}
	return regime
}
