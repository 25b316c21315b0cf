package motion

import (
	"math"

	"github.com/milk9111/platformkit/common"
)

// applyHorizontal advances horizontal velocity one tick toward
// moveX × terminal speed. Direction reversals on the ground pay the turn
// acceleration; over-speed from boosts is never clamped straight down to
// terminal speed, it decays toward it at the friction rate.
func (c *Controller) applyHorizontal(moveX float64, dt float64) {
	target := moveX * c.params.TerminalHorizontalSpeed
	v := c.vel.X

	accel := c.consts.ForwardAccel
	friction := c.groundFriction()
	if !c.onFloor {
		accel = c.consts.AirAccel
		friction = c.consts.AirFriction
	}

	var rate float64
	switch {
	case moveX == 0:
		target = 0
		rate = friction
	case v != 0 && common.Sign(v) != common.Sign(target):
		rate = c.consts.TurnAccel
		if !c.onFloor {
			rate = c.consts.AirAccel
		}
	case math.Abs(v) > c.params.TerminalHorizontalSpeed:
		rate = friction
	default:
		rate = accel
	}

	v = common.MoveToward(v, target, rate*dt)
	c.vel.X = common.Clamp(v, -c.params.MaxMovingSpeed, c.params.MaxMovingSpeed)
}

func (c *Controller) groundFriction() float64 {
	if c.terrainFriction > 0 {
		return c.terrainFriction
	}
	return c.consts.Friction
}
