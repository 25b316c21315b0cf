package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/platformkit/motion"
)

const stickDeadzone = 0.2

// Input polls the keyboard and gamepad once per tick and produces the
// motion core's InputSample plus demo-only edges (stomp, snapshot copy,
// manual reload).
type Input struct {
	sample motion.InputSample

	StompPressed  bool
	CopyPressed   bool
	ReloadPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls devices for this tick.
func (i *Input) Update() {
	moveX := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}

	jumpHeld := ebiten.IsKeyPressed(ebiten.KeySpace)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	jumpReleased := inpututil.IsKeyJustReleased(ebiten.KeySpace)
	fastFall := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	stomp := inpututil.IsKeyJustPressed(ebiten.KeyX)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}

		jumpHeld = jumpHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpReleased = jumpReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom)

		leftY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if leftY > stickDeadzone {
			fastFall = true
		}
		stomp = stomp || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}

	i.sample = motion.InputSample{
		MoveX:        moveX,
		JumpPressed:  jumpPressed,
		JumpHeld:     jumpHeld,
		JumpReleased: jumpReleased,
		FastFallHeld: fastFall,
	}
	i.StompPressed = stomp
	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyF2)
	i.ReloadPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// Sample returns this tick's snapshot for the motion core.
func (i *Input) Sample() motion.InputSample {
	return i.sample
}
