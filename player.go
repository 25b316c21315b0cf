package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformkit/motion"
)

const (
	playerWidth  = 24
	playerHeight = 48
)

// Player is the demo's presentation layer for the character: it draws a
// rectangle at the host body's position, flips with facing, and squashes or
// stretches briefly on landing and jumping.
type Player struct {
	img *ebiten.Image

	squashFrames  int
	stretchFrames int
}

func NewPlayer() *Player {
	img := ebiten.NewImage(playerWidth, playerHeight)
	img.Fill(colornames.Crimson)
	return &Player{img: img}
}

// OnEvent reacts to motion notifications with simple visual feedback.
func (p *Player) OnEvent(evt motion.Event) {
	switch evt.Type {
	case motion.EventLanded, motion.EventHitCeiling:
		p.squashFrames = 8
	case motion.EventJumped:
		p.stretchFrames = 8
	}
}

func (p *Player) Update() {
	if p.squashFrames > 0 {
		p.squashFrames--
	}
	if p.stretchFrames > 0 {
		p.stretchFrames--
	}
}

// Draw renders the player centered on pos, flipped when facing left.
func (p *Player) Draw(screen *ebiten.Image, pos cp.Vector, facing int) {
	sx, sy := 1.0, 1.0
	if p.squashFrames > 0 {
		sx, sy = 1.2, 0.8
	} else if p.stretchFrames > 0 {
		sx, sy = 0.85, 1.15
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-playerWidth/2, -playerHeight/2)
	if facing < 0 {
		op.GeoM.Scale(-sx, sy)
	} else {
		op.GeoM.Scale(sx, sy)
	}
	op.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(p.img, op)
}
