package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DebugUI is the telemetry overlay: a panel in the top-right corner showing
// the controller snapshot, with a button to reload the tuning spec. It uses
// colored nine-slices and the built-in basic font so no theme assets are
// required.
type DebugUI struct {
	ui   *ebitenui.UI
	text *widget.Text
	game *Game
}

func NewDebugUI(g *Game) *DebugUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	text := widget.NewText(
		widget.TextOpts.Text("", &face, white),
	)

	reloadBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Reload tuning", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.reloadSpec()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(text)
	panel.AddChild(reloadBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &DebugUI{ui: &ebitenui.UI{Container: root}, text: text, game: g}
}

func (d *DebugUI) Update() {
	snap := d.game.ctrl.Snapshot()
	d.text.Label = fmt.Sprintf(
		"vel (%7.1f, %7.1f)\nregime %s\nfacing %+d  hold %.2fs  ratio %.2f\nfloor=%t jump=%t fall=%t ff=%t\nbuffer %.2f  coyote %.2f  grace %.2f\nfwd %.0f  turn %.0f  fric %.0f\nup_g %.0f  down_g %.0f  jump_v %.0f",
		snap.Velocity.X, snap.Velocity.Y,
		snap.Regime,
		snap.Facing, snap.HoldTime, snap.HeightRatio,
		snap.OnFloor, snap.Jumping, snap.Falling, snap.FastFalling,
		snap.BufferRemaining, snap.CoyoteRemaining, snap.GraceRemaining,
		snap.Constants.ForwardAccel, snap.Constants.TurnAccel, snap.Constants.Friction,
		snap.Constants.UpGravity, snap.Constants.DownGravity, snap.Constants.InitialJumpVelocity,
	)
	d.ui.Update()
}

func (d *DebugUI) Draw(screen *ebiten.Image) {
	d.ui.Draw(screen)
}
