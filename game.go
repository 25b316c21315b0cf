package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"golang.design/x/clipboard"

	"github.com/milk9111/platformkit/host"
	"github.com/milk9111/platformkit/motion"
	"github.com/milk9111/platformkit/tuning"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	tickDelta = 1.0 / motion.TickRate

	// iceFriction replaces the compiled ground friction while standing on
	// ice tiles.
	iceFriction = 80.0
)

type Game struct {
	frames   int
	debug    bool
	specName string

	input  *Input
	level  *Level
	world  *host.World
	ctrl   *motion.Controller
	player *Player

	watcher *tuning.Watcher
	overlay *DebugUI

	clipboardReady bool
}

func NewGame(specName string, debug bool) (*Game, error) {
	spec, err := tuning.LoadSpec[tuning.MovementSpec](specName)
	if err != nil {
		return nil, err
	}
	heightCurve, err := spec.BuildCurve()
	if err != nil {
		return nil, err
	}

	level := NewLevel()
	spawn := cp.Vector{X: 3 * host.TileSize, Y: 3 * host.TileSize}
	world := host.NewWorld(level.Tiles, spawn, playerWidth, playerHeight)
	ctrl := motion.NewController(spec.Params, motion.WithHeightCurve(heightCurve))

	g := &Game{
		debug:    debug,
		specName: specName,
		input:    NewInput(),
		level:    level,
		world:    world,
		ctrl:     ctrl,
		player:   NewPlayer(),
	}

	if watcher, err := tuning.NewWatcher("tuning"); err != nil {
		log.Printf("tuning watcher disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard disabled: %v", err)
	} else {
		g.clipboardReady = true
	}

	g.overlay = NewDebugUI(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()

	if g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if ok {
				log.Printf("tuning changed: %s", name)
				g.reloadSpec()
			}
		default:
		}
	}
	if g.input.ReloadPressed {
		g.reloadSpec()
	}

	if g.input.StompPressed {
		g.ctrl.TriggerStomp()
	}

	vel := g.ctrl.Move(g.input.Sample(), tickDelta)
	resolved, contact := g.world.MoveAndCollide(vel, tickDelta)
	g.ctrl.Resolve(resolved, contact)

	if contact.OnFloor && g.world.FloorMaterial() == host.MaterialIce {
		g.ctrl.SetTerrainFriction(iceFriction)
	} else {
		g.ctrl.SetTerrainFriction(0)
	}

	for _, evt := range g.ctrl.Drain() {
		g.player.OnEvent(evt)
	}
	g.player.Update()

	if g.input.CopyPressed {
		g.copySnapshot()
	}
	if g.debug && g.overlay != nil {
		g.overlay.Update()
	}
	return nil
}

func (g *Game) reloadSpec() {
	spec, err := tuning.LoadSpec[tuning.MovementSpec](g.specName)
	if err != nil {
		log.Printf("reload %s: %v", g.specName, err)
		return
	}
	consts := g.ctrl.Reconfigure(spec.Params)
	if heightCurve, err := spec.BuildCurve(); err != nil {
		log.Printf("reload curve: %v", err)
	} else {
		g.ctrl.SetHeightCurve(heightCurve)
	}
	log.Printf("recompiled: fwd=%.0f turn=%.0f up_g=%.0f down_g=%.0f jump_v=%.0f",
		consts.ForwardAccel, consts.TurnAccel, consts.UpGravity, consts.DownGravity, consts.InitialJumpVelocity)
}

func (g *Game) copySnapshot() {
	if !g.clipboardReady {
		return
	}
	b, err := json.MarshalIndent(g.ctrl.Snapshot(), "", "  ")
	if err != nil {
		return
	}
	clipboard.Write(clipboard.FmtText, b)
	log.Println("telemetry snapshot copied to clipboard")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.level.Draw(screen)
	g.player.Draw(screen, g.world.Position(), g.ctrl.Facing())

	snap := g.ctrl.Snapshot()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f  vel=(%.0f, %.0f)  %s",
		ebiten.ActualFPS(), snap.Velocity.X, snap.Velocity.Y, snap.Regime))

	if g.debug && g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
