// Command simulate runs the movement core headless against a flat floor and
// prints per-tick telemetry as CSV, for tuning comparisons and regression
// traces.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/platformkit/host"
	"github.com/milk9111/platformkit/motion"
	"github.com/milk9111/platformkit/tuning"
)

func main() {
	specPath := flag.String("spec", "", "movement spec yaml file (default: embedded movement.yaml)")
	ticks := flag.Int("ticks", 120, "ticks to simulate")
	holdTicks := flag.Int("hold", 20, "ticks to hold the jump button after pressing at tick 0")
	moveX := flag.Float64("move", 0, "horizontal axis held for the whole run")
	flag.Parse()

	spec, err := loadSpec(*specPath)
	if err != nil {
		log.Fatal(err)
	}
	heightCurve, err := spec.BuildCurve()
	if err != nil {
		log.Fatal(err)
	}

	ctrl := motion.NewController(spec.Params, motion.WithHeightCurve(heightCurve))
	floor := host.NewFlatFloor(0, cp.Vector{})

	const dt = 1.0 / motion.TickRate
	fmt.Println("tick,pos_x,pos_y,vel_x,vel_y,regime,on_floor,jumping,events")
	for i := 0; i < *ticks; i++ {
		in := motion.InputSample{MoveX: *moveX}
		if i == 0 {
			in.JumpPressed = true
		}
		if i < *holdTicks {
			in.JumpHeld = true
		}
		if i == *holdTicks {
			in.JumpReleased = true
		}

		vel := ctrl.Move(in, dt)
		resolved, contact := floor.MoveAndCollide(vel, dt)
		ctrl.Resolve(resolved, contact)

		var names []string
		for _, evt := range ctrl.Drain() {
			names = append(names, string(evt.Type))
		}
		snap := ctrl.Snapshot()
		fmt.Printf("%d,%.2f,%.2f,%.2f,%.2f,%s,%t,%t,%s\n",
			i, floor.Pos.X, floor.Pos.Y, snap.Velocity.X, snap.Velocity.Y,
			snap.Regime, snap.OnFloor, snap.Jumping, strings.Join(names, "|"))
	}
}

func loadSpec(path string) (*tuning.MovementSpec, error) {
	if path == "" {
		return tuning.LoadMovementSpec()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return tuning.ParseMovementSpec(data)
}
