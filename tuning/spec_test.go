package tuning

import (
	"math"
	"testing"

	"github.com/milk9111/platformkit/curve"
)

func TestLoadMovementSpecDefaults(t *testing.T) {
	spec, err := LoadMovementSpec()
	if err != nil {
		t.Fatalf("LoadMovementSpec: %v", err)
	}

	if spec.Params.TerminalHorizontalSpeed != 300 {
		t.Errorf("TerminalHorizontalSpeed = %v, want 300", spec.Params.TerminalHorizontalSpeed)
	}
	if spec.Params.JumpTimeToPeakTicks != 24 {
		t.Errorf("JumpTimeToPeakTicks = %v, want 24", spec.Params.JumpTimeToPeakTicks)
	}
	if !spec.Params.VariableJumpEnabled {
		t.Error("defaults should enable the variable jump")
	}

	if _, err := spec.BuildCurve(); err != nil {
		t.Fatalf("BuildCurve on defaults: %v", err)
	}
}

func TestParseMovementSpec(t *testing.T) {
	spec, err := ParseMovementSpec([]byte(`
name: floaty
params:
  terminal_horizontal_speed: 150
  max_jump_height: 200
  jump_time_to_peak: 40
curve:
  control_x: 0.3
  control_y: 0.9
`))
	if err != nil {
		t.Fatalf("ParseMovementSpec: %v", err)
	}
	if spec.Name != "floaty" {
		t.Errorf("Name = %q, want floaty", spec.Name)
	}
	if spec.Params.MaxJumpHeight != 200 {
		t.Errorf("MaxJumpHeight = %v, want 200", spec.Params.MaxJumpHeight)
	}

	c, err := spec.BuildCurve()
	if err != nil {
		t.Fatalf("BuildCurve: %v", err)
	}
	if _, ok := c.(curve.Bezier); !ok {
		t.Errorf("curve type = %T, want bezier", c)
	}
}

func TestParseMovementSpecBadYAML(t *testing.T) {
	if _, err := ParseMovementSpec([]byte("params: [broken")); err == nil {
		t.Fatal("malformed yaml should error")
	}
}

func TestBuildCurveScriptPrecedence(t *testing.T) {
	spec := &MovementSpec{
		Curve: CurveSpec{
			ControlX: 0.5,
			ControlY: 0.5,
			Script:   "y := t",
		},
	}
	c, err := spec.BuildCurve()
	if err != nil {
		t.Fatalf("BuildCurve: %v", err)
	}
	if _, ok := c.(*curve.Script); !ok {
		t.Errorf("curve type = %T, want script when both are set", c)
	}
}

func TestBuildCurveEmptyUsesDefault(t *testing.T) {
	spec := &MovementSpec{}
	c, err := spec.BuildCurve()
	if err != nil {
		t.Fatalf("BuildCurve: %v", err)
	}
	if got := c.Sample(1); math.Abs(got-1) > 1e-6 {
		t.Errorf("default curve Sample(1) = %v, want 1", got)
	}
}

func TestBuildCurveBadScript(t *testing.T) {
	spec := &MovementSpec{Curve: CurveSpec{Script: "y := ("}}
	if _, err := spec.BuildCurve(); err == nil {
		t.Fatal("broken script should surface a build error")
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	if _, err := LoadSpec[MovementSpec]("nope.yaml"); err == nil {
		t.Fatal("missing spec should error")
	}
}
