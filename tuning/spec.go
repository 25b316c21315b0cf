// Package tuning loads designer-facing movement parameters from yaml, with
// embedded defaults, disk overrides, and hot reload.
package tuning

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/platformkit/curve"
	"github.com/milk9111/platformkit/motion"
)

// MovementSpec is the on-disk shape of a character's movement tuning.
type MovementSpec struct {
	Name   string                  `yaml:"name"`
	Params motion.TimingParameters `yaml:"params"`
	Curve  CurveSpec               `yaml:"curve"`
}

// CurveSpec selects the jump-height curve: a tengo script when Script is
// set, otherwise a quadratic bezier through (ControlX, ControlY).
type CurveSpec struct {
	ControlX float64 `yaml:"control_x"`
	ControlY float64 `yaml:"control_y"`
	Script   string  `yaml:"script"`
}

// LoadSpec loads and unmarshals the named yaml spec into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("tuning: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("tuning: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadMovementSpec loads the default movement tuning.
func LoadMovementSpec() (*MovementSpec, error) {
	spec, err := LoadSpec[MovementSpec]("movement.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseMovementSpec unmarshals a movement spec from raw yaml, for callers
// that read the file themselves (hot reload, CLI flags).
func ParseMovementSpec(data []byte) (*MovementSpec, error) {
	var spec MovementSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal movement spec: %w", err)
	}
	return &spec, nil
}

// BuildCurve constructs the jump-height curve described by the spec. An
// empty spec yields the default ease-out shape.
func (s *MovementSpec) BuildCurve() (curve.Curve, error) {
	if s == nil {
		return curve.Default(), nil
	}
	if s.Curve.Script != "" {
		sc, err := curve.NewScript([]byte(s.Curve.Script))
		if err != nil {
			return nil, fmt.Errorf("tuning: curve script: %w", err)
		}
		return sc, nil
	}
	if s.Curve.ControlX == 0 && s.Curve.ControlY == 0 {
		return curve.Default(), nil
	}
	return curve.NewBezier(curve.Point{X: s.Curve.ControlX, Y: s.Curve.ControlY}), nil
}
