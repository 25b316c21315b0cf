package curve

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/platformkit/common"
)

// Script is a designer-scripted curve. The script reads the global `t` and
// must assign the result to a global `y`, e.g.
//
//	y := 1.0 - (1.0-t)*(1.0-t)
//
// The math stdlib module is available. The script is compiled once; samples
// reuse the compiled program.
type Script struct {
	compiled *tengo.Compiled
}

// NewScript compiles src into a sampleable curve. The script is run once at
// t=0 to validate that it defines `y`.
func NewScript(src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("t", 0.0); err != nil {
		return nil, fmt.Errorf("curve: add t: %w", err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("curve: compile: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("curve: run: %w", err)
	}
	if compiled.Get("y").IsUndefined() {
		return nil, fmt.Errorf("curve: script must assign a global y")
	}

	return &Script{compiled: compiled}, nil
}

// Sample runs the script at the clamped time. Runtime errors fall back to
// the identity value so a bad script can never poison the simulation.
func (s *Script) Sample(t float64) float64 {
	t = common.Clamp(t, 0, 1)
	if err := s.compiled.Set("t", t); err != nil {
		return t
	}
	if err := s.compiled.Run(); err != nil {
		return t
	}
	return common.Clamp(s.compiled.Get("y").Float(), 0, 1)
}
