package input

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var ErrScriptOutput = errors.New("input: script must set a `held` map of action to bool")

// Script is a Source driven by a tengo program. Before every run the program
// sees the global `tick` (starting at 0) and must leave a global `held` map
// keyed by action name, for example:
//
//	held := { move_right: tick < 60, jump: tick == 10 }
type Script struct {
	compiled *tengo.Compiled
	tick     int
	held     [actionCount]bool
}

// NewScript compiles src.
func NewScript(src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	if err := script.Add("tick", 0); err != nil {
		return nil, fmt.Errorf("input: script: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap("math", "text"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: script: compile: %w", err)
	}
	return &Script{compiled: compiled}, nil
}

// Tick returns the tick the next call to Next will run.
func (s *Script) Tick() int {
	return s.tick
}

// Next runs the program for the current tick and latches its `held` map.
func (s *Script) Next() error {
	if err := s.compiled.Set("tick", s.tick); err != nil {
		return fmt.Errorf("input: script: %w", err)
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("input: script: tick %d: %w", s.tick, err)
	}
	s.tick++

	if !s.compiled.IsDefined("held") {
		return ErrScriptOutput
	}
	raw := s.compiled.Get("held").Map()
	if raw == nil {
		return ErrScriptOutput
	}

	var held [actionCount]bool
	for name, v := range raw {
		a, err := ParseAction(name)
		if err != nil {
			return fmt.Errorf("input: script: %w", err)
		}
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("%w: %s is %T", ErrScriptOutput, name, v)
		}
		held[a] = b
	}
	s.held = held
	return nil
}

func (s *Script) Pressed(a Action) bool {
	return a < actionCount && s.held[a]
}
