package config

import (
	"errors"
	"fmt"
	"math"
)

// Canonical tuning defaults. Older builds used a fall speed of 98 and jump
// impulses of 10 and 25.
const (
	DefaultFallSpeed   = 95.0
	DefaultJumpImpulse = 95.0
	DefaultWalkSpeed   = 100.0
	DefaultRunSpeed    = 150.0
)

var ErrInvalidTuning = errors.New("config: invalid tuning")

// Tuning is the single source of truth for movement constants. Speeds are in
// units per second; JumpImpulse is the total height a jump adds.
type Tuning struct {
	FallSpeed   float64 `yaml:"fall_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	WalkSpeed   float64 `yaml:"walk_speed"`
	RunSpeed    float64 `yaml:"run_speed"`
}

// DefaultTuning returns the canonical tuning.
func DefaultTuning() Tuning {
	return Tuning{
		FallSpeed:   DefaultFallSpeed,
		JumpImpulse: DefaultJumpImpulse,
		WalkSpeed:   DefaultWalkSpeed,
		RunSpeed:    DefaultRunSpeed,
	}
}

// WithDefaults fills zero fields from DefaultTuning.
func (t Tuning) WithDefaults() Tuning {
	d := DefaultTuning()
	if t.FallSpeed == 0 {
		t.FallSpeed = d.FallSpeed
	}
	if t.JumpImpulse == 0 {
		t.JumpImpulse = d.JumpImpulse
	}
	if t.WalkSpeed == 0 {
		t.WalkSpeed = d.WalkSpeed
	}
	if t.RunSpeed == 0 {
		t.RunSpeed = d.RunSpeed
	}
	return t
}

// Validate rejects negative or non-finite values. FallSpeed must be positive
// or a jump would never spend its budget.
func (t Tuning) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"fall_speed", t.FallSpeed},
		{"jump_impulse", t.JumpImpulse},
		{"walk_speed", t.WalkSpeed},
		{"run_speed", t.RunSpeed},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidTuning, f.name, f.value)
		}
	}
	if t.FallSpeed == 0 {
		return fmt.Errorf("%w: fall_speed must be positive", ErrInvalidTuning)
	}
	return nil
}

func (t Tuning) String() string {
	return fmt.Sprintf("fall %.0f  jump %.0f  walk %.0f  run %.0f", t.FallSpeed, t.JumpImpulse, t.WalkSpeed, t.RunSpeed)
}
