package component

import "math"

// MotionPhase classifies vertical state. It is derived, never stored.
type MotionPhase uint8

const (
	PhaseGrounded MotionPhase = iota
	PhaseRising
	PhaseFalling
)

func (p MotionPhase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseRising:
		return "rising"
	case PhaseFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Airborne reports whether the phase is off the ground.
func (p MotionPhase) Airborne() bool {
	return p != PhaseGrounded
}

// VerticalMotion is an entity's height above the ground plus the jump budget
// still to be spent while rising. Height is never negative.
type VerticalMotion struct {
	Height float64

	budget  float64
	powered bool
}

// Phase derives the motion phase from height and budget presence.
func (v VerticalMotion) Phase() MotionPhase {
	switch {
	case v.powered:
		return PhaseRising
	case v.Height > 0:
		return PhaseFalling
	default:
		return PhaseGrounded
	}
}

// JumpBudget returns the remaining budget and whether one is present.
func (v VerticalMotion) JumpBudget() (float64, bool) {
	return v.budget, v.powered
}

// StartJump grants impulse as jump budget. It only succeeds from the ground.
func (v *VerticalMotion) StartJump(impulse float64) bool {
	if v.powered || v.Height != 0 || !(impulse > 0) {
		return false
	}
	v.budget = impulse
	v.powered = true
	return true
}

// Step integrates one tick. While rising, up to dt*fallSpeed*2 of budget is
// converted into height and the budget is dropped once spent. Otherwise the
// entity sinks by dt*fallSpeed, clamped at the ground.
func (v *VerticalMotion) Step(dt, fallSpeed float64) {
	if !(dt > 0) {
		return
	}
	if v.powered {
		power := math.Min(dt*fallSpeed*2, v.budget)
		v.budget -= power
		v.Height += power
		if v.budget <= 0 {
			v.budget = 0
			v.powered = false
		}
		return
	}
	if v.Height > 0 {
		v.Height -= dt * fallSpeed
		if v.Height < 0 {
			v.Height = 0
		}
	}
}

var VerticalMotionComponent = NewComponent[VerticalMotion]()
