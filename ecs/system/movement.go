package system

import (
	"github.com/milk9111/jackrun/config"
	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/input"
)

// HorizontalDelta is the displacement an intent produces over dt.
func HorizontalDelta(intent component.HorizontalIntent, t config.Tuning, dt float64) float64 {
	speed := t.WalkSpeed
	if intent.Mode == component.MoveRun {
		speed = t.RunSpeed
	}
	return dt * speed * intent.Direction.Sign()
}

// ResolveHorizontal maps raw input straight to a displacement. No movement
// action held means no displacement.
func ResolveHorizontal(in input.State, t config.Tuning, dt float64) float64 {
	intent, ok := IntentFromInput(in)
	if !ok {
		return 0
	}
	return HorizontalDelta(intent, t, dt)
}

// MovementSystem applies and then removes each entity's HorizontalIntent.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World, ctx *Context) {
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.HorizontalIntentComponent.Kind(), func(e ecs.Entity, t *component.Transform, intent *component.HorizontalIntent) {
		t.X += HorizontalDelta(*intent, ctx.Tuning, ctx.DT)
		ecs.Remove(w, e, component.HorizontalIntentComponent.Kind())
	})
}
