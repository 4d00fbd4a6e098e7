package system

import (
	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/input"
)

// VerticalMotionSystem starts jumps for the controlled entity and integrates
// rise and fall for every entity with VerticalMotion.
type VerticalMotionSystem struct {
	player controller
}

func NewVerticalMotionSystem() *VerticalMotionSystem {
	return &VerticalMotionSystem{player: controller{name: "vertical"}}
}

func (s *VerticalMotionSystem) Update(w *ecs.World, ctx *Context) {
	if ctx.Input.Held(input.Jump) {
		if e, ok := s.player.find(w); ok {
			if vm, ok := ecs.Get(w, e, component.VerticalMotionComponent.Kind()); ok && vm.StartJump(ctx.Tuning.JumpImpulse) {
				w.Events().Push(ecs.Event{Type: ecs.EventJumpStarted, Data: ecs.MotionEvent{Entity: e, Height: vm.Height}})
			}
		}
	}

	ecs.ForEach(w, component.VerticalMotionComponent.Kind(), func(e ecs.Entity, vm *component.VerticalMotion) {
		airborne := vm.Phase().Airborne()
		vm.Step(ctx.DT, ctx.Tuning.FallSpeed)
		if airborne && vm.Phase() == component.PhaseGrounded {
			w.Events().Push(ecs.Event{Type: ecs.EventLanded, Data: ecs.MotionEvent{Entity: e}})
		}
	})
}
