package system

import (
	"log"

	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/input"
)

// IntentFromInput derives this tick's horizontal intent from raw input. Left
// wins when both directions are held.
func IntentFromInput(in input.State) (component.HorizontalIntent, bool) {
	if !in.Moving() {
		return component.HorizontalIntent{}, false
	}
	intent := component.HorizontalIntent{Direction: component.DirectionRight, Mode: component.MoveWalk}
	if in.Held(input.MoveLeft) {
		intent.Direction = component.DirectionLeft
	}
	if in.Held(input.Run) {
		intent.Mode = component.MoveRun
	}
	return intent, true
}

// IntentSystem attaches a HorizontalIntent to the controlled entity when a
// movement action is held.
type IntentSystem struct {
	player controller
}

func NewIntentSystem() *IntentSystem {
	return &IntentSystem{player: controller{name: "intent"}}
}

func (s *IntentSystem) Update(w *ecs.World, ctx *Context) {
	e, ok := s.player.find(w)
	if !ok {
		return
	}
	intent, ok := IntentFromInput(ctx.Input)
	if !ok {
		return
	}
	if err := ecs.Add(w, e, component.HorizontalIntentComponent.Kind(), &intent); err != nil {
		log.Printf("intent: entity=%s: %v", e, err)
	}
}
