package system

import (
	"log"

	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/input"
)

// Selection is the clip the controlled entity should show this tick, and a
// facing when the clip implies one.
type Selection struct {
	Clip   component.ClipID
	Facing component.Direction
	Face   bool
}

// SelectClip picks a clip from input and motion phase. Rising shows Jump;
// releasing jump while airborne shows Fall; otherwise held movement shows
// Run or Walk and no movement shows Idle.
func SelectClip(in input.State, phase component.MotionPhase) Selection {
	if phase == component.PhaseRising {
		return Selection{Clip: component.ClipJump}
	}
	if in.JustReleased(input.Jump) && phase.Airborne() {
		return Selection{Clip: component.ClipFall}
	}
	if intent, ok := IntentFromInput(in); ok {
		sel := Selection{Clip: component.ClipWalk, Facing: intent.Direction, Face: true}
		if intent.Mode == component.MoveRun {
			sel.Clip = component.ClipRun
		}
		return sel
	}
	return Selection{Clip: component.ClipIdle}
}

// AnimationSelectSystem binds the selected clip to the controlled entity.
// Switching clips goes through Animation.Play, the only place playback is
// rewound.
type AnimationSelectSystem struct {
	player  controller
	missing map[component.ClipID]bool
}

func NewAnimationSelectSystem() *AnimationSelectSystem {
	return &AnimationSelectSystem{
		player:  controller{name: "animation"},
		missing: make(map[component.ClipID]bool),
	}
}

func (s *AnimationSelectSystem) Update(w *ecs.World, ctx *Context) {
	e, ok := s.player.find(w)
	if !ok {
		return
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}

	phase := component.PhaseGrounded
	if vm, ok := ecs.Get(w, e, component.VerticalMotionComponent.Kind()); ok {
		phase = vm.Phase()
	}

	sel := SelectClip(ctx.Input, phase)
	entry, ok := ctx.Clips.Lookup(sel.Clip)
	if !ok {
		if !s.missing[sel.Clip] {
			log.Printf("animation: entity=%s: %q not in clip library, keeping %q", e, sel.Clip, anim.Clip)
			s.missing[sel.Clip] = true
		}
		return
	}
	delete(s.missing, sel.Clip)

	if sel.Face {
		sprite.FlipX = sel.Facing == component.DirectionLeft
	}

	sprite.Texture = entry.Texture
	from := anim.Clip
	if anim.Play(sel.Clip) {
		sprite.Frame = anim.Frame
		w.Events().Push(ecs.Event{Type: ecs.EventClipChanged, Data: ecs.ClipChangedEvent{Entity: e, From: string(from), To: string(sel.Clip)}})
	}
}
