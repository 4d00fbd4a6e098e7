package system

import (
	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
)

// FrameAdvanceSystem steps every animated entity through its active clip and
// mirrors the frame index into the sprite.
type FrameAdvanceSystem struct{}

func NewFrameAdvanceSystem() *FrameAdvanceSystem {
	return &FrameAdvanceSystem{}
}

func (s *FrameAdvanceSystem) Update(w *ecs.World, ctx *Context) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		entry, ok := ctx.Clips.Lookup(anim.Clip)
		if !ok {
			return
		}
		anim.Advance(entry.Clip, ctx.DT)
		sprite.Frame = anim.Frame
	})
}
