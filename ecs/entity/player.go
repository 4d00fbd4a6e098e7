package entity

import (
	"fmt"

	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/ecs/resource"
	"github.com/milk9111/jackrun/prefabs"
)

// NewPlayer spawns the controlled entity from a player prefab. It starts on
// the ground showing the library's initial clip.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, clips *resource.ClipLibrary) (ecs.Entity, error) {
	initial := clips.Initial()
	entry, ok := clips.Lookup(initial)
	if !ok {
		return 0, fmt.Errorf("player: initial clip %q: %w", initial, resource.ErrMissingClip)
	}

	e := ecs.CreateEntity(w)
	err := addAll(
		func() error { return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) },
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.Transform.X, Y: spec.Transform.Y})
		},
		func() error {
			return ecs.Add(w, e, component.VerticalMotionComponent.Kind(), &component.VerticalMotion{})
		},
		func() error {
			return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Clip: initial})
		},
		func() error {
			return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Texture: entry.Texture})
		},
	)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}

func addAll(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
