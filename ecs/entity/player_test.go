package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/jackrun/config"
	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/ecs/resource"
	"github.com/milk9111/jackrun/input"
	"github.com/milk9111/jackrun/prefabs"
)

func TestNewPlayer(t *testing.T) {
	setup, err := LoadPlayerSetup(prefabs.PlayerPrefab)
	if err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	e, err := NewPlayer(w, setup.Spec, setup.Clips)
	if err != nil {
		t.Fatal(err)
	}

	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		t.Fatalf("expected player tag")
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.X != setup.Spec.Transform.X || tr.Y != setup.Spec.Transform.Y {
		t.Fatalf("unexpected transform %+v", tr)
	}
	vm, ok := ecs.Get(w, e, component.VerticalMotionComponent.Kind())
	if !ok || vm.Height != 0 || vm.Phase() != component.PhaseGrounded {
		t.Fatalf("expected grounded start")
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok || anim.Clip != component.ClipIdle || anim.Frame != 0 || anim.Elapsed != 0 {
		t.Fatalf("unexpected animation %+v", anim)
	}
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok || sprite.Texture != "jack/idle.png" || sprite.FlipX {
		t.Fatalf("unexpected sprite %+v", sprite)
	}
}

func TestNewPlayerMissingInitialClip(t *testing.T) {
	w := ecs.NewWorld()
	_, err := NewPlayer(w, prefabs.PlayerSpec{Name: "empty"}, resource.NewClipLibrary())
	if !errors.Is(err, resource.ErrMissingClip) {
		t.Fatalf("expected ErrMissingClip, got %v", err)
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("failed spawn left %d entities", n)
	}
}

func TestLoadPlayerSetup(t *testing.T) {
	setup, err := LoadPlayerSetup("")
	if err != nil {
		t.Fatal(err)
	}
	if setup.Tuning != config.DefaultTuning() {
		t.Fatalf("unexpected tuning %s", setup.Tuning)
	}
	for _, id := range []component.ClipID{component.ClipIdle, component.ClipWalk, component.ClipRun, component.ClipJump, component.ClipFall} {
		if _, ok := setup.Clips.Lookup(id); !ok {
			t.Fatalf("missing clip %q", id)
		}
	}
	if keys := setup.Bindings[input.Jump]; len(keys) != 1 || keys[0] != "Space" {
		t.Fatalf("unexpected jump keys %v", keys)
	}
}

func TestNewPlayerSetupRejectsBadPrefabs(t *testing.T) {
	good := prefabs.AnimationSetSpec{Clips: map[string]prefabs.ClipSpec{"idle": {FrameCount: 1}}}
	cases := []struct {
		name string
		spec prefabs.PlayerSpec
		want error
	}{
		{"bad_tuning", prefabs.PlayerSpec{Tuning: config.Tuning{WalkSpeed: -1}, Animations: good}, config.ErrInvalidTuning},
		{"bad_clip", prefabs.PlayerSpec{Animations: prefabs.AnimationSetSpec{Clips: map[string]prefabs.ClipSpec{"idle": {FrameCount: 0}}}}, component.ErrInvalidClip},
		{"no_initial", prefabs.PlayerSpec{Animations: prefabs.AnimationSetSpec{Initial: "walk", Clips: good.Clips}}, resource.ErrMissingClip},
		{"bad_key_action", prefabs.PlayerSpec{Animations: good, Keys: map[string][]string{"fly": {"F"}}}, input.ErrUnknownAction},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewPlayerSetup(c.spec); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}
