package system

import (
	"testing"

	"github.com/milk9111/jackrun/config"
	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/ecs/entity"
	"github.com/milk9111/jackrun/ecs/resource"
	"github.com/milk9111/jackrun/input"
	"github.com/milk9111/jackrun/prefabs"
)

const epsilon = 1e-9

func testClips(t *testing.T, ids ...component.ClipID) *resource.ClipLibrary {
	t.Helper()
	frames := map[component.ClipID]int{
		component.ClipIdle: 1,
		component.ClipWalk: 6,
		component.ClipRun:  5,
		component.ClipJump: 4,
		component.ClipFall: 2,
	}
	if len(ids) == 0 {
		ids = []component.ClipID{component.ClipIdle, component.ClipWalk, component.ClipRun, component.ClipJump, component.ClipFall}
	}
	spec := prefabs.AnimationSetSpec{Clips: map[string]prefabs.ClipSpec{}}
	for _, id := range ids {
		spec.Clips[string(id)] = prefabs.ClipSpec{Sheet: string(id) + ".png", FrameCount: frames[id], FPS: 8}
	}
	lib, err := resource.ClipLibraryFromSpec(spec)
	if err != nil {
		t.Fatal(err)
	}
	return lib
}

func spawnPlayer(t *testing.T, w *ecs.World, clips *resource.ClipLibrary) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayer(w, prefabs.PlayerSpec{Name: "test"}, clips)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func newContext(clips *resource.ClipLibrary, dt float64, in input.State) *Context {
	return &Context{DT: dt, Input: in, Clips: clips, Tuning: config.DefaultTuning()}
}

func held(actions ...input.Action) []input.Action { return actions }

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %s missing component", e)
	}
	return v
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
