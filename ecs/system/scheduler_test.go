package system

import (
	"errors"
	"testing"

	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/input"
)

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Update(*ecs.World, *Context) { *r.log = append(*r.log, r.name) }

func TestSchedulerOrder(t *testing.T) {
	var got []string
	s := NewScheduler(recorder{"a", &got}, nil, recorder{"b", &got})
	s.Add(recorder{"c", &got})
	s.Update(ecs.NewWorld(), &Context{})

	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected order %v", got)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems")
	}

	got = nil
	s.Update(nil, &Context{})
	s.Update(ecs.NewWorld(), nil)
	if len(got) != 0 {
		t.Fatalf("nil world or context must not run systems")
	}
}

func TestPlayerSchedulerOrder(t *testing.T) {
	systems := NewPlayerScheduler().Systems()
	if len(systems) != 5 {
		t.Fatalf("expected 5 systems, got %d", len(systems))
	}
	if _, ok := systems[0].(*IntentSystem); !ok {
		t.Fatalf("intent must run first")
	}
	if _, ok := systems[1].(*MovementSystem); !ok {
		t.Fatalf("movement must follow intent")
	}
	if _, ok := systems[2].(*VerticalMotionSystem); !ok {
		t.Fatalf("vertical motion must follow movement")
	}
	if _, ok := systems[3].(*FrameAdvanceSystem); !ok {
		t.Fatalf("frame advance must precede selection")
	}
	if _, ok := systems[4].(*AnimationSelectSystem); !ok {
		t.Fatalf("selection must run last")
	}
}

func TestPlayerSchedulerJumpAndRun(t *testing.T) {
	w := ecs.NewWorld()
	clips := testClips(t)
	e := spawnPlayer(t, w, clips)
	s := NewPlayerScheduler()
	var tracker input.Tracker

	pressed := map[input.Action]bool{input.MoveRight: true, input.Jump: true}
	src := input.SourceFunc(func(a input.Action) bool { return pressed[a] })

	s.Update(w, newContext(clips, 0.0625, tracker.Poll(src)))
	anim := mustGet(t, w, e, component.AnimationComponent.Kind())
	vm := mustGet(t, w, e, component.VerticalMotionComponent.Kind())
	tr := mustGet(t, w, e, component.TransformComponent.Kind())
	if anim.Clip != component.ClipJump || vm.Phase() != component.PhaseRising {
		t.Fatalf("expected rising jump, got %q/%s", anim.Clip, vm.Phase())
	}
	if tr.X != 6.25 {
		t.Fatalf("expected x=6.25, got %v", tr.X)
	}

	// Releasing jump in the air switches to fall.
	pressed[input.Jump] = false
	for vm.Phase() == component.PhaseRising {
		s.Update(w, newContext(clips, 0.0625, tracker.Poll(src)))
	}
	s.Update(w, newContext(clips, 0.0625, tracker.Poll(src)))

	delete(pressed, input.MoveRight)
	s.Update(w, newContext(clips, 0.0625, tracker.Poll(src)))
	if vm.Phase() == component.PhaseGrounded {
		t.Fatalf("landed too early")
	}

	for i := 0; i < 200 && vm.Phase() != component.PhaseGrounded; i++ {
		s.Update(w, newContext(clips, 0.0625, tracker.Poll(src)))
	}
	s.Update(w, newContext(clips, 0.0625, tracker.Poll(src)))
	if anim.Clip != component.ClipIdle {
		t.Fatalf("expected idle after landing, got %q", anim.Clip)
	}

	var jumps, lands int
	for _, ev := range w.Events().Drain() {
		switch ev.Type {
		case ecs.EventJumpStarted:
			jumps++
		case ecs.EventLanded:
			lands++
		}
	}
	if jumps != 1 || lands != 1 {
		t.Fatalf("expected one jump and one landing, got %d/%d", jumps, lands)
	}
}

func TestControlledEntity(t *testing.T) {
	w := ecs.NewWorld()
	if _, ok, err := ControlledEntity(w); ok || err != nil {
		t.Fatalf("empty world: ok=%v err=%v", ok, err)
	}

	clips := testClips(t)
	first := spawnPlayer(t, w, clips)
	e, ok, err := ControlledEntity(w)
	if !ok || err != nil || e != first {
		t.Fatalf("single controller: %s %v %v", e, ok, err)
	}

	second := spawnPlayer(t, w, clips)
	e, ok, err = ControlledEntity(w)
	if !ok || !errors.Is(err, ErrMultipleControllersFound) || e != first {
		t.Fatalf("two controllers: %s %v %v", e, ok, err)
	}

	// Only the first controlled entity moves.
	NewScheduler(NewIntentSystem(), NewMovementSystem()).Update(w, newContext(clips, 0.5, input.Snapshot(held(input.MoveRight), nil)))
	if x := mustGet(t, w, first, component.TransformComponent.Kind()).X; x != 50 {
		t.Fatalf("first controller expected x=50, got %v", x)
	}
	if x := mustGet(t, w, second, component.TransformComponent.Kind()).X; x != 0 {
		t.Fatalf("second controller moved to %v", x)
	}
}
