package resource

import (
	"errors"
	"testing"

	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/prefabs"
)

func TestClipLibraryFromSpec(t *testing.T) {
	spec := prefabs.AnimationSetSpec{
		Clips: map[string]prefabs.ClipSpec{
			"idle": {Sheet: "jack/idle.png", FrameCount: 1},
			"walk": {FrameCount: 6, FPS: 20},
		},
	}
	lib, err := ClipLibraryFromSpec(spec)
	if err != nil {
		t.Fatal(err)
	}
	if lib.Initial() != component.ClipIdle {
		t.Fatalf("expected idle initial, got %q", lib.Initial())
	}

	idle, ok := lib.Lookup(component.ClipIdle)
	if !ok || idle.Texture != "jack/idle.png" || idle.Clip.Advances() {
		t.Fatalf("unexpected idle entry %+v ok=%v", idle, ok)
	}
	walk, err := lib.Load("walk")
	if err != nil {
		t.Fatal(err)
	}
	if walk.FrameCount() != 6 || walk.FrameDuration() != 1.0/20 {
		t.Fatalf("unexpected walk clip %d/%v", walk.FrameCount(), walk.FrameDuration())
	}
	if entry, _ := lib.Lookup(component.ClipWalk); entry.Texture != "walk" {
		t.Fatalf("texture should default to the clip name, got %q", entry.Texture)
	}
	if ids := lib.IDs(); len(ids) != 2 || ids[0] != "idle" || ids[1] != "walk" {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestClipLibraryFromSpecErrors(t *testing.T) {
	cases := []struct {
		name string
		spec prefabs.AnimationSetSpec
		want error
	}{
		{
			name: "zero_frames",
			spec: prefabs.AnimationSetSpec{Clips: map[string]prefabs.ClipSpec{"idle": {FrameCount: 0}}},
			want: component.ErrInvalidClip,
		},
		{
			name: "multi_frame_without_fps",
			spec: prefabs.AnimationSetSpec{Clips: map[string]prefabs.ClipSpec{"idle": {FrameCount: 3}}},
			want: component.ErrInvalidClip,
		},
		{
			name: "initial_missing",
			spec: prefabs.AnimationSetSpec{Initial: "bark", Clips: map[string]prefabs.ClipSpec{"idle": {FrameCount: 1}}},
			want: ErrMissingClip,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ClipLibraryFromSpec(c.spec); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestClipLibraryMissing(t *testing.T) {
	lib := NewClipLibrary()
	if _, err := lib.Load("run"); !errors.Is(err, ErrMissingClip) {
		t.Fatalf("expected ErrMissingClip, got %v", err)
	}
	var nilLib *ClipLibrary
	if _, ok := nilLib.Lookup(component.ClipRun); ok {
		t.Fatalf("nil library should find nothing")
	}
}

func TestEmbeddedPlayerClips(t *testing.T) {
	spec, err := prefabs.LoadPlayerSpec("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ClipLibraryFromSpec(spec.Animations); err != nil {
		t.Fatalf("embedded player clips should be valid: %v", err)
	}
}

func TestClipEntryFrameRect(t *testing.T) {
	clip, err := component.NewClip(4, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	entry := ClipEntry{ID: "run", Clip: clip, FrameW: 90, FrameH: 57}

	cases := []struct {
		frame int
		minX  int
	}{
		{0, 0},
		{1, 90},
		{3, 270},
		{4, 0},
		{-1, 270},
	}
	for _, c := range cases {
		r := entry.FrameRect(c.frame)
		if r.Min.X != c.minX || r.Dx() != 90 || r.Dy() != 57 || r.Min.Y != 0 {
			t.Fatalf("frame %d: unexpected rect %v", c.frame, r)
		}
	}

	w, h := (ClipEntry{}).FrameSize()
	if w != DefaultFrameSize || h != DefaultFrameSize {
		t.Fatalf("expected default frame size, got %dx%d", w, h)
	}
}
