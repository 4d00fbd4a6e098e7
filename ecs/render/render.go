package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/jackrun/common"
	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/ecs/resource"
)

const cameraFollow = 0.1

var groundColor = color.NRGBA{R: 0x4a, G: 0x3b, B: 0x2a, A: 0xff}

// RenderSystem draws every sprite at its ground position raised by its
// vertical height. The camera follows the controlled entity horizontally.
type RenderSystem struct {
	sheets *SheetCache
	camX   float64
	cam    bool
}

func NewRenderSystem(sheets *SheetCache) *RenderSystem {
	if sheets == nil {
		sheets = NewSheetCache()
	}
	return &RenderSystem{sheets: sheets}
}

func (r *RenderSystem) Sheets() *SheetCache { return r.sheets }

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, clips *resource.ClipLibrary) {
	if r == nil || w == nil || screen == nil {
		return
	}
	r.follow(w)

	ground := 0.0
	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool { return uint64(entities[i]) < uint64(entities[j]) })

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if t.Y > ground {
			ground = t.Y
		}

		entry, ok := spriteEntry(w, e, s, clips)
		if !ok {
			continue
		}
		img := r.sheets.Frame(entry, s.Frame)
		if img == nil {
			continue
		}

		fw := float64(img.Bounds().Dx())
		fh := float64(img.Bounds().Dy())
		height := 0.0
		if vm, ok := ecs.Get(w, e, component.VerticalMotionComponent.Kind()); ok {
			height = vm.Height
		}

		op := &ebiten.DrawImageOptions{}
		// Origin is the bottom centre of the frame.
		op.GeoM.Translate(-fw/2, -fh)
		if s.FlipX {
			op.GeoM.Scale(-1, 1)
		}
		op.GeoM.Translate(t.X-r.camX+common.BaseWidth/2, t.Y-height)
		screen.DrawImage(img, op)
	}

	if ground > 0 {
		vector.DrawFilledRect(screen, 0, float32(ground), common.BaseWidth, float32(common.BaseHeight-ground), groundColor, false)
	}
}

func (r *RenderSystem) follow(w *ecs.World) {
	ents := w.Query(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind())
	if len(ents) == 0 {
		return
	}
	t, _ := ecs.Get(w, ents[0], component.TransformComponent.Kind())
	if !r.cam {
		r.camX, r.cam = t.X, true
		return
	}
	r.camX = common.Lerp(r.camX, t.X, cameraFollow)
}

// spriteEntry finds the clip entry whose sheet the sprite is bound to. The
// active clip is preferred. Sprites without an animation match any entry
// sharing their texture.
func spriteEntry(w *ecs.World, e ecs.Entity, s *component.Sprite, clips *resource.ClipLibrary) (resource.ClipEntry, bool) {
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		if entry, ok := clips.Lookup(anim.Clip); ok && entry.Texture == s.Texture {
			return entry, true
		}
	}
	for _, id := range clips.IDs() {
		if entry, _ := clips.Lookup(id); entry.Texture == s.Texture {
			return entry, true
		}
	}
	return resource.ClipEntry{}, false
}
