package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/ecs/entity"
	"github.com/milk9111/jackrun/ecs/render"
	"github.com/milk9111/jackrun/ecs/resource"
)

const viewSize = 512

// viewer plays one clip of a prefab through the same frame advance the game
// uses. Left and right switch clips; up and down change playback speed.
type viewer struct {
	clips  *resource.ClipLibrary
	sheets *render.SheetCache
	ids    []component.ClipID
	index  int
	anim   component.Animation
	speed  float64
	scale  float64
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.selectClip(v.index + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.selectClip(v.index - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		v.speed *= 2
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		v.speed /= 2
	}

	entry, ok := v.clips.Lookup(v.anim.Clip)
	if !ok {
		return nil
	}
	v.anim.Advance(entry.Clip, v.speed/float64(ebiten.TPS()))
	return nil
}

func (v *viewer) selectClip(i int) {
	n := len(v.ids)
	if n == 0 {
		return
	}
	v.index = ((i % n) + n) % n
	v.anim.Play(v.ids[v.index])
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	entry, ok := v.clips.Lookup(v.anim.Clip)
	if !ok {
		return
	}
	img := v.sheets.Frame(entry, v.anim.Frame)
	if img == nil {
		return
	}
	fw := float64(img.Bounds().Dx()) * v.scale
	fh := float64(img.Bounds().Dy()) * v.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.scale, v.scale)
	op.GeoM.Translate((viewSize-fw)/2, (viewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d/%d  %.3fs/frame  x%.2f",
		entry.ID, v.anim.Frame+1, entry.Clip.FrameCount(), entry.Clip.FrameDuration(), v.speed))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	prefab := flag.String("prefab", "", "player prefab to preview")
	clip := flag.String("clip", "", "clip to start on (default: the prefab's initial clip)")
	scale := flag.Float64("scale", 3, "draw scale")
	flag.Parse()

	setup, err := entity.LoadPlayerSetup(*prefab)
	if err != nil {
		log.Fatal(err)
	}

	v := &viewer{clips: setup.Clips, sheets: render.NewSheetCache(), ids: setup.Clips.IDs(), speed: 1, scale: *scale}
	start := setup.Clips.Initial()
	if *clip != "" {
		start = component.ClipID(*clip)
	}
	for i, id := range v.ids {
		if id == start {
			v.index = i
		}
	}
	if _, ok := setup.Clips.Lookup(start); !ok {
		log.Fatalf("clipview: %q: %v", start, resource.ErrMissingClip)
	}
	v.anim.Play(start)

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("clipview: " + setup.Spec.Name)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
