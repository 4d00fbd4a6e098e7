package render

import (
	"fmt"
	"hash/fnv"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/jackrun/ecs/resource"
	"golang.org/x/image/font/basicfont"
)

var labelFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// placeholderSheet draws a strip with one labelled cell per frame. A bar on
// the right edge of each cell shows the unflipped facing.
func placeholderSheet(entry resource.ClipEntry) *ebiten.Image {
	fw, fh := entry.FrameSize()
	n := entry.Clip.FrameCount()
	if n < 1 {
		n = 1
	}
	sheet := ebiten.NewImage(fw*n, fh)
	base := textureColor(entry.Texture)

	for i := 0; i < n; i++ {
		r := entry.FrameRect(i)
		cell := sheet.SubImage(r).(*ebiten.Image)
		cell.Fill(shade(base, i, n))

		x := float32(r.Min.X)
		vector.StrokeRect(sheet, x+0.5, 0.5, float32(fw)-1, float32(fh)-1, 1, color.White, false)
		vector.DrawFilledRect(sheet, x+float32(fw)-6, float32(fh)/4, 4, float32(fh)/2, color.White, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.Min.X)+4, 4)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(sheet, fmt.Sprintf("%s %d", entry.ID, i), labelFace, op)
	}
	return sheet
}

func textureColor(key string) color.NRGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	sum := h.Sum32()
	return color.NRGBA{R: uint8(sum>>16) | 0x40, G: uint8(sum>>8) | 0x40, B: uint8(sum) | 0x40, A: 0xff}
}

func shade(c color.NRGBA, i, n int) color.NRGBA {
	if n <= 1 {
		return c
	}
	f := 0.6 + 0.4*float64(i)/float64(n-1)
	return color.NRGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}
