package render

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jackrun/ecs/resource"
)

// SheetCache holds one sprite sheet per texture key. Textures that cannot be
// loaded get a generated placeholder sheet sized to the clip.
type SheetCache struct {
	images map[string]*ebiten.Image
}

func NewSheetCache() *SheetCache {
	return &SheetCache{images: make(map[string]*ebiten.Image)}
}

// Register stores an image by key, replacing any cached sheet.
func (c *SheetCache) Register(key string, img *ebiten.Image) {
	if c == nil || key == "" || img == nil {
		return
	}
	c.images[key] = img
}

// Sheet returns the sheet bound to entry's texture.
func (c *SheetCache) Sheet(entry resource.ClipEntry) *ebiten.Image {
	if c == nil || entry.Texture == "" {
		return nil
	}
	if img, ok := c.images[entry.Texture]; ok {
		return img
	}
	img, err := LoadImage(entry.Texture)
	if err != nil {
		log.Printf("render: %v, using placeholder", err)
		img = placeholderSheet(entry)
	}
	c.images[entry.Texture] = img
	return img
}

// Frame returns the sub image for frame of entry's sheet.
func (c *SheetCache) Frame(entry resource.ClipEntry, frame int) *ebiten.Image {
	sheet := c.Sheet(entry)
	if sheet == nil {
		return nil
	}
	r := entry.FrameRect(frame)
	if !r.In(sheet.Bounds()) {
		return sheet
	}
	sub, ok := sheet.SubImage(r).(*ebiten.Image)
	if !ok {
		return sheet
	}
	return sub
}

// Reset drops every cached sheet so the next draw reloads from disk.
func (c *SheetCache) Reset() {
	if c == nil {
		return
	}
	for key, img := range c.images {
		img.Deallocate()
		delete(c.images, key)
	}
}
