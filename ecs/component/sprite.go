package component

// Sprite is what the renderer reads: the bound sheet, the frame to show and
// whether to mirror it horizontally.
type Sprite struct {
	Texture string
	Frame   int
	FlipX   bool
}

var SpriteComponent = NewComponent[Sprite]()
