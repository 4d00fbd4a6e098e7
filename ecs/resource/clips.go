package resource

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/prefabs"
)

var ErrMissingClip = errors.New("resource: missing clip")

// ClipEntry is a library record: the opaque texture handle to bind and the
// validated clip parameters.
type ClipEntry struct {
	ID      component.ClipID
	Texture string
	Clip    component.Clip
	FrameW  int
	FrameH  int
}

// DefaultFrameSize is used for either frame dimension a prefab leaves unset.
const DefaultFrameSize = 64

// FrameSize returns the frame dimensions with defaults applied.
func (e ClipEntry) FrameSize() (int, int) {
	w, h := e.FrameW, e.FrameH
	if w <= 0 {
		w = DefaultFrameSize
	}
	if h <= 0 {
		h = DefaultFrameSize
	}
	return w, h
}

// FrameRect is the source rectangle of frame in a horizontal strip sheet.
// Out of range frames wrap.
func (e ClipEntry) FrameRect(frame int) image.Rectangle {
	w, h := e.FrameSize()
	n := e.Clip.FrameCount()
	if n < 1 {
		n = 1
	}
	frame = ((frame % n) + n) % n
	return image.Rect(frame*w, 0, (frame+1)*w, h)
}

// ClipLibrary is the clip table. It is filled once at startup and read-only
// afterwards, so any number of entities may share it.
type ClipLibrary struct {
	entries map[component.ClipID]ClipEntry
	initial component.ClipID
}

// NewClipLibrary creates an empty library.
func NewClipLibrary() *ClipLibrary {
	return &ClipLibrary{entries: make(map[component.ClipID]ClipEntry)}
}

// ClipLibraryFromSpec validates every clip in spec. Any invalid clip fails
// the whole library.
func ClipLibraryFromSpec(spec prefabs.AnimationSetSpec) (*ClipLibrary, error) {
	l := NewClipLibrary()
	for name, cs := range spec.Clips {
		clip, err := component.ClipFromFPS(cs.FrameCount, cs.FPS)
		if err != nil {
			return nil, fmt.Errorf("resource: clip %q: %w", name, err)
		}
		texture := cs.Sheet
		if texture == "" {
			texture = name
		}
		l.Register(ClipEntry{
			ID:      component.ClipID(name),
			Texture: texture,
			Clip:    clip,
			FrameW:  cs.FrameW,
			FrameH:  cs.FrameH,
		})
	}

	l.initial = component.ClipID(spec.Initial)
	if l.initial == "" {
		l.initial = component.ClipIdle
	}
	if _, ok := l.entries[l.initial]; !ok {
		return nil, fmt.Errorf("resource: initial clip %q: %w", l.initial, ErrMissingClip)
	}
	return l, nil
}

// Register adds or replaces an entry.
func (l *ClipLibrary) Register(entry ClipEntry) {
	if l == nil || entry.ID == "" {
		return
	}
	l.entries[entry.ID] = entry
}

// Lookup returns the entry for id.
func (l *ClipLibrary) Lookup(id component.ClipID) (ClipEntry, bool) {
	if l == nil || id == "" {
		return ClipEntry{}, false
	}
	entry, ok := l.entries[id]
	return entry, ok
}

// Load returns the clip registered under name.
func (l *ClipLibrary) Load(name string) (component.Clip, error) {
	entry, ok := l.Lookup(component.ClipID(name))
	if !ok {
		return component.Clip{}, fmt.Errorf("%w: %q", ErrMissingClip, name)
	}
	return entry.Clip, nil
}

// Initial is the clip a freshly spawned entity shows.
func (l *ClipLibrary) Initial() component.ClipID {
	if l == nil || l.initial == "" {
		return component.ClipIdle
	}
	return l.initial
}

// IDs returns every registered id, sorted.
func (l *ClipLibrary) IDs() []component.ClipID {
	if l == nil {
		return nil
	}
	ids := make([]component.ClipID, 0, len(l.entries))
	for id := range l.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
