package component

import (
	"errors"
	"fmt"
	"math"
)

// ClipID names a clip in the clip library.
type ClipID string

const (
	ClipIdle ClipID = "idle"
	ClipWalk ClipID = "walk"
	ClipRun  ClipID = "run"
	ClipJump ClipID = "jump"
	ClipFall ClipID = "fall"
)

var ErrInvalidClip = errors.New("component: invalid clip")

// NeverAdvance is the frame duration of a clip that holds its first frame.
var NeverAdvance = math.Inf(1)

// Clip describes a sprite animation: how many frames it holds and how long
// each frame lasts in seconds. The zero Clip is not valid; build one with
// NewClip or ClipFromFPS.
type Clip struct {
	frameCount    int
	frameDuration float64
}

// NewClip validates and builds a Clip. A single-frame clip never advances,
// whatever duration it is given. Multi-frame clips need a finite, positive
// frame duration.
func NewClip(frameCount int, frameDuration float64) (Clip, error) {
	if frameCount < 1 {
		return Clip{}, fmt.Errorf("%w: frame count %d", ErrInvalidClip, frameCount)
	}
	if frameCount == 1 {
		return Clip{frameCount: 1, frameDuration: NeverAdvance}, nil
	}
	if !(frameDuration > 0) || math.IsInf(frameDuration, 0) {
		return Clip{}, fmt.Errorf("%w: frame duration %v for %d frames", ErrInvalidClip, frameDuration, frameCount)
	}
	return Clip{frameCount: frameCount, frameDuration: frameDuration}, nil
}

// ClipFromFPS builds a Clip playing at fps frames per second.
func ClipFromFPS(frameCount int, fps float64) (Clip, error) {
	if frameCount == 1 {
		return NewClip(1, NeverAdvance)
	}
	if !(fps > 0) || math.IsInf(fps, 0) {
		return Clip{}, fmt.Errorf("%w: fps %v", ErrInvalidClip, fps)
	}
	return NewClip(frameCount, 1/fps)
}

func (c Clip) FrameCount() int        { return c.frameCount }
func (c Clip) FrameDuration() float64 { return c.frameDuration }

// Advances reports whether time moves this clip past its first frame.
func (c Clip) Advances() bool {
	return c.frameCount > 1 && !math.IsInf(c.frameDuration, 1)
}

// Animation is the per-entity playback state of the active clip.
type Animation struct {
	Clip    ClipID
	Frame   int
	Elapsed float64
}

// Play switches to id and reports whether the clip changed. A change always
// rewinds playback to frame 0 with no accumulated time.
func (a *Animation) Play(id ClipID) bool {
	if a.Clip == id {
		return false
	}
	a.Clip = id
	a.Frame = 0
	a.Elapsed = 0
	return true
}

// Advance accumulates dt and steps Frame by the whole number of frame
// durations elapsed, keeping the remainder. Non-finite or negative dt is
// ignored. It returns how far Frame moved forward, in [0, frame count).
func (a *Animation) Advance(clip Clip, dt float64) int {
	if !clip.Advances() {
		a.Frame = 0
		a.Elapsed = 0
		return 0
	}
	n := clip.frameCount
	if a.Frame < 0 || a.Frame >= n {
		a.Frame = ((a.Frame % n) + n) % n
	}
	if math.IsNaN(a.Elapsed) || math.IsInf(a.Elapsed, 0) || a.Elapsed < 0 {
		a.Elapsed = 0
	}
	if dt > 0 && !math.IsInf(dt, 1) {
		a.Elapsed += dt
	}
	if a.Elapsed < clip.frameDuration {
		return 0
	}

	// Elapsed-rem is a whole multiple of the duration.
	rem := math.Mod(a.Elapsed, clip.frameDuration)
	frames := math.Round((a.Elapsed - rem) / clip.frameDuration)
	a.Elapsed = rem
	step := int(math.Mod(frames, float64(n)))
	a.Frame = (a.Frame + step) % n
	return step
}

var AnimationComponent = NewComponent[Animation]()
