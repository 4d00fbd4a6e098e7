package main

import (
	"log"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jackrun/input"
)

const stickDeadzone = 0.2

var keyNames = func() map[string]ebiten.Key {
	names := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		names[strings.ToLower(k.String())] = k
	}
	return names
}()

// keyboard is an input.Source reading bound keys and the first standard
// gamepad.
type keyboard struct {
	keys [][]ebiten.Key
}

func newKeyboard(b input.Bindings) *keyboard {
	k := &keyboard{}
	k.bind(b)
	return k
}

func (k *keyboard) bind(b input.Bindings) {
	actions := input.Actions()
	keys := make([][]ebiten.Key, len(actions))
	for _, a := range actions {
		for _, name := range b[a] {
			key, ok := keyNames[strings.ToLower(name)]
			if !ok {
				log.Printf("keyboard: unknown key %q for %s", name, a)
				continue
			}
			keys[a] = append(keys[a], key)
		}
	}
	k.keys = keys
}

func (k *keyboard) Pressed(a input.Action) bool {
	if int(a) < len(k.keys) {
		for _, key := range k.keys[a] {
			if ebiten.IsKeyPressed(key) {
				return true
			}
		}
	}
	return gamepadPressed(a)
}

func gamepadPressed(a input.Action) bool {
	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return false
	}
	id := gamepads[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return false
	}

	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if math.Abs(x) <= stickDeadzone {
		x = 0
	}
	switch a {
	case input.MoveLeft:
		return x < 0 || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
	case input.MoveRight:
		return x > 0 || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
	case input.Run:
		return ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft) ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	case input.Jump:
		return ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return false
}
