package input

import "fmt"

// Bindings maps each action to the key names that trigger it. Key names are
// interpreted by the platform layer.
type Bindings map[Action][]string

// DefaultBindings is the QWERTY layout used when a prefab lists no keys.
func DefaultBindings() Bindings {
	return Bindings{
		MoveLeft:  {"ArrowLeft", "A"},
		MoveRight: {"ArrowRight", "D"},
		Run:       {"R", "ShiftLeft"},
		Jump:      {"Space"},
	}
}

// ParseBindings converts config names to Bindings. Actions missing from raw
// keep their default keys.
func ParseBindings(raw map[string][]string) (Bindings, error) {
	out := DefaultBindings()
	for name, keys := range raw {
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("input: bindings: %w", err)
		}
		out[a] = append([]string(nil), keys...)
	}
	return out, nil
}
