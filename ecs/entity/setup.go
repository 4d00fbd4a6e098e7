package entity

import (
	"fmt"

	"github.com/milk9111/jackrun/config"
	"github.com/milk9111/jackrun/ecs/resource"
	"github.com/milk9111/jackrun/input"
	"github.com/milk9111/jackrun/prefabs"
)

// PlayerSetup is everything a player prefab resolves to. A setup is built in
// full or not at all, so a bad prefab edit never replaces a working one.
type PlayerSetup struct {
	Spec     prefabs.PlayerSpec
	Clips    *resource.ClipLibrary
	Tuning   config.Tuning
	Bindings input.Bindings
}

// LoadPlayerSetup reads and validates the named player prefab.
func LoadPlayerSetup(name string) (PlayerSetup, error) {
	spec, err := prefabs.LoadPlayerSpec(name)
	if err != nil {
		return PlayerSetup{}, fmt.Errorf("player: load %q: %w", name, err)
	}
	return NewPlayerSetup(spec)
}

func NewPlayerSetup(spec prefabs.PlayerSpec) (PlayerSetup, error) {
	tuning, err := spec.ResolvedTuning()
	if err != nil {
		return PlayerSetup{}, err
	}
	clips, err := resource.ClipLibraryFromSpec(spec.Animations)
	if err != nil {
		return PlayerSetup{}, fmt.Errorf("player: %s: %w", spec.Name, err)
	}
	bindings, err := spec.Bindings()
	if err != nil {
		return PlayerSetup{}, fmt.Errorf("player: %s: %w", spec.Name, err)
	}
	return PlayerSetup{Spec: spec, Clips: clips, Tuning: tuning, Bindings: bindings}, nil
}
