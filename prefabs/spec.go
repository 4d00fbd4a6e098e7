package prefabs

import (
	"fmt"

	"github.com/milk9111/jackrun/config"
	"github.com/milk9111/jackrun/input"
	"gopkg.in/yaml.v3"
)

// PlayerPrefab is the default player prefab name.
const PlayerPrefab = "player.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := DecodeSpec[T](data)
	if err != nil {
		return zero, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

func DecodeSpec[T any](data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("unmarshal: %w", err)
	}
	return spec, nil
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ClipSpec describes one sprite sheet strip. Frames run left to right.
type ClipSpec struct {
	Sheet      string  `yaml:"sheet"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
}

type AnimationSetSpec struct {
	Initial string              `yaml:"initial"`
	Clips   map[string]ClipSpec `yaml:"clips"`
}

type PlayerSpec struct {
	Name       string              `yaml:"name"`
	Transform  TransformSpec       `yaml:"transform"`
	Tuning     config.Tuning       `yaml:"tuning"`
	Keys       map[string][]string `yaml:"keys"`
	Animations AnimationSetSpec    `yaml:"animations"`
}

func LoadPlayerSpec(name string) (PlayerSpec, error) {
	if name == "" {
		name = PlayerPrefab
	}
	return LoadSpec[PlayerSpec](name)
}

// ResolvedTuning returns the prefab tuning with defaults applied, validated.
func (s PlayerSpec) ResolvedTuning() (config.Tuning, error) {
	t := s.Tuning.WithDefaults()
	if err := t.Validate(); err != nil {
		return config.Tuning{}, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	return t, nil
}

func (s PlayerSpec) Bindings() (input.Bindings, error) {
	return input.ParseBindings(s.Keys)
}
