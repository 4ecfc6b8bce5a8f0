package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides mirrors the tunable subset of the engine configuration. Fields
// are pointers so that values absent from the file keep their defaults.
type Overrides struct {
	World struct {
		GridSize    *float64 `yaml:"grid_size"`
		LevelWidth  *float64 `yaml:"level_width"`
		LevelHeight *float64 `yaml:"level_height"`
	} `yaml:"world"`
	Player struct {
		MoveSpeed   *float64 `yaml:"move_speed"`
		Friction    *float64 `yaml:"friction"`
		StopEpsilon *float64 `yaml:"stop_epsilon"`
		JumpSpeed   *float64 `yaml:"jump_speed"`
		Gravity     *float64 `yaml:"gravity"`
	} `yaml:"player"`
	Camera struct {
		PanSpeed *float64 `yaml:"pan_speed"`
	} `yaml:"camera"`
}

// LoadOverridesFile applies tuning overrides from a YAML file on top of the
// built-in defaults. A missing file is not an error.
func LoadOverridesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return ApplyOverrides(data)
}

// ApplyOverrides parses YAML override data and writes the present fields
// into the global configuration.
func ApplyOverrides(data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config overrides: %w", err)
	}

	setIf(&World.GridSize, o.World.GridSize)
	setIf(&World.LevelWidth, o.World.LevelWidth)
	setIf(&World.LevelHeight, o.World.LevelHeight)
	setIf(&Player.MoveSpeed, o.Player.MoveSpeed)
	setIf(&Player.Friction, o.Player.Friction)
	setIf(&Player.StopEpsilon, o.Player.StopEpsilon)
	setIf(&Player.JumpSpeed, o.Player.JumpSpeed)
	setIf(&Player.Gravity, o.Player.Gravity)
	setIf(&Camera.PanSpeed, o.Camera.PanSpeed)
	return nil
}

func setIf(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
