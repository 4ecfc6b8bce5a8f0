package config

import "image/color"

// Config holds general engine configuration
type Config struct {
	Width     int
	Height    int
	HUDHeight int
	TickRate  int
	Title     string
}

// WorldConfig contains level dimensions and the tile grid
type WorldConfig struct {
	GridSize    float64 // Side length of one tile cell
	LevelWidth  float64
	LevelHeight float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed   float64 // Horizontal speed while a direction is held
	Friction    float64 // Multiplicative decay applied when no direction is held
	StopEpsilon float64 // Speed magnitude below which horizontal motion snaps to zero
	JumpSpeed   float64 // Upward impulse applied on jump
	Gravity     float64 // Added to vertical speed every tick, no terminal clamp

	// Spawn
	SpawnX       float64
	SpawnYOffset float64 // Distance above the level's bottom edge

	// Dimensions
	Width  float64
	Height float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	PanSpeed float64 // Editor free-pan speed in pixels per tick
}

// EditorConfig contains level editor configuration values
type EditorConfig struct {
	// Occupancy probe offset into the target cell. Placement is refused
	// when any entity's rectangle contains cell origin + this offset. A
	// single probe point, not a full rectangle test; tiles smaller than
	// the offset can slip past it.
	ProbeOffsetX float64
	ProbeOffsetY float64

	GridLineColor color.RGBA
	PreviewMargin float64 // Distance of the tool preview swatch from the screen corner
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonText      color.RGBA
}

// EpisodeSelectConfig contains episode select screen configuration values
type EpisodeSelectConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	DescColor         color.RGBA
	TitleY            float64
	ListStartY        float64
	ListItemHeight    float64
}

// ParallaxConfig contains background rendering configuration
type ParallaxConfig struct {
	SkyColor     color.RGBA
	CloudColor   color.RGBA
	CloudCount   int
	CloudFactor  float64 // Fraction of the camera offset applied to cloud scroll
	CloudSpacing float64
	CloudMargin  float64 // Extra wrap width on each side of the viewport
	CloudBaseY   float64
	CloudRowStep float64
	CloudW       float64
	CloudH       float64
}

// HUDConfig contains HUD bar configuration values
type HUDConfig struct {
	BackgroundColor color.RGBA
	BorderColor     color.RGBA
	TextColor       color.RGBA
	TextMargin      float64
	TextBaseline    int // Distance from the bar's bottom edge to the text baseline
}

// TweenConfig contains decorative tween configuration
type TweenConfig struct {
	QuestionBobDistance float64 // Render-only vertical bob on question blocks
	QuestionBobSeconds  float32
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Camera CameraConfig
var Editor EditorConfig
var Menu MenuConfig
var EpisodeSelect EpisodeSelectConfig
var Parallax ParallaxConfig
var HUD HUDConfig
var Tween TweenConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	SkyBlue  = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	DarkBlue = color.RGBA{R: 25, G: 25, B: 112, A: 255}
	Gold     = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Gray     = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

func init() {
	C = &Config{
		Width:     1200,
		Height:    800,
		HUDHeight: 60,
		TickRate:  60,
		Title:     "Moondust Engine",
	}

	World = WorldConfig{
		GridSize:    50,
		LevelWidth:  4000,
		LevelHeight: 2000,
	}

	Player = PlayerConfig{
		MoveSpeed:    6.0,
		Friction:     0.8,
		StopEpsilon:  0.05,
		JumpSpeed:    18.0,
		Gravity:      0.8,
		SpawnX:       100,
		SpawnYOffset: 300,
		Width:        40,
		Height:       50,
	}

	Camera = CameraConfig{
		PanSpeed: 10,
	}

	Editor = EditorConfig{
		ProbeOffsetX:  10,
		ProbeOffsetY:  10,
		GridLineColor: color.RGBA{R: 255, G: 255, B: 255, A: 50},
		PreviewMargin: 10,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 40, G: 0, B: 60, A: 255},
		TitleColor:      White,
		Title:           "MOONDUST ENGINE",
		ButtonIdle:      color.RGBA{R: 50, G: 50, B: 150, A: 255},
		ButtonHover:     color.RGBA{R: 100, G: 100, B: 200, A: 255},
		ButtonPressed:   color.RGBA{R: 70, G: 70, B: 170, A: 255},
		ButtonText:      White,
	}

	EpisodeSelect = EpisodeSelectConfig{
		BackgroundColor:   DarkBlue,
		TitleColor:        White,
		TextColorNormal:   Gray,
		TextColorSelected: Gold,
		DescColor:         color.RGBA{R: 200, G: 200, B: 200, A: 255},
		TitleY:            80,
		ListStartY:        150,
		ListItemHeight:    40,
	}

	Parallax = ParallaxConfig{
		SkyColor:     SkyBlue,
		CloudColor:   White,
		CloudCount:   10,
		CloudFactor:  0.5,
		CloudSpacing: 400,
		CloudMargin:  100,
		CloudBaseY:   100,
		CloudRowStep: 50,
		CloudW:       100,
		CloudH:       60,
	}

	HUD = HUDConfig{
		BackgroundColor: color.RGBA{R: 50, G: 50, B: 50, A: 255},
		BorderColor:     White,
		TextColor:       White,
		TextMargin:      20,
		TextBaseline:    22,
	}

	Tween = TweenConfig{
		QuestionBobDistance: 4,
		QuestionBobSeconds:  1,
	}
}
