package config

import (
	"image/color"
	"math"
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (world units and radians per tick)
	Speed         float64 `yaml:"speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`

	// Collision box half size
	HalfExtent float64 `yaml:"half_extent"`

	// Optional image drawn as the player billboard. Empty or unreadable falls back to a box.
	ModelPath string `yaml:"model_path"`

	Color color.RGBA `yaml:"-"`
}

// WallSpec is a fallback wall used when the arena map has none.
type WallSpec struct {
	X, Y, Z float64
	W, H, D float64
}

// ArenaConfig describes the floor and how the Tiled map is mapped to world units
type ArenaConfig struct {
	MapPath       string  `yaml:"map_path"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	FloorWidth    float64 `yaml:"floor_width"`
	FloorDepth    float64 `yaml:"floor_depth"`
	WallHeight    float64 `yaml:"wall_height"`
	CellSize      int     `yaml:"cell_size"`

	// Defaults for objects missing from the map
	SpawnX, SpawnY, SpawnZ float64    `yaml:"-"`
	CDX, CDY, CDZ          float64    `yaml:"-"`
	Walls                  []WallSpec `yaml:"-"`

	FloorColor color.RGBA `yaml:"-"`
	GridColor  color.RGBA `yaml:"-"`
	WallColor  color.RGBA `yaml:"-"`
	SkyColor   color.RGBA `yaml:"-"`
}

// CameraConfig contains orbit camera configuration
type CameraConfig struct {
	Distance float64 `yaml:"distance"`
	Height   float64 `yaml:"height"`
	FOV      float64 `yaml:"fov"` // degrees, vertical
	Near     float64 `yaml:"near"`
}

// JoystickConfig contains on-screen stick layout
type JoystickConfig struct {
	Size     float64 `yaml:"size"`
	Margin   float64 `yaml:"margin"`
	Deadzone float64 `yaml:"deadzone"` // gamepad axes only

	BaseColor  color.RGBA `yaml:"-"`
	ThumbColor color.RGBA `yaml:"-"`
}

// CDConfig contains the spinning CD trigger configuration
type CDConfig struct {
	TriggerRadius float64 `yaml:"trigger_radius"`
	Duration      float64 `yaml:"duration"` // seconds
	BobHeight     float64 `yaml:"bob_height"`
	Rotation      float64 `yaml:"rotation"`
	DiscRadius    float64 `yaml:"disc_radius"`
	SoundRadius   float64 `yaml:"sound_radius"`

	Color color.RGBA `yaml:"-"`
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	MusicPath  string  `yaml:"music_path"` // optional .ogg or .wav, a tone plays otherwise
	MusicVol   float64 `yaml:"music_volume"`
	FadeStep   float64 `yaml:"fade_step"`
	FadeTicks  int     `yaml:"fade_ticks"`
	ToneHz     float64 `yaml:"tone_hz"`
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDFontSize   float64 `yaml:"hud_font_size"`
	DebugFontSize float64 `yaml:"debug_font_size"`
	MinimapScale  float64 `yaml:"minimap_scale"`

	HUDTextColor   color.RGBA `yaml:"-"`
	HUDTextBgColor color.RGBA `yaml:"-"`
	OverlayColor   color.RGBA `yaml:"-"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Overlay  bool   `yaml:"overlay"` // start with the debug overlay visible
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	Workers  int    `yaml:"workers"` // asset loader pool size
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Arena ArenaConfig
var Camera CameraConfig
var Joystick JoystickConfig
var CD CDConfig
var Audio AudioConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	SkyBlue      = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 255}
	Grey         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	DarkGrey     = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	SetDefaults()
}

// SetDefaults resets every global to its built-in value.
func SetDefaults() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "cdwalk",
	}

	Player = PlayerConfig{
		Speed:         0.1,
		RotationSpeed: 0.03,
		HalfExtent:    0.5,
		ModelPath:     "",
		Color:         Red,
	}

	Arena = ArenaConfig{
		MapPath:       "levels/arena.tmx",
		PixelsPerUnit: 16,
		FloorWidth:    20,
		FloorDepth:    40,
		WallHeight:    2,
		CellSize:      16,

		SpawnX: 0, SpawnY: 0.5, SpawnZ: 0,
		CDX: 1, CDY: 1, CDZ: -10,
		Walls: []WallSpec{
			{X: 3, Y: 1, Z: 0, W: 1, H: 2, D: 30},
			{X: -3, Y: 1, Z: 0, W: 1, H: 2, D: 30},
		},

		FloorColor: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 255},
		GridColor:  color.RGBA{R: 0x9a, G: 0x9a, B: 0x9a, A: 255},
		WallColor:  color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 255},
		SkyColor:   SkyBlue,
	}

	Camera = CameraConfig{
		Distance: 5,
		Height:   2,
		FOV:      75,
		Near:     0.1,
	}

	Joystick = JoystickConfig{
		Size:     120,
		Margin:   24,
		Deadzone: 0.25,

		BaseColor:  color.RGBA{R: 255, G: 255, B: 255, A: 60},
		ThumbColor: color.RGBA{R: 255, G: 255, B: 255, A: 140},
	}

	CD = CDConfig{
		TriggerRadius: 2,
		Duration:      2,
		BobHeight:     0.3,
		Rotation:      math.Pi,
		DiscRadius:    0.5,
		SoundRadius:   4,
		Color:         Cyan,
	}

	Audio = AudioConfig{
		SampleRate: 44100,
		MusicPath:  "",
		MusicVol:   0.75,
		FadeStep:   0.05,
		FadeTicks:  3,
		ToneHz:     220,
	}

	UI = UIConfig{
		HUDFontSize:   12,
		DebugFontSize: 10,
		MinimapScale:  4,

		HUDTextColor:   White,
		HUDTextBgColor: color.RGBA{R: 0, G: 0, B: 0, A: 120},
		OverlayColor:   BlackOverlay,
	}

	Debug = DebugConfig{
		Overlay:  false,
		LogLevel: "info",
		LogFile:  "",
		Workers:  2,
	}
}
