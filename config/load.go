package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// File is the YAML view of the tunables. Colors and fallback geometry stay code-only.
type File struct {
	Window   Config         `yaml:"window"`
	Player   PlayerConfig   `yaml:"player"`
	Arena    ArenaConfig    `yaml:"arena"`
	Camera   CameraConfig   `yaml:"camera"`
	Joystick JoystickConfig `yaml:"joystick"`
	CD       CDConfig       `yaml:"cd"`
	Audio    AudioConfig    `yaml:"audio"`
	UI       UIConfig       `yaml:"ui"`
	Debug    DebugConfig    `yaml:"debug"`
}

// Current snapshots the globals.
func Current() File {
	return File{
		Window:   *C,
		Player:   Player,
		Arena:    Arena,
		Camera:   Camera,
		Joystick: Joystick,
		CD:       CD,
		Audio:    Audio,
		UI:       UI,
		Debug:    Debug,
	}
}

// Apply replaces the globals with f.
func Apply(f File) {
	window := f.Window
	C = &window
	Player = f.Player
	Arena = f.Arena
	Camera = f.Camera
	Joystick = f.Joystick
	CD = f.CD
	Audio = f.Audio
	UI = f.UI
	Debug = f.Debug
}

// Load overlays the YAML file at path on the current globals.
// An empty path searches the standard locations and is a no-op when nothing is found.
func Load(path string) error {
	if path == "" {
		path = findConfigFile()
		if path == "" {
			return nil
		}
	}

	f := Current()
	if err := loadFromFile(&f, path); err != nil {
		return fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	Apply(f)
	return nil
}

// Validate rejects values the game cannot run with.
func (f File) Validate() error {
	var errs []error
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", f.Window.Width, f.Window.Height))
	}
	if f.Player.HalfExtent <= 0 {
		errs = append(errs, errors.New("player.half_extent must be positive"))
	}
	if f.Arena.PixelsPerUnit <= 0 {
		errs = append(errs, errors.New("arena.pixels_per_unit must be positive"))
	}
	if f.Arena.CellSize <= 0 {
		errs = append(errs, errors.New("arena.cell_size must be positive"))
	}
	if f.Camera.FOV <= 0 || f.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov %v out of range", f.Camera.FOV))
	}
	if f.CD.Duration <= 0 {
		errs = append(errs, errors.New("cd.duration must be positive"))
	}
	if f.Audio.MusicVol < 0 || f.Audio.MusicVol > 1 {
		errs = append(errs, fmt.Errorf("audio.music_volume %v out of range", f.Audio.MusicVol))
	}
	if f.Audio.FadeStep <= 0 {
		errs = append(errs, errors.New("audio.fade_step must be positive"))
	}
	return errors.Join(errs...)
}

// WriteYAML writes the effective configuration.
func WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Current()); err != nil {
		return err
	}
	return enc.Close()
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./cdwalk.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "cdwalk")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "cdwalk")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "cdwalk")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "cdwalk")
	}
}

func loadFromFile(f *File, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, f)
}

// Flags are the command line overrides, applied after the file.
type Flags struct {
	Debug   bool
	LogFile string
}

// ApplyFlags applies command line overrides to the globals.
func ApplyFlags(fl Flags) {
	if fl.Debug {
		Debug.LogLevel = "debug"
		Debug.Overlay = true
	}
	if fl.LogFile != "" {
		Debug.LogFile = fl.LogFile
	}
}
