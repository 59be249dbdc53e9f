package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cdwalk.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	SetDefaults()

	if Player.Speed != 0.1 {
		t.Errorf("expected player speed 0.1, got %v", Player.Speed)
	}
	if Player.RotationSpeed != 0.03 {
		t.Errorf("expected rotation speed 0.03, got %v", Player.RotationSpeed)
	}
	if Camera.Distance != 5 || Camera.Height != 2 || Camera.FOV != 75 {
		t.Errorf("unexpected camera defaults: %+v", Camera)
	}
	if CD.TriggerRadius != 2 || CD.Duration != 2 || CD.BobHeight != 0.3 {
		t.Errorf("unexpected cd defaults: %+v", CD)
	}
	if Arena.SkyColor != SkyBlue {
		t.Errorf("expected sky color %v, got %v", SkyBlue, Arena.SkyColor)
	}
	if err := Current().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	SetDefaults()
	t.Cleanup(SetDefaults)

	path := writeConfig(t, `
player:
  speed: 0.2
camera:
  fov: 60
audio:
  music_volume: 0.5
`)

	if err := Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if Player.Speed != 0.2 {
		t.Errorf("expected speed 0.2, got %v", Player.Speed)
	}
	if Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %v", Camera.FOV)
	}
	if Audio.MusicVol != 0.5 {
		t.Errorf("expected music volume 0.5, got %v", Audio.MusicVol)
	}

	// Untouched keys keep their defaults
	if Player.RotationSpeed != 0.03 {
		t.Errorf("expected rotation speed to stay 0.03, got %v", Player.RotationSpeed)
	}
	if Camera.Distance != 5 {
		t.Errorf("expected camera distance to stay 5, got %v", Camera.Distance)
	}
	if len(Arena.Walls) != 2 {
		t.Errorf("expected fallback walls to survive, got %d", len(Arena.Walls))
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	SetDefaults()
	t.Cleanup(SetDefaults)

	path := writeConfig(t, "player: [speed")
	if err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if Player.Speed != 0.1 {
		t.Errorf("failed load must not change globals, speed is %v", Player.Speed)
	}
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	SetDefaults()
	t.Cleanup(SetDefaults)

	path := writeConfig(t, "audio:\n  music_volume: 3\n")
	err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "music_volume") {
		t.Errorf("expected error to name the field, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit file")
	}
}

func TestApplyFlags(t *testing.T) {
	SetDefaults()
	t.Cleanup(SetDefaults)

	ApplyFlags(Flags{Debug: true, LogFile: "/tmp/cdwalk.log"})

	if Debug.LogLevel != "debug" {
		t.Errorf("expected debug level, got %s", Debug.LogLevel)
	}
	if !Debug.Overlay {
		t.Error("expected debug overlay on")
	}
	if Debug.LogFile != "/tmp/cdwalk.log" {
		t.Errorf("expected log file override, got %s", Debug.LogFile)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	SetDefaults()

	var buf bytes.Buffer
	if err := WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	var f File
	if err := yaml.Unmarshal(buf.Bytes(), &f); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
	if f.Player.Speed != Player.Speed || f.CD.SoundRadius != CD.SoundRadius {
		t.Errorf("round trip lost values: %+v", f)
	}
	if strings.Contains(buf.String(), "color") {
		t.Error("colors should not be written")
	}
}
