package components

import "github.com/yohamta/donburi"

// SettingsData holds the user settings that survive restarts, plus the debug toggle.
type SettingsData struct {
	MusicVolume float64 // 0.0 - 1.0
	Muted       bool
	Debug       bool
}

// EffectiveVolume is the music target while the player is in range.
func (s *SettingsData) EffectiveVolume() float64 {
	if s.Muted {
		return 0
	}
	return s.MusicVolume
}

var Settings = donburi.NewComponentType[SettingsData]()
