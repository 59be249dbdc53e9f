package systems

import (
	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/logger"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// globalMuted carries the saved mute flag into the first world.
var globalMuted bool

// UpdateSettings handles the mute and debug overlay toggles.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	s := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute(e)
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		s.Debug = !s.Debug
		logger.Log.Debug("debug overlay toggled", zap.Bool("on", s.Debug))
	}
}

// ToggleMute flips mute and remembers it for the next world.
func ToggleMute(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.Muted = !s.Muted
	globalMuted = s.Muted
	logger.Log.Info("music mute toggled", zap.Bool("muted", s.Muted))
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			MusicVolume: cfg.Audio.MusicVol,
			Muted:       globalMuted,
			Debug:       cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}
