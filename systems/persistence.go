package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/logger"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	Muted       bool    `json:"muted"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "cdwalk",
	})
	if err != nil {
		logger.Log.Warn("could not initialize persistence", zap.Error(err))
		return fmt.Errorf("opening settings store: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. A nil result with a nil error means
// nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logger.Log.Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	saved, err := decodeSettings(data)
	if err != nil {
		logger.Log.Warn("could not parse saved settings", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := encodeSettings(s)
	if err != nil {
		logger.Log.Warn("could not serialize settings", zap.Error(err))
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		logger.Log.Warn("could not save settings", zap.Error(err))
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings saves the Settings component of the world.
func SaveCurrentSettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	_ = SaveSettings(&SavedSettings{
		MusicVolume: s.MusicVolume,
		Muted:       s.Muted,
	})
}

// ApplySavedSettings copies loaded settings into the world.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s := GetOrCreateSettings(e)
	s.MusicVolume = saved.MusicVolume
	s.Muted = saved.Muted
}

// ApplySavedSettingsGlobal applies settings before any world exists, so the
// first scene starts from the saved volume.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Audio.MusicVol = saved.MusicVolume
	globalMuted = saved.Muted
}

func encodeSettings(s *SavedSettings) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	return data, nil
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var s SavedSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	s.MusicVolume = gamemath.Clamp(s.MusicVolume, 0, 1)
	return &s, nil
}
