package systems

import (
	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdatePause handles the pause toggle and window focus.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	focused := ebiten.IsFocused()
	switch {
	case !focused && !pause.IsPaused:
		SetPaused(e, components.PauseFocusLost)
		return
	case focused && pause.Reason == components.PauseFocusLost:
		SetPaused(e, components.PauseNone)
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		if pause.IsPaused {
			SetPaused(e, components.PauseNone)
		} else {
			SetPaused(e, components.PauseManual)
		}
	}
}

// SetPaused pauses the world for reason, or resumes it for PauseNone.
func SetPaused(e *ecs.ECS, reason components.PauseReason) {
	pause := GetOrCreatePause(e)
	wasPaused := pause.IsPaused
	pause.IsPaused = reason != components.PauseNone
	pause.Reason = reason

	if pause.IsPaused == wasPaused {
		return
	}
	if pause.IsPaused {
		PauseMusic(e)
	} else {
		ResumeMusic(e)
	}
	logger.Log.Debug("pause changed", zap.Bool("paused", pause.IsPaused), zap.Int("reason", int(reason)))
}

// RequestQuit asks the game loop to shut down at the end of the tick.
func RequestQuit(e *ecs.ECS) {
	GetOrCreatePause(e).QuitRequested = true
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

// WithPauseCheck wraps a system so it only runs when not paused.
func WithPauseCheck(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}
