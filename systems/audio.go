package systems

import (
	"sync"

	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/logger"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/automoto/cdwalk/shared/sim"
	"github.com/automoto/cdwalk/tags"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Global audio state - ebiten allows one context per process
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func audioContext() *audio.Context {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return globalAudioContext
}

// UpdateAudio fades the CD music in and out as the player crosses the sound radius.
func UpdateAudio(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	cdEntry, ok := tags.CD.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	cd := components.CD.Get(cdEntry)
	settings := GetOrCreateSettings(e)
	a := GetOrCreateAudio(e)

	volume := settings.EffectiveVolume()
	inRange := player.Position.Distance(cd.Current()) < cfg.CD.SoundRadius

	var ev gamemath.FadeEvent
	if cd.InSound && inRange && a.Fader.Target != volume {
		// Volume or mute changed while listening.
		ev = a.Fader.SetTarget(volume)
	}
	if tickEv := sim.UpdateSound(a.Fader, &cd.InSound, inRange, volume); tickEv != gamemath.FadeNone {
		ev = tickEv
	}
	applyFadeEvent(a, ev)

	if a.Player != nil {
		a.Player.SetVolume(a.Fader.Volume)
	}
}

func applyFadeEvent(a *components.AudioData, ev gamemath.FadeEvent) {
	switch ev {
	case gamemath.FadePlay:
		a.Playing = true
		if a.Player != nil {
			a.Player.Play()
		}
		logger.Log.Debug("cd music fading in", zap.Float64("target", a.Fader.Target))
	case gamemath.FadePause:
		a.Playing = false
		if a.Player != nil {
			a.Player.Pause()
		}
		logger.Log.Debug("cd music paused")
	}
}

// SetMusicPlayer installs a freshly loaded track, starting it if a fade is under way.
func SetMusicPlayer(e *ecs.ECS, p *audio.Player, source string) {
	a := GetOrCreateAudio(e)
	if a.Player != nil {
		_ = a.Player.Close()
	}
	a.Player = p
	a.Source = source
	p.SetVolume(a.Fader.Volume)
	if a.Playing && !GetOrCreatePause(e).IsPaused {
		p.Play()
	}
}

// PauseMusic pauses the CD music without touching the fader.
func PauseMusic(e *ecs.ECS) {
	if a := GetOrCreateAudio(e); a.Player != nil {
		a.Player.Pause()
	}
}

// ResumeMusic resumes the CD music if a fade left it playing.
func ResumeMusic(e *ecs.ECS) {
	if a := GetOrCreateAudio(e); a.Player != nil && a.Playing {
		a.Player.Play()
	}
}

// StopMusic closes the current player.
func StopMusic(e *ecs.ECS) {
	a := GetOrCreateAudio(e)
	if a.Player != nil {
		_ = a.Player.Close()
		a.Player = nil
	}
	a.Playing = false
}

// GetOrCreateAudio returns the singleton Audio component, creating if needed.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Fader: gamemath.NewFader(cfg.Audio.FadeStep, cfg.Audio.FadeTicks),
		})
	}
	return components.Audio.Get(entry)
}
