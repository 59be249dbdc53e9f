package systems

import (
	"image"

	"github.com/automoto/cdwalk/assets"
	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/logger"
	"github.com/automoto/cdwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// StartAssetLoads queues the player model and the CD music on the scene's loader.
// A missing loader or a rejected job falls back immediately.
func StartAssetLoads(e *ecs.ECS, loader *assets.Loader) {
	entry := e.World.Entry(e.World.Create(components.Loader))
	components.Loader.SetValue(entry, components.LoaderData{Loader: loader})

	modelPath := cfg.Player.ModelPath
	err := loader.Submit(assets.KindModel, modelPath, func() (any, error) {
		return assets.DecodeModel(modelPath)
	})
	if err != nil {
		applyModel(e, assets.Result{Kind: assets.KindModel, Path: modelPath, Err: err})
	}

	musicPath := cfg.Audio.MusicPath
	sampleRate := cfg.Audio.SampleRate
	if musicPath == "" {
		musicPath = assets.ToneSource
	}
	err = loader.Submit(assets.KindMusic, musicPath, func() (any, error) {
		if musicPath == assets.ToneSource {
			return assets.Tone(sampleRate, cfg.Audio.ToneHz), nil
		}
		return assets.DecodeMusicFile(musicPath, sampleRate)
	})
	if err != nil {
		applyMusic(e, assets.Result{Kind: assets.KindMusic, Path: musicPath, Err: err})
	}
}

// UpdateLoader applies finished background loads. It runs even while paused.
func UpdateLoader(e *ecs.ECS) {
	entry, ok := components.Loader.First(e.World)
	if !ok {
		return
	}
	loader := components.Loader.Get(entry).Loader
	if loader == nil {
		return
	}
	for _, res := range loader.Poll() {
		switch res.Kind {
		case assets.KindModel:
			applyModel(e, res)
		case assets.KindMusic:
			applyMusic(e, res)
		}
	}
}

func applyModel(e *ecs.ECS, res assets.Result) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	img, isImage := res.Value.(image.Image)
	if res.Err != nil || !isImage {
		player.ModelFallback = true
		logger.Log.Warn("player model unavailable, drawing box",
			zap.String("path", res.Path), zap.Error(res.Err))
		return
	}
	player.Model = ebiten.NewImageFromImage(img)
	logger.Log.Info("player model loaded", zap.String("path", res.Path))
}

func applyMusic(e *ecs.ECS, res assets.Result) {
	source := res.Path
	pcm, ok := res.Value.([]byte)
	if res.Err != nil || !ok {
		logger.Log.Warn("cd music unavailable, using tone",
			zap.String("path", res.Path), zap.Error(res.Err))
		pcm = assets.Tone(cfg.Audio.SampleRate, cfg.Audio.ToneHz)
		source = assets.ToneSource
	}

	p, err := assets.NewLoopPlayer(audioContext(), pcm)
	if err != nil {
		logger.Log.Warn("could not create music player", zap.Error(err))
		return
	}
	SetMusicPlayer(e, p, source)
	logger.Log.Info("cd music ready", zap.String("source", source))
}
