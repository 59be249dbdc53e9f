package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/cdwalk/assets"
	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/logger"
	"github.com/automoto/cdwalk/systems"
	"github.com/automoto/cdwalk/systems/factory"
	"github.com/automoto/cdwalk/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// WorldScene is the walking demo: the arena, the player and the CD.
type WorldScene struct {
	ecs     *ecs.ECS
	pauseUI *ui.PauseUI
}

// NewWorldScene loads the arena and builds the world. A missing or broken map is fatal.
func NewWorldScene(saved *systems.SavedSettings) (*WorldScene, error) {
	arena, err := factory.LoadArena()
	if err != nil {
		return nil, fmt.Errorf("loading arena: %w", err)
	}
	loader, err := assets.NewLoader(cfg.Debug.Workers)
	if err != nil {
		return nil, fmt.Errorf("starting asset loader: %w", err)
	}

	ws := &WorldScene{}
	ws.configure(arena, loader)
	systems.ApplySavedSettings(ws.ecs, saved)

	logger.Log.Info("world ready",
		zap.String("arena", arena.Name),
		zap.Int("walls", len(arena.Walls)),
		zap.Float64("spawn_x", arena.Spawn.X),
		zap.Float64("spawn_z", arena.Spawn.Z),
	)
	return ws, nil
}

func (ws *WorldScene) configure(arena *assets.Arena, loader *assets.Loader) {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateLoader)

	// Game systems wrapped with pause check
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCD))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAudio))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.HUD, systems.DrawSticks)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ws.ecs = ecs

	factory.Populate(ecs, arena)
	systems.StartAssetLoads(ecs, loader)

	ws.pauseUI = ui.NewPauseUI(
		func() { systems.SetPaused(ws.ecs, components.PauseNone) },
		func() { systems.ToggleMute(ws.ecs) },
		func() { systems.RequestQuit(ws.ecs) },
	)
}

func (ws *WorldScene) Update() {
	ws.ecs.Update()

	pause := systems.GetOrCreatePause(ws.ecs)
	if pause.IsPaused {
		ws.pauseUI.SetMuted(systems.GetOrCreateSettings(ws.ecs).Muted)
		ws.pauseUI.Update()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	ws.ecs.Draw(screen)
	if systems.GetOrCreatePause(ws.ecs).IsPaused {
		ws.pauseUI.Draw(screen)
	}
}

// QuitRequested reports whether the player chose Quit from the pause panel.
func (ws *WorldScene) QuitRequested() bool {
	return systems.GetOrCreatePause(ws.ecs).QuitRequested
}

// Shutdown saves settings and releases audio and loader resources.
func (ws *WorldScene) Shutdown() {
	systems.Shutdown(ws.ecs)
}
