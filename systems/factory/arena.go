package factory

import (
	"github.com/automoto/cdwalk/archetypes"
	"github.com/automoto/cdwalk/assets"
	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/logger"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ArenaOptions builds map loading options from the config globals.
func ArenaOptions() assets.ArenaOptions {
	walls := make([]gamemath.Box3, 0, len(cfg.Arena.Walls))
	for _, w := range cfg.Arena.Walls {
		walls = append(walls, gamemath.BoxAt(
			gamemath.Vec3{X: w.X, Y: w.Y, Z: w.Z},
			gamemath.Vec3{X: w.W, Y: w.H, Z: w.D},
		))
	}
	return assets.ArenaOptions{
		PixelsPerUnit: cfg.Arena.PixelsPerUnit,
		WallHeight:    cfg.Arena.WallHeight,
		Spawn:         gamemath.Vec3{X: cfg.Arena.SpawnX, Y: cfg.Arena.SpawnY, Z: cfg.Arena.SpawnZ},
		CD:            gamemath.Vec3{X: cfg.Arena.CDX, Y: cfg.Arena.CDY, Z: cfg.Arena.CDZ},
		Walls:         walls,
	}
}

// LoadArena reads the configured map. Missing objects are logged and replaced by defaults.
func LoadArena() (*assets.Arena, error) {
	arena, err := assets.NewArenaLoader(ArenaOptions()).LoadArena(cfg.Arena.MapPath)
	if err != nil {
		return nil, err
	}
	for _, w := range arena.Warnings {
		logger.Log.Warn("arena fallback", zap.String("map", arena.Name), zap.String("reason", w))
	}
	return arena, nil
}

func CreateArena(ecs *ecs.ECS, arena *assets.Arena) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{Arena: arena})
	return entry
}
