package factory

import (
	"github.com/automoto/cdwalk/assets"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/yohamta/donburi/ecs"
)

// Populate spawns the arena, its walls, the player, the CD and the camera.
// The space must exist before walls and player so their bodies are registered.
func Populate(ecs *ecs.ECS, arena *assets.Arena) {
	CreateArena(ecs, arena)
	CreateSpace(ecs, arena.MapWidth, arena.MapHeight, cfg.Arena.CellSize, cfg.Arena.CellSize)
	for _, w := range arena.Walls {
		CreateWall(ecs, arena, w)
	}
	CreatePlayer(ecs, arena, arena.Spawn)
	CreateCD(ecs, arena.CD)
	CreateCamera(ecs, arena.Spawn)
}
