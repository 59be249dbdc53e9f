package factory

import (
	"github.com/automoto/cdwalk/archetypes"
	"github.com/automoto/cdwalk/assets"
	"github.com/automoto/cdwalk/assets/animations"
	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/automoto/cdwalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Walk cycle: eight steps, four ticks each.
const (
	walkFrames        = 8
	walkTicksPerFrame = 4
)

func CreatePlayer(ecs *ecs.ECS, arena *assets.Arena, spawn gamemath.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	data := components.PlayerData{
		Position:   spawn,
		HalfExtent: cfg.Player.HalfExtent,
		Anim:       components.AnimIdle,
		Walk:       animations.NewCycle(0, walkFrames-1, walkTicksPerFrame),
	}
	components.Player.SetValue(player, data)

	x, y, w, h := Footprint(arena, data.Box())
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
