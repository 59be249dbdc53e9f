package systems

import (
	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/automoto/cdwalk/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer integrates stick input into player movement and camera orbit.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	camera := components.Camera.Get(cameraEntry)
	obj := components.Object.Get(playerEntry)
	arena := components.Arena.Get(arenaEntry).Arena

	left, right := effectiveSticks(GetOrCreateSticks(ecs), getOrCreateInput(ecs))

	obstacles := newSpaceObstacles(arena, obj.Object)
	res := gamemath.Integrate(obstacles, player.Position, camera.Orbit.Angle, left, right, gamemath.MoveParams{
		Speed:         cfg.Player.Speed,
		RotationSpeed: cfg.Player.RotationSpeed,
		HalfExtent:    player.HalfExtent,
	})

	moved := res.Position != player.Position
	if moved {
		player.Yaw = gamemath.FacingYaw(res.Position.Sub(player.Position))
	}
	player.Position = res.Position
	camera.Orbit.Angle = res.CameraAngle

	updatePlayerAnim(player, moved)

	// The overlap query left the body wherever the last query put it.
	syncFootprint(arena, obj.Object, player.Box())
}

func updatePlayerAnim(player *components.PlayerData, moved bool) {
	if !moved {
		player.Anim = components.AnimIdle
		return
	}
	if player.Anim != components.AnimWalk {
		player.Anim = components.AnimWalk
		player.Walk.Restart()
	}
	player.Walk.Update()
}
