package systems

import (
	"github.com/automoto/cdwalk/components"
	"github.com/automoto/cdwalk/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the orbit camera looking at the player.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	camera.Target = player.Position
	camera.Eye = camera.Orbit.Eye(camera.Target)
}
