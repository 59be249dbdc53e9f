package systems

import (
	"github.com/automoto/cdwalk/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the broad-phase cells of every body.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
