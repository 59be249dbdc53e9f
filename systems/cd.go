package systems

import (
	"github.com/automoto/cdwalk/components"
	"github.com/automoto/cdwalk/logger"
	"github.com/automoto/cdwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateCD runs the proximity trigger of every CD.
func UpdateCD(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	dt := 1 / float64(ebiten.TPS())

	tags.CD.Each(e.World, func(entry *donburi.Entry) {
		cd := components.CD.Get(entry)
		if cd.Trigger.Update(dt, player.Position, cd.Current()) {
			logger.Log.Debug("cd animation started",
				zap.Float64("distance", player.Position.Distance(cd.Current())))
		}
	})
}
