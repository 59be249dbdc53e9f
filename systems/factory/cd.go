package factory

import (
	"github.com/automoto/cdwalk/archetypes"
	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TriggerParams builds the CD trigger tunables for a disc resting at baseY.
func TriggerParams(baseY float64) gamemath.TriggerParams {
	return gamemath.TriggerParams{
		Radius:   cfg.CD.TriggerRadius,
		Duration: cfg.CD.Duration,
		BaseY:    baseY,
		Height:   cfg.CD.BobHeight,
		Rotation: cfg.CD.Rotation,
	}
}

func CreateCD(ecs *ecs.ECS, pos gamemath.Vec3) *donburi.Entry {
	cd := archetypes.CD.Spawn(ecs)
	components.CD.SetValue(cd, components.CDData{
		Position: pos,
		Trigger:  gamemath.NewTrigger(TriggerParams(pos.Y)),
		Radius:   cfg.CD.DiscRadius,
	})
	return cd
}
