package factory

import (
	"math"

	"github.com/automoto/cdwalk/archetypes"
	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, target gamemath.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	orbit := gamemath.OrbitCamera{
		Distance: cfg.Camera.Distance,
		Height:   cfg.Camera.Height,
	}
	components.Camera.SetValue(camera, components.CameraData{
		Orbit:  orbit,
		FOV:    cfg.Camera.FOV * math.Pi / 180,
		Near:   cfg.Camera.Near,
		Target: target,
		Eye:    orbit.Eye(target),
	})
	return camera
}
