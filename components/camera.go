package components

import (
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Orbit  gamemath.OrbitCamera
	FOV    float64 // radians
	Near   float64
	Target gamemath.Vec3
	Eye    gamemath.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()
