package components

import (
	"github.com/automoto/cdwalk/assets/animations"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimState names the player's current animation.
type AnimState string

const (
	AnimIdle AnimState = "idle"
	AnimWalk AnimState = "walk"
)

type PlayerData struct {
	Position   gamemath.Vec3
	Yaw        float64
	HalfExtent float64
	Anim       AnimState
	Walk       *animations.Cycle // steps while Anim is walk

	// Model is nil until the loader delivers it; the box primitive is drawn meanwhile.
	Model         *ebiten.Image
	ModelFallback bool
}

// Box returns the player's collision box.
func (p *PlayerData) Box() gamemath.Box3 {
	return gamemath.CubeAt(p.Position, p.HalfExtent)
}

var Player = donburi.NewComponentType[PlayerData]()
