package components

import (
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/yohamta/donburi"
)

// WallData is a static collision volume. It never changes after creation.
type WallData struct {
	Box gamemath.Box3
}

var Wall = donburi.NewComponentType[WallData]()
