package components

import (
	"github.com/automoto/cdwalk/assets"
	"github.com/yohamta/donburi"
)

// LoaderData owns the background asset loader for a scene.
type LoaderData struct {
	Loader *assets.Loader
}

var Loader = donburi.NewComponentType[LoaderData]()
