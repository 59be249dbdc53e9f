package components

import (
	"github.com/automoto/cdwalk/assets"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	Arena *assets.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
