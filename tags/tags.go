package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	CD     = donburi.NewTag().SetName("CD")
)

// Resolv tags for broad-phase queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
