package factory

import (
	"github.com/automoto/cdwalk/assets"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/automoto/cdwalk/shared/sim"
)

// SimParams builds headless simulation tunables from the config globals.
func SimParams(cdBaseY float64, tickRate int) sim.Params {
	return sim.Params{
		Move: gamemath.MoveParams{
			Speed:         cfg.Player.Speed,
			RotationSpeed: cfg.Player.RotationSpeed,
			HalfExtent:    cfg.Player.HalfExtent,
		},
		Trigger:    TriggerParams(cdBaseY),
		SoundRange: cfg.CD.SoundRadius,
		Volume:     cfg.Audio.MusicVol,
		FadeStep:   cfg.Audio.FadeStep,
		FadeTicks:  cfg.Audio.FadeTicks,
		TickRate:   tickRate,
	}
}

// NewSimulation creates a headless session in arena. Walls are checked brute force.
func NewSimulation(arena *assets.Arena, tickRate int) *sim.State {
	return sim.New(SimParams(arena.CD.Y, tickRate), gamemath.BoxList(arena.Walls), arena.Spawn, arena.CD)
}
