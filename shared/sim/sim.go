// Package sim runs the walking demo without a window: one explicit State value holds
// everything the game loop mutates and Step advances it by a tick.
// It must have zero dependencies on ebiten so it can run from the command line and tests.
package sim

import (
	"github.com/automoto/cdwalk/shared/gamemath"
)

// Params are the fixed tunables of a simulation.
type Params struct {
	Move       gamemath.MoveParams
	Trigger    gamemath.TriggerParams
	SoundRange float64
	Volume     float64
	FadeStep   float64
	FadeTicks  int
	TickRate   int
}

// State is the whole mutable world of one session.
type State struct {
	Params Params

	Player      gamemath.Vec3
	Yaw         float64
	Walls       gamemath.Obstacles
	Left, Right gamemath.Stick
	CameraAngle float64

	CD      gamemath.Vec3
	Trigger *gamemath.Trigger
	Fader   *gamemath.Fader
	InSound bool
	Playing bool

	Ticks int
}

// New creates a state with the player at spawn and the CD resting at cd.
func New(p Params, walls gamemath.Obstacles, spawn, cd gamemath.Vec3) *State {
	return &State{
		Params:  p,
		Player:  spawn,
		Walls:   walls,
		CD:      cd,
		Trigger: gamemath.NewTrigger(p.Trigger),
		Fader:   gamemath.NewFader(p.FadeStep, p.FadeTicks),
	}
}

// Events reports what happened during a Step.
type Events struct {
	CDStarted bool
	Fade      gamemath.FadeEvent
}

// Step advances the state by one tick.
func Step(s *State) Events {
	var ev Events

	res := gamemath.Integrate(s.Walls, s.Player, s.CameraAngle, s.Left, s.Right, s.Params.Move)
	if res.Position != s.Player {
		s.Yaw = gamemath.FacingYaw(res.Position.Sub(s.Player))
	}
	s.Player = res.Position
	s.CameraAngle = res.CameraAngle

	dt := 1 / float64(s.Params.TickRate)
	cd := s.CD
	cd.Y = s.Trigger.Pose.Y
	ev.CDStarted = s.Trigger.Update(dt, s.Player, cd)

	ev.Fade = UpdateSound(s.Fader, &s.InSound, s.Player.Distance(cd) < s.Params.SoundRange, s.Params.Volume)
	switch ev.Fade {
	case gamemath.FadePlay:
		s.Playing = true
	case gamemath.FadePause:
		s.Playing = false
	}

	s.Ticks++
	return ev
}

// UpdateSound retargets the fader when the player crosses the sound range and then
// advances it by one tick. inRange remembers the side of the range the player was on.
func UpdateSound(f *gamemath.Fader, inRange *bool, nowInRange bool, volume float64) gamemath.FadeEvent {
	var ev gamemath.FadeEvent
	if nowInRange != *inRange {
		*inRange = nowInRange
		if nowInRange {
			ev = f.SetTarget(volume)
		} else {
			ev = f.SetTarget(0)
		}
	}

	if tickEv := f.Tick(); tickEv != gamemath.FadeNone {
		ev = tickEv
	}
	return ev
}
