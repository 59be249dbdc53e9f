package main

import (
	"fmt"
	"io"

	"github.com/automoto/cdwalk/logger"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/automoto/cdwalk/shared/sim"
	"github.com/automoto/cdwalk/systems/factory"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// simTickRate matches ebiten's default update rate.
const simTickRate = 60

type simulateCmd struct {
	Ticks int       `help:"Number of ticks to run." default:"600"`
	Left  []float64 `help:"Left stick as X,Y in [-1,1]." placeholder:"X,Y"`
	Right []float64 `help:"Right stick as X,Y in [-1,1]." placeholder:"X,Y"`
}

// simReport is the final state printed by the simulate command.
type simReport struct {
	Ticks      int        `yaml:"ticks"`
	Player     [3]float64 `yaml:"player"`
	Yaw        float64    `yaml:"yaw"`
	Camera     float64    `yaml:"camera_angle"`
	CDY        float64    `yaml:"cd_y"`
	CDActive   bool       `yaml:"cd_animating"`
	CDStarts   int        `yaml:"cd_starts"`
	Volume     float64    `yaml:"volume"`
	Playing    bool       `yaml:"playing"`
	FadeEvents int        `yaml:"fade_events"`
}

func parseStick(name string, v []float64) (gamemath.Stick, error) {
	switch len(v) {
	case 0:
		return gamemath.Stick{}, nil
	case 2:
		if v[0] < -1 || v[0] > 1 || v[1] < -1 || v[1] > 1 {
			return gamemath.Stick{}, fmt.Errorf("--%s: values must be in [-1,1], got %v", name, v)
		}
		return gamemath.Stick{X: v[0], Y: v[1], Active: true}, nil
	default:
		return gamemath.Stick{}, fmt.Errorf("--%s: expected X,Y, got %d values", name, len(v))
	}
}

func (c *simulateCmd) Run(w io.Writer) error {
	if c.Ticks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", c.Ticks)
	}
	left, err := parseStick("left", c.Left)
	if err != nil {
		return err
	}
	right, err := parseStick("right", c.Right)
	if err != nil {
		return err
	}

	arena, err := factory.LoadArena()
	if err != nil {
		return fmt.Errorf("loading arena: %w", err)
	}

	s := factory.NewSimulation(arena, simTickRate)
	s.Left, s.Right = left, right

	report := simReport{}
	for range c.Ticks {
		ev := sim.Step(s)
		if ev.CDStarted {
			report.CDStarts++
			logger.Log.Debug("cd animation started", zap.Int("tick", s.Ticks))
		}
		if ev.Fade != gamemath.FadeNone {
			report.FadeEvents++
		}
	}

	report.Ticks = s.Ticks
	report.Player = [3]float64{s.Player.X, s.Player.Y, s.Player.Z}
	report.Yaw = s.Yaw
	report.Camera = s.CameraAngle
	report.CDY = s.Trigger.Pose.Y
	report.CDActive = s.Trigger.Active()
	report.Volume = s.Fader.Volume
	report.Playing = s.Playing

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return enc.Close()
}
