package gamemath

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TriggerParams describes the proximity-activated bob-and-spin animation.
type TriggerParams struct {
	Radius   float64 // activation distance, exclusive
	Duration float64 // seconds
	BaseY    float64
	Height   float64 // bob amplitude
	Rotation float64 // radians turned over one animation
}

// TriggerState is either Idle or Animating.
type TriggerState interface {
	triggerState()
}

// Idle waits for the player to come within range.
type Idle struct{}

// Animating plays one bob-and-spin cycle.
type Animating struct {
	Elapsed  float64
	progress *gween.Tween
}

func (Idle) triggerState() {}
func (*Animating) triggerState() {}

// Pose is where the animated object should be drawn.
type Pose struct {
	Y   float64
	Yaw float64
}

// Trigger is the proximity state machine of an ambient object.
type Trigger struct {
	Params TriggerParams
	State  TriggerState
	Pose   Pose
}

// NewTrigger returns an idle trigger resting at its base height.
func NewTrigger(p TriggerParams) *Trigger {
	return &Trigger{
		Params: p,
		State:  Idle{},
		Pose:   Pose{Y: p.BaseY},
	}
}

// InRange reports whether the player is close enough to activate the trigger.
func (t *Trigger) InRange(player, object Vec3) bool {
	return player.Distance(object) < t.Params.Radius
}

// Active reports whether an animation is playing.
func (t *Trigger) Active() bool {
	_, ok := t.State.(*Animating)
	return ok
}

// Update advances the state machine by dt seconds. It returns true on the tick an
// animation starts.
func (t *Trigger) Update(dt float64, player, object Vec3) bool {
	switch s := t.State.(type) {
	case *Animating:
		s.Elapsed += dt
		progress, done := s.progress.Update(float32(dt))
		t.Pose = t.poseAt(float64(progress))
		if done {
			t.State = Idle{}
		}
		return false
	default:
		if !t.InRange(player, object) {
			return false
		}
		t.State = &Animating{
			progress: gween.New(0, 1, float32(t.Params.Duration), ease.Linear),
		}
		return true
	}
}

func (t *Trigger) poseAt(progress float64) Pose {
	progress = Clamp(progress, 0, 1)
	return Pose{
		Y:   t.Params.BaseY + math.Sin(progress*math.Pi)*t.Params.Height,
		Yaw: progress * t.Params.Rotation,
	}
}
