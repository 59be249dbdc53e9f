package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/cdwalk/config"
)

func TestUpdateCDTriggersInRange(t *testing.T) {
	e := newTestWorld(t)
	cd := testCD(t, e)

	UpdateCD(e)
	if cd.Trigger.Active() {
		t.Fatal("cd should stay idle while the player is far away")
	}

	placePlayer(t, e, cd.Position.X+1, 0.5, cd.Position.Z)
	UpdateCD(e)
	if !cd.Trigger.Active() {
		t.Fatal("expected the cd to start animating")
	}

	// Walk away and let the cycle run to its peak.
	placePlayer(t, e, 0, 0.5, 0)
	for range 59 {
		UpdateCD(e)
	}
	peak := cd.Position.Y + cfg.CD.BobHeight
	if math.Abs(cd.Trigger.Pose.Y-peak) > 0.01 {
		t.Errorf("expected height near %f halfway through, got %f", peak, cd.Trigger.Pose.Y)
	}

	for range 70 {
		UpdateCD(e)
	}
	if cd.Trigger.Active() {
		t.Error("expected the cd to settle after its cycle")
	}
	if cd.Trigger.Pose.Y != cd.Position.Y {
		t.Errorf("expected the cd back at rest height %f, got %f", cd.Position.Y, cd.Trigger.Pose.Y)
	}
}
