package gamemath

import (
	"math"
	"testing"
)

func TestProjectorCentersTarget(t *testing.T) {
	cam := OrbitCamera{Angle: 0.7, Distance: 5, Height: 2}
	target := Vec3{3, 0.5, -4}
	p := NewProjector(cam.Eye(target), target, 75*math.Pi/180, 0.1, 640, 360)

	x, y, ok := p.Project(target)
	if !ok {
		t.Fatal("expected the target to be visible")
	}
	if math.Abs(x-320) > 1e-6 || math.Abs(y-180) > 1e-6 {
		t.Errorf("expected screen centre, got (%f, %f)", x, y)
	}
}

func TestProjectorRejectsBehindCamera(t *testing.T) {
	cam := OrbitCamera{Distance: 5, Height: 2}
	target := Vec3{}
	eye := cam.Eye(target)
	p := NewProjector(eye, target, math.Pi/2, 0.1, 640, 360)

	if _, _, ok := p.Project(eye.Add(Vec3{Z: 3})); ok {
		t.Error("expected a point behind the camera to be rejected")
	}

	// A segment crossing the near plane is clipped, not dropped.
	if _, _, _, _, ok := p.ProjectSegment(eye.Add(Vec3{Z: 3}), target); !ok {
		t.Error("expected the visible half of the segment to project")
	}
}

func TestProjectorUpIsUp(t *testing.T) {
	cam := OrbitCamera{Distance: 5, Height: 0}
	target := Vec3{}
	p := NewProjector(cam.Eye(target), target, math.Pi/2, 0.1, 640, 360)

	_, yLow, _ := p.Project(Vec3{})
	_, yHigh, _ := p.Project(Vec3{Y: 1})
	if yHigh >= yLow {
		t.Errorf("expected higher points to draw higher on screen, got %f >= %f", yHigh, yLow)
	}
}

func TestClipPolygonDropsBehindCamera(t *testing.T) {
	cam := OrbitCamera{Distance: 5, Height: 2}
	target := Vec3{}
	p := NewProjector(cam.Eye(target), target, math.Pi/2, 0.1, 640, 360)

	floor := []Vec3{{-1, 0, -10}, {1, 0, -10}, {1, 0, 10}, {-1, 0, 10}}
	clipped := p.ClipPolygon(floor)
	if len(clipped) != 4 {
		t.Fatalf("expected a clipped quad, got %d points", len(clipped))
	}
	for _, pt := range clipped {
		if p.Depth(pt) < 0.1-1e-9 {
			t.Errorf("point %+v is behind the near plane", pt)
		}
	}
}

func TestClipPolygonKeepsVisible(t *testing.T) {
	cam := OrbitCamera{Distance: 5, Height: 2}
	target := Vec3{}
	p := NewProjector(cam.Eye(target), target, math.Pi/2, 0.1, 640, 360)

	tri := []Vec3{{-1, 0, -1}, {1, 0, -1}, {0, 0, 1}}
	clipped := p.ClipPolygon(tri)
	if len(clipped) != 3 {
		t.Fatalf("expected triangle untouched, got %d points", len(clipped))
	}
	for i := range tri {
		if clipped[i] != tri[i] {
			t.Errorf("point %d changed: %+v", i, clipped[i])
		}
	}
}

func TestClipPolygonAllBehind(t *testing.T) {
	cam := OrbitCamera{Distance: 5, Height: 2}
	target := Vec3{}
	p := NewProjector(cam.Eye(target), target, math.Pi/2, 0.1, 640, 360)

	tri := []Vec3{{-1, 0, 20}, {1, 0, 20}, {0, 0, 30}}
	if got := p.ClipPolygon(tri); len(got) != 0 {
		t.Errorf("expected nothing visible, got %d points", len(got))
	}
}

func TestProjectPolygonKeepsFloorAcrossNearPlane(t *testing.T) {
	// Spawn view over the 20x40 arena floor.
	cam := OrbitCamera{Distance: 5, Height: 2}
	target := Vec3{Y: 0.5}
	p := NewProjector(cam.Eye(target), target, 75*math.Pi/180, 0.1, 960, 540)

	floor := []Vec3{{-10, 0, -20}, {10, 0, -20}, {10, 0, 20}, {-10, 0, 20}}
	clipped := p.ClipPolygon(floor)
	if len(clipped) < 3 {
		t.Fatalf("expected the floor to survive clipping, got %d points", len(clipped))
	}

	screen := p.ProjectPolygon(nil, floor)
	if len(screen) != len(clipped) {
		t.Fatalf("expected %d projected points, got %d", len(clipped), len(screen))
	}
	for i, pt := range screen {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			t.Errorf("point %d projected to %+v", i, pt)
		}
	}

	// Edges of the floor that cross the near plane still draw.
	if _, _, _, _, ok := p.ProjectSegment(floor[2], floor[1]); !ok {
		t.Error("expected the east floor edge to project")
	}
	if _, _, _, _, ok := p.ProjectSegment(Vec3{X: 0, Z: 20}, Vec3{X: 0, Z: -20}); !ok {
		t.Error("expected a grid line through the near plane to project")
	}
}

func TestProjectPolygonAppends(t *testing.T) {
	cam := OrbitCamera{Distance: 5, Height: 2}
	target := Vec3{}
	p := NewProjector(cam.Eye(target), target, math.Pi/2, 0.1, 640, 360)

	tri := []Vec3{{-1, 0, -1}, {1, 0, -1}, {0, 0, 1}}
	buf := make([]ScreenPoint, 1, 8)
	got := p.ProjectPolygon(buf, tri)
	if len(got) != 4 {
		t.Fatalf("expected 4 points after the existing one, got %d", len(got))
	}
	for i, pt := range tri {
		x, y, ok := p.Project(pt)
		if !ok {
			t.Fatalf("expected vertex %d to be visible", i)
		}
		if got[i+1] != (ScreenPoint{X: x, Y: y}) {
			t.Errorf("vertex %d: expected (%f, %f), got %+v", i, x, y, got[i+1])
		}
	}

	behind := []Vec3{{-1, 0, 20}, {1, 0, 20}, {0, 0, 30}}
	if got := p.ProjectPolygon(nil, behind); len(got) != 0 {
		t.Errorf("expected nothing visible, got %d points", len(got))
	}
}
