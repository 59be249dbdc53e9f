package gamemath

import "math"

// OrbitCamera circles a target at a fixed distance and height.
type OrbitCamera struct {
	Angle    float64
	Distance float64
	Height   float64
}

// Eye returns the camera position for a given target.
func (c OrbitCamera) Eye(target Vec3) Vec3 {
	return Vec3{
		X: target.X + math.Sin(c.Angle)*c.Distance,
		Y: target.Y + c.Height,
		Z: target.Z + math.Cos(c.Angle)*c.Distance,
	}
}

// Projector maps world points to screen pixels for one frame.
type Projector struct {
	eye                Vec3
	forward, right, up Vec3
	focal              float64
	centerX, centerY   float64
	near               float64
}

// NewProjector builds a perspective projection looking from eye at target.
// fovY is the vertical field of view in radians.
func NewProjector(eye, target Vec3, fovY, near float64, width, height int) Projector {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(Up).Normalize()
	up := right.Cross(forward)

	return Projector{
		eye:     eye,
		forward: forward,
		right:   right,
		up:      up,
		focal:   float64(height) / 2 / math.Tan(fovY/2),
		centerX: float64(width) / 2,
		centerY: float64(height) / 2,
		near:    near,
	}
}

// Depth returns how far in front of the camera p is.
func (p Projector) Depth(pt Vec3) float64 {
	return pt.Sub(p.eye).Dot(p.forward)
}

// ScreenPoint is a position in screen pixels.
type ScreenPoint struct {
	X, Y float64
}

// Project returns the screen position of pt. ok is false behind the near plane.
func (p Projector) Project(pt Vec3) (x, y float64, ok bool) {
	if p.Depth(pt) < p.near {
		return 0, 0, false
	}
	x, y = p.project(pt)
	return x, y, true
}

// project skips the near test. Points already clipped to the near plane may sit an ulp
// in front of it.
func (p Projector) project(pt Vec3) (x, y float64) {
	d := pt.Sub(p.eye)
	z := d.Dot(p.forward)
	x = p.centerX + d.Dot(p.right)/z*p.focal
	y = p.centerY - d.Dot(p.up)/z*p.focal
	return x, y
}

// ProjectSegment clips a to b against the near plane and projects what remains.
func (p Projector) ProjectSegment(a, b Vec3) (x0, y0, x1, y1 float64, ok bool) {
	da, db := p.Depth(a), p.Depth(b)
	if da < p.near && db < p.near {
		return 0, 0, 0, 0, false
	}
	if da < p.near {
		a = a.Add(b.Sub(a).Scale((p.near - da) / (db - da)))
	} else if db < p.near {
		b = b.Add(a.Sub(b).Scale((p.near - db) / (da - db)))
	}

	x0, y0 = p.project(a)
	x1, y1 = p.project(b)
	return x0, y0, x1, y1, true
}

// ProjectPolygon clips a convex polygon to the near plane and appends the screen
// positions of what remains to dst.
func (p Projector) ProjectPolygon(dst []ScreenPoint, pts []Vec3) []ScreenPoint {
	for _, pt := range p.ClipPolygon(pts) {
		x, y := p.project(pt)
		dst = append(dst, ScreenPoint{X: x, Y: y})
	}
	return dst
}

// Scale returns how many pixels one world unit covers at pt's depth.
func (p Projector) Scale(pt Vec3) float64 {
	z := p.Depth(pt)
	if z < p.near {
		return 0
	}
	return p.focal / z
}

// ClipPolygon cuts a convex polygon at the near plane and returns the visible part.
func (p Projector) ClipPolygon(pts []Vec3) []Vec3 {
	out := make([]Vec3, 0, len(pts)+1)
	for i, cur := range pts {
		prev := pts[(i+len(pts)-1)%len(pts)]
		dc, dp := p.Depth(cur)-p.near, p.Depth(prev)-p.near
		if dc >= 0 {
			if dp < 0 {
				out = append(out, prev.Add(cur.Sub(prev).Scale(dp/(dp-dc))))
			}
			out = append(out, cur)
		} else if dp >= 0 {
			out = append(out, prev.Add(cur.Sub(prev).Scale(dp/(dp-dc))))
		}
	}
	return out
}
