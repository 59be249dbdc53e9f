package gamemath

// Box3 is an axis-aligned box.
type Box3 struct {
	Min, Max Vec3
}

// BoxAt builds a box of the given full size centred on center.
func BoxAt(center, size Vec3) Box3 {
	half := size.Scale(0.5)
	return Box3{Min: center.Sub(half), Max: center.Add(half)}
}

// CubeAt builds a cube with the given half extent centred on center.
func CubeAt(center Vec3, halfExtent float64) Box3 {
	h := Vec3{halfExtent, halfExtent, halfExtent}
	return Box3{Min: center.Sub(h), Max: center.Add(h)}
}

func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Overlaps reports whether two boxes intersect. Touching faces count.
func (b Box3) Overlaps(o Box3) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Corners returns the eight corners, bottom face first.
func (b Box3) Corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
	}
}

// BoxEdges indexes Corners() pairwise into the twelve box edges.
var BoxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}
