package geometry

import "math"

// Cuboid represents an axis-aligned rectangular box centered on the origin,
// described by its full edge lengths along X, Y and Z
type Cuboid struct {
	A, B, C float64
}

// NewCuboid creates a new cuboid with the given edge lengths.
// Edge lengths are expected to be strictly positive; callers that accept
// user input should validate before constructing.
func NewCuboid(a, b, c float64) Cuboid {
	return Cuboid{A: a, B: b, C: c}
}

// Edges lists the 12 cuboid edges as pairs of corner indices.
// Two corners share an edge exactly when their indices, read as 3-bit
// numbers, differ in a single bit; face and space diagonals never appear.
// The table is only valid for the corner ordering produced by Corners.
var Edges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4},
	{1, 3}, {1, 5},
	{2, 3}, {2, 6},
	{3, 7},
	{4, 5}, {4, 6},
	{5, 7},
	{6, 7},
}

// HalfExtents returns half the edge length along each axis
func (c Cuboid) HalfExtents() Vector3 {
	return Vector3{X: c.A / 2, Y: c.B / 2, Z: c.C / 2}
}

// Corners returns the eight corner points of the cuboid.
// The enumeration order is fixed: the sign of X varies slowest, then Y,
// then Z, so that corner index = 4*bitX + 2*bitY + bitZ where bit 0 means
// the negative half-extent. The Edges table depends on this ordering.
func (c Cuboid) Corners() [8]Vector3 {
	h := c.HalfExtents()

	var corners [8]Vector3
	i := 0
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			for _, sz := range [2]float64{-1, 1} {
				corners[i] = Vector3{X: sx * h.X, Y: sy * h.Y, Z: sz * h.Z}
				i++
			}
		}
	}
	return corners
}

// EdgeLength returns the length of the edge with the given index in Edges.
// Each edge runs parallel to exactly one axis, so its length is the full
// dimension along that axis.
func (c Cuboid) EdgeLength(edge int) float64 {
	i, j := Edges[edge][0], Edges[edge][1]
	switch i ^ j {
	case 4:
		return c.A
	case 2:
		return c.B
	default:
		return c.C
	}
}

// Volume returns the enclosed volume
func (c Cuboid) Volume() float64 {
	return c.A * c.B * c.C
}

// Diagonal returns the length of the space diagonal
func (c Cuboid) Diagonal() float64 {
	return math.Sqrt(c.A*c.A + c.B*c.B + c.C*c.C)
}

// MaxDimension returns the largest edge length
func (c Cuboid) MaxDimension() float64 {
	return math.Max(c.A, math.Max(c.B, c.C))
}
