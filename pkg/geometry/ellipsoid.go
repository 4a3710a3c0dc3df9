package geometry

import "math"

// Ellipsoid represents an axis-aligned ellipsoid centered on the origin,
// described by its three semi-axis lengths
type Ellipsoid struct {
	Rx, Ry, Rz float64
}

// Circumscribe returns the minimal-volume axis-aligned ellipsoid passing
// through all eight corners of the cuboid. Each semi-axis is (sqrt(3)/2)
// times the corresponding full dimension, so the semi-axis ratio always
// matches the cuboid's edge ratio and every corner satisfies
// (x/Rx)^2 + (y/Ry)^2 + (z/Rz)^2 = 1.
func Circumscribe(c Cuboid) Ellipsoid {
	k := math.Sqrt(3) / 2
	return Ellipsoid{Rx: k * c.A, Ry: k * c.B, Rz: k * c.C}
}

// SemiAxes returns the semi-axis lengths as a vector
func (e Ellipsoid) SemiAxes() Vector3 {
	return Vector3{X: e.Rx, Y: e.Ry, Z: e.Rz}
}

// PointAt evaluates the standard spherical parametrization of the surface.
// u in [0, 2pi] sweeps azimuth, v in [0, pi] runs from the +Z pole (v=0)
// to the -Z pole (v=pi).
func (e Ellipsoid) PointAt(u, v float64) Vector3 {
	sv := math.Sin(v)
	return Vector3{
		X: e.Rx * sv * math.Cos(u),
		Y: e.Ry * sv * math.Sin(u),
		Z: e.Rz * math.Cos(v),
	}
}

// SurfaceGrid samples the surface on a regular (nu+1) x (nv+1) parameter
// grid, u varying along the outer slice and v along the inner one. Both
// counts must be at least 1. The first and last u rows coincide (u=0 and
// u=2pi) so that renderers can close the surface without a seam.
func (e Ellipsoid) SurfaceGrid(nu, nv int) [][]Vector3 {
	grid := make([][]Vector3, nu+1)
	for i := 0; i <= nu; i++ {
		u := 2 * math.Pi * float64(i) / float64(nu)
		row := make([]Vector3, nv+1)
		for j := 0; j <= nv; j++ {
			v := math.Pi * float64(j) / float64(nv)
			row[j] = e.PointAt(u, v)
		}
		grid[i] = row
	}
	return grid
}

// ImplicitValue evaluates the implicit surface equation at a point.
// The result is 1 on the surface, less than 1 inside and greater outside.
func (e Ellipsoid) ImplicitValue(p Vector3) float64 {
	x := p.X / e.Rx
	y := p.Y / e.Ry
	z := p.Z / e.Rz
	return x*x + y*y + z*z
}

// Volume returns the enclosed volume, 4/3 pi Rx Ry Rz
func (e Ellipsoid) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * e.Rx * e.Ry * e.Rz
}
