package scene

import (
	"github.com/pfalkner/circumbox/pkg/geometry"
)

// SurfaceMesh tessellates the ellipsoid's parametric surface into triangles
// for mesh-based renderers. The grid is nu x nv cells; each cell away from
// the poles yields two triangles, cells touching a pole collapse to one.
func SurfaceMesh(e geometry.Ellipsoid, nu, nv int) []geometry.Triangle {
	grid := e.SurfaceGrid(nu, nv)

	triangles := make([]geometry.Triangle, 0, 2*nu*nv)
	for i := 0; i < nu; i++ {
		for j := 0; j < nv; j++ {
			// Cell corners: p00 at (u_i, v_j), u varies with i, v with j.
			p00 := grid[i][j]
			p10 := grid[i+1][j]
			p01 := grid[i][j+1]
			p11 := grid[i+1][j+1]

			// At v=0 the row degenerates to the +Z pole, at v=pi to -Z.
			if j > 0 {
				triangles = append(triangles, newSurfaceTriangle(p00, p10, p11))
			}
			if j < nv-1 {
				triangles = append(triangles, newSurfaceTriangle(p00, p11, p01))
			}
		}
	}
	return triangles
}

func newSurfaceTriangle(v1, v2, v3 geometry.Vector3) geometry.Triangle {
	t := geometry.Triangle{V1: v1, V2: v2, V3: v3}
	t.Normal = t.CalculateNormal()
	return t
}
