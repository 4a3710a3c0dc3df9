package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pfalkner/circumbox/pkg/geometry"
	"github.com/pfalkner/circumbox/pkg/scene"
)

// surfaceAlpha makes the ellipsoid translucent so the cuboid stays visible
const surfaceAlpha = 110

// ellipsoidToMesh tessellates the ellipsoid surface and converts it to a
// raylib mesh with baked diffuse lighting in the vertex colors
func ellipsoidToMesh(sc *scene.Scene) rl.Mesh {
	triangles := scene.SurfaceMesh(sc.Ellipsoid, sc.Resolution, sc.Resolution)

	triangleCount := len(triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	idx := 0
	for _, triangle := range triangles {
		normal := triangle.Normal

		// Two-sided diffuse: the translucent surface shows its back faces.
		lightIntensity := math.Max(0.3, math.Abs(normal.Dot(lightDir)))
		baseColor := 200.0
		r := uint8(baseColor * lightIntensity * 0.5)
		g := uint8(baseColor * lightIntensity * 0.8)
		b := uint8(baseColor * lightIntensity)

		for _, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = 0
			texcoords[idx*2+1] = 0
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = b
			colors[idx*4+3] = surfaceAlpha
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
	}
	if len(normals) > 0 {
		mesh.Normals = &normals[0]
	}
	if len(texcoords) > 0 {
		mesh.Texcoords = &texcoords[0]
	}
	if len(colors) > 0 {
		mesh.Colors = &colors[0]
	}

	rl.UploadMesh(&mesh, false)

	return mesh
}
