package app

import (
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pfalkner/circumbox/pkg/geometry"
)

// drawOrientationGizmo draws a small cube gizmo in the top-right corner
// showing the current camera orientation. The three edges meeting in
// corner 0 are colored per axis, the rest stay gray.
func (app *App) drawOrientationGizmo() {
	cubeSize := float32(40.0)
	lineThickness := float32(2.0)
	offset := float32(20.0)

	screenWidth := float32(rl.GetScreenWidth())
	origin := rl.Vector2{
		X: screenWidth - cubeSize - offset - 20,
		Y: offset + cubeSize + 20,
	}

	cosX := float32(math.Cos(float64(app.cameraAngleX)))
	sinX := float32(math.Sin(float64(app.cameraAngleX)))
	cosY := float32(math.Cos(float64(app.cameraAngleY)))
	sinY := float32(math.Sin(float64(app.cameraAngleY)))

	// A unit cube shares the corner indexing and edge table of the scene
	// cuboid, so the gizmo reuses both.
	corners := geometry.NewCuboid(2, 2, 2).Corners()

	type projectedCorner struct {
		pos   rl.Vector2
		depth float32
	}
	screenCorners := [8]projectedCorner{}

	for i, corner := range corners {
		x, y, depth := rotateGizmoPoint(corner, cosX, sinX, cosY, sinY)
		screenCorners[i] = projectedCorner{
			pos: rl.Vector2{
				X: origin.X + x*cubeSize,
				Y: origin.Y + y*cubeSize,
			},
			depth: depth,
		}
	}

	type gizmoEdge struct {
		from, to int
		axis     int // 0=X, 1=Y, 2=Z, -1 for uncolored edges
		depth    float32
	}

	edges := make([]gizmoEdge, 0, len(geometry.Edges))
	for _, edge := range geometry.Edges {
		i, j := edge[0], edge[1]

		axis := -1
		if i == 0 || j == 0 {
			switch i ^ j {
			case 4:
				axis = 0
			case 2:
				axis = 1
			case 1:
				axis = 2
			}
		}

		depth := screenCorners[i].depth
		if screenCorners[j].depth < depth {
			depth = screenCorners[j].depth
		}
		edges = append(edges, gizmoEdge{from: i, to: j, axis: axis, depth: depth})
	}

	// Back edges first so front edges draw over them.
	sort.Slice(edges, func(a, b int) bool {
		return edges[a].depth < edges[b].depth
	})

	for _, e := range edges {
		var color rl.Color
		thickness := lineThickness

		switch e.axis {
		case 0:
			color = rl.Red
		case 1:
			color = rl.Green
		case 2:
			color = rl.Blue
		default:
			gray := uint8(90)
			if e.depth < -0.5 {
				gray = 70
				thickness = lineThickness * 0.5
			}
			color = rl.NewColor(gray, gray, gray, 150)
		}

		rl.DrawLineEx(screenCorners[e.from].pos, screenCorners[e.to].pos, thickness, color)
	}

	// Axis letters next to the colored corner's neighbors.
	fontSize := int32(10)
	rl.DrawText("X", int32(screenCorners[4].pos.X)+4, int32(screenCorners[4].pos.Y), fontSize, rl.Red)
	rl.DrawText("Y", int32(screenCorners[2].pos.X)+4, int32(screenCorners[2].pos.Y)-10, fontSize, rl.Green)
	rl.DrawText("Z", int32(screenCorners[1].pos.X)+4, int32(screenCorners[1].pos.Y), fontSize, rl.Blue)
}

// rotateGizmoPoint rotates a cube corner by the camera angles and projects
// it to 2D, returning screen offsets and a depth value for edge sorting
func rotateGizmoPoint(p geometry.Vector3, cosX, sinX, cosY, sinY float32) (float32, float32, float32) {
	px := float32(p.X)
	py := float32(p.Y)
	pz := float32(p.Z)

	// Pitch around X, then yaw around Y.
	y := py*cosX - pz*sinX
	z := py*sinX + pz*cosX

	x := px*cosY + z*sinY
	z = -px*sinY + z*cosY

	return x, -y, z
}
