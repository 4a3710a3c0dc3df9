// Package app implements the interactive raylib viewer for a cuboid and
// its circumscribing ellipsoid.
package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pfalkner/circumbox/pkg/analysis"
	"github.com/pfalkner/circumbox/pkg/scene"
)

// App holds the viewer state for one scene
type App struct {
	scene  *scene.Scene
	report *analysis.Report

	mesh     rl.Mesh
	material rl.Material

	camera         rl.Camera3D
	cameraDistance float32
	cameraAngleX   float32
	cameraAngleY   float32
	cameraTarget   rl.Vector3

	sceneSize float32 // for scaling markers and line thickness

	isPanning bool

	showCuboid  bool
	showSurface bool
	showLabels  bool
	showGizmo   bool
}

// Run opens a window and displays the scene until the user closes it
func Run(sc *scene.Scene) {
	screenWidth := int32(1400)
	screenHeight := int32(900)
	rl.InitWindow(screenWidth, screenHeight, sc.Title())
	rl.SetTargetFPS(60)

	app := &App{
		scene:       sc,
		report:      analysis.Analyze(sc),
		showCuboid:  true,
		showSurface: true,
		showLabels:  sc.Labels != nil,
		showGizmo:   true,
	}

	app.mesh = ellipsoidToMesh(sc)
	app.material = rl.LoadMaterialDefault()

	// Frame the camera on the scene, like an equal-aspect view: the
	// distance follows the largest extent so the whole ellipsoid fits.
	bounds := sc.Bounds()
	size := bounds.Size()
	maxDim := size.X
	if size.Y > maxDim {
		maxDim = size.Y
	}
	if size.Z > maxDim {
		maxDim = size.Z
	}

	app.sceneSize = float32(maxDim)
	app.cameraDistance = float32(maxDim * 2.0)
	app.cameraAngleX = 0.3
	app.cameraAngleY = 0.3
	app.cameraTarget = rl.Vector3{}

	app.camera = rl.Camera3D{
		Position:   rl.Vector3{Z: app.cameraDistance},
		Target:     app.cameraTarget,
		Up:         rl.Vector3{Y: 1},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.camera)

		if app.showSurface {
			rl.DrawMesh(app.mesh, app.material, rl.MatrixIdentity())
		}
		if app.showCuboid {
			app.drawCuboid()
		}
		if app.showLabels {
			app.drawVertexMarkers()
		}

		rl.EndMode3D()

		// Label text is drawn in 2D screen space after the 3D pass.
		if app.showLabels {
			app.drawVertexLabels()
		}
		if app.showGizmo {
			app.drawOrientationGizmo()
		}
		app.drawHUD()

		rl.EndDrawing()
	}

	rl.UnloadMesh(&app.mesh)
	rl.CloseWindow()
}
