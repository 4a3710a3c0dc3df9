package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes mouse and keyboard input
func (app *App) handleInput() {
	altPressed := rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.isPanning = altPressed
	}

	// Camera panning with Alt + mouse drag
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && app.isPanning {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			forward := rl.Vector3Normalize(rl.Vector3Subtract(app.cameraTarget, app.camera.Position))
			right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.camera.Up))
			up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

			panSpeed := app.cameraDistance * 0.001

			rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
			upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

			app.cameraTarget = rl.Vector3Add(app.cameraTarget, rightMove)
			app.cameraTarget = rl.Vector3Add(app.cameraTarget, upMove)
		}
	}

	// Camera rotation with plain mouse drag
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && !app.isPanning {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.cameraAngleY += delta.X * 0.01
			app.cameraAngleX -= delta.Y * 0.01

			// Clamp vertical rotation
			if app.cameraAngleX > 1.5 {
				app.cameraAngleX = 1.5
			}
			if app.cameraAngleX < -1.5 {
				app.cameraAngleX = -1.5
			}
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.isPanning = false
	}

	// Zoom with mouse wheel
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		app.cameraDistance *= (1.0 - wheel*0.03)
		minDistance := app.sceneSize * 0.2
		if app.cameraDistance < minDistance {
			app.cameraDistance = minDistance
		}
	}

	// Keyboard toggles
	if rl.IsKeyPressed(rl.KeyC) {
		app.showCuboid = !app.showCuboid
	}
	if rl.IsKeyPressed(rl.KeyS) {
		app.showSurface = !app.showSurface
	}
	if rl.IsKeyPressed(rl.KeyL) {
		app.showLabels = !app.showLabels
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.showGizmo = !app.showGizmo
	}
	if rl.IsKeyPressed(rl.KeyR) {
		app.cameraAngleX = 0.3
		app.cameraAngleY = 0.3
		app.cameraDistance = app.sceneSize * 2.0
		app.cameraTarget = rl.Vector3{}
	}
}

// updateCamera updates the camera position from the orbit angles
func (app *App) updateCamera() {
	x := app.cameraDistance * float32(math.Cos(float64(app.cameraAngleX))) * float32(math.Sin(float64(app.cameraAngleY)))
	y := app.cameraDistance * float32(math.Sin(float64(app.cameraAngleX)))
	z := app.cameraDistance * float32(math.Cos(float64(app.cameraAngleX))) * float32(math.Cos(float64(app.cameraAngleY)))

	app.camera.Position = rl.Vector3{
		X: app.cameraTarget.X + x,
		Y: app.cameraTarget.Y + y,
		Z: app.cameraTarget.Z + z,
	}
	app.camera.Target = app.cameraTarget
}
