package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pfalkner/circumbox/pkg/geometry"
)

// drawCuboid renders the 12 cuboid edges as lines with thin cylinders on
// top for constant visual thickness
func (app *App) drawCuboid() {
	edgeColor := rl.NewColor(235, 235, 235, 255)
	thickness := app.cameraDistance * 0.0012
	cylinderSegments := int32(8)

	for _, edge := range geometry.Edges {
		p1 := app.scene.Corners[edge[0]]
		p2 := app.scene.Corners[edge[1]]
		start := rl.Vector3{X: float32(p1.X), Y: float32(p1.Y), Z: float32(p1.Z)}
		end := rl.Vector3{X: float32(p2.X), Y: float32(p2.Y), Z: float32(p2.Z)}

		rl.DrawLine3D(start, end, edgeColor)
		rl.DrawCylinderEx(start, end, thickness, thickness, cylinderSegments, edgeColor)
	}
}

// drawVertexMarkers renders a small sphere at each corner
func (app *App) drawVertexMarkers() {
	markerSize := app.sceneSize * 0.006

	for _, corner := range app.scene.Corners {
		pos := rl.Vector3{X: float32(corner.X), Y: float32(corner.Y), Z: float32(corner.Z)}
		rl.DrawSphere(pos, markerSize, rl.Red)
	}
}

// drawVertexLabels projects each corner to screen space and draws its
// index next to the marker
func (app *App) drawVertexLabels() {
	for i, corner := range app.scene.Corners {
		pos := rl.Vector3{X: float32(corner.X), Y: float32(corner.Y), Z: float32(corner.Z)}
		screenPos := rl.GetWorldToScreen(pos, app.camera)

		text := fmt.Sprintf("%d", i)
		textWidth := rl.MeasureText(text, 18)
		rl.DrawText(text, int32(screenPos.X)-textWidth/2, int32(screenPos.Y)-26, 18, rl.SkyBlue)
	}
}

// drawHUD draws the overlay with scene measurements and controls
func (app *App) drawHUD() {
	y := int32(10)
	lineHeight := int32(20)

	c := app.report.Cuboid
	e := app.report.Ellipsoid

	rl.DrawText(fmt.Sprintf("Cuboid: %g x %g x %g", c.A, c.B, c.C), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Semi-axes: %.3f / %.3f / %.3f", e.Rx, e.Ry, e.Rz), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Diagonal: %.3f", app.report.CuboidDiagonal), 10, y, 16, rl.White)
	y += lineHeight * 2

	rl.DrawText("Volumes:", 10, y, 16, rl.Yellow)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Cuboid: %.3f", app.report.CuboidVolume), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Ellipsoid: %.3f", app.report.EllipsoidVolume), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Ratio: %.4f", app.report.VolumeRatio), 10, y, 16, rl.White)
	y += lineHeight * 2

	rl.DrawText("Controls:", 10, y, 16, rl.Yellow)
	y += lineHeight
	rl.DrawText("  Left Drag: Rotate view", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  Alt+Drag: Pan view", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  Mouse Wheel: Zoom", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  C: Toggle cuboid", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  S: Toggle surface", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  L: Toggle vertex labels", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  G: Toggle gizmo", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  R: Reset view", 10, y, 14, rl.LightGray)

	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10, int32(rl.GetScreenHeight())-30, 20, rl.Lime)
}
