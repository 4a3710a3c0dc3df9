// Package viewer renders a cuboid/ellipsoid scene as a fyne widget using
// software line projection.
package viewer

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/pfalkner/circumbox/pkg/geometry"
	"github.com/pfalkner/circumbox/pkg/scene"
)

// surfaceGridStride thins the parametric grid for the wireframe surface so
// the widget does not drown in canvas lines at the default 80x80 resolution
const surfaceGridStride = 4

// SceneRenderer renders a cuboid and its circumscribing ellipsoid in 3D
type SceneRenderer struct {
	widget.BaseWidget
	scene      *scene.Scene
	camera     *Camera
	lines      []*canvas.Line
	labels     []*canvas.Text
	dragStart  *fyne.Position
	isDragging bool
	width      float64
	height     float64
	showLabels bool
}

// NewSceneRenderer creates a new scene renderer widget
func NewSceneRenderer(sc *scene.Scene) *SceneRenderer {
	r := &SceneRenderer{
		scene:      sc,
		camera:     NewCamera(sc.Bounds()),
		lines:      make([]*canvas.Line, 0),
		labels:     make([]*canvas.Text, 0),
		showLabels: sc.Labels != nil,
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetShowLabels toggles the vertex index labels
func (r *SceneRenderer) SetShowLabels(show bool) {
	r.showLabels = show
	r.Render(r.width, r.height)
}

// CreateRenderer creates the renderer for the widget
func (r *SceneRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &sceneWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// Render updates the 3D view
func (r *SceneRenderer) Render(width, height float64) {
	r.width = width
	r.height = height

	r.lines = make([]*canvas.Line, 0)
	r.labels = make([]*canvas.Text, 0)

	r.renderSurface()
	r.renderCuboid()
	if r.showLabels {
		r.renderLabels()
	}

	r.Refresh()
}

// renderCuboid draws the 12 cuboid edges
func (r *SceneRenderer) renderCuboid() {
	for _, edge := range geometry.Edges {
		r.addLine(r.scene.Corners[edge[0]], r.scene.Corners[edge[1]], true)
	}
}

// renderSurface draws the ellipsoid as wireframe polylines along the
// parametric grid, thinned by surfaceGridStride
func (r *SceneRenderer) renderSurface() {
	n := r.scene.Resolution
	grid := r.scene.Ellipsoid.SurfaceGrid(n, n)

	for i := 0; i <= n; i += surfaceGridStride {
		for j := 0; j < n; j++ {
			r.addLine(grid[i][j], grid[i][j+1], false)
		}
	}
	for j := surfaceGridStride; j < n; j += surfaceGridStride {
		for i := 0; i < n; i++ {
			r.addLine(grid[i][j], grid[i+1][j], false)
		}
	}
}

// renderLabels draws the corner index labels
func (r *SceneRenderer) renderLabels() {
	for i, corner := range r.scene.Corners {
		x, y, z := r.camera.Project(corner, r.width, r.height)
		if z <= 0.01 {
			continue
		}

		label := canvas.NewText(fmt.Sprintf("%d", i), color.RGBA{120, 180, 255, 255})
		label.TextSize = 14
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.Move(fyne.NewPos(float32(x)+4, float32(y)-18))
		r.labels = append(r.labels, label)
	}
}

// addLine projects a 3D segment and appends it as a canvas line
func (r *SceneRenderer) addLine(p1, p2 geometry.Vector3, isEdge bool) {
	x1, y1, z1 := r.camera.Project(p1, r.width, r.height)
	x2, y2, z2 := r.camera.Project(p2, r.width, r.height)

	var col color.RGBA
	var strokeWidth float32
	if isEdge {
		col = color.RGBA{235, 235, 235, 255}
		strokeWidth = 2
	} else {
		// Simple depth-based color for the surface wireframe
		avgZ := (z1 + z2) / 2
		brightness := uint8(math.Max(40, math.Min(160, 220-avgZ*2)))
		col = color.RGBA{brightness / 2, brightness, uint8(math.Min(255, float64(brightness)*1.3)), 255}
		strokeWidth = 1
	}

	line := canvas.NewLine(col)
	line.StrokeWidth = strokeWidth
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))

	r.lines = append(r.lines, line)
}

// Dragged handles mouse drag events for rotation
func (r *SceneRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := event.Position.X - r.dragStart.X
		deltaY := event.Position.Y - r.dragStart.Y

		r.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		r.Render(r.width, r.height)
	}
	r.dragStart = &event.Position
	r.isDragging = true
}

// DragEnd handles the end of a drag event
func (r *SceneRenderer) DragEnd() {
	r.dragStart = nil
	r.isDragging = false
}

// Scrolled handles scroll events for zooming
func (r *SceneRenderer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	r.camera.Zoom(delta)
	r.Render(r.width, r.height)
}

// sceneWidgetRenderer implements fyne.WidgetRenderer
type sceneWidgetRenderer struct {
	renderer *SceneRenderer
	objects  []fyne.CanvasObject
}

func (s *sceneWidgetRenderer) Layout(size fyne.Size) {
	s.renderer.Render(float64(size.Width), float64(size.Height))
}

func (s *sceneWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (s *sceneWidgetRenderer) Refresh() {
	s.objects = make([]fyne.CanvasObject, 0)

	for _, line := range s.renderer.lines {
		s.objects = append(s.objects, line)
	}
	for _, label := range s.renderer.labels {
		s.objects = append(s.objects, label)
	}

	canvas.Refresh(s.renderer)
}

func (s *sceneWidgetRenderer) Objects() []fyne.CanvasObject {
	return s.objects
}

func (s *sceneWidgetRenderer) Destroy() {}
