package main

import (
	"fmt"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/pfalkner/circumbox/pkg/analysis"
	"github.com/pfalkner/circumbox/pkg/scene"
	"github.com/pfalkner/circumbox/pkg/viewer"
)

// App holds the GUI state
type App struct {
	window   fyne.Window
	scene    *scene.Scene
	renderer *viewer.SceneRenderer
}

func main() {
	a, b, c, err := parseDimensions(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: circumbox-gui [width depth height]\n%v\n", err)
		os.Exit(1)
	}

	sc, err := scene.Build(a, b, c, scene.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	fyneApp := app.New()
	w := fyneApp.NewWindow(sc.Title())

	gui := &App{
		window: w,
		scene:  sc,
	}
	gui.setupMainUI()

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

// parseDimensions reads the optional width/depth/height arguments,
// falling back to the 10 x 50 x 1.5 example
func parseDimensions(args []string) (float64, float64, float64, error) {
	if len(args) == 0 {
		return 10, 50, 1.5, nil
	}
	if len(args) != 3 {
		return 0, 0, 0, fmt.Errorf("expected three dimensions, got %d arguments", len(args))
	}

	dims := make([]float64, 3)
	for i, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid dimension %q: %w", arg, err)
		}
		dims[i] = value
	}
	return dims[0], dims[1], dims[2], nil
}

func (a *App) setupMainUI() {
	a.renderer = viewer.NewSceneRenderer(a.scene)

	report := analysis.Analyze(a.scene)
	sceneInfo := fmt.Sprintf(
		"Cuboid: %g x %g x %g\nDiagonal: %.3f\nVolume: %.3f\n\n"+
			"Ellipsoid semi-axes:\n  X: %.3f\n  Y: %.3f\n  Z: %.3f\nVolume: %.3f\n\nVolume ratio: %.4f",
		report.Cuboid.A, report.Cuboid.B, report.Cuboid.C,
		report.CuboidDiagonal,
		report.CuboidVolume,
		report.Ellipsoid.Rx, report.Ellipsoid.Ry, report.Ellipsoid.Rz,
		report.EllipsoidVolume,
		report.VolumeRatio,
	)
	infoLabel := widget.NewLabel(sceneInfo)

	labelsCheck := widget.NewCheck("Show vertex labels", func(checked bool) {
		a.renderer.SetShowLabels(checked)
	})
	labelsCheck.SetChecked(a.scene.Labels != nil)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Scene:"),
		widget.NewSeparator(),
		infoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		labelsCheck,
		widget.NewSeparator(),
		instructions,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.renderer, // center
	)

	a.window.SetContent(content)

	a.renderer.Render(800, 600)
}
