package main

import (
	"fmt"
	"os"

	"github.com/pfalkner/circumbox/internal/app"
	"github.com/pfalkner/circumbox/pkg/scene"
	"github.com/spf13/cobra"
)

var (
	viewLabels     bool
	viewResolution int
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive 3D viewer",
	Long:  "Display the cuboid wireframe and the translucent circumscribing ellipsoid in an interactive window.",
	Run:   runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	addDimensionFlags(viewCmd)
	viewCmd.Flags().BoolVarP(&viewLabels, "labels", "l", false, "Annotate the cuboid vertices with their indices")
	viewCmd.Flags().IntVar(&viewResolution, "resolution", scene.DefaultSurfaceResolution, "Parametric resolution of the ellipsoid surface")
}

func runView(cmd *cobra.Command, args []string) {
	sc, err := scene.Build(dimA, dimB, dimC, scene.Options{
		AnnotateVertices:  viewLabels,
		SurfaceResolution: viewResolution,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	app.Run(sc)
}
