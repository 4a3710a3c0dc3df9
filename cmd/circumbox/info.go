package main

import (
	"fmt"
	"os"

	"github.com/pfalkner/circumbox/pkg/analysis"
	"github.com/pfalkner/circumbox/pkg/scene"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print measurements for a cuboid and its circumscribing ellipsoid",
	Long:  "Show the cuboid dimensions, the ellipsoid semi-axes, volumes and the corner fit residual.",
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	addDimensionFlags(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	sc, err := scene.Build(dimA, dimB, dimC, scene.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	report := analysis.Analyze(sc)

	fmt.Println(sc.Title())
	fmt.Println("====================")

	fmt.Println("Cuboid:")
	fmt.Printf("  Width (X): %s\n", analysis.FormatMeasurement(report.Cuboid.A, ""))
	fmt.Printf("  Depth (Y): %s\n", analysis.FormatMeasurement(report.Cuboid.B, ""))
	fmt.Printf("  Height (Z): %s\n", analysis.FormatMeasurement(report.Cuboid.C, ""))
	fmt.Printf("  Half extents: %s\n", analysis.FormatVector(report.HalfExtents))
	fmt.Printf("  Space diagonal: %s\n", analysis.FormatMeasurement(report.CuboidDiagonal, ""))
	fmt.Printf("  Volume: %s\n\n", analysis.FormatMeasurement(report.CuboidVolume, "cubic units"))

	fmt.Println("Circumscribing ellipsoid (minimal volume):")
	fmt.Printf("  Semi-axis X: %s\n", analysis.FormatMeasurement(report.Ellipsoid.Rx, ""))
	fmt.Printf("  Semi-axis Y: %s\n", analysis.FormatMeasurement(report.Ellipsoid.Ry, ""))
	fmt.Printf("  Semi-axis Z: %s\n", analysis.FormatMeasurement(report.Ellipsoid.Rz, ""))
	fmt.Printf("  Volume: %s\n", analysis.FormatMeasurement(report.EllipsoidVolume, "cubic units"))
	fmt.Printf("  Volume ratio (ellipsoid/cuboid): %.6f\n", report.VolumeRatio)
	fmt.Printf("  Max corner fit residual: %.2e\n", report.MaxFitResidual)
}
