package main

import (
	"fmt"
	"os"

	"github.com/pfalkner/circumbox/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "circumbox",
	Short: "Visualize a cuboid and its minimal circumscribing ellipsoid",
	Long: `circumbox computes the geometric relationship between a rectangular
cuboid and the smallest axis-aligned ellipsoid passing through all eight of
its corners, and displays both in an interactive 3D view.`,
	Version: version.GetFullVersion(),
}

// Dimension flags shared by all subcommands. The defaults are the classic
// thin-slab example where the ellipsoid's shape is easy to see.
var (
	dimA float64
	dimB float64
	dimC float64
)

func addDimensionFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&dimA, "width", "a", 10, "Cuboid edge length along X")
	cmd.Flags().Float64VarP(&dimB, "depth", "b", 50, "Cuboid edge length along Y")
	cmd.Flags().Float64VarP(&dimC, "height", "c", 1.5, "Cuboid edge length along Z")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
