package main

import (
	"fmt"
	"os"

	"github.com/pfalkner/circumbox/pkg/analysis"
	"github.com/pfalkner/circumbox/pkg/scene"
	"github.com/spf13/cobra"
)

var verticesCmd = &cobra.Command{
	Use:   "vertices",
	Short: "List the cuboid vertices and edges",
	Long:  "Print the eight cuboid vertices with their sign-bit indices and the twelve edges with their lengths.",
	Run:   runVertices,
}

func init() {
	rootCmd.AddCommand(verticesCmd)

	addDimensionFlags(verticesCmd)
}

func runVertices(cmd *cobra.Command, args []string) {
	sc, err := scene.Build(dimA, dimB, dimC, scene.Options{AnnotateVertices: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	report := analysis.Analyze(sc)

	fmt.Println("Vertices")
	fmt.Println("====================")
	fmt.Printf("%-6s %-6s %-35s\n", "Index", "Bits", "Position")
	fmt.Println("------------------------------------------------")
	for _, label := range sc.Labels {
		fmt.Printf("%-6d %03b    %-35s\n", label.Index, label.Index, analysis.FormatVector(label.Position))
	}

	fmt.Println("\nEdges")
	fmt.Println("====================")
	fmt.Printf("%-6s %-10s %-6s %-15s\n", "Index", "Corners", "Axis", "Length")
	fmt.Println("------------------------------------------------")
	for _, edge := range report.Edges {
		fmt.Printf("%-6d %d-%-8d %-6s %-15.6f\n", edge.Index, edge.StartIdx, edge.EndIdx, edge.Axis, edge.Length)
	}
}
