package analysis

import (
	"fmt"
	"math"

	"github.com/pfalkner/circumbox/pkg/geometry"
	"github.com/pfalkner/circumbox/pkg/scene"
)

// EdgeInfo describes one cuboid edge
type EdgeInfo struct {
	Index      int
	Start, End geometry.Vector3
	StartIdx   int
	EndIdx     int
	Axis       string // "X", "Y" or "Z"
	Length     float64
}

// Report contains the measurements of a cuboid/ellipsoid scene
type Report struct {
	Cuboid    geometry.Cuboid
	Ellipsoid geometry.Ellipsoid

	HalfExtents     geometry.Vector3
	CuboidVolume    float64
	CuboidDiagonal  float64
	EllipsoidVolume float64

	// VolumeRatio is ellipsoid volume over cuboid volume. For the
	// minimal circumscribing ellipsoid it is the constant
	// (4/3)*pi*(sqrt(3)/2)^3 regardless of the dimensions.
	VolumeRatio float64

	// MaxFitResidual is the largest |implicit value - 1| over the eight
	// corners; near zero when every corner lies on the ellipsoid.
	MaxFitResidual float64

	Edges []EdgeInfo
}

// Analyze measures a scene
func Analyze(sc *scene.Scene) *Report {
	report := &Report{
		Cuboid:          sc.Cuboid,
		Ellipsoid:       sc.Ellipsoid,
		HalfExtents:     sc.Cuboid.HalfExtents(),
		CuboidVolume:    sc.Cuboid.Volume(),
		CuboidDiagonal:  sc.Cuboid.Diagonal(),
		EllipsoidVolume: sc.Ellipsoid.Volume(),
		Edges:           make([]EdgeInfo, 0, len(geometry.Edges)),
	}

	report.VolumeRatio = report.EllipsoidVolume / report.CuboidVolume

	for _, corner := range sc.Corners {
		residual := math.Abs(sc.Ellipsoid.ImplicitValue(corner) - 1)
		if residual > report.MaxFitResidual {
			report.MaxFitResidual = residual
		}
	}

	for e, edge := range geometry.Edges {
		report.Edges = append(report.Edges, EdgeInfo{
			Index:    e,
			Start:    sc.Corners[edge[0]],
			End:      sc.Corners[edge[1]],
			StartIdx: edge[0],
			EndIdx:   edge[1],
			Axis:     edgeAxis(edge[0], edge[1]),
			Length:   sc.Cuboid.EdgeLength(e),
		})
	}

	return report
}

// edgeAxis names the axis an edge runs along from its flipped index bit
func edgeAxis(i, j int) string {
	switch i ^ j {
	case 4:
		return "X"
	case 2:
		return "Y"
	default:
		return "Z"
	}
}

// EdgesAlongAxis returns the edges parallel to the given axis ("X", "Y", "Z")
func (r *Report) EdgesAlongAxis(axis string) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range r.Edges {
		if edge.Axis == axis {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
