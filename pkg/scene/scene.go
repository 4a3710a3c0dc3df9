// Package scene assembles a cuboid together with its minimal-volume
// circumscribing ellipsoid into a renderable scene description.
package scene

import (
	"fmt"

	"github.com/pfalkner/circumbox/pkg/geometry"
)

// DefaultSurfaceResolution is the parametric sample count used for the
// ellipsoid surface when the caller does not choose one.
const DefaultSurfaceResolution = 80

// Options controls optional parts of the scene build
type Options struct {
	// AnnotateVertices adds per-corner index labels for the renderers.
	// It never changes the computed geometry.
	AnnotateVertices bool

	// SurfaceResolution is the parametric grid resolution for the
	// ellipsoid surface. Zero selects DefaultSurfaceResolution.
	SurfaceResolution int
}

// VertexLabel associates a corner index with its position for labeling
type VertexLabel struct {
	Index    int
	Position geometry.Vector3
}

// Scene holds everything a renderer needs to draw the cuboid and its
// circumscribing ellipsoid. A scene is immutable once built.
type Scene struct {
	Cuboid    geometry.Cuboid
	Ellipsoid geometry.Ellipsoid
	Corners   [8]geometry.Vector3

	// Labels is nil unless vertex annotation was requested.
	Labels []VertexLabel

	Resolution int
}

// Build computes the scene for a cuboid with the given full edge lengths.
// All three dimensions must be strictly positive.
func Build(a, b, c float64, opts Options) (*Scene, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, fmt.Errorf("cuboid dimensions must be strictly positive, got %v x %v x %v", a, b, c)
	}

	resolution := opts.SurfaceResolution
	if resolution == 0 {
		resolution = DefaultSurfaceResolution
	}
	if resolution < 2 {
		return nil, fmt.Errorf("surface resolution must be at least 2, got %d", resolution)
	}

	cuboid := geometry.NewCuboid(a, b, c)

	sc := &Scene{
		Cuboid:     cuboid,
		Ellipsoid:  geometry.Circumscribe(cuboid),
		Corners:    cuboid.Corners(),
		Resolution: resolution,
	}

	if opts.AnnotateVertices {
		sc.Labels = make([]VertexLabel, len(sc.Corners))
		for i, corner := range sc.Corners {
			sc.Labels[i] = VertexLabel{Index: i, Position: corner}
		}
	}

	return sc, nil
}

// Bounds returns the axis-aligned bounding box of the whole scene.
// The ellipsoid always encloses the cuboid, so its extents suffice.
func (s *Scene) Bounds() geometry.BoundingBox {
	bounds := geometry.NewBoundingBox()
	semi := s.Ellipsoid.SemiAxes()
	bounds.Extend(semi.Neg())
	bounds.Extend(semi)
	return bounds
}

// Title returns a window/report title describing the scene
func (s *Scene) Title() string {
	return fmt.Sprintf("Cuboid %g x %g x %g and its Circumscribing Ellipsoid",
		s.Cuboid.A, s.Cuboid.B, s.Cuboid.C)
}
