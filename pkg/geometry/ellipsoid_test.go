package geometry

import (
	"math"
	"testing"
)

func TestCircumscribeSemiAxes(t *testing.T) {
	e := Circumscribe(NewCuboid(10, 50, 1.5))

	k := math.Sqrt(3) / 2
	if math.Abs(e.Rx-k*10) > 1e-10 {
		t.Errorf("Rx failed: expected %v, got %v", k*10, e.Rx)
	}
	if math.Abs(e.Ry-k*50) > 1e-10 {
		t.Errorf("Ry failed: expected %v, got %v", k*50, e.Ry)
	}
	if math.Abs(e.Rz-k*1.5) > 1e-10 {
		t.Errorf("Rz failed: expected %v, got %v", k*1.5, e.Rz)
	}
}

func TestCircumscribePreservesRatio(t *testing.T) {
	c := NewCuboid(10, 50, 1.5)
	e := Circumscribe(c)

	// Semi-axis ratio must always match the edge ratio.
	if math.Abs(e.Rx/e.Ry-c.A/c.B) > 1e-10 {
		t.Errorf("Rx:Ry ratio failed: expected %v, got %v", c.A/c.B, e.Rx/e.Ry)
	}
	if math.Abs(e.Ry/e.Rz-c.B/c.C) > 1e-10 {
		t.Errorf("Ry:Rz ratio failed: expected %v, got %v", c.B/c.C, e.Ry/e.Rz)
	}
}

func TestCircumscribeCornersOnSurface(t *testing.T) {
	dims := [][3]float64{
		{10, 50, 1.5},
		{2, 2, 2},
		{1, 1, 1},
		{0.5, 120, 7},
	}

	for _, d := range dims {
		c := NewCuboid(d[0], d[1], d[2])
		e := Circumscribe(c)

		for i, corner := range c.Corners() {
			value := e.ImplicitValue(corner)
			if math.Abs(value-1) > 1e-10 {
				t.Errorf("cuboid %v corner %d: implicit value %v, expected 1", d, i, value)
			}
		}
	}
}

func TestCircumscribeCubeIsSphere(t *testing.T) {
	e := Circumscribe(NewCuboid(2, 2, 2))

	want := math.Sqrt(3)
	if math.Abs(e.Rx-want) > 1e-10 || math.Abs(e.Ry-want) > 1e-10 || math.Abs(e.Rz-want) > 1e-10 {
		t.Errorf("expected sphere of radius sqrt(3), got semi-axes %v", e.SemiAxes())
	}
}

func TestCircumscribeScaling(t *testing.T) {
	e := Circumscribe(NewCuboid(10, 50, 1.5))
	scaled := Circumscribe(NewCuboid(30, 150, 4.5))

	if math.Abs(scaled.Rx-3*e.Rx) > 1e-10 ||
		math.Abs(scaled.Ry-3*e.Ry) > 1e-10 ||
		math.Abs(scaled.Rz-3*e.Rz) > 1e-10 {
		t.Errorf("scaling by 3 failed: %v vs %v", scaled.SemiAxes(), e.SemiAxes())
	}
}

func TestEllipsoidPointAtPoles(t *testing.T) {
	e := Ellipsoid{Rx: 2, Ry: 3, Rz: 4}

	north := e.PointAt(0, 0)
	if north.Distance(Vector3{Z: 4}) > 1e-10 {
		t.Errorf("v=0 pole failed: expected (0,0,4), got %v", north)
	}

	south := e.PointAt(1.234, math.Pi)
	if south.Distance(Vector3{Z: -4}) > 1e-10 {
		t.Errorf("v=pi pole failed: expected (0,0,-4), got %v", south)
	}

	equator := e.PointAt(0, math.Pi/2)
	if equator.Distance(Vector3{X: 2}) > 1e-10 {
		t.Errorf("equator u=0 failed: expected (2,0,0), got %v", equator)
	}
}

func TestEllipsoidPointAtOnSurface(t *testing.T) {
	e := Ellipsoid{Rx: 8.66, Ry: 43.3, Rz: 1.299}

	for i := 0; i <= 10; i++ {
		for j := 0; j <= 10; j++ {
			u := 2 * math.Pi * float64(i) / 10
			v := math.Pi * float64(j) / 10
			value := e.ImplicitValue(e.PointAt(u, v))
			if math.Abs(value-1) > 1e-10 {
				t.Errorf("PointAt(%v, %v): implicit value %v, expected 1", u, v, value)
			}
		}
	}
}

func TestEllipsoidSurfaceGrid(t *testing.T) {
	e := Circumscribe(NewCuboid(10, 50, 1.5))
	grid := e.SurfaceGrid(80, 80)

	if len(grid) != 81 {
		t.Fatalf("expected 81 u rows, got %d", len(grid))
	}
	for i, row := range grid {
		if len(row) != 81 {
			t.Fatalf("row %d: expected 81 v samples, got %d", i, len(row))
		}
	}

	// Every sample lies on the surface.
	for i, row := range grid {
		for j, p := range row {
			if math.Abs(e.ImplicitValue(p)-1) > 1e-9 {
				t.Errorf("grid[%d][%d] = %v is off the surface", i, j, p)
			}
		}
	}

	// The u seam closes: first and last rows coincide.
	for j := range grid[0] {
		if grid[0][j].Distance(grid[80][j]) > 1e-9 {
			t.Errorf("seam open at v index %d: %v vs %v", j, grid[0][j], grid[80][j])
		}
	}
}

func TestEllipsoidVolume(t *testing.T) {
	e := Ellipsoid{Rx: 1, Ry: 1, Rz: 1}

	want := 4.0 / 3.0 * math.Pi
	if math.Abs(e.Volume()-want) > 1e-10 {
		t.Errorf("Volume failed: expected %v, got %v", want, e.Volume())
	}
}
