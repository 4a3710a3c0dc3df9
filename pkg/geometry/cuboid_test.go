package geometry

import (
	"math"
	"math/bits"
	"testing"
)

func TestCuboidCornersAllSignCombinations(t *testing.T) {
	c := NewCuboid(10, 50, 1.5)
	corners := c.Corners()

	seen := make(map[Vector3]bool)
	for _, corner := range corners {
		if math.Abs(corner.X) != 5 || math.Abs(corner.Y) != 25 || math.Abs(corner.Z) != 0.75 {
			t.Errorf("corner %v is not a half-extent sign combination", corner)
		}
		if seen[corner] {
			t.Errorf("duplicate corner %v", corner)
		}
		seen[corner] = true
	}

	if len(seen) != 8 {
		t.Errorf("expected 8 distinct corners, got %d", len(seen))
	}
}

func TestCuboidCornerIndexEncoding(t *testing.T) {
	c := NewCuboid(2, 4, 6)
	corners := c.Corners()
	h := c.HalfExtents()

	// Corner index must be 4*bitX + 2*bitY + bitZ, bit set = positive side.
	for i, corner := range corners {
		wantX := -h.X
		if i&4 != 0 {
			wantX = h.X
		}
		wantY := -h.Y
		if i&2 != 0 {
			wantY = h.Y
		}
		wantZ := -h.Z
		if i&1 != 0 {
			wantZ = h.Z
		}

		want := Vector3{X: wantX, Y: wantY, Z: wantZ}
		if corner != want {
			t.Errorf("corner %d: expected %v, got %v", i, want, corner)
		}
	}
}

func TestCuboidEdgesDifferInOneBit(t *testing.T) {
	if len(Edges) != 12 {
		t.Fatalf("expected 12 edges, got %d", len(Edges))
	}

	seen := make(map[[2]int]bool)
	for _, edge := range Edges {
		i, j := edge[0], edge[1]
		if i < 0 || i > 7 || j < 0 || j > 7 {
			t.Errorf("edge (%d,%d) has an index out of range", i, j)
		}
		if bits.OnesCount(uint(i^j)) != 1 {
			t.Errorf("edge (%d,%d) does not differ in exactly one bit", i, j)
		}
		if seen[edge] {
			t.Errorf("duplicate edge (%d,%d)", i, j)
		}
		seen[edge] = true
	}
}

func TestCuboidEdgeLength(t *testing.T) {
	c := NewCuboid(10, 50, 1.5)

	// An edge spans the full dimension along the axis of its flipped bit.
	counts := map[float64]int{}
	for e := range Edges {
		counts[c.EdgeLength(e)]++
	}

	if counts[10] != 4 || counts[50] != 4 || counts[1.5] != 4 {
		t.Errorf("expected 4 edges per dimension, got %v", counts)
	}
}

func TestCuboidEdgeLengthMatchesCorners(t *testing.T) {
	c := NewCuboid(3, 7, 11)
	corners := c.Corners()

	for e, edge := range Edges {
		got := corners[edge[0]].Distance(corners[edge[1]])
		want := c.EdgeLength(e)
		if math.Abs(got-want) > 1e-10 {
			t.Errorf("edge %d: corner distance %v, EdgeLength %v", e, got, want)
		}
	}
}

func TestCuboidScalingInvariance(t *testing.T) {
	c := NewCuboid(10, 50, 1.5)
	scaled := NewCuboid(10*2.5, 50*2.5, 1.5*2.5)

	corners := c.Corners()
	scaledCorners := scaled.Corners()

	for i := range corners {
		want := corners[i].Mul(2.5)
		if scaledCorners[i].Distance(want) > 1e-10 {
			t.Errorf("corner %d: expected %v, got %v", i, want, scaledCorners[i])
		}
	}
}

func TestCuboidCubeCorners(t *testing.T) {
	c := NewCuboid(2, 2, 2)

	for i, corner := range c.Corners() {
		if math.Abs(corner.X) != 1 || math.Abs(corner.Y) != 1 || math.Abs(corner.Z) != 1 {
			t.Errorf("corner %d: expected coordinates of magnitude 1, got %v", i, corner)
		}
		if math.Abs(corner.Length()-math.Sqrt(3)) > 1e-10 {
			t.Errorf("corner %d: expected distance sqrt(3) from origin, got %v", i, corner.Length())
		}
	}
}

func TestCuboidVolumeAndDiagonal(t *testing.T) {
	c := NewCuboid(3, 4, 12)

	if math.Abs(c.Volume()-144) > 1e-10 {
		t.Errorf("Volume failed: expected 144, got %v", c.Volume())
	}
	if math.Abs(c.Diagonal()-13) > 1e-10 {
		t.Errorf("Diagonal failed: expected 13, got %v", c.Diagonal())
	}
}
