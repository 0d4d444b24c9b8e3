package dsteiner_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dsteiner"
	"github.com/katalvlaran/dsteiner/core"
)

// ExampleComputeOptimumCost computes the RSMT cost over the four corners
// of a 10x10 square. Its Hanan grid holds only the four corners, and the
// optimum runs along three of the square's sides.
func ExampleComputeOptimumCost() {
	cost, err := dsteiner.ComputeOptimumCost([]core.Point{
		{0, 0, 0},
		{10, 0, 0},
		{0, 10, 0},
		{10, 10, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cost)
	// Output: 30
}

func mustCompute(t *testing.T, pts []core.Point) core.Cost {
	t.Helper()
	cost, err := dsteiner.ComputeOptimumCost(pts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cost
}

func TestComputeOptimumCost_S1_SingleTerminal(t *testing.T) {
	if got := mustCompute(t, []core.Point{{0, 0, 0}}); got != 0 {
		t.Fatalf("S1: got %d, want 0", got)
	}
}

func TestComputeOptimumCost_S2_TwoTerminals(t *testing.T) {
	pts := []core.Point{{0, 0, 0}, {3, 4, 5}}
	if got := mustCompute(t, pts); got != 12 {
		t.Fatalf("S2: got %d, want 12", got)
	}
}

func TestComputeOptimumCost_S3_ThreeCollinear(t *testing.T) {
	pts := []core.Point{{0, 0, 0}, {5, 0, 0}, {10, 0, 0}}
	if got := mustCompute(t, pts); got != 10 {
		t.Fatalf("S3: got %d, want 10", got)
	}
}

func TestComputeOptimumCost_S4_LShape(t *testing.T) {
	pts := []core.Point{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}}
	if got := mustCompute(t, pts); got != 20 {
		t.Fatalf("S4: got %d, want 20", got)
	}
}

func TestComputeOptimumCost_S5_SquareCorners(t *testing.T) {
	pts := []core.Point{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}, {10, 10, 0}}
	if got := mustCompute(t, pts); got != 30 {
		t.Fatalf("S5: got %d, want 30", got)
	}
}

func TestComputeOptimumCost_S6_3DCross(t *testing.T) {
	pts := []core.Point{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}, {0, 0, 10}}
	if got := mustCompute(t, pts); got != 30 {
		t.Fatalf("S6: got %d, want 30", got)
	}
}

func TestComputeOptimumCost_InvariantUnderPermutation(t *testing.T) {
	base := []core.Point{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}, {10, 10, 0}}
	permuted := []core.Point{{10, 10, 0}, {0, 0, 0}, {10, 0, 0}, {0, 10, 0}}

	want := mustCompute(t, base)
	if got := mustCompute(t, permuted); got != want {
		t.Fatalf("permuted input: got %d, want %d", got, want)
	}
}

func TestComputeOptimumCost_InvariantUnderTranslation(t *testing.T) {
	base := []core.Point{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}}
	shifted := []core.Point{{7, 7, 7}, {17, 7, 7}, {7, 17, 7}}

	want := mustCompute(t, base)
	if got := mustCompute(t, shifted); got != want {
		t.Fatalf("translated input: got %d, want %d", got, want)
	}
}

func TestComputeOptimumCost_PropagatesGridErrors(t *testing.T) {
	if _, err := dsteiner.ComputeOptimumCost(nil); err == nil {
		t.Fatalf("expected an error for an empty terminal list")
	}
}
