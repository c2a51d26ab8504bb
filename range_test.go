package vlist_test

import (
	"math/rand"
	"testing"

	"github.com/go-virtual-list/vlist"
)

func TestVisibleRangeUniform(t *testing.T) {
	// 1000 items of height 50 in a 500-tall viewport: exactly ten items are
	// visible at the top; overscan widens but clamps at the start.
	m, err := vlist.BuildMetrics(ints(1000), vlist.FixedHeight[int](50))
	if err != nil {
		t.Fatalf("BuildMetrics returned error: %v", err)
	}

	tests := []struct {
		name      string
		scroll    float32
		viewport  float32
		overscan  int
		wantStart int
		wantEnd   int
	}{
		{"top of list", 0, 500, 0, 0, 9},
		{"top with overscan", 0, 500, 5, 0, 14},
		{"mid list", 5000, 500, 0, 100, 109},
		{"mid with overscan", 5000, 500, 3, 97, 112},
		{"bottom clamps overscan", 49500, 500, 5, 985, 999},
		{"scroll past end clamps", 99999, 500, 0, 990, 999},
		{"negative scroll clamps", -100, 500, 0, 0, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := m.VisibleRange(tt.scroll, tt.viewport, tt.overscan)
			if r.Start != tt.wantStart || r.End != tt.wantEnd {
				t.Errorf("VisibleRange(%v, %v, %d) = {%d, %d}, want {%d, %d}",
					tt.scroll, tt.viewport, tt.overscan, r.Start, r.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestVisibleRangeHeterogeneous(t *testing.T) {
	// Heights [100, 50, 200], viewport [120, 220): item 0 ends at 100 and is
	// out; items 1 and 2 both overlap.
	heights := []float32{100, 50, 200}
	m, err := vlist.BuildMetrics(ints(3), vlist.PerItem(func(_ int, i int) float32 {
		return heights[i]
	}))
	if err != nil {
		t.Fatalf("BuildMetrics returned error: %v", err)
	}

	r := m.VisibleRange(120, 100, 0)
	if r.Start != 1 || r.End != 2 {
		t.Errorf("VisibleRange(120, 100, 0) = {%d, %d}, want {1, 2}", r.Start, r.End)
	}
}

func TestVisibleRangeBoundaryTouchExcluded(t *testing.T) {
	// Zero-pixel overlap is not intersection: an item ending exactly at the
	// scroll offset, or starting exactly at the viewport bottom, stays out.
	m, err := vlist.BuildMetrics(ints(10), vlist.FixedHeight[int](50))
	if err != nil {
		t.Fatalf("BuildMetrics returned error: %v", err)
	}

	// Viewport [50, 150): item 0 is [0,50) - touching, excluded.
	// Item 3 is [150,200) - touching at the bottom, excluded.
	r := m.VisibleRange(50, 100, 0)
	if r.Start != 1 || r.End != 2 {
		t.Errorf("VisibleRange(50, 100, 0) = {%d, %d}, want {1, 2}", r.Start, r.End)
	}
}

func TestVisibleRangeEmpty(t *testing.T) {
	m, err := vlist.BuildMetrics(nil, vlist.FixedHeight[int](50))
	if err != nil {
		t.Fatalf("BuildMetrics returned error: %v", err)
	}
	r := m.VisibleRange(0, 500, 3)
	if !r.Empty() {
		t.Errorf("expected empty range for empty metrics, got {%d, %d}", r.Start, r.End)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestVisibleRangeIdempotent(t *testing.T) {
	m, err := vlist.BuildMetrics(ints(100), vlist.PerItem(func(_ int, i int) float32 {
		return float32(10 + i%13)
	}))
	if err != nil {
		t.Fatalf("BuildMetrics returned error: %v", err)
	}
	a := m.VisibleRange(317, 90, 2)
	b := m.VisibleRange(317, 90, 2)
	if a != b {
		t.Errorf("repeated calls disagree: %+v vs %+v", a, b)
	}
}

// TestVisibleRangeCoverage verifies, against a brute-force scan, that every
// item with positive viewport overlap is included and every item outside the
// overscan margin is excluded.
func TestVisibleRangeCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 300
	heights := make([]float32, n)
	for i := range heights {
		heights[i] = 1 + rng.Float32()*79
	}
	m, err := vlist.BuildMetrics(ints(n), vlist.PerItem(func(_ int, i int) float32 {
		return heights[i]
	}))
	if err != nil {
		t.Fatalf("BuildMetrics returned error: %v", err)
	}

	viewport := float32(240)
	maxScroll := m.MaxScroll(viewport)
	for trial := 0; trial < 200; trial++ {
		scroll := rng.Float32() * maxScroll
		r := m.VisibleRange(scroll, viewport, 0)

		bottom := scroll + viewport
		for i := 0; i < n; i++ {
			top := m.OffsetOf(i)
			overlaps := top < bottom && top+m.HeightOf(i) > scroll
			if overlaps && !r.Contains(i) {
				t.Fatalf("scroll %v: item %d overlaps viewport but is not in {%d, %d}",
					scroll, i, r.Start, r.End)
			}
			if !overlaps && r.Contains(i) {
				t.Fatalf("scroll %v: item %d has no overlap but is in {%d, %d}",
					scroll, i, r.Start, r.End)
			}
		}
	}
}

func TestIndexAt(t *testing.T) {
	m, err := vlist.BuildMetrics(ints(4), vlist.PerItem(func(_ int, i int) float32 {
		return []float32{30, 10, 60, 25}[i]
	}))
	if err != nil {
		t.Fatalf("BuildMetrics returned error: %v", err)
	}

	tests := []struct {
		y    float32
		want int
	}{
		{0, 0},
		{29, 0},
		{30, 1}, // item 0 ends exactly at 30
		{35, 1},
		{40, 2},
		{99, 2},
		{100, 3},
		{1e6, 3}, // past the end clamps to the last item
		{-5, 0},
	}
	for _, tt := range tests {
		if got := m.IndexAt(tt.y); got != tt.want {
			t.Errorf("IndexAt(%v) = %d, want %d", tt.y, got, tt.want)
		}
	}
}
