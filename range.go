package vlist

import "sort"

// Range is an inclusive index interval into the item collection.
// The empty range is represented as End < Start (canonically {0, -1}).
type Range struct {
	Start int // First index (inclusive)
	End   int // Last index (inclusive)
}

// emptyRange is the canonical empty range.
var emptyRange = Range{Start: 0, End: -1}

// Empty reports whether the range contains no indices.
func (r Range) Empty() bool { return r.End < r.Start }

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether index i falls inside the range.
func (r Range) Contains(i int) bool { return i >= r.Start && i <= r.End }

// IndexAt returns the index of the item whose extent contains the content
// position y, clamped into bounds. Returns -1 for an empty table.
// O(log N) binary search over the offset table.
func (m *Metrics) IndexAt(y float32) int {
	n := len(m.offsets)
	if n == 0 {
		return -1
	}
	if y <= 0 {
		return 0
	}
	// Smallest i whose bottom edge extends strictly past y.
	i := sort.Search(n, func(i int) bool {
		return m.offsets[i]+m.heights[i] > y
	})
	if i == n {
		return n - 1
	}
	return i
}

// VisibleRange locates the items that visually intersect the viewport
// [scrollOffset, scrollOffset+viewportHeight), widened by overscan items on
// each side and clamped into bounds.
//
// Intersection requires strictly positive overlap: an item whose edge exactly
// touches a viewport boundary is excluded. A scroll offset beyond the content
// (possible transiently after items shrink) is clamped, not an error.
//
// The first visible item is found by binary search; the last by a forward
// scan bounded by viewport height over item height, so the dominant cost is
// O(log N).
func (m *Metrics) VisibleRange(scrollOffset, viewportHeight float32, overscan int) Range {
	n := len(m.heights)
	if n == 0 || viewportHeight <= 0 {
		return emptyRange
	}
	if overscan < 0 {
		overscan = 0
	}
	scrollOffset = clampf(scrollOffset, 0, m.MaxScroll(viewportHeight))

	first := m.IndexAt(scrollOffset)
	bottom := scrollOffset + viewportHeight
	last := first
	for last+1 < n && m.offsets[last+1] < bottom {
		last++
	}

	return Range{
		Start: max(0, first-overscan),
		End:   min(n-1, last+overscan),
	}
}
