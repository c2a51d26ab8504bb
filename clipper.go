package vlist

import "math"

// Clipper is the fast path for fixed-height lists: every windowing answer a
// Metrics table gives can be computed arithmetically in O(1), with no table
// build and no per-item storage. List uses it automatically when its height
// spec is FixedHeight.
//
// Usage:
//
//	c := vlist.NewClipper(len(items), rowHeight)
//	r := c.VisibleRange(scrollY, viewportHeight, overscan)
//	for i := r.Start; i <= r.End; i++ {
//	    draw(items[i], c.OffsetOf(i)-scrollY)
//	}
type Clipper struct {
	itemHeight float32
	count      int
}

// NewClipper creates a clipper for count items of uniform itemHeight.
// A non-positive or non-finite height is treated as an empty list, the same
// degenerate result BuildMetrics would reject with an error.
func NewClipper(count int, itemHeight float32) Clipper {
	if count < 0 || itemHeight <= 0 || !finite(itemHeight) {
		return Clipper{}
	}
	return Clipper{itemHeight: itemHeight, count: count}
}

// Len returns the number of items.
func (c Clipper) Len() int { return c.count }

// ItemHeight returns the uniform item height.
func (c Clipper) ItemHeight() float32 { return c.itemHeight }

// TotalHeight returns the total content height.
func (c Clipper) TotalHeight() float32 {
	return float32(c.count) * c.itemHeight
}

// OffsetOf returns the top position of item i within the content.
func (c Clipper) OffsetOf(i int) float32 {
	return float32(i) * c.itemHeight
}

// HeightOf returns the item height (uniform for every index).
func (c Clipper) HeightOf(int) float32 { return c.itemHeight }

// MaxScroll returns the largest valid scroll offset for the viewport.
func (c Clipper) MaxScroll(viewportHeight float32) float32 {
	return maxf(0, c.TotalHeight()-viewportHeight)
}

// VisibleRange computes the item range intersecting the viewport, widened by
// overscan and clamped into bounds. Same contract as Metrics.VisibleRange
// (strictly positive overlap required) without the binary search.
func (c Clipper) VisibleRange(scrollOffset, viewportHeight float32, overscan int) Range {
	if c.count == 0 || viewportHeight <= 0 {
		return emptyRange
	}
	if overscan < 0 {
		overscan = 0
	}
	scrollOffset = clampf(scrollOffset, 0, c.MaxScroll(viewportHeight))

	// First item with positive overlap: the one whose extent contains
	// scrollOffset, or the one starting exactly there.
	first := int(scrollOffset / c.itemHeight)
	// Last item with positive overlap: its top must lie strictly above the
	// viewport bottom, so an item starting exactly at the bottom is excluded.
	last := int(math.Ceil(float64((scrollOffset+viewportHeight)/c.itemHeight))) - 1

	first = max(0, min(first, c.count-1))
	last = max(first, min(last, c.count-1))

	return Range{
		Start: max(0, first-overscan),
		End:   min(c.count-1, last+overscan),
	}
}

// ScrollToItem returns the scroll offset that makes item idx visible,
// scrolling minimally. If the item is already fully visible, the current
// offset is returned unchanged.
func (c Clipper) ScrollToItem(idx int, currentScroll, viewportHeight float32) float32 {
	if idx < 0 || idx >= c.count {
		return currentScroll
	}

	itemTop := c.OffsetOf(idx)
	itemBottom := itemTop + c.itemHeight

	if itemTop < currentScroll {
		return itemTop
	}
	if itemBottom > currentScroll+viewportHeight {
		return itemBottom - viewportHeight
	}
	return currentScroll
}
