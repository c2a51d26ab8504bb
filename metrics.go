package vlist

import (
	"errors"
	"fmt"
)

// HeightFunc measures one item. It is called once per item per metrics build,
// never on reads.
type HeightFunc[T any] func(item T, index int) float32

// HeightSpec describes how item heights are obtained: a single fixed height
// shared by every item, or a per-item measurement function.
// The zero value is not valid; use FixedHeight or PerItem.
type HeightSpec[T any] struct {
	fixed float32
	fn    HeightFunc[T]
}

// FixedHeight returns a spec giving every item the same height.
// Lists built with a fixed-height spec skip the metrics table entirely and
// use the arithmetic Clipper fast path.
func FixedHeight[T any](h float32) HeightSpec[T] {
	return HeightSpec[T]{fixed: h}
}

// PerItem returns a spec that measures each item with fn.
func PerItem[T any](fn HeightFunc[T]) HeightSpec[T] {
	return HeightSpec[T]{fn: fn}
}

// Fixed returns the shared height and true when the spec is fixed-height.
func (s HeightSpec[T]) Fixed() (float32, bool) {
	return s.fixed, s.fn == nil
}

// measure evaluates the spec for one item.
func (s HeightSpec[T]) measure(item T, index int) float32 {
	if s.fn == nil {
		return s.fixed
	}
	return s.fn(item, index)
}

// ErrBadHeight matches any height measurement error via errors.Is. Use a
// *HeightError with errors.As to recover the offending index and value.
var ErrBadHeight = errors.New("vlist: invalid item height")

// HeightError reports an invalid value produced by a height spec.
// Heights must be positive and finite; a bad measurement would corrupt every
// offset after it, so metrics building fails fast instead of propagating it.
type HeightError struct {
	Index  int     // Item index that produced the bad height
	Height float32 // The offending value
}

func (e *HeightError) Error() string {
	return fmt.Sprintf("vlist: item %d measured invalid height %v (heights must be positive and finite)", e.Index, e.Height)
}

func (e *HeightError) Unwrap() error { return ErrBadHeight }

// Metrics is the derived layout table for one build of an item collection:
// per-item heights, cumulative offsets, and the total content height.
// A Metrics value is immutable after construction; collection changes produce
// a new table.
type Metrics struct {
	heights []float32
	offsets []float32
	total   float32
}

// BuildMetrics measures every item and builds the offset table.
//
// Invalid heights (non-positive or non-finite) are rejected with a
// *HeightError unless WithMinHeight is given, in which case every height is
// clamped to at least that minimum and the clamp is logged at debug level.
//
// The build is O(N) time and space, deterministic, and side-effect free.
func BuildMetrics[T any](items []T, spec HeightSpec[T], opts ...Option) (*Metrics, error) {
	minHeight := ApplyAndGet(opts, OptMinHeight)

	heights, err := measureHeights(items, 0, spec, minHeight)
	if err != nil {
		return nil, err
	}
	return assembleMetrics(nil, heights), nil
}

// measureHeights evaluates the spec for items, reporting indices relative to
// base (non-zero when measuring an appended tail).
func measureHeights[T any](items []T, base int, spec HeightSpec[T], minHeight float32) ([]float32, error) {
	heights := make([]float32, len(items))
	for i, item := range items {
		h := spec.measure(item, base+i)
		if !finite(h) || h <= 0 {
			if minHeight <= 0 {
				return nil, &HeightError{Index: base + i, Height: h}
			}
			vlistLogger.Debug("clamping invalid item height",
				"index", base+i, "height", h, "min", minHeight)
			h = minHeight
		} else if minHeight > 0 && h < minHeight {
			h = minHeight
		}
		heights[i] = h
	}
	return heights, nil
}

// assembleMetrics builds a table from prev (may be nil) extended by the given
// validated heights. Offsets are cumulative: offsets[0] == 0 and
// offsets[i] == offsets[i-1] + heights[i-1].
func assembleMetrics(prev *Metrics, tail []float32) *Metrics {
	var prevHeights []float32
	var y float32
	if prev != nil {
		prevHeights = prev.heights
	}
	n := len(prevHeights) + len(tail)
	m := &Metrics{
		heights: make([]float32, 0, n),
		offsets: make([]float32, 0, n),
	}
	m.heights = append(append(m.heights, prevHeights...), tail...)
	if prev != nil {
		m.offsets = append(m.offsets, prev.offsets...)
		y = prev.total
	}
	for _, h := range tail {
		m.offsets = append(m.offsets, y)
		y += h
	}
	m.total = y
	return m
}

// Len returns the number of items covered by the table.
func (m *Metrics) Len() int { return len(m.heights) }

// TotalHeight returns the summed height of all items (0 for an empty table).
func (m *Metrics) TotalHeight() float32 { return m.total }

// HeightOf returns the height of item i.
func (m *Metrics) HeightOf(i int) float32 { return m.heights[i] }

// OffsetOf returns the top position of item i within the content.
func (m *Metrics) OffsetOf(i int) float32 { return m.offsets[i] }

// MaxScroll returns the largest valid scroll offset for the given viewport
// height. Zero when the content fits entirely.
func (m *Metrics) MaxScroll(viewportHeight float32) float32 {
	return maxf(0, m.total-viewportHeight)
}
