package vlist

import "strconv"

// KeyFunc derives a stable render key for an item. Keys enable the host to
// diff consecutive windows and decide what to mount or unmount.
type KeyFunc[T any] func(item T, index int) string

// IndexKey keys items by their position. Sufficient when the collection is
// append-only; use a content-derived key when items can be reordered or
// removed.
func IndexKey[T any](_ T, index int) string {
	return strconv.Itoa(index)
}

// Row is one materialized item of the visible window, positioned within the
// total content height. Top equals the item's metrics offset; the host is
// responsible for translating by the current scroll offset when drawing.
type Row[T any] struct {
	Key    string  // Stable render key from the KeyFunc
	Index  int     // Item index in the collection
	Item   T       // The item itself, untouched
	Top    float32 // Content-relative top position
	Height float32 // Item height from the metrics table
}

// Materialize maps an index range to positioned Row descriptors, one per
// index in [r.Start, r.End] in ascending order. Indices outside the metrics
// table or the items slice are skipped rather than panicking, so a stale
// range from a previous build degrades to a shorter window.
// Pure transformation: identical inputs yield identical output.
func Materialize[T any](m *Metrics, items []T, r Range, keyFn KeyFunc[T]) []Row[T] {
	return materializeWith(m, items, r, keyFn)
}

// layouter is the read surface shared by Metrics and Clipper, letting the
// materializer and List work against either the table or the arithmetic
// fast path.
type layouter interface {
	Len() int
	TotalHeight() float32
	OffsetOf(i int) float32
	HeightOf(i int) float32
	MaxScroll(viewportHeight float32) float32
	VisibleRange(scrollOffset, viewportHeight float32, overscan int) Range
}

func materializeWith[T any](m layouter, items []T, r Range, keyFn KeyFunc[T]) []Row[T] {
	if r.Empty() || m.Len() == 0 {
		return nil
	}
	if keyFn == nil {
		keyFn = IndexKey[T]
	}
	start := max(0, r.Start)
	end := min(r.End, min(m.Len()-1, len(items)-1))
	if end < start {
		return nil
	}

	rows := make([]Row[T], 0, end-start+1)
	for i := start; i <= end; i++ {
		rows = append(rows, Row[T]{
			Key:    keyFn(items[i], i),
			Index:  i,
			Item:   items[i],
			Top:    m.OffsetOf(i),
			Height: m.HeightOf(i),
		})
	}
	return rows
}
