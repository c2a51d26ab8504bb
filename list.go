package vlist

// List ties the engine together for one scrollable surface: it owns the item
// collection, the derived layout (metrics table or clipper), the scroll
// controller, and the windowing parameters.
//
// Invalidation contract: the layout is rebuilt only when the collection or
// the height spec changes (SetItems, Append, SetHeightSpec). Reads (Window,
// VisibleRange, TotalHeight) never measure items. Rebuild errors surface
// from the mutating call, so a List that accepted its items is always safe
// to read.
//
// A List is single-threaded, like the Scroller it owns. One List per
// scrollable surface; instances share no state.
type List[T any] struct {
	items []T
	spec  HeightSpec[T]
	keyFn KeyFunc[T]

	overscan  int
	minHeight float32

	// Exactly one of these carries the layout: metrics for per-item heights,
	// clipper for the fixed-height fast path.
	metrics *Metrics
	clipper Clipper
	fixed   bool

	scroller  *Scroller
	viewportH float32
}

// NewList creates an empty list with the given height spec.
// Accepts WithOverscan, WithMinHeight and all Scroller options.
func NewList[T any](spec HeightSpec[T], opts ...Option) *List[T] {
	o := applyOptions(opts)
	l := &List[T]{
		spec:      spec,
		keyFn:     IndexKey[T],
		overscan:  GetOpt(o, OptOverscan),
		minHeight: GetOpt(o, OptMinHeight),
		scroller:  NewScroller(opts...),
	}
	l.rebuildEmpty()
	return l
}

// SetKeyFunc installs a custom render-key function. The default keys rows by
// index, which is only stable for append-only collections.
func (l *List[T]) SetKeyFunc(fn KeyFunc[T]) {
	if fn == nil {
		fn = IndexKey[T]
	}
	l.keyFn = fn
}

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// Items returns the current item slice. The List retains it; treat it as
// read-only while the List is in use.
func (l *List[T]) Items() []T { return l.items }

// SetViewportHeight records the viewport height used by OnScroll, Window and
// the scroll helpers. Call it on resize.
func (l *List[T]) SetViewportHeight(h float32) {
	l.viewportH = maxf(0, h)
	// The viewport may have grown past the content; keep the offset valid.
	l.scroller.ScrollTo(l.scroller.Offset(), l.viewportH, l.TotalHeight())
}

// ViewportHeight returns the recorded viewport height.
func (l *List[T]) ViewportHeight() float32 { return l.viewportH }

// SetItems replaces the collection and rebuilds the layout. The end-reached
// debounce is reset (this is a new scroll session) and the scroll offset is
// clamped into the new content bounds.
// Returns a *HeightError if a measurement is invalid; the previous
// collection stays in place on error.
func (l *List[T]) SetItems(items []T) error {
	if err := l.rebuild(items); err != nil {
		return err
	}
	l.scroller.Reset()
	l.scroller.ScrollTo(l.scroller.Offset(), l.viewportH, l.TotalHeight())
	return nil
}

// Append adds items to the end of the collection, extending the layout
// incrementally (O(k) for k appended items). The end-reached signal re-arms
// so the next threshold crossing fires again.
func (l *List[T]) Append(items ...T) error {
	if len(items) == 0 {
		return nil
	}
	if l.fixed {
		l.items = append(l.items, items...)
		l.clipper = NewClipper(len(l.items), l.clipper.ItemHeight())
	} else {
		tail, err := measureHeights(items, len(l.items), l.spec, l.minHeight)
		if err != nil {
			return err
		}
		l.items = append(l.items, items...)
		l.metrics = assembleMetrics(l.metrics, tail)
	}
	vlistLogger.Debug("appended items", "count", len(items), "total", len(l.items))
	l.scroller.Reset()
	return nil
}

// SetHeightSpec replaces the height spec and remeasures the collection.
// The previous layout stays in place on error.
func (l *List[T]) SetHeightSpec(spec HeightSpec[T]) error {
	old := l.spec
	l.spec = spec
	if err := l.rebuild(l.items); err != nil {
		l.spec = old
		return err
	}
	l.scroller.ScrollTo(l.scroller.Offset(), l.viewportH, l.TotalHeight())
	return nil
}

// rebuild measures items under the current spec and swaps in the new layout.
// On error the receiver is untouched.
func (l *List[T]) rebuild(items []T) error {
	if h, ok := l.spec.Fixed(); ok {
		if (!finite(h) || h <= 0) && l.minHeight > 0 {
			h = l.minHeight
		}
		if !finite(h) || h <= 0 {
			return &HeightError{Index: 0, Height: h}
		}
		l.items = items
		l.clipper = NewClipper(len(items), maxf(h, l.minHeight))
		l.metrics = nil
		l.fixed = true
		return nil
	}

	m, err := BuildMetrics(items, l.spec, WithMinHeight(l.minHeight))
	if err != nil {
		return err
	}
	vlistLogger.Debug("rebuilt metrics", "items", len(items), "totalHeight", m.TotalHeight())
	l.items = items
	l.metrics = m
	l.clipper = Clipper{}
	l.fixed = false
	return nil
}

// rebuildEmpty installs the empty layout without touching the spec.
func (l *List[T]) rebuildEmpty() {
	if h, ok := l.spec.Fixed(); ok && finite(h) && h > 0 {
		l.clipper = NewClipper(0, h)
		l.fixed = true
		return
	}
	l.metrics = &Metrics{}
}

// layout returns the active layout source.
func (l *List[T]) layout() layouter {
	if l.fixed {
		return l.clipper
	}
	return l.metrics
}

// TotalHeight returns the summed content height, for sizing the host's
// scrollable area.
func (l *List[T]) TotalHeight() float32 { return l.layout().TotalHeight() }

// Offset returns the current scroll offset.
func (l *List[T]) Offset() float32 { return l.scroller.Offset() }

// Metrics returns the offset table, or nil on the fixed-height fast path.
func (l *List[T]) Metrics() *Metrics { return l.metrics }

// OnScroll feeds one scroll notification from the host. The returned event
// carries the accepted offset and the debounced end-reached signal.
func (l *List[T]) OnScroll(newOffset float32) ScrollEvent {
	return l.scroller.OnScroll(newOffset, l.viewportH, l.TotalHeight())
}

// VisibleRange returns the index range intersecting the viewport at the
// current offset, including overscan.
func (l *List[T]) VisibleRange() Range {
	return l.layout().VisibleRange(l.scroller.Offset(), l.viewportH, l.overscan)
}

// Window materializes the visible range into positioned row descriptors.
func (l *List[T]) Window() []Row[T] {
	return materializeWith(l.layout(), l.items, l.VisibleRange(), l.keyFn)
}

// ScrollTo moves the scroll offset, clamped into content bounds.
func (l *List[T]) ScrollTo(y float32) {
	l.scroller.ScrollTo(y, l.viewportH, l.TotalHeight())
}

// ScrollBy adjusts the scroll offset by delta (positive scrolls down).
func (l *List[T]) ScrollBy(delta float32) {
	l.scroller.ScrollBy(delta, l.viewportH, l.TotalHeight())
}

// PageDown, PageUp, ToTop and ToBottom are keyboard-friendly scroll moves.
func (l *List[T]) PageDown() { l.scroller.PageDown(l.viewportH, l.TotalHeight()) }
func (l *List[T]) PageUp()   { l.scroller.PageUp(l.viewportH, l.TotalHeight()) }
func (l *List[T]) ToTop()    { l.scroller.ToTop() }
func (l *List[T]) ToBottom() { l.scroller.ToBottom(l.viewportH, l.TotalHeight()) }

// EnsureVisible scrolls minimally so item i is inside the viewport with the
// given padding. Call it when a selection moves via keyboard.
func (l *List[T]) EnsureVisible(i int, padding float32) {
	lay := l.layout()
	if i < 0 || i >= lay.Len() {
		return
	}
	l.scroller.EnsureVisible(lay.OffsetOf(i), lay.HeightOf(i), l.viewportH, lay.TotalHeight(), padding)
}

// Update advances smooth scrolling by one frame. Returns true while
// animating.
func (l *List[T]) Update(deltaTime float32) bool {
	return l.scroller.Update(deltaTime)
}

// Scrollbar returns thumb geometry for the current scroll position, or false
// when the content fits in the viewport.
func (l *List[T]) Scrollbar(minThumb float32) (Thumb, bool) {
	return ScrollbarThumb(l.scroller.Offset(), l.viewportH, l.TotalHeight(), minThumb)
}

// ResetEndReached re-arms the end-reached signal without touching items.
// Rarely needed directly; SetItems and Append already re-arm.
func (l *List[T]) ResetEndReached() {
	l.scroller.Reset()
}
