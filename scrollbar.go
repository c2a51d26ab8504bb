package vlist

// Thumb is the geometry of a scrollbar thumb inside a track as tall as the
// viewport. Pure layout output; drawing belongs to the host.
type Thumb struct {
	Offset float32 // Thumb top relative to the track
	Size   float32 // Thumb length along the track
}

// ScrollbarThumb computes thumb geometry for the given scroll position: the
// thumb/track ratio equals the viewport/content ratio, and minThumb keeps
// the thumb grabbable for very tall content. Returns false when the content
// fits in the viewport and no scrollbar is needed.
func ScrollbarThumb(scrollOffset, viewportHeight, contentHeight, minThumb float32) (Thumb, bool) {
	if viewportHeight <= 0 || contentHeight <= viewportHeight {
		return Thumb{}, false
	}

	size := maxf(minThumb, viewportHeight*(viewportHeight/contentHeight))
	size = minf(size, viewportHeight)
	maxScroll := contentHeight - viewportHeight
	track := viewportHeight - size

	var pos float32
	if maxScroll > 0 && track > 0 {
		pos = clampf(scrollOffset, 0, maxScroll) / maxScroll * track
	}
	return Thumb{Offset: pos, Size: size}, true
}

// ThumbDragScroll converts a pointer drag on the thumb into a scroll offset:
// dragDelta is the pointer movement since the drag started at startScroll.
// The pixel delta scales by the ratio of scrollable content to free track.
func ThumbDragScroll(dragDelta, startScroll, viewportHeight, contentHeight, minThumb float32) float32 {
	thumb, ok := ScrollbarThumb(startScroll, viewportHeight, contentHeight, minThumb)
	if !ok {
		return startScroll
	}
	maxScroll := contentHeight - viewportHeight
	track := viewportHeight - thumb.Size
	if track <= 0 {
		return startScroll
	}
	return clampf(startScroll+dragDelta*(maxScroll/track), 0, maxScroll)
}

// TrackPageScroll handles a click on the scrollbar track outside the thumb:
// above the thumb pages up one viewport, below pages down. A click on the
// thumb itself leaves the offset unchanged.
func TrackPageScroll(clickY, scrollOffset, viewportHeight, contentHeight, minThumb float32) float32 {
	thumb, ok := ScrollbarThumb(scrollOffset, viewportHeight, contentHeight, minThumb)
	if !ok {
		return scrollOffset
	}
	maxScroll := contentHeight - viewportHeight
	switch {
	case clickY < thumb.Offset:
		return clampf(scrollOffset-viewportHeight, 0, maxScroll)
	case clickY > thumb.Offset+thumb.Size:
		return clampf(scrollOffset+viewportHeight, 0, maxScroll)
	}
	return scrollOffset
}
