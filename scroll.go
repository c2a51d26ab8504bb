package vlist

// ScrollEvent is the result of feeding one scroll notification to a Scroller.
type ScrollEvent struct {
	Offset     float32 // The accepted (clamped) scroll offset
	EndReached bool    // True at most once per threshold crossing
}

// Scroller tracks the scroll offset for one list instance and raises a
// debounced end-reached signal when scroll depth crosses a threshold
// fraction of the content, used to drive incremental data loading.
//
// A Scroller is single-threaded by design: it expects scroll notifications
// in arrival order from one UI event source. Each list instance owns its own
// Scroller; none of its state is shared.
type Scroller struct {
	offset float32
	target float32

	threshold    float32
	smooth       bool
	smoothSpeed  float32
	pageFraction float32

	signaled bool
}

// NewScroller creates a scroll controller.
// Accepts WithEndThreshold, WithSmoothScroll, WithSmoothSpeed and
// WithPageFraction options.
func NewScroller(opts ...Option) *Scroller {
	o := applyOptions(opts)
	return &Scroller{
		threshold:    GetOpt(o, OptEndThreshold),
		smooth:       GetOpt(o, OptSmoothScroll),
		smoothSpeed:  GetOpt(o, OptSmoothSpeed),
		pageFraction: GetOpt(o, OptPageFraction),
	}
}

// Offset returns the current scroll offset.
func (s *Scroller) Offset() float32 { return s.offset }

// OnScroll accepts a raw scroll notification: it clamps the offset into
// content bounds, stores it, and evaluates the end-reached condition.
//
// End-reached fires when (offset+viewportHeight)/contentHeight crosses the
// threshold, and then stays quiet until the offset retreats below the
// threshold or Reset is called. A contentHeight that is zero or non-finite
// means layout is not yet measured: the offset is tracked but end-reached
// never fires.
func (s *Scroller) OnScroll(newOffset, viewportHeight, contentHeight float32) ScrollEvent {
	if !finite(contentHeight) || contentHeight <= 0 {
		s.offset = maxf(0, newOffset)
		s.target = s.offset
		return ScrollEvent{Offset: s.offset}
	}

	s.offset = clampf(newOffset, 0, maxf(0, contentHeight-viewportHeight))
	s.target = s.offset

	fraction := (s.offset + viewportHeight) / contentHeight
	if fraction >= s.threshold {
		if !s.signaled {
			s.signaled = true
			vlistLogger.Debug("end-reached threshold crossed",
				"offset", s.offset, "fraction", fraction, "threshold", s.threshold)
			return ScrollEvent{Offset: s.offset, EndReached: true}
		}
	} else {
		// Retreated below the threshold: re-arm for the next crossing.
		s.signaled = false
	}
	return ScrollEvent{Offset: s.offset}
}

// Reset re-arms the end-reached signal. Call it when the item collection
// changes identity (e.g. a filter was applied) or grows, so the next
// threshold crossing fires again.
func (s *Scroller) Reset() {
	s.signaled = false
}

// ScrollTo moves the scroll target to y, clamped into content bounds.
// Without smooth scrolling the offset jumps immediately; with it, call
// Update each frame to converge.
func (s *Scroller) ScrollTo(y, viewportHeight, contentHeight float32) {
	s.target = clampf(y, 0, maxf(0, contentHeight-viewportHeight))
	if !s.smooth {
		s.offset = s.target
	}
}

// ScrollBy adjusts the scroll target by delta (positive scrolls down).
func (s *Scroller) ScrollBy(delta, viewportHeight, contentHeight float32) {
	s.ScrollTo(s.target+delta, viewportHeight, contentHeight)
}

// PageDown scrolls forward by a fraction of the viewport (default 80%).
func (s *Scroller) PageDown(viewportHeight, contentHeight float32) {
	s.ScrollBy(viewportHeight*s.pageFraction, viewportHeight, contentHeight)
}

// PageUp scrolls backward by a fraction of the viewport (default 80%).
func (s *Scroller) PageUp(viewportHeight, contentHeight float32) {
	s.ScrollBy(-viewportHeight*s.pageFraction, viewportHeight, contentHeight)
}

// ToTop scrolls to the beginning of the content.
func (s *Scroller) ToTop() {
	s.target = 0
	if !s.smooth {
		s.offset = 0
	}
}

// ToBottom scrolls to the end of the content.
func (s *Scroller) ToBottom(viewportHeight, contentHeight float32) {
	s.ScrollTo(maxf(0, contentHeight-viewportHeight), viewportHeight, contentHeight)
}

// EnsureVisible scrolls minimally so the extent [top, top+height) is inside
// the viewport with the given padding. If the extent is already visible the
// target is unchanged.
func (s *Scroller) EnsureVisible(top, height, viewportHeight, contentHeight, padding float32) {
	if top-padding < s.target {
		s.ScrollTo(top-padding, viewportHeight, contentHeight)
	} else if top+height+padding > s.target+viewportHeight {
		s.ScrollTo(top+height+padding-viewportHeight, viewportHeight, contentHeight)
	}
}

// Update advances smooth scrolling by one frame with the frame's delta time.
// Returns true while still animating. A no-op (returning false) when smooth
// scrolling is disabled or the target is reached.
func (s *Scroller) Update(deltaTime float32) bool {
	const settleThreshold = 0.5 // Stop animating when this close

	diff := s.target - s.offset
	if diff < settleThreshold && diff > -settleThreshold {
		s.offset = s.target
		return false
	}
	s.offset += diff * deltaTime * s.smoothSpeed
	return true
}
