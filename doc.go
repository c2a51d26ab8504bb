/*
Package vlist provides a virtual list windowing engine: the viewport math
needed to render only the visible slice of a large scrollable list, keeping
render cost bounded by viewport size instead of item count.

The engine is renderer-agnostic. It computes numeric layout (which items are
visible, where each one sits, how tall the content is) and leaves drawing to
the host. A Bubble Tea adapter for terminal UIs lives in the tui subpackage.

# Overview

Four pieces compose the engine:

  - Metrics: per-item heights and cumulative offsets, built once per
    collection change by BuildMetrics. For fixed-height lists Clipper
    computes the same answers arithmetically without a table.
  - Visible range: Metrics.VisibleRange binary-searches the offset table for
    the items overlapping the viewport, plus a configurable overscan margin.
  - Materialization: Materialize maps the visible range to positioned Row
    descriptors with stable keys for render diffing.
  - Scrolling: Scroller owns the scroll offset, clamps it to content bounds,
    and raises a debounced end-reached signal for incremental data loading.

List ties the pieces together with an explicit invalidation contract: the
metrics table is rebuilt only when the items or the height spec change, never
on reads.

# Quick Start

	list := vlist.NewList(
	    vlist.PerItem(func(msg Message, i int) float32 { return msg.Lines }),
	    vlist.WithOverscan(3),
	)
	if err := list.SetItems(messages); err != nil {
	    // a height measured <= 0 or non-finite
	}
	list.SetViewportHeight(40)

	// On every scroll tick from the host:
	ev := list.OnScroll(newOffset)
	if ev.EndReached {
	    go loadMore() // host owns in-flight dedup
	}
	for _, row := range list.Window() {
	    draw(row.Item, row.Top-ev.Offset, row.Height)
	}

The engine is single-threaded by design: one List per scrollable surface,
scroll events processed in arrival order. Instances share no state.

# Heights

Heights must be positive and finite. By default BuildMetrics fails fast with
a HeightError on a bad measurement; WithMinHeight switches the policy to
clamping, for hosts that prefer a visually degraded list over no list.
*/
package vlist
