package vlist_test

import (
	"strconv"
	"testing"

	"github.com/go-virtual-list/vlist"
)

func TestListWindowUniform(t *testing.T) {
	list := vlist.NewList(vlist.FixedHeight[int](50), vlist.WithOverscan(5))
	if err := list.SetItems(ints(1000)); err != nil {
		t.Fatalf("SetItems returned error: %v", err)
	}
	list.SetViewportHeight(500)

	if got := list.TotalHeight(); got != 50000 {
		t.Errorf("TotalHeight() = %v, want 50000", got)
	}
	if list.Metrics() != nil {
		t.Error("fixed-height list built a metrics table instead of using the fast path")
	}

	r := list.VisibleRange()
	if r.Start != 0 || r.End != 14 {
		t.Errorf("VisibleRange() = {%d, %d}, want {0, 14}", r.Start, r.End)
	}

	rows := list.Window()
	if len(rows) != 15 {
		t.Fatalf("len(Window()) = %d, want 15", len(rows))
	}
	for k, row := range rows {
		if row.Index != k {
			t.Errorf("rows[%d].Index = %d, want %d", k, row.Index, k)
		}
		if row.Top != float32(k)*50 {
			t.Errorf("rows[%d].Top = %v, want %v", k, row.Top, float32(k)*50)
		}
	}
}

func TestListMeasuresOncePerBuild(t *testing.T) {
	// The invalidation contract: heights are measured on SetItems and
	// Append, never on reads.
	calls := 0
	list := vlist.NewList(vlist.PerItem(func(_ int, _ int) float32 {
		calls++
		return 30
	}))
	if err := list.SetItems(ints(100)); err != nil {
		t.Fatalf("SetItems returned error: %v", err)
	}
	if calls != 100 {
		t.Fatalf("SetItems measured %d times, want 100", calls)
	}

	list.SetViewportHeight(300)
	for i := 0; i < 10; i++ {
		list.Window()
		list.VisibleRange()
		_ = list.TotalHeight()
		list.OnScroll(float32(i) * 10)
	}
	if calls != 100 {
		t.Errorf("reads triggered %d extra measurements", calls-100)
	}

	if err := list.Append(ints(5)...); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if calls != 105 {
		t.Errorf("Append measured %d times, want 5", calls-100)
	}
	if got := list.TotalHeight(); got != 3150 {
		t.Errorf("TotalHeight() after append = %v, want 3150", got)
	}
}

func TestListAppendExtendsOffsets(t *testing.T) {
	heights := []float32{100, 50, 200, 25, 75}
	spec := vlist.PerItem(func(v int, _ int) float32 { return heights[v] })

	list := vlist.NewList(spec)
	if err := list.SetItems([]int{0, 1, 2}); err != nil {
		t.Fatalf("SetItems returned error: %v", err)
	}
	if err := list.Append(3, 4); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	m := list.Metrics()
	wantOffsets := []float32{0, 100, 150, 350, 375}
	for i, want := range wantOffsets {
		if got := m.OffsetOf(i); got != want {
			t.Errorf("OffsetOf(%d) = %v, want %v", i, got, want)
		}
	}
	if got := list.TotalHeight(); got != 450 {
		t.Errorf("TotalHeight() = %v, want 450", got)
	}
}

func TestListEndReachedLifecycle(t *testing.T) {
	list := vlist.NewList(vlist.FixedHeight[int](40))
	if err := list.SetItems(ints(200)); err != nil {
		t.Fatalf("SetItems returned error: %v", err)
	}
	list.SetViewportHeight(400)

	// Content 8000, threshold 0.8: crossing fires once.
	if ev := list.OnScroll(6000); !ev.EndReached {
		t.Fatal("expected EndReached at threshold")
	}
	if ev := list.OnScroll(6050); ev.EndReached {
		t.Error("EndReached fired twice without new data")
	}

	// Appending data re-arms the signal.
	if err := list.Append(ints(50)...); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	// Content is now 10000; the old offset is below threshold again.
	if ev := list.OnScroll(6050); ev.EndReached {
		t.Error("EndReached fired below threshold after append")
	}
	if ev := list.OnScroll(8000); !ev.EndReached {
		t.Error("expected EndReached after appending and scrolling on")
	}

	// Replacing the collection starts a fresh scroll session.
	if err := list.SetItems(ints(200)); err != nil {
		t.Fatalf("SetItems returned error: %v", err)
	}
	if ev := list.OnScroll(6000); !ev.EndReached {
		t.Error("expected EndReached after SetItems reset")
	}
}

func TestListSetItemsClampsOffset(t *testing.T) {
	list := vlist.NewList(vlist.FixedHeight[int](50))
	if err := list.SetItems(ints(1000)); err != nil {
		t.Fatalf("SetItems returned error: %v", err)
	}
	list.SetViewportHeight(500)
	list.ToBottom()
	if got := list.Offset(); got != 49500 {
		t.Fatalf("ToBottom offset = %v, want 49500", got)
	}

	// Shrinking the collection pulls the offset back into bounds.
	if err := list.SetItems(ints(20)); err != nil {
		t.Fatalf("SetItems returned error: %v", err)
	}
	if got, want := list.Offset(), float32(500); got != want {
		t.Errorf("offset after shrink = %v, want %v", got, want)
	}
	if r := list.VisibleRange(); r.End != 19 {
		t.Errorf("range after shrink ends at %d, want 19", r.End)
	}
}

func TestListSetItemsKeepsOldOnError(t *testing.T) {
	bad := map[int]bool{3: true}
	list := vlist.NewList(vlist.PerItem(func(v int, _ int) float32 {
		if bad[v] {
			return -1
		}
		return 10
	}))
	if err := list.SetItems([]int{0, 1, 2}); err != nil {
		t.Fatalf("SetItems returned error: %v", err)
	}
	if err := list.SetItems([]int{0, 3}); err == nil {
		t.Fatal("expected error for invalid height")
	}
	// The previous collection is still served.
	if list.Len() != 3 {
		t.Errorf("Len() after failed SetItems = %d, want 3", list.Len())
	}
	if got := list.TotalHeight(); got != 30 {
		t.Errorf("TotalHeight() after failed SetItems = %v, want 30", got)
	}
}

func TestListEmpty(t *testing.T) {
	list := vlist.NewList(vlist.PerItem(func(_ int, _ int) float32 { return 10 }))
	list.SetViewportHeight(500)

	if got := list.TotalHeight(); got != 0 {
		t.Errorf("TotalHeight() = %v, want 0", got)
	}
	if r := list.VisibleRange(); !r.Empty() {
		t.Errorf("VisibleRange() = {%d, %d}, want empty", r.Start, r.End)
	}
	if rows := list.Window(); len(rows) != 0 {
		t.Errorf("Window() materialized %d rows for an empty list", len(rows))
	}
	if ev := list.OnScroll(100); ev.EndReached {
		t.Error("EndReached fired for an empty list")
	}
}

func TestListEnsureVisible(t *testing.T) {
	list := vlist.NewList(vlist.FixedHeight[int](50))
	if err := list.SetItems(ints(100)); err != nil {
		t.Fatalf("SetItems returned error: %v", err)
	}
	list.SetViewportHeight(500)

	list.EnsureVisible(40, 0)
	// Item 40 spans [2000, 2050); minimal scroll puts its bottom at the
	// viewport bottom.
	if got := list.Offset(); got != 1550 {
		t.Errorf("offset after EnsureVisible(40) = %v, want 1550", got)
	}
	list.EnsureVisible(40, 0)
	if got := list.Offset(); got != 1550 {
		t.Errorf("second EnsureVisible moved the offset to %v", got)
	}
	list.EnsureVisible(5, 0)
	if got := list.Offset(); got != 250 {
		t.Errorf("offset after EnsureVisible(5) = %v, want 250", got)
	}
	// Out-of-range indices are ignored.
	list.EnsureVisible(-1, 0)
	list.EnsureVisible(1000, 0)
	if got := list.Offset(); got != 250 {
		t.Errorf("out-of-range EnsureVisible moved the offset to %v", got)
	}
}

func TestListCustomKeys(t *testing.T) {
	list := vlist.NewList(vlist.FixedHeight[int](50))
	list.SetKeyFunc(func(v int, _ int) string { return "item-" + strconv.Itoa(v*2) })
	if err := list.SetItems(ints(3)); err != nil {
		t.Fatalf("SetItems returned error: %v", err)
	}
	list.SetViewportHeight(500)

	rows := list.Window()
	if len(rows) != 3 {
		t.Fatalf("len(Window()) = %d, want 3", len(rows))
	}
	for i, row := range rows {
		if want := "item-" + strconv.Itoa(i*2); row.Key != want {
			t.Errorf("rows[%d].Key = %q, want %q", i, row.Key, want)
		}
	}
}

func TestListScrollbar(t *testing.T) {
	list := vlist.NewList(vlist.FixedHeight[int](50))
	if err := list.SetItems(ints(40)); err != nil {
		t.Fatalf("SetItems returned error: %v", err)
	}
	list.SetViewportHeight(500)

	thumb, ok := list.Scrollbar(1)
	if !ok {
		t.Fatal("expected a scrollbar for 2000-tall content in a 500 viewport")
	}
	if thumb.Size != 125 {
		t.Errorf("thumb.Size = %v, want 125", thumb.Size)
	}

	if err := list.SetItems(ints(5)); err != nil {
		t.Fatalf("SetItems returned error: %v", err)
	}
	if _, ok := list.Scrollbar(1); ok {
		t.Error("expected no scrollbar when content fits")
	}
}
