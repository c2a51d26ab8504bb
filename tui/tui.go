// Package tui hosts a vlist.List inside a Bubble Tea program: it maps key
// and mouse events to scroll operations, renders the materialized window,
// draws a scrollbar, and surfaces the engine's end-reached signal as a
// LoadMoreMsg for incremental data loading.
//
// Model follows the Bubbles component convention: embed it in a parent
// model, forward messages to Update, and compose View output.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-virtual-list/vlist"
)

// wheelLines is how many rows one mouse-wheel tick scrolls.
const wheelLines = 3

// RenderFunc draws one item at the given content width. Multi-line output is
// expected for items taller than one row; the model normalizes the result to
// the item's declared height.
type RenderFunc[T any] func(item T, index int, width int) string

// LoadMoreMsg is emitted once when scroll depth crosses the list's
// end-reached threshold. The parent model owns loading: fetch data, then
// call Append (which also re-arms the signal).
type LoadMoreMsg struct{}

// Model is a scrollable, windowed list component.
type Model[T any] struct {
	list     *vlist.List[T]
	render   RenderFunc[T]
	keys     KeyMap
	styles   Styles
	rowCache *vlist.Store[string]

	width    int
	height   int
	selected int
	loading  bool
}

// New creates a list component around an existing engine instance.
// The list's height spec must measure items in terminal rows.
func New[T any](list *vlist.List[T], render RenderFunc[T]) Model[T] {
	return Model[T]{
		list:     list,
		render:   render,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		rowCache: vlist.NewStore[string](),
	}
}

// SetKeyMap replaces the navigation key bindings.
func (m *Model[T]) SetKeyMap(keys KeyMap) { m.keys = keys }

// SetStyles replaces the render styles.
func (m *Model[T]) SetStyles(s Styles) { m.styles = s }

// List exposes the underlying engine for direct control.
func (m *Model[T]) List() *vlist.List[T] { return m.list }

// SelectedIndex returns the current selection, -1 when the list is empty.
func (m Model[T]) SelectedIndex() int {
	if m.list.Len() == 0 {
		return -1
	}
	return m.selected
}

// SelectedItem returns the selected item, false when the list is empty.
func (m Model[T]) SelectedItem() (T, bool) {
	var zero T
	if m.list.Len() == 0 {
		return zero, false
	}
	return m.list.Items()[m.selected], true
}

// SetItems replaces the collection and resets selection and loading state.
func (m *Model[T]) SetItems(items []T) error {
	if err := m.list.SetItems(items); err != nil {
		return err
	}
	m.selected = 0
	m.loading = false
	m.rowCache.Clear()
	return nil
}

// Append adds items at the end and clears the in-flight loading guard, so a
// later threshold crossing can request more data again.
func (m *Model[T]) Append(items ...T) error {
	if err := m.list.Append(items...); err != nil {
		return err
	}
	m.loading = false
	return nil
}

// SetSize sets the component's outer dimensions in terminal cells.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetViewportHeight(float32(height))
	m.rowCache.Clear()
}

// Init implements the Bubble Tea component convention; no initial command.
func (m Model[T]) Init() tea.Cmd { return nil }

// Update handles navigation keys, mouse wheel scrolling, and window sizing.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.list.ScrollBy(-wheelLines)
			cmd := m.checkEndReached()
			return m, cmd
		case tea.MouseButtonWheelDown:
			m.list.ScrollBy(wheelLines)
			cmd := m.checkEndReached()
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveSelection(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveSelection(1)
		case key.Matches(msg, m.keys.PageUp):
			m.list.PageUp()
		case key.Matches(msg, m.keys.PageDown):
			m.list.PageDown()
		case key.Matches(msg, m.keys.Home):
			m.selected = 0
			m.list.ToTop()
		case key.Matches(msg, m.keys.End):
			if n := m.list.Len(); n > 0 {
				m.selected = n - 1
			}
			m.list.ToBottom()
		default:
			return m, nil
		}
		cmd := m.checkEndReached()
		return m, cmd
	}
	return m, nil
}

// moveSelection shifts the selection and scrolls minimally to keep it
// visible.
func (m *Model[T]) moveSelection(delta int) {
	n := m.list.Len()
	if n == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= n {
		m.selected = n - 1
	}
	m.list.EnsureVisible(m.selected, 0)
}

// checkEndReached re-evaluates the end condition at the current offset and
// requests more data at most once per crossing while nothing is in flight.
func (m *Model[T]) checkEndReached() tea.Cmd {
	ev := m.list.OnScroll(m.list.Offset())
	if ev.EndReached && !m.loading {
		m.loading = true
		return func() tea.Msg { return LoadMoreMsg{} }
	}
	return nil
}

// View renders the visible window plus a one-column scrollbar.
func (m Model[T]) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	contentWidth := m.width - 1 // reserve the scrollbar column
	if contentWidth < 1 {
		contentWidth = m.width
	}

	offset := int(m.list.Offset())
	lines := make([]string, m.height)
	for _, row := range m.list.Window() {
		rowLines := strings.Split(m.renderRow(row, contentWidth), "\n")
		want := int(row.Height)
		for len(rowLines) < want {
			rowLines = append(rowLines, "")
		}
		rowLines = rowLines[:want]

		top := int(row.Top)
		for i, line := range rowLines {
			y := top + i - offset
			if y < 0 || y >= m.height {
				continue
			}
			if row.Index == m.selected {
				line = m.styles.SelectedRow.Render(line)
			} else {
				line = m.styles.Row.Render(line)
			}
			lines[y] = line
		}
	}
	m.rowCache.NextPass()

	scrollbar := m.scrollbarColumn()
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(lines[y])
		if scrollbar != nil {
			b.WriteString(scrollbar[y])
		}
	}
	return b.String()
}

// renderRow returns the rendered item, cached across passes by key and
// width. Entries for rows that scroll out of the window expire on their own.
func (m Model[T]) renderRow(row vlist.Row[T], width int) string {
	id := vlist.KeyID(fmt.Sprintf("%s|%d", row.Key, width))
	cached := m.rowCache.Get(id, "")
	if *cached == "" {
		*cached = m.render(row.Item, row.Index, width)
	}
	return *cached
}

// scrollbarColumn returns one styled cell per viewport row, or nil when the
// content fits.
func (m Model[T]) scrollbarColumn() []string {
	thumb, ok := m.list.Scrollbar(1)
	if !ok {
		return nil
	}
	top := int(thumb.Offset)
	size := int(thumb.Size + 0.5)
	if size < 1 {
		size = 1
	}
	if top+size > m.height {
		top = m.height - size
	}

	col := make([]string, m.height)
	for y := range col {
		if y >= top && y < top+size {
			col[y] = m.styles.ScrollbarThumb.Render(scrollThumbChar)
		} else {
			col[y] = m.styles.ScrollbarTrack.Render(scrollTrackChar)
		}
	}
	return col
}
