// Example demonstrates an infinitely loading, variable-height log feed
// rendered through the windowing engine in a terminal:
//
//	go run ./example/
//
// Entries wrap to the terminal width, so each one occupies a different
// number of rows; the engine keeps scrolling smooth by materializing only
// the rows intersecting the viewport, and requests another batch whenever
// scroll depth crosses the end-reached threshold.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/go-virtual-list/vlist"
	"github.com/go-virtual-list/vlist/tui"
)

const (
	batchSize    = 200
	contentWidth = 78 // wrap width; one column is reserved for the scrollbar
)

var sampleLines = []string{
	"service started, listening on :8080",
	"connection accepted from 10.0.4.17:50412 with TLS 1.3, cipher TLS_AES_128_GCM_SHA256, ALPN h2, negotiated in 3ms",
	"cache miss for key user:9341:profile, falling back to primary store",
	"slow query detected: SELECT * FROM events WHERE tenant_id = $1 AND created_at > $2 ORDER BY created_at DESC took 412ms, consider adding a covering index on (tenant_id, created_at) to avoid the sequential scan observed in the plan",
	"retrying upstream call (attempt 2/3) after timeout",
	"payload checksum verified",
}

// entry is one log line in the feed.
type entry struct {
	seq  int
	when time.Time
	text string
}

// render produces the wrapped, prefixed display string for an entry.
func (e entry) render(width int) string {
	prefix := fmt.Sprintf("%6d %s  ", e.seq, e.when.Format("15:04:05"))
	body := wordwrap.String(e.text, max(10, width-len(prefix)))
	lines := strings.Split(body, "\n")
	pad := strings.Repeat(" ", len(prefix))
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// rows counts how many terminal rows the rendered entry occupies. This is
// the height spec for the list, so it must agree with render.
func (e entry) rows(width int) float32 {
	return float32(strings.Count(e.render(width), "\n") + 1)
}

// makeBatch fabricates the next batch of log entries.
func makeBatch(from int) []entry {
	batch := make([]entry, batchSize)
	base := time.Now()
	for i := range batch {
		seq := from + i
		batch[i] = entry{
			seq:  seq,
			when: base.Add(time.Duration(seq) * time.Second),
			text: sampleLines[seq%len(sampleLines)],
		}
	}
	return batch
}

var statusStyle = lipgloss.NewStyle().Faint(true)

type model struct {
	feed    tui.Model[entry]
	loads   int
	lastErr error
}

func newModel() (model, error) {
	list := vlist.NewList(
		vlist.PerItem(func(e entry, _ int) float32 { return e.rows(contentWidth) }),
		vlist.WithOverscan(4),
	)
	// Wrap at a fixed width so measured heights stay in agreement with the
	// rendered output regardless of terminal size.
	feed := tui.New(list, func(e entry, _ int, _ int) string {
		return e.render(contentWidth)
	})
	if err := feed.SetItems(makeBatch(0)); err != nil {
		return model{}, err
	}
	return model{feed: feed}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// One row is reserved for the status line.
		m.feed.SetSize(msg.Width, max(1, msg.Height-1))
		return m, nil

	case tui.LoadMoreMsg:
		// The component guarantees at most one of these is outstanding.
		m.loads++
		if err := m.feed.Append(makeBatch(m.feed.List().Len())...); err != nil {
			m.lastErr = err
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.feed, cmd = m.feed.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := fmt.Sprintf(" %d entries · %d loads · j/k scroll · q quits",
		m.feed.List().Len(), m.loads)
	if m.lastErr != nil {
		status = " error: " + m.lastErr.Error()
	}
	return m.feed.View() + "\n" + statusStyle.Render(status)
}

func main() {
	m, err := newModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(1)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "run:", err)
		os.Exit(1)
	}
}
