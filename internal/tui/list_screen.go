package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shelf/internal/listing"
	"github.com/idilsaglam/shelf/internal/logger"
	"github.com/idilsaglam/shelf/internal/model"
)

// rowItem adapts one adapter row to bubbles/list.Item.
type rowItem struct {
	path listing.IndexPath
	row  model.Row
}

func (i rowItem) FilterValue() string { return i.row.Label }

// headerItem is a section title. The cursor never rests on it.
type headerItem struct{ title string }

func (h headerItem) FilterValue() string { return "" }

type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch it := item.(type) {
	case headerItem:
		fmt.Fprintln(w, headerStyle.Render(strings.ToUpper(it.title)))
	case rowItem:
		text := it.row.Label
		if it.row.Detail != "" {
			text += "  " + mutedStyle.Render(it.row.Detail)
		}
		if it.row.Icon != "" {
			text = mutedStyle.Render("["+it.row.Icon+"]") + " " + text
		}
		prefix := "  "
		if index == m.Index() {
			prefix = selectedStyle.Render("> ")
		}
		fmt.Fprintln(w, prefix+text)
	}
}

// items flattens an adapter into list items. Section headers are only
// emitted when the adapter has more than one section.
func items(a listing.Adapter) []list.Item {
	entries := listing.Rows(a)
	titled, hasTitles := a.(listing.Titled)
	headers := hasTitles && a.SectionCount() > 1
	out := make([]list.Item, 0, len(entries)+a.SectionCount())
	next := 0
	for s := 0; s < a.SectionCount(); s++ {
		if headers {
			out = append(out, headerItem{title: titled.Title(s)})
		}
		for ; next < len(entries) && entries[next].Path.Section == s; next++ {
			out = append(out, rowItem{path: entries[next].Path, row: entries[next].Row})
		}
	}
	return out
}

type listKeys struct {
	Select key.Binding
	Delete key.Binding
}

var defaultListKeys = listKeys{
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
}

// listScreen draws any adapter. The list items are rebuilt from the adapter
// after every mutation, so what is drawn is always what the adapter holds.
type listScreen struct {
	title     string
	adapter   listing.Adapter
	list      list.Model
	keys      listKeys
	deletable bool
	extraKeys []key.Binding

	status    string
	statusErr bool
	// pending is set by adapter select hooks and returned from Update.
	pending tea.Cmd
}

func newListScreen(title string, a listing.Adapter, deletable bool) *listScreen {
	l := list.New(items(a), rowDelegate{}, 0, 0)
	l.Title = titleStyle.Render(title)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	s := &listScreen{
		title:     title,
		adapter:   a,
		list:      l,
		keys:      defaultListKeys,
		deletable: deletable,
	}
	s.keys.Delete.SetEnabled(deletable)
	l.AdditionalShortHelpKeys = s.helpKeys
	l.AdditionalFullHelpKeys = s.helpKeys
	s.list = l
	s.skipHeaders(1)
	return s
}

func (s *listScreen) helpKeys() []key.Binding {
	return append([]key.Binding{s.keys.Select, s.keys.Delete}, s.extraKeys...)
}

func (s *listScreen) Title() string   { return s.title }
func (s *listScreen) Init() tea.Cmd   { return nil }
func (s *listScreen) Capturing() bool { return false }
func (s *listScreen) Close()          {}

func (s *listScreen) SetSize(w, h int) {
	s.list.SetSize(w, max(h-1, 1))
}

func (s *listScreen) setStatus(msg string, isErr bool) {
	s.status, s.statusErr = msg, isErr
}

// selected returns the row under the cursor, if any.
func (s *listScreen) selected() (rowItem, bool) {
	it, ok := s.list.SelectedItem().(rowItem)
	return it, ok
}

// reload rebuilds the items and keeps the cursor near where it was.
func (s *listScreen) reload() tea.Cmd {
	idx := s.list.Index()
	cmd := s.list.SetItems(items(s.adapter))
	n := len(s.list.Items())
	if n == 0 {
		return cmd
	}
	if idx >= n {
		idx = n - 1
	}
	s.list.Select(idx)
	s.skipHeaders(1)
	return cmd
}

// skipHeaders moves the cursor off section headers, in direction dir
// first and the other way if it runs out of rows.
func (s *listScreen) skipHeaders(dir int) {
	n := len(s.list.Items())
	for i := 0; i < 2*n; i++ {
		if _, ok := s.list.SelectedItem().(headerItem); !ok {
			return
		}
		idx := s.list.Index()
		if dir < 0 && idx == 0 {
			dir = 1
		} else if dir > 0 && idx == n-1 {
			dir = -1
		}
		if dir < 0 {
			s.list.CursorUp()
		} else {
			s.list.CursorDown()
		}
	}
}

// selectCurrent runs the adapter's select hook for the cursor row.
func (s *listScreen) selectCurrent() tea.Cmd {
	it, ok := s.selected()
	if !ok {
		return nil
	}
	s.pending = nil
	if err := s.adapter.Select(it.path.Section, it.path.Row); err != nil {
		s.setStatus(err.Error(), true)
		return nil
	}
	cmd := s.pending
	s.pending = nil
	return cmd
}

// deleteCurrent removes the cursor row through the adapter and redraws.
func (s *listScreen) deleteCurrent() (model.Row, bool, tea.Cmd) {
	it, ok := s.selected()
	if !ok || !s.deletable {
		return model.Row{}, false, nil
	}
	if err := s.adapter.Delete(it.path.Section, it.path.Row); err != nil {
		s.setStatus(err.Error(), true)
		return model.Row{}, false, nil
	}
	logger.Debug("deleted row", "screen", s.title, "path", it.path.String(), "label", it.row.Label)
	s.setStatus("deleted "+it.row.Label, false)
	return it.row, true, s.reload()
}

func direction(msg tea.KeyMsg) int {
	switch msg.String() {
	case "up", "k", "pgup", "left", "h", "home", "g":
		return -1
	}
	return 1
}

func (s *listScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	return s, s.update(msg)
}

func (s *listScreen) update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, s.keys.Select):
			return s.selectCurrent()
		case key.Matches(km, s.keys.Delete):
			_, _, cmd := s.deleteCurrent()
			return cmd
		}
		var cmd tea.Cmd
		s.list, cmd = s.list.Update(msg)
		s.skipHeaders(direction(km))
		return cmd
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return cmd
}

func (s *listScreen) View() string {
	return s.list.View() + "\n" + statusLine(s.status, s.statusErr)
}
