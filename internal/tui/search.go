package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shelf/internal/listing"
	"github.com/idilsaglam/shelf/internal/model"
)

// searchScreen keeps its query input focused and refilters the list on
// every keystroke.
type searchScreen struct {
	*listScreen
	filter *listing.FilteredAdapter
	input  textinput.Model
}

func newSearchScreen(title string, rows []model.Row, match listing.Matcher) *searchScreen {
	filter := listing.NewFilteredAdapter(listing.NewStore(rows...), match)
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "Search"
	in.Focus()

	s := &searchScreen{
		listScreen: newListScreen(title, filter, false),
		filter:     filter,
		input:      in,
	}
	filter.OnSelect = func(_ listing.IndexPath, r model.Row) {
		s.setStatus(fmt.Sprintf("picked %s", r.Label), false)
	}
	return s
}

func (s *searchScreen) Init() tea.Cmd   { return textinput.Blink }
func (s *searchScreen) Capturing() bool { return true }
func (s *searchScreen) Close()          { s.input.Blur() }

func (s *searchScreen) SetSize(w, h int) {
	s.input.Width = max(w-4, 10)
	s.listScreen.SetSize(w, max(h-2, 1))
}

// Query is the text currently filtering the list.
func (s *searchScreen) Query() string { return s.filter.Query() }

func (s *searchScreen) setQuery(q string) tea.Cmd {
	if q == s.filter.Query() {
		return nil
	}
	s.filter.SetQuery(q)
	cmd := s.reload()
	s.list.Select(0)
	if len(s.list.Items()) == 0 {
		s.setStatus("no matches", false)
	} else {
		s.setStatus("", false)
	}
	return cmd
}

func (s *searchScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	switch km.String() {
	case "esc":
		if s.input.Value() == "" {
			return s, Pop()
		}
		s.input.SetValue("")
		return s, s.setQuery("")
	case "enter":
		return s, s.selectCurrent()
	case "up", "down", "pgup", "pgdown":
		return s, s.update(msg)
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, tea.Batch(cmd, s.setQuery(s.input.Value()))
}

func (s *searchScreen) View() string {
	return s.input.View() + "\n\n" + s.listScreen.View()
}
