package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// detailScreen shows a heading and one large value, e.g. the aisle a
// grocery item is found on.
type detailScreen struct {
	title, heading, value string
	width                 int
}

func newDetailScreen(title, heading, value string) *detailScreen {
	return &detailScreen{title: title, heading: heading, value: value}
}

func aisleScreen(item string, aisle int) *detailScreen {
	return newDetailScreen(item, fmt.Sprintf("%s found on:", item), fmt.Sprintf("Aisle %d", aisle))
}

func (d *detailScreen) Title() string    { return d.title }
func (d *detailScreen) Init() tea.Cmd    { return nil }
func (d *detailScreen) Capturing() bool  { return false }
func (d *detailScreen) Close()           {}
func (d *detailScreen) SetSize(w, _ int) { d.width = w }

func (d *detailScreen) Update(msg tea.Msg) (Screen, tea.Cmd) { return d, nil }

func (d *detailScreen) View() string {
	body := titleStyle.Render(d.heading) + "\n\n" + bigStyle.Render(d.value)
	if d.width > 0 {
		body = lipgloss.PlaceHorizontal(d.width, lipgloss.Center, body)
	}
	return body + "\n\n" + helpStyle.Render("esc back")
}
