package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formScreen asks for one line of text and hands it to submit. It never
// touches the list it was opened from; the owner decides what to do with
// the value.
type formScreen struct {
	title  string
	prompt string
	ti     textinput.Model
	submit func(string) error
	err    string
}

func newFormScreen(title, prompt, initial string, submit func(string) error) *formScreen {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = prompt
	ti.CharLimit = 200
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	return &formScreen{title: title, prompt: prompt, ti: ti, submit: submit}
}

func (f *formScreen) Title() string    { return f.title }
func (f *formScreen) Init() tea.Cmd    { return textinput.Blink }
func (f *formScreen) Capturing() bool  { return true }
func (f *formScreen) Close()           { f.ti.Blur() }
func (f *formScreen) SetSize(w, _ int) { f.ti.Width = max(w-4, 10) }

func (f *formScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			value := strings.TrimSpace(f.ti.Value())
			if err := f.submit(value); err != nil {
				f.err = err.Error()
				return f, nil
			}
			return f, Pop()
		case "esc":
			return f, Pop()
		}
	}
	var cmd tea.Cmd
	f.ti, cmd = f.ti.Update(msg)
	return f, cmd
}

func (f *formScreen) View() string {
	title := titleStyle.Render(f.prompt)
	if f.err != "" {
		title += " " + errorStyle.Render(f.err)
	}
	return title + "\n\n" + f.ti.View() + "\n\n" + helpStyle.Render("enter save • esc cancel")
}
