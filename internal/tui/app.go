// Package tui is the terminal presentation surface: a stack of screens,
// each drawing one list adapter (or a small helper view) with Bubble Tea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/shelf/internal/logger"
)

// Screen is one entry on the navigation stack.
type Screen interface {
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	SetSize(width, height int)
	// Capturing reports whether the screen wants every key, including the
	// ones the app would otherwise use to go back.
	Capturing() bool
	// Close releases anything tied to the screen's lifetime. It is called
	// exactly once, when the screen leaves the stack.
	Close()
}

type pushMsg struct{ screen Screen }

type popMsg struct{}

// Push returns a command that puts s on top of the stack.
func Push(s Screen) tea.Cmd {
	return func() tea.Msg { return pushMsg{screen: s} }
}

// Pop returns a command that removes the top screen.
func Pop() tea.Cmd {
	return func() tea.Msg { return popMsg{} }
}

type appKeys struct {
	Back key.Binding
	Quit key.Binding
}

var keys = appKeys{
	Back: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back")),
	Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// App is the root Bubble Tea model.
type App struct {
	stack         []Screen
	width, height int
	log           *log.Logger
}

// NewApp starts with root at the bottom of the stack.
func NewApp(root Screen) *App {
	a := &App{width: 80, height: 24, log: logger.NewStyledLogger("tui")}
	a.push(root)
	return a
}

// Top returns the visible screen.
func (a *App) Top() Screen {
	if len(a.stack) == 0 {
		return nil
	}
	return a.stack[len(a.stack)-1]
}

// Depth is the number of stacked screens.
func (a *App) Depth() int { return len(a.stack) }

func (a *App) push(s Screen) tea.Cmd {
	s.SetSize(a.innerSize())
	a.stack = append(a.stack, s)
	a.log.Debug("push screen", "screen", s.Title(), "depth", len(a.stack))
	return s.Init()
}

// pop closes the top screen. It reports false when nothing is left.
func (a *App) pop() bool {
	if len(a.stack) == 0 {
		return false
	}
	top := a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]
	top.Close()
	a.log.Debug("pop screen", "screen", top.Title(), "depth", len(a.stack))
	return len(a.stack) > 0
}

// CloseAll empties the stack, closing every screen top-down.
func (a *App) CloseAll() {
	for a.pop() {
	}
}

func (a *App) innerSize() (int, int) {
	// border plus horizontal padding, border plus breadcrumb line
	return max(a.width-4, 10), max(a.height-3, 4)
}

func (a *App) Init() tea.Cmd {
	if top := a.Top(); top != nil {
		return top.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		w, h := a.innerSize()
		for _, s := range a.stack {
			s.SetSize(w, h)
		}
		return a, nil
	case pushMsg:
		return a, a.push(msg.screen)
	case popMsg:
		if !a.pop() {
			return a, tea.Quit
		}
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			a.CloseAll()
			return a, tea.Quit
		}
		if top := a.Top(); top != nil && !top.Capturing() && key.Matches(msg, keys.Back) {
			if !a.pop() {
				return a, tea.Quit
			}
			return a, nil
		}
	}

	top := a.Top()
	if top == nil {
		return a, tea.Quit
	}
	next, cmd := top.Update(msg)
	a.stack[len(a.stack)-1] = next
	return a, cmd
}

func (a *App) View() string {
	top := a.Top()
	if top == nil {
		return ""
	}
	return panelString(a.breadcrumb() + "\n" + top.View())
}

func (a *App) breadcrumb() string {
	parts := make([]string, len(a.stack))
	for i, s := range a.stack {
		parts[i] = s.Title()
	}
	crumb := strings.Join(parts, " › ")
	if len(a.stack) > 1 {
		return mutedStyle.Render(crumb)
	}
	return mutedStyle.Render(fmt.Sprintf("%s  (q to quit)", crumb))
}
