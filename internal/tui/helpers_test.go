package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shelf/internal/demo"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	ctrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func fixtures(t *testing.T) *demo.Fixtures {
	t.Helper()
	f, err := demo.Load()
	require.NoError(t, err)
	return f
}

// drive feeds msg to the app and then follows any navigation the returned
// command produces. Commands that do not answer quickly (blink and tick
// timers) are dropped.
func drive(app *App, msg tea.Msg) {
	_, cmd := app.Update(msg)
	follow(app, cmd)
}

func follow(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-out:
	case <-time.After(50 * time.Millisecond):
		return
	}
	switch m := msg.(type) {
	case pushMsg, popMsg:
		drive(app, m)
	case tea.BatchMsg:
		for _, c := range m {
			follow(app, c)
		}
	}
}

func typeText(app *App, s string) {
	for _, r := range s {
		drive(app, runes(string(r)))
	}
}
