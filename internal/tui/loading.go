package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shelf/internal/logger"
	"github.com/idilsaglam/shelf/internal/timer"
)

type loadingDoneMsg struct{ run int }

var startKey = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start"))

// loadingScreen runs a spinner for a fixed delay. Input other than "back"
// is ignored while it runs, and leaving the screen cancels the timer.
type loadingScreen struct {
	delay   time.Duration
	spinner spinner.Model

	ctx    context.Context
	cancel context.CancelFunc
	timer  *timer.OneShot
	run    int
	done   int // completed runs
}

func newLoadingScreen(delay time.Duration) *loadingScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle
	ctx, cancel := context.WithCancel(context.Background())
	return &loadingScreen{delay: delay, spinner: sp, ctx: ctx, cancel: cancel}
}

func (l *loadingScreen) Title() string   { return "Loading" }
func (l *loadingScreen) Init() tea.Cmd   { return nil }
func (l *loadingScreen) Capturing() bool { return false }
func (l *loadingScreen) SetSize(_, _ int) {}

// Close cancels a running timer so it can never fire for a screen that is
// gone.
func (l *loadingScreen) Close() {
	l.cancel()
	if l.timer != nil && l.timer.Stop() {
		logger.Debug("loading timer cancelled", "run", l.run)
	}
}

func (l *loadingScreen) running() bool {
	if l.timer == nil {
		return false
	}
	select {
	case <-l.timer.Done():
		return false
	default:
		return true
	}
}

func (l *loadingScreen) start() tea.Cmd {
	l.run++
	run := l.run
	t := timer.Start(l.ctx, l.delay, nil)
	l.timer = t
	wait := func() tea.Msg {
		<-t.Done()
		if !t.Fired() {
			return nil
		}
		return loadingDoneMsg{run: run}
	}
	return tea.Batch(wait, l.spinner.Tick)
}

func (l *loadingScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadingDoneMsg:
		if msg.run == l.run {
			l.done++
		}
		return l, nil
	case spinner.TickMsg:
		if !l.running() {
			return l, nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	case tea.KeyMsg:
		if l.running() {
			return l, nil
		}
		if key.Matches(msg, startKey) {
			return l, l.start()
		}
	}
	return l, nil
}

func (l *loadingScreen) View() string {
	if l.running() {
		return fmt.Sprintf("%s Loading… (%s)\n\n%s", l.spinner.View(), l.delay, helpStyle.Render("input disabled • esc cancel"))
	}
	status := ""
	if l.done > 0 {
		status = statusLine(fmt.Sprintf("finished %d run(s)", l.done), false) + "\n\n"
	}
	return status + helpStyle.Render("enter start • esc back")
}
