package tui

import (
	"fmt"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shelf/internal/demo"
	"github.com/idilsaglam/shelf/internal/listing"
	"github.com/idilsaglam/shelf/internal/logger"
	"github.com/idilsaglam/shelf/internal/model"
)

// Options configures a browse session.
type Options struct {
	Fixtures *demo.Fixtures
	Grocery  GroceryOptions
	// Start names the first screen; empty starts at the menu.
	Start        string
	LoadingDelay time.Duration
	Theme        string
	Match        listing.Matcher
}

// Build returns the screen registered under name.
func Build(name string, opt Options) (Screen, error) {
	f := opt.Fixtures
	switch name {
	case demo.Grocery:
		g := opt.Grocery
		if g.Title == "" {
			g.Title = f.Title(demo.Grocery)
		}
		var rows []model.Row
		if g.Load != nil {
			var err error
			if rows, err = g.Load(); err != nil {
				return nil, fmt.Errorf("load grocery list: %w", err)
			}
		}
		return newGroceryScreen(g, rows), nil
	case demo.Settings:
		a := listing.NewSectionedAdapter(f.SettingsSections())
		s := newListScreen(f.Title(demo.Settings), a, false)
		a.OnSelect = func(_ listing.IndexPath, r model.Row) {
			// Nothing to open; selecting just acknowledges the row.
			s.setStatus(r.Label, false)
		}
		return s, nil
	case demo.Topics:
		a := listing.NewSectionedAdapter(f.TopicsSections())
		s := newListScreen(f.Title(demo.Topics), a, false)
		a.OnSelect = func(p listing.IndexPath, r model.Row) {
			s.setStatus(fmt.Sprintf("%s: %s", a.Title(p.Section), r.Label), false)
		}
		return s, nil
	case demo.Catalog:
		a := listing.NewSectionedAdapter(f.CatalogSections())
		s := newListScreen(f.Title(demo.Catalog), a, true)
		var bag []string
		a.OnSelect = func(_ listing.IndexPath, r model.Row) {
			bag = append(bag, r.Label)
			s.setStatus(fmt.Sprintf("added %s to bag (%d)", r.Label, len(bag)), false)
		}
		// A model that leaves the catalog leaves the bag too.
		a.OnDelete = func(p listing.IndexPath, r model.Row) {
			if i := slices.Index(bag, r.Label); i >= 0 {
				bag = slices.Delete(bag, i, i+1)
				logger.Debug("dropped from bag", "path", p.String(), "label", r.Label, "bag", len(bag))
			}
		}
		return s, nil
	case demo.Search:
		return newSearchScreen(f.Title(demo.Search), f.SearchRows(), opt.Match), nil
	case demo.Picker:
		a := listing.NewStoreAdapter(listing.NewStore(f.PickerRows()...), f.Title(demo.Picker))
		s := newListScreen(f.Title(demo.Picker), a, false)
		a.OnSelect = func(_ listing.IndexPath, r model.Row) {
			logger.Info("picked", "screen", demo.Picker, "value", r.Label)
			s.setStatus("Selected: "+r.Label, false)
		}
		return s, nil
	case demo.Loading:
		delay := opt.LoadingDelay
		if delay <= 0 {
			delay = 10 * time.Second
		}
		return newLoadingScreen(delay), nil
	}
	return nil, fmt.Errorf("unknown screen %q", name)
}

// newMenuScreen lists every demo; selecting one pushes it.
func newMenuScreen(opt Options) *listScreen {
	var rows []model.Row
	for _, name := range demo.Names() {
		rows = append(rows, model.Row{Label: name, Detail: demo.Describe(name)})
	}
	a := listing.NewStoreAdapter(listing.NewStore(rows...), "shelf")
	s := newListScreen("shelf", a, false)
	a.OnSelect = func(_ listing.IndexPath, r model.Row) {
		next, err := Build(r.Label, opt)
		if err != nil {
			s.setStatus(err.Error(), true)
			return
		}
		s.pending = Push(next)
	}
	return s
}

// NewRoot returns the App for opt: the menu, with the start screen pushed
// on top when one is named.
func NewRoot(opt Options) (*App, error) {
	applyTheme(opt.Theme)
	app := NewApp(newMenuScreen(opt))
	if opt.Start != "" {
		s, err := Build(opt.Start, opt)
		if err != nil {
			return nil, err
		}
		app.push(s)
	}
	return app, nil
}

// Run drives the program until the user quits.
func Run(opt Options) error {
	logger.Quiet()
	app, err := NewRoot(opt)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	app.CloseAll()
	return err
}
