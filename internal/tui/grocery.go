package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shelf/internal/listing"
	"github.com/idilsaglam/shelf/internal/logger"
	"github.com/idilsaglam/shelf/internal/model"
)

var errEmptyTitle = errors.New("title cannot be empty")

type groceryKeys struct {
	Add  key.Binding
	Edit key.Binding
	Undo key.Binding
	Sort key.Binding
}

var defaultGroceryKeys = groceryKeys{
	Add:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Edit: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Undo: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	Sort: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
}

// groceryScreen is the editable list. It owns its store; the add and edit
// forms only get a callback.
type groceryScreen struct {
	*listScreen
	store *listing.Store
	gkeys groceryKeys

	// single-level undo of the last delete
	undoIndex int
	undoRow   *model.Row

	saveErr error
}

// GroceryOptions wires the grocery screen to its persistence and detail.
type GroceryOptions struct {
	Title string
	// Load returns the current rows. It is called each time the screen is
	// opened, so a reopened screen starts from what was last saved.
	Load func() ([]model.Row, error)
	// Save is called with the full list after every change. Nil disables
	// persistence.
	Save func([]model.Row) error
	// Aisle picks the aisle shown on the detail screen.
	Aisle func() int
}

func newGroceryScreen(opt GroceryOptions, rows []model.Row) *groceryScreen {
	store := listing.NewStore(rows...)
	adapter := listing.NewStoreAdapter(store, opt.Title)

	g := &groceryScreen{
		listScreen: newListScreen(opt.Title, adapter, true),
		store:      store,
		gkeys:      defaultGroceryKeys,
	}
	g.extraKeys = []key.Binding{g.gkeys.Add, g.gkeys.Edit, g.gkeys.Undo, g.gkeys.Sort}

	aisle := opt.Aisle
	adapter.OnSelect = func(_ listing.IndexPath, r model.Row) {
		n := 1
		if aisle != nil {
			n = aisle()
		}
		g.pending = Push(aisleScreen(r.Label, n))
	}

	if opt.Save != nil {
		store.Observe(func(c listing.Change) {
			if err := opt.Save(store.Rows()); err != nil {
				logger.Error("save failed", "error", err)
				g.saveErr = err
				return
			}
			g.saveErr = nil
			logger.Debug("saved", "change", c.Kind.String(), "rows", store.Len())
		})
	}
	return g
}

// Store exposes the rows for callers that need the final state.
func (g *groceryScreen) Store() *listing.Store { return g.store }

func (g *groceryScreen) add(label string) error {
	if label == "" {
		return errEmptyTitle
	}
	g.store.Append(model.NewRow(label))
	g.reload()
	g.list.Select(len(g.list.Items()) - 1)
	g.setStatus("added "+label, false)
	return nil
}

func (g *groceryScreen) edit(id string) func(string) error {
	return func(label string) error {
		if label == "" {
			return errEmptyTitle
		}
		i := g.store.IndexOf(id)
		if i < 0 {
			return errors.New("item no longer exists")
		}
		row, _ := g.store.At(i)
		row.Label = label
		if err := g.store.Set(i, row); err != nil {
			return err
		}
		g.reload()
		g.setStatus("renamed to "+label, false)
		return nil
	}
}

func (g *groceryScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, g.update(msg)
	}
	switch {
	case key.Matches(km, g.gkeys.Add):
		return g, Push(newFormScreen("Add New Item", "Enter New Grocery Item", "", g.add))
	case key.Matches(km, g.gkeys.Edit):
		it, ok := g.selected()
		if !ok {
			return g, nil
		}
		return g, Push(newFormScreen("Edit Item", "Edit Grocery Item", it.row.Label, g.edit(it.row.ID)))
	case key.Matches(km, g.keys.Delete):
		idx := g.list.Index()
		row, deleted, cmd := g.deleteCurrent()
		if deleted {
			g.undoIndex, g.undoRow = idx, &row
		}
		return g, cmd
	case key.Matches(km, g.gkeys.Undo):
		if g.undoRow == nil {
			return g, nil
		}
		idx := min(max(g.undoIndex, 0), g.store.Len())
		if err := g.store.Insert(idx, *g.undoRow); err != nil {
			g.setStatus(err.Error(), true)
			return g, nil
		}
		g.setStatus("restored "+g.undoRow.Label, false)
		g.undoRow = nil
		cmd := g.reload()
		g.list.Select(idx)
		return g, cmd
	case key.Matches(km, g.gkeys.Sort):
		g.store.Sort()
		g.undoRow = nil
		return g, g.reload()
	}
	return g, g.update(msg)
}

func (g *groceryScreen) View() string {
	v := g.listScreen.View()
	if g.saveErr != nil {
		v += "\n" + statusLine("save: "+g.saveErr.Error(), true)
	}
	return v
}
