package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shelf/internal/demo"
	"github.com/idilsaglam/shelf/internal/model"
)

// savedRows stands in for the data file: load returns the seed until
// something has been saved.
type savedRows struct {
	seed  []model.Row
	rows  []model.Row
	calls int
	err   error
}

func (s *savedRows) save(rows []model.Row) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.rows = rows
	return nil
}

func (s *savedRows) load() ([]model.Row, error) {
	if s.rows == nil {
		return s.seed, nil
	}
	return s.rows, nil
}

func groceryApp(t *testing.T, saved *savedRows, labels ...string) (*App, *groceryScreen) {
	t.Helper()
	saved.seed = model.RowsFromLabels(labels...)
	app, err := NewRoot(Options{
		Fixtures: fixtures(t),
		Start:    demo.Grocery,
		Grocery: GroceryOptions{
			Load:  saved.load,
			Save:  saved.save,
			Aisle: func() int { return 7 },
		},
	})
	require.NoError(t, err)
	return app, app.Top().(*groceryScreen)
}

func labelsOf(rows []model.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Label
	}
	return out
}

func TestGrocery_DeleteRemovesDataAndRow(t *testing.T) {
	saved := &savedRows{}
	app, g := groceryApp(t, saved, "Bannana", "Watermelon", "Pineapple")

	drive(app, down)
	drive(app, runes("d"))

	assert.Equal(t, []string{"Bannana", "Pineapple"}, g.Store().Labels())
	assert.Len(t, g.list.Items(), 2)
	assert.Equal(t, 2, g.adapter.RowCount(0))
	assert.Equal(t, []string{"Bannana", "Pineapple"}, labelsOf(saved.rows))
	it, ok := g.selected()
	require.True(t, ok)
	assert.Equal(t, "Pineapple", it.row.Label)
}

func TestGrocery_DeleteLastRowMovesCursorUp(t *testing.T) {
	app, g := groceryApp(t, &savedRows{}, "a", "b")

	drive(app, down)
	drive(app, runes("d"))

	it, ok := g.selected()
	require.True(t, ok)
	assert.Equal(t, "a", it.row.Label)
}

func TestGrocery_UndoRestoresPosition(t *testing.T) {
	saved := &savedRows{}
	app, g := groceryApp(t, saved, "Bannana", "Watermelon", "Pineapple")

	drive(app, down)
	drive(app, runes("d"))
	drive(app, runes("u"))

	assert.Equal(t, []string{"Bannana", "Watermelon", "Pineapple"}, g.Store().Labels())
	assert.Equal(t, 2, saved.calls)

	drive(app, runes("u"))
	assert.Equal(t, 3, g.Store().Len())
}

func TestGrocery_AddThroughForm(t *testing.T) {
	saved := &savedRows{}
	app, g := groceryApp(t, saved, "Ham")

	drive(app, runes("a"))
	require.IsType(t, &formScreen{}, app.Top())

	typeText(app, "Bread")
	drive(app, enter)

	assert.Same(t, g, app.Top())
	assert.Equal(t, []string{"Ham", "Bread"}, g.Store().Labels())
	assert.Equal(t, []string{"Ham", "Bread"}, labelsOf(saved.rows))
	it, _ := g.selected()
	assert.Equal(t, "Bread", it.row.Label)
}

func TestGrocery_AddRejectsEmpty(t *testing.T) {
	app, g := groceryApp(t, &savedRows{}, "Ham")

	drive(app, runes("a"))
	typeText(app, "   ")
	drive(app, enter)

	form, ok := app.Top().(*formScreen)
	require.True(t, ok)
	assert.Equal(t, errEmptyTitle.Error(), form.err)
	assert.Equal(t, 1, g.Store().Len())

	drive(app, esc)
	assert.Same(t, g, app.Top())
}

func TestGrocery_FormTakesQuitKeys(t *testing.T) {
	app, g := groceryApp(t, &savedRows{}, "Ham")

	drive(app, runes("a"))
	typeText(app, "q")
	drive(app, enter)

	assert.Same(t, g, app.Top())
	assert.Equal(t, []string{"Ham", "q"}, g.Store().Labels())
}

func TestGrocery_Edit(t *testing.T) {
	app, g := groceryApp(t, &savedRows{}, "Ham", "Bread")
	before, _ := g.Store().At(0)

	drive(app, runes("e"))
	typeText(app, " hock")
	drive(app, enter)

	after, _ := g.Store().At(0)
	assert.Equal(t, "Ham hock", after.Label)
	assert.Equal(t, before.ID, after.ID)
}

func TestGrocery_SelectPushesAisle(t *testing.T) {
	app, _ := groceryApp(t, &savedRows{}, "Bannana", "Watermelon")

	drive(app, down)
	drive(app, enter)

	d, ok := app.Top().(*detailScreen)
	require.True(t, ok)
	assert.Equal(t, "Watermelon found on:", d.heading)
	assert.Equal(t, "Aisle 7", d.value)
	assert.Contains(t, app.View(), "Aisle 7")
}

func TestGrocery_SortOrdersLabels(t *testing.T) {
	app, g := groceryApp(t, &savedRows{}, "pear", "Apple", "banana")

	drive(app, runes("s"))

	assert.Equal(t, []string{"Apple", "banana", "pear"}, g.Store().Labels())
	it, _ := g.list.Items()[0].(rowItem)
	assert.Equal(t, "Apple", it.row.Label)
}

func TestGrocery_SaveErrorIsShown(t *testing.T) {
	saved := &savedRows{err: errors.New("disk full")}
	app, g := groceryApp(t, saved, "Ham", "Bread")

	drive(app, runes("d"))

	assert.Equal(t, 1, g.Store().Len())
	assert.Contains(t, g.View(), "save: disk full")
}

func TestGrocery_EmptyListIgnoresRowKeys(t *testing.T) {
	app, g := groceryApp(t, &savedRows{})

	drive(app, runes("d"))
	drive(app, enter)
	drive(app, runes("e"))

	assert.Same(t, g, app.Top())
	assert.Equal(t, 0, g.Store().Len())
}

func TestGrocery_ReopenStartsFromSavedRows(t *testing.T) {
	saved := &savedRows{}
	app, _ := groceryApp(t, saved, "Bannana", "Watermelon", "Pineapple", "Grape")

	drive(app, runes("d"))
	require.Equal(t, []string{"Watermelon", "Pineapple", "Grape"}, labelsOf(saved.rows))

	drive(app, esc)
	require.Equal(t, 1, app.Depth())
	drive(app, enter)
	g, ok := app.Top().(*groceryScreen)
	require.True(t, ok)
	assert.Equal(t, []string{"Watermelon", "Pineapple", "Grape"}, g.Store().Labels())

	drive(app, down)
	drive(app, runes("d"))

	assert.Equal(t, []string{"Watermelon", "Grape"}, labelsOf(saved.rows))
}

func TestGrocery_LoadErrorKeepsMenu(t *testing.T) {
	app, err := NewRoot(Options{
		Fixtures: fixtures(t),
		Grocery: GroceryOptions{
			Load: func() ([]model.Row, error) { return nil, errors.New("corrupt file") },
		},
	})
	require.NoError(t, err)

	drive(app, enter)

	assert.Equal(t, 1, app.Depth())
	assert.Contains(t, app.View(), "load grocery list: corrupt file")
}
