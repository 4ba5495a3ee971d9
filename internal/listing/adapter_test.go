package listing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shelf/internal/model"
)

func settingsSections() []model.Section {
	return []model.Section{
		{Title: "Profile", Rows: model.RowsFromLabels("Johny")},
		{Title: "Features", Rows: model.RowsFromLabels("Audio", "Video Preference")},
		{Title: "Settings", Rows: model.RowsFromLabels("Notifications", "Time Zone", "Privacy", "Other")},
		{Title: "About", Rows: model.RowsFromLabels("Share Profile", "Rate App", "Help", "About")},
	}
}

func adapters() map[string]Adapter {
	grocery := NewStore(model.RowsFromLabels("Bannana", "Watermelon", "Pineapple")...)
	fruits := NewStore(model.RowsFromLabels("Apple", "Banana", "Pear", "Pineapple")...)
	filtered := NewFilteredAdapter(fruits, nil)
	filtered.SetQuery("pe")
	return map[string]Adapter{
		"store":     NewStoreAdapter(grocery, "Grocery List"),
		"sectioned": NewSectionedAdapter(settingsSections()),
		"filtered":  filtered,
	}
}

func TestAdapters_LabelDefinedForEveryValidPath(t *testing.T) {
	for name, a := range adapters() {
		t.Run(name, func(t *testing.T) {
			for s := 0; s < a.SectionCount(); s++ {
				for r := 0; r < a.RowCount(s); r++ {
					label, err := a.Label(s, r)
					assert.NoError(t, err)
					assert.NotEmpty(t, label)
				}
			}
		})
	}
}

func TestAdapters_OutOfRangeIsAnError(t *testing.T) {
	for name, a := range adapters() {
		t.Run(name, func(t *testing.T) {
			n := a.SectionCount()
			assert.Equal(t, 0, a.RowCount(n))
			assert.Equal(t, 0, a.RowCount(-1))

			_, err := a.Label(0, a.RowCount(0))
			assert.ErrorIs(t, err, ErrOutOfRange)

			var ie *IndexError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, "Label", ie.Op)

			assert.ErrorIs(t, a.Select(n, 0), ErrOutOfRange)
			assert.ErrorIs(t, a.Delete(0, -1), ErrOutOfRange)
		})
	}
}

func TestAdapters_DeleteShrinksSectionByOne(t *testing.T) {
	for name, a := range adapters() {
		t.Run(name, func(t *testing.T) {
			section := a.SectionCount() - 1
			before := a.RowCount(section)
			require.GreaterOrEqual(t, before, 2)
			next, err := a.Label(section, 1)
			require.NoError(t, err)

			require.NoError(t, a.Delete(section, 0))

			assert.Equal(t, before-1, a.RowCount(section))
			shifted, err := a.Label(section, 0)
			require.NoError(t, err)
			assert.Equal(t, next, shifted)
		})
	}
}

func TestStoreAdapter_GroceryDelete(t *testing.T) {
	store := NewStore(model.RowsFromLabels("Bannana", "Watermelon", "Pineapple")...)
	a := NewStoreAdapter(store, "Grocery List")

	require.NoError(t, a.Delete(0, 1))

	assert.Equal(t, []string{"Bannana", "Pineapple"}, store.Labels())
	assert.Equal(t, 2, a.RowCount(0))
}

func TestStoreAdapter_DeleteNotifiesOnce(t *testing.T) {
	store := NewStore(model.RowsFromLabels("a", "b")...)
	a := NewStoreAdapter(store, "")
	var removed []int
	store.Observe(func(c Change) {
		if c.Kind == Removed {
			removed = append(removed, c.Index)
		}
	})

	require.NoError(t, a.Delete(0, 1))
	assert.Equal(t, []int{1}, removed)
}

func TestStoreAdapter_SelectCarriesRow(t *testing.T) {
	store := NewStore(model.RowsFromLabels("Ham", "Bread")...)
	a := NewStoreAdapter(store, "")
	var got model.Row
	var at IndexPath
	a.OnSelect = func(p IndexPath, r model.Row) { at, got = p, r }

	require.NoError(t, a.Select(0, 1))

	assert.Equal(t, IndexPath{Section: 0, Row: 1}, at)
	assert.Equal(t, "Bread", got.Label)
}

func TestStoreAdapter_SelectWithoutHook(t *testing.T) {
	a := NewStoreAdapter(NewStore(model.NewRow("x")), "")
	assert.NoError(t, a.Select(0, 0))
}

func TestSectionedAdapter_EmptyReportsZeroRows(t *testing.T) {
	a := NewSectionedAdapter(nil)

	assert.Equal(t, 0, a.SectionCount())
	assert.Equal(t, 0, a.RowCount(0))
	_, err := a.Label(0, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSectionedAdapter_DeleteKeepsSections(t *testing.T) {
	a := NewSectionedAdapter(settingsSections())
	var gone model.Row
	a.OnDelete = func(_ IndexPath, r model.Row) { gone = r }

	require.NoError(t, a.Delete(0, 0))

	assert.Equal(t, 4, a.SectionCount())
	assert.Equal(t, 0, a.RowCount(0))
	assert.Equal(t, "Johny", gone.Label)
	assert.Equal(t, "Profile", a.Title(0))
	assert.Equal(t, "", a.Title(9))
}

func TestSectionedAdapter_DoesNotAliasInput(t *testing.T) {
	in := settingsSections()
	a := NewSectionedAdapter(in)

	require.NoError(t, a.Delete(2, 0))

	assert.Len(t, in[2].Rows, 4)
	assert.Equal(t, "Notifications", in[2].Rows[0].Label)
}

func TestRows_WalksEveryPath(t *testing.T) {
	a := NewSectionedAdapter(settingsSections())

	entries := Rows(a)

	require.Len(t, entries, 11)
	assert.Equal(t, IndexPath{Section: 1, Row: 1}, entries[2].Path)
	assert.Equal(t, "Video Preference", entries[2].Label)
	assert.Equal(t, "Video Preference", entries[2].Row.Label)
	assert.NotEmpty(t, entries[2].Row.ID)
}

func TestIndexError_Message(t *testing.T) {
	err := outOfRange("Delete", IndexPath{Section: 2, Row: 7})
	assert.Equal(t, "Delete [2,7]: index out of range", err.Error())
}
