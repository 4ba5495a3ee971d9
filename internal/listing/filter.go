package listing

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/idilsaglam/shelf/internal/model"
)

// Matcher picks which labels survive a query. Implementations return the
// indexes of matching labels in ascending order.
type Matcher func(query string, labels []string) []int

// Subsequence keeps labels containing the query's runes in order, ignoring
// case. "pe" matches "Pear" and "Apple" but not "Banana".
func Subsequence(query string, labels []string) []int {
	matches := fuzzy.Find(query, labels)
	idx := make([]int, 0, len(matches))
	for _, m := range matches {
		idx = append(idx, m.Index)
	}
	sort.Ints(idx)
	return idx
}

// Substring keeps labels containing the query as a contiguous,
// case-insensitive substring.
func Substring(query string, labels []string) []int {
	q := strings.ToLower(query)
	var idx []int
	for i, l := range labels {
		if strings.Contains(strings.ToLower(l), q) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Filter returns the items matching query in their original order, using
// Subsequence. An empty query returns a copy of items.
func Filter(items []string, query string) []string {
	return FilterWith(Subsequence, items, query)
}

func FilterWith(match Matcher, items []string, query string) []string {
	if query == "" {
		out := make([]string, len(items))
		copy(out, items)
		return out
	}
	idx := match(query, items)
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}

// FilteredAdapter shows the subset of a Store matching the current query.
// Row indexes address the visible subset; the subset is recomputed in full
// whenever the query or the store changes.
type FilteredAdapter struct {
	store    *Store
	match    Matcher
	query    string
	visible  []int // store indexes, ascending
	OnSelect SelectFunc
}

func NewFilteredAdapter(store *Store, match Matcher) *FilteredAdapter {
	if match == nil {
		match = Subsequence
	}
	a := &FilteredAdapter{store: store, match: match}
	store.Observe(func(Change) { a.refresh() })
	a.refresh()
	return a
}

func (a *FilteredAdapter) Store() *Store { return a.store }

func (a *FilteredAdapter) Query() string { return a.query }

// SetQuery replaces the query and recomputes the visible rows.
func (a *FilteredAdapter) SetQuery(q string) {
	a.query = q
	a.refresh()
}

func (a *FilteredAdapter) refresh() {
	if a.query == "" {
		a.visible = a.visible[:0]
		for i := 0; i < a.store.Len(); i++ {
			a.visible = append(a.visible, i)
		}
		return
	}
	a.visible = a.match(a.query, a.store.Labels())
}

// Labels returns the visible labels in order.
func (a *FilteredAdapter) Labels() []string {
	out := make([]string, 0, len(a.visible))
	for _, i := range a.visible {
		r, _ := a.store.At(i)
		out = append(out, r.Label)
	}
	return out
}

// SectionCount is 0 when nothing matches.
func (a *FilteredAdapter) SectionCount() int {
	if len(a.visible) == 0 {
		return 0
	}
	return 1
}

func (a *FilteredAdapter) RowCount(section int) int {
	if section != 0 {
		return 0
	}
	return len(a.visible)
}

func (a *FilteredAdapter) at(op string, section, row int) (int, model.Row, error) {
	if err := Validate(a, op, IndexPath{Section: section, Row: row}); err != nil {
		return -1, model.Row{}, err
	}
	i := a.visible[row]
	r, _ := a.store.At(i)
	return i, r, nil
}

func (a *FilteredAdapter) Row(section, row int) (model.Row, error) {
	_, r, err := a.at("Row", section, row)
	return r, err
}

func (a *FilteredAdapter) Label(section, row int) (string, error) {
	_, r, err := a.at("Label", section, row)
	if err != nil {
		return "", err
	}
	return r.Label, nil
}

func (a *FilteredAdapter) Select(section, row int) error {
	_, r, err := a.at("Select", section, row)
	if err != nil {
		return err
	}
	if a.OnSelect != nil {
		a.OnSelect(IndexPath{Section: section, Row: row}, r)
	}
	return nil
}

// Delete removes the row from the underlying store.
func (a *FilteredAdapter) Delete(section, row int) error {
	i, _, err := a.at("Delete", section, row)
	if err != nil {
		return err
	}
	_, err = a.store.Remove(i)
	return err
}
