// Package listing supplies ordered row data to a list presentation surface
// and reacts to selection and deletion, independent of how rows are drawn.
package listing

import (
	"fmt"

	"github.com/idilsaglam/shelf/internal/model"
)

// IndexPath addresses one row within one section.
type IndexPath struct {
	Section int
	Row     int
}

func (p IndexPath) String() string {
	return fmt.Sprintf("[%d,%d]", p.Section, p.Row)
}

// Adapter answers the questions a list surface asks about its data.
//
// RowCount returns 0 for a section outside [0, SectionCount). Label, Select
// and Delete return an *IndexError wrapping ErrOutOfRange for any path that
// the two counting methods do not cover.
type Adapter interface {
	SectionCount() int
	RowCount(section int) int
	Label(section, row int) (string, error)
	Select(section, row int) error
	Delete(section, row int) error
}

// RowSource is implemented by adapters that can hand out the full row.
type RowSource interface {
	Row(section, row int) (model.Row, error)
}

// Titled is implemented by adapters with section headers.
type Titled interface {
	Title(section int) string
}

// SelectFunc is called with the selected path and row.
type SelectFunc func(IndexPath, model.Row)

// Validate reports whether p is addressable in a.
func Validate(a Adapter, op string, p IndexPath) error {
	if p.Section < 0 || p.Section >= a.SectionCount() {
		return outOfRange(op, p)
	}
	if p.Row < 0 || p.Row >= a.RowCount(p.Section) {
		return outOfRange(op, p)
	}
	return nil
}

// Entry is one addressable row as seen through an adapter. Row carries the
// full row when a implements RowSource, and just the label otherwise.
type Entry struct {
	Path  IndexPath
	Label string
	Row   model.Row
}

// Rows walks every valid index path of a, section by section.
func Rows(a Adapter) []Entry {
	var out []Entry
	src, hasRows := a.(RowSource)
	for s := 0; s < a.SectionCount(); s++ {
		for r := 0; r < a.RowCount(s); r++ {
			label, err := a.Label(s, r)
			if err != nil {
				continue
			}
			row := model.Row{Label: label}
			if hasRows {
				if got, err := src.Row(s, r); err == nil {
					row = got
				}
			}
			out = append(out, Entry{Path: IndexPath{Section: s, Row: r}, Label: label, Row: row})
		}
	}
	return out
}

// StoreAdapter presents a Store as a single section.
type StoreAdapter struct {
	store    *Store
	header   string
	OnSelect SelectFunc
}

func NewStoreAdapter(store *Store, header string) *StoreAdapter {
	return &StoreAdapter{store: store, header: header}
}

func (a *StoreAdapter) Store() *Store { return a.store }

func (a *StoreAdapter) SectionCount() int { return 1 }

func (a *StoreAdapter) RowCount(section int) int {
	if section != 0 {
		return 0
	}
	return a.store.Len()
}

func (a *StoreAdapter) Title(section int) string {
	if section != 0 {
		return ""
	}
	return a.header
}

func (a *StoreAdapter) Row(section, row int) (model.Row, error) {
	p := IndexPath{Section: section, Row: row}
	if err := Validate(a, "Row", p); err != nil {
		return model.Row{}, err
	}
	r, _ := a.store.At(row)
	return r, nil
}

func (a *StoreAdapter) Label(section, row int) (string, error) {
	p := IndexPath{Section: section, Row: row}
	if err := Validate(a, "Label", p); err != nil {
		return "", err
	}
	r, _ := a.store.At(row)
	return r.Label, nil
}

func (a *StoreAdapter) Select(section, row int) error {
	p := IndexPath{Section: section, Row: row}
	if err := Validate(a, "Select", p); err != nil {
		return err
	}
	if a.OnSelect != nil {
		r, _ := a.store.At(row)
		a.OnSelect(p, r)
	}
	return nil
}

func (a *StoreAdapter) Delete(section, row int) error {
	p := IndexPath{Section: section, Row: row}
	if err := Validate(a, "Delete", p); err != nil {
		return err
	}
	_, err := a.store.Remove(row)
	return err
}
