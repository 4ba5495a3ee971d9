package listing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/idilsaglam/shelf/internal/model"
)

// ChangeKind says what happened to the store.
type ChangeKind int

const (
	Inserted ChangeKind = iota
	Removed
	Updated
	Reset
)

func (k ChangeKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	case Updated:
		return "updated"
	default:
		return "reset"
	}
}

// Change describes one mutation. Index is -1 for Reset.
type Change struct {
	Kind  ChangeKind
	Index int
	Row   model.Row
}

// Store is an ordered, mutable list of rows owned by one screen.
// Observers are called synchronously inside the mutating call, so a
// presentation surface that listens can never drift from the data.
type Store struct {
	rows      []model.Row
	observers []func(Change)
}

func NewStore(rows ...model.Row) *Store {
	s := &Store{rows: make([]model.Row, 0, len(rows))}
	for _, r := range rows {
		s.rows = append(s.rows, r.WithID())
	}
	return s
}

// Observe registers fn to be told about every mutation.
func (s *Store) Observe(fn func(Change)) {
	s.observers = append(s.observers, fn)
}

func (s *Store) notify(c Change) {
	for _, fn := range s.observers {
		fn(c)
	}
}

func (s *Store) Len() int { return len(s.rows) }

// At returns the row at i, or false when i is out of range.
func (s *Store) At(i int) (model.Row, bool) {
	if i < 0 || i >= len(s.rows) {
		return model.Row{}, false
	}
	return s.rows[i], true
}

// IndexOf returns the position of the row with the given ID, or -1.
func (s *Store) IndexOf(id string) int {
	for i, r := range s.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Rows returns a copy of the rows.
func (s *Store) Rows() []model.Row {
	out := make([]model.Row, len(s.rows))
	copy(out, s.rows)
	return out
}

func (s *Store) Labels() []string {
	out := make([]string, len(s.rows))
	for i, r := range s.rows {
		out[i] = r.Label
	}
	return out
}

func (s *Store) Append(r model.Row) {
	r = r.WithID()
	s.rows = append(s.rows, r)
	s.notify(Change{Kind: Inserted, Index: len(s.rows) - 1, Row: r})
}

// Insert places r at i; i may equal Len to append.
func (s *Store) Insert(i int, r model.Row) error {
	if i < 0 || i > len(s.rows) {
		return fmt.Errorf("insert at %d (len %d): %w", i, len(s.rows), ErrOutOfRange)
	}
	r = r.WithID()
	s.rows = append(s.rows, model.Row{})
	copy(s.rows[i+1:], s.rows[i:])
	s.rows[i] = r
	s.notify(Change{Kind: Inserted, Index: i, Row: r})
	return nil
}

// Remove deletes the row at i and returns it. The following rows shift up
// by one.
func (s *Store) Remove(i int) (model.Row, error) {
	if i < 0 || i >= len(s.rows) {
		return model.Row{}, fmt.Errorf("remove at %d (len %d): %w", i, len(s.rows), ErrOutOfRange)
	}
	r := s.rows[i]
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	s.notify(Change{Kind: Removed, Index: i, Row: r})
	return r, nil
}

func (s *Store) Set(i int, r model.Row) error {
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("set at %d (len %d): %w", i, len(s.rows), ErrOutOfRange)
	}
	if r.ID == "" {
		r.ID = s.rows[i].ID
	}
	s.rows[i] = r
	s.notify(Change{Kind: Updated, Index: i, Row: r})
	return nil
}

// Sort orders rows by label, case-insensitively. Equal labels keep their
// insertion order.
func (s *Store) Sort() {
	sort.SliceStable(s.rows, func(a, b int) bool {
		return strings.ToLower(s.rows[a].Label) < strings.ToLower(s.rows[b].Label)
	})
	s.notify(Change{Kind: Reset, Index: -1})
}
