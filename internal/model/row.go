package model

import "github.com/google/uuid"

// Row is one unit of displayed list data.
// Icon and Detail are optional; most screens only set Label.
type Row struct {
	ID     string `json:"id" yaml:"-"`
	Label  string `json:"label" yaml:"label"`
	Icon   string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// NewRow returns a Row with a fresh ID.
func NewRow(label string) Row {
	return Row{ID: uuid.NewString(), Label: label}
}

// WithID fills in a missing ID and returns the row.
func (r Row) WithID() Row {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return r
}

// Section is a named group of rows.
type Section struct {
	Title string `json:"title" yaml:"title"`
	Rows  []Row  `json:"rows" yaml:"rows"`
}

// Labels returns the row labels in order.
func (s Section) Labels() []string {
	out := make([]string, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.Label
	}
	return out
}

// RowsFromLabels builds rows with fresh IDs for each label.
func RowsFromLabels(labels ...string) []Row {
	out := make([]Row, 0, len(labels))
	for _, l := range labels {
		out = append(out, NewRow(l))
	}
	return out
}
