package listing

import "github.com/idilsaglam/shelf/internal/model"

// SectionedAdapter serves a fixed set of sections. Rows can be deleted from
// a section but sections are never added or removed.
type SectionedAdapter struct {
	sections []model.Section
	OnSelect SelectFunc
	// OnDelete, if set, is told about each removed row.
	OnDelete func(IndexPath, model.Row)
}

func NewSectionedAdapter(sections []model.Section) *SectionedAdapter {
	cp := make([]model.Section, len(sections))
	for i, s := range sections {
		rows := make([]model.Row, len(s.Rows))
		for j, r := range s.Rows {
			rows[j] = r.WithID()
		}
		cp[i] = model.Section{Title: s.Title, Rows: rows}
	}
	return &SectionedAdapter{sections: cp}
}

func (a *SectionedAdapter) SectionCount() int { return len(a.sections) }

func (a *SectionedAdapter) RowCount(section int) int {
	if section < 0 || section >= len(a.sections) {
		return 0
	}
	return len(a.sections[section].Rows)
}

func (a *SectionedAdapter) Title(section int) string {
	if section < 0 || section >= len(a.sections) {
		return ""
	}
	return a.sections[section].Title
}

func (a *SectionedAdapter) at(op string, section, row int) (model.Row, error) {
	if err := Validate(a, op, IndexPath{Section: section, Row: row}); err != nil {
		return model.Row{}, err
	}
	return a.sections[section].Rows[row], nil
}

func (a *SectionedAdapter) Row(section, row int) (model.Row, error) {
	return a.at("Row", section, row)
}

func (a *SectionedAdapter) Label(section, row int) (string, error) {
	r, err := a.at("Label", section, row)
	if err != nil {
		return "", err
	}
	return r.Label, nil
}

func (a *SectionedAdapter) Select(section, row int) error {
	p := IndexPath{Section: section, Row: row}
	if err := Validate(a, "Select", p); err != nil {
		return err
	}
	if a.OnSelect != nil {
		a.OnSelect(p, a.sections[section].Rows[row])
	}
	return nil
}

func (a *SectionedAdapter) Delete(section, row int) error {
	p := IndexPath{Section: section, Row: row}
	if err := Validate(a, "Delete", p); err != nil {
		return err
	}
	rows := a.sections[section].Rows
	removed := rows[row]
	a.sections[section].Rows = append(rows[:row], rows[row+1:]...)
	if a.OnDelete != nil {
		a.OnDelete(p, removed)
	}
	return nil
}

// Sections returns a copy of the current sections.
func (a *SectionedAdapter) Sections() []model.Section {
	out := make([]model.Section, len(a.sections))
	for i, s := range a.sections {
		rows := make([]model.Row, len(s.Rows))
		copy(rows, s.Rows)
		out[i] = model.Section{Title: s.Title, Rows: rows}
	}
	return out
}
