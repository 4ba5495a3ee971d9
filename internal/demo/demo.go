// Package demo holds the data behind each demo screen.
package demo

import (
	_ "embed"
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/shelf/internal/model"
)

//go:embed data/screens.yaml
var screensYAML []byte

// Screen names, as accepted on the command line.
const (
	Grocery  = "grocery"
	Settings = "settings"
	Catalog  = "catalog"
	Search   = "search"
	Picker   = "picker"
	Topics   = "topics"
	Loading  = "loading"
)

// Names lists every screen in menu order.
func Names() []string {
	return []string{Grocery, Settings, Catalog, Search, Picker, Topics, Loading}
}

// Describe returns the one-line menu description for a screen.
func Describe(name string) string {
	switch name {
	case Grocery:
		return "editable list with add, delete and detail"
	case Settings:
		return "static sections with icons"
	case Catalog:
		return "one section per product"
	case Search:
		return "list filtered on every keystroke"
	case Picker:
		return "pick a state"
	case Topics:
		return "titled sections, one per topic"
	case Loading:
		return "one-shot timer behind a spinner"
	default:
		return ""
	}
}

type flatScreen struct {
	Title string      `yaml:"title"`
	Rows  []model.Row `yaml:"rows"`
}

type sectionedScreen struct {
	Title    string          `yaml:"title"`
	Sections []model.Section `yaml:"sections"`
}

type catalogSection struct {
	Title   string      `yaml:"title"`
	Product string      `yaml:"product"`
	Rows    []model.Row `yaml:"rows"`
}

type catalogScreen struct {
	Title       string           `yaml:"title"`
	NewestFirst bool             `yaml:"newest_first"`
	Sections    []catalogSection `yaml:"sections"`
}

// Fixtures is the decoded screen data.
type Fixtures struct {
	Grocery  flatScreen      `yaml:"grocery"`
	Settings sectionedScreen `yaml:"settings"`
	Catalog  catalogScreen   `yaml:"catalog"`
	Search   flatScreen      `yaml:"search"`
	Picker   flatScreen      `yaml:"picker"`
	Topics   sectionedScreen `yaml:"topics"`
}

// Load decodes the embedded fixtures.
func Load() (*Fixtures, error) {
	return Parse(screensYAML)
}

// Parse decodes fixtures from YAML.
func Parse(b []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return &f, nil
}

// Title returns a screen's header.
func (f *Fixtures) Title(name string) string {
	switch name {
	case Grocery:
		return f.Grocery.Title
	case Settings:
		return f.Settings.Title
	case Catalog:
		return f.Catalog.Title
	case Search:
		return f.Search.Title
	case Picker:
		return f.Picker.Title
	case Topics:
		return f.Topics.Title
	case Loading:
		return "Loading"
	}
	return ""
}

// GroceryRows returns fresh rows for the seed grocery list.
func (f *Fixtures) GroceryRows() []model.Row { return fresh(f.Grocery.Rows) }

func (f *Fixtures) SearchRows() []model.Row { return fresh(f.Search.Rows) }

func (f *Fixtures) PickerRows() []model.Row { return fresh(f.Picker.Rows) }

func (f *Fixtures) SettingsSections() []model.Section { return freshSections(f.Settings.Sections) }

func (f *Fixtures) TopicsSections() []model.Section { return freshSections(f.Topics.Sections) }

func freshSections(in []model.Section) []model.Section {
	out := make([]model.Section, 0, len(in))
	for _, s := range in {
		out = append(out, model.Section{Title: s.Title, Rows: fresh(s.Rows)})
	}
	return out
}

// CatalogSections returns one section per product. Models are listed
// newest first when the fixture asks for it.
func (f *Fixtures) CatalogSections() []model.Section {
	out := make([]model.Section, 0, len(f.Catalog.Sections))
	for _, s := range f.Catalog.Sections {
		rows := fresh(s.Rows)
		for i := range rows {
			if rows[i].Detail == "" {
				rows[i].Detail = s.Product
			}
		}
		if f.Catalog.NewestFirst {
			slices.Reverse(rows)
		}
		out = append(out, model.Section{Title: s.Title, Rows: rows})
	}
	return out
}

// Sections returns any static screen as sections. Flat screens come back
// as a single section titled after the screen.
func (f *Fixtures) Sections(name string) ([]model.Section, error) {
	switch strings.ToLower(name) {
	case Grocery:
		return []model.Section{{Title: f.Grocery.Title, Rows: f.GroceryRows()}}, nil
	case Settings:
		return f.SettingsSections(), nil
	case Catalog:
		return f.CatalogSections(), nil
	case Search:
		return []model.Section{{Title: f.Search.Title, Rows: f.SearchRows()}}, nil
	case Picker:
		return []model.Section{{Title: f.Picker.Title, Rows: f.PickerRows()}}, nil
	case Topics:
		return f.TopicsSections(), nil
	}
	static := slices.DeleteFunc(Names(), func(n string) bool { return n == Loading })
	return nil, fmt.Errorf("unknown screen %q (have %s)", name, strings.Join(static, ", "))
}

// Aisle picks the aisle a grocery item is "found on", in [1, 40].
func Aisle() int {
	return rand.Intn(40) + 1
}

func fresh(rows []model.Row) []model.Row {
	out := make([]model.Row, len(rows))
	for i, r := range rows {
		r.ID = ""
		out[i] = r.WithID()
	}
	return out
}
