package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/shelf/internal/listing"
)

const maxLabel = 80

// Header is the title line with a row count.
func Header(title string, rows int) string {
	t := Current()
	return fmt.Sprintf("%s  %s %d", C(t.Title, title), C(t.Accent, "Total"), rows)
}

// Lines renders every row of a as numbered lines. With group set, each
// section gets its header and numbering restarts per section; otherwise
// numbering runs across sections, which is what `rm <index>` expects for
// single-section screens.
func Lines(a listing.Adapter, group bool) []string {
	t := Current()
	entries := listing.Rows(a)
	if !group {
		if len(entries) == 0 {
			return []string{C(t.Muted, "no items")}
		}
		out := make([]string, 0, len(entries))
		for i, e := range entries {
			out = append(out, rowLine(i+1, e.Label, e.Row.Detail))
		}
		return out
	}
	if a.SectionCount() == 0 {
		return []string{C(t.Muted, "no items")}
	}
	var out []string
	next := 0
	for s := 0; s < a.SectionCount(); s++ {
		if s > 0 {
			out = append(out, "")
		}
		out = append(out, C(t.Accent, sectionTitle(a, s)))
		n := 0
		for ; next < len(entries) && entries[next].Path.Section == s; next++ {
			n++
			out = append(out, rowLine(n, entries[next].Label, entries[next].Row.Detail))
		}
		if n == 0 {
			out = append(out, C(t.Muted, "(none)"))
		}
	}
	return out
}

func rowLine(n int, label, extra string) string {
	t := Current()
	label = ansi.Truncate(label, maxLabel, "...")
	line := fmt.Sprintf("%s %s %s", C(dim, fmt.Sprintf("%2d.", n)), C(t.Muted, t.Bullet), label)
	if extra != "" {
		line += "  " + C(t.Muted, extra)
	}
	return line
}

func sectionTitle(a listing.Adapter, s int) string {
	if tt, ok := a.(listing.Titled); ok {
		if title := tt.Title(s); title != "" {
			return title
		}
	}
	return fmt.Sprintf("Section %d", s+1)
}
