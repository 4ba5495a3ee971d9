package ui

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shelf/internal/listing"
	"github.com/idilsaglam/shelf/internal/model"
)

func monoTheme(t *testing.T) {
	t.Helper()
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })
}

func TestLines_Flat(t *testing.T) {
	monoTheme(t)
	a := listing.NewStoreAdapter(listing.NewStore(model.RowsFromLabels("Ham", "Bread")...), "Grocery List")

	assert.Equal(t, []string{" 1. - Ham", " 2. - Bread"}, Lines(a, false))
}

func TestLines_GroupedWithDetail(t *testing.T) {
	monoTheme(t)
	a := listing.NewSectionedAdapter([]model.Section{
		{Title: "Profile", Rows: []model.Row{{Label: "Johny", Detail: "@johnyjocose"}}},
		{Title: "Empty"},
	})

	assert.Equal(t, []string{
		"Profile",
		" 1. - Johny  @johnyjocose",
		"",
		"Empty",
		"(none)",
	}, Lines(a, true))
}

func TestLines_NoSections(t *testing.T) {
	monoTheme(t)
	assert.Equal(t, []string{"no items"}, Lines(listing.NewSectionedAdapter(nil), true))
}

func TestLines_TruncatesLongLabels(t *testing.T) {
	monoTheme(t)
	a := listing.NewStoreAdapter(listing.NewStore(model.NewRow(strings.Repeat("x", 100))), "")

	line := Lines(a, false)[0]
	assert.True(t, strings.HasSuffix(line, "..."))
	assert.Equal(t, " 1. - "+strings.Repeat("x", 77)+"...", line)

	wide := listing.NewStoreAdapter(listing.NewStore(model.NewRow(strings.Repeat("é", 100))), "")
	line = Lines(wide, false)[0]
	assert.True(t, utf8.ValidString(line))
	assert.Equal(t, " 1. - "+strings.Repeat("é", 77)+"...", line)

	short := listing.NewStoreAdapter(listing.NewStore(model.NewRow(strings.Repeat("é", 80))), "")
	assert.Equal(t, " 1. - "+strings.Repeat("é", 80), Lines(short, false)[0])
}

func TestPanel_Frames(t *testing.T) {
	monoTheme(t)
	var buf bytes.Buffer

	Panel(&buf, []string{"ab", "abcd"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "+------+", lines[0])
	assert.Equal(t, "| ab   |", lines[1])
	assert.Equal(t, "| abcd |", lines[2])
}

func TestFail_WritesToStderr(t *testing.T) {
	monoTheme(t)
	var out, errOut bytes.Buffer
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	t.Cleanup(func() { Stdout, Stderr = oldOut, oldErr })

	OK("saved")
	Fail("nope")

	assert.Equal(t, "✔ saved\n", out.String())
	assert.Equal(t, "✖ nope\n", errOut.String())
}

func TestPanel_IgnoresEscapesWhenPadding(t *testing.T) {
	monoTheme(t)
	var buf bytes.Buffer

	Panel(&buf, []string{"\x1b[31mab\x1b[0m", "abcd", "日本"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "+------+", lines[0])
	assert.Equal(t, "| \x1b[31mab\x1b[0m   |", lines[1])
	assert.Equal(t, "| 日本 |", lines[3])
}
