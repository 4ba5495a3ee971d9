package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shelf/internal/demo"
	"github.com/idilsaglam/shelf/internal/listing"
	"github.com/idilsaglam/shelf/internal/logger"
	"github.com/idilsaglam/shelf/internal/model"
	"github.com/idilsaglam/shelf/internal/store/jsonstore"
	"github.com/idilsaglam/shelf/internal/tui"
	"github.com/idilsaglam/shelf/internal/ui"
)

const defaultDataFile = jsonstore.DefaultFileName

func (app *App) dataFile() jsonstore.File {
	return jsonstore.File{Path: app.cfg.DataFile}
}

// groceries loads the saved list, seeding it with the demo rows the first
// time.
func (app *App) groceries() ([]model.Row, error) {
	return app.dataFile().LoadOr(app.fixtures.GroceryRows())
}

func (app *App) addBrowseCommand(rootCmd *cobra.Command) {
	browseCmd := &cobra.Command{
		Use:   "browse [screen]",
		Short: "Open the interactive browser",
		Long: `Open the full-screen browser at the screen menu, or directly at a named
screen. Run "shelf screens" for the names.`,
		Args: maxArgs(1, "shelf browse [screen]"),
		RunE: func(_ *cobra.Command, args []string) error {
			start := app.cfg.StartScreen
			if len(args) == 1 {
				start = strings.ToLower(args[0])
			}
			if start != "" && !isScreen(start) {
				return usage(fmt.Sprintf("unknown screen %q", start))
			}
			if _, err := app.groceries(); err != nil {
				return failed("load: " + err.Error())
			}
			err := app.browse(tui.Options{
				Fixtures: app.fixtures,
				Grocery: tui.GroceryOptions{
					Load:  app.groceries,
					Save:  app.dataFile().Save,
					Aisle: demo.Aisle,
				},
				Start:        start,
				LoadingDelay: app.cfg.LoadingDelay,
				Theme:        app.cfg.Theme,
			})
			if err != nil {
				return failed("browse: " + err.Error())
			}
			return nil
		},
	}
	rootCmd.AddCommand(browseCmd)
}

func isScreen(name string) bool { return slices.Contains(demo.Names(), name) }

// adapterFor returns a read-only view of the named screen's rows.
func (app *App) adapterFor(name string) (listing.Adapter, string, error) {
	if name == demo.Grocery {
		rows, err := app.groceries()
		if err != nil {
			return nil, "", fmt.Errorf("load: %w", err)
		}
		title := app.fixtures.Title(demo.Grocery)
		return listing.NewStoreAdapter(listing.NewStore(rows...), title), title, nil
	}
	sections, err := app.fixtures.Sections(name)
	if err != nil {
		return nil, "", err
	}
	return listing.NewSectionedAdapter(sections), app.fixtures.Title(name), nil
}

func total(a listing.Adapter) int {
	n := 0
	for s := 0; s < a.SectionCount(); s++ {
		n += a.RowCount(s)
	}
	return n
}

func (app *App) addListCommands(rootCmd *cobra.Command) {
	var group bool
	lsCmd := &cobra.Command{
		Use:   "ls [screen]",
		Short: "Print a screen's rows",
		Long: `Print the rows of a screen (the grocery list by default) in a panel.
Indexes shown for the grocery list are the ones "shelf rm" takes.`,
		Args: maxArgs(1, "shelf ls [screen] [--group]"),
		RunE: func(_ *cobra.Command, args []string) error {
			name := demo.Grocery
			if len(args) == 1 {
				name = strings.ToLower(args[0])
			}
			if name == demo.Loading {
				return usage("ls: the loading screen has no rows")
			}
			a, title, err := app.adapterFor(name)
			if err != nil {
				if isScreen(name) {
					return failed(err.Error())
				}
				return usage(err.Error())
			}
			lines := []string{ui.Header(title, total(a)), ""}
			lines = append(lines, ui.Lines(a, group)...)
			lines = append(lines, "", ui.C(ui.Current().Muted, "Tip: add with `shelf add \"Buy milk\"`"))
			ui.Panel(ui.Stdout, lines)
			return nil
		},
	}
	lsCmd.Flags().BoolVar(&group, "group", false, "show section headers")

	var substring bool
	var from string
	filterCmd := &cobra.Command{
		Use:   "filter <query>",
		Short: "Print the rows matching a query",
		Long: `Print the fruit list (or the grocery list with --from grocery) filtered by
query. By default letters must appear in order; --substring requires them
to be adjacent.`,
		Args: exactArgs(1, "shelf filter <query> [--substring] [--from search|grocery]"),
		RunE: func(_ *cobra.Command, args []string) error {
			var rows []model.Row
			switch strings.ToLower(from) {
			case demo.Search:
				rows = app.fixtures.SearchRows()
			case demo.Grocery:
				var err error
				if rows, err = app.groceries(); err != nil {
					return failed("load: " + err.Error())
				}
			default:
				return usage(fmt.Sprintf("filter: --from must be %s or %s, got %q", demo.Search, demo.Grocery, from))
			}
			var match listing.Matcher = listing.Subsequence
			if substring {
				match = listing.Substring
			}
			a := listing.NewFilteredAdapter(listing.NewStore(rows...), match)
			a.SetQuery(args[0])
			logger.Debug("filter", "query", args[0], "from", from, "matches", a.RowCount(0))

			lines := []string{ui.Header(fmt.Sprintf("Filter %q", args[0]), total(a)), ""}
			lines = append(lines, ui.Lines(a, false)...)
			ui.Panel(ui.Stdout, lines)
			return nil
		},
	}
	filterCmd.Flags().BoolVar(&substring, "substring", false, "match contiguous text only")
	filterCmd.Flags().StringVar(&from, "from", demo.Search, "rows to filter: search or grocery")

	screensCmd := &cobra.Command{
		Use:   "screens",
		Short: "List the screen names",
		Args:  exactArgs(0, "shelf screens"),
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, name := range demo.Names() {
				fmt.Fprintf(ui.Stdout, "%-9s %s\n", name, ui.C(ui.Current().Muted, demo.Describe(name)))
			}
			return nil
		},
	}

	rootCmd.AddCommand(lsCmd, filterCmd, screensCmd)
}

func (app *App) addEditCommands(rootCmd *cobra.Command) {
	addCmd := &cobra.Command{
		Use:   "add <label...>",
		Short: "Append a row to the grocery list",
		Long:  `Append a row to the grocery list. Several words are joined with spaces.`,
		Args:  minArgs(1, "shelf add <label...>"),
		RunE: func(_ *cobra.Command, args []string) error {
			label := strings.TrimSpace(strings.Join(args, " "))
			if label == "" {
				return usage("add: empty label")
			}
			rows, err := app.groceries()
			if err != nil {
				return failed("load: " + err.Error())
			}
			store := listing.NewStore(rows...)
			store.Append(model.NewRow(label))
			if err := app.dataFile().Save(store.Rows()); err != nil {
				return failed("save: " + err.Error())
			}
			ui.OK("added " + label)
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove a row from the grocery list",
		Long:  `Remove the grocery row at a 1-based index, as printed by "shelf ls".`,
		Args:  exactArgs(1, "shelf rm <index>"),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return usage("rm: not a number: " + args[0])
			}
			rows, err := app.groceries()
			if err != nil {
				return failed("load: " + err.Error())
			}
			store := listing.NewStore(rows...)
			a := listing.NewStoreAdapter(store, "")
			label, err := a.Label(0, n-1)
			if err == nil {
				err = a.Delete(0, n-1)
			}
			if errors.Is(err, listing.ErrOutOfRange) {
				ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", store.Len(), n))
				ui.Hint("run `shelf ls` to see valid indexes")
				return &ExitError{Code: 2}
			}
			if err != nil {
				return failed("rm: " + err.Error())
			}
			if err := app.dataFile().Save(store.Rows()); err != nil {
				return failed("save: " + err.Error())
			}
			ui.OK("removed " + label)
			return nil
		},
	}

	rootCmd.AddCommand(addCmd, rmCmd)
}
