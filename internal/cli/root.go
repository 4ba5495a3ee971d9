// Package cli wires the shelf subcommands onto a cobra root and maps their
// failures to exit codes (0 ok, 1 error, 2 usage).
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idilsaglam/shelf/internal/config"
	"github.com/idilsaglam/shelf/internal/demo"
	"github.com/idilsaglam/shelf/internal/logger"
	"github.com/idilsaglam/shelf/internal/tui"
	"github.com/idilsaglam/shelf/internal/ui"
)

// ExitError is a failure that has already been reported to the user.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

func usage(msg string) error {
	ui.Fail(msg)
	return &ExitError{Code: 2}
}

func failed(msg string) error {
	ui.Fail(msg)
	return &ExitError{Code: 1}
}

// App holds what every subcommand shares once the root has run.
type App struct {
	v          *viper.Viper
	configFile string
	envFile    string

	cfg      *config.Config
	fixtures *demo.Fixtures

	// browse runs the interactive program; tests replace it.
	browse func(tui.Options) error
}

// NewApp returns an App reading configuration into a fresh viper.
func NewApp() *App {
	return &App{v: viper.New(), browse: tui.Run}
}

// CreateRootCommand builds the command tree.
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shelf",
		Short: "Sectioned lists in the terminal",
		Long: `shelf browses and edits small sectioned lists: a persisted grocery list,
a settings page, a product catalog, a searchable fruit list, a state
picker and a loading demo.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return &ExitError{Code: 2}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configFile, "config", "", "config file (default ./shelf.yaml or $HOME/.shelf/shelf.yaml)")
	flags.StringVar(&app.envFile, "env-file", "", "dotenv file (default ./.env)")
	flags.String("data-file", "", "grocery data file (default ./"+defaultDataFile+")")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("log-file", "", "write logs to this file")
	flags.String("theme", "", "classic, neon or mono")
	for key, name := range map[string]string{
		config.KeyDataFile: "data-file",
		config.KeyLogLevel: "log-level",
		config.KeyLogFile:  "log-file",
		config.KeyTheme:    "theme",
	} {
		_ = app.v.BindPFlag(key, flags.Lookup(name))
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usage(err.Error())
	})

	app.addBrowseCommand(rootCmd)
	app.addListCommands(rootCmd)
	app.addEditCommands(rootCmd)
	app.addVersionCommand(rootCmd)
	return rootCmd
}

func (app *App) setup() error {
	cfg, err := config.Load(app.v, config.Options{ConfigFile: app.configFile, EnvFile: app.envFile})
	if err != nil {
		return failed("config: " + err.Error())
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return failed("log file: " + err.Error())
	}
	ui.SetTheme(cfg.Theme)
	f, err := demo.Load()
	if err != nil {
		return failed("fixtures: " + err.Error())
	}
	app.cfg, app.fixtures = cfg, f
	if cfg.Source != "" {
		logger.Debug("config loaded", "file", cfg.Source)
	}
	return nil
}

// Execute runs the command line and returns the process exit code.
func (app *App) Execute(args []string) int {
	rootCmd := app.CreateRootCommand()
	rootCmd.SetOut(ui.Stdout)
	rootCmd.SetErr(ui.Stderr)
	rootCmd.SetArgs(args)
	return exitCode(rootCmd.Execute())
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	ui.Fail(err.Error())
	if strings.HasPrefix(err.Error(), "unknown command") {
		ui.Hint("run `shelf --help` to see the subcommands")
		return 2
	}
	return 1
}

// exactArgs is cobra.ExactArgs with the usage line printed the same way as
// every other usage error.
func exactArgs(n int, line string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return usage("usage: " + line)
		}
		return nil
	}
}

func minArgs(n int, line string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return usage("usage: " + line)
		}
		return nil
	}
}

func maxArgs(n int, line string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return usage("usage: " + line)
		}
		return nil
	}
}
