package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shelf/internal/ui"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=v1.2.3".
var Version = "dev"

func version() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

func (app *App) addVersionCommand(rootCmd *cobra.Command) {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  exactArgs(0, "shelf version"),
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(ui.Stdout, "shelf %s\n", version())
		},
	}
	rootCmd.AddCommand(versionCmd)
}
