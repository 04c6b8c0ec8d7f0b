package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the perch CLI and returns an error if any command fails.
//
// The function sets up the root command with the demo subcommands,
// configures logging based on the --verbose flag, and executes the command
// tree. The logger is attached to the context and accessible to all
// commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "perch",
		Short:        "Perch anchors floating elements in terminal UIs",
		Long:         `Perch is a positioning and interaction library for terminal UIs: tooltips, menus, and popovers anchored to other elements, with composable open/close behaviors. The demo commands showcase the stack interactively.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("perch %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDemoCmd())

	return root.ExecuteContext(ctx)
}

// newDemoCmd groups the interactive demos.
func newDemoCmd() *cobra.Command {
	var themePath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive demo",
	}
	cmd.PersistentFlags().StringVar(&themePath, "theme", "", "path to a TOML theme file")

	loadTheme := func(cmd *cobra.Command) (Theme, error) {
		if themePath == "" {
			return DefaultTheme(), nil
		}
		theme, err := LoadTheme(themePath)
		if err != nil {
			return Theme{}, err
		}
		loggerFromContext(cmd.Context()).Debug("loaded theme", "path", themePath)
		return theme, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "tooltip",
		Short: "Tooltip anchored to a button, opened by hover or focus",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := loadTheme(cmd)
			if err != nil {
				return err
			}
			return runTooltipDemo(cmd.Context(), theme)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "menu",
		Short: "Dropdown menu with arrow-key navigation",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := loadTheme(cmd)
			if err != nil {
				return err
			}
			return runMenuDemo(cmd.Context(), theme)
		},
	})

	return cmd
}
