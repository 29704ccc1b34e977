// ABOUTME: Root command wiring configuration, logging, and the snippet source.
// ABOUTME: Running dash2html with no subcommand exports the HTML report.

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harper/dash2html/internal/config"
	"github.com/harper/dash2html/internal/source"
	"github.com/harper/dash2html/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfg           *config.Config
	logger        *log.Logger
	snippetSource source.Browser
	closeSource   func() error
)

var rootCmd = &cobra.Command{
	Use:   "dash2html",
	Short: "Export Dash snippets to HTML",
	Long: `Export the public snippets from a Dash snippet library to a single static HTML page.

Only snippets tagged "public" are exported. Variables (__name__) and
placeholders (@clipboard, @cursor, @date, @time) are highlighted.

Configuration is read from $XDG_CONFIG_HOME/dash2html/config.yaml and
DASH2HTML_* environment variables; flags take precedence.

Examples:
  dash2html > snippets.html
  dash2html --db ~/Dropbox/Dash/library.dash -o site/snippets.html
  dash2html list --all
  dash2html show 42`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runExport,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Root().PersistentFlags()
		configFile, _ := flags.GetString("config")

		v := config.NewViper()
		for _, name := range []string{"db", "fixture", "output", "verbose"} {
			if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}

		var err error
		cfg, err = config.Load(v, configFile)
		if err != nil {
			return err
		}

		logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Prefix: "dash2html",
			Level:  log.WarnLevel,
		})
		if cfg.Verbose {
			logger.SetLevel(log.DebugLevel)
		}

		if !readsSnippets(cmd) {
			return nil
		}

		if cfg.Fixture != "" {
			logger.Debug("using fixture", "path", cfg.Fixture)
			fixture, err := source.LoadFixture(cfg.Fixture)
			if err != nil {
				return fmt.Errorf("failed to load fixture: %w", err)
			}
			snippetSource = fixture
			closeSource = func() error { return nil }
			return nil
		}

		logger.Debug("opening library", "path", cfg.DB)
		lib, err := source.OpenSQLite(cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to open library: %w", err)
		}
		snippetSource = lib
		closeSource = lib.Close
		return nil
	},
}

// readsSnippets reports whether cmd needs the snippet source. Cobra's help
// and shell completion commands never do.
func readsSnippets(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// Execute runs the root command and closes the snippet source, including
// when the command failed. Errors are reported on the command's stderr.
func Execute() error {
	err := rootCmd.Execute()
	if closeSource != nil {
		if cerr := closeSource(); cerr != nil && err == nil {
			err = fmt.Errorf("close source: %w", cerr)
		}
		closeSource = nil
	}
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "path to the Dash snippet library")
	rootCmd.PersistentFlags().String("fixture", "", "read snippets from a YAML fixture instead of the library")
	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/dash2html/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().StringP("output", "o", "-", "report path, - for stdout")
}
