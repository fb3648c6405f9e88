// Package cli implements the datatable command-line interface.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/datatable/internal/config"
	"github.com/matzehuels/datatable/pkg/buildinfo"
	"github.com/matzehuels/datatable/pkg/errors"
	"github.com/matzehuels/datatable/pkg/makedata"
	"github.com/matzehuels/datatable/pkg/table"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "datatable"

	// spinnerThreshold is the record count above which generation shows a spinner.
	spinnerThreshold = 50000
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	errOut io.Writer
	opts   options
}

// options are the persistent flags shared by the data commands.
type options struct {
	configPath string
	levels     string
	seed       uint64
	pageSize   int
}

// New creates a new CLI instance whose logger and spinner write to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), errOut: w}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Datatable pages through synthetic person records",
		Long:         `Datatable generates a synthetic, optionally nested collection of person records and presents it as a paginated table in the terminal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.configPath, "config", "", "config file (default ~/.config/datatable/config.toml)")
	flags.StringVarP(&c.opts.levels, "levels", "l", "", "comma-separated record counts per nesting level (default 100000)")
	flags.Uint64Var(&c.opts.seed, "seed", 0, "random seed for reproducible records (0 = random)")
	flags.IntVarP(&c.opts.pageSize, "page-size", "n", 0, "rows per page: 10, 20, 30, 40 or 50 (default 10)")

	root.AddCommand(c.browseCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the config file and applies any flags the user set.
func (c *CLI) loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, explicit := c.opts.configPath, c.opts.configPath != ""
	if !explicit {
		p, err := config.Path()
		if err != nil {
			c.Logger.Debug("no config directory", "err", err)
			return c.applyFlags(cmd, config.Default())
		}
		path = p
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cfg, err
	}
	c.Logger.Debug("loaded config", "path", path, "levels", cfg.Levels, "page_size", cfg.PageSize)
	return c.applyFlags(cmd, cfg)
}

// applyFlags overrides cfg with flags that were explicitly set.
func (c *CLI) applyFlags(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("levels") {
		lens, err := errors.ParseLevels(c.opts.levels)
		if err != nil {
			return cfg, err
		}
		cfg.Levels = lens
	}
	if flags.Changed("seed") {
		cfg.Seed = c.opts.seed
	}
	if flags.Changed("page-size") {
		cfg.PageSize = c.opts.pageSize
	}
	return cfg, cfg.Validate()
}

// =============================================================================
// Data
// =============================================================================

// generate builds the record forest described by cfg, logging how long it
// took. Large requests show a spinner while they run; an interrupt during
// generation discards the records and returns the context error.
func (c *CLI) generate(cmd *cobra.Command, cfg config.Config) ([]makedata.Person, error) {
	ctx := cmd.Context()
	prog := newProgress(loggerFromContext(ctx))

	if expectedRecords(cfg.Levels) <= spinnerThreshold {
		people := cfg.Generator().Make(cfg.Levels...)
		prog.done("Generated " + formatCount(makedata.Count(people)) + " records")
		return people, nil
	}

	spin := newSpinnerWithContext(ctx, c.errOut, "Generating records...")
	spin.Start()

	people := cfg.Generator().Make(cfg.Levels...)

	if spin.Cancelled() {
		spin.StopWithError("Generation interrupted")
		return nil, ctx.Err()
	}
	spin.StopWithSuccess(fmt.Sprintf("Generated %s records in %s",
		formatCount(makedata.Count(people)), prog.elapsed()))
	return people, nil
}

// expectedRecords returns how many records lens will produce.
func expectedRecords(lens []int) int {
	total, width := 0, 1
	for _, n := range lens {
		width *= n
		total += width
	}
	return total
}

// projectRows turns the forest into table rows. With expand, every level is
// listed in depth-first order and child titles are indented.
func projectRows(people []makedata.Person, expand bool) []table.Row {
	if !expand {
		return table.Rows(people)
	}
	rows := make([]table.Row, 0, makedata.Count(people))
	makedata.Walk(people, func(p makedata.Person, depth int) {
		row := table.FromPerson(p)
		if depth > 0 {
			row.Title = indent(depth) + row.Title
		}
		rows = append(rows, row)
	})
	return rows
}

func indent(depth int) string {
	return strings.Repeat("  ", depth-1) + "└ "
}
