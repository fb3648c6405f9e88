package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/datatable/pkg/errors"
	"github.com/matzehuels/datatable/pkg/table"
)

// showCommand creates the non-interactive single page command.
func (c *CLI) showCommand() *cobra.Command {
	var page int
	var expand bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print one page of generated records",
		Example: `  # First page of 25 records
  datatable show --levels 25

  # Last page at 10 rows per page
  datatable show --levels 25 --page 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			people, err := c.generate(cmd, cfg)
			if err != nil {
				return err
			}
			rows := projectRows(people, expand)
			pager := table.NewPager(len(rows), cfg.PageSize)
			if err := errors.ValidatePage(page, pager.PageCount()); err != nil {
				return err
			}
			pager.Goto(page - 1)

			start, _ := pager.Bounds()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(pageView{rows: table.Page(pager, rows), offset: start, cursor: -1}))
			fmt.Fprintln(out, renderPagination(pager, "", false))

			// Unseeded records differ on every run, so there is no next page to point at.
			if pager.CanNext() && cfg.Seed != 0 {
				printNextStep(out, "Next page", nextPageCommand(cmd, page+1))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number to print (1-based)")
	cmd.Flags().BoolVar(&expand, "expand", false, "list nested records below their parent")

	return cmd
}

// nextPageCommand rebuilds the show invocation with every flag the user set,
// pointing --page at page.
func nextPageCommand(cmd *cobra.Command, page int) string {
	args := []string{cmd.CommandPath()}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch {
		case f.Name == "page":
		case f.Value.Type() == "bool":
			args = append(args, "--"+f.Name+"="+f.Value.String())
		default:
			args = append(args, "--"+f.Name, shellQuote(f.Value.String()))
		}
	})
	args = append(args, "--page", strconv.Itoa(page))
	return strings.Join(args, " ")
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"$\\`") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
