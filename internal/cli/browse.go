package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the interactive table command.
func (c *CLI) browseCommand() *cobra.Command {
	var expand bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through generated records interactively",
		Long: `Generate records and open them in an interactive, paginated table.

Navigation mirrors a web data grid: first/previous/next/last page, a
"go to page" input and a page size selector (10, 20, 30, 40 or 50 rows).`,
		Example: `  # 100,000 flat records
  datatable browse

  # 10 parents with 5 children each, children listed under their parent
  datatable browse --levels 10,5 --expand

  # Reproducible data, 30 rows per page
  datatable browse --seed 42 -n 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			people, err := c.generate(cmd, cfg)
			if err != nil {
				return err
			}
			model := NewTableModel(projectRows(people, expand), cfg.PageSize)

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("run table: %w", err)
			}

			if m, ok := final.(TableModel); ok {
				c.reportActions(m.Actions)
				if selected := m.SelectedRows(); len(selected) > 0 {
					printSuccess("%d rows selected", len(selected))
					for _, r := range selected {
						printInfo("%s", r.Title)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&expand, "expand", false, "list nested records below their parent")

	return cmd
}

// reportActions logs the edit/remove requests made while the table was open.
func (c *CLI) reportActions(actions []RowAction) {
	for _, a := range actions {
		c.Logger.Debug(a.Verb+" user!", "key", a.Row.Key, "title", a.Row.Title)
	}
}
