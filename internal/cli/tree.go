package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/matzehuels/datatable/pkg/errors"
	"github.com/matzehuels/datatable/pkg/makedata"
	"github.com/matzehuels/datatable/pkg/table"
)

const defaultTreeLimit = 20

var (
	treeRootStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	treeEnumStyle = lipgloss.NewStyle().Foreground(colorDim).MarginRight(1)
	treeItemStyle = lipgloss.NewStyle().Foreground(colorWhite)
	treeMoreStyle = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
)

// treeCommand creates the command that shows nested records as a tree.
func (c *CLI) treeCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show generated records as a nested tree",
		Example: `  # Two levels: 3 parents with 2 children each
  datatable tree --levels 3,2

  # Three levels, first 5 records per level
  datatable tree --levels 10,4,2 --limit 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if limit < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--limit must be at least 1, got %d", limit)
			}

			people, err := c.generate(cmd, cfg)
			if err != nil {
				return err
			}
			if len(people) == 0 {
				printWarning("No records to show")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTree(people, limit))
			printKeyValue("Records", formatCount(makedata.Count(people)))
			printKeyValue("Depth", strconv.Itoa(makedata.Depth(people)))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultTreeLimit, "maximum records shown per level")

	return cmd
}

// renderTree draws people as a lipgloss tree, showing at most limit
// children under each node.
func renderTree(people []makedata.Person, limit int) string {
	root := tree.Root(treeRootStyle.Render(appName)).
		EnumeratorStyle(treeEnumStyle).
		ItemStyle(treeItemStyle)
	addLevel(root, people, limit)
	return root.String()
}

func addLevel(parent *tree.Tree, level []makedata.Person, limit int) {
	for i, p := range level {
		if i == limit {
			parent.Child(treeMoreStyle.Render(fmt.Sprintf("… %d more", len(level)-limit)))
			return
		}
		label := treeLabel(p)
		if !p.HasSubRows() {
			parent.Child(label)
			continue
		}
		sub := tree.Root(label)
		addLevel(sub, p.SubRows, limit)
		parent.Child(sub)
	}
}

func treeLabel(p makedata.Person) string {
	row := table.FromPerson(p)
	status := row.Label
	if s, ok := styleStatus[status]; ok {
		status = s.Render(status)
	}
	return fmt.Sprintf("%s %s %s %s", row.Title, StyleDim.Render("("+row.Description+")"), status, StyleDim.Render(row.Date))
}
