package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/kin/internal/ui/output"
	"go.trai.ch/kin/internal/ui/treeview"
)

func (c *CLI) newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the family tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.draw(cmd, nil); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			s, err := treeview.Render(output.NewRenderer(out), c.components.App)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, s)
			return err
		},
	}
}
