package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func (c *CLI) newNodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "Print the laid out tree as JSON",
		Long:  "Print the tree in the shape served by GET /nodes. The output can be used as a seed file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.draw(cmd, nil); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(c.components.App.Nodes())
		},
	}
}
