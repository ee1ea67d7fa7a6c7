package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export the family tree as an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			expand, err := cmd.Flags().GetString("expand")
			if err != nil {
				return err
			}

			_, err = c.draw(cmd, func(cfg *domain.Config) {
				if cmd.Flags().Changed("expand") {
					cfg.ExpandID = expand
				}
			})
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := c.components.Exporter.Export(cmd.Context(), c.components.App.Scene(), &buf); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
			}
			if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", domain.DefaultScenePath(), "Image file to write")
	cmd.Flags().String("expand", domain.DefaultExpandID, "Node to expand before rendering (empty keeps everything collapsed)")
	return cmd
}
