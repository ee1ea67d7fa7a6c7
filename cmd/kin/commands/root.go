// Package commands implements the CLI commands for kin.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/kin/internal/app"
	"go.trai.ch/kin/internal/build"
	"go.trai.ch/kin/internal/core/domain"
)

// CLI represents the command line interface for kin.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

type jsonSwitch interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance driving the given components.
func New(c *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "kin",
		Short:         "Draw and edit family trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to kin.yaml or a seed file (default: discover kin.yaml)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	cli := &CLI{
		components: c,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		jsonLogs, err := cmd.Flags().GetBool("json-logs")
		if err != nil {
			return err
		}
		if l, ok := c.Logger.(jsonSwitch); ok {
			l.SetJSON(jsonLogs)
		}
		return nil
	}

	rootCmd.AddCommand(cli.newServeCmd())
	rootCmd.AddCommand(cli.newRenderCmd())
	rootCmd.AddCommand(cli.newTreeCmd())
	rootCmd.AddCommand(cli.newNodesCmd())
	rootCmd.AddCommand(cli.newVersionCmd())

	return cli
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// loadConfig resolves the configuration named by --config, or discovers kin.yaml
// from the working directory.
func (c *CLI) loadConfig(cmd *cobra.Command) (*domain.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		return c.components.ConfigLoader.LoadFile(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return c.components.ConfigLoader.Load(cwd)
}

// draw loads the configuration and initializes the diagram from it.
func (c *CLI) draw(cmd *cobra.Command, override func(*domain.Config)) (*domain.Config, error) {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(cfg)
	}
	if err := c.components.App.Load(cmd.Context(), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
