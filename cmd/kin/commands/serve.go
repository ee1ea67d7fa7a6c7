package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.trai.ch/kin/internal/adapters/httpapi"
	"go.trai.ch/kin/internal/adapters/telemetry"
	"go.trai.ch/kin/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the family tree over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, err := cmd.Flags().GetString("addr")
			if err != nil {
				return err
			}
			watch, err := cmd.Flags().GetBool("watch")
			if err != nil {
				return err
			}
			trace, err := cmd.Flags().GetBool("trace")
			if err != nil {
				return err
			}

			if trace {
				provider := telemetry.NewProvider(c.components.Logger)
				otel.SetTracerProvider(provider)
				defer func() { _ = provider.Shutdown(context.WithoutCancel(cmd.Context())) }()
			}

			// The loop is not running yet, so the diagram can be drawn directly.
			cfg, err := c.draw(cmd, nil)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			return c.serve(cmd, cfg, addr, watch)
		},
	}
	cmd.Flags().String("addr", "", "Address to listen on (default: server.addr from kin.yaml or "+domain.DefaultServerAddr+")")
	cmd.Flags().Bool("watch", false, "Redraw the tree when the seed file changes")
	cmd.Flags().Bool("trace", false, "Log a trace span for every interaction")
	return cmd
}

func (c *CLI) serve(cmd *cobra.Command, cfg *domain.Config, addr string, watch bool) error {
	comp := c.components
	g, ctx := errgroup.WithContext(cmd.Context())

	if watch && cfg.SeedPath == "" {
		comp.Logger.Warn("--watch needs a kin.yaml or seed file; serving the built-in family without watching")
		watch = false
	}
	if watch {
		if err := comp.Watcher.Start(ctx, cfg.SeedPath); err != nil {
			return err
		}
		defer func() { _ = comp.Watcher.Stop() }()
	}

	g.Go(func() error {
		return comp.Loop.Run(ctx)
	})

	server := httpapi.New(comp.App, comp.Loop, comp.Exporter, comp.Logger)
	g.Go(func() error {
		return server.ListenAndServe(ctx, addr)
	})

	if watch {
		g.Go(func() error {
			c.reloadOnChange(ctx, cmd)
			return nil
		})
	}

	return g.Wait()
}

// reloadOnChange redraws the tree after every change to the seed file.
// A seed that fails to load keeps the current diagram.
func (c *CLI) reloadOnChange(ctx context.Context, cmd *cobra.Command) {
	comp := c.components
	for ev := range comp.Watcher.Events() {
		cfg, err := c.loadConfig(cmd)
		if err != nil {
			comp.Logger.Error(err)
			continue
		}
		err = comp.Loop.Do(ctx, func(ctx context.Context) error {
			return comp.App.Load(ctx, cfg)
		})
		if err != nil {
			comp.Logger.Error(err)
			continue
		}
		comp.Logger.Info("reloaded " + ev.Path)
	}
}
