package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsnap/pkg/config"
	"github.com/matzehuels/gridsnap/pkg/notify"
)

// watchCommand creates the watch command that follows relayed notifications.
func (c *CLI) watchCommand() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow layout notifications published by serve",
		Long: `Subscribe to the Redis channel that "gridsnap serve --redis-addr" publishes
to and print one line per layout notification until interrupted.`,
		Example: `  gridsnap watch --redis-addr localhost:6379`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, &cfg)
			if cfg.Redis.Addr == "" {
				return fmt.Errorf("no redis address: set --redis-addr or [redis] addr in the config file")
			}

			client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
			defer client.Close()

			logger.Info("watching", "redis", cfg.Redis.Addr, "channel", cfg.Redis.Channel)
			out := cmd.OutOrStdout()
			err = notify.Watch(ctx, client, cfg.Redis.Channel, logger, func(m notify.Message) {
				printMessage(out, m)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address")
	cmd.Flags().StringVar(&opts.redisChannel, "redis-channel", config.DefaultRedisChannel, "Redis channel")
	return cmd
}

// printMessage writes one notification as a single line.
func printMessage(w io.Writer, m notify.Message) {
	line := StyleDim.Render(m.Time.Format("15:04:05.00")) + " " + StyleTitle.Render(fmt.Sprintf("%-11s", m.Event))
	switch {
	case m.Unit != nil:
		line += " " + StyleValue.Render(m.Unit.ID) + " " + StyleDim.Render(m.Unit.Coords.String())
	case len(m.Units) > 0:
		line += " " + StyleNumber.Render(fmt.Sprintf("%d units", len(m.Units)))
	}
	line += " " + StyleDim.Render(fmt.Sprintf("[%d]", m.Size))
	fmt.Fprintln(w, line)
}
