package cli

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsnap/internal/server"
	"github.com/matzehuels/gridsnap/pkg/config"
	"github.com/matzehuels/gridsnap/pkg/io"
	"github.com/matzehuels/gridsnap/pkg/layout"
	"github.com/matzehuels/gridsnap/pkg/notify"
	"github.com/matzehuels/gridsnap/pkg/observability"
)

// serveOptions holds flag values that override the config file.
type serveOptions struct {
	addr         string
	redisAddr    string
	redisChannel string
	load         string
	static       bool
}

// apply copies flags the user set onto cfg.
func (o serveOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = o.addr
	}
	if cmd.Flags().Changed("redis-addr") {
		cfg.Redis.Addr = o.redisAddr
	}
	if cmd.Flags().Changed("redis-channel") {
		cfg.Redis.Channel = o.redisChannel
	}
}

// serveCommand creates the serve command exposing a layout over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a layout over HTTP",
		Long: `Serve a layout manager over a JSON HTTP API.

Clients read and replace the layout, add and remove units, and drive move and
resize sessions by posting hit-tested pointer events. With --redis-addr every
layout notification is also published on a Redis channel.`,
		Example: `  gridsnap serve --addr :8080
  gridsnap serve --load dashboard.json --redis-addr localhost:6379`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, &cfg)

			mgr, err := layout.NewManager(nil, nil, cfg.LayoutOptions())
			if err != nil {
				return err
			}
			if opts.load != "" {
				snap, err := io.ImportJSON(opts.load)
				if err != nil {
					return err
				}
				if err := mgr.LoadLayout(snap); err != nil {
					return err
				}
				logger.Info("layout loaded", "path", opts.load, "units", mgr.Len())
			}
			mgr.SetEditable(!opts.static)
			mgr.Subscribe(notify.LogObserver{Logger: logger})
			notify.LogHooks{Logger: logger}.Install()
			defer observability.Reset()

			if cfg.Redis.Addr != "" {
				client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
				defer client.Close()
				err := spin(ctx, "Connecting to Redis at "+cfg.Redis.Addr, func(ctx context.Context) error {
					return client.Ping(ctx).Err()
				})
				if err != nil {
					return fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
				}
				relay := notify.NewRelay(notify.RedisPublisher{Client: client}, cfg.Redis.Channel, logger)
				relayCtx, stopRelay := context.WithCancel(ctx)
				relayDone := make(chan struct{})
				go func() {
					defer close(relayDone)
					relay.Run(relayCtx)
				}()
				defer func() {
					stopRelay()
					<-relayDone
				}()
				mgr.Subscribe(relay)
				logger.Info("relaying notifications", "redis", cfg.Redis.Addr, "channel", relay.Channel())
			}

			return server.New(mgr, logger).ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", config.DefaultServerAddr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address for the notification relay")
	cmd.Flags().StringVar(&opts.redisChannel, "redis-channel", config.DefaultRedisChannel, "Redis channel for notifications")
	cmd.Flags().StringVar(&opts.load, "load", "", "layout file to load at startup")
	cmd.Flags().BoolVar(&opts.static, "static", false, "start with editing disabled")
	return cmd
}
