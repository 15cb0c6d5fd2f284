package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsnap/pkg/config"
)

// configCommand creates the config command that prints the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as TOML: the config file merged over the
built-in defaults. The output is a valid config file.`,
		Example: `  gridsnap config > ~/.config/gridsnap/config.toml
  gridsnap config --path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				path := c.configPath
				if path == "" {
					p, err := config.DefaultPath()
					if err != nil {
						return err
					}
					path = p
				}
				printKeyValue(cmd.OutOrStdout(), "config", path)
				return nil
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Redis.Addr == "" {
				c.Logger.Debug("redis relay disabled")
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "print the config file location instead")
	return cmd
}
