package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridsnap/pkg/errors"
	"github.com/matzehuels/gridsnap/pkg/layout"
)

const appName = "gridsnap"

// Defaults for fields that have no layout package equivalent.
const (
	DefaultCellWidth     = 10
	DefaultCellHeight    = 20
	DefaultDoubleClickMS = 400
	DefaultServerAddr    = "127.0.0.1:8080"
	DefaultRedisChannel  = "gridsnap:events"
)

// Config is the parsed configuration file.
type Config struct {
	Grid   Grid   `toml:"grid"`
	Editor Editor `toml:"editor"`
	Server Server `toml:"server"`
	Redis  Redis  `toml:"redis"`
}

// Grid holds the layout engine options.
type Grid struct {
	Snap     float64 `toml:"snap"`
	MinSize  float64 `toml:"min_size"`
	MaxSize  float64 `toml:"max_size"`
	IDPrefix string  `toml:"id_prefix"`
}

// Editor holds the terminal editor's cell geometry and click timing.
type Editor struct {
	CellWidth     float64 `toml:"cell_width"`
	CellHeight    float64 `toml:"cell_height"`
	DoubleClickMS int     `toml:"double_click_ms"`
}

// Server holds the HTTP API settings.
type Server struct {
	Addr string `toml:"addr"`
}

// Redis holds the notification relay settings. An empty Addr disables it.
type Redis struct {
	Addr    string `toml:"addr"`
	Channel string `toml:"channel"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Grid: Grid{
			Snap:     layout.DefaultSnap,
			MinSize:  layout.DefaultMinSize,
			MaxSize:  layout.DefaultMaxSize,
			IDPrefix: layout.DefaultIDPrefix,
		},
		Editor: Editor{
			CellWidth:     DefaultCellWidth,
			CellHeight:    DefaultCellHeight,
			DoubleClickMS: DefaultDoubleClickMS,
		},
		Server: Server{Addr: DefaultServerAddr},
		Redis:  Redis{Channel: DefaultRedisChannel},
	}
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration at path, or at [DefaultPath] when path is
// empty. A missing file yields [Default]. Unknown keys and invalid grid
// options fail with INVALID_ARGUMENT.
func Load(path string) (Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a TOML document from r on top of [Default].
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidArgument, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize trims strings and restores defaults for emptied fields.
func (c *Config) normalize() {
	d := Default()
	c.Grid.IDPrefix = strings.TrimSpace(c.Grid.IDPrefix)
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	c.Redis.Addr = strings.TrimSpace(c.Redis.Addr)
	c.Redis.Channel = strings.TrimSpace(c.Redis.Channel)

	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Redis.Channel == "" {
		c.Redis.Channel = d.Redis.Channel
	}
	if c.Editor.CellWidth <= 0 {
		c.Editor.CellWidth = d.Editor.CellWidth
	}
	if c.Editor.CellHeight <= 0 {
		c.Editor.CellHeight = d.Editor.CellHeight
	}
	if c.Editor.DoubleClickMS <= 0 {
		c.Editor.DoubleClickMS = d.Editor.DoubleClickMS
	}
}

// Validate checks the grid options the same way [layout.NewManager] does.
func (c Config) Validate() error {
	opts := c.LayoutOptions()
	opts.SetDefaults()
	return opts.Validate()
}

// LayoutOptions converts the [grid] section to layout options. Zero fields
// are left for [layout.Options.SetDefaults].
func (c Config) LayoutOptions() layout.Options {
	return layout.Options{
		Snap:     c.Grid.Snap,
		MinSize:  c.Grid.MinSize,
		MaxSize:  c.Grid.MaxSize,
		IDPrefix: c.Grid.IDPrefix,
	}
}

// DoubleClick returns the double-click window.
func (e Editor) DoubleClick() time.Duration {
	return time.Duration(e.DoubleClickMS) * time.Millisecond
}

// Encode writes c as TOML to w.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
