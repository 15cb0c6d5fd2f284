package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/gridsnap/pkg/errors"
	"github.com/matzehuels/gridsnap/pkg/layout"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadMissingDefaultFallsBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadMissingExplicitFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "gridsnap", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	got, err = DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, home) {
		t.Errorf("DefaultPath() = %q, want it under HOME %q", got, home)
	}
}

func TestLoadParsesSections(t *testing.T) {
	path := writeConfig(t, `
[grid]
snap = 10
min_size = 50
max_size = 500
id_prefix = "  box-  "

[editor]
cell_width = 5
double_click_ms = 250

[server]
addr = " :9090 "

[redis]
addr = "localhost:6379"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Grid != (Grid{Snap: 10, MinSize: 50, MaxSize: 500, IDPrefix: "box-"}) {
		t.Errorf("Grid = %+v", cfg.Grid)
	}
	if cfg.Editor.CellWidth != 5 || cfg.Editor.CellHeight != DefaultCellHeight {
		t.Errorf("Editor = %+v, want cell_width 5 and default cell_height", cfg.Editor)
	}
	if cfg.Editor.DoubleClick() != 250*time.Millisecond {
		t.Errorf("DoubleClick() = %v, want 250ms", cfg.Editor.DoubleClick())
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.Channel != DefaultRedisChannel {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"malformed", "[grid\nsnap = ", errors.ErrCodeInvalidFormat},
		{"unknown key", "[grid]\ngutter = 4\n", errors.ErrCodeInvalidArgument},
		{"min above max", "[grid]\nmin_size = 900\nmax_size = 100\n", errors.ErrCodeInvalidArgument},
		{"negative snap", "[grid]\nsnap = -1\n", errors.ErrCodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.body))
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLayoutOptions(t *testing.T) {
	cfg := Default()
	cfg.Grid.Snap = 25
	opts := cfg.LayoutOptions()
	if opts.Snap != 25 || opts.MinSize != layout.DefaultMinSize || opts.IDPrefix != layout.DefaultIDPrefix {
		t.Errorf("LayoutOptions() = %+v", opts)
	}
	if _, err := layout.NewManager(nil, nil, opts); err != nil {
		t.Errorf("NewManager(LayoutOptions()) error: %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Redis.Addr = "redis:6379"

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse(Encode()) error: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
