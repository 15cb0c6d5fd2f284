package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gridsnap/pkg/errors"
)

// runCLI executes the root command with args and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	for _, name := range []string{"edit", "serve", "watch", "inspect", "snap", "config", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSnapCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"snap", "135", "97"}, "(120, 80)"},
		{[]string{"snap", "135", "97", "--up"}, "(140, 100)"},
		{[]string{"snap", "40", "40", "--up"}, "(60, 60)"},
		{[]string{"snap", "--", "-10", "30"}, "(0, 20)"},
		{[]string{"snap", "130", "130", "--interval", "25"}, "(125, 125)"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnapCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"snap", "abc", "1"},
		{"snap", "1", "2", "--interval", "0"},
	} {
		if _, err := runCLI(t, args...); !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("%v error = %v, want INVALID_ARGUMENT", args, err)
		}
	}
}

func TestInspectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	data := `[
  {"id": "chart", "coords": {"top": 20, "left": 20, "width": 400, "height": 200}},
  {"id": "notes", "coords": {"top": 15, "left": 20, "width": 100, "height": 200}}
]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "inspect", path)
	if err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	for _, want := range []string{"chart", "notes", "400", "below min", iconSuccess, iconError, "1 units are off the grid", "outside the size limits"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectCommandErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := runCLI(t, "inspect", filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	path := filepath.Join(dir, "object.json")
	if err := os.WriteFile(path, []byte(`{"units": []}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := runCLI(t, "inspect", path); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("object layout error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := runCLI(t, "config")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}
	for _, want := range []string{"[grid]", `id_prefix = "unit-"`, "[editor]", "[server]", "[redis]"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandUsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[grid]\nsnap = 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := runCLI(t, "--config", path, "config")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}
	if !strings.Contains(out, "snap = 25") {
		t.Errorf("config output does not reflect file:\n%s", out)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, "gridsnap") {
		t.Error("bash completion does not mention gridsnap")
	}
	if _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}

func TestWatchRequiresRedisAddr(t *testing.T) {
	if _, err := runCLI(t, "watch"); err == nil || !strings.Contains(err.Error(), "redis") {
		t.Errorf("watch without address error = %v", err)
	}
}

func TestConfigCommandPath(t *testing.T) {
	out, err := runCLI(t, "config", "--path")
	if err != nil {
		t.Fatalf("config --path error: %v", err)
	}
	if !strings.Contains(out, filepath.Join("gridsnap", "config.toml")) {
		t.Errorf("config --path output = %q", out)
	}

	out, err = runCLI(t, "--config", "/tmp/custom.toml", "config", "--path")
	if err != nil {
		t.Fatalf("config --path error: %v", err)
	}
	if !strings.Contains(out, "/tmp/custom.toml") {
		t.Errorf("config --path output = %q, want the --config value", out)
	}
}
