package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/example/kanban/internal/config"
	"github.com/example/kanban/internal/models"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	root := RootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// TestRootCmdStructure verifies every subcommand is registered with a description.
func TestRootCmdStructure(t *testing.T) {
	root := RootCmd()

	want := []string{"init", "add", "edit", "rm", "promote", "complete", "move", "reorder", "show", "export", "slots", "reset", "board", "version"}
	for _, name := range want {
		sub, _, err := root.Find([]string{name})
		if err != nil || sub == root {
			t.Errorf("subcommand %q not registered", name)
			continue
		}
		if sub.Short == "" {
			t.Errorf("%s command should have a Short description", name)
		}
	}

	if root.PersistentFlags().Lookup("config-dir") == nil {
		t.Error("root should have a persistent --config-dir flag")
	}
}

func TestParseLane(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Status
		wantErr bool
	}{
		{in: "todo", want: models.StatusTodo},
		{in: "In-Progress", want: models.StatusInProgress},
		{in: "DONE", want: models.StatusDone},
		{in: "later", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLane(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLane(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseLane(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInitCmd_RejectsBadBackend(t *testing.T) {
	dir := t.TempDir()
	_, err := runRoot(t, "init", "--config-dir", dir, "--backend", "redis")
	if err == nil || !strings.Contains(err.Error(), "redis_addr") {
		t.Fatalf("expected redis_addr error, got %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := runRoot(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "kanban dev") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestMoveCmd_RejectsUnknownDirection(t *testing.T) {
	_, err := runRoot(t, "move", "abc", "sideways")
	if err == nil || !strings.Contains(err.Error(), "unknown direction") {
		t.Fatalf("expected direction error, got %v", err)
	}
}

// TestCommandsEndToEnd runs the one-shot commands against a file-backed board.
// The wire singletons live for the whole test binary, so this is the only
// test that reaches the board service.
func TestCommandsEndToEnd(t *testing.T) {
	dir := t.TempDir()
	snapshots := filepath.Join(dir, "snapshots")

	out, err := runRoot(t, "init", "--config-dir", dir, "--backend", "file", "--file-dir", snapshots)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "✓ Config written") {
		t.Errorf("unexpected init output: %s", out)
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		t.Fatalf("config not readable: %v", err)
	}
	if cfg.Backend != config.BackendFile || cfg.FileDir != snapshots {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, err := runRoot(t, "init", "--config-dir", dir); err == nil {
		t.Error("expected init to refuse overwriting without --force")
	}

	steps := []struct {
		args []string
		want string
	}{
		{args: []string{"add", "Inspect", "hull"}, want: "Added task"},
		{args: []string{"add", "Refuel"}, want: "Added task"},
		{args: []string{"reorder", "todo", "2", "1"}, want: "moved position 2 to 1"},
		{args: []string{"show", "--lane", "todo"}, want: "1."},
		{args: []string{"export", "--format", "yaml"}, want: "text: Refuel"},
	}
	for _, step := range steps {
		args := append(step.args, "--config-dir", dir)
		out, err := runRoot(t, args...)
		if err != nil {
			t.Fatalf("%v failed: %v", step.args, err)
		}
		if !strings.Contains(out, step.want) {
			t.Errorf("%v: expected %q in output, got: %s", step.args, step.want, out)
		}
	}

	out, err = runRoot(t, "show", "--config-dir", dir)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if strings.Index(out, "Refuel") > strings.Index(out, "Inspect hull") {
		t.Errorf("expected Refuel above Inspect hull after reorder, got: %s", out)
	}

	out, err = runRoot(t, "slots", "--config-dir", dir)
	if err != nil {
		t.Fatalf("slots failed: %v", err)
	}
	if !strings.Contains(out, "* "+config.DefaultSlot) {
		t.Errorf("expected current slot marked, got: %s", out)
	}

	if _, err := runRoot(t, "reset", "--config-dir", dir); err == nil {
		t.Error("expected reset to refuse without --force")
	}
	snapshot := filepath.Join(snapshots, config.DefaultSlot+".json")
	if _, err := os.Stat(snapshot); err != nil {
		t.Fatalf("snapshot should survive a refused reset: %v", err)
	}

	out, err = runRoot(t, "reset", "--force", "--config-dir", dir)
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if !strings.Contains(out, "✓ Board "+config.DefaultSlot+" deleted") {
		t.Errorf("unexpected reset output: %s", out)
	}
	if _, err := os.Stat(snapshot); !os.IsNotExist(err) {
		t.Errorf("expected snapshot file removed, stat err = %v", err)
	}

	out, err = runRoot(t, "slots", "--config-dir", dir)
	if err != nil {
		t.Fatalf("slots failed: %v", err)
	}
	if !strings.Contains(out, "No boards saved yet") {
		t.Errorf("expected no slots after reset, got: %s", out)
	}
}
