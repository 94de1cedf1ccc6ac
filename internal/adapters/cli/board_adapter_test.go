package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/example/kanban/internal/app"
	"github.com/example/kanban/internal/core/board"
	"github.com/example/kanban/internal/models"
)

// ============================================================================
// Test Helpers
// ============================================================================

type fakeRepository struct {
	board   models.Board
	saveErr error
	saves   int
}

func (r *fakeRepository) Load(ctx context.Context) (models.Board, error) {
	return r.board.Clone(), nil
}

func (r *fakeRepository) Save(ctx context.Context, b models.Board) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.board = b.Clone()
	return nil
}

func seqIDs(ids ...string) board.IDFunc {
	i := 0
	return func() string {
		id := ids[i]
		i++
		return id
	}
}

func newTestAdapter(t *testing.T, repo *fakeRepository, ids ...string) (*BoardAdapter, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := app.NewBoardService(repo, logger, seqIDs(ids...), 0)
	if err := svc.Mount(context.Background()); err != nil {
		t.Fatalf("mount failed: %v", err)
	}
	var buf bytes.Buffer
	return NewBoardAdapter(svc, &buf), &buf
}

func seededRepo() *fakeRepository {
	return &fakeRepository{board: models.Board{
		Todo: []models.Task{
			{ID: "a1", Text: "Inspect hull", Status: models.StatusTodo},
			{ID: "b2", Text: "Refuel", Status: models.StatusTodo},
		},
		InProgress: []models.Task{{ID: "c3", Text: "Patch sails", Status: models.StatusInProgress}},
		Done:       []models.Task{{ID: "d4", Text: "Hire crew", Status: models.StatusDone}},
	}}
}

// ============================================================================
// Add Tests
// ============================================================================

func TestBoardAdapter_Add_Success(t *testing.T) {
	repo := &fakeRepository{board: models.NewBoard()}
	adapter, buf := newTestAdapter(t, repo, "0f3c9a2e-1111-2222-3333-444455556666")

	if err := adapter.Add(context.Background(), "Inspect hull"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "✓ Added task 0f3c9a2e: Inspect hull") {
		t.Errorf("expected short id and text in output, got: %s", output)
	}
	if len(repo.board.Todo) != 1 {
		t.Errorf("expected task to be saved, got %d todo tasks", len(repo.board.Todo))
	}
}

func TestBoardAdapter_Add_BlankText(t *testing.T) {
	repo := &fakeRepository{board: models.NewBoard()}
	adapter, buf := newTestAdapter(t, repo)

	err := adapter.Add(context.Background(), "   ")
	if !errors.Is(err, board.ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got: %s", buf.String())
	}
}

func TestBoardAdapter_Add_WarnsWhenSaveFails(t *testing.T) {
	repo := &fakeRepository{board: models.NewBoard(), saveErr: errors.New("disk full")}
	adapter, buf := newTestAdapter(t, repo, "x1")

	if err := adapter.Add(context.Background(), "Refuel"); err != nil {
		t.Fatalf("save failures must not fail the command: %v", err)
	}
	if !strings.Contains(buf.String(), "warning:") || !strings.Contains(buf.String(), "disk full") {
		t.Errorf("expected persistence warning, got: %s", buf.String())
	}
}

// ============================================================================
// Transition Tests
// ============================================================================

func TestBoardAdapter_Promote(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantOutput string
	}{
		{name: "todo task", id: "a1", wantOutput: "✓ Task a1 moved to In Progress"},
		{name: "prefix resolves", id: "b", wantOutput: "✓ Task b2 moved to In Progress"},
		{name: "inprogress is a no-op", id: "c3", wantOutput: "can only promote todo tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, buf := newTestAdapter(t, seededRepo())
			if err := adapter.Promote(context.Background(), tt.id); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.wantOutput) {
				t.Errorf("expected %q in output, got: %s", tt.wantOutput, buf.String())
			}
		})
	}
}

func TestBoardAdapter_Complete_AlreadyDone(t *testing.T) {
	repo := seededRepo()
	adapter, buf := newTestAdapter(t, repo)

	if err := adapter.Complete(context.Background(), "d4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "already done") {
		t.Errorf("expected reason in output, got: %s", buf.String())
	}
	if repo.saves != 0 {
		t.Errorf("no-op must not write, got %d saves", repo.saves)
	}
}

func TestBoardAdapter_Move(t *testing.T) {
	repo := seededRepo()
	adapter, buf := newTestAdapter(t, repo)

	if err := adapter.Move(context.Background(), "a1", board.Up); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "already first") {
		t.Errorf("expected boundary reason, got: %s", buf.String())
	}

	buf.Reset()
	if err := adapter.Move(context.Background(), "a1", board.Down); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "✓ Task a1 moved down") {
		t.Errorf("expected move confirmation, got: %s", buf.String())
	}
	if repo.board.Todo[1].ID != "a1" {
		t.Errorf("expected a1 second in todo, got %v", repo.board.Todo)
	}
}

func TestBoardAdapter_Reorder_UsesOneBasedPositions(t *testing.T) {
	repo := seededRepo()
	adapter, buf := newTestAdapter(t, repo)

	if err := adapter.Reorder(context.Background(), models.StatusTodo, 2, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.board.Todo[0].ID != "b2" {
		t.Errorf("expected b2 first, got %v", repo.board.Todo)
	}

	buf.Reset()
	if err := adapter.Reorder(context.Background(), models.StatusTodo, 1, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "not valid") {
		t.Errorf("expected invalid position message, got: %s", buf.String())
	}
}

func TestBoardAdapter_Edit_And_Delete(t *testing.T) {
	repo := seededRepo()
	adapter, buf := newTestAdapter(t, repo)

	if err := adapter.Edit(context.Background(), "c3", "Patch mainsail"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.board.InProgress[0].Text != "Patch mainsail" {
		t.Errorf("expected edited text, got %q", repo.board.InProgress[0].Text)
	}

	if err := adapter.Delete(context.Background(), "c3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.board.InProgress) != 0 {
		t.Errorf("expected inprogress to be empty, got %v", repo.board.InProgress)
	}
	if !strings.Contains(buf.String(), "✓ Task c3 deleted") {
		t.Errorf("expected delete confirmation, got: %s", buf.String())
	}

	if err := adapter.Delete(context.Background(), "c3"); err == nil {
		t.Error("expected error for unknown id")
	}
}

// ============================================================================
// Show / Export Tests
// ============================================================================

func TestBoardAdapter_Show(t *testing.T) {
	adapter, buf := newTestAdapter(t, seededRepo())

	if err := adapter.Show(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"To Do (2)", "In Progress (1)", "Done (1)", "1. a1", "2. b2", "Hire crew"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestBoardAdapter_Show_SingleLane(t *testing.T) {
	adapter, buf := newTestAdapter(t, &fakeRepository{board: models.NewBoard()})

	if err := adapter.Show(context.Background(), models.StatusDone); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "Done (0)") || !strings.Contains(output, "(empty)") {
		t.Errorf("expected empty done lane, got: %s", output)
	}
	if strings.Contains(output, "To Do") {
		t.Errorf("expected only the done lane, got: %s", output)
	}
}

func TestBoardAdapter_Export(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantOutput string
		wantErr    bool
	}{
		{name: "json", format: "json", wantOutput: `"inprogress": [`},
		{name: "yaml", format: "yaml", wantOutput: "inprogress:\n  - id: c3"},
		{name: "unknown", format: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, buf := newTestAdapter(t, seededRepo())
			err := adapter.Export(context.Background(), tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.wantOutput) {
				t.Errorf("expected %q in output, got: %s", tt.wantOutput, buf.String())
			}
		})
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0f3c9a2e-1111-2222-3333-444455556666"); got != "0f3c9a2e" {
		t.Errorf("shortID(uuid) = %q", got)
	}
	if got := shortID("a-b"); got != "a-b" {
		t.Errorf("shortID(non-uuid) = %q", got)
	}
}
