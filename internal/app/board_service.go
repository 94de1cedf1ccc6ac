package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/example/kanban/internal/core/board"
	"github.com/example/kanban/internal/core/card"
	"github.com/example/kanban/internal/core/drag"
	"github.com/example/kanban/internal/ctxutil"
	"github.com/example/kanban/internal/models"
	"github.com/example/kanban/internal/ports/primary"
	"github.com/example/kanban/internal/ports/secondary"
)

// BoardServiceImpl implements the BoardService interface. It owns the single
// board value, the shared drag controller and the per-card edit controllers.
// Every change goes through a pure board operation and is followed by a
// best-effort snapshot write.
type BoardServiceImpl struct {
	mu sync.Mutex

	repo   secondary.BoardRepository
	logger log.FieldLogger
	newID  board.IDFunc

	board       models.Board
	drag        *drag.Controller
	cards       map[string]*card.Controller
	lastWarning string
}

// NewBoardService creates a new BoardService with injected dependencies.
// A nil newID generates random UUIDs.
func NewBoardService(
	repo secondary.BoardRepository,
	logger log.FieldLogger,
	newID board.IDFunc,
	dragThreshold int,
) *BoardServiceImpl {
	if newID == nil {
		newID = uuid.NewString
	}
	return &BoardServiceImpl{
		repo:   repo,
		logger: logger,
		newID:  newID,
		board:  models.NewBoard(),
		drag:   drag.NewController(dragThreshold),
		cards:  make(map[string]*card.Controller),
	}
}

// Mount loads the persisted board. A missing, unreadable or malformed
// snapshot leaves an empty board and a warning; it is never an error.
func (s *BoardServiceImpl) Mount(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.repo.Load(ctx)
	if err != nil {
		s.warn(err, "ignoring stored board, starting empty")
	}
	s.board = loaded
	s.drag.Cancel()
	s.cards = make(map[string]*card.Controller)

	s.logger.WithFields(log.Fields{
		"todo":       len(loaded.Todo),
		"inprogress": len(loaded.InProgress),
		"done":       len(loaded.Done),
	}).Debug("board mounted")
	return nil
}

// Board returns a copy of the current board.
func (s *BoardServiceImpl) Board() models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// Counts returns the number of tasks in each lane.
func (s *BoardServiceImpl) Counts() map[models.Status]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[models.Status]int, len(models.Lanes))
	for _, lane := range models.Lanes {
		counts[lane] = len(s.board.Lane(lane))
	}
	return counts
}

// Resolve expands an exact id or a unique id prefix.
func (s *BoardServiceImpl) Resolve(idOrPrefix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idOrPrefix == "" {
		return "", fmt.Errorf("task id cannot be empty")
	}
	if _, _, _, ok := s.board.Find(idOrPrefix); ok {
		return idOrPrefix, nil
	}

	var matches []string
	for _, lane := range models.Lanes {
		for _, t := range s.board.Lane(lane) {
			if strings.HasPrefix(t.ID, idOrPrefix) {
				matches = append(matches, t.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task %s not found", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task id prefix %s is ambiguous (%d matches)", idOrPrefix, len(matches))
	}
}

// AddTask appends a new task to the todo lane.
func (s *BoardServiceImpl) AddTask(ctx context.Context, text string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, task, ok := board.AddTask(s.board, text, s.newID)
	if !ok {
		return nil, board.ErrEmptyText
	}
	s.apply(ctx, "add", task.ID, next, true)
	return &task, nil
}

// EditTask replaces a task's text. Blank text is rejected.
func (s *BoardServiceImpl) EditTask(ctx context.Context, id, text string) (bool, error) {
	if strings.TrimSpace(text) == "" {
		return false, board.ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := board.EditTask(s.board, id, text)
	return s.apply(ctx, "edit", id, next, changed), nil
}

// DeleteTask removes a task.
func (s *BoardServiceImpl) DeleteTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := board.DeleteTask(s.board, id)
	return s.apply(ctx, "delete", id, next, changed), nil
}

// CompleteTask moves a task to the end of done.
func (s *BoardServiceImpl) CompleteTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := board.CompleteTask(s.board, id)
	return s.apply(ctx, "complete", id, next, changed), nil
}

// PromoteTask moves a todo task to the end of inprogress.
func (s *BoardServiceImpl) PromoteTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := board.PromoteToInProgress(s.board, id)
	return s.apply(ctx, "promote", id, next, changed), nil
}

// MoveTask swaps a task with its neighbour in the same lane.
func (s *BoardServiceImpl) MoveTask(ctx context.Context, id string, dir board.Direction) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := board.MoveTask(s.board, dir, id)
	return s.apply(ctx, "move "+string(dir), id, next, changed), nil
}

// ReorderTask moves the task at from to position to within lane.
func (s *BoardServiceImpl) ReorderTask(ctx context.Context, lane models.Status, from, to int) (bool, error) {
	if !lane.Valid() {
		return false, fmt.Errorf("unknown lane %q", lane)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := board.ReorderWithinLane(s.board, lane, from, to)
	return s.apply(ctx, fmt.Sprintf("reorder %s %d->%d", lane, from, to), "", next, changed), nil
}

// PointerDown arms a drag gesture on a card.
func (s *BoardServiceImpl) PointerDown(lane models.Status, index, x, y int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.PointerDown(s.board, lane, index, x, y)
}

// PointerMove feeds pointer motion to the drag controller.
func (s *BoardServiceImpl) PointerMove(x, y int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.PointerMove(x, y)
}

// GrabCard starts a keyboard drag on a card.
func (s *BoardServiceImpl) GrabCard(lane models.Status, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Grab(s.board, lane, index)
}

// HoverCard records the card under the pointer during a drag.
func (s *BoardServiceImpl) HoverCard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Hover(id)
}

// DropCard resolves the drag gesture against the current board.
func (s *BoardServiceImpl) DropCard(ctx context.Context, lane models.Status, targetID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dragged := s.drag.Session().TaskID
	next, changed := s.drag.Drop(s.board, lane, targetID)
	return s.apply(ctx, "drop", dragged, next, changed), nil
}

// CancelDrag abandons the drag gesture.
func (s *BoardServiceImpl) CancelDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Cancel()
}

// DragSession returns the state of the drag controller.
func (s *BoardServiceImpl) DragSession() drag.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Session()
}

// BeginEdit puts a card into edit mode.
func (s *BoardServiceImpl) BeginEdit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.card(id).BeginEdit(s.board) {
		delete(s.cards, id)
		return false
	}
	return true
}

// UpdateDraft replaces the draft text of a card being edited.
func (s *BoardServiceImpl) UpdateDraft(id, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.cards[id]; ok {
		c.SetDraft(text)
	}
}

// CommitEdit saves a card's draft. A blank draft returns ErrEmptyDraft and
// leaves the card in edit mode.
func (s *BoardServiceImpl) CommitEdit(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cards[id]
	if !ok {
		return false, nil
	}
	next, changed, err := c.Commit(s.board)
	if err != nil {
		return false, err
	}
	return s.apply(ctx, "edit", id, next, changed), nil
}

// CancelEdit discards a card's draft.
func (s *BoardServiceImpl) CancelEdit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.cards[id]; ok {
		c.Cancel()
	}
}

// CardMode returns the card's mode and draft.
func (s *BoardServiceImpl) CardMode(id string) (card.Mode, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.cards[id]; ok {
		return c.Mode(), c.Draft()
	}
	return card.Viewing, ""
}

// Actions lists the controls available on a card.
func (s *BoardServiceImpl) Actions(id string) []card.ActionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return card.Actions(s.board, id)
}

// LastWarning returns the most recent persistence warning, if any.
func (s *BoardServiceImpl) LastWarning() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastWarning
}

// apply installs next when changed, drops controllers of deleted cards and
// writes the snapshot. Caller holds mu.
func (s *BoardServiceImpl) apply(ctx context.Context, op, id string, next models.Board, changed bool) bool {
	entry := s.logger.WithFields(log.Fields{
		"op":      op,
		"task":    id,
		"surface": ctxutil.SurfaceFromContext(ctx),
	})
	if !changed {
		entry.Debug("no-op")
		return false
	}

	s.board = next
	for cardID := range s.cards {
		if _, _, _, ok := s.board.Find(cardID); !ok {
			delete(s.cards, cardID)
		}
	}
	entry.Debug("applied")

	if err := s.repo.Save(ctx, s.board); err != nil {
		s.warn(err, "board change kept in memory only")
	} else {
		s.lastWarning = ""
	}
	return true
}

func (s *BoardServiceImpl) card(id string) *card.Controller {
	c, ok := s.cards[id]
	if !ok {
		c = card.New(id)
		s.cards[id] = c
	}
	return c
}

func (s *BoardServiceImpl) warn(err error, msg string) {
	s.lastWarning = fmt.Sprintf("%s: %v", msg, err)
	s.logger.WithError(err).Warn(msg)
}

var _ primary.BoardService = (*BoardServiceImpl)(nil)
