package board

import (
	"fmt"
	"strings"

	"github.com/example/kanban/internal/models"
)

// Validate checks that every task sits in the lane matching its status, that
// ids and text are non-empty and that no id appears twice.
func Validate(b models.Board) error {
	seen := make(map[string]models.Status, b.Len())
	for _, lane := range models.Lanes {
		for i, t := range b.Lane(lane) {
			if t.ID == "" {
				return fmt.Errorf("%s[%d]: empty task id", lane, i)
			}
			if strings.TrimSpace(t.Text) == "" {
				return fmt.Errorf("%s[%d]: task %s has empty text", lane, i, t.ID)
			}
			if t.Status != lane {
				return fmt.Errorf("%s[%d]: task %s has status %q", lane, i, t.ID, t.Status)
			}
			if prev, dup := seen[t.ID]; dup {
				return fmt.Errorf("%s[%d]: task %s already present in %s", lane, i, t.ID, prev)
			}
			seen[t.ID] = lane
		}
	}
	return nil
}
