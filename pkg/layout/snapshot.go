package layout

import (
	"github.com/matzehuels/gridsnap/pkg/errors"
	"github.com/matzehuels/gridsnap/pkg/grid"
)

// Entry is the serializable projection of one unit.
type Entry struct {
	ID     string    `json:"id"`
	Coords grid.Rect `json:"coords"`
}

// Snapshot is the ordered, serializable projection of a manager's units.
// Only ids and rectangles are captured; mode, drag state and per-unit limits
// are not.
type Snapshot []Entry

// Equal reports whether s and o hold the same entries in the same order.
func (s Snapshot) Equal(o Snapshot) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// IDs returns the entry ids in order.
func (s Snapshot) IDs() []string {
	ids := make([]string, len(s))
	for i, e := range s {
		ids[i] = e.ID
	}
	return ids
}

// CheckIDs fails with INVALID_ARGUMENT when an id appears more than once.
func (s Snapshot) CheckIDs() error {
	seen := make(map[string]int, len(s))
	for i, e := range s {
		if j, ok := seen[e.ID]; ok {
			return errors.New(errors.ErrCodeInvalidArgument, "entries %d and %d share id %q", j, i, e.ID)
		}
		seen[e.ID] = i
	}
	return nil
}
