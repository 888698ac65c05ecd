// Package history keeps bounded undo/redo stacks of whole-map snapshots.
package history

import "github.com/RezixDev/map-editor/levels"

// DefaultLimit caps each stack.
const DefaultLimit = 50

// History holds deep copies of the map: its size and layer stack. Nothing
// outside it ever sees a stored snapshot, so later edits to the live map
// cannot corrupt one.
type History struct {
	past   []*levels.Map
	future []*levels.Map
	limit  int
}

// New returns a history bounded to limit entries per stack; limit <= 0 uses
// DefaultLimit.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Checkpoint records current before a mutation and drops any redo branch.
func (h *History) Checkpoint(current *levels.Map) {
	h.past = push(h.past, current.Clone(), h.limit)
	h.future = nil
}

// Undo returns the state to restore. current is saved for Redo. ok is false
// when there is nothing to undo.
func (h *History) Undo(current *levels.Map) (*levels.Map, bool) {
	n := len(h.past)
	if n == 0 {
		return nil, false
	}
	snap := h.past[n-1]
	h.past = h.past[:n-1]
	h.future = push(h.future, current.Clone(), h.limit)
	return snap.Clone(), true
}

// Redo mirrors Undo using the future stack.
func (h *History) Redo(current *levels.Map) (*levels.Map, bool) {
	n := len(h.future)
	if n == 0 {
		return nil, false
	}
	snap := h.future[n-1]
	h.future = h.future[:n-1]
	h.past = push(h.past, current.Clone(), h.limit)
	return snap.Clone(), true
}

func (h *History) CanUndo() bool { return len(h.past) > 0 }
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Len returns the sizes of the past and future stacks.
func (h *History) Len() (past, future int) {
	return len(h.past), len(h.future)
}

// Reset drops both stacks, e.g. after loading a different document.
func (h *History) Reset() {
	h.past = nil
	h.future = nil
}

func push(stack []*levels.Map, snap *levels.Map, limit int) []*levels.Map {
	if len(stack) >= limit {
		// drop oldest
		stack = append(stack[:0:0], stack[len(stack)-limit+1:]...)
	}
	return append(stack, snap)
}
