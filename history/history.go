// Package history keeps bounded undo and redo lists of register snapshots.
package history

import (
	"github.com/ezrec/binc/word"
)

const (
	DEFAULT_LIMIT = 100 // Default number of snapshots kept.
)

// History is a pair of snapshot stacks.
//
// The newest entry of the backward stack is always the current register
// state. Backward moves it to the forward stack and returns the entry below
// it, Forward moves it back.
type History struct {
	Limit    int   // Maximum number of backward snapshots, at least 1.
	backward Stack // Saved states, oldest first.
	forward  Stack // Undone states, most recently undone last.
}

// New creates a history holding at most limit snapshots.
func New(limit int) *History {
	return &History{Limit: limit}
}

func (h *History) limit() int {
	if h.Limit < 1 {
		return 1
	}
	return h.Limit
}

// Save records a copy of w as the current state, dropping the oldest
// snapshot when full. Any undone states are forgotten.
func (h *History) Save(w *word.Word) {
	for h.backward.Len()+1 > h.limit() {
		h.backward.Drop()
	}
	h.backward.Push(w.Clone())
	h.forward.Reset()
}

// Backward steps back one snapshot and returns a copy of it. At the oldest
// snapshot it stays put and returns that snapshot again. It returns nil if
// nothing was ever saved.
func (h *History) Backward() *word.Word {
	if h.backward.Len() > 1 {
		w, _ := h.backward.Pop()
		h.forward.Push(w)
	}

	w, ok := h.backward.Peek()
	if !ok {
		return nil
	}
	return w.Clone()
}

// Forward re-applies the most recently undone snapshot and returns a copy of
// it. With nothing to redo it returns the current snapshot, or nil if
// nothing was ever saved.
func (h *History) Forward() *word.Word {
	if w, ok := h.forward.Pop(); ok {
		h.backward.Push(w)
	}

	w, ok := h.backward.Peek()
	if !ok {
		return nil
	}
	return w.Clone()
}

// Len returns the number of backward and forward snapshots.
func (h *History) Len() (backward, forward int) {
	return h.backward.Len(), h.forward.Len()
}

// Reset forgets every snapshot.
func (h *History) Reset() {
	h.backward.Reset()
	h.forward.Reset()
}
