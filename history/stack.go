package history

import (
	"github.com/ezrec/binc/word"
)

// Stack is a list of register snapshots, newest last.
type Stack struct {
	Data []*word.Word
}

func (s *Stack) Push(w *word.Word) {
	s.Data = append(s.Data, w)
}

func (s *Stack) Pop() (w *word.Word, ok bool) {
	w, ok = s.Peek()
	if ok {
		s.Data[len(s.Data)-1] = nil
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Peek() (w *word.Word, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// Drop discards the oldest snapshot.
func (s *Stack) Drop() {
	if s.Empty() {
		return
	}

	s.Data[0] = nil
	s.Data = s.Data[1:]
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Len() int {
	return len(s.Data)
}

func (s *Stack) Reset() {
	clear(s.Data)
	s.Data = s.Data[:0]
}
