package syntax

import (
	"unicode"
)

// scanner walks a command one character at a time. Whitespace between
// characters is skipped unless a raw step is asked for.
type scanner struct {
	source []rune
	offset int
}

func newScanner(text string) (s *scanner) {
	s = &scanner{source: []rune(text)}
	s.skip()
	return
}

func (s *scanner) skip() {
	for s.offset < len(s.source) && unicode.IsSpace(s.source[s.offset]) {
		s.offset++
	}
}

// current returns the character under the cursor.
func (s *scanner) current() (c rune, ok bool) {
	if s.offset >= len(s.source) {
		return
	}

	return s.source[s.offset], true
}

// is reports whether the character under the cursor is c.
func (s *scanner) is(c rune) bool {
	cur, ok := s.current()
	return ok && cur == c
}

// next steps over the current character and any whitespace after it.
func (s *scanner) next() {
	s.raw()
	s.skip()
}

// raw steps over the current character only.
func (s *scanner) raw() {
	if s.offset < len(s.source) {
		s.offset++
	}
}

// match reports whether seq appears verbatim at the cursor.
func (s *scanner) match(seq string) bool {
	n := s.offset
	for _, c := range seq {
		if n >= len(s.source) || s.source[n] != c {
			return false
		}
		n++
	}

	return true
}

// advance steps over n characters, then any whitespace.
func (s *scanner) advance(n int) {
	s.offset = min(s.offset+n, len(s.source))
	s.skip()
}

// done reports whether only whitespace remains.
func (s *scanner) done() bool {
	return s.offset >= len(s.source)
}

// rest returns the unconsumed text.
func (s *scanner) rest() string {
	return string(s.source[s.offset:])
}
