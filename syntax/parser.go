// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package syntax

import (
	"iter"
	"math"
	"math/big"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/binc/operator"
	"github.com/ezrec/binc/word"
)

const (
	RADIX_MAX = 37 // Widest radix notated with digits and letters.
)

// Parser turns command text into an operator.Command.
type Parser struct {
	// Defines are integer names visible inside $() expressions, in
	// addition to WIDTH_MIN and WIDTH_MAX.
	Defines iter.Seq2[string, *big.Int]
}

// Parse parses a command with no extra expression defines.
func Parse(text string) (cmd operator.Command, err error) {
	return (&Parser{}).Parse(text)
}

// Parse parses one command:
//
//	Command      := Accessor? Operator? RightOperand?
//	Accessor     := '[' Index? (':' Index?)? ']'
//	Operator     := token ('=')?
//	RightOperand := Accessor | Literal | CharLiteral | Expression
//
// A missing accessor selects the whole register, and a missing operator is
// assignment. The register is not consulted; bit ranges stay symbolic.
func (p *Parser) Parse(text string) (cmd operator.Command, err error) {
	log.Tracef("syntax: parse %q", text)

	s := newScanner(text)
	defer func() {
		if err != nil {
			err = &Error{Command: text, Offset: s.offset, Err: err}
		}
	}()

	left, ok, err := accessor(s)
	if err != nil {
		return
	}
	if !ok {
		left = word.Full
	}

	kind, ok := operatorOf(s)
	if !ok {
		kind = operator.ASSIGN
	}

	right, err := p.rvalue(s)
	if err != nil {
		return
	}

	if !s.done() {
		log.Tracef("syntax: trailing %q", s.rest())
		err = ErrTrailing
		return
	}

	cmd = operator.Command{
		Left:  operator.RangeOperand{Range: left},
		Kind:  kind,
		Right: right,
	}

	log.Tracef("syntax: parsed %v", cmd)
	return
}

// index reads a decimal bit number.
func index(s *scanner) (n int, ok bool, err error) {
	for {
		c, more := s.current()
		if !more || c < '0' || c > '9' {
			return
		}
		if n > (math.MaxInt32-9)/10 {
			err = ErrIndex
			return
		}
		n = n*10 + int(c-'0')
		ok = true
		s.next()
	}
}

// bitRange reads the inside of an accessor. '[i]' is the single bit i.
func bitRange(s *scanner) (r word.Range, err error) {
	high, ok, err := index(s)
	if err != nil {
		return
	}

	switch {
	case s.is(':'):
		r.High = word.Highest
		if ok {
			r.High = word.At(high)
		}
		s.next()
		var low int
		low, ok, err = index(s)
		if err != nil {
			return
		}
		r.Low = word.Lowest
		if ok {
			r.Low = word.At(low)
		}
	case ok:
		r = word.Bit(high)
	default:
		r = word.Full
	}

	return
}

// accessor reads an optional '[...]' bit range.
func accessor(s *scanner) (r word.Range, ok bool, err error) {
	if !s.is('[') {
		return
	}
	s.next()

	r, err = bitRange(s)
	if err != nil {
		return
	}

	if !s.is(']') {
		err = ErrAccessor
		return
	}
	s.next()

	ok = true
	return
}

// operatorOf reads an optional operator token, longest match first, and an
// optional compound '='.
func operatorOf(s *scanner) (kind operator.Kind, ok bool) {
	for _, tok := range operator.Tokens {
		if s.match(tok.Text) {
			s.advance(len([]rune(tok.Text)))
			kind, ok = tok.Kind, true
			break
		}
	}

	if ok && kind.Compound() && s.is('=') {
		s.next()
	}

	return
}

// rvalue reads the optional right operand.
func (p *Parser) rvalue(s *scanner) (op operator.Operand, err error) {
	c, ok := s.current()
	if !ok {
		op = operator.Empty{}
		return
	}

	switch {
	case c == '[':
		var r word.Range
		r, _, err = accessor(s)
		if err != nil {
			return
		}
		op = operator.RangeOperand{Range: r}
	case c >= '1' && c <= '9':
		op, err = number(s, 10, false)
	case c == '0':
		s.next()
		op, err = radixNumber(s, false)
	case c == '-':
		s.next()
		op, err = p.negative(s)
	case c == '\'':
		op, err = letter(s)
	case c == '$':
		op, err = p.expression(s, false)
	default:
		log.Tracef("syntax: no rvalue at %q", s.rest())
		err = ErrRvalue
	}

	return
}

func (p *Parser) negative(s *scanner) (op operator.Operand, err error) {
	c, _ := s.current()
	switch {
	case c >= '1' && c <= '9':
		op, err = number(s, 10, true)
	case c == '0':
		s.next()
		op, err = radixNumber(s, true)
	case c == '$':
		op, err = p.expression(s, true)
	default:
		err = ErrNegative
	}

	return
}

// radixNumber reads the rest of a literal after its leading '0'.
func radixNumber(s *scanner, negative bool) (op operator.Operand, err error) {
	c, ok := s.current()
	if !ok {
		return literal("0", 10)
	}

	switch c {
	case 'b', 'B':
		s.next()
		return number(s, 2, negative)
	case 'o', 'O':
		s.next()
		return number(s, 8, negative)
	case 'd', 'D':
		s.next()
		return number(s, 10, negative)
	case 'h', 'H', 'x', 'X':
		s.next()
		return number(s, 16, negative)
	case '(':
		s.next()
		var radix int
		radix, ok, err = index(s)
		if err != nil {
			return
		}
		if !ok {
			err = ErrRadixEmpty
			return
		}
		if !s.is(')') {
			err = ErrRadixClose
			return
		}
		if radix > RADIX_MAX {
			err = word.ErrRadixTooBig
			return
		}
		s.next()
		return number(s, radix, negative)
	}

	switch {
	case c >= '0' && c <= '9':
		return number(s, 10, negative)
	case isLetter(c):
		err = ErrRadixLetter(c)
		return
	}

	// A lone zero.
	return literal("0", 10)
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c rune, radix int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case radix <= 16:
		return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	default:
		return isLetter(c)
	}
}

// number reads digits greedily and converts them in the given radix.
func number(s *scanner, radix int, negative bool) (op operator.Operand, err error) {
	var text strings.Builder
	if negative {
		text.WriteRune('-')
	}

	for {
		c, ok := s.current()
		if !ok || !isDigit(c, radix) {
			break
		}
		text.WriteRune(c)
		s.next()
	}

	log.Tracef("syntax: literal %q radix %d", text.String(), radix)
	return literal(text.String(), radix)
}

func literal(text string, radix int) (op operator.Operand, err error) {
	w, err := word.FromLiteral(text, radix)
	if err != nil {
		return
	}

	op = operator.LiteralOperand{Word: w}
	return
}

// letter reads a quoted character. Whitespace inside the quotes is
// significant.
func letter(s *scanner) (op operator.Operand, err error) {
	s.raw()

	c, ok := s.current()
	if !ok || c == '\'' {
		err = ErrCharLiteral
		return
	}
	s.next()

	if !s.is('\'') {
		err = ErrCharLiteral
		return
	}
	s.next()

	op = operator.LiteralOperand{Word: word.FromChar(c)}
	return
}
