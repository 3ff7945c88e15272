package word

import (
	"strconv"
)

// IndexKind selects how an Index is resolved against a register width.
type IndexKind int

// Index kinds: an explicit bit number, the most significant bit of the
// register, or bit zero.
//
//go:generate go tool stringer -linecomment -type=IndexKind
const (
	INDEX_AT      = IndexKind(0) // at
	INDEX_HIGHEST = IndexKind(1) // highest
	INDEX_LOWEST  = IndexKind(2) // lowest
)

// Index is a symbolic bit position.
type Index struct {
	Kind IndexKind
	N    int // Bit number, for INDEX_AT only.
}

var (
	Highest = Index{Kind: INDEX_HIGHEST}
	Lowest  = Index{Kind: INDEX_LOWEST}
)

// At returns the Index of bit n.
func At(n int) Index {
	return Index{Kind: INDEX_AT, N: n}
}

// Resolve maps the index to a concrete bit position for a register of the
// given width.
func (idx Index) Resolve(width int) int {
	switch idx.Kind {
	case INDEX_HIGHEST:
		return width - 1
	case INDEX_LOWEST:
		return 0
	default:
		return idx.N
	}
}

func (idx Index) String() string {
	if idx.Kind == INDEX_AT {
		return strconv.Itoa(idx.N)
	}

	return ""
}

// Range is an inclusive, symbolic span of bits from High down to Low.
type Range struct {
	High Index
	Low  Index
}

// Full is the range of every bit in the register.
var Full = Range{High: Highest, Low: Lowest}

// Bit returns the single-bit range [n:n].
func Bit(n int) Range {
	return Range{High: At(n), Low: At(n)}
}

// Span returns the range [high:low].
func Span(high, low int) Range {
	return Range{High: At(high), Low: At(low)}
}

// IsFull reports whether the range is symbolically the whole register.
func (r Range) IsFull() bool {
	return r.High.Kind == INDEX_HIGHEST && r.Low.Kind == INDEX_LOWEST
}

func (r Range) String() string {
	return "[" + r.High.String() + ":" + r.Low.String() + "]"
}
