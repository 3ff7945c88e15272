// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package word

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	WIDTH_MIN = 8   // Narrowest register width.
	WIDTH_MAX = 512 // Widest register width.
)

var one = big.NewInt(1)

// mask returns a value with the low n bits set.
func mask(n int) *big.Int {
	m := new(big.Int).Lsh(one, uint(n))
	return m.Sub(m, one)
}

// pow2 returns 2^n.
func pow2(n int) *big.Int {
	return new(big.Int).Lsh(one, uint(n))
}

// RoundWidth maps a requested bit count to a register width: the smallest
// power of two in 8..512 that holds n bits. Zero maps to 8.
func RoundWidth(n int) (width int, err error) {
	if n < 0 || n > WIDTH_MAX {
		err = ErrWidth(n)
		return
	}

	width = WIDTH_MIN
	for width < n {
		width <<= 1
	}

	return
}

// Word is a fixed-width binary register.
type Word struct {
	mag    *big.Int // Backing value, only the low 'width' bits are used.
	width  int      // Effective width in bits.
	signed bool     // High bit of the effective width is a sign bit.
	carry  bool     // Carry out of the last add or subtract.
}

// New creates a zeroed register of at least the requested width.
func New(signed bool, width int) (w *Word, err error) {
	width, err = RoundWidth(width)
	if err != nil {
		return
	}

	w = &Word{
		mag:    new(big.Int),
		width:  width,
		signed: signed,
	}

	return
}

// FromLiteral parses an optionally negative digit string in the given radix.
//
// The width is the narrowest register width holding the magnitude. Negative
// non-zero literals are stored in two's complement at that width, and the
// result is signed only if the literal was negative.
func FromLiteral(text string, radix int) (w *Word, err error) {
	switch {
	case radix < 2:
		err = ErrRadixTooSmall
		return
	case radix > 37:
		err = ErrRadixTooBig
		return
	}

	negative := strings.HasPrefix(text, "-")
	digits := strings.TrimPrefix(text, "-")

	mag := new(big.Int)
	base := big.NewInt(int64(radix))
	digit := new(big.Int)
	for _, c := range digits {
		var n int
		switch {
		case c >= '0' && c <= '9':
			n = int(c - '0')
		case c >= 'a' && c <= 'z':
			n = int(c-'a') + 10
		case c >= 'A' && c <= 'Z':
			n = int(c-'A') + 10
		default:
			n = radix
		}
		if n >= radix {
			err = &ErrDigit{Digit: c, Radix: radix}
			return
		}
		mag.Mul(mag, base)
		mag.Add(mag, digit.SetInt64(int64(n)))
	}

	width, err := RoundWidth(mag.BitLen())
	if err != nil {
		return
	}

	if negative && mag.Sign() != 0 {
		mag.Sub(pow2(width), mag)
	}

	w = &Word{
		mag:    mag,
		width:  width,
		signed: negative,
	}
	w.trim()

	return
}

// FromChar creates an unsigned register holding the code point of r, sized
// to the UTF-8 encoding of r.
func FromChar(r rune) (w *Word) {
	width, _ := RoundWidth(utf8.RuneLen(r) * 8)

	w = &Word{
		mag:   big.NewInt(int64(r)),
		width: width,
	}

	return
}

// FromBig creates a register of the given width holding v, truncated to
// width bits. Negative values are stored in two's complement.
func FromBig(v *big.Int, signed bool, width int) (w *Word, err error) {
	w, err = New(signed, width)
	if err != nil {
		return
	}

	w.mag.And(v, mask(w.width))
	return
}

// Clone returns an independent copy of the register.
func (w *Word) Clone() *Word {
	return &Word{
		mag:    new(big.Int).Set(w.mag),
		width:  w.width,
		signed: w.signed,
		carry:  w.carry,
	}
}

// Equal reports whether two registers have the same value, width and
// signedness.
func (w *Word) Equal(other *Word) bool {
	return w.width == other.width &&
		w.signed == other.signed &&
		w.mag.Cmp(other.mag) == 0
}

// Width returns the effective width in bits.
func (w *Word) Width() int {
	return w.width
}

// Signed reports whether the top bit is interpreted as a sign.
func (w *Word) Signed() bool {
	return w.signed
}

// Carry returns the carry out of the last add or subtract.
func (w *Word) Carry() bool {
	return w.carry
}

// Negative reports whether the register is signed with its top bit set.
func (w *Word) Negative() bool {
	return w.signed && w.mag.Bit(w.width-1) == 1
}

// Big returns a copy of the raw bits.
func (w *Word) Big() *big.Int {
	return new(big.Int).Set(w.mag)
}

// Int returns the value of the register, negative when the register is
// signed and its top bit is set.
func (w *Word) Int() *big.Int {
	v := new(big.Int).Set(w.mag)
	if w.Negative() {
		v.Sub(v, pow2(w.width))
	}

	return v
}

// Uint64 returns the low 64 raw bits.
func (w *Word) Uint64() uint64 {
	return new(big.Int).And(w.mag, mask(64)).Uint64()
}

// trim re-asserts that no bits above the width are set.
func (w *Word) trim() {
	w.mag.And(w.mag, mask(w.width))
}

// Resolve maps a symbolic range to concrete bit positions, and checks that
// it lies within the register.
func (w *Word) Resolve(r Range) (high, low int, err error) {
	high = r.High.Resolve(w.width)
	low = r.Low.Resolve(w.width)

	if low < 0 || high < low || high >= w.width {
		err = &ErrRange{Range: r, Width: w.width}
	}

	return
}

// get extracts bits high..low.
func (w *Word) get(high, low int) *big.Int {
	v := new(big.Int).Rsh(w.mag, uint(low))
	return v.And(v, mask(high-low+1))
}

// set replaces bits high..low with the low bits of value.
func (w *Word) set(high, low int, value *big.Int) {
	field := new(big.Int).Lsh(mask(high-low+1), uint(low))
	w.mag.AndNot(w.mag, field)

	bits := new(big.Int).And(value, mask(high-low+1))
	w.mag.Or(w.mag, bits.Lsh(bits, uint(low)))
}

// Get returns the bits of range r, shifted down to bit zero.
func (w *Word) Get(r Range) (bits *big.Int, err error) {
	high, low, err := w.Resolve(r)
	if err != nil {
		return
	}

	bits = w.get(high, low)
	return
}

// Set writes the low bits of value into range r. Bits of value that do not
// fit the range are discarded.
func (w *Word) Set(r Range, value *big.Int) (err error) {
	high, low, err := w.Resolve(r)
	if err != nil {
		return
	}

	w.set(high, low, value)
	w.trim()
	return
}

// ExtendTo changes the width of the register. When widening a negative
// value the new high bits are filled with ones; narrowing truncates.
func (w *Word) ExtendTo(width int) {
	if width > w.width && w.Negative() {
		fill := new(big.Int).Lsh(mask(width-w.width), uint(w.width))
		w.mag.Or(w.mag, fill)
	}

	w.width = width
	w.trim()
}

// Convert reinterprets the register with a new width and signedness.
// Narrowing silently truncates, widening zero-extends.
func (w *Word) Convert(width int, signed bool) (err error) {
	width, err = RoundWidth(width)
	if err != nil {
		return
	}

	w.width = width
	w.signed = signed
	w.trim()
	return
}

// Negate replaces the register with its two's complement and marks it
// signed.
func (w *Word) Negate() {
	if w.mag.Sign() != 0 {
		w.mag.Sub(pow2(w.width), w.mag)
	}
	w.signed = true
	w.carry = false
	w.trim()
}

// Char renders the low 32 bits as a quoted character, or " ? " when they do
// not encode a printable character.
func (w *Word) Char() string {
	c := rune(new(big.Int).And(w.mag, mask(32)).Uint64())
	if !utf8.ValidRune(c) || unicode.IsControl(c) {
		return " ? "
	}

	return "'" + string(c) + "'"
}

// String returns a debugging representation of the register.
func (w *Word) String() string {
	sign := "u"
	if w.signed {
		sign = "s"
	}

	return fmt.Sprintf("%v%d:0x%v", sign, w.width, w.mag.Text(16))
}
