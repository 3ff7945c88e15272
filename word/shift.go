package word

import (
	"math/big"
)

// ShiftLeft shifts range r left by n bits. Bits leaving the top of the range
// are discarded, zeros enter at the bottom.
func (w *Word) ShiftLeft(r Range, n uint) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		if n >= uint(size) {
			return new(big.Int), false, nil
		}
		return new(big.Int).Lsh(a, n), false, nil
	})
}

// ShiftRightSigned shifts range r right by n bits, replicating the top bit of
// the range into the vacated positions.
func (w *Word) ShiftRightSigned(r Range, n uint) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		negative := a.Bit(size-1) == 1
		if n >= uint(size) {
			if negative {
				return mask(size), false, nil
			}
			return new(big.Int), false, nil
		}

		v := new(big.Int).Rsh(a, n)
		if negative {
			fill := mask(int(n))
			v.Or(v, fill.Lsh(fill, uint(size)-n))
		}
		return v, false, nil
	})
}

// ShiftRightUnsigned shifts range r right by n bits, filling with zeros.
func (w *Word) ShiftRightUnsigned(r Range, n uint) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		if n >= uint(size) {
			return new(big.Int), false, nil
		}
		return new(big.Int).Rsh(a, n), false, nil
	})
}

// RotateLeft rotates range r left by n bits, modulo the range width.
func (w *Word) RotateLeft(r Range, n uint) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		return rotate(a, size, n%uint(size)), false, nil
	})
}

// RotateRight rotates range r right by n bits, modulo the range width.
func (w *Word) RotateRight(r Range, n uint) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		n %= uint(size)
		return rotate(a, size, (uint(size)-n)%uint(size)), false, nil
	})
}

// rotate is a left rotation of a 'size' bit value by n < size bits.
func rotate(a *big.Int, size int, n uint) *big.Int {
	if n == 0 {
		return new(big.Int).Set(a)
	}

	hi := new(big.Int).Lsh(a, n)
	lo := new(big.Int).Rsh(a, uint(size)-n)
	hi.Or(hi, lo)
	return hi.And(hi, mask(size))
}
