package word

import (
	"math"
	"math/big"
)

// rangeOp computes a new value for a sub-range.
//
// The operation receives the current bits of the range (shifted down to bit
// zero) and the width of the range. It returns the new bits, which are
// masked to the range width before being written back, and the carry out.
type rangeOp func(a *big.Int, size int) (result *big.Int, carry bool, err error)

// apply runs op against range r. The register is untouched if either the
// range or the operation is invalid.
func (w *Word) apply(r Range, op rangeOp) (err error) {
	high, low, err := w.Resolve(r)
	if err != nil {
		return
	}

	result, carry, err := op(w.get(high, low), high-low+1)
	if err != nil {
		return
	}

	w.set(high, low, result)
	w.carry = carry
	w.trim()
	return
}

// Add adds b to range r, wrapping at the range width.
func (w *Word) Add(r Range, b *big.Int) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		sum := new(big.Int).Add(a, b)
		return sum, sum.BitLen() > size, nil
	})
}

// Sub subtracts b from range r, wrapping at the range width.
func (w *Word) Sub(r Range, b *big.Int) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		return new(big.Int).Sub(a, b), a.Cmp(b) < 0, nil
	})
}

// Mul multiplies range r by b, wrapping at the range width.
func (w *Word) Mul(r Range, b *big.Int) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		return new(big.Int).Mul(a, b), false, nil
	})
}

// Div divides range r by b.
func (w *Word) Div(r Range, b *big.Int) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		if b.Sign() == 0 {
			return nil, false, ErrDivideByZero
		}
		return new(big.Int).Quo(a, b), false, nil
	})
}

// Mod replaces range r with its remainder modulo b.
func (w *Word) Mod(r Range, b *big.Int) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		if b.Sign() == 0 {
			return nil, false, ErrDivideByZero
		}
		return new(big.Int).Rem(a, b), false, nil
	})
}

// Pow raises range r to the power e, wrapping at the range width.
func (w *Word) Pow(r Range, e *big.Int) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		return new(big.Int).Exp(a, e, pow2(size)), false, nil
	})
}

// Root replaces range r with its integer n-th root, rounded down.
func (w *Word) Root(r Range, n *big.Int) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		if n.Sign() == 0 {
			return nil, false, ErrRootZero
		}
		return root(a, n), false, nil
	})
}

// root finds x with x^n <= a < (x+1)^n. The estimate exp(ln(a)/n) seeds an
// integer Newton iteration, which needs a starting point at or above the
// true root.
func root(a, n *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}

	// Any n-th root with 2^n > a is one.
	if n.Cmp(big.NewInt(int64(a.BitLen()))) >= 0 {
		return big.NewInt(1)
	}
	k := n.Int64()

	af, _ := new(big.Float).SetInt(a).Float64()
	x, _ := big.NewFloat(math.Exp(math.Log(af) / float64(k))).Int(nil)
	x.Add(x, one)
	if new(big.Int).Exp(x, n, nil).Cmp(a) <= 0 {
		x = pow2((a.BitLen() + int(k) - 1) / int(k))
	}

	km1 := big.NewInt(k - 1)
	for {
		// y = ((k-1)*x + a/x^(k-1)) / k
		y := new(big.Int).Exp(x, km1, nil)
		y.Quo(a, y)
		y.Add(y, new(big.Int).Mul(km1, x))
		y.Quo(y, n)
		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}

// Xor exclusive-ors range r with b.
func (w *Word) Xor(r Range, b *big.Int) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		return new(big.Int).Xor(a, b), false, nil
	})
}

// And ands range r with b.
func (w *Word) And(r Range, b *big.Int) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		return new(big.Int).And(a, b), false, nil
	})
}

// Or ors range r with b.
func (w *Word) Or(r Range, b *big.Int) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		return new(big.Int).Or(a, b), false, nil
	})
}

// Not complements range r.
func (w *Word) Not(r Range) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		return new(big.Int).Not(a), false, nil
	})
}
