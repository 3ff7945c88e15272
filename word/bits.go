package word

import (
	"math/big"
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"
)

// Random is the source of randomness for Shuffle and Randomize.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	Shuffle(n int, swap func(i, j int))
	Uint64() uint64
}

// globalRandom uses the math/rand/v2 top-level generator.
type globalRandom struct{}

func (globalRandom) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }
func (globalRandom) Uint64() uint64                     { return rand.Uint64() }

// toBitSet returns the low 'size' bits of a as a bit set.
func toBitSet(a *big.Int, size int) *bitset.BitSet {
	bs := bitset.New(uint(size))
	for n := range size {
		if a.Bit(n) == 1 {
			bs.Set(uint(n))
		}
	}

	return bs
}

// fromBitSet is the inverse of toBitSet.
func fromBitSet(bs *bitset.BitSet) *big.Int {
	v := new(big.Int)
	for n, ok := bs.NextSet(0); ok; n, ok = bs.NextSet(n + 1) {
		v.SetBit(v, int(n), 1)
	}

	return v
}

// Count returns the number of set (one == true) or clear bits in range r.
func (w *Word) Count(r Range, one bool) (count int, err error) {
	high, low, err := w.Resolve(r)
	if err != nil {
		return
	}
	size := high - low + 1

	count = int(toBitSet(w.get(high, low), size).Count())
	if !one {
		count = size - count
	}

	return
}

// Reverse reverses the bit order of range r.
func (w *Word) Reverse(r Range) error {
	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		in := toBitSet(a, size)
		out := bitset.New(uint(size))
		for n, ok := in.NextSet(0); ok; n, ok = in.NextSet(n + 1) {
			out.Set(uint(size-1) - n)
		}
		return fromBitSet(out), false, nil
	})
}

// Shuffle randomly permutes the bit positions of range r. A nil rng uses the
// math/rand/v2 global generator.
func (w *Word) Shuffle(r Range, rng Random) error {
	if rng == nil {
		rng = globalRandom{}
	}

	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		in := toBitSet(a, size)
		order := make([]uint, size)
		for n := range order {
			order[n] = uint(n)
		}
		rng.Shuffle(size, func(i, j int) { order[i], order[j] = order[j], order[i] })

		out := bitset.New(uint(size))
		for n, from := range order {
			if in.Test(from) {
				out.Set(uint(n))
			}
		}
		return fromBitSet(out), false, nil
	})
}

// Randomize overwrites range r with random bits. A nil rng uses the
// math/rand/v2 global generator.
func (w *Word) Randomize(r Range, rng Random) error {
	if rng == nil {
		rng = globalRandom{}
	}

	return w.apply(r, func(a *big.Int, size int) (*big.Int, bool, error) {
		v := new(big.Int)
		chunk := new(big.Int)
		for n := 0; n < size; n += 64 {
			chunk.SetUint64(rng.Uint64())
			v.Or(v, chunk.Lsh(chunk, uint(n)))
		}
		return v, false, nil
	})
}
