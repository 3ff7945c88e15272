// Package internal holds helpers shared by the binc packages.
package internal

import (
	"iter"
)

// Concat2 yields every pair of each sequence in turn. Nil sequences are
// skipped.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
