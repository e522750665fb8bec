package internal

import (
	"iter"
)

// IterSeqEnumerate pairs each value of a sequence with its zero-based position.
func IterSeqEnumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := 0
		for val := range seq {
			if !yield(n, val) {
				return // Stop if the consumer stops
			}
			n++
		}
	}
}
