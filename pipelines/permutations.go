package pipelines

import (
	"cmp"
	"iter"
	"slices"
)

// Permutations yields the distinct orderings of set in lexicographic order.
// Yielded slices are not reused.
func Permutations[T cmp.Ordered](set []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(set) == 0 {
			return
		}
		perm := slices.Clone(set)
		slices.Sort(perm)
		for {
			if !yield(slices.Clone(perm)) {
				return
			}
			if !nextPermutation(perm) {
				return
			}
		}
	}
}

func nextPermutation[T cmp.Ordered](s []T) bool {
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	slices.Reverse(s[i+1:])
	return true
}
