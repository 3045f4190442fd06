package permutation

import (
	"math"

	"github.com/pkg/errors"

	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
)

// ScenarioCount returns the number of benchmark orderings to run for selected backends.
// Without permutation a single ordering is run; with permutation every ordering is, i.e. selected!.
// Counts that do not fit in a signed 32-bit integer are reported as ArithmeticOverflow.
func ScenarioCount(selected int, permute bool) (int, error) {
	if selected < 0 {
		return 0, errors.WithStack(&benchmarkerrors.ErrInvalidValue{Field: "selected backends", Value: selected, Message: "must be non-negative"})
	}
	if !permute {
		return 1, nil
	}
	result := int64(1)
	for i := int64(2); i <= int64(selected); i++ {
		result *= i
		if result > math.MaxInt32 {
			return 0, errors.WithStack(&benchmarkerrors.ErrArithmeticOverflow{Operation: "factorial", Operand: selected})
		}
	}
	return int(result), nil
}

// Enumerate returns every ordering of items. Orderings are produced in lexicographic order of
// item positions, so the first ordering is items itself and the output is deterministic.
// Enumerate does not modify items.
func Enumerate[T any](items []T) [][]T {
	n := len(items)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	var result [][]T
	for {
		ordering := make([]T, n)
		for i, idx := range indices {
			ordering[i] = items[idx]
		}
		result = append(result, ordering)
		if !nextPermutation(indices) {
			return result
		}
	}
}

// nextPermutation rearranges indices into the next lexicographic permutation, returning false after the last one.
func nextPermutation(indices []int) bool {
	i := len(indices) - 2
	for i >= 0 && indices[i] >= indices[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(indices) - 1
	for indices[j] <= indices[i] {
		j--
	}
	indices[i], indices[j] = indices[j], indices[i]
	for l, r := i+1, len(indices)-1; l < r; l, r = l+1, r-1 {
		indices[l], indices[r] = indices[r], indices[l]
	}
	return true
}
