// Package cachesize works out the sequence of cache sizes the clustering benchmark is run with.
//
// The sizes are given in exactly one of two forms:
//
//   - Explicit: a list of sizes, used verbatim (order and duplicates preserved).
//   - Generated: a (count, increment factor) pair. The sequence starts at a base value
//     (DefaultBase unless overridden) and every following value is the previous one multiplied
//     by the increment factor, rounded to the nearest integer (halves away from zero) at each step.
//     With base 1000, count 3 and factor 2.0 the sequence is [1000, 2000, 4000].
//     Count is at most MaxCount, and a factor that shrinks a value below 1 is an InvalidValue error.
//
// Supplying both forms, or neither form completely, is an AmbiguousCacheSpec error.
package cachesize

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
)

const (
	// DefaultBase is the first value of a generated sequence.
	DefaultBase = 1000
	// MaxCount bounds the length of a generated sequence.
	MaxCount = 1000
)

// Keys names the settings the two forms are read from, for error messages.
type Keys struct {
	Values          string
	Count           string
	IncrementFactor string
}

// DefaultKeys are the hierarchical settings keys.
var DefaultKeys = Keys{
	Values:          "cache-values",
	Count:           "cache-values-count",
	IncrementFactor: "cache-increment-factor",
}

// Spec is one of Explicit or Generated.
type Spec interface {
	// Generate returns the cache sizes described by the spec.
	// keys and base are only used by Generated specs.
	Generate(keys Keys, base int) ([]int, error)
	isCacheSpec()
}

// Explicit lists the cache sizes to benchmark.
type Explicit struct {
	Values []int
}

func (Explicit) isCacheSpec() {}

func (e Explicit) Generate(_ Keys, _ int) ([]int, error) {
	return append([]int(nil), e.Values...), nil
}

// Generated describes a geometric sequence of Count cache sizes.
type Generated struct {
	Count           int
	IncrementFactor float64
}

func (Generated) isCacheSpec() {}

func (g Generated) Generate(keys Keys, base int) ([]int, error) {
	if base <= 0 {
		return nil, errors.WithStack(&benchmarkerrors.ErrInvalidValue{Field: "cache base", Value: base, Message: "must be positive"})
	}
	if err := validateCount(keys, g.Count); err != nil {
		return nil, err
	}
	values := make([]int, 0, g.Count)
	current := float64(base)
	for i := 0; i < g.Count; i++ {
		if i > 0 {
			current = math.Round(current * g.IncrementFactor)
		}
		if current > math.MaxInt32 {
			return nil, errors.WithStack(&benchmarkerrors.ErrArithmeticOverflow{
				Operation: "cache size generation",
				Operand:   fmt.Sprintf("base %d, factor %g, step %d", base, g.IncrementFactor, i),
			})
		}
		if current < 1 {
			return nil, errors.WithStack(&benchmarkerrors.ErrInvalidValue{
				Field:   keys.IncrementFactor,
				Value:   g.IncrementFactor,
				Message: fmt.Sprintf("cache size at step %d rounds to %g, sizes must be at least 1", i, current),
			})
		}
		values = append(values, int(current))
	}
	return values, nil
}

// NewSpec builds the Spec for a clustering run. explicit is nil when no explicit list was supplied;
// count and factor are nil when absent.
func NewSpec(keys Keys, explicit []int, count *int, factor *float64) (Spec, error) {
	generating := count != nil || factor != nil
	switch {
	case explicit != nil && generating:
		return nil, errors.WithStack(&benchmarkerrors.ErrAmbiguousCacheSpec{
			Message: fmt.Sprintf("%s cannot be combined with %s/%s", keys.Values, keys.Count, keys.IncrementFactor),
		})
	case explicit != nil:
		if len(explicit) == 0 {
			return nil, errors.WithStack(&benchmarkerrors.ErrAmbiguousCacheSpec{
				Message: fmt.Sprintf("%s is empty", keys.Values),
			})
		}
		for _, v := range explicit {
			if v <= 0 {
				return nil, errors.WithStack(&benchmarkerrors.ErrInvalidValue{Field: keys.Values, Value: v, Message: "cache sizes must be positive"})
			}
		}
		return Explicit{Values: append([]int(nil), explicit...)}, nil
	case count != nil && factor != nil:
		if err := validateCount(keys, *count); err != nil {
			return nil, err
		}
		if !(*factor > 0) || math.IsInf(*factor, 0) {
			return nil, errors.WithStack(&benchmarkerrors.ErrInvalidValue{Field: keys.IncrementFactor, Value: *factor, Message: "must be a positive number"})
		}
		return Generated{Count: *count, IncrementFactor: *factor}, nil
	default:
		return nil, errors.WithStack(&benchmarkerrors.ErrAmbiguousCacheSpec{
			Message: fmt.Sprintf("must provide %s or both %s and %s", keys.Values, keys.Count, keys.IncrementFactor),
		})
	}
}

// Resolve returns the cache sizes for the given inputs, generating them from DefaultBase when needed.
func Resolve(explicit []int, count *int, factor *float64) ([]int, error) {
	spec, err := NewSpec(DefaultKeys, explicit, count, factor)
	if err != nil {
		return nil, err
	}
	return spec.Generate(DefaultKeys, DefaultBase)
}

func validateCount(keys Keys, count int) error {
	if count <= 0 {
		return errors.WithStack(&benchmarkerrors.ErrInvalidValue{Field: keys.Count, Value: count, Message: "must be positive"})
	}
	if count > MaxCount {
		return errors.WithStack(&benchmarkerrors.ErrInvalidValue{Field: keys.Count, Value: count, Message: fmt.Sprintf("must be at most %d", MaxCount)})
	}
	return nil
}
