package cachesize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
	"github.com/armadaproject/graphbench/internal/common/pointer"
)

func TestResolve(t *testing.T) {
	tests := map[string]struct {
		explicit []int
		count    *int
		factor   *float64
		want     []int
		wantKind benchmarkerrors.Kind
	}{
		"explicit list verbatim": {
			explicit: []int{10, 20, 40},
			want:     []int{10, 20, 40},
		},
		"explicit list keeps order and duplicates": {
			explicit: []int{40, 10, 10},
			want:     []int{40, 10, 10},
		},
		"generated doubling": {
			count:  pointer.Pointer(3),
			factor: pointer.Pointer(2.0),
			want:   []int{1000, 2000, 4000},
		},
		"generated rounds at each step": {
			count:  pointer.Pointer(4),
			factor: pointer.Pointer(1.001),
			want:   []int{1000, 1001, 1002, 1003},
		},
		"generated shrinking": {
			count:  pointer.Pointer(3),
			factor: pointer.Pointer(0.5),
			want:   []int{1000, 500, 250},
		},
		"generated single value": {
			count:  pointer.Pointer(1),
			factor: pointer.Pointer(3.0),
			want:   []int{1000},
		},
		"both forms": {
			explicit: []int{10},
			count:    pointer.Pointer(3),
			factor:   pointer.Pointer(2.0),
			wantKind: benchmarkerrors.AmbiguousCacheSpec,
		},
		"explicit and count only": {
			explicit: []int{10},
			count:    pointer.Pointer(3),
			wantKind: benchmarkerrors.AmbiguousCacheSpec,
		},
		"neither form": {
			wantKind: benchmarkerrors.AmbiguousCacheSpec,
		},
		"count without factor": {
			count:    pointer.Pointer(3),
			wantKind: benchmarkerrors.AmbiguousCacheSpec,
		},
		"factor without count": {
			factor:   pointer.Pointer(2.0),
			wantKind: benchmarkerrors.AmbiguousCacheSpec,
		},
		"empty explicit list": {
			explicit: []int{},
			wantKind: benchmarkerrors.AmbiguousCacheSpec,
		},
		"non-positive explicit value": {
			explicit: []int{10, 0},
			wantKind: benchmarkerrors.InvalidValue,
		},
		"zero count": {
			count:    pointer.Pointer(0),
			factor:   pointer.Pointer(2.0),
			wantKind: benchmarkerrors.InvalidValue,
		},
		"negative factor": {
			count:    pointer.Pointer(2),
			factor:   pointer.Pointer(-2.0),
			wantKind: benchmarkerrors.InvalidValue,
		},
		"NaN factor": {
			count:    pointer.Pointer(2),
			factor:   pointer.Pointer(math.NaN()),
			wantKind: benchmarkerrors.InvalidValue,
		},
		"overflow": {
			count:    pointer.Pointer(40),
			factor:   pointer.Pointer(10.0),
			wantKind: benchmarkerrors.ArithmeticOverflow,
		},
		"factor shrinks sizes below 1": {
			count:    pointer.Pointer(4),
			factor:   pointer.Pointer(0.0001),
			wantKind: benchmarkerrors.InvalidValue,
		},
		"count at limit": {
			count:  pointer.Pointer(MaxCount),
			factor: pointer.Pointer(1.0),
		},
		"count above limit": {
			count:    pointer.Pointer(2_000_000_000),
			factor:   pointer.Pointer(1.0),
			wantKind: benchmarkerrors.InvalidValue,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Resolve(tc.explicit, tc.count, tc.factor)
			if tc.wantKind != benchmarkerrors.Unknown {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, benchmarkerrors.KindFromError(err))
				return
			}
			require.NoError(t, err)
			if tc.want == nil {
				assert.Len(t, got, *tc.count)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	first, err := Resolve(nil, pointer.Pointer(6), pointer.Pointer(1.7))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Resolve(nil, pointer.Pointer(6), pointer.Pointer(1.7))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	require.Len(t, first, 6)
	for i := 1; i < len(first); i++ {
		assert.InDelta(t, float64(first[i-1])*1.7, float64(first[i]), 0.5)
	}
}

func TestNewSpec_TaggedUnion(t *testing.T) {
	spec, err := NewSpec(DefaultKeys, []int{5, 6}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Explicit{Values: []int{5, 6}}, spec)

	spec, err = NewSpec(DefaultKeys, nil, pointer.Pointer(2), pointer.Pointer(1.5))
	require.NoError(t, err)
	assert.Equal(t, Generated{Count: 2, IncrementFactor: 1.5}, spec)
}

func TestNewSpec_ErrorsNameKeys(t *testing.T) {
	keys := Keys{Values: "cacheValue", Count: "cacheValuesCount", IncrementFactor: "cacheIncrementFactor"}

	_, err := NewSpec(keys, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cacheValue")
	assert.Contains(t, err.Error(), "cacheIncrementFactor")

	_, err = NewSpec(keys, nil, pointer.Pointer(-1), pointer.Pointer(2.0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"cacheValuesCount"`)
}

func TestExplicit_GenerateCopies(t *testing.T) {
	input := []int{1, 2}
	spec, err := NewSpec(DefaultKeys, input, nil, nil)
	require.NoError(t, err)
	input[0] = 99

	values, err := spec.Generate(DefaultKeys, DefaultBase)
	require.NoError(t, err)
	values[1] = 42

	again, err := spec.Generate(DefaultKeys, DefaultBase)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, again)
}

func TestGenerated_CustomBase(t *testing.T) {
	values, err := Generated{Count: 3, IncrementFactor: 1.5}.Generate(DefaultKeys, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 15, 23}, values)

	_, err = Generated{Count: 3, IncrementFactor: 1.5}.Generate(DefaultKeys, 0)
	assert.Equal(t, benchmarkerrors.InvalidValue, benchmarkerrors.KindFromError(err))
}

func TestGenerated_RejectsBadSequences(t *testing.T) {
	keys := Keys{Values: "cacheValue", Count: "cacheValuesCount", IncrementFactor: "cacheIncrementFactor"}
	tests := map[string]struct {
		spec      Generated
		base      int
		wantField string
	}{
		"count above limit": {
			spec:      Generated{Count: 2_000_000_000, IncrementFactor: 1},
			base:      DefaultBase,
			wantField: "cacheValuesCount",
		},
		"zero count": {
			spec:      Generated{Count: 0, IncrementFactor: 2},
			base:      DefaultBase,
			wantField: "cacheValuesCount",
		},
		"first value below 1 after rounding": {
			spec:      Generated{Count: 2, IncrementFactor: 0.4},
			base:      1,
			wantField: "cacheIncrementFactor",
		},
		"decays to zero": {
			spec:      Generated{Count: 4, IncrementFactor: 0.0001},
			base:      DefaultBase,
			wantField: "cacheIncrementFactor",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			values, err := tc.spec.Generate(keys, tc.base)
			require.Error(t, err)
			assert.Nil(t, values)
			assert.Equal(t, benchmarkerrors.InvalidValue, benchmarkerrors.KindFromError(err))
			assert.Contains(t, err.Error(), tc.wantField)
		})
	}
}

func TestGenerated_ShrinkingStopsAtOne(t *testing.T) {
	values, err := Generated{Count: 3, IncrementFactor: 0.5}.Generate(DefaultKeys, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 1}, values)
}
