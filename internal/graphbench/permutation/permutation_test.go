package permutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
)

func TestScenarioCount(t *testing.T) {
	tests := map[string]struct {
		selected int
		permute  bool
		want     int
		wantKind benchmarkerrors.Kind
	}{
		"no permute one backend":    {selected: 1, permute: false, want: 1},
		"no permute many backends":  {selected: 9, permute: false, want: 1},
		"no permute ignores size":   {selected: 50, permute: false, want: 1},
		"permute zero":              {selected: 0, permute: true, want: 1},
		"permute one":               {selected: 1, permute: true, want: 1},
		"permute three":             {selected: 3, permute: true, want: 6},
		"permute nine":              {selected: 9, permute: true, want: 362880},
		"permute twelve fits int32": {selected: 12, permute: true, want: 479001600},
		"permute thirteen overflow": {selected: 13, permute: true, wantKind: benchmarkerrors.ArithmeticOverflow},
		"negative":                  {selected: -1, permute: true, wantKind: benchmarkerrors.InvalidValue},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ScenarioCount(tc.selected, tc.permute)
			if tc.wantKind != benchmarkerrors.Unknown {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, benchmarkerrors.KindFromError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEnumerate(t *testing.T) {
	got := Enumerate([]string{"a", "b", "c"})
	assert.Equal(t, [][]string{
		{"a", "b", "c"},
		{"a", "c", "b"},
		{"b", "a", "c"},
		{"b", "c", "a"},
		{"c", "a", "b"},
		{"c", "b", "a"},
	}, got)
}

func TestEnumerate_CountMatchesScenarioCount(t *testing.T) {
	for n := 0; n <= 6; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i * 10
		}
		want, err := ScenarioCount(n, true)
		require.NoError(t, err)
		assert.Len(t, Enumerate(items), want)
	}
}

func TestEnumerate_DoesNotModifyInput(t *testing.T) {
	items := []int{3, 1, 2}
	orderings := Enumerate(items)
	orderings[0][0] = 42
	assert.Equal(t, []int{3, 1, 2}, items)
}

func TestEnumerate_Empty(t *testing.T) {
	assert.Equal(t, [][]int{{}}, Enumerate([]int{}))
}
