package expansion

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, exp Expansion) []string {
	t.Helper()
	n, ok := exp.Size()
	require.True(t, ok, "expected a bounded expansion")

	var out []string
	for i := 0; i < n; i++ {
		v, ok := exp.Get(i)
		require.True(t, ok, "index %d should be in range", i)
		out = append(out, v)
	}

	_, ok = exp.Get(n)
	require.False(t, ok, "index %d should be out of range", n)
	return out
}

func TestCharRange(t *testing.T) {
	tests := []struct {
		name  string
		exp   CharRange
		want  []string
		wantN int
	}{
		{
			name:  "ascending",
			exp:   CharRange{First: 'a', Second: 'e'},
			want:  []string{"a", "b", "c", "d", "e"},
			wantN: 5,
		},
		{
			name:  "descending",
			exp:   CharRange{First: 'C', Second: 'A'},
			want:  []string{"C", "B", "A"},
			wantN: 3,
		},
		{
			name:  "single",
			exp:   CharRange{First: 'q', Second: 'q'},
			want:  []string{"q"},
			wantN: 1,
		},
		{
			name:  "prefix and suffix",
			exp:   CharRange{Prefix: "<", Suffix: ">", First: 'x', Second: 'y'},
			want:  []string{"<x>", "<y>"},
			wantN: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, _ := tt.exp.Size()
			require.Equal(t, tt.wantN, n)
			require.Equal(t, tt.want, collect(t, tt.exp))
		})
	}
}

func TestIntRange(t *testing.T) {
	tests := []struct {
		name string
		exp  IntRange
		want []string
	}{
		{
			name: "ascending",
			exp:  IntRange{First: 1, Second: 4},
			want: []string{"1", "2", "3", "4"},
		},
		{
			name: "descending",
			exp:  IntRange{First: 10, Second: 8},
			want: []string{"10", "9", "8"},
		},
		{
			name: "zero based",
			exp:  IntRange{First: 0, Second: 2},
			want: []string{"0", "1", "2"},
		},
		{
			name: "affixes",
			exp:  IntRange{Prefix: "slot", Suffix: "x", First: 9, Second: 11},
			want: []string{"slot9x", "slot10x", "slot11x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, collect(t, tt.exp))
		})
	}
}

func TestRangeSizeMatchesDistance(t *testing.T) {
	for _, bounds := range [][2]int{{0, 0}, {3, 9}, {9, 3}, {0, 99}, {100, 1}} {
		exp := IntRange{First: bounds[0], Second: bounds[1]}
		n, ok := exp.Size()
		require.True(t, ok)

		want := bounds[1] - bounds[0]
		if want < 0 {
			want = -want
		}
		require.Equal(t, want+1, n, "bounds %v", bounds)

		sign := 1
		if bounds[1] < bounds[0] {
			sign = -1
		}
		for k := 0; k < n; k++ {
			v, ok := exp.Get(k)
			require.True(t, ok)
			require.Equal(t, strconv.Itoa(bounds[0]+k*sign), v)
		}
	}
}

func TestRange_NegativeIndex(t *testing.T) {
	_, ok := IntRange{First: 1, Second: 3}.Get(-1)
	require.False(t, ok)

	_, ok = CharRange{First: 'a', Second: 'c'}.Get(-1)
	require.False(t, ok)
}

func TestList(t *testing.T) {
	exp := List{Prefix: "[", Suffix: "]", Elements: []string{"b", "a", "b"}}

	n, ok := exp.Size()
	require.True(t, ok)
	require.Equal(t, 3, n)
	require.Equal(t, []string{"[b]", "[a]", "[b]"}, collect(t, exp))

	_, ok = exp.Get(-1)
	require.False(t, ok)
}

func TestLiteral(t *testing.T) {
	exp := Literal{Text: "give "}

	_, ok := exp.Size()
	require.False(t, ok, "literals are unbounded")

	for _, i := range []int{0, 1, 50, -3} {
		v, ok := exp.Get(i)
		require.True(t, ok)
		require.Equal(t, "give ", v)
	}
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "character range", CharRange{}.Kind().String())
	require.Equal(t, "integer range", IntRange{}.Kind().String())
	require.Equal(t, "list", List{}.Kind().String())
	require.Equal(t, "literal", Literal{}.Kind().String())
}
