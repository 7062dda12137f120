package expansion

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/fanout/internal/usage"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		max  int
		want [][]string
	}{
		{
			name: "list substitutes each element in order",
			args: []string{"give", "{a,b}", "sword"},
			max:  100,
			want: [][]string{
				{"give", "a", "sword"},
				{"give", "b", "sword"},
			},
		},
		{
			name: "two lists advance in lockstep",
			args: []string{"tp", "{a,b}", "{1,2}"},
			max:  100,
			want: [][]string{
				{"tp", "a", "1"},
				{"tp", "b", "2"},
			},
		},
		{
			name: "range and list of equal size",
			args: []string{"kit", "{1..3}", "{iron,gold,diamond}"},
			max:  100,
			want: [][]string{
				{"kit", "1", "iron"},
				{"kit", "2", "gold"},
				{"kit", "3", "diamond"},
			},
		},
		{
			name: "pattern glued to text",
			args: []string{"warp", "spawn{1..3}"},
			max:  100,
			want: [][]string{
				{"warp", "spawn1"},
				{"warp", "spawn2"},
				{"warp", "spawn3"},
			},
		},
		{
			name: "descending character range",
			args: []string{"row", "{c..a}"},
			max:  100,
			want: [][]string{{"row", "c"}, {"row", "b"}, {"row", "a"}},
		},
		{
			name: "list entries may span arguments",
			args: []string{"say", "{hello", "world,bye}"},
			max:  100,
			want: [][]string{
				{"say", "hello", "world"},
				{"say", "bye"},
			},
		},
		{
			name: "literal braces survive next to an expansion",
			args: []string{"say", "{hi}", "{1,2}"},
			max:  100,
			want: [][]string{
				{"say", "{hi}", "1"},
				{"say", "{hi}", "2"},
			},
		},
		{
			name: "no pattern runs once",
			args: []string{"give", "alice", "sword"},
			max:  100,
			want: [][]string{{"give", "alice", "sword"}},
		},
		{
			name: "size equal to the cap",
			args: []string{"n", "{1..3}"},
			max:  3,
			want: [][]string{{"n", "1"}, {"n", "2"}, {"n", "3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.args, tt.max)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Expand(%q) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func TestExpand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		max      int
		wantKind usage.ErrorKind
		wantMsg  string
	}{
		{
			name:     "over the cap",
			args:     []string{"n", "{1..101}"},
			max:      100,
			wantKind: usage.ErrTooManyEnumerations,
			wantMsg:  "Too many attempted enumerations. The maximum amount is 100!",
		},
		{
			name:     "huge range is rejected before building",
			args:     []string{"n", "{0..2147483647}"},
			max:      100,
			wantKind: usage.ErrTooManyEnumerations,
			wantMsg:  "Too many attempted enumerations. The maximum amount is 100!",
		},
		{
			name:     "unequal sizes report both",
			args:     []string{"x", "{a,b}", "{1..3}"},
			max:      100,
			wantKind: usage.ErrUnmatchedExpansionLengths,
			wantMsg:  "Please ensure all expansions are of equal length (2 != 3)",
		},
		{
			name:     "cap is checked before sizes",
			args:     []string{"x", "{1..200}", "{a,b}"},
			max:      100,
			wantKind: usage.ErrTooManyEnumerations,
			wantMsg:  "Too many attempted enumerations. The maximum amount is 100!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.args, tt.max)
			require.Error(t, err)
			require.Nil(t, got)

			var ue *usage.Error
			require.True(t, errors.As(err, &ue))
			require.Equal(t, tt.wantKind, ue.Kind)
			require.Equal(t, tt.wantMsg, ue.Message)
		})
	}
}

func TestSet_ListCountMatchesElements(t *testing.T) {
	elements := []string{"v1", "v2", "v3", "v4", "v5", "v6"}
	for n := 2; n <= len(elements); n++ {
		block := "{"
		for i, e := range elements[:n] {
			if i > 0 {
				block += ","
			}
			block += e
		}
		block += "}"

		got, err := Expand([]string{"cmd", block, "tail"}, 100)
		require.NoError(t, err)
		require.Len(t, got, n)
		for i, args := range got {
			require.Equal(t, []string{"cmd", elements[i], "tail"}, args)
		}
	}
}

func TestSet_Size(t *testing.T) {
	set := NewSet([]Expansion{
		Literal{Text: "a "},
		List{Elements: []string{"x", "y"}},
		IntRange{First: 1, Second: 5},
	})

	n, ok := set.Size()
	require.True(t, ok)
	require.Equal(t, 5, n, "resolved size is the largest bounded size")
	require.True(t, set.HasExpansion())

	literals := NewSet([]Expansion{Literal{Text: "only text"}})
	_, ok = literals.Size()
	require.False(t, ok)
	require.False(t, literals.HasExpansion())
	require.NoError(t, literals.Validate(1))
	require.Empty(t, literals.Build())
}
