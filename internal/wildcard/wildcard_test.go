package wildcard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/fanout/internal/usage"
)

func staticSource(values ...string) Source {
	return SourceFunc(func(int, []string) ([]string, error) {
		return values, nil
	})
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"none", []string{"msg", "alice", "hi"}, -1},
		{"subcommand name is skipped", []string{"m*", "alice"}, -1},
		{"first slot", []string{"msg", "a*", "hi"}, 1},
		{"later slot", []string{"grant", "alice", "fanout.*"}, 2},
		{"first of several", []string{"msg", "a*", "b*"}, 1},
		{"empty", nil, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Index(tt.args))
		})
	}
}

func TestPattern(t *testing.T) {
	require.Equal(t, "abc*", Pattern("abc*"))
	require.Equal(t, "*", Pattern("***"))
	require.Equal(t, "a*b*", Pattern("a**b*"))
	require.Equal(t, `wh\?t*`, Pattern("wh?t*"))
}

func TestFilter(t *testing.T) {
	candidates := []string{"abc", "abcd", "", "xabc", "ab", "zabcz", "abcabc"}

	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{"prefix", "abc*", []string{"abc", "abcd", "abcabc"}},
		{"suffix", "*abc", []string{"abc", "xabc", "abcabc"}},
		{"infix", "*abc*", []string{"abc", "abcd", "xabc", "zabcz", "abcabc"}},
		{"star matches all", "*", candidates},
		{"stars collapse", "**", candidates},
		{"whole string only", "ab*c", []string{"abc", "abcabc"}},
		{"no match", "q*", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Filter(candidates, tt.token))
		})
	}
}

func TestFilter_QuestionMarkIsLiteral(t *testing.T) {
	got := Filter([]string{"what", "wh?tever", "whatever"}, "wh?t*")
	require.Equal(t, []string{"wh?tever"}, got)
}

func TestFilter_RegexCharactersAreLiteral(t *testing.T) {
	got := Filter([]string{"a.b", "axb", "a+b"}, "a.*")
	require.Equal(t, []string{"a.b"}, got)
}

func TestExpand(t *testing.T) {
	src := staticSource("alice", "bob", "albert", "carol")

	got, err := Expand([]string{"msg", "al*", "hello"}, src, 10)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"msg", "alice", "hello"},
		{"msg", "albert", "hello"},
	}, got)
}

func TestExpand_KeepsCandidateOrder(t *testing.T) {
	src := staticSource("zed", "amy", "max")

	got, err := Expand([]string{"leave", "*"}, src, 10)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"leave", "zed"}, {"leave", "amy"}, {"leave", "max"}}, got)
}

func TestExpand_OnlyFirstTokenExpands(t *testing.T) {
	src := staticSource("alice", "bob")

	got, err := Expand([]string{"msg", "*", "b*"}, src, 10)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"msg", "alice", "b*"}, {"msg", "bob", "b*"}}, got)
}

func TestExpand_DoesNotMutateArgs(t *testing.T) {
	args := []string{"msg", "*", "hi"}

	_, err := Expand(args, staticSource("alice", "bob"), 10)
	require.NoError(t, err)
	require.Equal(t, []string{"msg", "*", "hi"}, args)
}

func TestExpand_NoWildcard(t *testing.T) {
	called := false
	src := SourceFunc(func(int, []string) ([]string, error) {
		called = true
		return nil, nil
	})

	got, err := Expand([]string{"msg", "alice", "hi"}, src, 10)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"msg", "alice", "hi"}}, got)
	require.False(t, called, "candidates are only fetched for a wildcard")
}

func TestExpand_SourceReceivesIndex(t *testing.T) {
	var gotIndex int
	var gotArgs []string
	src := SourceFunc(func(index int, args []string) ([]string, error) {
		gotIndex, gotArgs = index, args
		return []string{"fanout.msg"}, nil
	})

	_, err := Expand([]string{"grant", "alice", "fanout.*"}, src, 10)
	require.NoError(t, err)
	require.Equal(t, 2, gotIndex)
	require.Equal(t, []string{"grant", "alice", "fanout.*"}, gotArgs)
}

func TestExpand_Errors(t *testing.T) {
	many := []string{"a1", "a2", "a3", "a4", "a5", "a6"}

	tests := []struct {
		name     string
		args     []string
		src      Source
		max      int
		wantKind usage.ErrorKind
		wantMsg  string
	}{
		{
			name:     "zero matches embeds the token",
			args:     []string{"msg", "zz*", "hi"},
			src:      staticSource("alice", "bob"),
			max:      10,
			wantKind: usage.ErrNoWildcardMatches,
			wantMsg:  "Your wildcard argument 'zz*' did not find any matches!",
		},
		{
			name:     "zero candidates",
			args:     []string{"msg", "*", "hi"},
			src:      staticSource(),
			max:      10,
			wantKind: usage.ErrNoWildcardMatches,
			wantMsg:  "Your wildcard argument '*' did not find any matches!",
		},
		{
			name:     "over the cap",
			args:     []string{"msg", "a*", "hi"},
			src:      staticSource(many...),
			max:      5,
			wantKind: usage.ErrTooManyWildcardMatches,
			wantMsg:  "Too many attempted enumerations. The maximum amount is 5!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.args, tt.src, tt.max)
			require.Error(t, err)
			require.Nil(t, got)

			var ue *usage.Error
			require.True(t, errors.As(err, &ue))
			require.Equal(t, tt.wantKind, ue.Kind)
			require.Equal(t, tt.wantMsg, ue.Message)
		})
	}
}

func TestExpand_AtCap(t *testing.T) {
	got, err := Expand([]string{"msg", "a*"}, staticSource("a1", "a2", "a3"), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestExpand_SourceError(t *testing.T) {
	boom := errors.New("roster unavailable")
	src := SourceFunc(func(int, []string) ([]string, error) { return nil, boom })

	_, err := Expand([]string{"msg", "*"}, src, 10)
	require.ErrorIs(t, err, boom)
}
