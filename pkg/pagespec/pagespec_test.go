package pagespec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroups(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]int
	}{
		{"single pages", "1,4", [][]int{{0, 3}}},
		{"range", "2-4", [][]int{{1, 2, 3}}},
		{"mixed groups", "1,4;2-3;5-6", [][]int{{0, 3}, {1, 2}, {4, 5}}},
		{"duplicates collapse", "2,2,2", [][]int{{1}}},
		{"unordered input sorts ascending", "4,1,3", [][]int{{0, 2, 3}}},
		{"range overlapping single", "1-3,2", [][]int{{0, 1, 2}}},
		{"whitespace tolerated", " 1 , 2 ; 3 ", [][]int{{0, 1}, {2}}},
		{"reversed range selects nothing", "5-2", [][]int{{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGroups(tt.in)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.ElementsMatch(t, tt.want[i], got[i])
			}
		})
	}
}

func TestParseGroupsRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "a", "1,a", "1-", "-3", "1--3", "1;;2", "1,"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseGroups(in)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestParseMove(t *testing.T) {
	s, tgt, err := ParseMove("2,3")
	require.NoError(t, err)
	assert.Equal(t, 1, s)
	assert.Equal(t, 2, tgt)

	s, tgt, err = ParseMove(" 8 , 1 ")
	require.NoError(t, err)
	assert.Equal(t, 7, s)
	assert.Equal(t, 0, tgt)
}

func TestParseMoveRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "2", "2,3,4", "a,b", "2;3"} {
		t.Run(in, func(t *testing.T) {
			_, _, err := ParseMove(in)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestParseMoveKeepsOutOfRangeForCaller(t *testing.T) {
	// "0" parses fine and becomes index -1; range validation against an
	// actual document is the caller's job.
	s, tgt, err := ParseMove("0,1")
	require.NoError(t, err)
	assert.Equal(t, -1, s)
	assert.Equal(t, 0, tgt)
}
