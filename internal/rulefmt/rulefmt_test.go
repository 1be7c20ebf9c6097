package rulefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCounts(t *testing.T) {
	cases := map[string][]int{
		"":          {},
		"3":         {3},
		"2,3":       {2, 3},
		"2 3":       {2, 3},
		" 2 , 3 6 ": {2, 3, 6},
		"10;12":     {10, 12},
	}
	for in, want := range cases {
		got, err := ParseCounts(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"two", "3,-1", "1.5"} {
		_, err := ParseCounts(in)
		assert.ErrorIs(t, err, ErrSyntax, in)
	}
}

func TestParseRule(t *testing.T) {
	cases := []struct {
		in      string
		birth   []int
		survive []int
	}{
		{"B3/S23", []int{3}, []int{2, 3}},
		{"b36/s23", []int{3, 6}, []int{2, 3}},
		{"S23/B3", []int{3}, []int{2, 3}},
		{"3/23", []int{3}, []int{2, 3}},
		{"B3/S2,3,10", []int{3}, []int{2, 3, 10}},
		{"B/S", []int{}, []int{}},
	}
	for _, tc := range cases {
		birth, survive, err := ParseRule(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.birth, birth, tc.in)
		assert.Equal(t, tc.survive, survive, tc.in)
	}
}

func TestParseRuleErrors(t *testing.T) {
	for _, in := range []string{"B3S23", "B3/S23/C2", "B3/B2", "Bx/S2", "B3/S2,a"} {
		_, _, err := ParseRule(in)
		assert.ErrorIs(t, err, ErrSyntax, in)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	birth, survive, err := ParseRule(Format([]int{6, 3}, []int{3, 2}))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6}, birth)
	assert.Equal(t, []int{2, 3}, survive)
}
