package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelike/pkg/automaton"
)

func TestNewSizeLimits(t *testing.T) {
	for _, size := range []int{1, 2, 4, 9} {
		_, err := New(size)
		assert.ErrorIs(t, err, ErrSize, "size %d", size)
	}
	p, err := New(DefaultSize)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Center())
}

func TestToggleAndMask(t *testing.T) {
	p, err := New(5)
	require.NoError(t, err)

	assert.ErrorIs(t, p.Toggle(2, 2), ErrCenter)
	assert.ErrorIs(t, p.Toggle(5, 0), ErrRange)

	_, err = p.Mask()
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, p.Toggle(0, 2))
	require.NoError(t, p.Toggle(4, 4))
	require.NoError(t, p.Toggle(1, 1))
	require.NoError(t, p.Toggle(1, 1))
	assert.Equal(t, 2, p.Count())

	m, err := p.Mask()
	require.NoError(t, err)
	assert.Equal(t, []automaton.Offset{{DR: -2, DC: 0}, {DR: 2, DC: 2}}, m.Offsets())
}

func TestParseAndString(t *testing.T) {
	p, err := Parse("#.#/.O./#.#")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Size())
	assert.Equal(t, "#.#\n.O.\n#.#", p.String())

	m, err := p.Mask()
	require.NoError(t, err)
	assert.Equal(t, 4, m.Len())

	again, err := Parse(p.String())
	require.NoError(t, err)
	assert.Equal(t, p.String(), again.String())
}

func TestParseErrors(t *testing.T) {
	cases := map[string]error{
		"...\n.#.\n...": ErrCenter,
		"O..\n...\n...": ErrSyntax,
		"..\n..":        ErrSize,
		"...\n..\n...":  ErrSyntax,
		"..?\n...\n...": ErrSyntax,
	}
	for in, want := range cases {
		_, err := Parse(in)
		assert.ErrorIs(t, err, want, in)
	}
}

func TestFromMaskRoundTrip(t *testing.T) {
	p, err := FromMask(automaton.Moore())
	require.NoError(t, err)
	assert.Equal(t, "###\n#O#\n###", p.String())

	wide, err := automaton.Custom(automaton.Offset{DR: -3, DC: 3})
	require.NoError(t, err)
	p, err = FromMask(wide)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Size())
	assert.True(t, p.Selected(0, 6))

	tooWide, err := automaton.Custom(automaton.Offset{DR: 4})
	require.NoError(t, err)
	_, err = FromMask(tooWide)
	assert.ErrorIs(t, err, ErrSize)
}

func TestResizedKeepsCentre(t *testing.T) {
	p, err := Parse("#...#/...../..O../.#.../#...#")
	require.NoError(t, err)

	big, err := p.Resized(7)
	require.NoError(t, err)
	assert.Equal(t, 5, big.Count())
	m1, err := p.Mask()
	require.NoError(t, err)
	m2, err := big.Mask()
	require.NoError(t, err)
	assert.True(t, m1.Equal(m2))

	small, err := p.Resized(3)
	require.NoError(t, err)
	assert.Equal(t, 1, small.Count())
	assert.True(t, small.Selected(2, 0))

	_, err = p.Resized(4)
	assert.ErrorIs(t, err, ErrSize)
}
