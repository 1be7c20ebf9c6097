package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalMasks(t *testing.T) {
	moore := Moore()
	assert.Equal(t, 8, moore.Len())
	assert.False(t, moore.Contains(Offset{}))
	assert.True(t, moore.Contains(Offset{DR: -1, DC: 1}))
	assert.Equal(t, 1, moore.Radius())
	assert.Equal(t, "moore(8)", moore.String())

	vn := VonNeumann()
	assert.Equal(t, 4, vn.Len())
	assert.False(t, vn.Contains(Offset{DR: 1, DC: 1}))
	assert.Equal(t, "von-neumann(4)", vn.String())
}

func TestCustomMask(t *testing.T) {
	_, err := Custom(Offset{DR: 1}, Offset{})
	assert.ErrorIs(t, err, ErrInvalidMask)

	m, err := Custom(Offset{DR: 2, DC: -3}, Offset{DR: 0, DC: 1}, Offset{DR: 2, DC: -3})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 3, m.Radius())
	assert.Equal(t, "custom(2)[(0,1) (2,-3)]", m.String())

	// Order of construction does not matter.
	same, err := Custom(Offset{DR: 0, DC: 1}, Offset{DR: 2, DC: -3})
	require.NoError(t, err)
	assert.True(t, m.Equal(same))

	// Building the Moore offsets by hand is recognised as Moore.
	hand, err := Custom(Moore().Offsets()...)
	require.NoError(t, err)
	assert.Equal(t, "moore", hand.Name())
}

func TestOffsetsReturnsCopy(t *testing.T) {
	m := Moore()
	offs := m.Offsets()
	offs[0] = Offset{DR: 9, DC: 9}
	assert.False(t, m.Contains(Offset{DR: 9, DC: 9}))
}

func TestFromPattern(t *testing.T) {
	pattern := [][]bool{
		{false, false, true, false, false},
		{false, false, false, false, false},
		{true, false, true, false, false},
		{false, false, false, false, false},
		{false, false, false, false, true},
	}
	m, err := FromPattern(pattern)
	require.NoError(t, err)

	// The centre is the origin and is ignored even when marked.
	assert.Equal(t, []Offset{{DR: -2, DC: 0}, {DR: 0, DC: -2}, {DR: 2, DC: 2}}, m.Offsets())

	_, err = FromPattern([][]bool{{true, true}, {true, true}})
	assert.ErrorIs(t, err, ErrInvalidMask)
	_, err = FromPattern([][]bool{{true, true, true}, {true}, {true, true, true}})
	assert.ErrorIs(t, err, ErrInvalidMask)
	_, err = FromPattern(nil)
	assert.ErrorIs(t, err, ErrInvalidMask)
}
