package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"-sim", "custom", "-n", "20", "-boundary", "clamp",
		"-rule", "B36/S23", "-pattern", "#.#/.O./#.#", "-limit", "50",
	}))

	assert.Equal(t, "custom", cfg.Sim)
	assert.Equal(t, 50, cfg.Limit)

	m := cfg.SimConfig()
	assert.Equal(t, "20", m["n"])
	assert.Equal(t, "clamp", m["boundary"])
	assert.Equal(t, "B36/S23", m["rule"])
	assert.Equal(t, "#.#/.O./#.#", m["pattern"])
	assert.Equal(t, "0.25", m["density"])
	_, hasBirth := m["birth"]
	assert.False(t, hasBirth)
}
