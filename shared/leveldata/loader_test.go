package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTMX(t *testing.T) {
	g, err := LoadTMX(os.DirFS("testdata"), "small.tmx")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"    ",
		"S g?",
		"GGGG",
	}, g.Strings())
	assert.Equal(t, 16.0, g.TileSize())
	assert.Equal(t, 5, g.NumColliders())
}

func TestLoadTMXWithoutTileLayer(t *testing.T) {
	_, err := LoadTMX(os.DirFS("testdata"), "nolayer.tmx")
	assert.ErrorIs(t, err, ErrMalformedLevel)
}

func TestLoadAllTMX(t *testing.T) {
	_, _, err := LoadAllTMX(os.DirFS("testdata"), ".")
	// nolayer.tmx is deliberately broken
	assert.Error(t, err)

	levels, names, err := LoadAllTMX(os.DirFS("../../assets"), "levels")
	require.NoError(t, err)
	require.Contains(t, names, "1-1")

	g := levels["1-1"]
	assert.Equal(t, 20, g.Rows())
	assert.Equal(t, 100, g.Cols())
	assert.Equal(t, 1, g.Count(Start))
	assert.Equal(t, 1, g.Count(Flag))
}
