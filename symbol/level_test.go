package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"L":  L,
		"m":  M,
		" q": Q,
		"H":  H,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.True(t, got.Valid())
	}

	_, err := ParseLevel("X")
	assert.Error(t, err)
	_, err = ParseLevel("")
	assert.Error(t, err)
}

func TestLevel_String(t *testing.T) {
	for _, lv := range Levels {
		parsed, err := ParseLevel(lv.String())
		require.NoError(t, err)
		assert.Equal(t, lv, parsed)
	}

	assert.Equal(t, "Level(9)", Level(9).String())
	assert.False(t, Level(0).Valid())
}
