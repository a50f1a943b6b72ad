package tm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exampleSeparated = "1RB0LC_0LA1RD_1LA0RB_1LE---_0RA1RE"
	examplePacked    = "1RB0LC0LA1RD1LA0RB1LE---0RA1RE"
)

func TestParseForms(t *testing.T) {
	tests := []struct {
		name string
		enc  string
	}{
		{"separated", exampleSeparated},
		{"packed", examplePacked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := Parse(tt.enc)
			require.NoError(t, err)
			require.Equal(t, EncodedStates, tab.States())

			a, ok := tab.Action(Zero, StateA)
			require.True(t, ok)
			assert.Equal(t, Action{Next: 2, Write: One, Move: Right}, a)

			a, ok = tab.Action(One, StateA)
			require.True(t, ok)
			assert.Equal(t, Action{Next: 3, Write: Zero, Move: Left}, a)

			a, ok = tab.Action(Zero, 4)
			require.True(t, ok)
			assert.Equal(t, Action{Next: 5, Write: One, Move: Left}, a)

			_, ok = tab.Action(One, 4)
			assert.False(t, ok, "D1 is the halting rule")

			a, ok = tab.Action(One, 5)
			require.True(t, ok)
			assert.Equal(t, Action{Next: 5, Write: One, Move: Right}, a)

			assert.Equal(t, exampleSeparated, tab.String())
		})
	}
}

func TestParseHaltMarkers(t *testing.T) {
	for _, marker := range []string{"---", "1RZ", "0LH"} {
		t.Run(marker, func(t *testing.T) {
			enc := marker + "0LA_0LA1RA_0LA1RA_0LA1RA_0LA1RA"
			tab, err := Parse(enc)
			require.NoError(t, err)
			_, ok := tab.Action(Zero, StateA)
			assert.False(t, ok)
			_, ok = tab.Action(One, StateA)
			assert.True(t, ok)
		})
	}
}

func TestParseSeedBytes(t *testing.T) {
	// The seed database encodes 1RB---_... as raw values.
	rec := make([]byte, PackedLength)
	copy(rec[0:6], []byte{1, 0, 2, 0, 0, 0})
	copy(rec[6:12], []byte{1, 1, 1, 0, 1, 2})

	tab, err := ParseBytes(rec)
	require.NoError(t, err)

	a, ok := tab.Action(Zero, StateA)
	require.True(t, ok)
	assert.Equal(t, Action{Next: 2, Write: One, Move: Right}, a)

	_, ok = tab.Action(One, StateA)
	assert.False(t, ok)

	a, ok = tab.Action(Zero, 2)
	require.True(t, ok)
	assert.Equal(t, Action{Next: StateA, Write: One, Move: Left}, a)

	a, ok = tab.Action(One, 2)
	require.True(t, ok)
	assert.Equal(t, Action{Next: 2, Write: Zero, Move: Left}, a)

	for s := State(3); s <= EncodedStates; s++ {
		_, ok = tab.Action(Zero, s)
		assert.False(t, ok)
	}
	assert.Equal(t, "1RB---_1LA0LB_------_------_------", tab.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		enc  string
		want error
	}{
		{"empty", "", ErrBadEncodingLength},
		{"short", "1RB0LC", ErrBadEncodingLength},
		{"bad state", "1RF0LC_0LA1RD_1LA0RB_1LE---_0RA1RE", ErrBadState},
		{"bad symbol", "2RB0LC_0LA1RD_1LA0RB_1LE---_0RA1RE", ErrBadSymbol},
		{"bad direction", "1XB0LC_0LA1RD_1LA0RB_1LE---_0RA1RE", ErrBadDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.enc)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
