package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignKnownVector(t *testing.T) {
	got, err := Sign("client42", "mtg-uuid-1", "stream-7", "secret99")
	require.NoError(t, err)
	assert.Equal(t, "7b42019e8283e09245b7abd031d1b3557f6aa9d3a434a3af9fe8522f56a43510", got)
}

func TestSignDeterministic(t *testing.T) {
	a, err := Sign("c", "m", "s", "k")
	require.NoError(t, err)
	b, err := Sign("c", "m", "s", "k")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSignDistinctInputsDiffer(t *testing.T) {
	base, err := Sign("c", "m", "s", "k")
	require.NoError(t, err)

	variants := [][4]string{
		{"c2", "m", "s", "k"},
		{"c", "m2", "s", "k"},
		{"c", "m", "s2", "k"},
		{"c", "m", "s", "k2"},
	}
	seen := map[string]bool{base: true}
	for _, v := range variants {
		sig, err := Sign(v[0], v[1], v[2], v[3])
		require.NoError(t, err)
		assert.False(t, seen[sig], "signature collision for %v", v)
		seen[sig] = true
	}
}

func TestSignMissingInput(t *testing.T) {
	cases := [][4]string{
		{"", "m", "s", "k"},
		{"c", "", "s", "k"},
		{"c", "m", "", "k"},
		{"c", "m", "s", ""},
	}
	for _, v := range cases {
		_, err := Sign(v[0], v[1], v[2], v[3])
		assert.Error(t, err)
	}
}

func TestChallengeResponse(t *testing.T) {
	got := ChallengeResponse("abc", "verifysecret")
	assert.Equal(t, "c01001163026d630401ca05c25572b3b00b1dfc78359feabccb7f555f3a46d05", got)
}
