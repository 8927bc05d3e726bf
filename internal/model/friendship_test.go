package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalPair(t *testing.T) {
	a, b := CanonicalPair(3, 7)
	require.Equal(t, uint(3), a)
	require.Equal(t, uint(7), b)

	a, b = CanonicalPair(7, 3)
	require.Equal(t, uint(3), a)
	require.Equal(t, uint(7), b)
}

func TestCounterpart(t *testing.T) {
	f := Friendship{User1ID: 3, User2ID: 7}
	require.Equal(t, uint(7), f.Counterpart(3))
	require.Equal(t, uint(3), f.Counterpart(7))
}
