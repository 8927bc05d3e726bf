package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordEncryptAndCompare(t *testing.T) {
	hash := PasswordEncrypt("correct horse battery")
	require.NotEqual(t, "correct horse battery", hash)
	require.True(t, PasswordCompare("correct horse battery", hash))
	require.False(t, PasswordCompare("wrong password", hash))
}

func TestPasswordEncryptSalted(t *testing.T) {
	// bcrypt 每次加盐，相同明文应得到不同哈希
	h1 := PasswordEncrypt("666888ab")
	h2 := PasswordEncrypt("666888ab")
	require.NotEqual(t, h1, h2)
}
