package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token := CreateToken(Payload{UserID: 42, Username: "student1", RoleID: 0})
	claims, ok := ParseToken(token)
	require.True(t, ok)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "student1", claims.Username)
	require.Equal(t, 0, claims.RoleID)
	require.NotEmpty(t, claims.Id)
	require.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestTokenUniqueID(t *testing.T) {
	t1, _ := ParseToken(CreateToken(Payload{UserID: 1}))
	t2, _ := ParseToken(CreateToken(Payload{UserID: 1}))
	require.NotEqual(t, t1.Id, t2.Id)
}

func TestParseTokenTampered(t *testing.T) {
	token := CreateToken(Payload{UserID: 42})
	_, ok := ParseToken(token + "x")
	require.False(t, ok)

	_, ok = ParseToken("not-a-token")
	require.False(t, ok)
}
