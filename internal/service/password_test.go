package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "wrong"))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen fail")
	}
	_, err = HashPassword(pwd)
	require.EqualError(t, err, "HashPassword: gen fail")
}

func TestParsePasswordMode(t *testing.T) {
	m, err := ParsePasswordMode("")
	require.NoError(t, err)
	require.Equal(t, PasswordBcrypt, m)

	m, err = ParsePasswordMode("plain")
	require.NoError(t, err)
	require.Equal(t, PasswordPlain, m)

	_, err = ParsePasswordMode("md5")
	require.EqualError(t, err, `unknown password mode "md5"`)
}

func TestPasswordModeMatches(t *testing.T) {
	stored, err := PasswordPlain.encode("pw")
	require.NoError(t, err)
	require.Equal(t, "pw", stored)
	require.True(t, PasswordPlain.matches(stored, "pw"))
	require.False(t, PasswordPlain.matches(stored, "PW"))

	stored, err = PasswordBcrypt.encode("pw")
	require.NoError(t, err)
	require.NotEqual(t, "pw", stored)
	require.True(t, PasswordBcrypt.matches(stored, "pw"))
	require.False(t, PasswordBcrypt.matches(stored, "nope"))
}
