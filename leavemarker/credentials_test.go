package leavemarker

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	store := &FileTokenStore{Path: filepath.Join(t.TempDir(), "nested", "credentials.json")}

	token, ident, err := store.Load()
	require.NoError(t, err, "missing file reads as empty, not an error")
	assert.Empty(t, token)
	assert.Nil(t, ident)

	saved := &Identity{ID: 9, Email: "x@y.z", FullName: "X", Role: RoleManager, CompanyID: 4}
	require.NoError(t, store.Save("tok-abc", saved))

	token, ident, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
	require.NotNil(t, ident)
	assert.Equal(t, saved.ID, ident.ID)
	assert.Equal(t, saved.Role, ident.Role)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing twice is not an error")
	token, ident, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, ident)
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "9",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	got, err := TokenExpiry(signed)
	require.NoError(t, err)
	assert.True(t, got.Equal(exp), "exp = %s, want %s", got, exp)
}

func TestTokenExpiryNoClaim(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "9",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	got, err := TokenExpiry(signed)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "tokens without exp report zero time")
}

func TestTokenExpiryGarbage(t *testing.T) {
	_, err := TokenExpiry("not-a-jwt")
	assert.Error(t, err)
}
