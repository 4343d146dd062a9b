package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonathan/job-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_EstablishAndClear(t *testing.T) {
	store := &MemStore{}
	sess := New(store)

	assert.False(t, sess.LoggedIn())
	assert.Empty(t, sess.Token())
	assert.Nil(t, sess.User())

	user := types.User{ID: "u1", Name: "Ada", Email: "a@b.com", Role: types.RoleJobSeeker}
	require.NoError(t, sess.Establish("tok-1", user))

	assert.True(t, sess.LoggedIn())
	assert.Equal(t, "tok-1", sess.Token())
	require.NotNil(t, sess.User())
	assert.Equal(t, "Ada", sess.User().Name)

	// Establish persists through the store.
	rec, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "tok-1", rec.Token)

	require.NoError(t, sess.Clear())
	assert.False(t, sess.LoggedIn())
	rec, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSession_RestoresFromStore(t *testing.T) {
	store := &MemStore{}
	require.NoError(t, store.Save(Record{
		Token: "persisted",
		User:  types.User{ID: "u1", Email: "a@b.com"},
	}))

	sess := New(store)
	assert.Equal(t, "persisted", sess.Token())
	require.NotNil(t, sess.User())
	assert.Equal(t, "a@b.com", sess.User().Email)
}

func TestSession_NilStoreIsMemoryOnly(t *testing.T) {
	sess := New(nil)
	require.NoError(t, sess.Establish("tok", types.User{Email: "a@b.com"}))
	assert.True(t, sess.LoggedIn())
	require.NoError(t, sess.Clear())
	assert.False(t, sess.LoggedIn())
}

func TestFileStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	// Missing file is not an error.
	rec, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)

	require.NoError(t, store.Save(Record{
		Token: "tok-1",
		User:  types.User{ID: "u1", Name: "Ada", Email: "a@b.com"},
	}))

	// Token files must not be world-readable.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	rec, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "tok-1", rec.Token)
	assert.Equal(t, "Ada", rec.User.Name)

	require.NoError(t, store.Clear())
	rec, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewFileStore(path)
	_, err := store.Load()
	assert.Error(t, err)

	// The session itself starts logged out instead of failing.
	sess := New(store)
	assert.False(t, sess.LoggedIn())
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpiry_ReadsExpWithoutVerification(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	got, ok := TokenExpiry(signedToken(t, exp))
	require.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	_, ok := TokenExpiry("not-a-jwt")
	assert.False(t, ok)
}

func TestExpired(t *testing.T) {
	now := time.Now()

	assert.True(t, Expired(signedToken(t, now.Add(-time.Hour)), now))
	assert.False(t, Expired(signedToken(t, now.Add(time.Hour)), now))
	// Opaque tokens are never reported expired; the server is the judge.
	assert.False(t, Expired("opaque", now))
}
