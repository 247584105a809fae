package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lastCommit struct {
	Message string `json:"message"`
}

func setupTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c, err := NewCache(filepath.Join(t.TempDir(), "cache"), ttl)
	require.NoError(t, err)
	return c
}

func TestNewCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	_, err := NewCache(dir, time.Hour)

	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestCache_GenerateHash(t *testing.T) {
	c := &Cache{}

	hash1 := c.GenerateHash("/home/me/repo")
	hash2 := c.GenerateHash("/home/me/repo")
	hash3 := c.GenerateHash("/home/me/other")

	assert.Equal(t, hash1, hash2)
	assert.NotEqual(t, hash1, hash3)
	assert.Len(t, hash1, 64)
}

func TestCache_SetAndGet(t *testing.T) {
	// Arrange
	c := setupTestCache(t, time.Hour)
	key := c.GenerateHash("/home/me/repo")

	// Act
	require.NoError(t, c.Set(key, lastCommit{Message: "feat. add login"}))
	var got lastCommit
	found, err := c.Get(key, &got)

	// Assert
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "feat. add login", got.Message)
}

func TestCache_Get(t *testing.T) {
	t.Run("missing entry", func(t *testing.T) {
		c := setupTestCache(t, time.Hour)

		var got lastCommit
		found, err := c.Get("missing", &got)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("expired entry is removed", func(t *testing.T) {
		c := setupTestCache(t, time.Hour)
		require.NoError(t, c.Set("old", lastCommit{Message: "x"}))
		c.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		var got lastCommit
		found, err := c.Get("old", &got)

		require.NoError(t, err)
		assert.False(t, found)
		assert.NoFileExists(t, c.path("old"))
	})

	t.Run("corrupt entry", func(t *testing.T) {
		c := setupTestCache(t, time.Hour)
		require.NoError(t, os.WriteFile(c.path("bad"), []byte("{"), 0644))

		var got lastCommit
		_, err := c.Get("bad", &got)

		assert.Error(t, err)
	})
}

func TestCache_CleanExpired(t *testing.T) {
	// Arrange
	c := setupTestCache(t, time.Hour)
	require.NoError(t, c.Set("fresh", lastCommit{}))
	require.NoError(t, c.Set("stale", lastCommit{}))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(c.path("stale"), old, old))

	// Act
	err := c.CleanExpired()

	// Assert
	require.NoError(t, err)
	assert.FileExists(t, c.path("fresh"))
	assert.NoFileExists(t, c.path("stale"))
}

func TestCache_Clean(t *testing.T) {
	c := setupTestCache(t, time.Hour)
	require.NoError(t, c.Set("a", lastCommit{}))

	require.NoError(t, c.Clean())

	assert.NoDirExists(t, c.cacheDir)
}
