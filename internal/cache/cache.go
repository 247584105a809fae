package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type CachedEntry struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	CreatedAt time.Time       `json:"created_at"`
}

// Cache is a directory of JSON entries that expire after ttl.
type Cache struct {
	cacheDir string
	ttl      time.Duration
	now      func() time.Time
}

// NewCache creates cacheDir when needed and drops expired entries.
func NewCache(cacheDir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating cache directory: %w", err)
	}

	cache := &Cache{
		cacheDir: cacheDir,
		ttl:      ttl,
		now:      time.Now,
	}

	_ = cache.CleanExpired()

	return cache, nil
}

// GenerateHash returns the SHA256 of content, used as an entry key.
func (c *Cache) GenerateHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// Get decodes the entry stored under key into v. found is false for a missing
// or expired entry.
func (c *Cache) Get(key string, v interface{}) (bool, error) {
	filePath := c.path(key)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("error reading cache: %w", err)
	}

	var cached CachedEntry
	if err := json.Unmarshal(data, &cached); err != nil {
		return false, fmt.Errorf("error decoding cache: %w", err)
	}

	if c.now().Sub(cached.CreatedAt) > c.ttl {
		_ = os.Remove(filePath)
		return false, nil
	}

	if err := json.Unmarshal(cached.Value, v); err != nil {
		return false, fmt.Errorf("error decoding cached value: %w", err)
	}
	return true, nil
}

func (c *Cache) Set(key string, v interface{}) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding value: %w", err)
	}

	data, err := json.MarshalIndent(CachedEntry{
		Key:       key,
		Value:     value,
		CreatedAt: c.now(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding cache: %w", err)
	}

	if err := os.WriteFile(c.path(key), data, 0644); err != nil {
		return fmt.Errorf("error writing cache: %w", err)
	}
	return nil
}

// CleanExpired removes entries older than the ttl.
func (c *Cache) CleanExpired() error {
	entries, err := os.ReadDir(c.cacheDir)
	if err != nil {
		return fmt.Errorf("error reading cache directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if c.now().Sub(info.ModTime()) > c.ttl {
			_ = os.Remove(filepath.Join(c.cacheDir, entry.Name()))
		}
	}

	return nil
}

// Clean removes the whole cache directory.
func (c *Cache) Clean() error {
	return os.RemoveAll(c.cacheDir)
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.cacheDir, key+".json")
}
