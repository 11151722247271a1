package fpsio

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheKey identifies a cached matrix by file path and modification time,
// so an on-disk edit invalidates the cache entry without an explicit purge.
type cacheKey struct {
	path  string
	mtime int64
}

// MatrixCache memoizes parsed matrices keyed by file path + mtime, so
// repeated loads of the same unchanged file don't re-parse it from disk.
type MatrixCache struct {
	lru *lru.Cache[cacheKey, *Matrix]
}

// NewMatrixCache creates a cache holding at most size entries.
func NewMatrixCache(size int) (*MatrixCache, error) {
	c, err := lru.New[cacheKey, *Matrix](size)
	if err != nil {
		return nil, fmt.Errorf("fpsio: NewMatrixCache: %w", err)
	}
	return &MatrixCache{lru: c}, nil
}

// LoadCompressed returns the cached Matrix for path if its mtime hasn't
// changed since the cached entry was populated, otherwise it reloads via
// LoadCompressedMatrix and caches the result.
func (c *MatrixCache) LoadCompressed(path string) (*Matrix, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("fpsio: MatrixCache.LoadCompressed: %w", err)
	}
	key := cacheKey{path: path, mtime: info.ModTime().UnixNano()}
	if m, ok := c.lru.Get(key); ok {
		return m, nil
	}
	m, err := LoadCompressedMatrix(path)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, m)
	return m, nil
}

// Len returns the number of entries currently cached.
func (c *MatrixCache) Len() int {
	return c.lru.Len()
}
