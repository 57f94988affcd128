// Package appcache stores versioned generations of the application shell
// for offline serving. Each generation is a directory named by its version
// tag, holding the fetched asset bodies plus an index describing them. A
// generation only becomes visible once fully installed, and activation
// deletes every generation but the current one.
package appcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const indexFile = "index.json"

// stagingPrefix marks in-progress installs so they are never listed as
// generations and get cleaned up on the next install attempt.
const stagingPrefix = ".staging-"

// Asset is one cached entry of the application shell
type Asset struct {
	Path        string    `json:"path"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	FetchedAt   time.Time `json:"fetched_at"`

	Body []byte `json:"-"`
}

type indexEntry struct {
	File        string    `json:"file"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Storage manages cache generations under a root directory
type Storage struct {
	root string
}

// NewStorage opens (or creates) cache storage rooted at dir
func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache directory not configured")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Storage{root: dir}, nil
}

func (s *Storage) generationDir(version string) string {
	return filepath.Join(s.root, version)
}

// assetFile names the on-disk file for a cached path
func assetFile(path string) string {
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:16])
}

// Versions lists all fully installed cache generations
func (s *Storage) Versions() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache generations: %w", err)
	}

	var versions []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), stagingPrefix) {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.root, e.Name(), indexFile)); err != nil {
			continue
		}
		versions = append(versions, e.Name())
	}
	return versions, nil
}

// Has reports whether a generation with this version tag is installed
func (s *Storage) Has(version string) bool {
	_, err := os.Stat(filepath.Join(s.generationDir(version), indexFile))
	return err == nil
}

// Delete removes a cache generation
func (s *Storage) Delete(version string) error {
	if err := os.RemoveAll(s.generationDir(version)); err != nil {
		return fmt.Errorf("failed to delete cache %s: %w", version, err)
	}
	return nil
}

func (s *Storage) loadIndex(version string) (map[string]indexEntry, error) {
	data, err := os.ReadFile(filepath.Join(s.generationDir(version), indexFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read cache index %s: %w", version, err)
	}
	var idx map[string]indexEntry
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to parse cache index %s: %w", version, err)
	}
	return idx, nil
}

// Lookup returns the cached asset for path in the given generation. The
// second return value reports whether the asset was found.
func (s *Storage) Lookup(version, path string) (*Asset, bool, error) {
	if !s.Has(version) {
		return nil, false, nil
	}

	idx, err := s.loadIndex(version)
	if err != nil {
		return nil, false, err
	}
	entry, ok := idx[path]
	if !ok {
		return nil, false, nil
	}

	body, err := os.ReadFile(filepath.Join(s.generationDir(version), entry.File))
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached asset %s: %w", path, err)
	}

	return &Asset{
		Path:        path,
		ContentType: entry.ContentType,
		Size:        entry.Size,
		FetchedAt:   entry.FetchedAt,
		Body:        body,
	}, true, nil
}
