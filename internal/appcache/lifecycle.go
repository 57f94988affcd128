package appcache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/existflow/dayplan/internal/logger"
)

// Install fetches every manifest path from the origin and stores the
// result as a new generation tagged with version. The generation appears
// all-or-nothing: assets are downloaded into a staging directory that is
// renamed into place only after the whole manifest succeeded, so a failed
// install leaves existing generations authoritative.
func (s *Storage) Install(ctx context.Context, client *http.Client, origin string, version string, manifest []string) error {
	if client == nil {
		client = http.DefaultClient
	}
	if len(manifest) == 0 {
		return fmt.Errorf("install %s: empty manifest", version)
	}

	staging := filepath.Join(s.root, stagingPrefix+version)
	os.RemoveAll(staging)
	if err := os.MkdirAll(staging, 0755); err != nil {
		return fmt.Errorf("install %s: %w", version, err)
	}

	idx := make(map[string]indexEntry, len(manifest))
	for _, path := range manifest {
		asset, err := fetchAsset(ctx, client, origin, path)
		if err != nil {
			os.RemoveAll(staging)
			return fmt.Errorf("install %s: %w", version, err)
		}

		file := assetFile(path)
		if err := os.WriteFile(filepath.Join(staging, file), asset.Body, 0644); err != nil {
			os.RemoveAll(staging)
			return fmt.Errorf("install %s: %w", version, err)
		}
		idx[path] = indexEntry{
			File:        file,
			ContentType: asset.ContentType,
			Size:        int64(len(asset.Body)),
			FetchedAt:   asset.FetchedAt,
		}
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		os.RemoveAll(staging)
		return fmt.Errorf("install %s: %w", version, err)
	}
	if err := os.WriteFile(filepath.Join(staging, indexFile), data, 0644); err != nil {
		os.RemoveAll(staging)
		return fmt.Errorf("install %s: %w", version, err)
	}

	// Reinstalling an existing tag replaces it.
	target := s.generationDir(version)
	if err := os.RemoveAll(target); err != nil {
		os.RemoveAll(staging)
		return fmt.Errorf("install %s: %w", version, err)
	}
	if err := os.Rename(staging, target); err != nil {
		os.RemoveAll(staging)
		return fmt.Errorf("install %s: %w", version, err)
	}

	logger.Info("Cache installed",
		logger.F("version", version),
		logger.F("assets", len(manifest)))
	return nil
}

// Activate deletes every generation whose version differs from the given
// one. Eviction is purely version-based.
func (s *Storage) Activate(version string) error {
	versions, err := s.Versions()
	if err != nil {
		return err
	}
	for _, v := range versions {
		if v == version {
			continue
		}
		if err := s.Delete(v); err != nil {
			return err
		}
		logger.Info("Old cache cleared", logger.F("version", v))
	}
	return nil
}

func fetchAsset(ctx context.Context, client *http.Client, origin, path string) (*Asset, error) {
	url := strings.TrimSuffix(origin, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = mime.TypeByExtension(filepath.Ext(path))
	}
	if ct == "" {
		ct = "application/octet-stream"
	}

	return &Asset{
		Path:        path,
		ContentType: ct,
		FetchedAt:   time.Now(),
		Body:        body,
	}, nil
}
