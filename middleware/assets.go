package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Assets whose URLs carry a content hash for cache busting
var versionedAssets = []string{
	"css/style.css",
	"js/app.js",
	"js/carousel.js",
	"images/favicon.png",
}

var (
	assetVersions     map[string]string
	assetVersionsMu   sync.RWMutex
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes under staticDir once at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		loadAssetVersions(staticDir)
	})
}

func loadAssetVersions(staticDir string) {
	versions := make(map[string]string, len(versionedAssets))
	for _, name := range versionedAssets {
		if v := computeFileHash(filepath.Join(staticDir, filepath.FromSlash(name))); v != "" {
			versions[name] = v
		}
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()
	log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetAssetVersion returns the version hash for a static asset, "1" if unknown.
// ctx is accepted so templates can call it like the other request helpers.
func GetAssetVersion(ctx context.Context, name string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if v, ok := assetVersions[name]; ok {
		return v
	}
	return "1"
}

// AssetURL returns /static/<name>?v=<hash>
func AssetURL(ctx context.Context, name string) string {
	return "/static/" + name + "?v=" + GetAssetVersion(ctx, name)
}
