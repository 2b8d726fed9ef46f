// Package imgio decodes artwork images from files or URLs and stores
// session snapshots on disk.
package imgio

import (
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"
	"time"

	// Registered decoders: the stdlib trio plus the extra formats
	// from golang.org/x/image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Load fetches and decodes an artwork from a local path or an
// http(s) URL. Decode failure surfaces as an error before any
// session state is constructed.
func Load(source string) (image.Image, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchURL(source)
	}
	return loadFile(source)
}

func loadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artwork: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode artwork %s: %w", path, err)
	}
	return img, nil
}

func fetchURL(url string) (image.Image, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch artwork: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch artwork %s: unexpected status %s", url, resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode artwork %s: %w", url, err)
	}
	return img, nil
}
