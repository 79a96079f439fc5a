// Package images implements the ImageFetcher interface. It downloads post
// images over HTTP with a bounded timeout and stores them in a local
// directory for later upload to the WordPress media library.
package images

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	goslug "github.com/gosimple/slug"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout = 30 * time.Second
	// Some image CDNs refuse requests without a browser-looking agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// HTTPFetcher downloads images into Dir.
type HTTPFetcher struct {
	Dir    string
	client *http.Client
	log    zerolog.Logger
}

// New creates an HTTPFetcher storing files under dir. A non-positive timeout
// falls back to the default.
func New(dir string, timeout time.Duration, log zerolog.Logger) (*HTTPFetcher, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating images directory %s: %w", dir, err)
	}
	return &HTTPFetcher{
		Dir:    dir,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}, nil
}

// Fetch downloads srcURL and stores it under a filename derived from the URL
// and post slug. It returns the filename for use in rewritten image paths.
func (f *HTTPFetcher) Fetch(ctx context.Context, srcURL, postSlug string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", srcURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, srcURL)
	}

	filename := Filename(srcURL, postSlug)
	dst := filepath.Join(f.Dir, filename)
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("writing %s: %w", dst, err)
	}

	f.log.Debug().Str("url", srcURL).Str("file", filename).Msg("image stored")
	return filename, nil
}

// Filename derives a unique local filename for an image: the URL's basename
// sanitized and prefixed with the post slug. URLs without a usable basename
// get a stable hashed name instead.
func Filename(srcURL, postSlug string) string {
	base := ""
	if parsed, err := url.Parse(srcURL); err == nil {
		base = path.Base(parsed.Path)
	}

	ext := path.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" || name == "." || name == "/" || ext == "" {
		return fmt.Sprintf("%s_image_%d.jpg", postSlug, hashURL(srcURL))
	}
	return fmt.Sprintf("%s_%s%s", postSlug, goslug.Make(name), ext)
}

// hashURL maps a URL to a small stable number for generated filenames.
func hashURL(srcURL string) int {
	h := fnv.New32a()
	h.Write([]byte(srcURL))
	return int(h.Sum32() % 10000)
}
