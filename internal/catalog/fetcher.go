package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/litescript/stardisc/internal/logging"
)

const (
	// DefaultCatalogURL is the published HYG database CSV.
	DefaultCatalogURL = "https://raw.githubusercontent.com/astronexus/HYG-Database/refs/heads/main/hyg/CURRENT/hygdata_v41.csv"

	// DefaultTimeout for HTTP requests.
	DefaultTimeout = 30 * time.Second
)

// ErrUnavailable marks a total failure to obtain the catalog. Unlike
// per-row problems this is fatal to a run.
var ErrUnavailable = errors.New("star catalog unavailable")

// Fetcher downloads the catalog CSV and caches it on disk. A cached
// copy is reused on later runs without touching the network.
type Fetcher struct {
	client   *http.Client
	url      string
	timeout  time.Duration
	cacheDir string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithURL sets a custom catalog source URL.
func WithURL(url string) FetcherOption {
	return func(f *Fetcher) {
		f.url = url
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithCacheDir sets the on-disk cache directory.
func WithCacheDir(dir string) FetcherOption {
	return func(f *Fetcher) {
		f.cacheDir = dir
	}
}

// NewFetcher creates a catalog fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		url:     DefaultCatalogURL,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch returns the local path of the catalog CSV, downloading it into
// the cache directory if no cached copy exists.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	dir := f.cacheDir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("%w: resolve cache dir: %v", ErrUnavailable, err)
		}
		dir = filepath.Join(base, "stardisc")
	}

	name := path.Base(f.url)
	if name == "" || name == "." || name == "/" {
		name = "catalog.csv"
	}
	cached := filepath.Join(dir, name)

	if _, err := os.Stat(cached); err == nil {
		log := logging.L()
		log.Debug().Str("path", cached).Msg("using cached catalog")
		return cached, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create cache dir: %v", ErrUnavailable, err)
	}

	if err := f.download(ctx, cached); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return cached, nil
}

// download writes the catalog to dest atomically via a temp file, so a
// failed download never leaves a truncated cache entry behind.
func (f *Fetcher) download(ctx context.Context, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", "stardisc/1.0 (Star Disc Generator)")
	req.Header.Set("Accept", "text/csv, text/plain")

	log := logging.L()
	log.Info().Str("url", f.url).Msg("downloading star catalog")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch catalog: unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".catalog-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close catalog file: %w", err)
	}

	return os.Rename(tmp.Name(), dest)
}
