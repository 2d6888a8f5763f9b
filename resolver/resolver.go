package resolver

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxSize is the default cap on resolved resource size (16 MB).
const DefaultMaxSize = 16 << 20

// Resource is a resolved byte payload with its sniffed MIME type, keyed by
// the original URI. Resources live in the resolver's cache for the duration
// of one conversion and are released with it.
type Resource struct {
	URI  string
	Data []byte
	MIME string
}

// Fetcher retrieves remote resources on behalf of the resolver. The core
// never performs network I/O itself; callers that want remote images supply
// a Fetcher via WithFetcher.
type Fetcher interface {
	Fetch(uri string) (data []byte, mime string, err error)
}

// Resolver resolves resource URIs for a single conversion.
type Resolver struct {
	baseDir string
	fetcher Fetcher
	maxSize int64
	cache   map[string]*Resource
}

// Option configures the resolver
type Option func(*Resolver)

// WithFetcher supplies a collaborator for remote http(s) URIs.
func WithFetcher(f Fetcher) Option {
	return func(r *Resolver) {
		r.fetcher = f
	}
}

// WithMaxSize sets the resource size cap in bytes (default: DefaultMaxSize).
func WithMaxSize(n int64) Option {
	return func(r *Resolver) {
		r.maxSize = n
	}
}

// New creates a resolver that resolves relative URIs against baseDir.
func New(baseDir string, opts ...Option) *Resolver {
	r := &Resolver{
		baseDir: baseDir,
		maxSize: DefaultMaxSize,
		cache:   make(map[string]*Resource),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the resource for a URI, reading it on first use and
// serving repeats from the per-conversion cache. A returned error means the
// reference should fall back to its alt text; it is never fatal.
func (r *Resolver) Resolve(uri string) (*Resource, error) {
	if res, ok := r.cache[uri]; ok {
		return res, nil
	}

	var res *Resource
	var err error
	if isRemote(uri) {
		res, err = r.resolveRemote(uri)
	} else {
		res, err = r.resolveLocal(uri)
	}
	if err != nil {
		return nil, err
	}

	r.cache[uri] = res
	return res, nil
}

// Reset releases all cached resources. Call between independent
// conversions if a resolver is reused.
func (r *Resolver) Reset() {
	r.cache = make(map[string]*Resource)
}

func isRemote(uri string) bool {
	return strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://")
}

func (r *Resolver) resolveRemote(uri string) (*Resource, error) {
	if r.fetcher == nil {
		return nil, fmt.Errorf("remote resource %q: no fetcher configured", uri)
	}

	data, mime, err := r.fetcher.Fetch(uri)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", uri, err)
	}
	if int64(len(data)) > r.maxSize {
		return nil, fmt.Errorf("resource %q exceeds size limit (%d bytes)", uri, r.maxSize)
	}
	if mime == "" {
		mime = sniffMIME(uri, data)
	}

	return &Resource{URI: uri, Data: data, MIME: mime}, nil
}

func (r *Resolver) resolveLocal(uri string) (*Resource, error) {
	path := filepath.FromSlash(uri)
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("resource %q: %w", uri, err)
	}
	if info.Size() > r.maxSize {
		return nil, fmt.Errorf("resource %q exceeds size limit (%d bytes)", uri, r.maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resource %q: %w", uri, err)
	}

	return &Resource{URI: uri, Data: data, MIME: sniffMIME(path, data)}, nil
}

// sniffMIME determines a MIME type from content, falling back to the file
// extension when sniffing is inconclusive.
func sniffMIME(name string, data []byte) string {
	mime := http.DetectContentType(data)
	if mime != "application/octet-stream" && mime != "text/plain; charset=utf-8" {
		return mime
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return mime
	}
}
