package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"jobboard/internal/domain"
)

// Transport fetches the raw bytes behind a source path.
type Transport interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// StatusError is a non-success response from an upstream feed.
type StatusError struct {
	Status string
	Code   int
}

func (e *StatusError) Error() string { return "upstream status: " + e.Status }

// maxPayload bounds a single jobs document.
const maxPayload = 8 << 20

var ErrPayloadTooLarge = errors.New("jobs document exceeds size limit")

// readLimited reads all of r, failing with ErrPayloadTooLarge when r holds
// more than limit bytes.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("%w (limit %d bytes)", ErrPayloadTooLarge, limit)
	}
	return b, nil
}

// FileTransport reads paths relative to Root. Absolute paths are read as-is.
type FileTransport struct {
	Root string
}

func (t FileTransport) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := path
	if !filepath.IsAbs(p) && t.Root != "" {
		p = filepath.Join(t.Root, p)
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLimited(f, maxPayload)
}

// HTTPTransport GETs absolute http(s) URLs. Any non-2xx status is an error.
type HTTPTransport struct {
	Client  *http.Client
	Limiter *HostLimiter
}

func NewHTTPTransport(timeout time.Duration, limiter *HostLimiter) *HTTPTransport {
	return &HTTPTransport{
		Client:  &http.Client{Timeout: timeout},
		Limiter: limiter,
	}
}

func (t *HTTPTransport) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if t.Limiter != nil {
		if err := t.Limiter.WaitURL(ctx, rawURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "jobboard/1.0 (+local)")

	hc := t.Client
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Status: resp.Status, Code: resp.StatusCode}
	}
	return readLimited(resp.Body, maxPayload)
}

// MemoryTransport serves in-memory record arrays keyed by path and counts
// Fetch calls per path.
type MemoryTransport struct {
	mu    sync.Mutex
	docs  map[string][]byte
	calls map[string]int
}

func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{
		docs:  make(map[string][]byte),
		calls: make(map[string]int),
	}
}

// Put stores records under path. A nil slice is stored as JSON null.
func (t *MemoryTransport) Put(path string, records []domain.JobRecord) error {
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	t.PutRaw(path, b)
	return nil
}

func (t *MemoryTransport) PutRaw(path string, b []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.docs[path] = b
}

func (t *MemoryTransport) CallCount(path string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls[path]
}

func (t *MemoryTransport) Fetch(ctx context.Context, path string) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls[path]++
	b, ok := t.docs[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, os.ErrNotExist)
	}
	return b, nil
}

// RouterTransport sends http(s) URLs to HTTP and everything else to File.
type RouterTransport struct {
	HTTP Transport
	File Transport
}

func (t RouterTransport) Fetch(ctx context.Context, path string) ([]byte, error) {
	low := strings.ToLower(path)
	if strings.HasPrefix(low, "http://") || strings.HasPrefix(low, "https://") {
		if t.HTTP == nil {
			return nil, fmt.Errorf("no http transport configured for %s", path)
		}
		return t.HTTP.Fetch(ctx, path)
	}
	if t.File == nil {
		return nil, fmt.Errorf("no file transport configured for %s", path)
	}
	return t.File.Fetch(ctx, path)
}
