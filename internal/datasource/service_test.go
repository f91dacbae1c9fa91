package datasource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"jobboard/internal/domain"
)

func sampleJobs(n int) []domain.JobRecord {
	out := make([]domain.JobRecord, n)
	for i := range out {
		out[i] = domain.JobRecord{ID: i + 1, Title: "Job", Category: "Technology"}
	}
	return out
}

func TestLoadCachesByPath(t *testing.T) {
	mt := NewMemoryTransport()
	if err := mt.Put("data/jobs.json", sampleJobs(5)); err != nil {
		t.Fatal(err)
	}
	svc := New(mt, Options{})
	ctx := context.Background()

	first, err := svc.Load(ctx, "data/jobs.json")
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := svc.Load(ctx, "data/jobs.json")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(first) != 5 || &first[0] != &second[0] {
		t.Errorf("second load should return the cached collection")
	}
	if got := mt.CallCount("data/jobs.json"); got != 1 {
		t.Errorf("transport calls = %d, want 1", got)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	mt := NewMemoryTransport()
	_ = mt.Put("a.json", sampleJobs(2))
	_ = mt.Put("b.json", sampleJobs(3))
	svc := New(mt, Options{})
	ctx := context.Background()

	_, _ = svc.Load(ctx, "a.json")
	_, _ = svc.Load(ctx, "b.json")
	svc.Invalidate("a.json")
	_, _ = svc.Load(ctx, "a.json")
	_, _ = svc.Load(ctx, "b.json")

	if got := mt.CallCount("a.json"); got != 2 {
		t.Errorf("a.json calls = %d, want 2", got)
	}
	if got := mt.CallCount("b.json"); got != 1 {
		t.Errorf("b.json calls = %d, want 1", got)
	}

	svc.InvalidateAll()
	if n := len(svc.Entries()); n != 0 {
		t.Errorf("entries after InvalidateAll = %d", n)
	}
}

func TestTTLExpiry(t *testing.T) {
	mt := NewMemoryTransport()
	_ = mt.Put("jobs.json", sampleJobs(1))

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := New(mt, Options{TTL: time.Minute, Now: func() time.Time { return now }})
	ctx := context.Background()

	_, _ = svc.Load(ctx, "jobs.json")
	now = now.Add(30 * time.Second)
	_, _ = svc.Load(ctx, "jobs.json")
	if got := mt.CallCount("jobs.json"); got != 1 {
		t.Fatalf("calls within ttl = %d", got)
	}
	now = now.Add(time.Minute)
	_, _ = svc.Load(ctx, "jobs.json")
	if got := mt.CallCount("jobs.json"); got != 2 {
		t.Errorf("calls after ttl = %d, want 2", got)
	}
}

type blockingTransport struct {
	calls   atomic.Int32
	release chan struct{}
	body    []byte
}

func (b *blockingTransport) Fetch(ctx context.Context, path string) ([]byte, error) {
	b.calls.Add(1)
	<-b.release
	return b.body, nil
}

func TestConcurrentFirstLoadsShareOneRequest(t *testing.T) {
	bt := &blockingTransport{release: make(chan struct{}), body: []byte(`[{"id":1,"title":"A"}]`)}
	svc := New(bt, Options{})

	const callers = 8
	var wg sync.WaitGroup
	results := make([]domain.Collection, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Load(context.Background(), "jobs.json")
		}(i)
	}

	// let the goroutines pile up on the in-flight request
	time.Sleep(50 * time.Millisecond)
	close(bt.release)
	wg.Wait()

	if got := bt.calls.Load(); got != 1 {
		t.Errorf("transport calls = %d, want 1", got)
	}
	for i := range results {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if len(results[i]) != 1 || results[i][0].Title != "A" {
			t.Errorf("caller %d got %v", i, results[i])
		}
	}
}

func TestLoadErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/down.json":
			http.Error(w, "maintenance", http.StatusServiceUnavailable)
		case "/object.json":
			_, _ = w.Write([]byte(`{"jobs":[]}`))
		case "/bad-id.json":
			_, _ = w.Write([]byte(`[{"id":"seven"}]`))
		default:
			_, _ = w.Write([]byte(`[{"id":7,"title":"Remote"}]`))
		}
	}))
	defer srv.Close()

	tr := RouterTransport{
		HTTP: NewHTTPTransport(2*time.Second, NewHostLimiter(100, 10)),
		File: FileTransport{Root: t.TempDir()},
	}
	svc := New(tr, Options{})
	ctx := context.Background()

	for _, path := range []string{srv.URL + "/down.json", srv.URL + "/object.json", srv.URL + "/bad-id.json", "missing.json"} {
		_, err := svc.Load(ctx, path)
		var le *domain.LoadError
		if !errors.As(err, &le) {
			t.Errorf("%s: expected LoadError, got %v", path, err)
			continue
		}
		if le.Path != path {
			t.Errorf("LoadError.Path = %q, want %q", le.Path, path)
		}
	}

	_, err := svc.Load(ctx, srv.URL+"/down.json")
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusServiceUnavailable {
		t.Errorf("expected StatusError 503, got %v", err)
	}
	if n := len(svc.Entries()); n != 0 {
		t.Errorf("failed loads must not be cached, entries = %d", n)
	}

	jobs, err := svc.Load(ctx, srv.URL+"/ok.json")
	if err != nil || len(jobs) != 1 || jobs[0].ID != 7 {
		t.Errorf("ok load = %v, %v", jobs, err)
	}
}

func TestFileTransportRelativeToRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "data", "jobs.json"), []byte(" [] "), 0o644); err != nil {
		t.Fatal(err)
	}
	svc := New(FileTransport{Root: root}, Options{})
	jobs, err := svc.Load(context.Background(), "data/jobs.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if jobs == nil || len(jobs) != 0 {
		t.Errorf("expected empty, non-nil collection, got %#v", jobs)
	}
}

func TestRefreshKeepsLastGoodEntry(t *testing.T) {
	mt := NewMemoryTransport()
	_ = mt.Put("jobs.json", sampleJobs(2))
	svc := New(mt, Options{})
	ctx := context.Background()

	if _, err := svc.Load(ctx, "jobs.json"); err != nil {
		t.Fatal(err)
	}
	mt.PutRaw("jobs.json", []byte("not json"))
	if _, err := svc.Refresh(ctx, "jobs.json"); err == nil {
		t.Fatal("expected refresh error")
	}
	jobs, err := svc.Load(ctx, "jobs.json")
	if err != nil || len(jobs) != 2 {
		t.Errorf("cached entry lost after failed refresh: %v %v", jobs, err)
	}

	_ = mt.Put("jobs.json", sampleJobs(4))
	if _, err := svc.Refresh(ctx, "jobs.json"); err != nil {
		t.Fatal(err)
	}
	jobs, _ = svc.Load(ctx, "jobs.json")
	if len(jobs) != 4 {
		t.Errorf("refresh did not replace entry: %d jobs", len(jobs))
	}

	entries := svc.Entries()
	if len(entries) != 1 || entries[0].Jobs != 4 || entries[0].Bytes == 0 {
		t.Errorf("entries = %+v", entries)
	}
}

// gatedTransport holds the first Fetch until release is closed and serves
// "old"; later calls return "new" at once.
type gatedTransport struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func newGatedTransport() *gatedTransport {
	return &gatedTransport{started: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedTransport) Fetch(ctx context.Context, path string) ([]byte, error) {
	g.mu.Lock()
	g.calls++
	n := g.calls
	g.mu.Unlock()
	if n == 1 {
		close(g.started)
		<-g.release
		return []byte(`[{"id":1,"title":"old"}]`), nil
	}
	return []byte(`[{"id":1,"title":"new"}]`), nil
}

func TestInvalidateDuringFetchDropsResult(t *testing.T) {
	for name, invalidate := range map[string]func(*Service){
		"path": func(s *Service) { s.Invalidate("jobs.json") },
		"all":  func(s *Service) { s.InvalidateAll() },
	} {
		t.Run(name, func(t *testing.T) {
			gt := newGatedTransport()
			svc := New(gt, Options{})
			ctx := context.Background()

			done := make(chan domain.Collection)
			go func() {
				jobs, _ := svc.Load(ctx, "jobs.json")
				done <- jobs
			}()
			<-gt.started
			invalidate(svc)
			close(gt.release)

			if jobs := <-done; len(jobs) != 1 || jobs[0].Title != "old" {
				t.Fatalf("in-flight caller got %v", jobs)
			}
			if n := len(svc.Entries()); n != 0 {
				t.Fatalf("stale fetch was cached, entries = %d", n)
			}

			jobs, err := svc.Load(ctx, "jobs.json")
			if err != nil || len(jobs) != 1 || jobs[0].Title != "new" {
				t.Errorf("load after invalidate = %v, %v", jobs, err)
			}
			if n := len(svc.Entries()); n != 1 {
				t.Errorf("fresh fetch not cached, entries = %d", n)
			}
		})
	}
}
