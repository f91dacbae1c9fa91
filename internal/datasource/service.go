package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"jobboard/internal/domain"
	"jobboard/internal/logging"
)

// Options controls cache lifetime. A zero TTL keeps entries until they are
// invalidated.
type Options struct {
	TTL time.Duration
	Now func() time.Time
}

// Service loads job collections through a Transport and caches them by path.
// Concurrent loads of the same path share one transport request.
type Service struct {
	transport Transport
	ttl       time.Duration
	now       func() time.Time
	log       *logrus.Entry

	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group

	// Invalidate bumps gens[path] and InvalidateAll bumps epoch. A fetch
	// started before either is not stored.
	gens  map[string]uint64
	epoch uint64
}

type stamp struct {
	gen, epoch uint64
}

type entry struct {
	jobs     domain.Collection
	loadedAt time.Time
	size     int
}

// Entry describes one cached collection.
type Entry struct {
	Path     string    `json:"path"`
	Jobs     int       `json:"jobs"`
	Bytes    int       `json:"bytes"`
	LoadedAt time.Time `json:"loaded_at"`
	Age      string    `json:"age"`
}

func New(t Transport, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		transport: t,
		ttl:       opts.TTL,
		now:       now,
		log:       logging.Component("datasource"),
		entries:   make(map[string]entry),
		gens:      make(map[string]uint64),
	}
}

// Load returns the collection behind path, from cache when possible.
// Failures are *domain.LoadError and are never cached.
func (s *Service) Load(ctx context.Context, path string) (domain.Collection, error) {
	if jobs, ok := s.cached(path); ok {
		return jobs, nil
	}

	v, err, shared := s.group.Do(path, func() (any, error) {
		// a caller that arrived while the previous flight finished may find it cached
		if jobs, ok := s.cached(path); ok {
			return jobs, nil
		}
		at := s.stamp(path)
		jobs, size, err := s.fetch(context.WithoutCancel(ctx), path)
		if err != nil {
			return nil, err
		}
		s.store(path, at, jobs, size)
		return jobs, nil
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{"path": path, "shared": shared}).WithError(err).Error("load failed")
		return nil, err
	}
	return v.(domain.Collection), nil
}

// Refresh refetches path and replaces the cached entry only on success, so a
// failing upstream keeps serving the last good collection.
func (s *Service) Refresh(ctx context.Context, path string) (domain.Collection, error) {
	at := s.stamp(path)
	jobs, size, err := s.fetch(ctx, path)
	if err != nil {
		s.log.WithField("path", path).WithError(err).Warn("refresh failed; keeping cached entry")
		return nil, err
	}
	s.store(path, at, jobs, size)
	return jobs, nil
}

func (s *Service) Invalidate(path string) {
	s.mu.Lock()
	delete(s.entries, path)
	s.gens[path]++
	s.mu.Unlock()
	s.group.Forget(path)
	s.log.WithField("path", path).Info("cache invalidated")
}

func (s *Service) InvalidateAll() {
	s.mu.Lock()
	paths := make([]string, 0, len(s.entries))
	for p := range s.entries {
		paths = append(paths, p)
	}
	s.entries = make(map[string]entry)
	s.epoch++
	s.mu.Unlock()
	for _, p := range paths {
		s.group.Forget(p)
	}
	s.log.WithField("paths", len(paths)).Info("cache cleared")
}

// Entries lists cached paths in name order.
func (s *Service) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.entries))
	for p, e := range s.entries {
		out = append(out, Entry{
			Path:     p,
			Jobs:     len(e.jobs),
			Bytes:    e.size,
			LoadedAt: e.loadedAt,
			Age:      humanize.RelTime(e.loadedAt, s.now(), "ago", "from now"),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func (s *Service) cached(path string) (domain.Collection, bool) {
	s.mu.RLock()
	e, ok := s.entries[path]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && s.now().Sub(e.loadedAt) >= s.ttl {
		return nil, false
	}
	return e.jobs, true
}

func (s *Service) stamp(path string) stamp {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stamp{gen: s.gens[path], epoch: s.epoch}
}

// store caches jobs unless path was invalidated since at was taken.
func (s *Service) store(path string, at stamp, jobs domain.Collection, size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[path] != at.gen || s.epoch != at.epoch {
		s.log.WithField("path", path).Debug("discarding fetch that raced an invalidation")
		return
	}
	s.entries[path] = entry{jobs: jobs, loadedAt: s.now(), size: size}
}

func (s *Service) fetch(ctx context.Context, path string) (domain.Collection, int, error) {
	b, err := s.transport.Fetch(ctx, path)
	if err != nil {
		return nil, 0, &domain.LoadError{Path: path, Err: err}
	}
	jobs, err := Decode(b)
	if err != nil {
		return nil, 0, &domain.LoadError{Path: path, Err: err}
	}
	s.log.WithFields(logrus.Fields{
		"path":  path,
		"jobs":  len(jobs),
		"bytes": humanize.Bytes(uint64(len(b))),
	}).Info("loaded jobs")
	return jobs, len(b), nil
}

var errNotArray = errors.New("payload is not a JSON array of job records")

// Decode parses a jobs document. The top level must be an array.
func Decode(b []byte) (domain.Collection, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotArray
	}
	var jobs domain.Collection
	if err := json.Unmarshal(trimmed, &jobs); err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = domain.Collection{}
	}
	return jobs, nil
}
