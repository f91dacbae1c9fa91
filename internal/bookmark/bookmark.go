package bookmark

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"jobboard/internal/logging"
	"jobboard/internal/store"
)

// Store is the bookmark capability the views call. Toggle flips the state of
// id and reports whether it is bookmarked afterwards.
type Store interface {
	Toggle(ctx context.Context, id int) (bool, error)
	IsBookmarked(ctx context.Context, id int) (bool, error)
}

// Noop only logs. It is the default when no backend is configured.
type Noop struct{}

func (Noop) Toggle(ctx context.Context, id int) (bool, error) {
	logging.Component("bookmark").WithField("id", id).Info("bookmark toggled (noop)")
	return false, nil
}

func (Noop) IsBookmarked(ctx context.Context, id int) (bool, error) { return false, nil }

// KVKey is the kv entry holding the bookmarked ids.
const KVKey = "bookmarks"

// KVStore keeps the set of bookmarked ids as one JSON array in the kv table.
type KVStore struct {
	DB *sql.DB

	mu sync.Mutex
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{DB: db}
}

func (s *KVStore) Toggle(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	_, had := set[id]
	if had {
		delete(set, id)
	} else {
		set[id] = struct{}{}
	}
	if err := store.SaveJSON(ctx, s.DB, KVKey, sortedIDs(set)); err != nil {
		return had, err
	}
	logging.Component("bookmark").WithField("id", id).WithField("bookmarked", !had).Info("bookmark toggled")
	return !had, nil
}

func (s *KVStore) IsBookmarked(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	_, ok := set[id]
	return ok, nil
}

// List returns bookmarked ids in ascending order.
func (s *KVStore) List(ctx context.Context) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return sortedIDs(set), nil
}

func (s *KVStore) load(ctx context.Context) (map[int]struct{}, error) {
	var ids []int
	if _, err := store.LoadJSON(ctx, s.DB, KVKey, &ids); err != nil {
		return nil, err
	}
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func sortedIDs(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
