package jobstore

import "jobboard/internal/domain"

const DefaultPageSize = 6

// Store holds one loaded collection and derives pages and related records
// from it. It never copies or reorders the collection.
type Store struct {
	jobs     domain.Collection
	pageSize int
}

// New wraps jobs. A pageSize <= 0 falls back to DefaultPageSize.
func New(jobs domain.Collection, pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Store{jobs: jobs, pageSize: pageSize}
}

func (s *Store) Len() int      { return len(s.jobs) }
func (s *Store) PageSize() int { return s.pageSize }

// TotalPages is ceil(Len/PageSize); 0 for an empty collection.
func (s *Store) TotalPages() int {
	return (len(s.jobs) + s.pageSize - 1) / s.pageSize
}

// Page returns items [(n-1)*size, n*size) clipped to the collection.
// Out-of-range page numbers yield an empty slice; callers clamp.
func (s *Store) Page(n int) domain.Collection {
	start := (n - 1) * s.pageSize
	if n < 1 || start >= len(s.jobs) {
		return domain.Collection{}
	}
	end := start + s.pageSize
	if end > len(s.jobs) {
		end = len(s.jobs)
	}
	return s.jobs[start:end]
}

// ClampPage moves n into [1, TotalPages()]. An empty store clamps to 1.
func (s *Store) ClampPage(n int) int {
	total := s.TotalPages()
	if n > total {
		n = total
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Find returns the first record with the given id.
func (s *Store) Find(id int) (domain.JobRecord, bool) {
	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return domain.JobRecord{}, false
}

// RelatedTo returns up to limit records sharing rec's category, skipping any
// record with rec's id, in collection order.
func (s *Store) RelatedTo(rec domain.JobRecord, limit int) domain.Collection {
	out := domain.Collection{}
	if limit <= 0 {
		return out
	}
	for _, j := range s.jobs {
		if j.Category != rec.Category || j.ID == rec.ID {
			continue
		}
		out = append(out, j)
		if len(out) == limit {
			break
		}
	}
	return out
}
