package scheduler

import (
	"context"
	"time"

	"jobboard/internal/domain"
	"jobboard/internal/events"
)

// Refresher is satisfied by *datasource.Service.
type Refresher interface {
	Refresh(ctx context.Context, path string) (domain.Collection, error)
}

// RefreshJobs keeps path warm in the cache, announcing each successful
// reload on hub. It returns when ctx is done.
func RefreshJobs(ctx context.Context, every time.Duration, r Refresher, path string, hub *events.Hub) {
	Every(ctx, every, "refresh-jobs", func(ctx context.Context) error {
		jobs, err := r.Refresh(ctx, path)
		if err != nil {
			return err
		}
		hub.Emit("", events.TypeJobsReloaded, events.JobsReloaded{Path: path, Jobs: len(jobs)})
		return nil
	})
}
