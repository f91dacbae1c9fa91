package scheduler

import (
	"context"
	"time"

	"jobboard/internal/logging"
)

type Task func(ctx context.Context) error

// Every runs task once immediately and then on each tick until ctx is done.
// Task errors are logged and do not stop the loop.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	log := logging.Component("scheduler").WithField("task", name)

	t := time.NewTicker(interval)
	defer t.Stop()

	run := func() {
		if err := task(ctx); err != nil {
			log.WithError(err).Warn("task failed")
		}
	}

	run()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
