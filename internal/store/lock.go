package store

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockDataDir takes an exclusive lock on <dir>/jobboard.lock so two servers
// never share one sqlite file. Call Unlock on the result when done.
func LockDataDir(dir string) (*flock.Flock, error) {
	fl := flock.New(filepath.Join(dir, "jobboard.lock"))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock data dir %s: %w", dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("data dir %s is in use by another jobboard process", dir)
	}
	return fl, nil
}
