// Package lock provides advisory file locking for report files shared
// between concurrent runs.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// ErrLockTimeout is returned when the lock is still held by another
// process once the context expires.
var ErrLockTimeout = errors.New("timed out waiting for another dircompat run to finish writing")

// DefaultRetryDelay is how often a held lock is polled.
const DefaultRetryDelay = 50 * time.Millisecond

// Flocker abstracts the subset of flock.Flock used for advisory locking.
type Flocker interface {
	TryLockContext(ctx context.Context, retryDelay time.Duration) (bool, error)
	Unlock() error
}

// Lock wraps a Flocker and waits for it until the caller's context ends.
type Lock struct {
	flocker    Flocker
	retryDelay time.Duration
}

// New creates a Lock from the given Flocker.
func New(f Flocker) *Lock {
	return &Lock{flocker: f, retryDelay: DefaultRetryDelay}
}

// NewFromPath creates a Lock backed by a file at the given path.
func NewFromPath(path string) *Lock {
	return New(flock.New(path))
}

// Acquire polls for the lock until it is obtained or ctx is done.
// A deadline expiring while another process holds the lock yields
// ErrLockTimeout; explicit cancellation yields the context's error.
func (l *Lock) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok, err := l.flocker.TryLockContext(ctx, l.retryDelay)
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrLockTimeout
	}
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		return fmt.Errorf("acquiring lock: %w", err)
	}
	if !ok {
		return ErrLockTimeout
	}
	return nil
}

// Unlock releases the advisory lock.
func (l *Lock) Unlock() error {
	if err := l.flocker.Unlock(); err != nil {
		return fmt.Errorf("releasing lock: %w", err)
	}
	return nil
}
