package repositories

import (
	"context"
	"fmt"
	"log"
	"time"

	"hospitalflow/database"

	"github.com/google/uuid"
)

const (
	lockTTL       = 10 * time.Second
	lockRetries   = 3
	lockRetryWait = 2 * time.Second
)

// withLock serializes a mutation on a single record behind a Redis lock.
// Concurrent advance/transfer/payment calls on the same id must not
// interleave or the state-machine and balance invariants break.
func withLock(ctx context.Context, key string, fn func() error) error {
	lockValue := uuid.New().String()
	var locked bool
	var err error
	for i := 0; i < lockRetries; i++ {
		locked, err = database.NewLock(ctx, key, lockValue, lockTTL)
		if err == nil && locked {
			break
		}
		if i < lockRetries-1 {
			time.Sleep(lockRetryWait)
		}
	}
	if !locked {
		if err != nil {
			return fmt.Errorf("failed to acquire lock after retries: %w", err)
		}
		return fmt.Errorf("failed to acquire lock %s after %d attempts", key, lockRetries)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, key, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()
	return fn()
}

// newID generates an opaque prefixed identifier.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
}
