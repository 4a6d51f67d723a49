package importer

import (
	"context"
	"errors"
	"testing"
	"time"

	"familygarden/internal/testsupport"
)

func TestAcquireLockExcludesConcurrentCommitsInProcess(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	imp := &Importer{cfg: cfg, lockRetry: 10 * time.Millisecond}
	ctx := context.Background()

	held, err := imp.acquireLock(ctx)
	if err != nil {
		t.Fatalf("first acquireLock: %v", err)
	}
	if _, err := imp.acquireLock(ctx); !errors.Is(err, ErrImportLocked) {
		t.Fatalf("second acquireLock on the same importer = %v, want ErrImportLocked", err)
	}

	if err := held.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	again, err := imp.acquireLock(ctx)
	if err != nil {
		t.Fatalf("acquireLock after release: %v", err)
	}
	_ = again.Unlock()
}
