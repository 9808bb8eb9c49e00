package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/latinta/dashboard/pkg/lifecycle"
)

func TestNotReadyBeforeStartup(t *testing.T) {
	lc := lifecycle.New()
	if lc.Ready() {
		t.Error("should not be ready before WaitForStartup")
	}
}

func TestReadyAfterStartup(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()

	if !lc.Ready() {
		t.Error("should be ready after WaitForStartup")
	}
}

func TestStartupHooksExecute(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			count.Add(1)
		})
	}

	lc.WaitForStartup()

	if got := count.Load(); got != 3 {
		t.Errorf("startup hooks: got %d, want 3", got)
	}
}

func TestShutdownHooksExecute(t *testing.T) {
	lc := lifecycle.New()

	var cleaned atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		cleaned.Store(true)
	})

	lc.WaitForStartup()

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	if !cleaned.Load() {
		t.Error("shutdown hook did not execute")
	}
}

func TestShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(500 * time.Millisecond)
	})

	lc.WaitForStartup()

	err := lc.Shutdown(50 * time.Millisecond)
	if err == nil {
		t.Error("expected timeout error, got nil")
	}
}

func TestContextCancelledOnShutdown(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	select {
	case <-lc.Context().Done():
	default:
		t.Error("context should be cancelled after shutdown")
	}
}

type checker bool

func (c checker) Ready() bool { return bool(c) }

func TestTrackedCheckersGateReadiness(t *testing.T) {
	lc := lifecycle.New()
	lc.Track("storage", checker(true))
	lc.Track("database", checker(false))
	lc.WaitForStartup()

	if lc.Ready() {
		t.Fatal("should not be ready while database is pending")
	}

	pending := lc.Pending()
	if len(pending) != 1 || pending[0] != "database" {
		t.Fatalf("Pending() = %v, want [database]", pending)
	}

	lc.Track("database", checker(true))
	if !lc.Ready() {
		t.Errorf("should be ready once database reports ready, pending %v", lc.Pending())
	}
}

func TestPendingSorted(t *testing.T) {
	lc := lifecycle.New()
	lc.Track("zeta", checker(false))
	lc.Track("alpha", checker(false))

	pending := lc.Pending()
	if len(pending) != 2 || pending[0] != "alpha" || pending[1] != "zeta" {
		t.Errorf("Pending() = %v, want [alpha zeta]", pending)
	}
}
