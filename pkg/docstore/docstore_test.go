package docstore_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/latinta/dashboard/pkg/docstore"
)

type sections struct {
	Identity string   `json:"identity"`
	Tags     []string `json:"tags"`
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func exercise(t *testing.T, store docstore.System) {
	t.Helper()
	ctx := context.Background()

	var got sections
	if _, err := store.Get(ctx, "prompt_sections", docstore.MainID, &got); !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("Get() on empty store error = %v, want ErrNotFound", err)
	}

	first, err := store.Put(ctx, "prompt_sections", docstore.MainID, sections{Identity: "uno", Tags: []string{"a"}})
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if first.IsZero() {
		t.Fatal("Put() returned zero time")
	}

	second, err := store.Put(ctx, "prompt_sections", docstore.MainID, sections{Identity: "dos"})
	if err != nil {
		t.Fatalf("Put() overwrite error = %v", err)
	}
	if second.Before(first) {
		t.Errorf("second write %v precedes first %v", second, first)
	}

	updatedAt, err := store.Get(ctx, "prompt_sections", docstore.MainID, &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Identity != "dos" {
		t.Errorf("identity = %q, want dos", got.Identity)
	}
	if !updatedAt.Equal(second) {
		t.Errorf("updatedAt = %v, want %v", updatedAt, second)
	}

	var other sections
	if _, err := store.Get(ctx, "strategies", docstore.MainID, &other); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("collections should be isolated, got error %v", err)
	}

	if err := store.Delete(ctx, "prompt_sections", docstore.MainID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, "prompt_sections", docstore.MainID, &got); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "prompt_sections", docstore.MainID); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestMemory(t *testing.T) {
	store := docstore.NewMemory(discard())

	if store.Source() != docstore.SourceMemory {
		t.Errorf("Source() = %q, want memory", store.Source())
	}

	exercise(t, store)
}

func TestMemoryReturnsCopies(t *testing.T) {
	store := docstore.NewMemory(discard())
	ctx := context.Background()

	in := sections{Identity: "uno", Tags: []string{"a"}}
	if _, err := store.Put(ctx, "c", docstore.MainID, in); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	in.Tags[0] = "mutated"

	var got sections
	if _, err := store.Get(ctx, "c", docstore.MainID, &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Tags[0] != "a" {
		t.Errorf("stored document aliased caller slice: %v", got.Tags)
	}
}

func TestMemoryConcurrentWrites(t *testing.T) {
	store := docstore.NewMemory(discard())
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			store.Put(ctx, "c", docstore.MainID, sections{Identity: "x"})
			var s sections
			store.Get(ctx, "c", docstore.MainID, &s)
		})
	}
	wg.Wait()

	var got sections
	if _, err := store.Get(ctx, "c", docstore.MainID, &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Identity != "x" {
		t.Errorf("identity = %q, want x", got.Identity)
	}
}

func TestMemoryEncodeError(t *testing.T) {
	store := docstore.NewMemory(discard())
	if _, err := store.Put(context.Background(), "c", docstore.MainID, make(chan int)); err == nil {
		t.Fatal("expected encode error for channel value")
	}
}

// TestPostgres runs against a migrated database when LATINTA_TEST_DSN is set.
func TestPostgres(t *testing.T) {
	dsn := os.Getenv("LATINTA_TEST_DSN")
	if dsn == "" {
		t.Skip("LATINTA_TEST_DSN not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("DELETE FROM documents WHERE collection IN ('prompt_sections', 'strategies')"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	store := docstore.NewPostgres(db, discard())
	if store.Source() != docstore.SourcePostgres {
		t.Errorf("Source() = %q, want postgres", store.Source())
	}

	exercise(t, store)
}
