package storage_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/latinta/dashboard/pkg/lifecycle"
	"github.com/latinta/dashboard/pkg/storage"
)

const azuriteConnString = "DefaultEndpointsProtocol=http;AccountName=latintastore;AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;BlobEndpoint=http://127.0.0.1:10000/latintastore;"

func newLocal(t *testing.T) storage.System {
	t.Helper()
	cfg := &storage.Config{Dir: t.TempDir()}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	sys, err := storage.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return sys
}

func TestNewSelectsBackend(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
		want string
	}{
		{
			name: "local by default",
			cfg:  storage.Config{Dir: "."},
			want: storage.BackendLocal,
		},
		{
			name: "azure with connection string",
			cfg:  storage.Config{ContainerName: "latinta", ConnectionString: azuriteConnString},
			want: storage.BackendAzure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, err := storage.New(&tt.cfg, slog.Default())
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if sys.Source() != tt.want {
				t.Errorf("Source() = %q, want %q", sys.Source(), tt.want)
			}
		})
	}
}

func TestNewInvalidConnectionString(t *testing.T) {
	cfg := &storage.Config{
		ContainerName:    "latinta",
		ConnectionString: "not-a-connection-string",
	}

	if _, err := storage.New(cfg, slog.Default()); err == nil {
		t.Fatal("expected error for invalid connection string, got nil")
	}
}

func TestLocalLifecycle(t *testing.T) {
	sys := newLocal(t)
	ctx := context.Background()
	key := "la_tinta_precios_superficie.csv"

	if _, err := sys.Download(ctx, key); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Download() error = %v, want ErrNotFound", err)
	}

	if err := sys.Upload(ctx, key, strings.NewReader("paper_id\nsmooth\n"), "text/csv"); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if err := sys.Upload(ctx, key, strings.NewReader("paper_id\nluster\n"), "text/csv"); err != nil {
		t.Fatalf("Upload() overwrite error = %v", err)
	}

	rc, err := sys.Download(ctx, key)
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	body, _ := io.ReadAll(rc)
	rc.Close()

	if string(body) != "paper_id\nluster\n" {
		t.Errorf("body = %q, want overwritten content", body)
	}
}

func TestLocalNestedKey(t *testing.T) {
	sys := newLocal(t)
	ctx := context.Background()

	if err := sys.Upload(ctx, "exports/precios.csv", strings.NewReader("x"), "text/csv"); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	rc, err := sys.Download(ctx, "exports/precios.csv")
	if err != nil {
		t.Fatalf("nested key should download after upload: %v", err)
	}
	rc.Close()
}

func TestKeyValidation(t *testing.T) {
	sys := newLocal(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "empty key", key: "", wantErr: storage.ErrEmptyKey},
		{name: "parent traversal", key: "../etc/passwd", wantErr: storage.ErrInvalidKey},
		{name: "absolute path", key: "/etc/passwd", wantErr: storage.ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := sys.Upload(ctx, tt.key, strings.NewReader(""), "text/plain"); !errors.Is(err, tt.wantErr) {
				t.Errorf("Upload() error = %v, want %v", err, tt.wantErr)
			}
			if _, err := sys.Download(ctx, tt.key); !errors.Is(err, tt.wantErr) {
				t.Errorf("Download() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsKeyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"empty key", storage.ErrEmptyKey, true},
		{"invalid key", storage.ErrInvalidKey, true},
		{"wrapped invalid key", fmt.Errorf("upload: %w", storage.ErrInvalidKey), true},
		{"not found", storage.ErrNotFound, false},
		{"backend failure", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := storage.IsKeyError(tt.err); got != tt.want {
				t.Errorf("IsKeyError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocalStartTracksReadiness(t *testing.T) {
	cfg := &storage.Config{Dir: t.TempDir() + "/nested/blobs"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	sys, err := storage.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if sys.Ready() {
		t.Fatal("Ready() = true before startup hooks ran")
	}

	lc.WaitForStartup()

	if !sys.Ready() {
		t.Error("Ready() = false after startup")
	}
	if !lc.Ready() {
		t.Errorf("lifecycle pending %v", lc.Pending())
	}
}
