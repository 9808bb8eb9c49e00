package storage_test

import (
	"strings"
	"testing"

	"github.com/latinta/dashboard/pkg/storage"
)

func TestFinalizeDefaults(t *testing.T) {
	cfg := storage.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Dir != "." {
		t.Errorf("dir: got %s, want .", cfg.Dir)
	}
	if cfg.ContainerName != "latinta" {
		t.Errorf("container_name: got %s, want latinta", cfg.ContainerName)
	}
	if cfg.Backend() != storage.BackendLocal {
		t.Errorf("backend: got %s, want local", cfg.Backend())
	}
}

func TestFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_CONTAINER", "uploads")
	t.Setenv("TEST_CONN", "override-connection")
	t.Setenv("TEST_DIR", "/var/lib/latinta")

	env := &storage.Env{
		Dir:              "TEST_DIR",
		ContainerName:    "TEST_CONTAINER",
		ConnectionString: "TEST_CONN",
		AccountURL:       "TEST_ACCOUNT_URL",
	}

	cfg := storage.Config{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Dir != "/var/lib/latinta" {
		t.Errorf("dir: got %s, want /var/lib/latinta", cfg.Dir)
	}
	if cfg.ContainerName != "uploads" {
		t.Errorf("container_name: got %s, want uploads", cfg.ContainerName)
	}
	if cfg.ConnectionString != "override-connection" {
		t.Errorf("connection_string: got %s, want override-connection", cfg.ConnectionString)
	}
	if cfg.Backend() != storage.BackendAzure {
		t.Errorf("backend: got %s, want azure-blob", cfg.Backend())
	}
}

func TestFinalizeValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     storage.Config
		wantErr string
	}{
		{
			name: "local needs nothing",
			cfg:  storage.Config{},
		},
		{
			name: "account url alone is valid",
			cfg:  storage.Config{AccountURL: "https://latinta.blob.core.windows.net"},
		},
		{
			name: "connection string and account url conflict",
			cfg: storage.Config{
				ConnectionString: "conn",
				AccountURL:       "https://latinta.blob.core.windows.net",
			},
			wantErr: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := storage.Config{Dir: "data", ContainerName: "latinta"}
	base.Merge(&storage.Config{ConnectionString: "conn"})

	if base.Dir != "data" {
		t.Errorf("dir: got %s, want data (unchanged)", base.Dir)
	}
	if base.ConnectionString != "conn" {
		t.Errorf("connection_string: got %s, want conn", base.ConnectionString)
	}
}
