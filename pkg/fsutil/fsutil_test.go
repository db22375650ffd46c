package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yaklabco/tsblank/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns content and metadata", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.ts")
		if err := os.WriteFile(path, []byte("let x: number = 1;\n"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		content, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(content) != "let x: number = 1;\n" {
			t.Errorf("content = %q", content)
		}
		if info.Size != int64(len(content)) || info.Path != path {
			t.Errorf("info = %+v", info)
		}
	})

	tests := []struct {
		name    string
		setup   func(dir string) string
		wantErr error
	}{
		{
			name:    "missing file",
			setup:   func(dir string) string { return filepath.Join(dir, "missing.ts") },
			wantErr: fsutil.ErrNotFound,
		},
		{
			name:    "directory",
			setup:   func(dir string) string { return dir },
			wantErr: fsutil.ErrIsDirectory,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := fsutil.ReadFile(context.Background(), testCase.setup(t.TempDir()))
			if !errors.Is(err, testCase.wantErr) {
				t.Errorf("ReadFile() error = %v, want %v", err, testCase.wantErr)
			}
		})
	}

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, _, err := fsutil.ReadFile(ctx, "a.ts"); !errors.Is(err, context.Canceled) {
			t.Errorf("ReadFile() error = %v, want context.Canceled", err)
		}
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unchanged", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.ts")
		if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		_, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil || modified {
			t.Errorf("CheckModified() = %v, %v; want false, nil", modified, err)
		}
	})

	t.Run("rewritten with same size and time", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.ts")
		if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		_, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if err := os.WriteFile(path, []byte("y"), 0o600); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		if err := os.Chtimes(path, time.Time{}, info.ModTime); err != nil {
			t.Fatalf("chtimes: %v", err)
		}

		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil || !modified {
			t.Errorf("CheckModified() = %v, %v; want true, nil", modified, err)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.ts")
		if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		_, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if err := os.Remove(path); err != nil {
			t.Fatalf("remove: %v", err)
		}

		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil || !modified {
			t.Errorf("CheckModified() = %v, %v; want true, nil", modified, err)
		}
	})

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()

		if _, err := fsutil.CheckModified(ctx, nil); !errors.Is(err, fsutil.ErrNilFileInfo) {
			t.Errorf("CheckModified(nil) error = %v", err)
		}
	})
}
