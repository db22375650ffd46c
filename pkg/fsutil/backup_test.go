package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/tsblank/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")

	if got := fsutil.BackupPath("dist/a.js", fsutil.BackupModeSidecar); got != "dist/a.js.tsblank.bak" {
		t.Errorf("sidecar = %q", got)
	}
	if got := fsutil.BackupPath("dist/a.js", fsutil.BackupModeNone); got != "" {
		t.Errorf("none = %q", got)
	}
	if got := fsutil.BackupPath("/src/dist/a.js", fsutil.BackupModeXDG); got != filepath.FromSlash("/state/tsblank/backups/src/dist/a.js.tsblank.bak") {
		t.Errorf("xdg = %q", got)
	}
	if got := fsutil.BackupPath("a.js", "bogus"); !strings.HasSuffix(got, fsutil.BackupSuffix) {
		t.Errorf("unknown mode = %q", got)
	}
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	t.Run("keeps the oldest content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.js")
		if err := os.WriteFile(path, []byte("v1"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		created, err := fsutil.CreateBackup(ctx, path, cfg)
		if err != nil || !created {
			t.Fatalf("CreateBackup() = %v, %v; want true, nil", created, err)
		}

		if err := os.WriteFile(path, []byte("v2"), 0o600); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		created, err = fsutil.CreateBackup(ctx, path, cfg)
		if err != nil || created {
			t.Fatalf("second CreateBackup() = %v, %v; want false, nil", created, err)
		}

		got, err := os.ReadFile(path + fsutil.BackupSuffix)
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != "v1" {
			t.Errorf("backup = %q, want v1", got)
		}
		if !fsutil.BackupExists(path, fsutil.BackupModeSidecar) {
			t.Error("BackupExists() = false")
		}

		removed, err := fsutil.RemoveBackup(path, fsutil.BackupModeSidecar)
		if err != nil || !removed {
			t.Errorf("RemoveBackup() = %v, %v", removed, err)
		}
		removed, err = fsutil.RemoveBackup(path, fsutil.BackupModeSidecar)
		if err != nil || removed {
			t.Errorf("second RemoveBackup() = %v, %v", removed, err)
		}
	})

	t.Run("missing file or disabled", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.js")
		if created, err := fsutil.CreateBackup(ctx, path, cfg); err != nil || created {
			t.Errorf("CreateBackup(missing) = %v, %v", created, err)
		}
		if created, err := fsutil.CreateBackup(ctx, path, fsutil.BackupConfig{}); err != nil || created {
			t.Errorf("CreateBackup(disabled) = %v, %v", created, err)
		}
	})
}
