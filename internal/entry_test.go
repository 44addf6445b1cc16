package internal

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/starford/drafts/internal/apperr"
	"github.com/starford/drafts/internal/testutil"
)

func runInTemp(t *testing.T, cfg *Config, name string) (string, string, string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), name,
		WithConfig(cfg),
		WithClock(testutil.FixedClock(2024, time.March, 15)),
		WithStdout(&stdout),
		WithStderr(&stderr),
	)
	return dir, stdout.String(), stderr.String(), err
}

func TestRunCreatesDraft(t *testing.T) {
	dir, stdout, _, err := runInTemp(t, NewDefaultConfig(), "my-note")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stdout != "drafts/20240315_my-note\n" {
		t.Errorf("stdout = %q", stdout)
	}
	info, err := os.Stat(filepath.Join(dir, "drafts", "20240315_my-note", "README.md"))
	if err != nil {
		t.Fatalf("README missing: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("README size = %d, want 0", info.Size())
	}
}

func TestRunCustomDir(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Drafts.Dir = "content/drafts"
	dir, stdout, _, err := runInTemp(t, cfg, "post")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stdout != "content/drafts/20240315_post\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(dir, "content", "drafts", "20240315_post", "README.md")); err != nil {
		t.Errorf("README missing: %v", err)
	}
}

func TestRunInvalidNameCreatesNothing(t *testing.T) {
	for _, name := range []string{"", "a/../b", "../escape"} {
		dir, stdout, _, err := runInTemp(t, NewDefaultConfig(), name)
		if !errors.Is(err, apperr.ErrInvalidName) {
			t.Fatalf("Run(%q) err = %v, want ErrInvalidName", name, err)
		}
		if stdout != "" {
			t.Errorf("Run(%q) stdout = %q, want empty", name, stdout)
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Errorf("Run(%q): expected no filesystem entries, got %v", name, entries)
		}
	}
}

func TestRunDraftsRootIsFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile("drafts", []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := Run(context.Background(), "note",
		WithConfig(NewDefaultConfig()),
		WithStdout(&bytes.Buffer{}),
		WithStderr(&bytes.Buffer{}),
	)
	if err == nil {
		t.Fatal("expected error when drafts is a regular file")
	}
}

func TestRunLogsAtDebug(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.LogLevel = slog.LevelDebug
	cfg.App.LogFormat = LogFormatText
	_, stdout, stderr, err := runInTemp(t, cfg, "logged")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(stdout, "level=") {
		t.Errorf("logs leaked to stdout: %q", stdout)
	}
	if !strings.Contains(stderr, "draft ready") {
		t.Errorf("stderr missing draft log: %q", stderr)
	}
}

func TestRunRequiresConfig(t *testing.T) {
	if err := Run(context.Background(), "x"); err == nil {
		t.Fatal("expected error without config")
	}
}
