package token

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := s.Get(Key); ok {
		t.Error("expected absence before Set")
	}

	if err := s.Set(Key, "abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := s.Get(Key)
	if !ok || v != "abc123" {
		t.Errorf("expected abc123, got %q present=%v", v, ok)
	}

	if err := s.Delete(Key); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Get(Key); ok {
		t.Error("expected absence after Delete")
	}
}

func TestFileStore_TrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, Key), []byte("tok\n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := s.Get(Key)
	if !ok || v != "tok" {
		t.Errorf("expected trimmed tok, got %q", v)
	}
}

func TestFileStore_EmptyFileIsAbsent(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, Key), []byte("  \n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Get(Key); ok {
		t.Error("expected whitespace-only file to report absence")
	}
}

func TestFileStore_DeleteMissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Delete("nope"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFileStore_KeyPathEscape(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Set("../escape", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The value must land inside the base directory.
	if _, err := os.Stat(filepath.Join(dir, "escape")); err != nil {
		t.Errorf("expected key to be confined to base dir: %v", err)
	}
}
