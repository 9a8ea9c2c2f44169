package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/agentsync/internal/apperr"
)

func tempProject(t *testing.T) *FS {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs
}

func TestNewFS_MissingRoot(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestWriteAndRead(t *testing.T) {
	s := tempProject(t)
	content := []byte("---\ntargets: [\"*\"]\n---\nbody\n")
	if err := s.Write(".agentsync/rules/a.md", content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read(".agentsync/rules/a.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestRead_Missing(t *testing.T) {
	s := tempProject(t)
	_, err := s.Read("missing.md")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestWrite_RejectsTraversal(t *testing.T) {
	s := tempProject(t)
	for _, p := range []string{"../escape.md", "a/../../b.md", "/abs.md"} {
		if err := s.Write(p, []byte("x")); !errors.Is(err, apperr.ErrPathTraversal) {
			t.Errorf("Write(%q) = %v, want ErrPathTraversal", p, err)
		}
	}
}

func TestWrite_LeavesNoTempFileBehind(t *testing.T) {
	s := tempProject(t)
	if err := s.Write("rules/a.md", []byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(s.Root(), "rules"))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".agentsync-tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestList_SortedAndFiltered(t *testing.T) {
	s := tempProject(t)
	for _, name := range []string{"b.md", "a.md", "c.txt"} {
		if err := s.Write("rules/"+name, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}
	// Subdirectories are not descended into.
	if err := s.Write("rules/sub/d.md", []byte("x")); err != nil {
		t.Fatal(err)
	}

	got, err := s.List("rules", ".md")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{filepath.Join("rules", "a.md"), filepath.Join("rules", "b.md")}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("List = %v, want %v", got, want)
	}
}

func TestList_MissingDir(t *testing.T) {
	s := tempProject(t)
	_, err := s.List("nope", ".md")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestExists(t *testing.T) {
	s := tempProject(t)
	ok, err := s.Exists("a.md")
	if err != nil || ok {
		t.Fatalf("Exists on missing = %v, %v", ok, err)
	}
	if err := s.Write("a.md", []byte("x")); err != nil {
		t.Fatal(err)
	}
	ok, err = s.Exists("a.md")
	if err != nil || !ok {
		t.Fatalf("Exists after write = %v, %v", ok, err)
	}
}

func TestDelete(t *testing.T) {
	s := tempProject(t)
	if err := s.Write("a.md", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("a.md"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if ok, _ := s.Exists("a.md"); ok {
		t.Error("file still exists after Delete")
	}
}
