package security

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/starford/agentsync/internal/apperr"
)

func TestCheckRelative_Valid(t *testing.T) {
	for _, p := range []string{".agentsync/rules/a.md", "a.md", ".", "sub/dir", "dots..inside"} {
		if err := CheckRelative(p); err != nil {
			t.Errorf("CheckRelative(%q): %v", p, err)
		}
	}
}

func TestCheckRelative_Traversal(t *testing.T) {
	for _, p := range []string{"../escape", "a/../../b", "..", "rules/../../x.md"} {
		if err := CheckRelative(p); !errors.Is(err, apperr.ErrPathTraversal) {
			t.Errorf("CheckRelative(%q) = %v, want ErrPathTraversal", p, err)
		}
	}
}

func TestCheckRelative_Absolute(t *testing.T) {
	abs, _ := filepath.Abs("/etc/passwd")
	if err := CheckRelative(abs); !errors.Is(err, apperr.ErrPathTraversal) {
		t.Errorf("CheckRelative(%q) = %v, want ErrPathTraversal", abs, err)
	}
}

func TestCheckWithinBase(t *testing.T) {
	base := t.TempDir()
	if err := CheckWithinBase(base, filepath.Join(base, "sub", "file.md")); err != nil {
		t.Errorf("inside base: %v", err)
	}
	if err := CheckWithinBase(base, base); err != nil {
		t.Errorf("base itself: %v", err)
	}
	if err := CheckWithinBase(base, filepath.Join(base, "..", "outside")); !errors.Is(err, apperr.ErrPathTraversal) {
		t.Errorf("outside base: %v, want ErrPathTraversal", err)
	}
	// A sibling whose name shares the base as a prefix is still outside.
	if err := CheckWithinBase(base, base+"-sibling"); !errors.Is(err, apperr.ErrPathTraversal) {
		t.Errorf("prefix sibling: %v, want ErrPathTraversal", err)
	}
}

func TestCheckBaseDirs(t *testing.T) {
	if err := CheckBaseDirs([]string{".", "packages/api", "/abs/monorepo"}); err != nil {
		t.Errorf("valid baseDirs: %v", err)
	}
	if err := CheckBaseDirs(nil); err == nil {
		t.Error("empty list accepted")
	}
	if err := CheckBaseDirs([]string{""}); err == nil {
		t.Error("empty entry accepted")
	}
	if err := CheckBaseDirs([]string{"../other"}); err == nil {
		t.Error("traversal entry accepted")
	}
}
