// Package security validates paths so that every rule operation stays
// inside the project boundary.
package security

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/agentsync/internal/apperr"
)

// CheckRelative rejects absolute paths and any path containing a ".."
// component.
func CheckRelative(path string) error {
	if filepath.IsAbs(path) {
		return fmt.Errorf("%w: absolute path %q", apperr.ErrPathTraversal, path)
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return fmt.Errorf("%w: %q", apperr.ErrPathTraversal, path)
		}
	}
	return nil
}

// CheckWithinBase verifies that target, resolved against base, does not
// escape base. base must exist; target may not exist yet.
func CheckWithinBase(base, target string) error {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return fmt.Errorf("security: resolve base: %w", err)
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("security: resolve target: %w", err)
	}
	if absTarget != absBase && !strings.HasPrefix(absTarget, absBase+string(os.PathSeparator)) {
		return fmt.Errorf("%w: %q outside %q", apperr.ErrPathTraversal, target, base)
	}
	return nil
}

// CheckBaseDirs validates a configured base-directory list: non-empty,
// no empty entries, and no traversal in relative entries. Absolute entries
// are allowed for monorepo layouts.
func CheckBaseDirs(baseDirs []string) error {
	if len(baseDirs) == 0 {
		return fmt.Errorf("baseDirs cannot be empty")
	}
	for _, dir := range baseDirs {
		if dir == "" {
			return fmt.Errorf("baseDirs cannot contain empty entries")
		}
		if filepath.IsAbs(dir) {
			continue
		}
		if err := CheckRelative(dir); err != nil {
			return fmt.Errorf("invalid baseDir %q: %w", dir, err)
		}
	}
	return nil
}
