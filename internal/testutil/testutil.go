// Package testutil provides shared test helpers for setting up projects.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/agentsync/internal/storage"
	"github.com/starford/agentsync/internal/tool"
)

// TestProject creates a temporary project directory with the canonical rules
// directory present and returns it with a storage.Provider rooted there.
func TestProject(t *testing.T) (string, storage.Provider) {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(tool.CanonicalDir)), 0o755); err != nil {
		t.Fatal(err)
	}
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, store
}

// WriteRule writes a canonical rule file directly, bypassing the engine.
func WriteRule(t *testing.T, store storage.Provider, name, content string) {
	t.Helper()
	if err := store.Write(tool.CanonicalDir+"/"+name+tool.CanonicalSuffix, []byte(content)); err != nil {
		t.Fatal(err)
	}
}

// WriteToolFile writes a tool rule file directly, bypassing the engine.
func WriteToolFile(t *testing.T, store storage.Provider, tl tool.Tool, name, content string) {
	t.Helper()
	if err := store.Write(tl.Dir()+"/"+tl.Filename(name), []byte(content)); err != nil {
		t.Fatal(err)
	}
}
