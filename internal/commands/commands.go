// Package commands implements the CLI command bodies: project
// initialization, rule creation, and the sync entry points. Rendering of
// sync results lives here too; the engine itself never prints.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/agentsync/internal"
	"github.com/starford/agentsync/internal/apperr"
	"github.com/starford/agentsync/internal/frontmatter"
	"github.com/starford/agentsync/internal/models"
	"github.com/starford/agentsync/internal/storage"
	"github.com/starford/agentsync/internal/syncer"
	"github.com/starford/agentsync/internal/tool"
	pkgconfig "github.com/starford/agentsync/pkg/config"
)

// FindProjectRoot returns the current directory if it contains the project
// configuration file.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	if _, err := os.Stat(filepath.Join(cwd, internal.ConfigFile)); err != nil {
		return "", apperr.ErrNotInitialized
	}
	return cwd, nil
}

// Init creates the canonical rules directory and the default configuration
// file. When importFrom names a tool, its existing rules are imported as
// the first canonical documents.
func Init(root, importFrom string, logger *slog.Logger, w io.Writer) error {
	configPath := filepath.Join(root, internal.ConfigFile)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%w: %s exists", apperr.ErrAlreadyExists, internal.ConfigFile)
	}

	rulesDir := filepath.Join(root, filepath.FromSlash(tool.CanonicalDir))
	if err := os.MkdirAll(rulesDir, 0o755); err != nil {
		return fmt.Errorf("create rules dir: %w", err)
	}
	fmt.Fprintf(w, "Created %s/\n", tool.CanonicalDir)

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Save(configPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(w, "Created %s\n", internal.ConfigFile)

	if importFrom != "" {
		from, err := tool.Parse(importFrom)
		if err != nil {
			return err
		}
		store, err := storage.NewFS(root)
		if err != nil {
			return err
		}
		result, err := Import(store, cfg, from, syncer.Options{}, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Imported %d rule(s) from %s\n", len(result.Created), from.Name())
	}

	fmt.Fprintf(w, "\nInitialization complete.\n")
	fmt.Fprintf(w, "  - Edit rules in %s/\n", tool.CanonicalDir)
	fmt.Fprintf(w, "  - Run 'agentsync sync' to propagate changes to tools\n")
	return nil
}

// Add creates a new canonical rule from the template. The name must be
// kebab-case and must not collide with an existing rule.
func Add(store storage.Provider, name string, w io.Writer) error {
	if err := tool.ValidateRuleName(name); err != nil {
		return err
	}

	dest := tool.CanonicalDir + "/" + name + tool.CanonicalSuffix
	exists, err := store.Exists(dest)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("rule %q %w", name, apperr.ErrAlreadyExists)
	}

	content, err := Template(name)
	if err != nil {
		return err
	}
	if err := store.Write(dest, content); err != nil {
		return err
	}

	fmt.Fprintf(w, "Created %s\n", dest)
	fmt.Fprintf(w, "Edit the rule, then run 'agentsync sync' to propagate to tools.\n")
	return nil
}

// Template renders the canonical rule template for a new rule, with every
// tool block present so all knobs are discoverable.
func Template(name string) ([]byte, error) {
	doc := frontmatter.Document[models.Rule]{
		Meta: models.Rule{
			Targets:     []string{models.TargetAll},
			Description: "Description of this rule",
			Globs:       models.GlobUniversalRecursive,
			Cursor:      &models.CursorConfig{},
			Windsurf:    &models.WindsurfConfig{Trigger: models.TriggerModelDecision},
			Copilot:     &models.CopilotConfig{ApplyTo: models.GlobUniversalDoubleStar},
		},
		Content: fmt.Sprintf("# %s\n\nYour rule content here...\n", titleCase(name)),
	}
	return doc.Marshal()
}

// titleCase turns a kebab-case rule name into a heading.
func titleCase(name string) string {
	words := strings.Split(name, "-")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

// Export runs one export pass per configured base directory and merges the
// results.
func Export(store storage.Provider, cfg *internal.Config, opts syncer.Options, logger *slog.Logger) (*syncer.Result, error) {
	tools, err := cfg.EnabledTools()
	if err != nil {
		return nil, err
	}
	s := syncer.New(store, tools, syncer.WithLogger(logger))

	merged := &syncer.Result{}
	for _, baseDir := range cfg.BaseDirs {
		passOpts := opts
		passOpts.BaseDir = baseDir
		result, err := s.Export(passOpts)
		if err != nil {
			return nil, err
		}
		merged.Merge(result)
	}
	return merged, nil
}

// Import runs an import pass from one tool's directory at the project root.
func Import(store storage.Provider, cfg *internal.Config, from tool.Tool, opts syncer.Options, logger *slog.Logger) (*syncer.Result, error) {
	tools, err := cfg.EnabledTools()
	if err != nil {
		return nil, err
	}
	s := syncer.New(store, tools, syncer.WithLogger(logger))
	return s.Import(from, opts)
}

// WriteSummary renders a sync result for the terminal.
func WriteSummary(w io.Writer, r *syncer.Result, dryRun bool) {
	prefix := ""
	if dryRun {
		prefix = "[dry run] "
	}

	writeGroup := func(verb, mark string, names []string) {
		if len(names) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s%s %d rule(s):\n", prefix, verb, len(names))
		for _, name := range names {
			fmt.Fprintf(w, "  %s %s\n", mark, name)
		}
	}
	writeGroup("Added", "+", r.Created)
	writeGroup("Updated", "~", r.Updated)
	writeGroup("Deleted", "-", r.Deleted)

	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "\n%sSkipped %d rule(s) (already up-to-date)\n", prefix, len(r.Skipped))
	}

	if len(r.Conflicts) > 0 {
		fmt.Fprintf(w, "\n%sContent conflicts (canonical content kept):\n", prefix)
		for _, c := range r.Conflicts {
			fmt.Fprintf(w, "  * %s\n", c)
		}
	}

	if r.HasErrors() {
		fmt.Fprintf(w, "\n%sErrors in %d rule(s):\n", prefix, len(r.Errors))
		for _, issue := range r.Errors {
			fmt.Fprintf(w, "  ! %s\n", issue.Error())
		}
	}

	if !r.HasChanges() && !r.HasErrors() {
		fmt.Fprintf(w, "%sAll rules are up-to-date\n", prefix)
	}
	if dryRun && r.HasChanges() {
		fmt.Fprintf(w, "\nNo files were modified (dry-run mode)\n")
	}
}
