// Package syncer drives full export and import passes between the
// canonical rule store and the tool directories.
//
// A pass is single-threaded and processes documents in lexical order of
// their source file names, so repeated runs over unchanged input produce
// identical results. Per-document failures are collected in the Result and
// never abort the pass; only a missing source directory is fatal.
package syncer

import (
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/starford/agentsync/internal/apperr"
	"github.com/starford/agentsync/internal/checksum"
	"github.com/starford/agentsync/internal/frontmatter"
	"github.com/starford/agentsync/internal/merge"
	"github.com/starford/agentsync/internal/models"
	"github.com/starford/agentsync/internal/storage"
	"github.com/starford/agentsync/internal/tool"
	"github.com/starford/agentsync/internal/translate"
)

// Options controls one sync pass.
type Options struct {
	// DryRun performs every step except the filesystem mutations; the
	// Result is identical either way.
	DryRun bool
	// BaseDir is the directory (relative to the project root) under which
	// tool directories are resolved. Empty means the root itself.
	BaseDir string
}

// Syncer runs sync passes against one project.
type Syncer struct {
	store  storage.Provider
	tools  []tool.Tool
	logger *slog.Logger
}

// Option is a functional option for configuring a Syncer.
type Option func(*Syncer)

// WithLogger sets the logger used for per-document diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Syncer) { s.logger = logger }
}

// New creates a Syncer over the given store, syncing the enabled tools.
func New(store storage.Provider, tools []tool.Tool, opts ...Option) *Syncer {
	s := &Syncer{
		store:  store,
		tools:  tools,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// writeOp is a staged create or update.
type writeOp struct {
	name    string // identity reported in the Result
	path    string
	content []byte
	isNew   bool
}

// deleteOp is a staged deletion.
type deleteOp struct {
	name string
	path string
}

// Export runs a canonical → tools pass: translate every canonical rule for
// every enabled tool it targets, then delete tool files with no canonical
// counterpart.
func (s *Syncer) Export(opts Options) (*Result, error) {
	result := &Result{}

	sources, err := s.store.List(tool.CanonicalDir, tool.CanonicalSuffix)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", apperr.ErrNotInitialized, err)
		}
		return nil, err
	}

	var writes []writeOp
	staged := make(map[tool.Tool]map[string]bool, len(s.tools))
	for _, t := range s.tools {
		staged[t] = make(map[string]bool)
	}

	for _, src := range sources {
		name := strings.TrimSuffix(path.Base(src), tool.CanonicalSuffix)

		data, err := s.store.Read(src)
		if err != nil {
			s.fail(result, name, err)
			s.keep(staged, name)
			continue
		}
		doc, err := frontmatter.Parse[models.Rule](data, src)
		if err != nil {
			s.fail(result, name, err)
			s.keep(staged, name)
			continue
		}

		for _, t := range s.tools {
			if !doc.Meta.TargetsTool(t.Name()) {
				continue
			}

			content, err := exportDoc(t, doc)
			if errors.Is(err, apperr.ErrUnrepresentable) {
				// No tool file can express this mode; the rule simply has
				// no counterpart in this tool's directory.
				s.logger.Debug("export: skipped unrepresentable rule",
					slog.String("rule", name), slog.String("tool", t.Name()))
				continue
			}
			if err != nil {
				s.fail(result, fullName(name, t), err)
				staged[t][name] = true
				continue
			}

			dest := path.Join(opts.BaseDir, t.Dir(), t.Filename(name))
			op, skip, err := s.classify(fullName(name, t), dest, content)
			if err != nil {
				s.fail(result, fullName(name, t), err)
				staged[t][name] = true
				continue
			}
			staged[t][name] = true
			if skip {
				result.Skipped = append(result.Skipped, fullName(name, t))
				continue
			}
			writes = append(writes, op)
		}
	}

	deletes := s.deleteSet(result, opts.BaseDir, staged)
	s.apply(result, opts, writes, deletes)
	return result, nil
}

// Import runs a tool → canonical pass: translate every tool rule to the
// canonical schema and merge it with the existing canonical document.
func (s *Syncer) Import(from tool.Tool, opts Options) (*Result, error) {
	result := &Result{}

	srcDir := path.Join(opts.BaseDir, from.Dir())
	sources, err := s.store.List(srcDir, from.Suffix())
	if err != nil {
		return nil, err
	}

	var writes []writeOp
	for _, src := range sources {
		name := from.RuleName(path.Base(src))
		if name == "" {
			continue
		}

		data, err := s.store.Read(src)
		if err != nil {
			s.fail(result, name, err)
			continue
		}
		incoming, err := importDoc(from, data, src)
		if err != nil {
			s.fail(result, name, err)
			continue
		}

		dest := path.Join(tool.CanonicalDir, name+tool.CanonicalSuffix)
		existing, err := s.readCanonical(dest)
		if err != nil {
			s.fail(result, name, err)
			continue
		}

		merged, conflict := merge.Resolve(incoming, existing, from)
		if conflict {
			result.Conflicts = append(result.Conflicts,
				fmt.Sprintf("%s: kept canonical content; %s content differs", name, from.Name()))
		}

		content, err := merged.Marshal()
		if err != nil {
			s.fail(result, name, err)
			continue
		}

		op, skip, err := s.classify(name, dest, content)
		if err != nil {
			s.fail(result, name, err)
			continue
		}
		if skip {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		writes = append(writes, op)
	}

	s.apply(result, opts, writes, nil)
	return result, nil
}

// keep marks a rule as staged for every tool. A document that failed to
// read or parse still has a canonical source, so its existing tool files
// must survive the delete pass.
func (s *Syncer) keep(staged map[tool.Tool]map[string]bool, name string) {
	for _, t := range s.tools {
		staged[t][name] = true
	}
}

// readCanonical loads and parses the existing canonical document at dest,
// returning nil when it does not exist.
func (s *Syncer) readCanonical(dest string) (*frontmatter.Document[models.Rule], error) {
	exists, err := s.store.Exists(dest)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	data, err := s.store.Read(dest)
	if err != nil {
		return nil, err
	}
	return frontmatter.Parse[models.Rule](data, dest)
}

// classify compares staged content against the destination file and
// returns the staged op, or skip=true when the file is already up to date.
func (s *Syncer) classify(name, dest string, content []byte) (op writeOp, skip bool, err error) {
	exists, err := s.store.Exists(dest)
	if err != nil {
		return writeOp{}, false, err
	}
	if exists {
		current, err := s.store.Read(dest)
		if err != nil {
			return writeOp{}, false, err
		}
		if checksum.Sum(current) == checksum.Sum(content) {
			return writeOp{}, true, nil
		}
	}
	return writeOp{name: name, path: dest, content: content, isNew: !exists}, false, nil
}

// deleteSet stages the deletion of every tool file whose rule name was not
// staged for that tool during this pass.
func (s *Syncer) deleteSet(result *Result, baseDir string, staged map[tool.Tool]map[string]bool) []deleteOp {
	var deletes []deleteOp
	for _, t := range s.tools {
		files, err := s.store.List(path.Join(baseDir, t.Dir()), t.Suffix())
		if errors.Is(err, apperr.ErrNotFound) {
			continue
		}
		if err != nil {
			s.fail(result, t.Name(), err)
			continue
		}
		for _, f := range files {
			name := t.RuleName(path.Base(f))
			if name == "" || staged[t][name] {
				continue
			}
			deletes = append(deletes, deleteOp{name: fullName(name, t), path: f})
		}
	}
	return deletes
}

// apply performs (or, under dry-run, merely records) the staged operations.
func (s *Syncer) apply(result *Result, opts Options, writes []writeOp, deletes []deleteOp) {
	for _, op := range writes {
		if !opts.DryRun {
			if err := s.store.Write(op.path, op.content); err != nil {
				s.fail(result, op.name, err)
				continue
			}
		}
		if op.isNew {
			result.Created = append(result.Created, op.name)
		} else {
			result.Updated = append(result.Updated, op.name)
		}
	}
	for _, op := range deletes {
		if !opts.DryRun {
			if err := s.store.Delete(op.path); err != nil {
				s.fail(result, op.name, err)
				continue
			}
		}
		result.Deleted = append(result.Deleted, op.name)
	}
}

func (s *Syncer) fail(result *Result, name string, err error) {
	s.logger.Warn("sync: document failed",
		slog.String("name", name), slog.String("error", err.Error()))
	result.Errors = append(result.Errors, Issue{Name: name, Err: err})
}

func fullName(rule string, t tool.Tool) string {
	return rule + " (" + t.Name() + ")"
}

// exportDoc serializes a canonical document into one tool's file format.
func exportDoc(t tool.Tool, doc *frontmatter.Document[models.Rule]) ([]byte, error) {
	switch t {
	case tool.Cursor:
		out := frontmatter.Document[models.CursorRule]{
			Meta:    translate.ExportCursor(&doc.Meta),
			Content: doc.Content,
		}
		return out.Marshal()
	case tool.Windsurf:
		out := frontmatter.Document[models.WindsurfRule]{
			Meta:    translate.ExportWindsurf(&doc.Meta),
			Content: doc.Content,
		}
		return out.Marshal()
	case tool.Copilot:
		meta, err := translate.ExportCopilot(&doc.Meta)
		if err != nil {
			return nil, err
		}
		out := frontmatter.Document[models.CopilotRule]{Meta: meta, Content: doc.Content}
		return out.Marshal()
	default:
		return nil, fmt.Errorf("%w: %q", apperr.ErrInvalidTool, t.Name())
	}
}

// importDoc parses a tool file and translates it into a canonical document.
func importDoc(from tool.Tool, data []byte, name string) (*frontmatter.Document[models.Rule], error) {
	switch from {
	case tool.Cursor:
		doc, err := frontmatter.Parse[models.CursorRule](data, name)
		if err != nil {
			return nil, err
		}
		return &frontmatter.Document[models.Rule]{
			Meta:    translate.ImportCursor(&doc.Meta),
			Content: doc.Content,
		}, nil
	case tool.Windsurf:
		doc, err := frontmatter.Parse[models.WindsurfRule](data, name)
		if err != nil {
			return nil, err
		}
		return &frontmatter.Document[models.Rule]{
			Meta:    translate.ImportWindsurf(&doc.Meta),
			Content: doc.Content,
		}, nil
	case tool.Copilot:
		doc, err := frontmatter.Parse[models.CopilotRule](data, name)
		if err != nil {
			return nil, err
		}
		return &frontmatter.Document[models.Rule]{
			Meta:    translate.ImportCopilot(&doc.Meta),
			Content: doc.Content,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperr.ErrInvalidTool, from.Name())
	}
}
