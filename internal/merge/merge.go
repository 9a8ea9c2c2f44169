// Package merge combines a freshly imported canonical rule with the
// existing canonical rule of the same name.
package merge

import (
	"github.com/starford/agentsync/internal/frontmatter"
	"github.com/starford/agentsync/internal/models"
	"github.com/starford/agentsync/internal/tool"
)

// Resolve merges incoming (translated from a tool import) with existing
// (the canonical document already on disk, nil on first import).
//
// The imported tool owns exactly one block: incoming's block for `from`
// replaces the existing one, every other tool's block is preserved from
// existing. Description and globs follow incoming since they derive from
// the tool's own fields; targets stay canonical-owned.
//
// Canonical content is authoritative: when both sides exist the existing
// body is kept, and conflict reports whether incoming's body differed
// (raw byte comparison, no normalization).
func Resolve(incoming *frontmatter.Document[models.Rule], existing *frontmatter.Document[models.Rule], from tool.Tool) (merged *frontmatter.Document[models.Rule], conflict bool) {
	if existing == nil {
		return incoming, false
	}

	meta := existing.Meta
	meta.Description = incoming.Meta.Description
	meta.Globs = incoming.Meta.Globs

	switch from {
	case tool.Cursor:
		meta.Cursor = incoming.Meta.Cursor
	case tool.Copilot:
		meta.Copilot = incoming.Meta.Copilot
	case tool.Windsurf:
		meta.Windsurf = incoming.Meta.Windsurf
	}

	return &frontmatter.Document[models.Rule]{
		Meta:    meta,
		Content: existing.Content,
	}, incoming.Content != existing.Content
}
