package translate

import "github.com/starford/agentsync/internal/models"

// ImportCursor converts a parsed Cursor rule into a canonical rule,
// inferring the application mode from the Cursor fields.
func ImportCursor(cr *models.CursorRule) models.Rule {
	var mode Mode
	switch {
	case cr.AlwaysApply:
		mode = ModeAlways
	case cr.Globs != "":
		mode = ModeGlob
	case cr.Description != "":
		mode = ModeIntelligent
	default:
		mode = ModeManual
	}
	return buildRule(mode, cr.Globs, cr.Description)
}

// ExportCursor converts a canonical rule into Cursor frontmatter. An
// explicit cursor block is used as-is; otherwise the fields derive from the
// rule's effective mode. In always-apply mode Cursor expects neither
// description nor globs.
func ExportCursor(r *models.Rule) models.CursorRule {
	if r.Cursor != nil {
		if r.Cursor.AlwaysApply {
			return models.CursorRule{AlwaysApply: true}
		}
		return models.CursorRule{
			Description: r.Description,
			Globs:       NormalizeGlobs(r.Cursor.Globs),
		}
	}

	switch ModeOf(r) {
	case ModeAlways:
		return models.CursorRule{AlwaysApply: true}
	case ModeGlob:
		return models.CursorRule{
			Description: r.Description,
			Globs:       NormalizeGlobs(r.Globs),
		}
	case ModeIntelligent:
		return models.CursorRule{Description: r.Description}
	default:
		return models.CursorRule{}
	}
}
