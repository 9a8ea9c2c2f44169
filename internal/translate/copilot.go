package translate

import (
	"fmt"

	"github.com/starford/agentsync/internal/apperr"
	"github.com/starford/agentsync/internal/models"
)

// ImportCopilot converts a parsed Copilot rule into a canonical rule.
// Copilot has no manual state: an absent or universal applyTo means
// always apply, anything else means apply to matching files.
func ImportCopilot(cp *models.CopilotRule) models.Rule {
	applyTo := cp.ApplyTo
	if applyTo == "" {
		applyTo = models.GlobUniversalDoubleStar
	}

	mode := ModeGlob
	if IsUniversalGlob(applyTo) {
		mode = ModeAlways
	}
	return buildRule(mode, applyTo, cp.Description)
}

// ExportCopilot converts a canonical rule into Copilot frontmatter.
//
// Manual mode has no Copilot representation; rather than emit a misleading
// applyTo, the export fails with apperr.ErrUnrepresentable and the caller
// skips the file. An intelligent-mode rule is emitted with the glob omitted
// so the description carries the hint.
func ExportCopilot(r *models.Rule) (models.CopilotRule, error) {
	if r.Copilot != nil {
		return models.CopilotRule{
			Description: r.Description,
			ApplyTo:     NormalizeGlobs(r.Copilot.ApplyTo),
		}, nil
	}

	switch ModeOf(r) {
	case ModeManual:
		return models.CopilotRule{}, fmt.Errorf("copilot: manual mode: %w", apperr.ErrUnrepresentable)
	case ModeAlways:
		return models.CopilotRule{
			Description: r.Description,
			ApplyTo:     models.GlobUniversalDoubleStar,
		}, nil
	case ModeIntelligent:
		return models.CopilotRule{Description: r.Description}, nil
	default:
		return models.CopilotRule{
			Description: r.Description,
			ApplyTo:     NormalizeGlobs(r.Globs),
		}, nil
	}
}
