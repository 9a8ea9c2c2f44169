package translate

import "github.com/starford/agentsync/internal/models"

// ImportWindsurf converts a parsed Windsurf rule into a canonical rule.
// The trigger maps one-to-one onto the canonical modes; the original
// trigger and globs are kept verbatim in the windsurf block.
func ImportWindsurf(wr *models.WindsurfRule) models.Rule {
	trigger := wr.Trigger
	if trigger == "" {
		trigger = models.TriggerModelDecision
	}

	var mode Mode
	switch trigger {
	case models.TriggerAlwaysOn:
		mode = ModeAlways
	case models.TriggerGlob:
		mode = ModeGlob
	case models.TriggerManual:
		mode = ModeManual
	default:
		mode = ModeIntelligent
	}

	rule := buildRule(mode, wr.Globs, wr.Description)
	rule.Windsurf = &models.WindsurfConfig{
		Trigger: trigger,
		Globs:   NormalizeGlobs(wr.Globs),
	}
	return rule
}

// ExportWindsurf converts a canonical rule into Windsurf frontmatter. An
// explicit windsurf block is used as-is; otherwise the trigger derives from
// the rule's effective mode. In always-on mode Windsurf expects neither
// description nor globs.
func ExportWindsurf(r *models.Rule) models.WindsurfRule {
	if r.Windsurf != nil {
		if r.Windsurf.Trigger == models.TriggerAlwaysOn {
			return models.WindsurfRule{Trigger: models.TriggerAlwaysOn}
		}
		return models.WindsurfRule{
			Trigger:     r.Windsurf.Trigger,
			Description: r.Description,
			Globs:       NormalizeGlobs(r.Windsurf.Globs),
		}
	}

	switch ModeOf(r) {
	case ModeAlways:
		return models.WindsurfRule{Trigger: models.TriggerAlwaysOn}
	case ModeGlob:
		return models.WindsurfRule{
			Trigger:     models.TriggerGlob,
			Description: r.Description,
			Globs:       NormalizeGlobs(r.Globs),
		}
	case ModeManual:
		return models.WindsurfRule{Trigger: models.TriggerManual}
	default:
		return models.WindsurfRule{
			Trigger:     models.TriggerModelDecision,
			Description: r.Description,
		}
	}
}
