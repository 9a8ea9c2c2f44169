// Package translate maps rule metadata between the canonical schema and the
// three tool schemas.
//
// All tools express the same four-way taxonomy (always apply, apply
// intelligently, apply to matching files, manual) but partition it
// differently. The mapping is kept in one place (profileFor) so the lossy
// cases are visible at a glance: Copilot cannot represent manual mode at
// all, and its only mode-bearing field is a glob.
package translate

import (
	"strings"

	"github.com/starford/agentsync/internal/models"
)

// Mode is the canonical application mode of a rule.
type Mode int

const (
	ModeManual Mode = iota
	ModeAlways
	ModeIntelligent
	ModeGlob
)

func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeIntelligent:
		return "intelligent"
	case ModeGlob:
		return "glob"
	default:
		return "manual"
	}
}

// profile is one row of the mode translation table: the projection of a
// canonical mode into every tool block plus the canonical globs field.
// A nil copilot entry means the mode has no Copilot representation.
type profile struct {
	cursor   models.CursorConfig
	windsurf models.WindsurfConfig
	copilot  *models.CopilotConfig
	globs    string
}

// profileFor returns the translation-table row for a mode. globs is only
// consulted for ModeGlob.
func profileFor(mode Mode, globs string) profile {
	switch mode {
	case ModeAlways:
		return profile{
			cursor:   models.CursorConfig{AlwaysApply: true},
			windsurf: models.WindsurfConfig{Trigger: models.TriggerAlwaysOn},
			copilot:  &models.CopilotConfig{ApplyTo: models.GlobUniversalDoubleStar},
			globs:    models.GlobUniversalRecursive,
		}
	case ModeIntelligent:
		return profile{
			cursor:   models.CursorConfig{AlwaysApply: false},
			windsurf: models.WindsurfConfig{Trigger: models.TriggerModelDecision},
			copilot:  &models.CopilotConfig{ApplyTo: models.GlobUniversalDoubleStar},
			globs:    models.GlobUniversalRecursive,
		}
	case ModeGlob:
		normalized := NormalizeGlobs(globs)
		return profile{
			cursor:   models.CursorConfig{AlwaysApply: false, Globs: normalized},
			windsurf: models.WindsurfConfig{Trigger: models.TriggerGlob, Globs: normalized},
			copilot:  &models.CopilotConfig{ApplyTo: normalized},
			globs:    normalized,
		}
	default: // ModeManual: no Copilot representation.
		return profile{
			cursor:   models.CursorConfig{AlwaysApply: false},
			windsurf: models.WindsurfConfig{Trigger: models.TriggerManual},
			globs:    models.GlobUniversalRecursive,
		}
	}
}

// buildRule assembles a full canonical rule for an imported document.
// Imported rules target all tools; narrowing is a canonical-side edit.
func buildRule(mode Mode, globs, description string) models.Rule {
	p := profileFor(mode, globs)
	cursor := p.cursor
	windsurf := p.windsurf
	return models.Rule{
		Targets:     []string{models.TargetAll},
		Description: description,
		Globs:       p.globs,
		Cursor:      &cursor,
		Windsurf:    &windsurf,
		Copilot:     p.copilot,
	}
}

// ModeOf classifies a canonical rule into its effective application mode.
// The richest available signal wins: the Windsurf trigger is explicit, the
// Cursor block is inferred from its fields, the Copilot block can only
// distinguish always from glob, and a rule with no blocks falls back to the
// common fields.
func ModeOf(r *models.Rule) Mode {
	switch {
	case r.Windsurf != nil:
		switch r.Windsurf.Trigger {
		case models.TriggerAlwaysOn:
			return ModeAlways
		case models.TriggerGlob:
			return ModeGlob
		case models.TriggerManual:
			return ModeManual
		default:
			return ModeIntelligent
		}
	case r.Cursor != nil:
		switch {
		case r.Cursor.AlwaysApply:
			return ModeAlways
		case r.Cursor.Globs != "":
			return ModeGlob
		case r.Description != "":
			return ModeIntelligent
		default:
			return ModeManual
		}
	case r.Copilot != nil:
		if IsUniversalGlob(r.Copilot.ApplyTo) {
			return ModeAlways
		}
		return ModeGlob
	default:
		switch {
		case r.Globs != "" && !IsUniversalGlob(r.Globs):
			return ModeGlob
		case r.Description != "":
			return ModeIntelligent
		default:
			return ModeManual
		}
	}
}

// NormalizeGlobs trims whitespace around the commas of a comma-separated
// glob list.
func NormalizeGlobs(globs string) string {
	if globs == "" {
		return ""
	}
	parts := strings.Split(globs, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ",")
}

// IsUniversalGlob reports whether a glob list matches every file.
func IsUniversalGlob(globs string) bool {
	g := strings.TrimSpace(globs)
	return g == "" || g == models.GlobUniversalRecursive || g == models.GlobUniversalDoubleStar
}
