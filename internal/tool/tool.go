// Package tool enumerates the external tools AgentSync can sync with and
// their on-disk conventions (directory, file naming).
package tool

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/starford/agentsync/internal/apperr"
)

// Tool identifies one of the supported external tools.
type Tool string

const (
	Cursor   Tool = "cursor"
	Copilot  Tool = "copilot"
	Windsurf Tool = "windsurf"
)

// CanonicalDir is where canonical rule documents live, relative to the
// project root.
const CanonicalDir = ".agentsync/rules"

// CanonicalSuffix is the file suffix of canonical rule documents.
const CanonicalSuffix = ".md"

// All lists every supported tool in stable order.
func All() []Tool {
	return []Tool{Cursor, Copilot, Windsurf}
}

// Parse resolves a tool name. Unknown names produce an error carrying a
// closest-match suggestion.
func Parse(name string) (Tool, error) {
	switch Tool(name) {
	case Cursor, Copilot, Windsurf:
		return Tool(name), nil
	}

	if s := suggest(name); s != "" {
		return "", fmt.Errorf("%w: %q (did you mean %q?)", apperr.ErrInvalidTool, name, s)
	}
	return "", fmt.Errorf("%w: %q (valid tools: cursor, copilot, windsurf)", apperr.ErrInvalidTool, name)
}

// suggest returns the closest valid tool name, or "" when the input is too
// short for a meaningful distance.
func suggest(name string) string {
	if len(name) <= 2 {
		return ""
	}
	best, bestDist := "", -1
	for _, t := range All() {
		d := levenshtein.ComputeDistance(strings.ToLower(name), string(t))
		if bestDist < 0 || d < bestDist {
			best, bestDist = string(t), d
		}
	}
	return best
}

// Name returns the lowercase tool name.
func (t Tool) Name() string { return string(t) }

// Dir returns the tool's rule directory relative to a base dir.
func (t Tool) Dir() string {
	switch t {
	case Cursor:
		return ".cursor/rules"
	case Copilot:
		return ".github/instructions"
	default:
		return ".windsurf/rules"
	}
}

// Suffix returns the file suffix of this tool's rule files. Copilot uses a
// reserved compound suffix.
func (t Tool) Suffix() string {
	switch t {
	case Cursor:
		return ".mdc"
	case Copilot:
		return ".instructions.md"
	default:
		return ".md"
	}
}

// Filename returns the on-disk file name for a rule.
func (t Tool) Filename(rule string) string {
	return rule + t.Suffix()
}

// RuleName extracts the rule name from a file name, or "" when the file
// does not carry this tool's suffix.
func (t Tool) RuleName(filename string) string {
	if !strings.HasSuffix(filename, t.Suffix()) {
		return ""
	}
	return strings.TrimSuffix(filename, t.Suffix())
}

// ValidateRuleName enforces kebab-case rule names: lowercase letters,
// digits, and single interior hyphens.
func ValidateRuleName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", apperr.ErrInvalidRuleName)
	}
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return fmt.Errorf("%w: %q (use kebab-case, e.g. my-rule)", apperr.ErrInvalidRuleName, name)
		}
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") || strings.Contains(name, "--") {
		return fmt.Errorf("%w: %q (use kebab-case, e.g. my-rule)", apperr.ErrInvalidRuleName, name)
	}
	return nil
}
