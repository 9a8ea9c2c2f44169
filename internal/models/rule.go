// Package models defines the domain types for AgentSync: the canonical
// rule schema and the three tool-specific rule schemas.
package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TargetAll is the wildcard target meaning "every enabled tool".
const TargetAll = "*"

// Universal glob patterns. The canonical store uses the recursive form,
// Copilot's applyTo uses the double-star form.
const (
	GlobUniversalRecursive  = "**/*"
	GlobUniversalDoubleStar = "**"
)

// WindsurfTrigger determines when a Windsurf rule is applied.
type WindsurfTrigger string

const (
	TriggerManual        WindsurfTrigger = "manual"
	TriggerAlwaysOn      WindsurfTrigger = "always_on"
	TriggerModelDecision WindsurfTrigger = "model_decision"
	TriggerGlob          WindsurfTrigger = "glob"
)

// UnmarshalYAML rejects unknown trigger values at parse time.
func (t *WindsurfTrigger) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch WindsurfTrigger(s) {
	case TriggerManual, TriggerAlwaysOn, TriggerModelDecision, TriggerGlob:
		*t = WindsurfTrigger(s)
		return nil
	}
	return fmt.Errorf("unknown windsurf trigger %q", s)
}

// Rule is the canonical rule frontmatter stored in .agentsync/rules/*.md.
// Exactly one of the tool blocks may be present per tool; a rule with no
// tool blocks is still valid and each tool applies its own defaulting.
type Rule struct {
	// Targets lists tool names this rule applies to, or ["*"] for all.
	Targets     []string `yaml:"targets"`
	Description string   `yaml:"description"`
	// Globs holds comma-separated glob patterns.
	Globs string `yaml:"globs"`

	Cursor   *CursorConfig   `yaml:"cursor,omitempty"`
	Windsurf *WindsurfConfig `yaml:"windsurf,omitempty"`
	Copilot  *CopilotConfig  `yaml:"copilot,omitempty"`
}

// TargetsAll reports whether the rule uses the wildcard target.
func (r *Rule) TargetsAll() bool {
	for _, t := range r.Targets {
		if t == TargetAll {
			return true
		}
	}
	return false
}

// TargetsTool reports whether the rule applies to the named tool.
func (r *Rule) TargetsTool(name string) bool {
	if r.TargetsAll() {
		return true
	}
	for _, t := range r.Targets {
		if t == name {
			return true
		}
	}
	return false
}

// CursorConfig is the cursor block inside a canonical rule.
type CursorConfig struct {
	AlwaysApply bool   `yaml:"alwaysApply"`
	Globs       string `yaml:"globs"`
}

// WindsurfConfig is the windsurf block inside a canonical rule.
type WindsurfConfig struct {
	Trigger WindsurfTrigger `yaml:"trigger"`
	Globs   string          `yaml:"globs"`
}

// CopilotConfig is the copilot block inside a canonical rule.
type CopilotConfig struct {
	ApplyTo string `yaml:"applyTo"`
}

// CursorRule is the frontmatter of a .cursor/rules/*.mdc file.
type CursorRule struct {
	Description string `yaml:"description,omitempty"`
	AlwaysApply bool   `yaml:"alwaysApply"`
	Globs       string `yaml:"globs,omitempty"`
}

// WindsurfRule is the frontmatter of a .windsurf/rules/*.md file.
type WindsurfRule struct {
	Trigger     WindsurfTrigger `yaml:"trigger"`
	Description string          `yaml:"description,omitempty"`
	Globs       string          `yaml:"globs,omitempty"`
}

// CopilotRule is the frontmatter of a .github/instructions/*.instructions.md
// file. ApplyTo is the only mode-bearing field Copilot understands.
type CopilotRule struct {
	Description string `yaml:"description,omitempty"`
	ApplyTo     string `yaml:"applyTo,omitempty"`
}
