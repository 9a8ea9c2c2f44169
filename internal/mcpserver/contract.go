package mcpserver

// RuleFormatContract describes the canonical rule format that LLM
// consumers should follow when creating or editing rules.
const RuleFormatContract = `# AgentSync Rule Format Contract

Every canonical rule stored in .agentsync/rules/ MUST follow this structure.

## Structure

` + "```" + `markdown
---
targets:                     # REQUIRED - tool names, or ["*"] for all tools
  - "*"
description: Short summary   # used for intelligent (model-decided) triggering
globs: "**/*"                # comma-separated glob patterns
cursor:                      # OPTIONAL - Cursor-specific settings
  alwaysApply: false
  globs: ""
windsurf:                    # OPTIONAL - Windsurf-specific settings
  trigger: model_decision    # manual | always_on | model_decision | glob
  globs: ""
copilot:                     # OPTIONAL - Copilot-specific settings
  applyTo: "**"
---
# Rule Title

Markdown body. It is copied verbatim into every tool file.
` + "```" + `

## Rules

1. **YAML frontmatter is mandatory.** The opening ` + "`---`" + ` must be the very
   first bytes of the file.
2. **Rule names are kebab-case** file stems (e.g. ` + "`python-style.md`" + `).
3. **Application modes.** A rule is applied always, intelligently (the model
   decides from the description), on file-glob match, or manually. Cursor
   expresses this with alwaysApply/globs, Windsurf with the trigger field,
   Copilot only with applyTo (manual rules produce no Copilot file).
4. **Tool blocks are optional.** A rule without tool blocks is interpreted
   through targets/description/globs with each tool's defaults.
5. **The body is opaque.** Sync never rewrites it; only frontmatter is
   translated per tool.
`
