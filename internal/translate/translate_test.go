package translate

import (
	"testing"

	"github.com/starford/agentsync/internal/models"
)

func TestModeOf_WindsurfTriggerWins(t *testing.T) {
	cases := []struct {
		trigger models.WindsurfTrigger
		want    Mode
	}{
		{models.TriggerAlwaysOn, ModeAlways},
		{models.TriggerModelDecision, ModeIntelligent},
		{models.TriggerGlob, ModeGlob},
		{models.TriggerManual, ModeManual},
	}
	for _, c := range cases {
		r := &models.Rule{
			// Conflicting signals that must lose against the trigger.
			Description: "something",
			Cursor:      &models.CursorConfig{AlwaysApply: true},
			Windsurf:    &models.WindsurfConfig{Trigger: c.trigger},
		}
		if got := ModeOf(r); got != c.want {
			t.Errorf("trigger %q: mode = %v, want %v", c.trigger, got, c.want)
		}
	}
}

func TestModeOf_CursorBlock(t *testing.T) {
	cases := []struct {
		name string
		rule models.Rule
		want Mode
	}{
		{"alwaysApply", models.Rule{Cursor: &models.CursorConfig{AlwaysApply: true}}, ModeAlways},
		{"globs", models.Rule{Cursor: &models.CursorConfig{Globs: "*.go"}}, ModeGlob},
		{"description", models.Rule{Description: "use for Go", Cursor: &models.CursorConfig{}}, ModeIntelligent},
		{"bare", models.Rule{Cursor: &models.CursorConfig{}}, ModeManual},
	}
	for _, c := range cases {
		if got := ModeOf(&c.rule); got != c.want {
			t.Errorf("%s: mode = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestModeOf_CopilotBlock(t *testing.T) {
	always := models.Rule{Copilot: &models.CopilotConfig{ApplyTo: "**"}}
	if got := ModeOf(&always); got != ModeAlways {
		t.Errorf("applyTo ** : mode = %v, want always", got)
	}
	glob := models.Rule{Copilot: &models.CopilotConfig{ApplyTo: "**/*.py"}}
	if got := ModeOf(&glob); got != ModeGlob {
		t.Errorf("applyTo **/*.py : mode = %v, want glob", got)
	}
}

func TestModeOf_CommonFieldsFallback(t *testing.T) {
	cases := []struct {
		name string
		rule models.Rule
		want Mode
	}{
		{"globs", models.Rule{Globs: "*.ts"}, ModeGlob},
		{"universal globs", models.Rule{Globs: "**/*", Description: "d"}, ModeIntelligent},
		{"description", models.Rule{Description: "d"}, ModeIntelligent},
		{"empty", models.Rule{}, ModeManual},
	}
	for _, c := range cases {
		if got := ModeOf(&c.rule); got != c.want {
			t.Errorf("%s: mode = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestNormalizeGlobs(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"*.go", "*.go"},
		{"*.go, *.mod", "*.go,*.mod"},
		{"  *.go ,   src/**/*.ts  ", "*.go,src/**/*.ts"},
	}
	for _, c := range cases {
		if got := NormalizeGlobs(c.in); got != c.want {
			t.Errorf("NormalizeGlobs(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsUniversalGlob(t *testing.T) {
	for _, g := range []string{"", "**/*", "**", "  ** "} {
		if !IsUniversalGlob(g) {
			t.Errorf("IsUniversalGlob(%q) = false, want true", g)
		}
	}
	for _, g := range []string{"*.go", "src/**", "**/*.md"} {
		if IsUniversalGlob(g) {
			t.Errorf("IsUniversalGlob(%q) = true, want false", g)
		}
	}
}

func TestBuildRule_AlwaysTargetsAllTools(t *testing.T) {
	r := buildRule(ModeAlways, "", "desc")
	if !r.TargetsAll() {
		t.Errorf("targets = %v, want wildcard", r.Targets)
	}
	if r.Cursor == nil || !r.Cursor.AlwaysApply {
		t.Errorf("cursor = %+v, want alwaysApply", r.Cursor)
	}
	if r.Windsurf == nil || r.Windsurf.Trigger != models.TriggerAlwaysOn {
		t.Errorf("windsurf = %+v, want always_on", r.Windsurf)
	}
	if r.Copilot == nil || r.Copilot.ApplyTo != "**" {
		t.Errorf("copilot = %+v, want applyTo **", r.Copilot)
	}
	if r.Globs != "**/*" {
		t.Errorf("globs = %q, want **/*", r.Globs)
	}
}

func TestExport_AlwaysModePropagatesAcrossTools(t *testing.T) {
	// A rule carrying only a cursor block still exports as always-apply
	// everywhere: the mode is a property of the rule, not of one tool.
	rule := models.Rule{
		Targets:     []string{models.TargetAll},
		Description: "core",
		Cursor:      &models.CursorConfig{AlwaysApply: true},
	}
	wr := ExportWindsurf(&rule)
	if wr.Trigger != models.TriggerAlwaysOn || wr.Description != "" || wr.Globs != "" {
		t.Errorf("windsurf = %+v, want bare always_on", wr)
	}
	cp, err := ExportCopilot(&rule)
	if err != nil {
		t.Fatalf("copilot export: %v", err)
	}
	if cp.ApplyTo != "**" {
		t.Errorf("copilot applyTo = %q, want **", cp.ApplyTo)
	}
	cr := ExportCursor(&rule)
	if !cr.AlwaysApply {
		t.Errorf("cursor = %+v, want alwaysApply", cr)
	}
}

func TestExport_ManualModePropagatesAcrossTools(t *testing.T) {
	rule := models.Rule{
		Targets:  []string{models.TargetAll},
		Windsurf: &models.WindsurfConfig{Trigger: models.TriggerManual},
	}
	cr := ExportCursor(&rule)
	if cr.AlwaysApply || cr.Description != "" || cr.Globs != "" {
		t.Errorf("cursor = %+v, want empty manual form", cr)
	}
	if _, err := ExportCopilot(&rule); err == nil {
		t.Error("copilot export of manual rule succeeded, want unrepresentable error")
	}
}

func TestBuildRule_ManualHasNoCopilotBlock(t *testing.T) {
	r := buildRule(ModeManual, "", "")
	if r.Copilot != nil {
		t.Errorf("copilot = %+v, want nil", r.Copilot)
	}
	if r.Windsurf == nil || r.Windsurf.Trigger != models.TriggerManual {
		t.Errorf("windsurf = %+v, want manual", r.Windsurf)
	}
}
