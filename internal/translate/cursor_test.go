package translate

import (
	"testing"

	"github.com/starford/agentsync/internal/models"
)

func TestImportCursor_Always(t *testing.T) {
	r := ImportCursor(&models.CursorRule{AlwaysApply: true})
	if got := ModeOf(&r); got != ModeAlways {
		t.Fatalf("mode = %v, want always", got)
	}
	if r.Windsurf.Trigger != models.TriggerAlwaysOn {
		t.Errorf("windsurf trigger = %q", r.Windsurf.Trigger)
	}
	if r.Copilot == nil || r.Copilot.ApplyTo != "**" {
		t.Errorf("copilot = %+v", r.Copilot)
	}
}

func TestImportCursor_Glob(t *testing.T) {
	r := ImportCursor(&models.CursorRule{Globs: "*.go, *.mod"})
	if got := ModeOf(&r); got != ModeGlob {
		t.Fatalf("mode = %v, want glob", got)
	}
	if r.Globs != "*.go,*.mod" {
		t.Errorf("globs = %q, want normalized", r.Globs)
	}
	if r.Copilot == nil || r.Copilot.ApplyTo != "*.go,*.mod" {
		t.Errorf("copilot = %+v", r.Copilot)
	}
}

func TestImportCursor_Intelligent(t *testing.T) {
	r := ImportCursor(&models.CursorRule{Description: "Go style guide"})
	if got := ModeOf(&r); got != ModeIntelligent {
		t.Fatalf("mode = %v, want intelligent", got)
	}
	if r.Description != "Go style guide" {
		t.Errorf("description = %q", r.Description)
	}
}

func TestImportCursor_Manual(t *testing.T) {
	r := ImportCursor(&models.CursorRule{})
	if got := ModeOf(&r); got != ModeManual {
		t.Fatalf("mode = %v, want manual", got)
	}
	if r.Copilot != nil {
		t.Errorf("copilot = %+v, want nil", r.Copilot)
	}
}

func TestExportCursor_AlwaysDropsDescriptionAndGlobs(t *testing.T) {
	rule := models.Rule{
		Description: "ignored",
		Globs:       "**/*",
		Cursor:      &models.CursorConfig{AlwaysApply: true},
	}
	cr := ExportCursor(&rule)
	if !cr.AlwaysApply || cr.Description != "" || cr.Globs != "" {
		t.Errorf("cursor rule = %+v, want bare alwaysApply", cr)
	}
}

func TestExportCursor_BlockGlobsWin(t *testing.T) {
	rule := models.Rule{
		Globs:  "*.md",
		Cursor: &models.CursorConfig{Globs: "*.go"},
	}
	cr := ExportCursor(&rule)
	if cr.Globs != "*.go" {
		t.Errorf("globs = %q, want *.go", cr.Globs)
	}
}

func TestExportCursor_FallsBackToCanonicalGlobs(t *testing.T) {
	rule := models.Rule{Description: "d", Globs: "*.py"}
	cr := ExportCursor(&rule)
	if cr.Globs != "*.py" {
		t.Errorf("globs = %q, want *.py", cr.Globs)
	}
	if cr.Description != "d" {
		t.Errorf("description = %q", cr.Description)
	}
}

func TestExportCursor_UniversalCanonicalGlobsOmitted(t *testing.T) {
	rule := models.Rule{Description: "d", Globs: "**/*"}
	cr := ExportCursor(&rule)
	if cr.Globs != "" {
		t.Errorf("globs = %q, want empty", cr.Globs)
	}
}

func TestCursor_ImportExportRoundTrip(t *testing.T) {
	originals := []models.CursorRule{
		{AlwaysApply: true},
		{Globs: "*.go"},
		{Description: "style"},
		{},
	}
	for _, orig := range originals {
		rule := ImportCursor(&orig)
		back := ExportCursor(&rule)
		if back != orig {
			t.Errorf("round trip %+v -> %+v", orig, back)
		}
	}
}
