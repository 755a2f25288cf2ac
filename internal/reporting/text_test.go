package reporting

import (
	"strings"
	"testing"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/stats"
)

func sampleRun() *ir.Run {
	run := &ir.Run{Files: []ir.FileReport{
		{Path: "src/app.py", Lines: 10, Violations: []ir.Violation{
			{Code: "EO001", Severity: "MEDIUM", Path: "src/app.py", Line: 1, Column: 0,
				Message: "EO001 Class name 'OrderProcessor' violates -er principle (describes what it does, not what it is)"},
			{Code: "EO009", Severity: "MEDIUM", Path: "src/app.py", Line: 3, Column: 4,
				Message: "EO009 Static method 'process' violates EO principle (no static methods allowed)"},
		}},
		{Path: "src/broken.py", ParseError: "parse src/broken.py: syntax error"},
	}}
	stats.Annotate(run)
	return run
}

func TestWriteText(t *testing.T) {
	var sb strings.Builder
	total := WriteText(&sb, sampleRun(), false)
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	out := sb.String()
	if !strings.Contains(out, "src/app.py:1:0: EO001 Class name 'OrderProcessor'") {
		t.Errorf("missing flake8-style line:\n%s", out)
	}
	if !strings.Contains(out, "src/app.py:3:4: EO009") {
		t.Errorf("missing second violation:\n%s", out)
	}
	if !strings.Contains(out, "src/broken.py: error:") {
		t.Errorf("missing parse error line:\n%s", out)
	}
}

func TestWriteSummary(t *testing.T) {
	var sb strings.Builder
	WriteSummary(&sb, sampleRun())
	out := sb.String()
	if !strings.Contains(out, "2 files checked, 2 violations, 1 parse errors") {
		t.Errorf("summary header missing:\n%s", out)
	}
	if !strings.Contains(out, "EO001  1") || !strings.Contains(out, "EO009  1") {
		t.Errorf("per-code counts missing:\n%s", out)
	}
}

func TestWriteSummary_Clean(t *testing.T) {
	run := &ir.Run{Files: []ir.FileReport{{Path: "a.py"}}}
	stats.Annotate(run)
	var sb strings.Builder
	WriteSummary(&sb, run)
	if !strings.Contains(sb.String(), "1 files checked, no violations") {
		t.Errorf("clean summary = %q", sb.String())
	}
}
