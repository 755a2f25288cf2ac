package stats

import (
	"testing"

	"github.com/codewithboateng/eolint/internal/ir"
)

func TestAnnotate(t *testing.T) {
	run := ir.Run{Files: []ir.FileReport{
		{Path: "a.py", Violations: []ir.Violation{
			{Code: "EO001", Severity: "MEDIUM"},
			{Code: "EO009", Severity: "MEDIUM"},
		}},
		{Path: "b.py", ParseError: "syntax error"},
		{Path: "c.py", Violations: []ir.Violation{
			{Code: "EO001", Severity: "MEDIUM"},
			{Code: "EO008", Severity: "HIGH"},
		}},
	}}
	Annotate(&run)

	s := run.Stats
	if s.Files != 3 || s.ParseErrors != 1 || s.Total != 4 {
		t.Fatalf("stats = %+v", s)
	}
	if s.ByCode["EO001"] != 2 || s.ByCode["EO009"] != 1 || s.ByCode["EO008"] != 1 {
		t.Errorf("by_code = %v", s.ByCode)
	}
	if s.BySeverity["MEDIUM"] != 3 || s.BySeverity["HIGH"] != 1 {
		t.Errorf("by_severity = %v", s.BySeverity)
	}
	if Worst(&run) != "HIGH" {
		t.Errorf("Worst = %q", Worst(&run))
	}
}

func TestAnnotate_CleanRun(t *testing.T) {
	run := ir.Run{Files: []ir.FileReport{{Path: "a.py"}}}
	Annotate(&run)
	if run.Stats.Total != 0 || run.Stats.Files != 1 {
		t.Fatalf("stats = %+v", run.Stats)
	}
	if Worst(&run) != "" {
		t.Errorf("Worst = %q, want empty", Worst(&run))
	}
}
