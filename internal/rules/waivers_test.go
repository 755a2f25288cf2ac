package rules

import (
	"testing"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/storage"
)

func sampleViolations() []ir.Violation {
	return []ir.Violation{
		{Code: "EO001", Path: "src/app.py", Line: 1, Message: "EO001 Class name 'DataManager' ...", Evidence: "manager"},
		{Code: "EO009", Path: "src/app.py", Line: 3, Message: "EO009 Static method 'zero' ...", Evidence: "@staticmethod"},
		{Code: "EO009", Path: "src/other.py", Line: 7, Message: "EO009 Static method 'unit' ...", Evidence: "@classmethod"},
	}
}

func TestApplyWaivers_CodeAndPath(t *testing.T) {
	kept, waived := ApplyWaivers(sampleViolations(), []storage.Waiver{
		{Code: "eo009", Path: "src/app.py"},
	})
	if waived != 1 || len(kept) != 2 {
		t.Fatalf("waived = %d, kept = %d", waived, len(kept))
	}
	for _, v := range kept {
		if v.Code == "EO009" && v.Path == "src/app.py" {
			t.Fatal("waived violation still present")
		}
	}
}

func TestApplyWaivers_PatternSub(t *testing.T) {
	kept, waived := ApplyWaivers(sampleViolations(), []storage.Waiver{
		{Code: "EO009", PatternSub: "classmethod"},
	})
	if waived != 1 || len(kept) != 2 {
		t.Fatalf("waived = %d, kept = %d", waived, len(kept))
	}
}

func TestApplyWaivers_NoMatch(t *testing.T) {
	in := sampleViolations()
	kept, waived := ApplyWaivers(in, []storage.Waiver{
		{Code: "EO005"},
		{Code: "EO009", Path: "lib/"},
	})
	if waived != 0 || len(kept) != len(in) {
		t.Fatalf("waived = %d, kept = %d", waived, len(kept))
	}
}

func TestApplyWaiversToRun(t *testing.T) {
	run := ir.Run{Files: []ir.FileReport{
		{Path: "src/app.py", Violations: sampleViolations()[:2]},
		{Path: "src/other.py", Violations: sampleViolations()[2:]},
	}}
	n := ApplyWaiversToRun(&run, []storage.Waiver{{Code: "EO009"}})
	if n != 2 {
		t.Fatalf("waived = %d, want 2", n)
	}
	if len(run.Files[0].Violations) != 1 || len(run.Files[1].Violations) != 0 {
		t.Fatalf("per-file leftovers = %d, %d", len(run.Files[0].Violations), len(run.Files[1].Violations))
	}
}
