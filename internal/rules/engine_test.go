package rules

import (
	"reflect"
	"strings"
	"testing"

	"github.com/codewithboateng/eolint/internal/ir"
)

const processorSample = `class OrderProcessor:
    @staticmethod
    def process(data):
        return data
`

func lint(t *testing.T, src string) []ir.Violation {
	t.Helper()
	return lintWith(t, "sample.py", src, DefaultSettings())
}

func lintWith(t *testing.T, path, src string, s Settings) []ir.Violation {
	t.Helper()
	report := NewEngine(s).File(path, []byte(src))
	if report.ParseError != "" {
		t.Fatalf("unexpected parse error: %s", report.ParseError)
	}
	return report.Violations
}

func codesOf(vs []ir.Violation) []string {
	var out []string
	for _, v := range vs {
		out = append(out, v.Code)
	}
	return out
}

func byCode(vs []ir.Violation, code string) []ir.Violation {
	var out []ir.Violation
	for _, v := range vs {
		if v.Code == code {
			out = append(out, v)
		}
	}
	return out
}

func TestEngine_ProcessorScenario(t *testing.T) {
	got := lint(t, processorSample)

	want := []struct {
		code string
		line int
		col  int
	}{
		{ir.EO001, 1, 0},
		{ir.EO004, 3, 4},
		{ir.EO009, 3, 4},
	}
	if len(got) != len(want) {
		t.Fatalf("violations = %v, want 3 (EO001, EO004, EO009)", codesOf(got))
	}
	for i, w := range want {
		v := got[i]
		if v.Code != w.code || v.Line != w.line || v.Column != w.col {
			t.Errorf("[%d] = %s at %d:%d, want %s at %d:%d",
				i, v.Code, v.Line, v.Column, w.code, w.line, w.col)
		}
	}
	if got[0].Message != "EO001 Class name 'OrderProcessor' violates -er principle (describes what it does, not what it is)" {
		t.Errorf("EO001 message = %q", got[0].Message)
	}
	if got[1].Message != "EO004 Function name 'process' violates -er principle (should be noun, not verb)" {
		t.Errorf("EO004 message = %q", got[1].Message)
	}
	if got[2].Message != "EO009 Static method 'process' violates EO principle (no static methods allowed)" {
		t.Errorf("EO009 message = %q", got[2].Message)
	}
}

func TestEngine_Deterministic(t *testing.T) {
	first := lint(t, processorSample)
	second := lint(t, processorSample)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two runs differ:\n%v\n%v", first, second)
	}
}

func TestEngine_SeverityThreshold(t *testing.T) {
	s := DefaultSettings()
	s.SeverityThreshold = "HIGH"
	got := lintWith(t, "sample.py", processorSample, s)
	if len(got) != 0 {
		t.Fatalf("HIGH threshold should drop all of %v", codesOf(got))
	}

	s.SeverityThreshold = "MEDIUM"
	got = lintWith(t, "sample.py", processorSample, s)
	for _, v := range got {
		if v.Severity == "LOW" {
			t.Errorf("MEDIUM threshold leaked %s (%s)", v.Code, v.Severity)
		}
	}
}

func TestEngine_DisabledCodes(t *testing.T) {
	s := DefaultSettings()
	s.Disabled[ir.EO009] = true
	got := lintWith(t, "sample.py", processorSample, s)
	if len(byCode(got, ir.EO009)) != 0 {
		t.Fatal("EO009 is disabled but still reported")
	}
	if len(byCode(got, ir.EO001)) != 1 || len(byCode(got, ir.EO004)) != 1 {
		t.Fatalf("other codes affected: %v", codesOf(got))
	}
}

func TestEngine_Suppressions(t *testing.T) {
	s := DefaultSettings()
	s.Suppressions = []Suppression{{Path: "legacy/", Codes: []string{"*"}}}
	got := lintWith(t, "legacy/app.py", processorSample, s)
	if len(got) != 0 {
		t.Fatalf("wildcard suppression leaked %v", codesOf(got))
	}

	s.Suppressions = []Suppression{{Path: "legacy/", Codes: []string{"EO009"}}}
	got = lintWith(t, "legacy/app.py", processorSample, s)
	if len(byCode(got, ir.EO009)) != 0 {
		t.Fatal("EO009 suppression leaked")
	}
	if len(byCode(got, ir.EO001)) != 1 {
		t.Fatalf("unrelated code suppressed: %v", codesOf(got))
	}
}

func TestEngine_ParseFailure(t *testing.T) {
	report := NewEngine(DefaultSettings()).File("bad.py", []byte("def broken(:\n"))
	if report.ParseError == "" {
		t.Fatal("want parse error")
	}
	if len(report.Violations) != 0 {
		t.Fatalf("parse failure must yield zero violations, got %v", codesOf(report.Violations))
	}
}

func TestEngine_TestFileNamingExemption(t *testing.T) {
	src := `class DataManager:
    @staticmethod
    def process(data):
        return data
`
	got := lintWith(t, "pkg/test_helpers.py", src, DefaultSettings())
	for _, code := range []string{ir.EO001, ir.EO002, ir.EO003, ir.EO004} {
		if len(byCode(got, code)) != 0 {
			t.Errorf("naming code %s reported in a test file", code)
		}
	}
	if len(byCode(got, ir.EO009)) != 1 {
		t.Errorf("EO009 should still apply in test files: %v", codesOf(got))
	}
}

func TestEngine_OrderedByPosition(t *testing.T) {
	src := `def calculate_total(data):
    return None

def render_page(view):
    return None
`
	got := lint(t, src)
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if cur.Line < prev.Line || (cur.Line == prev.Line && cur.Column < prev.Column) {
			t.Fatalf("violations out of order at %d: %v", i, codesOf(got))
		}
	}
	if len(byCode(got, ir.EO004)) != 2 || len(byCode(got, ir.EO005)) != 2 {
		t.Fatalf("codes = %v, want two EO004 and two EO005", codesOf(got))
	}
}

func TestEngine_RulesSnapshot(t *testing.T) {
	e := NewEngine(DefaultSettings())
	rs := e.Rules()
	if len(rs) < 14 {
		t.Fatalf("enabled rules = %d, want at least the 14 built-ins", len(rs))
	}
	for i := 1; i < len(rs); i++ {
		if strings.Compare(rs[i-1].Code, rs[i].Code) > 0 {
			t.Fatalf("rules not in code order: %s before %s", rs[i-1].Code, rs[i].Code)
		}
	}
}
