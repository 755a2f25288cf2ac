package rules

import (
	"testing"

	"github.com/codewithboateng/eolint/internal/ir"
)

func TestConstructor_PureAssignments(t *testing.T) {
	src := `class Point:
    def __init__(self, x, y):
        self.x = x
        self.y = y
`
	if got := byCode(lint(t, src), ir.EO006); len(got) != 0 {
		t.Fatalf("pure constructor flagged: %v", got)
	}
}

func TestConstructor_ComputedValue(t *testing.T) {
	src := `class Endpoint:
    def __init__(self, url):
        self.url = url.strip()
`
	got := byCode(lint(t, src), ir.EO006)
	if len(got) != 1 {
		t.Fatalf("EO006 count = %d", len(got))
	}
	v := got[0]
	if v.Line != 3 || v.Column != 8 {
		t.Errorf("at %d:%d, want 3:8", v.Line, v.Column)
	}
	if v.Evidence != "self.url = url.strip()" {
		t.Errorf("evidence = %q", v.Evidence)
	}
}

func TestConstructor_StatementsAreCode(t *testing.T) {
	src := `class Endpoint:
    def __init__(self, url):
        if url:
            self.url = url
        print(url)
`
	got := byCode(lint(t, src), ir.EO006)
	if len(got) != 2 {
		t.Fatalf("EO006 count = %d, want 2 (if and print)", len(got))
	}
}

func TestConstructor_SuperInitAllowed(t *testing.T) {
	src := `class Endpoint(Base):
    def __init__(self, url):
        super().__init__(url)
        self.url = url
`
	if got := byCode(lint(t, src), ir.EO006); len(got) != 0 {
		t.Fatalf("super().__init__ flagged: %v", got)
	}
}

func TestConstructor_AlternativeReceiverName(t *testing.T) {
	src := `class Point:
    def __init__(this, x):
        this.x = x
`
	if got := byCode(lint(t, src), ir.EO006); len(got) != 0 {
		t.Fatalf("alternative receiver flagged: %v", got)
	}
}

func TestConstructor_AnnotatedAssignmentIsCode(t *testing.T) {
	src := `class Point:
    def __init__(self, x):
        self.x: int = x
`
	got := byCode(lint(t, src), ir.EO006)
	if len(got) != 1 {
		t.Fatalf("EO006 count = %d, want 1", len(got))
	}
}
