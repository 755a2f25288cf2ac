package rules

import (
	"testing"

	"github.com/codewithboateng/eolint/internal/ir"
)

func TestStaticMethod(t *testing.T) {
	src := `class Tally:
    @staticmethod
    def zero():
        return 0

    @classmethod
    def unit(cls):
        return 1

    def value(self):
        return self._value
`
	got := byCode(lint(t, src), ir.EO009)
	if len(got) != 2 {
		t.Fatalf("EO009 count = %d: %v", len(got), codesOf(got))
	}
	if got[0].Evidence != "@staticmethod" || got[1].Evidence != "@classmethod" {
		t.Errorf("evidence = %q, %q", got[0].Evidence, got[1].Evidence)
	}
	if got[0].Message != "EO009 Static method 'zero' violates EO principle (no static methods allowed)" {
		t.Errorf("message = %q", got[0].Message)
	}
}

func TestStaticMethod_OtherDecoratorsClean(t *testing.T) {
	src := `class Tally:
    @property
    def value(self):
        return self._value

    @functools.cache
    def total(self):
        return sum(self._values)
`
	if got := byCode(lint(t, src), ir.EO009); len(got) != 0 {
		t.Fatalf("non-static decorators flagged: %v", got)
	}
}
