package rulesdsl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codewithboateng/eolint/internal/rules"
)

const samplePack = `rules:
  - code: ACME001
    summary: House naming rule.
    severity: MEDIUM
    kind: class
    message: "Class name '%s' is on the deny list"
    where:
      name_regex: "(?i)legacy"
  - code: ACME002
    summary: Methods must not be called run.
    kind: function
    message: "Method '%s' is too vague"
    where:
      name_regex: "^run$"
      methods_only: true
`

func writePack(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "pack.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadAndRegister(t *testing.T) {
	n, err := LoadAndRegister(writePack(t, samplePack))
	if err != nil {
		t.Fatalf("LoadAndRegister: %v", err)
	}
	if n != 2 {
		t.Fatalf("registered = %d, want 2", n)
	}
	if _, ok := rules.Get("ACME001"); !ok {
		t.Fatal("ACME001 not registered")
	}

	src := `class LegacyAdapter:
    def run(self):
        pass
`
	report := rules.NewEngine(rules.DefaultSettings()).File("legacy.py", []byte(src))
	var gotCustom []string
	for _, v := range report.Violations {
		if v.Code == "ACME001" || v.Code == "ACME002" {
			gotCustom = append(gotCustom, v.Code)
		}
	}
	if len(gotCustom) != 2 {
		t.Fatalf("custom violations = %v, want ACME001 and ACME002", gotCustom)
	}
}

func TestLoadAndRegister_RejectsBadPacks(t *testing.T) {
	cases := map[string]string{
		"missing fields":    "rules:\n  - code: X9\n    kind: class\n",
		"builtin collision": "rules:\n  - code: EO099\n    kind: class\n    message: \"%s\"\n    where:\n      name_regex: x\n",
		"unknown kind":      "rules:\n  - code: X9\n    kind: module\n    message: \"%s\"\n    where:\n      name_regex: x\n",
		"bad regex":         "rules:\n  - code: X9\n    kind: class\n    message: \"%s\"\n    where:\n      name_regex: \"[\"\n",
	}
	for name, content := range cases {
		if _, err := LoadAndRegister(writePack(t, content)); err == nil {
			t.Errorf("%s: want error", name)
		}
	}
}
