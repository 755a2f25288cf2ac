package golden

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/rules"
	"github.com/codewithboateng/eolint/internal/stats"
)

var update = flag.Bool("update", false, "update golden snapshot")

const goldenFile = "expected.json"

var sampleSources = []struct {
	path string
	src  string
}{
	{"src/models.py", `class Invoice:
    def __init__(self, amount):
        self.amount = amount
`},
	{"src/orders.py", `class OrderProcessor:
    @staticmethod
    def process(data):
        return data
`},
}

func TestGolden_ShopSnapshot(t *testing.T) {
	engine := rules.NewEngine(rules.DefaultSettings())

	run := ir.Run{
		ID:        "run-golden", // stable id for snapshot
		StartedAt: time.Time{},
		Source:    "samples/shop-small",
		IRVersion: ir.Version,
		Context:   ir.Context{SeverityThreshold: "LOW"},
	}
	for _, s := range sampleSources {
		run.Files = append(run.Files, engine.File(s.path, []byte(s.src)))
	}
	stats.Annotate(&run)

	// Normalize volatile fields before snapshot
	norm := normalize(run)

	got, err := json.MarshalIndent(norm, "", "  ")
	if err != nil {
		t.Fatalf("marshal got: %v", err)
	}

	if *update {
		if err := os.WriteFile(goldenFile, got, 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenFile)
		return
	}

	want, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("read golden (%s): %v\nRun with: go test ./test/golden -run TestGolden_ShopSnapshot -args -update", goldenFile, err)
	}

	if !bytes.Equal(bytes.TrimSpace(got), bytes.TrimSpace(want)) {
		tmp := filepath.Join(t.TempDir(), "got.json")
		_ = os.WriteFile(tmp, got, 0o644)
		t.Fatalf("golden mismatch.\n  golden: %s\n  actual: %s\nTip: update with\n  go test ./test/golden -run TestGolden_ShopSnapshot -count=1 -args -update", goldenFile, tmp)
	}
}

type runLite struct {
	ID        string     `json:"id"`
	StartedAt string     `json:"started_at"`
	Source    string     `json:"source,omitempty"`
	IRVersion string     `json:"ir_version,omitempty"`
	Context   ir.Context `json:"context"`
	Files     []fileLite `json:"files"`
	Stats     ir.Stats   `json:"stats"`
}

type fileLite struct {
	Path       string          `json:"path"`
	Lines      int             `json:"lines"`
	ParseError string          `json:"parse_error,omitempty"`
	Violations []violationLite `json:"violations"`
}

type violationLite struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
	Evidence string `json:"evidence,omitempty"`
}

// normalize drops volatile fields (timestamps, absolute paths come in
// pre-normalized). Engine output is already position-sorted.
func normalize(run ir.Run) runLite {
	files := make([]fileLite, 0, len(run.Files))
	for _, f := range run.Files {
		vs := make([]violationLite, 0, len(f.Violations))
		for _, v := range f.Violations {
			vs = append(vs, violationLite{
				Code:     v.Code,
				Severity: v.Severity,
				Line:     v.Line,
				Column:   v.Column,
				Message:  v.Message,
				Evidence: v.Evidence,
			})
		}
		files = append(files, fileLite{
			Path:       f.Path,
			Lines:      f.Lines,
			ParseError: f.ParseError,
			Violations: vs,
		})
	}
	return runLite{
		ID:        "run-golden",
		StartedAt: "", // zeroed
		Source:    run.Source,
		IRVersion: run.IRVersion,
		Context:   run.Context,
		Files:     files,
		Stats:     run.Stats,
	}
}
