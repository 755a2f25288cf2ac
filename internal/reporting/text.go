package reporting

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/codewithboateng/eolint/internal/ir"
)

// WriteText prints the flake8-style console report: one
// "path:line:col: message" line per violation, in file order. When
// showSource is set, the offending source line follows each violation.
// Returns the number of violations printed.
func WriteText(w io.Writer, run *ir.Run, showSource bool) int {
	var total int
	for _, f := range run.Files {
		if f.ParseError != "" {
			fmt.Fprintf(w, "%s: error: %s\n", f.Path, f.ParseError)
			continue
		}
		var lines []string
		if showSource && len(f.Violations) > 0 {
			lines = sourceLines(f.Path)
		}
		for _, v := range f.Violations {
			fmt.Fprintf(w, "%s:%d:%d: %s\n", f.Path, v.Line, v.Column, v.Message)
			if showSource && v.Line-1 >= 0 && v.Line-1 < len(lines) {
				fmt.Fprintf(w, "    %s\n", strings.TrimRight(lines[v.Line-1], "\r\n"))
			}
			total++
		}
	}
	return total
}

// WriteSummary prints the per-code totals under the violation listing.
func WriteSummary(w io.Writer, run *ir.Run) {
	if run.Stats.Total == 0 {
		fmt.Fprintf(w, "%d files checked, no violations\n", run.Stats.Files)
		return
	}
	fmt.Fprintf(w, "\n%d files checked, %d violations", run.Stats.Files, run.Stats.Total)
	if run.Stats.ParseErrors > 0 {
		fmt.Fprintf(w, ", %d parse errors", run.Stats.ParseErrors)
	}
	fmt.Fprintln(w)
	for _, code := range ir.Codes() {
		if n := run.Stats.ByCode[code]; n > 0 {
			fmt.Fprintf(w, "  %s  %d\n", code, n)
		}
	}
	// custom pack codes, if any
	var custom []string
	for code := range run.Stats.ByCode {
		if !ir.KnownCode(code) {
			custom = append(custom, code)
		}
	}
	sort.Strings(custom)
	for _, code := range custom {
		fmt.Fprintf(w, "  %s  %d\n", code, run.Stats.ByCode[code])
	}
}

func sourceLines(path string) []string {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return strings.Split(string(b), "\n")
}
