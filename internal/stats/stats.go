// Package stats aggregates per-run violation counts.
package stats

import "github.com/codewithboateng/eolint/internal/ir"

// Annotate fills run.Stats from the file reports.
func Annotate(run *ir.Run) {
	s := ir.Stats{
		ByCode:     map[string]int{},
		BySeverity: map[string]int{},
	}
	for _, f := range run.Files {
		s.Files++
		if f.ParseError != "" {
			s.ParseErrors++
		}
		for _, v := range f.Violations {
			s.Total++
			s.ByCode[v.Code]++
			s.BySeverity[v.Severity]++
		}
	}
	run.Stats = s
}

// Worst returns the highest severity present in the run, or "" when clean.
func Worst(run *ir.Run) string {
	for _, sev := range []string{"HIGH", "MEDIUM", "LOW"} {
		if run.Stats.BySeverity[sev] > 0 {
			return sev
		}
	}
	return ""
}
