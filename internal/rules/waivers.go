package rules

import (
	"strings"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/storage"
)

// ApplyWaivers filters out violations matched by an active waiver.
// Returns (kept, waivedCount).
func ApplyWaivers(in []ir.Violation, waivers []storage.Waiver) ([]ir.Violation, int) {
	if len(waivers) == 0 || len(in) == 0 {
		return in, 0
	}
	var out []ir.Violation
	waived := 0
nextViolation:
	for _, v := range in {
		for _, w := range waivers {
			if !strings.EqualFold(strings.TrimSpace(v.Code), strings.TrimSpace(w.Code)) {
				continue
			}
			if w.Path != "" && !strings.HasPrefix(v.Path, w.Path) {
				continue
			}
			if w.PatternSub != "" {
				ps := strings.ToUpper(w.PatternSub)
				if !strings.Contains(strings.ToUpper(v.Evidence), ps) &&
					!strings.Contains(strings.ToUpper(v.Message), ps) {
					continue
				}
			}
			waived++
			continue nextViolation
		}
		out = append(out, v)
	}
	return out, waived
}

// ApplyWaiversToRun filters every file report in place.
func ApplyWaiversToRun(run *ir.Run, waivers []storage.Waiver) int {
	total := 0
	for i := range run.Files {
		kept, n := ApplyWaivers(run.Files[i].Violations, waivers)
		run.Files[i].Violations = kept
		total += n
	}
	return total
}
