package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codewithboateng/eolint/internal/ir"
)

type diffPayload struct {
	BaseID  string        `json:"base_id"`
	HeadID  string        `json:"head_id"`
	Summary diffSummary   `json:"summary"`
	New     []diffEntry   `json:"new"`
	Removed []diffEntry   `json:"removed"`
	Changed []diffChanged `json:"changed"`
}

type diffSummary struct {
	NewCount     int `json:"new"`
	RemovedCount int `json:"removed"`
	ChangedCount int `json:"changed"`
}

type diffEntry struct {
	Code     string `json:"code"`
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity,omitempty"`
	Message  string `json:"message,omitempty"`
}

type diffChanged struct {
	Key     string    `json:"key"`
	Base    diffEntry `json:"base"`
	Head    diffEntry `json:"head"`
	Changed []string  `json:"fields_changed"`
}

// WriteDiffJSON compares two runs and writes the new/removed/changed
// violations. Identity ignores line numbers so pure code motion does not
// show up as churn; a violation is the same when code, file, and evidence
// match.
func WriteDiffJSON(baseID, headID, outDir string, base, head *ir.Run) (string, error) {
	path := filepath.Join(outDir, "diff_"+baseID+"__"+headID+".json")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	bm := indexRun(base)
	hm := indexRun(head)

	var added []diffEntry
	var removed []diffEntry
	var changed []diffChanged

	for k, hv := range hm {
		bv, ok := bm[k]
		if !ok {
			added = append(added, asEntry(hv))
			continue
		}
		var fields []string
		if norm(bv.Severity) != norm(hv.Severity) {
			fields = append(fields, "severity")
		}
		if strings.TrimSpace(bv.Message) != strings.TrimSpace(hv.Message) {
			fields = append(fields, "message")
		}
		if len(fields) > 0 {
			changed = append(changed, diffChanged{
				Key:     k,
				Base:    asEntry(bv),
				Head:    asEntry(hv),
				Changed: fields,
			})
		}
	}
	for k, bv := range bm {
		if _, ok := hm[k]; !ok {
			removed = append(removed, asEntry(bv))
		}
	}

	sort.Slice(added, func(i, j int) bool { return entryLess(added[i], added[j]) })
	sort.Slice(removed, func(i, j int) bool { return entryLess(removed[i], removed[j]) })
	sort.Slice(changed, func(i, j int) bool { return changed[i].Key < changed[j].Key })

	payload := diffPayload{
		BaseID: baseID, HeadID: headID,
		Summary: diffSummary{
			NewCount:     len(added),
			RemovedCount: len(removed),
			ChangedCount: len(changed),
		},
		New:     added,
		Removed: removed,
		Changed: changed,
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, b, 0o644)
}

func indexRun(run *ir.Run) map[string]ir.Violation {
	m := map[string]ir.Violation{}
	for _, f := range run.Files {
		for _, v := range f.Violations {
			k := keyOf(f.Path, v)
			// duplicate evidence on the same file: disambiguate by ordinal
			if _, taken := m[k]; taken {
				for i := 2; ; i++ {
					kk := fmt.Sprintf("%s#%d", k, i)
					if _, t := m[kk]; !t {
						k = kk
						break
					}
				}
			}
			m[k] = v
		}
	}
	return m
}

func keyOf(path string, v ir.Violation) string {
	sb := strings.Builder{}
	sb.WriteString(norm(v.Code))
	sb.WriteByte('|')
	sb.WriteString(path)
	sb.WriteByte('|')
	// evidence drives logical identity; lines move between runs
	sb.WriteString(norm(v.Evidence))
	return sb.String()
}

func asEntry(v ir.Violation) diffEntry {
	return diffEntry{
		Code:     v.Code,
		Path:     v.Path,
		Line:     v.Line,
		Column:   v.Column,
		Severity: v.Severity,
		Message:  v.Message,
	}
}

func entryLess(a, b diffEntry) bool {
	if a.Code != b.Code {
		return a.Code < b.Code
	}
	if a.Path != b.Path {
		return a.Path < b.Path
	}
	return a.Line < b.Line
}

func norm(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
