package reporting

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"

	"github.com/codewithboateng/eolint/internal/ir"
)

func WriteHTML(runID, outDir string, run *ir.Run) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, runID+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// Head + styles
	fmt.Fprintf(f, "<!doctype html><html><head><meta charset='utf-8'><title>%s</title>", html.EscapeString(runID))
	fmt.Fprint(f, "<style>body{font-family:system-ui,Arial,sans-serif;padding:20px;line-height:1.4} table{border-collapse:collapse;margin:8px 0} td,th{border:1px solid #ddd;padding:6px} h1,h2{margin:6px 0 4px} .dim{color:#666} .mono{font-family:ui-monospace,Menlo,Consolas,monospace}</style>")
	fmt.Fprint(f, "</head><body>")

	// Title + summary
	fmt.Fprintf(f, "<h1>eolint report – <span class='mono'>%s</span></h1>", html.EscapeString(runID))
	fmt.Fprintf(f, "<p>Files: %d &nbsp; Violations: %d", run.Stats.Files, run.Stats.Total)
	if run.Stats.ParseErrors > 0 {
		fmt.Fprintf(f, " &nbsp; Parse errors: %d", run.Stats.ParseErrors)
	}
	fmt.Fprint(f, "</p>")

	// Severity/disabled banner
	fmt.Fprintf(f, "<p class='dim'>Severity threshold: %s", html.EscapeString(run.Context.SeverityThreshold))
	if n := len(run.Context.DisabledCodes); n > 0 {
		fmt.Fprintf(f, " &nbsp; Disabled codes: %d", n)
	}
	fmt.Fprint(f, "</p>")

	// Per-code breakdown
	if len(run.Stats.ByCode) > 0 {
		codes := make([]string, 0, len(run.Stats.ByCode))
		for c := range run.Stats.ByCode {
			codes = append(codes, c)
		}
		sort.Strings(codes)
		fmt.Fprint(f, "<h2>By Code</h2><table><tr><th>Code</th><th>Severity</th><th>Count</th></tr>")
		for _, c := range codes {
			fmt.Fprintf(f, "<tr><td class='mono'>%s</td><td>%s</td><td>%d</td></tr>",
				html.EscapeString(c), html.EscapeString(ir.SeverityOf(c)), run.Stats.ByCode[c])
		}
		fmt.Fprint(f, "</table>")
	}

	// All violations, file order
	if run.Stats.Total > 0 {
		fmt.Fprint(f, "<h2>All Violations</h2><table><tr><th>Severity</th><th>Code</th><th>File</th><th>Line</th><th>Col</th><th>Message</th></tr>")
		for _, fr := range run.Files {
			for _, v := range fr.Violations {
				fmt.Fprintf(f, "<tr><td>%s</td><td class='mono'>%s</td><td class='mono'>%s</td><td>%d</td><td>%d</td><td>%s</td></tr>",
					html.EscapeString(v.Severity),
					html.EscapeString(v.Code),
					html.EscapeString(fr.Path),
					v.Line,
					v.Column,
					html.EscapeString(v.Message),
				)
			}
		}
		fmt.Fprint(f, "</table>")
	} else {
		fmt.Fprint(f, "<h2>All Violations</h2><p class='dim'>No violations at or above the configured threshold.</p>")
	}

	// Parse failures
	var broken []ir.FileReport
	for _, fr := range run.Files {
		if fr.ParseError != "" {
			broken = append(broken, fr)
		}
	}
	if len(broken) > 0 {
		fmt.Fprint(f, "<h2>Parse Failures</h2><table><tr><th>File</th><th>Error</th></tr>")
		for _, fr := range broken {
			fmt.Fprintf(f, "<tr><td class='mono'>%s</td><td>%s</td></tr>",
				html.EscapeString(fr.Path), html.EscapeString(fr.ParseError))
		}
		fmt.Fprint(f, "</table>")
	}

	fmt.Fprint(f, "</body></html>")
	return path, nil
}
