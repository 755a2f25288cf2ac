package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/parser"
)

func init() {
	Register(Rule{
		Code:     ir.EO005,
		Summary:  "None is forbidden; use null objects instead.",
		Severity: ir.SeverityOf(ir.EO005),
		Kinds:    []string{parser.KindNone},
		Eval:     evalNull,
	})
}

// evalNull flags every None literal with runtime meaning: returns,
// comparisons, default values, arguments, assignments. None appearing only
// inside a type annotation is skipped unless strict mode is on.
func evalNull(n *sitter.Node, rc *Context) []ir.Violation {
	if !rc.StrictNull && parser.InAnnotation(n) {
		return nil
	}
	return []ir.Violation{rc.violation(n, ir.EO005, "", "None")}
}
