package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/parser"
)

func init() {
	Register(Rule{
		Code:     ir.EO009,
		Summary:  "No static or class methods.",
		Severity: ir.SeverityOf(ir.EO009),
		Kinds:    []string{parser.KindFunction},
		Eval:     evalStaticMethod,
	})
}

func evalStaticMethod(n *sitter.Node, rc *Context) []ir.Violation {
	for _, d := range parser.DecoratorNames(n, rc.Src) {
		if d == "staticmethod" || d == "classmethod" {
			name := parser.Name(n, rc.Src)
			return []ir.Violation{rc.violation(n, ir.EO009, name, "@"+d)}
		}
	}
	return nil
}
