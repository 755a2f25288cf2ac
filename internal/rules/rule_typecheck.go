package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/parser"
)

func init() {
	Register(Rule{
		Code:     ir.EO010,
		Summary:  "No isinstance, reflection, or casting.",
		Severity: ir.SeverityOf(ir.EO010),
		Kinds:    []string{parser.KindCall},
		Eval:     evalTypeDiscrimination,
	})
}

// cast covers explicit downcasts; the rest are runtime type inspection.
var typeInspection = map[string]struct{}{
	"isinstance": {}, "type": {}, "hasattr": {}, "getattr": {},
	"setattr": {}, "delattr": {}, "callable": {}, "cast": {},
}

func evalTypeDiscrimination(n *sitter.Node, rc *Context) []ir.Violation {
	fn := n.ChildByFieldName("function")
	if fn == nil {
		return nil
	}
	var callee string
	switch fn.Type() {
	case parser.KindIdentifier:
		callee = parser.Text(fn, rc.Src)
	case parser.KindAttribute:
		if parser.DottedName(fn, rc.Src) == "typing.cast" {
			callee = "cast"
		}
	}
	if _, ok := typeInspection[callee]; !ok {
		return nil
	}
	return []ir.Violation{rc.violation(n, ir.EO010, "", callee)}
}
