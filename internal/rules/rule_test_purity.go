package rules

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/parser"
)

func init() {
	Register(Rule{
		Code:     ir.EO012,
		Summary:  "Test methods contain assertThat statements only.",
		Severity: ir.SeverityOf(ir.EO012),
		Kinds:    []string{parser.KindFunction},
		Eval:     evalTestPurity,
	})
}

func evalTestPurity(n *sitter.Node, rc *Context) []ir.Violation {
	name := parser.Name(n, rc.Src)
	if !strings.HasPrefix(name, "test_") {
		return nil
	}
	var out []ir.Violation
	for _, stmt := range parser.BodyStatements(n) {
		if stmt.Type() == parser.KindPass || isAssertThat(stmt, rc.Src) {
			continue
		}
		out = append(out, rc.violation(stmt, ir.EO012, name, snippet(parser.Text(stmt, rc.Src))))
	}
	return out
}

func isAssertThat(stmt *sitter.Node, src []byte) bool {
	if stmt.Type() != parser.KindExpressionStmt {
		return false
	}
	call := stmt.NamedChild(0)
	if call == nil || call.Type() != parser.KindCall {
		return false
	}
	fn := call.ChildByFieldName("function")
	switch {
	case fn == nil:
		return false
	case fn.Type() == parser.KindIdentifier:
		return parser.Text(fn, src) == "assertThat"
	case fn.Type() == parser.KindAttribute:
		return parser.Text(fn.ChildByFieldName("attribute"), src) == "assertThat"
	}
	return false
}
