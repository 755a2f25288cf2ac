package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/parser"
)

func init() {
	Register(Rule{
		Code:     ir.EO006,
		Summary:  "Constructors may only assign parameters to attributes.",
		Severity: ir.SeverityOf(ir.EO006),
		Kinds:    []string{parser.KindFunction},
		Eval:     evalConstructor,
	})
}

func evalConstructor(n *sitter.Node, rc *Context) []ir.Violation {
	if parser.Name(n, rc.Src) != "__init__" || !parser.IsMethod(n, rc.Src) {
		return nil
	}
	selfName := parser.FirstParamName(n, rc.Src)
	if selfName == "" {
		selfName = "self"
	}

	var out []ir.Violation
	for _, stmt := range parser.BodyStatements(n) {
		if constructorStmtOK(stmt, rc.Src, selfName) {
			continue
		}
		v := rc.violation(stmt, ir.EO006, "", snippet(parser.Text(stmt, rc.Src)))
		out = append(out, v)
	}
	return out
}

// constructorStmtOK permits pass, self.attr = <parameter name>, and the
// superclass initializer call. Everything else is constructor code.
func constructorStmtOK(stmt *sitter.Node, src []byte, selfName string) bool {
	switch stmt.Type() {
	case parser.KindPass:
		return true
	case parser.KindExpressionStmt:
		expr := stmt.NamedChild(0)
		if expr == nil {
			return false
		}
		switch expr.Type() {
		case parser.KindAssignment:
			return simpleSelfAssignment(expr, src, selfName)
		case parser.KindCall:
			return isSuperInitCall(expr, src)
		}
	}
	return false
}

func simpleSelfAssignment(assign *sitter.Node, src []byte, selfName string) bool {
	// Annotated assignments and chained targets count as code.
	if assign.ChildByFieldName("type") != nil {
		return false
	}
	left := assign.ChildByFieldName("left")
	if _, ok := parser.IsSelfAttribute(left, src, selfName); !ok {
		return false
	}
	right := assign.ChildByFieldName("right")
	return right != nil && right.Type() == parser.KindIdentifier
}

func isSuperInitCall(call *sitter.Node, src []byte) bool {
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Type() != parser.KindAttribute {
		return false
	}
	if parser.Text(fn.ChildByFieldName("attribute"), src) != "__init__" {
		return false
	}
	obj := fn.ChildByFieldName("object")
	if obj == nil || obj.Type() != parser.KindCall {
		return false
	}
	callee := obj.ChildByFieldName("function")
	return callee != nil && callee.Type() == parser.KindIdentifier &&
		parser.Text(callee, src) == "super"
}
