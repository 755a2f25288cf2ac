package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/parser"
)

func init() {
	Register(Rule{
		Code:     ir.EO013,
		Summary:  "No ORM/ActiveRecord persistence patterns.",
		Severity: ir.SeverityOf(ir.EO013),
		Kinds:    []string{parser.KindCall, parser.KindClass},
		Eval:     evalORM,
	})
}

var ormMethods = map[string]struct{}{
	"save": {}, "delete": {}, "destroy": {}, "update": {}, "create": {},
	"reload": {}, "find": {}, "find_by": {}, "where": {}, "filter": {},
	"filter_by": {}, "get": {}, "get_or_create": {}, "select": {},
	"insert": {}, "update_all": {}, "delete_all": {}, "execute": {},
	"query": {}, "order_by": {}, "group_by": {}, "having": {}, "limit": {},
	"offset": {}, "join": {}, "includes": {}, "eager_load": {},
	"preload": {}, "create_table": {}, "drop_table": {}, "add_column": {},
	"remove_column": {},
}

// Receivers that are plainly not persistence objects.
var builtinReceivers = map[string]struct{}{
	"list": {}, "dict": {}, "set": {}, "tuple": {}, "str": {}, "int": {},
	"float": {}, "bool": {},
}

var builtinFactories = map[string]struct{}{
	"open": {}, "int": {}, "str": {}, "list": {}, "dict": {}, "set": {},
	"tuple": {}, "bool": {}, "float": {},
}

// Class bases that mark a declaration as an ActiveRecord-style model.
var persistenceBases = map[string]struct{}{
	"Model": {}, "models.Model": {}, "db.Model": {}, "Base": {},
	"DeclarativeBase": {}, "ActiveRecord": {},
}

func evalORM(n *sitter.Node, rc *Context) []ir.Violation {
	if n.Type() == parser.KindClass {
		return ormModelClass(n, rc)
	}
	return ormCall(n, rc)
}

func ormModelClass(n *sitter.Node, rc *Context) []ir.Violation {
	for _, b := range parser.Superclasses(n) {
		dotted := parser.DottedName(b, rc.Src)
		if _, ok := persistenceBases[dotted]; ok {
			name := parser.Name(n, rc.Src)
			return []ir.Violation{rc.violation(n, ir.EO013, name, dotted)}
		}
	}
	return nil
}

func ormCall(n *sitter.Node, rc *Context) []ir.Violation {
	fn := n.ChildByFieldName("function")
	if fn == nil || fn.Type() != parser.KindAttribute {
		return nil
	}
	method := parser.Text(fn.ChildByFieldName("attribute"), rc.Src)
	if _, ok := ormMethods[method]; !ok {
		return nil
	}

	recv := fn.ChildByFieldName("object")
	if recv == nil || plainDataReceiver(recv, rc.Src) {
		return nil
	}
	return []ir.Violation{rc.violation(n, ir.EO013, method, snippet(parser.Text(n, rc.Src)))}
}

// plainDataReceiver recognizes receivers that cannot be persistence
// objects: builtin type names, literals, and builtin-constructor calls.
func plainDataReceiver(recv *sitter.Node, src []byte) bool {
	switch recv.Type() {
	case parser.KindIdentifier:
		_, ok := builtinReceivers[parser.Text(recv, src)]
		return ok
	case parser.KindString, parser.KindInteger, parser.KindFloat,
		parser.KindTrue, parser.KindFalse, parser.KindNone,
		parser.KindList, parser.KindDict, parser.KindSet, parser.KindTuple:
		return true
	case parser.KindCall:
		callee := recv.ChildByFieldName("function")
		if callee != nil && callee.Type() == parser.KindIdentifier {
			_, ok := builtinFactories[parser.Text(callee, src)]
			return ok
		}
	}
	return false
}
