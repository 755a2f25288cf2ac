package rules

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/parser"
)

func init() {
	Register(Rule{
		Code:     ir.EO008,
		Summary:  "Objects must be immutable after construction.",
		Severity: ir.SeverityOf(ir.EO008),
		Kinds: []string{
			parser.KindClass,
			parser.KindAssignment,
			parser.KindAugAssignment,
			parser.KindCall,
		},
		Eval: evalMutable,
	})
}

var mutatingMethods = map[string]struct{}{
	// list
	"append": {}, "extend": {}, "insert": {}, "remove": {}, "pop": {},
	"clear": {}, "sort": {}, "reverse": {},
	// dict
	"update": {}, "popitem": {}, "setdefault": {},
	// set
	"add": {}, "discard": {},
	// general
	"__setitem__": {}, "__delitem__": {}, "__iadd__": {}, "__imul__": {},
}

var mutableConstructors = map[string]struct{}{
	"list": {}, "dict": {}, "set": {}, "bytearray": {},
}

func evalMutable(n *sitter.Node, rc *Context) []ir.Violation {
	switch n.Type() {
	case parser.KindClass:
		return mutableClass(n, rc)
	case parser.KindAssignment, parser.KindAugAssignment:
		return attributeReassignment(n, rc)
	case parser.KindCall:
		return mutatingCall(n, rc)
	}
	return nil
}

// mutableClass flags non-frozen dataclasses and class-level attributes bound
// to mutable literals or constructors.
func mutableClass(n *sitter.Node, rc *Context) []ir.Violation {
	var out []ir.Violation
	name := parser.Name(n, rc.Src)

	if hasDataclass(n, rc.Src) && !dataclassFrozen(n, rc.Src) {
		out = append(out, rc.violation(n, ir.EO008, name, "@dataclass"))
	}

	for _, stmt := range parser.BodyStatements(n) {
		if stmt.Type() != parser.KindExpressionStmt {
			continue
		}
		assign := stmt.NamedChild(0)
		if assign == nil || assign.Type() != parser.KindAssignment {
			continue
		}
		left := assign.ChildByFieldName("left")
		right := assign.ChildByFieldName("right")
		if left == nil || left.Type() != parser.KindIdentifier || right == nil {
			continue
		}
		if isMutableValue(right, rc.Src) {
			attr := parser.Text(left, rc.Src)
			out = append(out, rc.violation(assign, ir.EO008, attr, snippet(parser.Text(assign, rc.Src))))
		}
	}
	return out
}

func hasDataclass(class *sitter.Node, src []byte) bool {
	for _, d := range parser.DecoratorNames(class, src) {
		if d == "dataclass" {
			return true
		}
	}
	return false
}

func dataclassFrozen(class *sitter.Node, src []byte) bool {
	call := parser.DecoratorCall(class, src, "dataclass")
	if call == nil {
		return false
	}
	for _, arg := range parser.NamedChildren(call.ChildByFieldName("arguments")) {
		if arg.Type() != parser.KindKeywordArg {
			continue
		}
		if parser.Text(arg.ChildByFieldName("name"), src) != "frozen" {
			continue
		}
		val := arg.ChildByFieldName("value")
		if val != nil && val.Type() == parser.KindTrue {
			return true
		}
	}
	return false
}

func isMutableValue(n *sitter.Node, src []byte) bool {
	switch n.Type() {
	case parser.KindList, parser.KindDict, parser.KindSet:
		return true
	case parser.KindCall:
		fn := n.ChildByFieldName("function")
		if fn != nil && fn.Type() == parser.KindIdentifier {
			_, ok := mutableConstructors[parser.Text(fn, src)]
			return ok
		}
	}
	return false
}

// attributeReassignment flags writes to constructor-declared attributes from
// any method body other than the constructor itself.
func attributeReassignment(n *sitter.Node, rc *Context) []ir.Violation {
	class := rc.CurrentClass()
	fn := rc.CurrentFunc()
	if class == nil || fn == nil || !fn.IsMethod || fn.IsInit || fn.Unbound {
		return nil
	}
	var out []ir.Violation
	for _, attr := range reassignedAttrs(n.ChildByFieldName("left"), rc.Src, class) {
		out = append(out, rc.violation(n, ir.EO008, attr, attr))
	}
	return out
}

func reassignedAttrs(t *sitter.Node, src []byte, class *ClassFrame) []string {
	if t == nil {
		return nil
	}
	switch t.Type() {
	case parser.KindAttribute:
		if attr, ok := parser.IsSelfAttribute(t, src, class.SelfName); ok {
			if _, declared := class.Attrs[attr]; declared {
				return []string{attr}
			}
		}
	case parser.KindPatternList, parser.KindTuple, parser.KindList:
		var out []string
		for _, c := range parser.NamedChildren(t) {
			out = append(out, reassignedAttrs(c, src, class)...)
		}
		return out
	}
	return nil
}

// mutatingCall flags list/dict/set mutators invoked on constructor-declared
// attributes outside the constructor, e.g. self.items.append(x).
func mutatingCall(n *sitter.Node, rc *Context) []ir.Violation {
	class := rc.CurrentClass()
	fn := rc.CurrentFunc()
	if class == nil || fn == nil || !fn.IsMethod || fn.IsInit || fn.Unbound {
		return nil
	}
	callee := n.ChildByFieldName("function")
	if callee == nil || callee.Type() != parser.KindAttribute {
		return nil
	}
	method := parser.Text(callee.ChildByFieldName("attribute"), rc.Src)
	if _, ok := mutatingMethods[method]; !ok {
		return nil
	}
	path, ok := parser.SelfAttributePath(callee.ChildByFieldName("object"), rc.Src, class.SelfName)
	if !ok || len(path) == 0 {
		return nil
	}
	if _, declared := class.Attrs[path[0]]; !declared {
		return nil
	}
	full := strings.Join(path, ".")
	return []ir.Violation{rc.violation(n, ir.EO008, full, full+"."+method+"()")}
}
