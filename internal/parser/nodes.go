package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// tree-sitter-python node kinds the rule evaluators dispatch on.
const (
	KindModule            = "module"
	KindClass             = "class_definition"
	KindFunction          = "function_definition"
	KindDecorated         = "decorated_definition"
	KindDecorator         = "decorator"
	KindAssignment        = "assignment"
	KindAugAssignment     = "augmented_assignment"
	KindExpressionStmt    = "expression_statement"
	KindCall              = "call"
	KindAttribute         = "attribute"
	KindIdentifier        = "identifier"
	KindNone              = "none"
	KindReturn            = "return_statement"
	KindComparison        = "comparison_operator"
	KindParameters        = "parameters"
	KindDefaultParam      = "default_parameter"
	KindTypedParam        = "typed_parameter"
	KindTypedDefaultParam = "typed_default_parameter"
	KindKeywordArg        = "keyword_argument"
	KindPass              = "pass_statement"
	KindBlock             = "block"
	KindArgList           = "argument_list"
	KindString            = "string"
	KindList              = "list"
	KindDict              = "dictionary"
	KindSet               = "set"
	KindTuple             = "tuple"
	KindType              = "type"
	KindPatternList       = "pattern_list"
	KindTrue              = "true"
	KindFalse             = "false"
	KindInteger           = "integer"
	KindFloat             = "float"
)

// Line is the 1-based source line of n, matching Python ast lineno.
func Line(n *sitter.Node) int { return int(n.StartPoint().Row) + 1 }

// Col is the 0-based source column of n, matching Python ast col_offset.
func Col(n *sitter.Node) int { return int(n.StartPoint().Column) }

// Text returns the source text of n.
func Text(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return n.Content(src)
}

// Name returns the "name" field of a class or function definition.
func Name(n *sitter.Node, src []byte) string {
	return Text(n.ChildByFieldName("name"), src)
}

// NamedChildren collects the named children of n in source order.
func NamedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

// BodyStatements returns the statements of a class or function body block.
func BodyStatements(def *sitter.Node) []*sitter.Node {
	return NamedChildren(def.ChildByFieldName("body"))
}

// Decorators returns the decorator nodes attached to a definition through its
// decorated_definition parent, in source order.
func Decorators(def *sitter.Node) []*sitter.Node {
	p := def.Parent()
	if p == nil || p.Type() != KindDecorated {
		return nil
	}
	var out []*sitter.Node
	for _, c := range NamedChildren(p) {
		if c.Type() == KindDecorator {
			out = append(out, c)
		}
	}
	return out
}

// DecoratorName reduces a decorator to its trailing identifier:
// @dataclass, @dataclasses.dataclass and @dataclass(frozen=True) all
// yield "dataclass".
func DecoratorName(dec *sitter.Node, src []byte) string {
	inner := dec.NamedChild(0)
	return trailingIdentifier(inner, src)
}

// DecoratorNames lists the reduced names of a definition's decorators.
func DecoratorNames(def *sitter.Node, src []byte) []string {
	var out []string
	for _, d := range Decorators(def) {
		out = append(out, DecoratorName(d, src))
	}
	return out
}

// DecoratorCall returns the call node of a decorator written as
// @name(args...), or nil when the decorator named name is bare or absent.
func DecoratorCall(def *sitter.Node, src []byte, name string) *sitter.Node {
	for _, d := range Decorators(def) {
		inner := d.NamedChild(0)
		if inner != nil && inner.Type() == KindCall &&
			trailingIdentifier(inner.ChildByFieldName("function"), src) == name {
			return inner
		}
	}
	return nil
}

func trailingIdentifier(n *sitter.Node, src []byte) string {
	switch {
	case n == nil:
		return ""
	case n.Type() == KindIdentifier:
		return Text(n, src)
	case n.Type() == KindAttribute:
		return Text(n.ChildByFieldName("attribute"), src)
	case n.Type() == KindCall:
		return trailingIdentifier(n.ChildByFieldName("function"), src)
	default:
		return ""
	}
}

// Superclasses returns the base-class expressions of a class definition,
// excluding keyword arguments such as metaclass=....
func Superclasses(class *sitter.Node) []*sitter.Node {
	args := class.ChildByFieldName("superclasses")
	if args == nil {
		return nil
	}
	var out []*sitter.Node
	for _, c := range NamedChildren(args) {
		if c.Type() == KindKeywordArg {
			continue
		}
		out = append(out, c)
	}
	return out
}

// DottedName renders identifier and attribute expressions as "a.b.c";
// anything else yields "".
func DottedName(n *sitter.Node, src []byte) string {
	switch {
	case n == nil:
		return ""
	case n.Type() == KindIdentifier:
		return Text(n, src)
	case n.Type() == KindAttribute:
		left := DottedName(n.ChildByFieldName("object"), src)
		if left == "" {
			return ""
		}
		return left + "." + Text(n.ChildByFieldName("attribute"), src)
	default:
		return ""
	}
}

// FirstParamName returns the name of the first positional parameter of a
// function definition, or "" when there is none.
func FirstParamName(fn *sitter.Node, src []byte) string {
	params := fn.ChildByFieldName("parameters")
	for _, p := range NamedChildren(params) {
		switch p.Type() {
		case KindIdentifier:
			return Text(p, src)
		case KindTypedParam:
			for _, c := range NamedChildren(p) {
				if c.Type() == KindIdentifier {
					return Text(c, src)
				}
			}
			return ""
		case KindDefaultParam, KindTypedDefaultParam:
			return Text(p.ChildByFieldName("name"), src)
		default:
			return ""
		}
	}
	return ""
}

// IsMethod reports whether fn's first parameter is self or cls, the same
// shape test the original plugin used.
func IsMethod(fn *sitter.Node, src []byte) bool {
	first := FirstParamName(fn, src)
	return first == "self" || first == "cls"
}

// InAnnotation reports whether n sits inside a type-annotation subtree
// (tree-sitter wraps annotations in a "type" node).
func InAnnotation(n *sitter.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == KindType {
			return true
		}
	}
	return false
}

// EnclosingKind returns the nearest ancestor of n whose kind is in kinds,
// or nil.
func EnclosingKind(n *sitter.Node, kinds ...string) *sitter.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		for _, k := range kinds {
			if p.Type() == k {
				return p
			}
		}
	}
	return nil
}

// IsSelfAttribute reports whether n is an attribute access on selfName and,
// if so, returns the attribute name.
func IsSelfAttribute(n *sitter.Node, src []byte, selfName string) (string, bool) {
	if n == nil || n.Type() != KindAttribute {
		return "", false
	}
	obj := n.ChildByFieldName("object")
	if obj == nil || obj.Type() != KindIdentifier || Text(obj, src) != selfName {
		return "", false
	}
	return Text(n.ChildByFieldName("attribute"), src), true
}

// SelfAttributePath walks attribute chains rooted at selfName:
// self.data → ["data"], self.container.data → ["container", "data"].
func SelfAttributePath(n *sitter.Node, src []byte, selfName string) ([]string, bool) {
	if n == nil || n.Type() != KindAttribute {
		return nil, false
	}
	obj := n.ChildByFieldName("object")
	attr := Text(n.ChildByFieldName("attribute"), src)
	if obj != nil && obj.Type() == KindIdentifier {
		if Text(obj, src) == selfName {
			return []string{attr}, true
		}
		return nil, false
	}
	head, ok := SelfAttributePath(obj, src, selfName)
	if !ok {
		return nil, false
	}
	return append(head, attr), true
}

// IsTestPath reports whether path looks like a Python test file.
func IsTestPath(path string) bool {
	base := path
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		base = path[i+1:]
	}
	return strings.HasPrefix(base, "test_") || strings.HasSuffix(base, "_test.py")
}
