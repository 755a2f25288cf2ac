package rules

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/names"
	"github.com/codewithboateng/eolint/internal/parser"
)

// ClassFrame is the per-class scope state: pushed when the walker enters a
// class definition, popped on exit.
type ClassFrame struct {
	Node     *sitter.Node
	Name     string
	SelfName string
	// Attrs are the self attributes assigned in __init__.
	Attrs map[string]struct{}
}

// FuncFrame is the per-function scope state.
type FuncFrame struct {
	Node     *sitter.Node
	Name     string
	IsMethod bool
	IsInit   bool
	// Unbound marks staticmethod/classmethod definitions.
	Unbound bool
}

// Context carries the ambient facts evaluators cannot read off a single
// node: source bytes, the enclosing class/function stack, and the module
// class index. It lives for exactly one file traversal.
type Context struct {
	Path string
	Src  []byte

	Vocab *names.Vocabulary
	Index *ModuleIndex

	StrictNull      bool
	StrictContracts bool
	// NamingExempt disables the EO001-EO004 evaluators (test-file paths).
	NamingExempt bool

	classes []ClassFrame
	funcs   []FuncFrame
}

// CurrentClass returns the innermost enclosing class frame, or nil.
func (rc *Context) CurrentClass() *ClassFrame {
	if len(rc.classes) == 0 {
		return nil
	}
	return &rc.classes[len(rc.classes)-1]
}

// CurrentFunc returns the innermost enclosing function frame, or nil.
func (rc *Context) CurrentFunc() *FuncFrame {
	if len(rc.funcs) == 0 {
		return nil
	}
	return &rc.funcs[len(rc.funcs)-1]
}

// InInit reports whether the walker is inside a constructor body.
func (rc *Context) InInit() bool {
	f := rc.CurrentFunc()
	return f != nil && f.IsInit
}

// SelfName is the receiver name of the current class, defaulting to "self".
func (rc *Context) SelfName() string {
	if c := rc.CurrentClass(); c != nil && c.SelfName != "" {
		return c.SelfName
	}
	return "self"
}

func (rc *Context) pushClass(n *sitter.Node) {
	selfName, attrs := collectInitAttrs(n, rc.Src)
	rc.classes = append(rc.classes, ClassFrame{
		Node:     n,
		Name:     parser.Name(n, rc.Src),
		SelfName: selfName,
		Attrs:    attrs,
	})
}

func (rc *Context) popClass() { rc.classes = rc.classes[:len(rc.classes)-1] }

func (rc *Context) pushFunc(n *sitter.Node) {
	name := parser.Name(n, rc.Src)
	decs := parser.DecoratorNames(n, rc.Src)
	unbound := false
	for _, d := range decs {
		if d == "staticmethod" || d == "classmethod" {
			unbound = true
		}
	}
	rc.funcs = append(rc.funcs, FuncFrame{
		Node:     n,
		Name:     name,
		IsMethod: parser.IsMethod(n, rc.Src),
		IsInit:   name == "__init__" && parser.IsMethod(n, rc.Src),
		Unbound:  unbound,
	})
}

func (rc *Context) popFunc() { rc.funcs = rc.funcs[:len(rc.funcs)-1] }

// violation builds one violation at n with the fixed template for code.
func (rc *Context) violation(n *sitter.Node, code, name, evidence string) ir.Violation {
	return ir.Violation{
		Code:     code,
		Severity: ir.SeverityOf(code),
		Path:     rc.Path,
		Line:     parser.Line(n),
		Column:   parser.Col(n),
		Message:  ir.Message(code, name),
		Evidence: evidence,
	}
}

// collectInitAttrs finds the class's __init__ and gathers the attribute
// names it assigns on the receiver, plus the receiver's name.
func collectInitAttrs(class *sitter.Node, src []byte) (string, map[string]struct{}) {
	attrs := map[string]struct{}{}
	selfName := "self"

	for _, stmt := range parser.BodyStatements(class) {
		def := stmt
		if def.Type() == parser.KindDecorated {
			def = def.ChildByFieldName("definition")
			if def == nil {
				continue
			}
		}
		if def.Type() != parser.KindFunction || parser.Name(def, src) != "__init__" {
			continue
		}
		if first := parser.FirstParamName(def, src); first != "" {
			selfName = first
		}
		collectAssignTargets(def.ChildByFieldName("body"), src, selfName, attrs)
		break
	}
	return selfName, attrs
}

func collectAssignTargets(n *sitter.Node, src []byte, selfName string, attrs map[string]struct{}) {
	if n == nil {
		return
	}
	switch n.Type() {
	case parser.KindAssignment, parser.KindAugAssignment:
		collectTarget(n.ChildByFieldName("left"), src, selfName, attrs)
	}
	for _, c := range parser.NamedChildren(n) {
		collectAssignTargets(c, src, selfName, attrs)
	}
}

func collectTarget(t *sitter.Node, src []byte, selfName string, attrs map[string]struct{}) {
	if t == nil {
		return
	}
	switch t.Type() {
	case parser.KindAttribute:
		if attr, ok := parser.IsSelfAttribute(t, src, selfName); ok {
			attrs[attr] = struct{}{}
		}
	case parser.KindPatternList, parser.KindTuple, parser.KindList:
		for _, c := range parser.NamedChildren(t) {
			collectTarget(c, src, selfName, attrs)
		}
	}
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 120 {
		return s[:120] + "..."
	}
	return s
}
