package rules

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/parser"
)

func init() {
	Register(Rule{
		Code:     ir.EO014,
		Summary:  "Inherit from contracts, never from concrete classes.",
		Severity: ir.SeverityOf(ir.EO014),
		Kinds:    []string{parser.KindClass},
		Eval:     evalInheritance,
	})
}

// Bases that are acceptable to subclass: contracts, the exception
// hierarchy, enum bases, and object itself.
var abstractBases = map[string]struct{}{
	"ABC": {}, "Protocol": {},
	"Exception": {}, "BaseException": {}, "ValueError": {}, "TypeError": {},
	"RuntimeError": {}, "AttributeError": {}, "KeyError": {},
	"IndexError": {}, "ImportError": {}, "OSError": {},
	"Enum": {}, "IntEnum": {}, "Flag": {}, "IntFlag": {},
	"object": {},
}

var abstractModules = map[string]struct{}{
	"abc": {}, "typing": {}, "collections": {}, "enum": {},
}

func evalInheritance(n *sitter.Node, rc *Context) []ir.Violation {
	name := parser.Name(n, rc.Src)
	for _, b := range parser.Superclasses(n) {
		dotted := parser.DottedName(b, rc.Src)
		if dotted == "" {
			// Subscripts (Generic[T]) and other shapes: no flag.
			continue
		}
		if baseIsAbstract(dotted, rc.Index) {
			continue
		}
		return []ir.Violation{rc.violation(n, ir.EO014, name, dotted)}
	}
	return nil
}

func baseIsAbstract(dotted string, ix *ModuleIndex) bool {
	if i := strings.IndexByte(dotted, '.'); i >= 0 {
		module, last := dotted[:i], dotted[strings.LastIndexByte(dotted, '.')+1:]
		if last == "Protocol" || last == "ABC" {
			return true
		}
		_, ok := abstractModules[module]
		return ok
	}
	if _, ok := abstractBases[dotted]; ok {
		return true
	}
	// A base defined in this file counts when it resolves to an abstract
	// class; a concrete in-file class is implementation inheritance.
	return ix.IsAbstract(dotted)
}
