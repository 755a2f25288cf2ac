package rules

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/parser"
)

// ClassInfo is what the contract and inheritance evaluators need from a
// class declared elsewhere in the same file.
type ClassInfo struct {
	Name    string
	Bases   []string
	Methods map[string]struct{}

	abstract bool // memoized transitive answer
	resolved bool
}

// ModuleIndex maps the class names declared in one file. It is built in a
// pre-scan before the rule traversal; resolution never leaves the file.
type ModuleIndex struct {
	classes map[string]*ClassInfo
}

// BuildModuleIndex scans the tree for class definitions at any depth.
// The first declaration of a name wins.
func BuildModuleIndex(root *sitter.Node, src []byte) *ModuleIndex {
	ix := &ModuleIndex{classes: map[string]*ClassInfo{}}
	ix.scan(root, src)
	return ix
}

func (ix *ModuleIndex) scan(n *sitter.Node, src []byte) {
	if n.Type() == parser.KindClass {
		ci := &ClassInfo{
			Name:    parser.Name(n, src),
			Methods: map[string]struct{}{},
		}
		for _, b := range parser.Superclasses(n) {
			if d := parser.DottedName(b, src); d != "" {
				ci.Bases = append(ci.Bases, d)
			}
		}
		for _, stmt := range parser.BodyStatements(n) {
			def := stmt
			if def.Type() == parser.KindDecorated {
				def = def.ChildByFieldName("definition")
			}
			if def != nil && def.Type() == parser.KindFunction {
				ci.Methods[parser.Name(def, src)] = struct{}{}
			}
		}
		if _, seen := ix.classes[ci.Name]; !seen {
			ix.classes[ci.Name] = ci
		}
	}
	for _, c := range parser.NamedChildren(n) {
		ix.scan(c, src)
	}
}

// Class looks up an in-file class by name.
func (ix *ModuleIndex) Class(name string) (*ClassInfo, bool) {
	ci, ok := ix.classes[name]
	return ci, ok
}

// IsContractBase reports whether a base expression names Protocol or ABC
// directly (bare or module-qualified).
func IsContractBase(dotted string) bool {
	last := dotted
	if i := strings.LastIndexByte(dotted, '.'); i >= 0 {
		last = dotted[i+1:]
	}
	return last == "Protocol" || last == "ABC"
}

// IsAbstract reports whether the named in-file class is abstract: it, or an
// in-file ancestor, bases Protocol/ABC.
func (ix *ModuleIndex) IsAbstract(name string) bool {
	return ix.isAbstract(name, map[string]bool{})
}

func (ix *ModuleIndex) isAbstract(name string, visited map[string]bool) bool {
	if visited[name] {
		return false
	}
	visited[name] = true
	ci, ok := ix.classes[name]
	if !ok {
		return false
	}
	if ci.resolved {
		return ci.abstract
	}
	for _, b := range ci.Bases {
		if IsContractBase(b) || ix.isAbstract(b, visited) {
			ci.abstract = true
			break
		}
	}
	ci.resolved = true
	return ci.abstract
}

// ContractSatisfied reports whether a class with the given bases has an
// abstract in-file ancestor covering method. When requireSameName is set
// the ancestor (or one of its abstract in-file ancestors) must declare a
// method of that name; otherwise any abstract ancestor suffices.
func (ix *ModuleIndex) ContractSatisfied(bases []string, method string, requireSameName bool) bool {
	visited := map[string]bool{}
	queue := append([]string(nil), bases...)
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		if visited[b] {
			continue
		}
		visited[b] = true
		if IsContractBase(b) {
			// A bare Protocol/ABC ancestor declares no methods itself.
			if !requireSameName {
				return true
			}
			continue
		}
		ci, ok := ix.classes[b]
		if !ok {
			continue
		}
		if ix.IsAbstract(ci.Name) {
			if !requireSameName {
				return true
			}
			if _, declared := ci.Methods[method]; declared {
				return true
			}
		}
		queue = append(queue, ci.Bases...)
	}
	return false
}
