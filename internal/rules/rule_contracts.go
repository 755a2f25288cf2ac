package rules

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/parser"
)

func init() {
	Register(Rule{
		Code:     ir.EO011,
		Summary:  "Every public method must satisfy a declared contract.",
		Severity: ir.SeverityOf(ir.EO011),
		Kinds:    []string{parser.KindFunction},
		Eval:     evalContract,
	})
}

// evalContract flags a public method on a concrete class when no abstract
// ancestor covers it. Ancestors are resolved within the file; an imported
// base we cannot see is not a contract.
func evalContract(n *sitter.Node, rc *Context) []ir.Violation {
	name := parser.Name(n, rc.Src)
	if name == "" || strings.HasPrefix(name, "_") {
		return nil
	}
	class := rc.CurrentClass()
	if class == nil || !parser.IsMethod(n, rc.Src) {
		return nil
	}
	for _, d := range parser.DecoratorNames(n, rc.Src) {
		switch d {
		case "property", "abstractmethod", "abstractproperty":
			return nil
		}
	}

	bases := baseNames(class.Node, rc.Src)
	for _, b := range bases {
		if IsContractBase(b) {
			// The class is itself a contract declaration.
			return nil
		}
	}
	if rc.Index.ContractSatisfied(bases, name, rc.StrictContracts) {
		return nil
	}
	return []ir.Violation{rc.violation(n, ir.EO011, name, name)}
}

func baseNames(class *sitter.Node, src []byte) []string {
	var out []string
	for _, b := range parser.Superclasses(class) {
		if d := parser.DottedName(b, src); d != "" {
			out = append(out, d)
		}
	}
	return out
}
