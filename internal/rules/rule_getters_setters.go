package rules

import (
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/parser"
)

func init() {
	Register(Rule{
		Code:     ir.EO007,
		Summary:  "No getters or setters; objects expose behavior, not state.",
		Severity: ir.SeverityOf(ir.EO007),
		Kinds:    []string{parser.KindFunction},
		Eval:     evalGetterSetter,
	})
}

// The policy is name-based: get_/set_ prefixes, getX/setX camel humps, and
// bare get/set are flagged regardless of body shape. A method named "value"
// returning an attribute is fine.
func evalGetterSetter(n *sitter.Node, rc *Context) []ir.Violation {
	if !parser.IsMethod(n, rc.Src) {
		return nil
	}
	name := parser.Name(n, rc.Src)
	if name == "" || strings.HasPrefix(name, "_") {
		return nil
	}

	var out []ir.Violation
	if accessorName(name, "get") {
		out = append(out, rc.violation(n, ir.EO007, name, name))
	}
	if accessorName(name, "set") {
		out = append(out, rc.violation(n, ir.EO007, name, name))
	}
	return out
}

func accessorName(name, prefix string) bool {
	lower := strings.ToLower(name)
	if lower == prefix || strings.HasPrefix(lower, prefix+"_") {
		return true
	}
	if strings.HasPrefix(lower, prefix) && len(name) > len(prefix) {
		r := []rune(name[len(prefix):])
		return unicode.IsUpper(r[0])
	}
	return false
}
