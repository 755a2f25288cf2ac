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
		Code:     ir.EO001,
		Summary:  "Class names must describe what the object is, not what it does.",
		Severity: ir.SeverityOf(ir.EO001),
		Kinds:    []string{parser.KindClass},
		Eval:     evalClassName,
	})
	Register(Rule{
		Code:     ir.EO002,
		Summary:  "Method names must be nouns, not verbs.",
		Severity: ir.SeverityOf(ir.EO002),
		Kinds:    []string{parser.KindFunction},
		Eval:     evalMethodName,
	})
	Register(Rule{
		Code:     ir.EO003,
		Summary:  "Variable names must be nouns, not verbs or actor names.",
		Severity: ir.SeverityOf(ir.EO003),
		Kinds:    []string{parser.KindAssignment},
		Eval:     evalVariableName,
	})
	Register(Rule{
		Code:     ir.EO004,
		Summary:  "Function names must be nouns, not verbs.",
		Severity: ir.SeverityOf(ir.EO004),
		Kinds:    []string{parser.KindFunction},
		Eval:     evalFunctionName,
	})
}

func evalClassName(n *sitter.Node, rc *Context) []ir.Violation {
	if rc.NamingExempt {
		return nil
	}
	name := parser.Name(n, rc.Src)
	if name == "" || rc.Vocab.Allowed(name) {
		return nil
	}
	if frag, ok := rc.Vocab.SuffixMatch(name); ok {
		return []ir.Violation{rc.violation(n, ir.EO001, name, frag)}
	}
	if frag, ok := rc.Vocab.ContainsVerb(name); ok {
		return []ir.Violation{rc.violation(n, ir.EO001, name, frag)}
	}
	return nil
}

func evalMethodName(n *sitter.Node, rc *Context) []ir.Violation {
	if !parser.IsMethod(n, rc.Src) {
		return nil
	}
	return verbNamed(n, rc, ir.EO002)
}

func evalFunctionName(n *sitter.Node, rc *Context) []ir.Violation {
	if parser.IsMethod(n, rc.Src) {
		return nil
	}
	return verbNamed(n, rc, ir.EO004)
}

func verbNamed(n *sitter.Node, rc *Context, code string) []ir.Violation {
	if rc.NamingExempt {
		return nil
	}
	name := parser.Name(n, rc.Src)
	if name == "" || strings.HasPrefix(name, "_") {
		return nil
	}
	// Property protocol names are fine as-is.
	if name == "property" || name == "getter" || name == "setter" {
		return nil
	}
	if verb, ok := rc.Vocab.FirstVerb(name); ok {
		return []ir.Violation{rc.violation(n, code, name, verb)}
	}
	return nil
}

func evalVariableName(n *sitter.Node, rc *Context) []ir.Violation {
	if rc.NamingExempt {
		return nil
	}
	left := n.ChildByFieldName("left")
	if left == nil || left.Type() != parser.KindIdentifier {
		return nil
	}
	name := parser.Text(left, rc.Src)
	if strings.HasPrefix(name, "_") || isUpperName(name) {
		return nil
	}
	if frag, ok := rc.Vocab.Classify(name); ok {
		return []ir.Violation{rc.violation(left, ir.EO003, name, frag)}
	}
	return nil
}

// isUpperName mirrors str.isupper: at least one cased rune, none lowercase.
func isUpperName(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
