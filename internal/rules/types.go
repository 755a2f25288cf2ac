package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
)

// Rule is a single evaluator: a pure function from one syntax node (plus the
// current traversal context) to zero or more violations. Kinds lists the
// node kinds the rule wants to see; other kinds never reach Eval.
type Rule struct {
	Code     string
	Summary  string
	Severity string
	Kinds    []string
	Eval     func(n *sitter.Node, rc *Context) []ir.Violation
}
