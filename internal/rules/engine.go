package rules

import (
	"bytes"
	"context"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/names"
	"github.com/codewithboateng/eolint/internal/parser"
)

// Engine evaluates one file at a time. It is immutable after construction
// and safe for concurrent use over distinct files: every traversal owns its
// Context, nothing is shared but the dispatch table and vocabulary.
type Engine struct {
	settings Settings
	vocab    *names.Vocabulary
	dispatch map[string][]Rule
	rules    []Rule
}

// NewEngine snapshots the registry and settings into a dispatch table,
// kind → rules in code order, resolved once.
func NewEngine(s Settings) *Engine {
	if s.Disabled == nil {
		s.Disabled = map[string]bool{}
	}
	e := &Engine{
		settings: s,
		vocab:    names.NewVocabulary(s.AllowedNames),
		dispatch: map[string][]Rule{},
	}
	for _, r := range All() {
		if s.Disabled[r.Code] {
			continue
		}
		e.rules = append(e.rules, r)
		for _, k := range r.Kinds {
			e.dispatch[k] = append(e.dispatch[k], r)
		}
	}
	return e
}

// Rules lists the enabled rules in code order.
func (e *Engine) Rules() []Rule { return e.rules }

// File analyzes one source unit. A parse failure is a file-level result:
// ParseError set, zero violations, never a partial analysis.
func (e *Engine) File(path string, src []byte) ir.FileReport {
	report := ir.FileReport{
		Path:  path,
		Lines: bytes.Count(src, []byte{'\n'}) + 1,
	}
	tree, err := parser.Parse(context.Background(), path, src)
	if err != nil {
		report.ParseError = err.Error()
		return report
	}
	defer tree.Close()

	rc := &Context{
		Path:            path,
		Src:             src,
		Vocab:           e.vocab,
		Index:           BuildModuleIndex(tree.Root, src),
		StrictNull:      e.settings.StrictNull,
		StrictContracts: e.settings.StrictContracts,
		NamingExempt:    e.settings.ExemptTestFiles && parser.IsTestPath(path),
	}

	var out []ir.Violation
	e.walk(tree.Root, rc, &out)

	out = e.filter(path, out)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Column < out[j].Column
	})
	report.Violations = out
	return report
}

// walk visits every named node exactly once, pre-order, keeping the scope
// stack current around class and function bodies.
func (e *Engine) walk(n *sitter.Node, rc *Context, out *[]ir.Violation) {
	switch n.Type() {
	case parser.KindClass:
		rc.pushClass(n)
		e.evalNode(n, rc, out)
		e.walkChildren(n, rc, out)
		rc.popClass()
	case parser.KindFunction:
		rc.pushFunc(n)
		e.evalNode(n, rc, out)
		e.walkChildren(n, rc, out)
		rc.popFunc()
	default:
		e.evalNode(n, rc, out)
		e.walkChildren(n, rc, out)
	}
}

func (e *Engine) walkChildren(n *sitter.Node, rc *Context, out *[]ir.Violation) {
	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		e.walk(n.NamedChild(i), rc, out)
	}
}

// evalNode runs the rules registered for this node's kind. A panicking
// evaluator loses its result for this node only; the traversal continues.
func (e *Engine) evalNode(n *sitter.Node, rc *Context, out *[]ir.Violation) {
	for _, r := range e.dispatch[n.Type()] {
		func() {
			defer func() { _ = recover() }()
			*out = append(*out, r.Eval(n, rc)...)
		}()
	}
}

func (e *Engine) filter(path string, in []ir.Violation) []ir.Violation {
	var out []ir.Violation
	for _, v := range in {
		if !e.settings.severityOK(v.Severity) {
			continue
		}
		if e.settings.suppressed(path, v.Code) {
			continue
		}
		out = append(out, v)
	}
	return out
}
