// Package rulesdsl loads custom naming rules from YAML packs and registers
// them alongside the built-in evaluators.
package rulesdsl

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"gopkg.in/yaml.v3"

	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/parser"
	"github.com/codewithboateng/eolint/internal/rules"
)

type dslPack struct {
	Rules []dslRule `yaml:"rules"`
}

type dslRule struct {
	Code     string `yaml:"code"`
	Summary  string `yaml:"summary"`
	Severity string `yaml:"severity"` // LOW|MEDIUM|HIGH
	Kind     string `yaml:"kind"`     // class|function|variable
	Message  string `yaml:"message"`  // %s is the offending name

	Where struct {
		NameRegex   string `yaml:"name_regex"`   // flag names matching this
		MethodsOnly bool   `yaml:"methods_only"` // kind=function: require self/cls
	} `yaml:"where"`
}

type compiled struct {
	rule   dslRule
	reName *regexp.Regexp
	kinds  []string
}

// LoadAndRegister reads one pack file and registers every rule in it.
// Returns the number of rules registered.
func LoadAndRegister(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read rules pack: %w", err)
	}
	var pack dslPack
	if err := yaml.Unmarshal(b, &pack); err != nil {
		return 0, fmt.Errorf("parse yaml: %w", err)
	}
	var n int
	for _, r := range pack.Rules {
		cr, err := compile(r)
		if err != nil {
			return n, fmt.Errorf("compile rule %q: %w", r.Code, err)
		}
		registerCompiled(*cr)
		n++
	}
	return n, nil
}

func compile(r dslRule) (*compiled, error) {
	if r.Code == "" || r.Kind == "" || r.Message == "" {
		return nil, fmt.Errorf("missing required fields (code/kind/message)")
	}
	if strings.HasPrefix(strings.ToUpper(r.Code), "EO0") {
		return nil, fmt.Errorf("code collides with the built-in EO range")
	}
	c := &compiled{rule: r}
	switch strings.ToLower(r.Kind) {
	case "class":
		c.kinds = []string{parser.KindClass}
	case "function":
		c.kinds = []string{parser.KindFunction}
	case "variable":
		c.kinds = []string{parser.KindAssignment}
	default:
		return nil, fmt.Errorf("unknown kind %q", r.Kind)
	}
	if r.Where.NameRegex == "" {
		return nil, fmt.Errorf("missing name_regex")
	}
	re, err := regexp.Compile(r.Where.NameRegex)
	if err != nil {
		return nil, fmt.Errorf("name_regex: %w", err)
	}
	c.reName = re
	return c, nil
}

func registerCompiled(c compiled) {
	sev := strings.ToUpper(c.rule.Severity)
	if sev == "" {
		sev = "LOW"
	}
	rules.Register(rules.Rule{
		Code:     strings.ToUpper(c.rule.Code),
		Summary:  c.rule.Summary,
		Severity: sev,
		Kinds:    c.kinds,
		Eval: func(n *sitter.Node, rc *rules.Context) []ir.Violation {
			name := targetName(n, rc.Src)
			if name == "" || !c.reName.MatchString(name) {
				return nil
			}
			if strings.EqualFold(c.rule.Kind, "function") && c.rule.Where.MethodsOnly && !parser.IsMethod(n, rc.Src) {
				return nil
			}
			return []ir.Violation{{
				Code:     strings.ToUpper(c.rule.Code),
				Severity: sev,
				Path:     rc.Path,
				Line:     parser.Line(n),
				Column:   parser.Col(n),
				Message:  fmt.Sprintf("%s %s", strings.ToUpper(c.rule.Code), fmt.Sprintf(c.rule.Message, name)),
				Evidence: name,
			}}
		},
	})
}

// targetName extracts the name a naming rule judges: the definition name for
// classes and functions, the left-hand identifier for assignments.
func targetName(n *sitter.Node, src []byte) string {
	switch n.Type() {
	case parser.KindClass, parser.KindFunction:
		return parser.Name(n, src)
	case parser.KindAssignment:
		left := n.ChildByFieldName("left")
		if left != nil && left.Type() == parser.KindIdentifier {
			return parser.Text(left, src)
		}
	}
	return ""
}
