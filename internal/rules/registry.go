package rules

import (
	"sort"
	"strings"
)

var registry []Rule

// Register adds a rule. Called from init() in the rule files and from the
// rulesdsl loader; never during a traversal.
func Register(r Rule) {
	if r.Severity == "" {
		r.Severity = "LOW"
	}
	registry = append(registry, r)
}

// All returns every registered rule ordered by code. The order is the fixed
// evaluator order: for one node, violations come out in ascending code.
func All() []Rule {
	out := make([]Rule, len(registry))
	copy(out, registry)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Get returns a registered rule by code.
func Get(code string) (Rule, bool) {
	for _, r := range registry {
		if strings.EqualFold(r.Code, code) {
			return r, true
		}
	}
	return Rule{}, false
}
