package ir

import (
	"fmt"
	"time"
)

const Version = "1.0"

// Run is one full analysis invocation over a set of Python files.
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Source    string    `json:"source,omitempty"`
	IRVersion string    `json:"ir_version,omitempty"`

	Context Context      `json:"context"`
	Files   []FileReport `json:"files"`
	Stats   Stats        `json:"stats"`
}

// Context echoes the settings the run was evaluated under.
type Context struct {
	SeverityThreshold string   `json:"severity_threshold,omitempty"`
	DisabledCodes     []string `json:"disabled_codes,omitempty"`
	StrictNull        bool     `json:"strict_null,omitempty"`
	StrictContracts   bool     `json:"strict_contracts,omitempty"`
}

// FileReport is the per-file result. A file either parsed (ParseError empty,
// Violations possibly empty) or did not (ParseError set, zero violations).
type FileReport struct {
	Path       string      `json:"path"`
	Lines      int         `json:"lines,omitempty"`
	ParseError string      `json:"parse_error,omitempty"`
	Violations []Violation `json:"violations,omitempty"`
}

// Violation is the uniform reported unit: code, position, message.
// Line is 1-based, Column is 0-based, matching the original plugin output.
type Violation struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Path     string `json:"path,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
	Evidence string `json:"evidence,omitempty"`
}

// Stats aggregates a run for reports; filled by the stats package.
type Stats struct {
	Files       int            `json:"files"`
	ParseErrors int            `json:"parse_errors,omitempty"`
	Total       int            `json:"total"`
	ByCode      map[string]int `json:"by_code,omitempty"`
	BySeverity  map[string]int `json:"by_severity,omitempty"`
}

// AllViolations flattens the per-file violations in file order.
func (r *Run) AllViolations() []Violation {
	var out []Violation
	for _, f := range r.Files {
		out = append(out, f.Violations...)
	}
	return out
}

// The fourteen fixed Elegant Objects violation codes.
const (
	EO001 = "EO001" // class name
	EO002 = "EO002" // method name
	EO003 = "EO003" // variable name
	EO004 = "EO004" // function name
	EO005 = "EO005" // null usage
	EO006 = "EO006" // code in constructor
	EO007 = "EO007" // getter/setter
	EO008 = "EO008" // mutable object
	EO009 = "EO009" // static method
	EO010 = "EO010" // type discrimination
	EO011 = "EO011" // public method without contract
	EO012 = "EO012" // impure test method
	EO013 = "EO013" // ORM/ActiveRecord pattern
	EO014 = "EO014" // implementation inheritance
)

// One message template per code. Templates with %s take the offending name.
var templates = map[string]string{
	EO001: "EO001 Class name '%s' violates -er principle (describes what it does, not what it is)",
	EO002: "EO002 Method name '%s' violates -er principle (should be noun, not verb)",
	EO003: "EO003 Variable name '%s' violates -er principle (should be noun, not verb)",
	EO004: "EO004 Function name '%s' violates -er principle (should be noun, not verb)",
	EO005: "EO005 Null (None) usage violates EO principle (avoid None)",
	EO006: "EO006 Code in constructor violates EO principle (constructors should only assign parameters)",
	EO007: "EO007 Getter/setter method '%s' violates EO principle (avoid getters/setters)",
	EO008: "EO008 Mutable object violation: '%s' should be immutable",
	EO009: "EO009 Static method '%s' violates EO principle (no static methods allowed)",
	EO010: "EO010 isinstance/type casting violates EO principle (avoid type discrimination)",
	EO011: "EO011 Public method '%s' without contract (Protocol/ABC) violates EO principle",
	EO012: "EO012 Test method '%s' contains non-assertThat statements (only assertThat allowed)",
	EO013: "EO013 ORM/ActiveRecord pattern '%s' violates EO principle",
	EO014: "EO014 Implementation inheritance violates EO principle (class '%s' inherits from non-abstract class)",
}

var severities = map[string]string{
	EO001: "MEDIUM",
	EO002: "LOW",
	EO003: "LOW",
	EO004: "LOW",
	EO005: "MEDIUM",
	EO006: "MEDIUM",
	EO007: "MEDIUM",
	EO008: "HIGH",
	EO009: "MEDIUM",
	EO010: "HIGH",
	EO011: "LOW",
	EO012: "MEDIUM",
	EO013: "HIGH",
	EO014: "HIGH",
}

// Message renders the fixed template for code; name fills the placeholder
// where the template has one and is ignored otherwise.
func Message(code, name string) string {
	t, ok := templates[code]
	if !ok {
		return code
	}
	if !hasPlaceholder(t) {
		return t
	}
	return fmt.Sprintf(t, name)
}

func hasPlaceholder(t string) bool {
	for i := 0; i+1 < len(t); i++ {
		if t[i] == '%' && t[i+1] == 's' {
			return true
		}
	}
	return false
}

// SeverityOf returns the fixed severity for a code, or LOW for unknown
// (custom pack) codes that did not declare one.
func SeverityOf(code string) string {
	if s, ok := severities[code]; ok {
		return s
	}
	return "LOW"
}

// KnownCode reports whether code is one of the fourteen fixed EO codes.
func KnownCode(code string) bool {
	_, ok := templates[code]
	return ok
}

// Codes lists the fixed codes in ascending order.
func Codes() []string {
	return []string{
		EO001, EO002, EO003, EO004, EO005, EO006, EO007,
		EO008, EO009, EO010, EO011, EO012, EO013, EO014,
	}
}
