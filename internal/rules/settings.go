package rules

import "strings"

// Suppression silences a set of codes under a path prefix. A code of "*"
// silences everything under the prefix.
type Suppression struct {
	Path  string
	Codes []string
}

// Settings is the per-engine configuration surface. The engine snapshots it
// at construction; nothing mutates it afterwards.
type Settings struct {
	SeverityThreshold string
	Disabled          map[string]bool
	AllowedNames      []string
	StrictNull        bool
	StrictContracts   bool
	ExemptTestFiles   bool
	Suppressions      []Suppression
}

// DefaultSettings matches the shipped config defaults.
func DefaultSettings() Settings {
	return Settings{
		SeverityThreshold: "LOW",
		Disabled:          map[string]bool{},
		StrictContracts:   true,
		ExemptTestFiles:   true,
	}
}

func severityRank(sev string) int {
	switch strings.ToUpper(strings.TrimSpace(sev)) {
	case "HIGH":
		return 3
	case "MEDIUM":
		return 2
	default:
		return 1 // LOW or unknown
	}
}

func (s Settings) severityOK(sev string) bool {
	return severityRank(sev) >= severityRank(s.SeverityThreshold)
}

func (s Settings) suppressed(path, code string) bool {
	for _, sup := range s.Suppressions {
		if sup.Path != "" && !strings.HasPrefix(path, sup.Path) {
			continue
		}
		for _, c := range sup.Codes {
			if c == "*" || strings.EqualFold(c, code) {
				return true
			}
		}
	}
	return false
}
