package names

import "testing"

func TestClassify_ErSuffixes(t *testing.T) {
	cases := []struct {
		name string
		frag string
	}{
		{"DataManager", "manager"},
		{"OrderProcessor", "processor"},
		{"parser", "parser"},
		{"XmlHandler", "handler"},
		{"validator", "validator"},
	}
	for _, c := range cases {
		frag, ok := Default.Classify(c.name)
		if !ok {
			t.Errorf("Classify(%q): want match, got none", c.name)
			continue
		}
		if frag != c.frag {
			t.Errorf("Classify(%q): frag = %q, want %q", c.name, frag, c.frag)
		}
	}
}

func TestClassify_CleanNouns(t *testing.T) {
	for _, name := range []string{"account", "Invoice", "analysis", "ProcessedData", "temperature"} {
		if frag, ok := Default.Classify(name); ok {
			t.Errorf("Classify(%q): unexpectedly matched %q", name, frag)
		}
	}
}

func TestClassify_AllowedExceptions(t *testing.T) {
	for _, name := range []string{"user", "User", "buffer", "order", "server", "counter", "header"} {
		if frag, ok := Default.Classify(name); ok {
			t.Errorf("Classify(%q): exemption ignored, matched %q", name, frag)
		}
	}
}

func TestClassify_VerbStart(t *testing.T) {
	frag, ok := Default.Classify("analyze")
	if !ok || frag != "analyze" {
		t.Fatalf("Classify(analyze) = %q, %v; want analyze, true", frag, ok)
	}
}

func TestFirstVerb(t *testing.T) {
	cases := []struct {
		name string
		verb string
		ok   bool
	}{
		{"process_data", "process", true},
		{"get", "get", true},
		{"calculate_total", "calculate", true},
		{"total_calculation", "", false},
		{"processed", "", false}, // "processed" is not the verb "process"
		{"data_set", "", false},  // verb not in first position
	}
	for _, c := range cases {
		verb, ok := Default.FirstVerb(c.name)
		if ok != c.ok || verb != c.verb {
			t.Errorf("FirstVerb(%q) = %q, %v; want %q, %v", c.name, verb, ok, c.verb, c.ok)
		}
	}
}

func TestContainsVerb(t *testing.T) {
	// Lowercasing collapses camel humps, so only snake boundaries split.
	if verb, ok := Default.ContainsVerb("DataProcessingUnit"); ok {
		t.Errorf("ContainsVerb: unexpected match %q", verb)
	}
	verb, ok := Default.ContainsVerb("fast_sort_machine")
	if !ok || verb != "sort" {
		t.Fatalf("ContainsVerb(fast_sort_machine) = %q, %v; want sort, true", verb, ok)
	}
}

func TestNewVocabulary_ExtraAllowed(t *testing.T) {
	v := NewVocabulary([]string{"Scheduler", " worker "})
	if _, ok := v.Classify("scheduler"); ok {
		t.Error("extra exemption 'Scheduler' not honored")
	}
	if _, ok := v.Classify("worker"); ok {
		t.Error("extra exemption 'worker' not honored")
	}
	if _, ok := v.Classify("manager"); !ok {
		t.Error("unrelated name 'manager' should still match")
	}
}

func TestSuffixMatch_IgnoresExemptions(t *testing.T) {
	// SuffixMatch is the raw suffix test; "user" has no -er suffix entry
	// but "browser" does not either. "helper" always matches.
	if frag, ok := Default.SuffixMatch("helper"); !ok || frag != "helper" {
		t.Fatalf("SuffixMatch(helper) = %q, %v", frag, ok)
	}
	if _, ok := Default.SuffixMatch("account"); ok {
		t.Error("SuffixMatch(account): unexpected match")
	}
}
