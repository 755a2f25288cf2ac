// Package names decides whether an identifier reads as an "-er" actor name
// or a procedural verb, per the Elegant Objects hall of shame.
package names

import (
	"regexp"
	"strings"
)

// erSuffixes is the hall of shame of agent-noun endings.
var erSuffixes = []string{
	"accumulator", "adapter", "aggregator", "analyzer", "broker", "builder",
	"calculator", "checker", "collector", "compiler", "compressor",
	"consumer", "controller", "converter", "coordinator", "creator",
	"decoder", "decompressor", "deserializer", "dispatcher", "displayer",
	"encoder", "evaluator", "executor", "exporter", "factory", "fetcher",
	"filter", "finder", "formatter", "generator", "handler", "helper",
	"importer", "interpreter", "joiner", "listener", "loader", "manager",
	"mediator", "merger", "monitor", "observer", "orchestrator", "organizer",
	"parser", "printer", "processor", "producer", "provider", "reader",
	"renderer", "reporter", "router", "runner", "saver", "scanner",
	"scheduler", "serializer", "sorter", "splitter", "supplier",
	"synchronizer", "tracker", "transformer", "validator", "worker",
	"wrapper", "writer",
}

// proceduralVerbs are verbs that should be nouns when used as names.
var proceduralVerbs = map[string]struct{}{
	"accumulate": {}, "add": {}, "aggregate": {}, "analyze": {}, "append": {},
	"build": {}, "calculate": {}, "change": {}, "check": {}, "clean": {},
	"clear": {}, "close": {}, "collect": {}, "compile": {}, "compress": {},
	"control": {}, "convert": {}, "create": {}, "decode": {}, "decompress": {},
	"delete": {}, "deserialize": {}, "dispatch": {}, "display": {}, "do": {},
	"encode": {}, "evaluate": {}, "execute": {}, "export": {}, "fetch": {},
	"filter": {}, "find": {}, "format": {}, "generate": {}, "get": {},
	"handle": {}, "hide": {}, "import": {}, "insert": {}, "interpret": {},
	"join": {}, "load": {}, "manage": {}, "merge": {}, "modify": {},
	"open": {}, "organize": {}, "parse": {}, "pause": {}, "prepend": {},
	"print": {}, "process": {}, "put": {}, "read": {}, "receive": {},
	"refresh": {}, "remove": {}, "render": {}, "reset": {}, "resume": {},
	"retrieve": {}, "route": {}, "run": {}, "save": {}, "schedule": {},
	"search": {}, "send": {}, "serialize": {}, "set": {}, "show": {},
	"sort": {}, "split": {}, "start": {}, "stop": {}, "store": {},
	"transform": {}, "transmit": {}, "update": {}, "validate": {}, "write": {},
}

// allowedExceptions are legitimate short nouns ending in -er; policy data,
// extensible per run via Vocabulary.Allow.
var allowedExceptions = map[string]struct{}{
	"buffer": {}, "character": {}, "cluster": {}, "container": {},
	"counter": {}, "error": {}, "footer": {}, "header": {}, "identifier": {},
	"number": {}, "order": {}, "owner": {}, "parameter": {}, "pointer": {},
	"register": {}, "server": {}, "timer": {}, "user": {},
}

var wordRe = regexp.MustCompile(`[a-z]+`)

// Vocabulary is the process-wide, read-only pattern set. Extra allowed
// names, if any, are folded in at construction and never mutated after.
type Vocabulary struct {
	allowed map[string]struct{}
}

// NewVocabulary builds a Vocabulary with the fixed sets plus extra allowed
// names (compared case-insensitively).
func NewVocabulary(extraAllowed []string) *Vocabulary {
	allowed := make(map[string]struct{}, len(allowedExceptions)+len(extraAllowed))
	for k := range allowedExceptions {
		allowed[k] = struct{}{}
	}
	for _, a := range extraAllowed {
		allowed[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}
	return &Vocabulary{allowed: allowed}
}

// Default is the vocabulary with no extra exemptions.
var Default = NewVocabulary(nil)

// Classify tests identifier against the disallowed actor-name vocabulary
// and returns the matched fragment. It is pure and total: any string in,
// a fragment (or "") out.
func (v *Vocabulary) Classify(identifier string) (string, bool) {
	name := strings.ToLower(identifier)
	if _, ok := v.allowed[name]; ok {
		return "", false
	}
	for _, suffix := range erSuffixes {
		if strings.HasSuffix(name, suffix) {
			return suffix, true
		}
	}
	if w, ok := v.firstVerb(name); ok {
		return w, true
	}
	return "", false
}

// SuffixMatch tests only the -er suffix vocabulary, without the verb
// heuristic and without the exemption list.
func (v *Vocabulary) SuffixMatch(identifier string) (string, bool) {
	name := strings.ToLower(identifier)
	for _, suffix := range erSuffixes {
		if strings.HasSuffix(name, suffix) {
			return suffix, true
		}
	}
	return "", false
}

// FirstVerb reports whether identifier starts with a procedural verb, as in
// "process_data" or "get". Word splitting follows the original plugin: the
// name is lowercased first, so only snake_case boundaries survive.
func (v *Vocabulary) FirstVerb(identifier string) (string, bool) {
	return v.firstVerb(strings.ToLower(identifier))
}

func (v *Vocabulary) firstVerb(lower string) (string, bool) {
	words := wordRe.FindAllString(lower, 1)
	if len(words) == 0 {
		return "", false
	}
	if _, ok := proceduralVerbs[words[0]]; ok {
		return words[0], true
	}
	return "", false
}

// ContainsVerb reports whether any word of identifier is a procedural verb.
func (v *Vocabulary) ContainsVerb(identifier string) (string, bool) {
	for _, w := range wordRe.FindAllString(strings.ToLower(identifier), -1) {
		if _, ok := proceduralVerbs[w]; ok {
			return w, true
		}
	}
	return "", false
}

// Allowed reports whether name sits on the exemption list.
func (v *Vocabulary) Allowed(name string) bool {
	_, ok := v.allowed[strings.ToLower(name)]
	return ok
}
