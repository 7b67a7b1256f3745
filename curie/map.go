// Package curie shortens and expands identifiers against a prefix map. Both
// directions are total: an identifier that cannot be converted is returned
// unchanged. The prefixes the SSSOM specification considers built-in are
// always present.
package curie

import (
	"strings"

	"sssom-kit/model"
	"sssom-kit/slots"
)

// Builtin prefixes, present in every Map.
var builtinPrefixes = map[string]string{
	"sssom":  "https://w3id.org/sssom/",
	"semapv": "https://w3id.org/semapv/vocab/",
	"owl":    "http://www.w3.org/2002/07/owl#",
	"rdf":    "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs":   "http://www.w3.org/2000/01/rdf-schema#",
	"skos":   "http://www.w3.org/2004/02/skos/core#",
	"xsd":    "http://www.w3.org/2001/XMLSchema#",
	"orcid":  "https://orcid.org/",
}

// Map is a prefix map with shorten/expand capability. The zero value is not
// usable; construct with NewMap. A Map is not safe for concurrent use (the
// shorten cache mutates).
type Map struct {
	prefixes   map[string]string
	shortCache map[string]string
	unresolved map[string]bool
}

// NewMap creates a prefix map holding the built-in prefixes.
func NewMap() *Map {
	m := &Map{
		prefixes:   make(map[string]string, len(builtinPrefixes)),
		shortCache: make(map[string]string),
		unresolved: make(map[string]bool),
	}
	for name, prefix := range builtinPrefixes {
		m.prefixes[name] = prefix
	}
	return m
}

// Add registers a prefix under its short name (without the colon). A
// re-registered name overwrites, and invalidates the shorten cache.
func (m *Map) Add(name, prefix string) {
	m.prefixes[name] = prefix
	m.shortCache = make(map[string]string)
}

// AddAll registers every entry of the given prefix map.
func (m *Map) AddAll(prefixes map[string]string) {
	for name, prefix := range prefixes {
		m.prefixes[name] = prefix
	}
	m.shortCache = make(map[string]string)
}

// Expand turns a CURIE into its long form. Identifiers already in long form
// (http...), bare names, and CURIEs with an unknown prefix name are returned
// unchanged; unknown prefix names are remembered for Unresolved.
func (m *Map) Expand(curie string) string {
	if strings.HasPrefix(curie, "http") {
		return curie
	}

	name, local, found := strings.Cut(curie, ":")
	if !found {
		return curie
	}

	prefix, ok := m.prefixes[name]
	if !ok {
		m.unresolved[name] = true
		return curie
	}
	return prefix + local
}

// Shorten turns a long identifier into a CURIE using the longest matching
// prefix, or returns it unchanged when no prefix applies.
func (m *Map) Shorten(iri string) string {
	if short, ok := m.shortCache[iri]; ok {
		return short
	}

	bestName := ""
	bestLen := 0
	for name, prefix := range m.prefixes {
		if len(prefix) > bestLen && strings.HasPrefix(iri, prefix) {
			bestName = name
			bestLen = len(prefix)
		}
	}
	if bestLen == 0 {
		return iri
	}

	short := bestName + ":" + iri[bestLen:]
	m.shortCache[iri] = short
	return short
}

// ExpandAll expands every identifier of a list in place.
func (m *Map) ExpandAll(curies []string) {
	for i, c := range curies {
		curies[i] = m.Expand(c)
	}
}

// ShortenAll shortens every identifier of a list in place.
func (m *Map) ShortenAll(iris []string) {
	for i, iri := range iris {
		iris[i] = m.Shorten(iri)
	}
}

// Unresolved returns the prefix names encountered during the lifetime of
// this map that could not be expanded.
func (m *Map) Unresolved() []string {
	names := make([]string, 0, len(m.unresolved))
	for name := range m.unresolved {
		names = append(names, name)
	}
	return names
}

// ExpandSet expands every entity-reference slot of the set and of its
// mappings, including identifier-valued extensions. Values are rewritten in
// place to their long form.
func (m *Map) ExpandSet(ms *model.MappingSet) {
	m.rewriteSet(ms, m.Expand)
}

// ShortenSet is the inverse of ExpandSet, rewriting every entity reference
// to its compact form.
func (m *Map) ShortenSet(ms *model.MappingSet) {
	m.rewriteSet(ms, m.Shorten)
}

func (m *Map) rewriteSet(ms *model.MappingSet, f func(string) string) {
	for _, s := range slots.MappingSetSlots().Slots() {
		rewriteSlot(s, ms, f)
	}
	rewriteExtensions(ms.Extensions, f)
	for _, mp := range ms.Mappings {
		for _, s := range slots.MappingSlots().Slots() {
			rewriteSlot(s, mp, f)
		}
		rewriteExtensions(mp.Extensions, f)
	}
}

// rewriteSlot applies f to the value of one entity-reference slot. Only text
// and text-list slots can carry the flag.
func rewriteSlot[T any](s *slots.Slot[T], rec *T, f func(string) string) {
	if !s.EntityReference || !s.IsSet(rec) {
		return
	}
	v := s.Get(rec)
	switch s.Kind {
	case slots.KindText:
		v.Text = f(v.Text)
	case slots.KindTextList:
		for i, item := range v.List {
			v.List[i] = f(item)
		}
	default:
		return
	}
	// Kind is unchanged, Set cannot fail.
	_ = s.Set(rec, v)
}

func rewriteExtensions(ext map[string]model.ExtensionValue, f func(string) string) {
	for property, v := range ext {
		if v.IsIdentifier() {
			ext[property] = model.IdentifierValue(f(v.AsString()))
		}
	}
}
