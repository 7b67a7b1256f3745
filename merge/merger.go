// Package merge combines one mapping set into another in place. Each option
// flag independently gates one category of the source's contribution;
// extension definitions are reconciled whenever records or extension values
// travel, since merged content needs its defining metadata available.
package merge

import (
	"fmt"
	"slices"

	"sssom-kit/model"
	slotspkg "sssom-kit/slots"
)

// Merger merges mapping sets. It is a per-invocation object holding no
// shared state.
type Merger struct{}

// NewMerger creates a merger.
func NewMerger() *Merger {
	return &Merger{}
}

// Merge combines src into dst in place, governed by opts. src is not
// modified; records are appended as deep copies so later mutation of either
// set leaves the other untouched.
func (mg *Merger) Merge(dst, src *model.MappingSet, opts Options) {
	catalogue := slotspkg.MappingSetSlots()

	if opts.Has(Scalars) {
		for _, s := range catalogue.Slots() {
			if s.Kind.IsScalar() {
				// Source wins unconditionally, a null included.
				_ = s.Set(dst, s.Get(src))
			}
		}
	}

	if opts.Has(Lists) {
		for _, s := range catalogue.Slots() {
			if s.Kind != slotspkg.KindTextList {
				continue
			}
			merged := s.Get(dst).List
			for _, item := range s.Get(src).List {
				if !slices.Contains(merged, item) {
					merged = append(merged, item)
				}
			}
			_ = s.Set(dst, slotspkg.ListValue(merged))
		}
	}

	if opts.Has(CurieMap) && len(src.CurieMap) > 0 {
		if dst.CurieMap == nil {
			dst.CurieMap = make(map[string]string, len(src.CurieMap))
		}
		for name, prefix := range src.CurieMap {
			dst.CurieMap[name] = prefix
		}
	}

	if opts.Has(Extensions) && len(src.Extensions) > 0 {
		if dst.Extensions == nil {
			dst.Extensions = make(map[string]model.ExtensionValue, len(src.Extensions))
		}
		for property, v := range src.Extensions {
			dst.Extensions[property] = v
		}
	}

	// Records or extension values from the source need their defining
	// metadata even when the top-level extensions slot itself is not
	// merged.
	if opts.Has(Records) || opts.Has(Extensions) {
		dst.ExtensionDefinitions = mergeDefinitions(dst.ExtensionDefinitions, src.ExtensionDefinitions)
	}

	if opts.Has(Records) {
		for _, m := range src.Mappings {
			dst.Mappings = append(dst.Mappings, m.Copy())
		}
	}
}

// mergeDefinitions reconciles the source's extension definitions into the
// destination's. Three conflicts are resolved deterministically, never
// raised:
//   - same property, different slot name: the source's naming wins;
//   - same property, different type hint: effective type degrades to text;
//   - different property, same slot name: the incoming definition is
//     renamed with the smallest free numeric suffix and inserted alongside.
//
// The asymmetry (source naming authoritative on a property match, incoming
// renamed on a bare name match) is deliberate and load-bearing.
func mergeDefinitions(dst, src []model.ExtensionDefinition) []model.ExtensionDefinition {
	byProp := make(map[string]int, len(dst))
	names := make(map[string]bool, len(dst))
	for i, d := range dst {
		byProp[d.Property] = i
		names[d.SlotName] = true
	}

	for _, s := range src {
		if i, ok := byProp[s.Property]; ok {
			d := dst[i]
			if d.SlotName != s.SlotName {
				delete(names, d.SlotName)
				d.SlotName = s.SlotName
				names[s.SlotName] = true
			}
			if d.TypeHint != s.TypeHint {
				d.EffectiveType = model.ExtString
			}
			dst[i] = d
			continue
		}

		incoming := s
		if names[incoming.SlotName] {
			incoming.SlotName = freeName(incoming.SlotName, names)
		}
		dst = append(dst, incoming)
		byProp[incoming.Property] = len(dst) - 1
		names[incoming.SlotName] = true
	}

	return dst
}

// freeName appends _N for the smallest N >= 2 that does not collide with an
// existing slot name.
func freeName(base string, taken map[string]bool) string {
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d", base, n)
		if !taken[candidate] {
			return candidate
		}
	}
}
