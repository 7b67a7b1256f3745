package extension

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"sssom-kit/internal/common"
	"sssom-kit/model"
)

// PlaceholderNamespace is prepended to a field name when a definition has to
// be synthesized under PolicyUndefined. The namespace is deliberately not
// resolvable.
const PlaceholderNamespace = "http://sssom.invalid/"

// slotNameRx is the grammar a serialized extension field name must match.
// It applies uniformly to declared and inferred names, so malformed names in
// raw data are dropped rather than crashing the registry.
var slotNameRx = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// IsValidSlotName reports whether name satisfies the extension slot-name
// grammar.
func IsValidSlotName(name string) bool {
	return slotNameRx.MatchString(name)
}

// Registry tracks declared and inferred extension definitions for one
// ingestion or serialization pass. Within a registry, slot names are unique
// and properties are unique; looking either one up yields a consistent
// definition. Registries are per-invocation objects, not shared state.
type Registry struct {
	policy Policy

	bySlot map[string]model.ExtensionDefinition
	byProp map[string]model.ExtensionDefinition
	order  []string // properties in registration order

	// setLevel and mappingLevel record where a property's values were
	// observed by InferFromSet, to support the mapping-level-only filter.
	setLevel     map[string]bool
	mappingLevel map[string]bool
}

// NewRegistry creates an empty registry operating under the given policy.
func NewRegistry(policy Policy) *Registry {
	return &Registry{
		policy:       policy,
		bySlot:       make(map[string]model.ExtensionDefinition),
		byProp:       make(map[string]model.ExtensionDefinition),
		setLevel:     make(map[string]bool),
		mappingLevel: make(map[string]bool),
	}
}

// Policy returns the registry's metadata policy.
func (r *Registry) Policy() Policy {
	return r.policy
}

// IsEmpty returns true when no definitions are registered.
func (r *Registry) IsEmpty() bool {
	return len(r.byProp) == 0
}

// AddDefinition declares a non-standard field. It returns false without
// mutating the registry when the slot name is empty or malformed, or the
// property is empty. Re-declaring an existing slot name or property is
// last-write-wins, not an error.
func (r *Registry) AddDefinition(slotName, property string, hint model.ExtensionKind) bool {
	if r.policy == PolicyNone {
		return false
	}
	if slotName == "" || property == "" || !IsValidSlotName(slotName) {
		return false
	}

	r.remove(slotName, property)
	def := model.NewExtensionDefinition(slotName, property, hint)
	r.bySlot[slotName] = def
	r.byProp[property] = def
	r.order = append(r.order, property)
	return true
}

// remove drops any definition registered under the given slot name or
// property, keeping both indexes consistent.
func (r *Registry) remove(slotName, property string) {
	if old, ok := r.bySlot[slotName]; ok {
		delete(r.bySlot, slotName)
		delete(r.byProp, old.Property)
		r.dropOrder(old.Property)
	}
	if old, ok := r.byProp[property]; ok {
		delete(r.byProp, property)
		delete(r.bySlot, old.SlotName)
		r.dropOrder(old.Property)
	}
}

func (r *Registry) dropOrder(property string) {
	r.order = slices.DeleteFunc(r.order, func(p string) bool { return p == property })
}

// DefinitionForSlot resolves a serialized field name to its definition. Under
// PolicyUndefined a missing definition is synthesized on the fly (placeholder
// property, text type); under the other policies a missing or unaccepted
// field yields false.
func (r *Registry) DefinitionForSlot(slotName string) (model.ExtensionDefinition, bool) {
	if def, ok := r.bySlot[slotName]; ok {
		return def, true
	}
	if r.policy != PolicyUndefined || !IsValidSlotName(slotName) {
		return model.ExtensionDefinition{}, false
	}

	if !r.AddDefinition(slotName, PlaceholderNamespace+slotName, 0) {
		return model.ExtensionDefinition{}, false
	}
	return r.bySlot[slotName], true
}

// DefinitionForProperty resolves a global property to its definition.
func (r *Registry) DefinitionForProperty(property string) (model.ExtensionDefinition, bool) {
	def, ok := r.byProp[property]
	return def, ok
}

// InferFromSet scans every extension value actually present, at both the set
// level and the mapping level, and resolves each observed property's
// effective type. Exactly one observed shape wins; heterogeneous shapes
// degrade to text rather than failing. A declaration that conflicts with
// what was observed is likewise degraded to text. Under PolicyNone the scan
// is a no-op; under PolicyDefined only declared properties are updated.
// Under PolicyUndefined every acceptable observed property ends up with a
// definition; colliding derived field names are suffixed, not evicted.
func (r *Registry) InferFromSet(ms *model.MappingSet) {
	if r.policy == PolicyNone {
		return
	}

	observed := make(map[string]*common.Distinct[model.ExtensionKind])
	kindEq := func(a, b model.ExtensionKind) bool { return a == b }

	note := func(property string, v model.ExtensionValue, atSetLevel bool) {
		d, ok := observed[property]
		if !ok {
			d = common.NewDistinct(kindEq)
			observed[property] = d
		}
		d.Add(v.Kind())
		if atSetLevel {
			r.setLevel[property] = true
		} else {
			r.mappingLevel[property] = true
		}
	}

	for property, v := range ms.Extensions {
		note(property, v, true)
	}
	for _, m := range ms.Mappings {
		for property, v := range m.Extensions {
			note(property, v, false)
		}
	}

	properties := make([]string, 0, len(observed))
	for property := range observed {
		properties = append(properties, property)
	}
	slices.Sort(properties)

	for _, property := range properties {
		inferred, single := observed[property].Single()
		if !single {
			inferred = model.ExtString
		}

		def, declared := r.byProp[property]
		switch {
		case declared && def.EffectiveType != inferred:
			// The declaration conflicts with reality; safe-degrade.
			def.EffectiveType = model.ExtString
			r.byProp[property] = def
			r.bySlot[def.SlotName] = def
		case declared:
			// Declaration and observation agree.
		case r.policy == PolicyUndefined:
			if inferred == model.ExtOther {
				// No usable type observed; serialize as text.
				inferred = model.ExtString
			}
			name := r.freeSlotName(slotNameFromProperty(property))
			if r.AddDefinition(name, property, 0) {
				def = r.byProp[property]
				def.EffectiveType = inferred
				r.byProp[property] = def
				r.bySlot[def.SlotName] = def
			}
		}
	}
}

// freeSlotName returns name when no definition is registered under it,
// otherwise the name suffixed with the smallest free number starting at 2.
// Distinct properties that derive the same field name each keep a definition
// that way instead of evicting one another.
func (r *Registry) freeSlotName(name string) string {
	if _, taken := r.bySlot[name]; !taken {
		return name
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d", name, n)
		if _, taken := r.bySlot[candidate]; !taken {
			return candidate
		}
	}
}

// slotNameFromProperty derives a serialized field name from a property URI,
// taking the last path or fragment segment.
func slotNameFromProperty(property string) string {
	cut := strings.LastIndexAny(property, "/#")
	if cut < 0 || cut == len(property)-1 {
		return property
	}
	return property[cut+1:]
}

// Definitions returns the registered definitions. When sorted, ordering is
// by property; otherwise registration order is kept. When mappingLevelOnly,
// only definitions whose property was observed exclusively on individual
// mappings by InferFromSet are returned (used when serializing columns as
// opposed to a set-level block).
func (r *Registry) Definitions(sorted, mappingLevelOnly bool) []model.ExtensionDefinition {
	defs := make([]model.ExtensionDefinition, 0, len(r.order))
	for _, property := range r.order {
		if mappingLevelOnly && (!r.mappingLevel[property] || r.setLevel[property]) {
			continue
		}
		defs = append(defs, r.byProp[property])
	}

	if sorted {
		slices.SortStableFunc(defs, func(a, b model.ExtensionDefinition) int {
			return strings.Compare(a.Property, b.Property)
		})
	}
	return defs
}
