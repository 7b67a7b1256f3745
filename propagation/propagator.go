// Package propagation moves the values of propagatable slots between the
// set level and the mapping level. A set-level value for such a slot (say, a
// mapping_tool recorded once for the whole set) really means "every mapping
// was produced by this tool"; Propagate makes that explicit on every record,
// Condense pulls a unanimous record-level value back up.
package propagation

import (
	"slices"

	"sssom-kit/internal/common"
	"sssom-kit/model"
	slotspkg "sssom-kit/slots"
)

// Propagator pushes set-level values down to mappings and condenses
// unanimous mapping-level values back up, under one replacement policy. It
// is a per-invocation object holding no state beyond the policy.
type Propagator struct {
	policy Policy
}

// NewPropagator creates a propagator operating under the given policy.
func NewPropagator(policy Policy) *Propagator {
	return &Propagator{policy: policy}
}

// pair joins a set-level slot with the mapping-level slot of the same name.
type pair struct {
	set     *slotspkg.Slot[model.MappingSet]
	mapping *slotspkg.Slot[model.Mapping]
}

func propagatablePairs() []pair {
	var pairs []pair
	mappingSlots := slotspkg.MappingSlots()
	for _, s := range slotspkg.MappingSetSlots().Propagatable() {
		m, err := mappingSlots.ByName(s.Name)
		if err != nil || !m.Propagatable {
			continue
		}
		pairs = append(pairs, pair{set: s, mapping: m})
	}
	return pairs
}

// Propagate pushes every non-null propagatable set-level value down into the
// corresponding slot of every mapping, subject to the policy. When preserve
// is false, successfully propagated slots are nulled out at the set level
// (the value then lives only on the records). It returns the sorted names of
// the slots actually propagated; a set whose records decline the value under
// NeverReplace is not an error, just an absent name.
func (p *Propagator) Propagate(ms *model.MappingSet, preserve bool) []string {
	if p.policy == Disabled || common.IsEmpty(ms.Mappings) {
		return nil
	}

	var touched []string
	for _, pr := range propagatablePairs() {
		value := pr.set.Get(ms)
		if value.IsNull() {
			continue
		}

		if p.policy == NeverReplace && anySet(pr.mapping, ms.Mappings) {
			continue
		}

		for _, m := range ms.Mappings {
			if p.policy == ReplaceIfUnset && pr.mapping.IsSet(m) {
				continue
			}
			// Paired slots share their kind, Set cannot fail.
			_ = pr.mapping.Set(m, value)
		}

		touched = append(touched, pr.set.Name)
		if !preserve {
			pr.set.Clear(ms)
		}
	}

	slices.Sort(touched)
	return touched
}

// anySet returns true if any mapping carries a value for the slot.
func anySet(s *slotspkg.Slot[model.Mapping], mappings []*model.Mapping) bool {
	for _, m := range mappings {
		if s.IsSet(m) {
			return true
		}
	}
	return false
}

// Condense pulls record-level values up to the set level. A slot is
// condensable only when every mapping carries the same non-null value. A
// differing pre-existing set-level value is only overwritten under
// AlwaysReplace, which also clears the set-level value of non-condensable
// slots (a set-level value contradicted by the records is misleading noise).
// When preserve is false, condensed slots are nulled out at the mapping
// level afterwards. It returns the sorted names of the condensed slots.
func (p *Propagator) Condense(ms *model.MappingSet, preserve bool) []string {
	if p.policy == Disabled || common.IsEmpty(ms.Mappings) {
		return nil
	}

	var touched []string
	for _, pr := range propagatablePairs() {
		distinct := common.NewDistinct(slotspkg.Value.Equal)
		for _, m := range ms.Mappings {
			distinct.Add(pr.mapping.Get(m))
		}

		// Unanimity: one distinct value across all records, and it is
		// not the null value.
		value, unanimous := distinct.Single()
		condensable := unanimous && !value.IsNull()

		current := pr.set.Get(ms)
		if !condensable {
			if p.policy == AlwaysReplace && !current.IsNull() {
				pr.set.Clear(ms)
			}
			continue
		}

		if !current.IsNull() && !current.Equal(value) && p.policy != AlwaysReplace {
			continue
		}

		_ = pr.set.Set(ms, value)
		touched = append(touched, pr.set.Name)

		if !preserve {
			for _, m := range ms.Mappings {
				pr.mapping.Clear(m)
			}
		}
	}

	slices.Sort(touched)
	return touched
}
