// Package cardinality classifies, for every mapping of a set, the
// subject/object relationship as 1:1, 1:n, n:1 or n:n, optionally relative
// to a grouping scope of slot names whose values must also match for two
// mappings to be compared.
package cardinality

import (
	"strconv"
	"strings"
	"time"

	"sssom-kit/model"
	slotspkg "sssom-kit/slots"
)

// keySep separates the parts of a comparison key. The unit separator does
// not occur in ordinary metadata values, so concatenated keys cannot
// accidentally collide.
const keySep = "\x1f"

// missing is substituted for an absent identifier and label.
const missing = "<missing>"

// Classifier computes mapping cardinalities. A zero scope compares every
// mapping of the set against every other.
type Classifier struct {
	scope []string
	slots []*slotspkg.Slot[model.Mapping]
}

// NewClassifier creates a classifier grouping comparisons by the given slot
// names, in order. Unknown names fail with slots.ErrUnknownSlot; this is a
// caller error, not a data condition.
func NewClassifier(scope ...string) (*Classifier, error) {
	c := &Classifier{scope: scope}
	catalogue := slotspkg.MappingSlots()
	for _, name := range scope {
		s, err := catalogue.ByName(name)
		if err != nil {
			return nil, err
		}
		c.slots = append(c.slots, s)
	}
	return c, nil
}

// Fill computes and stores the cardinality of every mapping in the set.
// Unmapped records are excluded from the counting and get their cardinality
// and scope slots cleared instead.
func (c *Classifier) Fill(ms *model.MappingSet) {
	c.Classify(ms.Mappings)
}

// Classify computes and stores the cardinality of every mapping in the
// list, relative to that list.
func (c *Classifier) Classify(mappings []*model.Mapping) {
	subjectsByObject := make(map[string]map[string]bool)
	objectsBySubject := make(map[string]map[string]bool)

	for _, m := range mappings {
		if m.IsUnmapped() {
			continue
		}
		sk, okey := c.keys(m)
		addPair(subjectsByObject, okey, sk)
		addPair(objectsBySubject, sk, okey)
	}

	for _, m := range mappings {
		if m.IsUnmapped() {
			m.MappingCardinality = 0
			m.CardinalityScope = nil
			continue
		}
		sk, okey := c.keys(m)

		nSubjects := len(subjectsByObject[okey])
		nObjects := len(objectsBySubject[sk])

		switch {
		case nSubjects == 1 && nObjects == 1:
			m.MappingCardinality = model.OneToOne
		case nSubjects == 1:
			m.MappingCardinality = model.OneToMany
		case nObjects == 1:
			m.MappingCardinality = model.ManyToOne
		default:
			m.MappingCardinality = model.ManyToMany
		}

		if len(c.scope) > 0 {
			m.CardinalityScope = append([]string(nil), c.scope...)
		} else {
			m.CardinalityScope = nil
		}
	}
}

func addPair(index map[string]map[string]bool, key, member string) {
	set, ok := index[key]
	if !ok {
		set = make(map[string]bool)
		index[key] = set
	}
	set[member] = true
}

// keys builds the comparison keys for both sides of a mapping: a
// literal/entity discriminator, the identifier (or label, or a
// placeholder), then the scope slot values in order.
func (c *Classifier) keys(m *model.Mapping) (subject, object string) {
	scope := c.scopeKey(m)
	subject = sideKey(m.SubjectType, m.SubjectID, m.SubjectLabel) + scope
	object = sideKey(m.ObjectType, m.ObjectID, m.ObjectLabel) + scope
	return subject, object
}

func sideKey(t model.EntityType, id, label string) string {
	tag := "entity"
	if t == model.RdfsLiteral {
		tag = "literal"
	}
	v := id
	if v == "" {
		v = label
	}
	if v == "" {
		v = missing
	}
	return tag + keySep + v
}

// scopeKey renders the scope slot values of a mapping, each preceded by the
// separator so that empty scope values still keep key parts aligned.
func (c *Classifier) scopeKey(m *model.Mapping) string {
	if len(c.slots) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range c.slots {
		b.WriteString(keySep)
		b.WriteString(valueKey(s.Get(m)))
	}
	return b.String()
}

// valueKey renders a slot value deterministically for key building.
func valueKey(v slotspkg.Value) string {
	switch v.Kind {
	case slotspkg.KindText:
		return v.Text
	case slotspkg.KindTextList:
		return strings.Join(v.List, keySep)
	case slotspkg.KindDouble:
		if v.Num == nil {
			return ""
		}
		return strconv.FormatFloat(*v.Num, 'g', -1, 64)
	case slotspkg.KindDate:
		if v.Time.IsZero() {
			return ""
		}
		return v.Time.Format(time.RFC3339)
	case slotspkg.KindEntityType:
		return v.Entity.String()
	case slotspkg.KindCardinality:
		return v.Cardinality.String()
	case slotspkg.KindModifier:
		return v.Modifier.String()
	case slotspkg.KindVersion:
		return v.Version.String()
	default:
		// Map-shaped slots are not meaningful grouping criteria.
		return ""
	}
}
