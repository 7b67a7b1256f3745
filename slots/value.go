package slots

import (
	"time"

	"sssom-kit/model"
)

// Value is the tagged union carried between slots and algorithms. Exactly
// one payload field is meaningful, selected by Kind; a Value whose payload
// is the zero value of its kind represents "unset". The zero Value (kind 0)
// is invalid as a slot value.
type Value struct {
	Kind ValueKind

	Text        string
	List        []string
	Num         *float64
	Time        time.Time
	Entity      model.EntityType
	Cardinality model.MappingCardinality
	Modifier    model.PredicateModifier
	Version     model.Version
	Map         map[string]string
	Defs        []model.ExtensionDefinition
	Ext         map[string]model.ExtensionValue
}

// TextValue wraps a single text value.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// ListValue wraps a list of texts.
func ListValue(l []string) Value { return Value{Kind: KindTextList, List: l} }

// DoubleValue wraps an optional real number.
func DoubleValue(f *float64) Value { return Value{Kind: KindDouble, Num: f} }

// DateValue wraps a calendar date; the zero time is "unset".
func DateValue(t time.Time) Value { return Value{Kind: KindDate, Time: t} }

// EntityTypeValue wraps an entity type.
func EntityTypeValue(t model.EntityType) Value { return Value{Kind: KindEntityType, Entity: t} }

// CardinalityValue wraps a mapping cardinality.
func CardinalityValue(c model.MappingCardinality) Value {
	return Value{Kind: KindCardinality, Cardinality: c}
}

// ModifierValue wraps a predicate modifier.
func ModifierValue(m model.PredicateModifier) Value { return Value{Kind: KindModifier, Modifier: m} }

// VersionValue wraps a specification version.
func VersionValue(v model.Version) Value { return Value{Kind: KindVersion, Version: v} }

// CurieMapValue wraps a prefix map.
func CurieMapValue(m map[string]string) Value { return Value{Kind: KindCurieMap, Map: m} }

// DefinitionListValue wraps a list of extension definitions.
func DefinitionListValue(d []model.ExtensionDefinition) Value {
	return Value{Kind: KindDefinitionList, Defs: d}
}

// ExtensionMapValue wraps a map of extension values keyed by property.
func ExtensionMapValue(e map[string]model.ExtensionValue) Value {
	return Value{Kind: KindExtensionMap, Ext: e}
}

// Null returns the unset value of the given kind.
func Null(k ValueKind) Value { return Value{Kind: k} }

// IsNull returns true when the payload is the unset value of its kind.
// Empty lists and maps count as unset.
func (v Value) IsNull() bool {
	switch v.Kind {
	case KindText:
		return v.Text == ""
	case KindTextList:
		return len(v.List) == 0
	case KindDouble:
		return v.Num == nil
	case KindDate:
		return v.Time.IsZero()
	case KindEntityType:
		return v.Entity == 0
	case KindCardinality:
		return v.Cardinality == 0
	case KindModifier:
		return v.Modifier == 0
	case KindVersion:
		return v.Version == 0
	case KindCurieMap:
		return len(v.Map) == 0
	case KindDefinitionList:
		return len(v.Defs) == 0
	case KindExtensionMap:
		return len(v.Ext) == 0
	default:
		return true
	}
}

// Equal reports whether two values have the same kind and the same payload.
// Lists compare element-wise in order; maps compare by key and value.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindText:
		return v.Text == o.Text
	case KindTextList:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if v.List[i] != o.List[i] {
				return false
			}
		}
		return true
	case KindDouble:
		if v.Num == nil || o.Num == nil {
			return v.Num == o.Num
		}
		return *v.Num == *o.Num
	case KindDate:
		return v.Time.Equal(o.Time)
	case KindEntityType:
		return v.Entity == o.Entity
	case KindCardinality:
		return v.Cardinality == o.Cardinality
	case KindModifier:
		return v.Modifier == o.Modifier
	case KindVersion:
		return v.Version == o.Version
	case KindCurieMap:
		if len(v.Map) != len(o.Map) {
			return false
		}
		for k, val := range v.Map {
			if o.Map[k] != val {
				return false
			}
		}
		return true
	case KindDefinitionList:
		if len(v.Defs) != len(o.Defs) {
			return false
		}
		for i := range v.Defs {
			if v.Defs[i] != o.Defs[i] {
				return false
			}
		}
		return true
	case KindExtensionMap:
		if len(v.Ext) != len(o.Ext) {
			return false
		}
		for k, val := range v.Ext {
			other, ok := o.Ext[k]
			if !ok || !val.Equal(other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
