package slots

//go:generate go tool stringer -type=ValueKind -output=kind_string.go

// ValueKind is the closed set of value shapes a slot can have. Every
// algorithm that treats slots differently by shape dispatches on this tag;
// the Visitor interface has exactly one method per kind, so a new kind
// cannot be added without extending every visitor.
type ValueKind int

const (
	_ ValueKind = iota // skip zero value, use it as a default (invalid) value for ValueKind

	KindText
	KindTextList
	KindDouble
	KindDate
	KindEntityType
	KindCardinality
	KindModifier
	KindVersion
	KindCurieMap
	KindDefinitionList
	KindExtensionMap

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota) - 1
)

// IsEnum returns true for the kinds backed by one of the closed model
// enumerations.
func (k ValueKind) IsEnum() bool {
	switch k {
	default:
		return false
	case KindEntityType, KindCardinality, KindModifier, KindVersion:
		return true
	}
}

// IsScalar returns true for single-valued kinds, i.e. everything except
// lists and maps.
func (k ValueKind) IsScalar() bool {
	switch k {
	default:
		return true
	case KindTextList, KindCurieMap, KindDefinitionList, KindExtensionMap:
		return false
	}
}
