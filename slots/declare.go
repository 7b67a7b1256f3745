package slots

import (
	"time"

	"sssom-kit/model"
)

// Constructors below build one slot per value shape from a field accessor.
// Flags default to off and SSSOM 1.0; the chainable helpers adjust them at
// declaration sites.

func newTextSlot[T any](name, uri string, f func(*T) *string) *Slot[T] {
	return &Slot[T]{
		Name: name, URI: uri, Kind: KindText, Introduced: model.SSSOM10,
		get: func(r *T) Value { return TextValue(*f(r)) },
		set: func(r *T, v Value) { *f(r) = v.Text },
	}
}

func newListSlot[T any](name, uri string, f func(*T) *[]string) *Slot[T] {
	return &Slot[T]{
		Name: name, URI: uri, Kind: KindTextList, Multivalued: true, Introduced: model.SSSOM10,
		get: func(r *T) Value { return ListValue(*f(r)) },
		set: func(r *T, v Value) { *f(r) = v.List },
		append: func(r *T, item string) {
			p := f(r)
			*p = append(*p, item)
		},
	}
}

func newDoubleSlot[T any](name, uri string, f func(*T) **float64) *Slot[T] {
	return &Slot[T]{
		Name: name, URI: uri, Kind: KindDouble, Introduced: model.SSSOM10,
		get: func(r *T) Value { return DoubleValue(*f(r)) },
		set: func(r *T, v Value) { *f(r) = v.Num },
	}
}

func newDateSlot[T any](name, uri string, f func(*T) *time.Time) *Slot[T] {
	return &Slot[T]{
		Name: name, URI: uri, Kind: KindDate, Introduced: model.SSSOM10,
		get: func(r *T) Value { return DateValue(*f(r)) },
		set: func(r *T, v Value) { *f(r) = v.Time },
	}
}

func newEntityTypeSlot[T any](name, uri string, f func(*T) *model.EntityType) *Slot[T] {
	return &Slot[T]{
		Name: name, URI: uri, Kind: KindEntityType, Introduced: model.SSSOM10,
		get: func(r *T) Value { return EntityTypeValue(*f(r)) },
		set: func(r *T, v Value) { *f(r) = v.Entity },
	}
}

func newCardinalitySlot[T any](name, uri string, f func(*T) *model.MappingCardinality) *Slot[T] {
	return &Slot[T]{
		Name: name, URI: uri, Kind: KindCardinality, Introduced: model.SSSOM10,
		get: func(r *T) Value { return CardinalityValue(*f(r)) },
		set: func(r *T, v Value) { *f(r) = v.Cardinality },
	}
}

func newModifierSlot[T any](name, uri string, f func(*T) *model.PredicateModifier) *Slot[T] {
	return &Slot[T]{
		Name: name, URI: uri, Kind: KindModifier, Introduced: model.SSSOM10,
		get: func(r *T) Value { return ModifierValue(*f(r)) },
		set: func(r *T, v Value) { *f(r) = v.Modifier },
	}
}

func newVersionSlot[T any](name, uri string, f func(*T) *model.Version) *Slot[T] {
	return &Slot[T]{
		Name: name, URI: uri, Kind: KindVersion, Introduced: model.SSSOM10,
		get: func(r *T) Value { return VersionValue(*f(r)) },
		set: func(r *T, v Value) { *f(r) = v.Version },
	}
}

func newCurieMapSlot[T any](name, uri string, f func(*T) *map[string]string) *Slot[T] {
	return &Slot[T]{
		Name: name, URI: uri, Kind: KindCurieMap, Introduced: model.SSSOM10,
		get: func(r *T) Value { return CurieMapValue(*f(r)) },
		set: func(r *T, v Value) { *f(r) = v.Map },
	}
}

func newDefinitionListSlot[T any](name, uri string, f func(*T) *[]model.ExtensionDefinition) *Slot[T] {
	return &Slot[T]{
		Name: name, URI: uri, Kind: KindDefinitionList, Introduced: model.SSSOM10,
		get: func(r *T) Value { return DefinitionListValue(*f(r)) },
		set: func(r *T, v Value) { *f(r) = v.Defs },
	}
}

func newExtensionMapSlot[T any](name, uri string, f func(*T) *map[string]model.ExtensionValue) *Slot[T] {
	return &Slot[T]{
		Name: name, URI: uri, Kind: KindExtensionMap, Introduced: model.SSSOM10,
		get: func(r *T) Value { return ExtensionMapValue(*f(r)) },
		set: func(r *T, v Value) { *f(r) = v.Ext },
	}
}

func (s *Slot[T]) asEntityReference() *Slot[T] {
	s.EntityReference = true
	return s
}

func (s *Slot[T]) asPropagatable() *Slot[T] {
	s.Propagatable = true
	return s
}

func (s *Slot[T]) since(v model.Version) *Slot[T] {
	s.Introduced = v
	return s
}
