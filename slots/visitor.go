package slots

import (
	"time"

	"sssom-kit/model"
)

// Visitor receives one callback per value shape. An algorithm that treats
// slots differently by shape implements this interface; the compiler then
// guarantees every shape is handled. The slot and record are passed along so
// implementations can branch further on flags (entity reference,
// multivalued) without re-deriving them.
//
// Embed Base to implement only the shapes an algorithm cares about.
type Visitor[T any] interface {
	VisitText(s *Slot[T], rec *T, v string)
	VisitTextList(s *Slot[T], rec *T, v []string)
	VisitDouble(s *Slot[T], rec *T, v *float64)
	VisitDate(s *Slot[T], rec *T, v time.Time)
	VisitEntityType(s *Slot[T], rec *T, v model.EntityType)
	VisitCardinality(s *Slot[T], rec *T, v model.MappingCardinality)
	VisitModifier(s *Slot[T], rec *T, v model.PredicateModifier)
	VisitVersion(s *Slot[T], rec *T, v model.Version)
	VisitCurieMap(s *Slot[T], rec *T, v map[string]string)
	VisitDefinitionList(s *Slot[T], rec *T, v []model.ExtensionDefinition)
	VisitExtensionMap(s *Slot[T], rec *T, v map[string]model.ExtensionValue)
}

// Base is a no-op Visitor implementation meant for embedding.
type Base[T any] struct{}

func (Base[T]) VisitText(*Slot[T], *T, string)                             {}
func (Base[T]) VisitTextList(*Slot[T], *T, []string)                       {}
func (Base[T]) VisitDouble(*Slot[T], *T, *float64)                         {}
func (Base[T]) VisitDate(*Slot[T], *T, time.Time)                          {}
func (Base[T]) VisitEntityType(*Slot[T], *T, model.EntityType)             {}
func (Base[T]) VisitCardinality(*Slot[T], *T, model.MappingCardinality)    {}
func (Base[T]) VisitModifier(*Slot[T], *T, model.PredicateModifier)        {}
func (Base[T]) VisitVersion(*Slot[T], *T, model.Version)                   {}
func (Base[T]) VisitCurieMap(*Slot[T], *T, map[string]string)              {}
func (Base[T]) VisitDefinitionList(*Slot[T], *T, []model.ExtensionDefinition) {
}
func (Base[T]) VisitExtensionMap(*Slot[T], *T, map[string]model.ExtensionValue) {
}

// Dispatch invokes the one visitor method matching the slot's declared
// kind, with the slot's current value. A slot with an unknown kind is a
// construction defect and panics.
func Dispatch[T any](s *Slot[T], rec *T, vis Visitor[T]) {
	v := s.Get(rec)
	switch s.Kind {
	case KindText:
		vis.VisitText(s, rec, v.Text)
	case KindTextList:
		vis.VisitTextList(s, rec, v.List)
	case KindDouble:
		vis.VisitDouble(s, rec, v.Num)
	case KindDate:
		vis.VisitDate(s, rec, v.Time)
	case KindEntityType:
		vis.VisitEntityType(s, rec, v.Entity)
	case KindCardinality:
		vis.VisitCardinality(s, rec, v.Cardinality)
	case KindModifier:
		vis.VisitModifier(s, rec, v.Modifier)
	case KindVersion:
		vis.VisitVersion(s, rec, v.Version)
	case KindCurieMap:
		vis.VisitCurieMap(s, rec, v.Map)
	case KindDefinitionList:
		vis.VisitDefinitionList(s, rec, v.Defs)
	case KindExtensionMap:
		vis.VisitExtensionMap(s, rec, v.Ext)
	default:
		panic("slot has no dispatchable kind: " + s.Name)
	}
}

// Visit dispatches every slot of the catalogue that currently holds a
// non-null value, in catalogue order.
func Visit[T any](c *Catalogue[T], rec *T, vis Visitor[T]) {
	for _, s := range c.Slots() {
		if s.IsSet(rec) {
			Dispatch(s, rec, vis)
		}
	}
}
