package model

import (
	"errors"
	"fmt"
)

// ErrUnknownValue reports a string that does not name any value of the
// enumeration being parsed.
var ErrUnknownValue = errors.New("unknown enumeration value")

// EntityType represents the type of an entity that is being mapped.
type EntityType int

const (
	_ EntityType = iota // skip zero value, used as the unset value

	OwlClass
	OwlObjectProperty
	OwlDataProperty
	OwlAnnotationProperty
	OwlNamedIndividual
	SkosConcept
	RdfsResource
	RdfsClass
	RdfsLiteral
	RdfsDatatype
	RdfProperty

	// EntityTypeTotal is a constant that represents the total number of entity types defined
	EntityTypeTotal = int(iota) - 1
)

var entityTypeNames = map[EntityType]string{
	OwlClass:              "owl class",
	OwlObjectProperty:     "owl object property",
	OwlDataProperty:       "owl data property",
	OwlAnnotationProperty: "owl annotation property",
	OwlNamedIndividual:    "owl named individual",
	SkosConcept:           "skos concept",
	RdfsResource:          "rdfs resource",
	RdfsClass:             "rdfs class",
	RdfsLiteral:           "rdfs literal",
	RdfsDatatype:          "rdfs datatype",
	RdfProperty:           "rdf property",
}

var entityTypeURIs = map[EntityType]string{
	OwlClass:              "http://www.w3.org/2002/07/owl#Class",
	OwlObjectProperty:     "http://www.w3.org/2002/07/owl#ObjectProperty",
	OwlDataProperty:       "http://www.w3.org/2002/07/owl#DatatypeProperty",
	OwlAnnotationProperty: "http://www.w3.org/2002/07/owl#AnnotationProperty",
	OwlNamedIndividual:    "http://www.w3.org/2002/07/owl#NamedIndividual",
	SkosConcept:           "http://www.w3.org/2004/02/skos/core#Concept",
	RdfsResource:          "http://www.w3.org/2000/01/rdf-schema#Resource",
	RdfsClass:             "http://www.w3.org/2000/01/rdf-schema#Class",
	RdfsLiteral:           "http://www.w3.org/2000/01/rdf-schema#Literal",
	RdfsDatatype:          "http://www.w3.org/2000/01/rdf-schema#Datatype",
	RdfProperty:           "http://www.w3.org/1999/02/22-rdf-syntax-ns#Property",
}

// String returns the short wire form of the entity type ("owl class", ...).
// The unset value renders as an empty string.
func (t EntityType) String() string {
	return entityTypeNames[t]
}

// URI returns the full URI form of the entity type, or an empty string for
// the unset value.
func (t EntityType) URI() string {
	return entityTypeURIs[t]
}

// ParseEntityType parses an entity type from either its full URI or its short
// wire form. The URI table is consulted first.
func ParseEntityType(s string) (EntityType, error) {
	for t, uri := range entityTypeURIs {
		if s == uri {
			return t, nil
		}
	}
	for t, name := range entityTypeNames {
		if s == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: entity type %q", ErrUnknownValue, s)
}

// PredicateModifier modifies the meaning of a mapping predicate. The only
// defined modifier is Not, which negates the predicate.
type PredicateModifier int

const (
	_ PredicateModifier = iota

	Not
)

// String returns the wire form of the modifier ("Not"), or an empty string
// for the unset value.
func (m PredicateModifier) String() string {
	if m == Not {
		return "Not"
	}
	return ""
}

// ParsePredicateModifier parses a predicate modifier from its wire form.
func ParsePredicateModifier(s string) (PredicateModifier, error) {
	if s == "Not" {
		return Not, nil
	}
	return 0, fmt.Errorf("%w: predicate modifier %q", ErrUnknownValue, s)
}
