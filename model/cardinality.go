package model

import "fmt"

// MappingCardinality indicates whether a mapping is between exactly one
// subject and one object, between one subject and several objects, etc.
type MappingCardinality int

const (
	_ MappingCardinality = iota

	OneToOne
	OneToMany
	ManyToOne
	OneToNone
	NoneToOne
	ManyToMany

	// CardinalityTotal is a constant that represents the total number of cardinalities defined
	CardinalityTotal = int(iota) - 1
)

var cardinalityNames = map[MappingCardinality]string{
	OneToOne:   "1:1",
	OneToMany:  "1:n",
	ManyToOne:  "n:1",
	OneToNone:  "1:0",
	NoneToOne:  "0:1",
	ManyToMany: "n:n",
}

// String returns the wire form of the cardinality ("1:1", "n:n", ...), or an
// empty string for the unset value.
func (c MappingCardinality) String() string {
	return cardinalityNames[c]
}

// ParseMappingCardinality parses a cardinality from its wire form.
func ParseMappingCardinality(s string) (MappingCardinality, error) {
	for c, name := range cardinalityNames {
		if s == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: mapping cardinality %q", ErrUnknownValue, s)
}
