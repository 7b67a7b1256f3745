package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected EntityType
	}{
		{"owl class", OwlClass},
		{"http://www.w3.org/2002/07/owl#Class", OwlClass},
		{"skos concept", SkosConcept},
		{"http://www.w3.org/2004/02/skos/core#Concept", SkosConcept},
		{"rdfs literal", RdfsLiteral},
		{"http://www.w3.org/2000/01/rdf-schema#Literal", RdfsLiteral},
		{"owl data property", OwlDataProperty},
		{"http://www.w3.org/2002/07/owl#DatatypeProperty", OwlDataProperty},
		{"rdf property", RdfProperty},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseEntityType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseEntityTypeUnknown(t *testing.T) {
	_, err := ParseEntityType("owl thing")
	assert.ErrorIs(t, err, ErrUnknownValue)

	_, err = ParseEntityType("")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestEntityTypeRoundTrip(t *testing.T) {
	for i := 1; i <= EntityTypeTotal; i++ {
		et := EntityType(i)

		fromName, err := ParseEntityType(et.String())
		require.NoError(t, err, "short form of %d", i)
		assert.Equal(t, et, fromName)

		fromURI, err := ParseEntityType(et.URI())
		require.NoError(t, err, "URI form of %d", i)
		assert.Equal(t, et, fromURI)
	}
}

func TestEntityTypeUnsetRendersEmpty(t *testing.T) {
	var unset EntityType
	assert.Empty(t, unset.String())
	assert.Empty(t, unset.URI())
}

func TestParseMappingCardinality(t *testing.T) {
	tests := []struct {
		input    string
		expected MappingCardinality
	}{
		{"1:1", OneToOne},
		{"1:n", OneToMany},
		{"n:1", ManyToOne},
		{"1:0", OneToNone},
		{"0:1", NoneToOne},
		{"n:n", ManyToMany},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMappingCardinality(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.input, got.String())
		})
	}

	_, err := ParseMappingCardinality("2:2")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestParsePredicateModifier(t *testing.T) {
	got, err := ParsePredicateModifier("Not")
	require.NoError(t, err)
	assert.Equal(t, Not, got)

	_, err = ParsePredicateModifier("not")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestVersion(t *testing.T) {
	v, err := ParseVersion("1.0")
	require.NoError(t, err)
	assert.Equal(t, SSSOM10, v)

	v, err = ParseVersion("1.1")
	require.NoError(t, err)
	assert.Equal(t, SSSOM11, v)

	_, err = ParseVersion("2.0")
	assert.ErrorIs(t, err, ErrUnknownValue)

	assert.True(t, SSSOM11.IsAtLeast(SSSOM10))
	assert.True(t, SSSOM11.IsAtLeast(SSSOM11))
	assert.False(t, SSSOM10.IsAtLeast(SSSOM11))
}
