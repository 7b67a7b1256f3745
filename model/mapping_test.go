package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingIsUnmapped(t *testing.T) {
	m := &Mapping{
		SubjectID:            "a",
		ObjectID:             "b",
		PredicateID:          "skos:exactMatch",
		MappingJustification: "semapv:ManualMappingCuration",
	}
	assert.False(t, m.IsUnmapped())

	m.PredicateID = ""
	assert.True(t, m.IsUnmapped())

	m.PredicateID = "skos:exactMatch"
	m.MappingJustification = ""
	assert.True(t, m.IsUnmapped())
}

func TestMappingCopyIsDeep(t *testing.T) {
	conf := 0.8
	m := &Mapping{
		SubjectID:            "a",
		PredicateID:          "skos:exactMatch",
		ObjectID:             "b",
		MappingJustification: "semapv:ManualMappingCuration",
		AuthorID:             []string{"orcid:0000-0001"},
		Confidence:           &conf,
		Extensions: map[string]ExtensionValue{
			"https://example.org/props/note": StringValue("original"),
		},
	}

	c := m.Copy()
	require.Equal(t, m, c)

	c.AuthorID[0] = "orcid:0000-0002"
	*c.Confidence = 0.1
	c.Extensions["https://example.org/props/note"] = StringValue("changed")

	assert.Equal(t, "orcid:0000-0001", m.AuthorID[0])
	assert.Equal(t, 0.8, *m.Confidence)
	assert.Equal(t, "original", m.Extensions["https://example.org/props/note"].AsString())
}

func TestMappingSetCopyIsDeep(t *testing.T) {
	ms := &MappingSet{
		MappingSetID: "https://example.org/sets/1",
		MappingDate:  time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		CurieMap:     map[string]string{"EX": "https://example.org/"},
		ExtensionDefinitions: []ExtensionDefinition{
			NewExtensionDefinition("note", "https://example.org/props/note", 0),
		},
		Mappings: []*Mapping{
			{SubjectID: "EX:1", PredicateID: "skos:exactMatch", ObjectID: "EX:2"},
		},
	}

	c := ms.Copy()
	require.Equal(t, ms, c)

	c.CurieMap["EX"] = "https://elsewhere.org/"
	c.Mappings[0].SubjectID = "EX:9"
	c.ExtensionDefinitions[0].SlotName = "renamed"

	assert.Equal(t, "https://example.org/", ms.CurieMap["EX"])
	assert.Equal(t, "EX:1", ms.Mappings[0].SubjectID)
	assert.Equal(t, "note", ms.ExtensionDefinitions[0].SlotName)
}
