package curie

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sssom-kit/model"
)

func ExampleMap() {
	m := NewMap()
	m.Add("UBERON", "http://purl.obolibrary.org/obo/UBERON_")

	fmt.Println(m.Expand("UBERON:0000468"))
	fmt.Println(m.Shorten("http://www.w3.org/2004/02/skos/core#exactMatch"))
	// Output:
	// http://purl.obolibrary.org/obo/UBERON_0000468
	// skos:exactMatch
}

func TestExpand(t *testing.T) {
	m := NewMap()
	m.Add("UBERON", "http://purl.obolibrary.org/obo/UBERON_")

	tests := []struct {
		input    string
		expected string
	}{
		{"UBERON:0000468", "http://purl.obolibrary.org/obo/UBERON_0000468"},
		{"skos:exactMatch", "http://www.w3.org/2004/02/skos/core#exactMatch"},
		{"semapv:ManualMappingCuration", "https://w3id.org/semapv/vocab/ManualMappingCuration"},
		// Already long.
		{"http://example.org/thing", "http://example.org/thing"},
		{"https://example.org/thing", "https://example.org/thing"},
		// Bare name, no colon.
		{"justaname", "justaname"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Expand(tt.input))
		})
	}
}

func TestExpandTracksUnresolved(t *testing.T) {
	m := NewMap()
	assert.Equal(t, "MYSTERY:42", m.Expand("MYSTERY:42"))
	assert.Equal(t, []string{"MYSTERY"}, m.Unresolved())
}

func TestShorten(t *testing.T) {
	m := NewMap()
	m.Add("EX", "https://example.org/")

	assert.Equal(t, "EX:42", m.Shorten("https://example.org/42"))
	assert.Equal(t, "skos:broadMatch", m.Shorten("http://www.w3.org/2004/02/skos/core#broadMatch"))
	assert.Equal(t, "http://elsewhere.org/42", m.Shorten("http://elsewhere.org/42"))
}

func TestShortenPrefersLongestPrefix(t *testing.T) {
	m := NewMap()
	m.Add("OBO", "http://purl.obolibrary.org/obo/")
	m.Add("UBERON", "http://purl.obolibrary.org/obo/UBERON_")

	assert.Equal(t, "UBERON:0000468", m.Shorten("http://purl.obolibrary.org/obo/UBERON_0000468"))
	assert.Equal(t, "OBO:FBbt_00000001", m.Shorten("http://purl.obolibrary.org/obo/FBbt_00000001"))
}

func TestAddInvalidatesShortenCache(t *testing.T) {
	m := NewMap()
	m.Add("EX", "https://example.org/")
	require.Equal(t, "EX:long/42", m.Shorten("https://example.org/long/42"))

	m.Add("EXL", "https://example.org/long/")
	assert.Equal(t, "EXL:42", m.Shorten("https://example.org/long/42"))
}

func TestRoundTrip(t *testing.T) {
	m := NewMap()
	m.Add("EX", "https://example.org/")

	for _, curie := range []string{"EX:1", "skos:exactMatch", "orcid:0000-0001"} {
		assert.Equal(t, curie, m.Shorten(m.Expand(curie)))
	}
}

func TestExpandSet(t *testing.T) {
	ms := &model.MappingSet{
		MappingSetID: "EX:sets/1",
		CurieMap:     map[string]string{"EX": "https://example.org/"},
		Mappings: []*model.Mapping{
			{
				SubjectID:    "EX:1",
				SubjectLabel: "EX:not-a-reference",
				PredicateID:  "skos:exactMatch",
				ObjectID:     "EX:2",
				AuthorID:     []string{"orcid:0000-0001", "EX:curators/1"},
				Extensions: map[string]model.ExtensionValue{
					"https://example.org/props/origin": model.IdentifierValue("EX:curators/1"),
					"https://example.org/props/note":   model.StringValue("EX:left-alone"),
				},
			},
		},
	}

	m := NewMap()
	m.AddAll(ms.CurieMap)
	m.ExpandSet(ms)

	assert.Equal(t, "https://example.org/sets/1", ms.MappingSetID)

	mp := ms.Mappings[0]
	assert.Equal(t, "https://example.org/1", mp.SubjectID)
	assert.Equal(t, "http://www.w3.org/2004/02/skos/core#exactMatch", mp.PredicateID)
	assert.Equal(t, []string{"https://orcid.org/0000-0001", "https://example.org/curators/1"}, mp.AuthorID)

	// Labels are not entity references.
	assert.Equal(t, "EX:not-a-reference", mp.SubjectLabel)

	// Identifier-valued extensions travel with the references, plain text
	// does not.
	assert.Equal(t, "https://example.org/curators/1",
		mp.Extensions["https://example.org/props/origin"].AsString())
	assert.Equal(t, "EX:left-alone",
		mp.Extensions["https://example.org/props/note"].AsString())
}

func TestShortenSetIsInverseOfExpandSet(t *testing.T) {
	ms := &model.MappingSet{
		CurieMap: map[string]string{"EX": "https://example.org/"},
		Mappings: []*model.Mapping{
			{SubjectID: "EX:1", PredicateID: "skos:closeMatch", ObjectID: "EX:2"},
		},
	}

	m := NewMap()
	m.AddAll(ms.CurieMap)
	m.ExpandSet(ms)
	m.ShortenSet(ms)

	assert.Equal(t, "EX:1", ms.Mappings[0].SubjectID)
	assert.Equal(t, "skos:closeMatch", ms.Mappings[0].PredicateID)
	assert.Equal(t, "EX:2", ms.Mappings[0].ObjectID)
}
