package extension

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sssom-kit/model"
)

func testSetWithExtensions() *model.MappingSet {
	return &model.MappingSet{
		CurieMap: map[string]string{"EX": "https://example.org/"},
		ExtensionDefinitions: []model.ExtensionDefinition{
			model.NewExtensionDefinition("reviewed", "https://example.org/props/reviewed", model.ExtBoolean),
			model.NewExtensionDefinition("origin", "https://example.org/props/origin", model.ExtIdentifier),
			model.NewExtensionDefinition("note", "https://example.org/props/note", 0),
		},
		Mappings: []*model.Mapping{
			{
				SubjectID: "EX:1",
				Extensions: map[string]model.ExtensionValue{
					"https://example.org/props/reviewed": model.BooleanValue(true),
					"https://example.org/props/origin":   model.IdentifierValue("https://example.org/curators/7"),
					"https://example.org/props/note":     model.StringValue("checked twice"),
				},
			},
		},
	}
}

func TestToOtherEncodesSortedItems(t *testing.T) {
	ms := testSetWithExtensions()
	ToOther(ms, true)

	m := ms.Mappings[0]
	assert.Equal(t, "note=checked twice|origin=EX:curators/7|reviewed=true", m.Other)
	assert.Nil(t, m.Extensions)
}

func TestToOtherPreservesExtensionsWhenAsked(t *testing.T) {
	ms := testSetWithExtensions()
	ToOther(ms, false)

	assert.NotEmpty(t, ms.Mappings[0].Other)
	assert.Len(t, ms.Mappings[0].Extensions, 3)
}

func TestOtherRoundTrip(t *testing.T) {
	ms := testSetWithExtensions()
	original := ms.Mappings[0].Copy()

	ToOther(ms, true)
	FromOther(ms, true)

	m := ms.Mappings[0]
	assert.Empty(t, m.Other)
	require.Len(t, m.Extensions, 3)
	assert.True(t, original.Extensions["https://example.org/props/reviewed"].
		Equal(m.Extensions["https://example.org/props/reviewed"]))
	assert.True(t, original.Extensions["https://example.org/props/origin"].
		Equal(m.Extensions["https://example.org/props/origin"]))
	assert.True(t, original.Extensions["https://example.org/props/note"].
		Equal(m.Extensions["https://example.org/props/note"]))
}

func TestFromOtherSynthesizesDefinitions(t *testing.T) {
	ms := &model.MappingSet{
		Mappings: []*model.Mapping{
			{Other: "custom_field=hello"},
		},
	}

	FromOther(ms, true)

	m := ms.Mappings[0]
	require.Len(t, m.Extensions, 1)
	v := m.Extensions[PlaceholderNamespace+"custom_field"]
	assert.Equal(t, "hello", v.AsString())

	require.Len(t, ms.ExtensionDefinitions, 1)
	assert.Equal(t, "custom_field", ms.ExtensionDefinitions[0].SlotName)
}

func TestFromOtherDropsMalformedItems(t *testing.T) {
	ms := &model.MappingSet{
		ExtensionDefinitions: []model.ExtensionDefinition{
			model.NewExtensionDefinition("when", "https://example.org/props/when", model.ExtDate),
		},
		Mappings: []*model.Mapping{
			{Other: "no-equals-sign|when=not a date|when=2024-07-01"},
		},
	}

	FromOther(ms, true)

	m := ms.Mappings[0]
	require.Len(t, m.Extensions, 1)
	v := m.Extensions["https://example.org/props/when"]
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), v.AsTime())
}

func TestToOtherSetLevel(t *testing.T) {
	ms := &model.MappingSet{
		ExtensionDefinitions: []model.ExtensionDefinition{
			model.NewExtensionDefinition("release", "https://example.org/props/release", 0),
		},
		Extensions: map[string]model.ExtensionValue{
			"https://example.org/props/release": model.StringValue("2024a"),
		},
	}

	ToOther(ms, true)
	assert.Equal(t, "release=2024a", ms.Other)
	assert.Nil(t, ms.Extensions)
}
