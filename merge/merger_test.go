package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sssom-kit/model"
)

func TestOptions(t *testing.T) {
	assert.True(t, All.Has(Records))
	assert.True(t, All.Has(CurieMap))
	assert.False(t, None.Has(Records))

	opts := Records | Lists
	assert.True(t, opts.Has(Records))
	assert.True(t, opts.Has(Lists))
	assert.False(t, opts.Has(Scalars))
}

func TestMergeRecords(t *testing.T) {
	dst := &model.MappingSet{
		Mappings: []*model.Mapping{{SubjectID: "EX:1"}},
	}
	src := &model.MappingSet{
		Mappings: []*model.Mapping{{SubjectID: "EX:2"}, {SubjectID: "EX:3"}},
	}

	NewMerger().Merge(dst, src, Records)

	require.Len(t, dst.Mappings, 3)
	assert.Equal(t, "EX:2", dst.Mappings[1].SubjectID)

	// Appended records are copies, not aliases.
	dst.Mappings[1].SubjectID = "EX:changed"
	assert.Equal(t, "EX:2", src.Mappings[0].SubjectID)
}

func TestMergeScalarsSourceWins(t *testing.T) {
	dst := &model.MappingSet{
		MappingSetID: "https://example.org/sets/dst",
		MappingTool:  "dst-tool",
		Comment:      "kept only in dst",
	}
	src := &model.MappingSet{
		MappingSetID: "https://example.org/sets/src",
		MappingTool:  "src-tool",
	}

	NewMerger().Merge(dst, src, Scalars)

	assert.Equal(t, "https://example.org/sets/src", dst.MappingSetID)
	assert.Equal(t, "src-tool", dst.MappingTool)
	// The source's null overwrites too.
	assert.Empty(t, dst.Comment)
}

func TestMergeListsUnion(t *testing.T) {
	dst := &model.MappingSet{CreatorID: []string{"orcid:a", "orcid:b"}}
	src := &model.MappingSet{CreatorID: []string{"orcid:b", "orcid:c"}}

	NewMerger().Merge(dst, src, Lists)

	assert.Equal(t, []string{"orcid:a", "orcid:b", "orcid:c"}, dst.CreatorID)
}

func TestMergeCurieMapSourceWinsPerKey(t *testing.T) {
	dst := &model.MappingSet{CurieMap: map[string]string{
		"EX": "https://example.org/",
		"A":  "https://a.org/",
	}}
	src := &model.MappingSet{CurieMap: map[string]string{
		"EX": "https://example.net/",
		"B":  "https://b.org/",
	}}

	NewMerger().Merge(dst, src, CurieMap)

	assert.Equal(t, map[string]string{
		"EX": "https://example.net/",
		"A":  "https://a.org/",
		"B":  "https://b.org/",
	}, dst.CurieMap)
}

func TestMergeExtensions(t *testing.T) {
	dst := &model.MappingSet{Extensions: map[string]model.ExtensionValue{
		"https://example.org/props/a": model.StringValue("dst"),
	}}
	src := &model.MappingSet{Extensions: map[string]model.ExtensionValue{
		"https://example.org/props/a": model.StringValue("src"),
		"https://example.org/props/b": model.StringValue("new"),
	}}

	NewMerger().Merge(dst, src, Extensions)

	assert.Equal(t, "src", dst.Extensions["https://example.org/props/a"].AsString())
	assert.Equal(t, "new", dst.Extensions["https://example.org/props/b"].AsString())
}

func TestMergeDefinitionsSamePropertySourceNameWins(t *testing.T) {
	dst := &model.MappingSet{ExtensionDefinitions: []model.ExtensionDefinition{
		model.NewExtensionDefinition("note", "https://example.org/props/note", 0),
	}}
	src := &model.MappingSet{ExtensionDefinitions: []model.ExtensionDefinition{
		model.NewExtensionDefinition("remark", "https://example.org/props/note", 0),
	}}

	NewMerger().Merge(dst, src, Records)

	require.Len(t, dst.ExtensionDefinitions, 1)
	assert.Equal(t, "remark", dst.ExtensionDefinitions[0].SlotName)
}

func TestMergeDefinitionsHintConflictDegradesToText(t *testing.T) {
	dst := &model.MappingSet{ExtensionDefinitions: []model.ExtensionDefinition{
		model.NewExtensionDefinition("count", "https://example.org/props/count", model.ExtInteger),
	}}
	src := &model.MappingSet{ExtensionDefinitions: []model.ExtensionDefinition{
		model.NewExtensionDefinition("count", "https://example.org/props/count", model.ExtDouble),
	}}

	NewMerger().Merge(dst, src, Records)

	require.Len(t, dst.ExtensionDefinitions, 1)
	assert.Equal(t, model.ExtString, dst.ExtensionDefinitions[0].EffectiveType)
}

func TestMergeDefinitionsNameCollisionRenamesIncoming(t *testing.T) {
	dst := &model.MappingSet{ExtensionDefinitions: []model.ExtensionDefinition{
		model.NewExtensionDefinition("note", "https://example.org/props/note", 0),
		model.NewExtensionDefinition("note_2", "https://example.org/props/more", 0),
	}}
	src := &model.MappingSet{ExtensionDefinitions: []model.ExtensionDefinition{
		model.NewExtensionDefinition("note", "https://other.org/props/note", 0),
	}}

	NewMerger().Merge(dst, src, Records)

	require.Len(t, dst.ExtensionDefinitions, 3)
	incoming := dst.ExtensionDefinitions[2]
	assert.Equal(t, "note_3", incoming.SlotName)
	assert.Equal(t, "https://other.org/props/note", incoming.Property)
}

func TestMergeIdempotentOnIdenticalSets(t *testing.T) {
	base := &model.MappingSet{
		MappingSetID: "https://example.org/sets/1",
		CreatorID:    []string{"orcid:a"},
		CurieMap:     map[string]string{"EX": "https://example.org/"},
		ExtensionDefinitions: []model.ExtensionDefinition{
			model.NewExtensionDefinition("note", "https://example.org/props/note", 0),
		},
	}

	dst := base.Copy()
	NewMerger().Merge(dst, base.Copy(), All^Records)

	assert.Equal(t, base, dst)
}

func TestMergeNoneIsANoOp(t *testing.T) {
	dst := &model.MappingSet{MappingSetID: "https://example.org/sets/dst"}
	src := &model.MappingSet{
		MappingSetID: "https://example.org/sets/src",
		Mappings:     []*model.Mapping{{SubjectID: "EX:1"}},
	}

	NewMerger().Merge(dst, src, None)

	assert.Equal(t, "https://example.org/sets/dst", dst.MappingSetID)
	assert.Empty(t, dst.Mappings)
}
