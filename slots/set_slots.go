package slots

import (
	"time"

	"sssom-kit/model"
)

// The mappings list itself is deliberately absent here: it is the container,
// not a metadata slot.
var setCatalogue = NewCatalogue(
	newTextSlot("mapping_set_id", sssomNS+"mapping_set_id",
		func(s *model.MappingSet) *string { return &s.MappingSetID }).asEntityReference(),
	newTextSlot("mapping_set_version", sssomNS+"mapping_set_version",
		func(s *model.MappingSet) *string { return &s.MappingSetVersion }),
	newListSlot("mapping_set_source", sssomNS+"mapping_set_source",
		func(s *model.MappingSet) *[]string { return &s.MappingSetSource }).asEntityReference(),
	newTextSlot("mapping_set_title", dctermsNS+"title",
		func(s *model.MappingSet) *string { return &s.MappingSetTitle }),
	newTextSlot("mapping_set_description", dctermsNS+"description",
		func(s *model.MappingSet) *string { return &s.MappingSetDescription }),
	newListSlot("creator_id", dctermsNS+"creator",
		func(s *model.MappingSet) *[]string { return &s.CreatorID }).asEntityReference(),
	newListSlot("creator_label", sssomNS+"creator_label",
		func(s *model.MappingSet) *[]string { return &s.CreatorLabel }),
	newTextSlot("license", dctermsNS+"license",
		func(s *model.MappingSet) *string { return &s.License }),
	newEntityTypeSlot("subject_type", sssomNS+"subject_type",
		func(s *model.MappingSet) *model.EntityType { return &s.SubjectType }).asPropagatable(),
	newTextSlot("subject_source", sssomNS+"subject_source",
		func(s *model.MappingSet) *string { return &s.SubjectSource }).asEntityReference().asPropagatable(),
	newTextSlot("subject_source_version", sssomNS+"subject_source_version",
		func(s *model.MappingSet) *string { return &s.SubjectSourceVersion }).asPropagatable(),
	newEntityTypeSlot("object_type", sssomNS+"object_type",
		func(s *model.MappingSet) *model.EntityType { return &s.ObjectType }).asPropagatable(),
	newTextSlot("object_source", sssomNS+"object_source",
		func(s *model.MappingSet) *string { return &s.ObjectSource }).asEntityReference().asPropagatable(),
	newTextSlot("object_source_version", sssomNS+"object_source_version",
		func(s *model.MappingSet) *string { return &s.ObjectSourceVersion }).asPropagatable(),
	newTextSlot("mapping_provider", sssomNS+"mapping_provider",
		func(s *model.MappingSet) *string { return &s.MappingProvider }).asPropagatable(),
	newTextSlot("mapping_tool", sssomNS+"mapping_tool",
		func(s *model.MappingSet) *string { return &s.MappingTool }).asPropagatable(),
	newTextSlot("mapping_tool_version", sssomNS+"mapping_tool_version",
		func(s *model.MappingSet) *string { return &s.MappingToolVersion }).asPropagatable(),
	newDateSlot("mapping_date", sssomNS+"mapping_date",
		func(s *model.MappingSet) *time.Time { return &s.MappingDate }).asPropagatable(),
	newDateSlot("publication_date", dctermsNS+"issued",
		func(s *model.MappingSet) *time.Time { return &s.PublicationDate }),
	newListSlot("subject_match_field", sssomNS+"subject_match_field",
		func(s *model.MappingSet) *[]string { return &s.SubjectMatchField }).asEntityReference().asPropagatable(),
	newListSlot("object_match_field", sssomNS+"object_match_field",
		func(s *model.MappingSet) *[]string { return &s.ObjectMatchField }).asEntityReference().asPropagatable(),
	newListSlot("subject_preprocessing", sssomNS+"subject_preprocessing",
		func(s *model.MappingSet) *[]string { return &s.SubjectPreprocessing }).asEntityReference().asPropagatable(),
	newListSlot("object_preprocessing", sssomNS+"object_preprocessing",
		func(s *model.MappingSet) *[]string { return &s.ObjectPreprocessing }).asEntityReference().asPropagatable(),
	newListSlot("see_also", rdfsNS+"seeAlso",
		func(s *model.MappingSet) *[]string { return &s.SeeAlso }),
	newTextSlot("other", sssomNS+"other",
		func(s *model.MappingSet) *string { return &s.Other }),
	newTextSlot("comment", sssomNS+"comment",
		func(s *model.MappingSet) *string { return &s.Comment }),
	newCurieMapSlot("curie_map", sssomNS+"curie_map",
		func(s *model.MappingSet) *map[string]string { return &s.CurieMap }),
	newDefinitionListSlot("extension_definitions", sssomNS+"extension_definitions",
		func(s *model.MappingSet) *[]model.ExtensionDefinition { return &s.ExtensionDefinitions }).since(model.SSSOM11),
	newExtensionMapSlot("extensions", sssomNS+"extensions",
		func(s *model.MappingSet) *map[string]model.ExtensionValue { return &s.Extensions }).since(model.SSSOM11),
	newVersionSlot("sssom_version", sssomNS+"sssom_version",
		func(s *model.MappingSet) *model.Version { return &s.SSSOMVersion }).since(model.SSSOM11),
)

// MappingSetSlots returns the catalogue of set-level slots, in schema
// declaration order.
func MappingSetSlots() *Catalogue[model.MappingSet] {
	return setCatalogue
}
