package slots

import (
	"time"

	"sssom-kit/model"
)

// Canonical namespaces for slot URIs.
const (
	sssomNS   = "https://w3id.org/sssom/"
	dctermsNS = "http://purl.org/dc/terms/"
	rdfsNS    = "http://www.w3.org/2000/01/rdf-schema#"
)

var mappingCatalogue = NewCatalogue(
	newTextSlot("subject_id", sssomNS+"subject_id",
		func(m *model.Mapping) *string { return &m.SubjectID }).asEntityReference(),
	newTextSlot("subject_label", sssomNS+"subject_label",
		func(m *model.Mapping) *string { return &m.SubjectLabel }),
	newTextSlot("subject_category", sssomNS+"subject_category",
		func(m *model.Mapping) *string { return &m.SubjectCategory }),
	newTextSlot("predicate_id", sssomNS+"predicate_id",
		func(m *model.Mapping) *string { return &m.PredicateID }).asEntityReference(),
	newTextSlot("predicate_label", sssomNS+"predicate_label",
		func(m *model.Mapping) *string { return &m.PredicateLabel }),
	newModifierSlot("predicate_modifier", sssomNS+"predicate_modifier",
		func(m *model.Mapping) *model.PredicateModifier { return &m.PredicateModifier }),
	newTextSlot("object_id", sssomNS+"object_id",
		func(m *model.Mapping) *string { return &m.ObjectID }).asEntityReference(),
	newTextSlot("object_label", sssomNS+"object_label",
		func(m *model.Mapping) *string { return &m.ObjectLabel }),
	newTextSlot("object_category", sssomNS+"object_category",
		func(m *model.Mapping) *string { return &m.ObjectCategory }),
	newTextSlot("mapping_justification", sssomNS+"mapping_justification",
		func(m *model.Mapping) *string { return &m.MappingJustification }).asEntityReference(),
	newListSlot("author_id", sssomNS+"author_id",
		func(m *model.Mapping) *[]string { return &m.AuthorID }).asEntityReference(),
	newListSlot("author_label", sssomNS+"author_label",
		func(m *model.Mapping) *[]string { return &m.AuthorLabel }),
	newListSlot("reviewer_id", sssomNS+"reviewer_id",
		func(m *model.Mapping) *[]string { return &m.ReviewerID }).asEntityReference(),
	newListSlot("reviewer_label", sssomNS+"reviewer_label",
		func(m *model.Mapping) *[]string { return &m.ReviewerLabel }),
	newListSlot("creator_id", dctermsNS+"creator",
		func(m *model.Mapping) *[]string { return &m.CreatorID }).asEntityReference(),
	newListSlot("creator_label", sssomNS+"creator_label",
		func(m *model.Mapping) *[]string { return &m.CreatorLabel }),
	newTextSlot("license", dctermsNS+"license",
		func(m *model.Mapping) *string { return &m.License }),
	newEntityTypeSlot("subject_type", sssomNS+"subject_type",
		func(m *model.Mapping) *model.EntityType { return &m.SubjectType }).asPropagatable(),
	newTextSlot("subject_source", sssomNS+"subject_source",
		func(m *model.Mapping) *string { return &m.SubjectSource }).asEntityReference().asPropagatable(),
	newTextSlot("subject_source_version", sssomNS+"subject_source_version",
		func(m *model.Mapping) *string { return &m.SubjectSourceVersion }).asPropagatable(),
	newEntityTypeSlot("object_type", sssomNS+"object_type",
		func(m *model.Mapping) *model.EntityType { return &m.ObjectType }).asPropagatable(),
	newTextSlot("object_source", sssomNS+"object_source",
		func(m *model.Mapping) *string { return &m.ObjectSource }).asEntityReference().asPropagatable(),
	newTextSlot("object_source_version", sssomNS+"object_source_version",
		func(m *model.Mapping) *string { return &m.ObjectSourceVersion }).asPropagatable(),
	newTextSlot("mapping_provider", sssomNS+"mapping_provider",
		func(m *model.Mapping) *string { return &m.MappingProvider }).asPropagatable(),
	newTextSlot("mapping_source", sssomNS+"mapping_source",
		func(m *model.Mapping) *string { return &m.MappingSource }).asEntityReference(),
	newCardinalitySlot("mapping_cardinality", sssomNS+"mapping_cardinality",
		func(m *model.Mapping) *model.MappingCardinality { return &m.MappingCardinality }),
	newListSlot("cardinality_scope", sssomNS+"cardinality_scope",
		func(m *model.Mapping) *[]string { return &m.CardinalityScope }).since(model.SSSOM11),
	newTextSlot("mapping_tool", sssomNS+"mapping_tool",
		func(m *model.Mapping) *string { return &m.MappingTool }).asPropagatable(),
	newTextSlot("mapping_tool_version", sssomNS+"mapping_tool_version",
		func(m *model.Mapping) *string { return &m.MappingToolVersion }).asPropagatable(),
	newDateSlot("mapping_date", sssomNS+"mapping_date",
		func(m *model.Mapping) *time.Time { return &m.MappingDate }).asPropagatable(),
	newDoubleSlot("confidence", sssomNS+"confidence",
		func(m *model.Mapping) **float64 { return &m.Confidence }),
	newListSlot("curation_rule", sssomNS+"curation_rule",
		func(m *model.Mapping) *[]string { return &m.CurationRule }).asEntityReference(),
	newListSlot("curation_rule_text", sssomNS+"curation_rule_text",
		func(m *model.Mapping) *[]string { return &m.CurationRuleText }),
	newListSlot("subject_match_field", sssomNS+"subject_match_field",
		func(m *model.Mapping) *[]string { return &m.SubjectMatchField }).asEntityReference().asPropagatable(),
	newListSlot("object_match_field", sssomNS+"object_match_field",
		func(m *model.Mapping) *[]string { return &m.ObjectMatchField }).asEntityReference().asPropagatable(),
	newListSlot("match_string", sssomNS+"match_string",
		func(m *model.Mapping) *[]string { return &m.MatchString }),
	newListSlot("subject_preprocessing", sssomNS+"subject_preprocessing",
		func(m *model.Mapping) *[]string { return &m.SubjectPreprocessing }).asEntityReference().asPropagatable(),
	newListSlot("object_preprocessing", sssomNS+"object_preprocessing",
		func(m *model.Mapping) *[]string { return &m.ObjectPreprocessing }).asEntityReference().asPropagatable(),
	newDoubleSlot("semantic_similarity_score", sssomNS+"semantic_similarity_score",
		func(m *model.Mapping) **float64 { return &m.SemanticSimilarityScore }),
	newTextSlot("semantic_similarity_measure", sssomNS+"semantic_similarity_measure",
		func(m *model.Mapping) *string { return &m.SemanticSimilarityMeasure }),
	newListSlot("see_also", rdfsNS+"seeAlso",
		func(m *model.Mapping) *[]string { return &m.SeeAlso }),
	newTextSlot("other", sssomNS+"other",
		func(m *model.Mapping) *string { return &m.Other }),
	newTextSlot("comment", sssomNS+"comment",
		func(m *model.Mapping) *string { return &m.Comment }),
	newExtensionMapSlot("extensions", sssomNS+"extensions",
		func(m *model.Mapping) *map[string]model.ExtensionValue { return &m.Extensions }).since(model.SSSOM11),
)

// MappingSlots returns the catalogue of mapping-level slots, in schema
// declaration order.
func MappingSlots() *Catalogue[model.Mapping] {
	return mappingCatalogue
}
