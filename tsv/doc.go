// Package tsv reads and writes the SSSOM/TSV serialization of a mapping
// set: an embedded YAML metadata block whose lines are prefixed with '#',
// followed by a tab-separated table of mappings.
//
// # File layout
//
//	#mapping_set_id: https://example.org/sets/1
//	#license: https://creativecommons.org/licenses/by/4.0/
//	#curie_map:
//	#  FBbt: http://purl.obolibrary.org/obo/FBbt_
//	#  UBERON: http://purl.obolibrary.org/obo/UBERON_
//	subject_id	predicate_id	object_id	mapping_justification
//	FBbt:00000001	skos:exactMatch	UBERON:0000468	semapv:ManualMappingCuration
//
// # Reading
//
// The reader is tolerant: malformed or unrecognized values are dropped and
// recorded as diagnostics rather than failing the whole file. Entity
// references are expanded to full IRIs against the set's curie_map, and
// non-standard metadata fields and columns are routed through an extension
// registry according to the configured policy.
//
// # Writing
//
// The writer shortens entity references against the set's own prefix map,
// emits set metadata in catalogue order, and serializes only the columns
// that carry at least one value. Lists join with "|", dates render as
// YYYY-MM-DD, and scores keep at most three fractional digits.
package tsv
