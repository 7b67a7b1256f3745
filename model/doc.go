// Package model defines the SSSOM data model: individual mappings, the
// mapping set that contains them, the closed enumerations used by standard
// slots, and the extension mechanism for non-standard slots.
//
// Optional scalar slots use the Go zero value as "unset" (empty string, zero
// time.Time, zero enumeration value). Confidence-like scores use *float64
// because zero is a meaningful score. Multi-valued slots are nil when unset.
//
// Key types:
//   - Mapping: one subject/predicate/object correspondence with metadata
//   - MappingSet: set-level metadata plus the ordered list of mappings
//   - ExtensionValue: immutable tagged value of a non-standard slot
//   - ExtensionDefinition: name/property/type bookkeeping for an extension
package model
