// Package slots is the field-access layer of the toolkit: a static catalogue
// of slot descriptors for each record shape, typed get/set access, and an
// exhaustively-matched visitor dispatch over the closed set of value shapes.
//
// The catalogues are built once from static declarations (no runtime
// introspection) and shared; they are immutable and safe for concurrent
// reads. Generic algorithms (visiting, propagation, condensation, merging)
// enumerate a catalogue instead of hard-coding field lists.
//
// Key types:
//   - ValueKind: closed tag over every value shape a slot can have
//   - Value: tagged union carried between slots and algorithms
//   - Slot[T]: one field descriptor (name, URI, kind, semantic flags)
//   - Catalogue[T]: ordered, name-indexed descriptor collection
//   - Visitor[T]: one method per ValueKind, dispatched by Dispatch
package slots
