package slots

import (
	"errors"
	"fmt"

	"sssom-kit/model"
)

var (
	// ErrUnknownSlot reports a name that does not resolve to any slot in a
	// catalogue. This is a caller error; validate names against Slots()
	// first when they do not come from untrusted input.
	ErrUnknownSlot = errors.New("unknown slot")

	// ErrShapeMismatch reports a value whose kind disagrees with the
	// declared kind of the slot it was offered to.
	ErrShapeMismatch = errors.New("value shape does not match slot")

	// ErrNotMultivalued reports an append on a single-valued slot.
	ErrNotMultivalued = errors.New("slot is not multivalued")
)

// Slot describes one metadata field of a record of type T: its name, its
// canonical wire URI, its value shape, and its semantic flags. Slots are
// schema metadata, built once and shared; they hold no per-record state and
// are safe for concurrent reads.
type Slot[T any] struct {
	// Name is the serialized field name, e.g. "subject_id".
	Name string
	// URI is the canonical property URI of the slot.
	URI string
	// Kind is the slot's value shape.
	Kind ValueKind
	// EntityReference marks text slots whose values are identifiers that
	// must be expanded and shortened against the prefix map.
	EntityReference bool
	// Multivalued marks list-shaped slots.
	Multivalued bool
	// Propagatable marks slots whose set-level value can be pushed down to
	// every mapping, and back.
	Propagatable bool
	// Introduced is the SSSOM standard version that introduced the slot.
	Introduced model.Version

	get    func(*T) Value
	set    func(*T, Value)
	append func(*T, string)
}

// Get reads the slot's current value; the returned Value always carries the
// slot's declared kind, never a partially initialized payload.
func (s *Slot[T]) Get(rec *T) Value {
	return s.get(rec)
}

// Set replaces the slot's value. The value's kind must match the slot's
// declared kind; for multivalued slots this replaces the whole list (use
// Append for incremental construction).
func (s *Slot[T]) Set(rec *T, v Value) error {
	if v.Kind != s.Kind {
		return fmt.Errorf("%w: %s wants %v, got %v", ErrShapeMismatch, s.Name, s.Kind, v.Kind)
	}
	s.set(rec, v)
	return nil
}

// Append adds one element to a multivalued text slot, used for incremental
// parsing.
func (s *Slot[T]) Append(rec *T, item string) error {
	if s.append == nil {
		return fmt.Errorf("%w: %s", ErrNotMultivalued, s.Name)
	}
	s.append(rec, item)
	return nil
}

// Clear resets the slot to its unset value.
func (s *Slot[T]) Clear(rec *T) {
	s.set(rec, Null(s.Kind))
}

// IsSet returns true when the slot currently holds a non-null value.
func (s *Slot[T]) IsSet(rec *T) bool {
	return !s.get(rec).IsNull()
}

func (s *Slot[T]) String() string {
	return s.Name
}
