package propagation

// Policy controls whether an existing value may be overwritten when values
// move between the set level and the mapping level. The zero value is
// NeverReplace, the least destructive choice.
type Policy int

const (
	// NeverReplace declines to touch a slot if any record already carries
	// a value for it (all-or-nothing per slot, not per record: partial
	// propagation would fabricate values for some records while keeping
	// others, leaving the set internally inconsistent).
	NeverReplace Policy = iota
	// ReplaceIfUnset overwrites only values that are currently unset.
	ReplaceIfUnset
	// AlwaysReplace overwrites unconditionally.
	AlwaysReplace
	// Disabled turns the engine into a no-op.
	Disabled
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case NeverReplace:
		return "never-replace"
	case ReplaceIfUnset:
		return "replace-if-unset"
	case AlwaysReplace:
		return "always-replace"
	case Disabled:
		return "disabled"
	default:
		return "unknown"
	}
}
