package extension

// Policy decides what happens to non-standard metadata fields encountered
// during parsing or construction.
type Policy int

const (
	// PolicyNone drops every non-standard field; the registry stays empty.
	PolicyNone Policy = iota
	// PolicyDefined accepts only fields with a prior declaration; unknown
	// fields are dropped.
	PolicyDefined
	// PolicyUndefined accepts any field, synthesizing a definition with a
	// placeholder property when none was declared.
	PolicyUndefined
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case PolicyNone:
		return "none"
	case PolicyDefined:
		return "defined"
	case PolicyUndefined:
		return "undefined"
	default:
		return "unknown"
	}
}
