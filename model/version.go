package model

import "fmt"

// Version identifies the revision of the SSSOM specification a slot or a set
// complies with.
type Version int

const (
	_ Version = iota

	SSSOM10
	SSSOM11
)

var versionNames = map[Version]string{
	SSSOM10: "1.0",
	SSSOM11: "1.1",
}

// String returns the wire form of the version ("1.0", "1.1"), or an empty
// string for the unset value.
func (v Version) String() string {
	return versionNames[v]
}

// ParseVersion parses a specification version from its wire form.
func ParseVersion(s string) (Version, error) {
	for v, name := range versionNames {
		if s == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: sssom version %q", ErrUnknownValue, s)
}

// IsAtLeast returns true if v is the given version or a later one. The unset
// value is treated as the earliest version.
func (v Version) IsAtLeast(other Version) bool {
	return v >= other
}
