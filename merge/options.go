package merge

// Options is a bit set selecting which categories of a source set's content
// are merged into the destination.
type Options int

const (
	Records    Options = 1 << iota // append the source's mappings after the destination's
	Scalars                        // overwrite single-valued slots with the source's values, even null
	Lists                          // union multi-valued slots, destination order first
	Extensions                     // merge set-level extension values by property, source wins
	CurieMap                       // merge the prefix map by short name, source wins

	All  Options = (1 << iota) - 1 // all categories combined
	None Options = 0               // no categories selected
)

// Has returns true if every flag of o is included in opts.
func (opts Options) Has(o Options) bool {
	return opts&o == o
}
