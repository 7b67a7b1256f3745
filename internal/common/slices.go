package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value
// and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Distinct accumulates values while deduplicating them with a caller-chosen
// equality, preserving first-seen order. It is used where an algorithm must
// know whether all observed values agree (condensation, type inference).
type Distinct[E any] struct {
	eq    func(a, b E) bool
	items []E
}

// NewDistinct builds an accumulator around the given equality.
func NewDistinct[E any](eq func(a, b E) bool) *Distinct[E] {
	return &Distinct[E]{eq: eq}
}

// Add records a value unless an equal one was already seen.
func (d *Distinct[E]) Add(v E) {
	for _, seen := range d.items {
		if d.eq(seen, v) {
			return
		}
	}

	d.items = append(d.items, v)
}

// Items returns the distinct values in first-seen order.
func (d *Distinct[E]) Items() []E {
	return d.items
}

// Len returns the number of distinct values seen.
func (d *Distinct[E]) Len() int {
	return len(d.items)
}

// Single returns the one distinct value and true if exactly one value was
// seen, or the zero value and false otherwise.
func (d *Distinct[E]) Single() (E, bool) {
	if len(d.items) == 1 {
		return d.items[0], true
	}

	var zero E
	return zero, false
}
