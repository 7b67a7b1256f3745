package slots

import "fmt"

// Catalogue is an ordered, name-indexed collection of slot descriptors for
// one record shape. The default order is schema declaration order. A
// catalogue is immutable after construction and safe for concurrent reads.
type Catalogue[T any] struct {
	slots  []*Slot[T]
	byName map[string]*Slot[T]
}

// NewCatalogue builds a catalogue from slots in declaration order. Duplicate
// names are a programmer error and panic.
func NewCatalogue[T any](slots ...*Slot[T]) *Catalogue[T] {
	c := &Catalogue[T]{
		slots:  slots,
		byName: make(map[string]*Slot[T], len(slots)),
	}
	for _, s := range slots {
		if _, dup := c.byName[s.Name]; dup {
			panic("duplicate slot name in catalogue: " + s.Name)
		}
		c.byName[s.Name] = s
	}
	return c
}

// Slots returns the descriptors in stable catalogue order. The returned
// slice is shared; callers must not modify it.
func (c *Catalogue[T]) Slots() []*Slot[T] {
	return c.slots
}

// ByName resolves a slot by its serialized name.
func (c *Catalogue[T]) ByName(name string) (*Slot[T], error) {
	s, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlot, name)
	}
	return s, nil
}

// Has returns true if the catalogue defines a slot with the given name.
func (c *Catalogue[T]) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Subset returns a catalogue restricted to the named slots, in the order the
// caller gives them. Unknown names fail with ErrUnknownSlot.
func (c *Catalogue[T]) Subset(names ...string) (*Catalogue[T], error) {
	subset := make([]*Slot[T], 0, len(names))
	for _, name := range names {
		s, err := c.ByName(name)
		if err != nil {
			return nil, err
		}
		subset = append(subset, s)
	}
	return NewCatalogue(subset...), nil
}

// Propagatable returns the slots flagged as propagatable, in catalogue
// order.
func (c *Catalogue[T]) Propagatable() []*Slot[T] {
	var out []*Slot[T]
	for _, s := range c.slots {
		if s.Propagatable {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of slots in the catalogue.
func (c *Catalogue[T]) Len() int {
	return len(c.slots)
}
