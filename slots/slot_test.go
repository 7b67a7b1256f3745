package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sssom-kit/model"
)

func TestCatalogueByName(t *testing.T) {
	catalogue := MappingSlots()

	s, err := catalogue.ByName("subject_id")
	require.NoError(t, err)
	assert.Equal(t, "subject_id", s.Name)
	assert.Equal(t, KindText, s.Kind)
	assert.True(t, s.EntityReference)

	_, err = catalogue.ByName("no_such_slot")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestCatalogueOrderIsSchemaOrder(t *testing.T) {
	names := make([]string, 0, MappingSlots().Len())
	for _, s := range MappingSlots().Slots() {
		names = append(names, s.Name)
	}

	require.NotEmpty(t, names)
	assert.Equal(t, "subject_id", names[0])

	// predicate_id sits between the subject and object blocks.
	assert.Less(t, indexOf(names, "subject_label"), indexOf(names, "predicate_id"))
	assert.Less(t, indexOf(names, "predicate_id"), indexOf(names, "object_id"))
	assert.Equal(t, "extensions", names[len(names)-1])
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func TestSetCatalogueHasNoMappingsSlot(t *testing.T) {
	// The mappings list is the container, not a metadata slot.
	assert.False(t, MappingSetSlots().Has("mappings"))
	assert.True(t, MappingSetSlots().Has("mapping_set_id"))
}

func TestCatalogueSubset(t *testing.T) {
	sub, err := MappingSlots().Subset("object_id", "subject_id")
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())

	// Caller order, not catalogue order.
	assert.Equal(t, "object_id", sub.Slots()[0].Name)
	assert.Equal(t, "subject_id", sub.Slots()[1].Name)

	_, err = MappingSlots().Subset("subject_id", "bogus")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestSlotGetSetRoundTrip(t *testing.T) {
	catalogue := MappingSlots()
	m := &model.Mapping{}

	subject, err := catalogue.ByName("subject_id")
	require.NoError(t, err)

	assert.False(t, subject.IsSet(m))
	require.NoError(t, subject.Set(m, TextValue("EX:1")))
	assert.True(t, subject.IsSet(m))
	assert.Equal(t, "EX:1", m.SubjectID)
	assert.Equal(t, TextValue("EX:1"), subject.Get(m))

	subject.Clear(m)
	assert.False(t, subject.IsSet(m))
	assert.Empty(t, m.SubjectID)
}

func TestSlotSetShapeMismatch(t *testing.T) {
	subject, err := MappingSlots().ByName("subject_id")
	require.NoError(t, err)

	err = subject.Set(&model.Mapping{}, ListValue([]string{"EX:1"}))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSlotAppend(t *testing.T) {
	m := &model.Mapping{}

	authors, err := MappingSlots().ByName("author_id")
	require.NoError(t, err)
	require.True(t, authors.Multivalued)

	require.NoError(t, authors.Append(m, "orcid:0000-0001"))
	require.NoError(t, authors.Append(m, "orcid:0000-0002"))
	assert.Equal(t, []string{"orcid:0000-0001", "orcid:0000-0002"}, m.AuthorID)

	subject, err := MappingSlots().ByName("subject_id")
	require.NoError(t, err)
	assert.ErrorIs(t, subject.Append(m, "EX:1"), ErrNotMultivalued)
}

func TestEnumSlots(t *testing.T) {
	m := &model.Mapping{}

	st, err := MappingSlots().ByName("subject_type")
	require.NoError(t, err)
	require.NoError(t, st.Set(m, EntityTypeValue(model.OwlClass)))
	assert.Equal(t, model.OwlClass, m.SubjectType)

	card, err := MappingSlots().ByName("mapping_cardinality")
	require.NoError(t, err)
	require.NoError(t, card.Set(m, CardinalityValue(model.OneToMany)))
	assert.Equal(t, model.OneToMany, m.MappingCardinality)
}

func TestValueIsNull(t *testing.T) {
	assert.True(t, TextValue("").IsNull())
	assert.False(t, TextValue("x").IsNull())

	assert.True(t, ListValue(nil).IsNull())
	assert.True(t, ListValue([]string{}).IsNull())
	assert.False(t, ListValue([]string{"a"}).IsNull())

	// A pointer to zero is a present value, the nil pointer is not.
	zero := 0.0
	assert.False(t, DoubleValue(&zero).IsNull())
	assert.True(t, DoubleValue(nil).IsNull())

	assert.True(t, EntityTypeValue(0).IsNull())
	assert.False(t, EntityTypeValue(model.SkosConcept).IsNull())

	for k := ValueKind(1); int(k) <= KindTotal; k++ {
		assert.True(t, Null(k).IsNull(), "null of kind %v", k)
	}
}

func TestValueEqual(t *testing.T) {
	a, b := 0.5, 0.5
	assert.True(t, DoubleValue(&a).Equal(DoubleValue(&b)))

	c := 0.7
	assert.False(t, DoubleValue(&a).Equal(DoubleValue(&c)))

	assert.True(t, ListValue([]string{"x", "y"}).Equal(ListValue([]string{"x", "y"})))
	assert.False(t, ListValue([]string{"x", "y"}).Equal(ListValue([]string{"y", "x"})))

	assert.False(t, TextValue("x").Equal(ListValue([]string{"x"})))
}

func TestPropagatableSlots(t *testing.T) {
	names := make(map[string]bool)
	for _, s := range MappingSetSlots().Propagatable() {
		names[s.Name] = true
	}

	for _, expected := range []string{
		"mapping_provider", "mapping_tool", "mapping_tool_version", "mapping_date",
		"subject_source", "subject_source_version", "subject_type",
		"object_source", "object_source_version", "object_type",
		"subject_match_field", "object_match_field",
		"subject_preprocessing", "object_preprocessing",
	} {
		assert.True(t, names[expected], "expected %s to be propagatable", expected)
	}

	assert.False(t, names["mapping_set_id"])
	assert.False(t, names["license"])
}
