package model

import "time"

// Mapping is a single correspondence between a subject entity and an object
// entity via a predicate. Identity is structural; this layer does not enforce
// uniqueness.
type Mapping struct {
	SubjectID       string
	SubjectLabel    string
	SubjectCategory string

	PredicateID       string
	PredicateLabel    string
	PredicateModifier PredicateModifier

	ObjectID       string
	ObjectLabel    string
	ObjectCategory string

	MappingJustification string

	AuthorID      []string
	AuthorLabel   []string
	ReviewerID    []string
	ReviewerLabel []string
	CreatorID     []string
	CreatorLabel  []string

	License string

	SubjectType          EntityType
	SubjectSource        string
	SubjectSourceVersion string
	ObjectType           EntityType
	ObjectSource         string
	ObjectSourceVersion  string

	MappingProvider    string
	MappingSource      string
	MappingCardinality MappingCardinality
	CardinalityScope   []string
	MappingTool        string
	MappingToolVersion string
	MappingDate        time.Time

	Confidence *float64

	CurationRule     []string
	CurationRuleText []string

	SubjectMatchField    []string
	ObjectMatchField     []string
	MatchString          []string
	SubjectPreprocessing []string
	ObjectPreprocessing  []string

	SemanticSimilarityScore   *float64
	SemanticSimilarityMeasure string

	SeeAlso []string
	Other   string
	Comment string

	// Extensions holds non-standard slot values, keyed by property.
	Extensions map[string]ExtensionValue
}

// IsUnmapped returns true for a record that does not assert a correspondence:
// it has no predicate or no justification. Such records are excluded from
// cardinality computation.
func (m *Mapping) IsUnmapped() bool {
	return m.PredicateID == "" || m.MappingJustification == ""
}

// Copy returns a deep copy of the mapping.
func (m *Mapping) Copy() *Mapping {
	c := *m
	c.AuthorID = copyList(m.AuthorID)
	c.AuthorLabel = copyList(m.AuthorLabel)
	c.ReviewerID = copyList(m.ReviewerID)
	c.ReviewerLabel = copyList(m.ReviewerLabel)
	c.CreatorID = copyList(m.CreatorID)
	c.CreatorLabel = copyList(m.CreatorLabel)
	c.CardinalityScope = copyList(m.CardinalityScope)
	c.CurationRule = copyList(m.CurationRule)
	c.CurationRuleText = copyList(m.CurationRuleText)
	c.SubjectMatchField = copyList(m.SubjectMatchField)
	c.ObjectMatchField = copyList(m.ObjectMatchField)
	c.MatchString = copyList(m.MatchString)
	c.SubjectPreprocessing = copyList(m.SubjectPreprocessing)
	c.ObjectPreprocessing = copyList(m.ObjectPreprocessing)
	c.SeeAlso = copyList(m.SeeAlso)
	if m.Confidence != nil {
		v := *m.Confidence
		c.Confidence = &v
	}
	if m.SemanticSimilarityScore != nil {
		v := *m.SemanticSimilarityScore
		c.SemanticSimilarityScore = &v
	}
	c.Extensions = copyExtensions(m.Extensions)
	return &c
}

func copyList(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

func copyExtensions(src map[string]ExtensionValue) map[string]ExtensionValue {
	if src == nil {
		return nil
	}
	dst := make(map[string]ExtensionValue, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
