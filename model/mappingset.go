package model

import "time"

// MappingSet is an ordered collection of mappings plus set-level metadata.
// The Mappings list is the container, not a metadata slot; it is never
// visited by the slot machinery.
type MappingSet struct {
	Mappings []*Mapping

	MappingSetID          string
	MappingSetVersion     string
	MappingSetSource      []string
	MappingSetTitle       string
	MappingSetDescription string

	CreatorID    []string
	CreatorLabel []string

	License string

	SubjectType          EntityType
	SubjectSource        string
	SubjectSourceVersion string
	ObjectType           EntityType
	ObjectSource         string
	ObjectSourceVersion  string

	MappingProvider    string
	MappingTool        string
	MappingToolVersion string
	MappingDate        time.Time
	PublicationDate    time.Time

	SubjectMatchField    []string
	ObjectMatchField     []string
	SubjectPreprocessing []string
	ObjectPreprocessing  []string

	SeeAlso []string
	Other   string
	Comment string

	// CurieMap maps prefix short names to URI prefixes.
	CurieMap map[string]string

	// ExtensionDefinitions declares the non-standard slots used by this
	// set or its mappings.
	ExtensionDefinitions []ExtensionDefinition

	// Extensions holds set-level non-standard slot values, keyed by
	// property.
	Extensions map[string]ExtensionValue

	SSSOMVersion Version
}

// Copy returns a deep copy of the set, including its mappings.
func (ms *MappingSet) Copy() *MappingSet {
	c := *ms
	if ms.Mappings != nil {
		c.Mappings = make([]*Mapping, len(ms.Mappings))
		for i, m := range ms.Mappings {
			c.Mappings[i] = m.Copy()
		}
	}
	c.MappingSetSource = copyList(ms.MappingSetSource)
	c.CreatorID = copyList(ms.CreatorID)
	c.CreatorLabel = copyList(ms.CreatorLabel)
	c.SubjectMatchField = copyList(ms.SubjectMatchField)
	c.ObjectMatchField = copyList(ms.ObjectMatchField)
	c.SubjectPreprocessing = copyList(ms.SubjectPreprocessing)
	c.ObjectPreprocessing = copyList(ms.ObjectPreprocessing)
	c.SeeAlso = copyList(ms.SeeAlso)
	if ms.CurieMap != nil {
		c.CurieMap = make(map[string]string, len(ms.CurieMap))
		for k, v := range ms.CurieMap {
			c.CurieMap[k] = v
		}
	}
	if ms.ExtensionDefinitions != nil {
		c.ExtensionDefinitions = make([]ExtensionDefinition, len(ms.ExtensionDefinitions))
		copy(c.ExtensionDefinitions, ms.ExtensionDefinitions)
	}
	c.Extensions = copyExtensions(ms.Extensions)
	return &c
}
