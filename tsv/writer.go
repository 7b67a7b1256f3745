package tsv

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"sssom-kit/curie"
	"sssom-kit/extension"
	"sssom-kit/model"
	slotspkg "sssom-kit/slots"
)

// Writer emits the SSSOM/TSV serialization: the set-level metadata as a
// #-prefixed YAML block in catalogue order, then a tab-separated table with
// one column per standard slot in use plus one column per mapping-level
// extension definition, ordered by property. Entity references are
// shortened against the set's own prefix map; the input set is not
// modified.
type Writer struct {
	dst    io.Writer
	policy extension.Policy
}

// NewWriter creates a writer to dst that serializes any non-standard field
// (extension.PolicyUndefined).
func NewWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst, policy: extension.PolicyUndefined}
}

// SetPolicy changes how non-standard fields are handled.
func (w *Writer) SetPolicy(p extension.Policy) {
	w.policy = p
}

// Write serializes one complete mapping set.
func (w *Writer) Write(ms *model.MappingSet) error {
	ms = ms.Copy()

	pm := curie.NewMap()
	pm.AddAll(ms.CurieMap)
	pm.ShortenSet(ms)

	reg := extension.NewRegistry(w.policy)
	for _, def := range ms.ExtensionDefinitions {
		reg.AddDefinition(def.SlotName, def.Property, def.TypeHint)
	}
	reg.InferFromSet(ms)

	out := bufio.NewWriter(w.dst)
	if err := w.writeMetadata(out, ms, reg); err != nil {
		return err
	}
	if err := w.writeMappings(out, ms, reg); err != nil {
		return err
	}
	return out.Flush()
}

func (w *Writer) writeMetadata(out *bufio.Writer, ms *model.MappingSet, reg *extension.Registry) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	for _, slot := range slotspkg.MappingSetSlots().Slots() {
		if !slot.IsSet(ms) {
			continue
		}
		v := slot.Get(ms)
		switch slot.Kind {
		case slotspkg.KindTextList:
			appendField(doc, slot.Name, seqNode(v.List))
		case slotspkg.KindCurieMap:
			appendField(doc, slot.Name, curieMapNode(v.Map))
		case slotspkg.KindDefinitionList:
			appendField(doc, slot.Name, definitionsNode(reg.Definitions(true, false)))
		case slotspkg.KindExtensionMap:
			appendExtensions(doc, v.Ext, reg)
		default:
			appendField(doc, slot.Name, scalarNode(renderCell(slot.Kind, v)))
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("tsv: marshalling metadata: %w", err)
	}

	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if _, err := fmt.Fprintf(out, "#%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

func seqNode(items []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, item := range items {
		n.Content = append(n.Content, scalarNode(item))
	}
	return n
}

func curieMapNode(cm map[string]string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	names := make([]string, 0, len(cm))
	for name := range cm {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		n.Content = append(n.Content, scalarNode(name), scalarNode(cm[name]))
	}
	return n
}

func definitionsNode(defs []model.ExtensionDefinition) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, def := range defs {
		entry := &yaml.Node{Kind: yaml.MappingNode}
		entry.Content = append(entry.Content,
			scalarNode("slot_name"), scalarNode(def.SlotName),
			scalarNode("property"), scalarNode(def.Property))
		if def.TypeHint != 0 {
			entry.Content = append(entry.Content,
				scalarNode("type_hint"), scalarNode(def.TypeHint.String()))
		}
		n.Content = append(n.Content, entry)
	}
	return n
}

// appendExtensions emits set-level extension values as top-level metadata
// fields named by their slot name, ordered by property for determinism.
func appendExtensions(doc *yaml.Node, ext map[string]model.ExtensionValue, reg *extension.Registry) {
	for _, def := range reg.Definitions(true, false) {
		v, ok := ext[def.Property]
		if !ok {
			continue
		}
		appendField(doc, def.SlotName, scalarNode(v.String()))
	}
}

func appendField(doc *yaml.Node, name string, value *yaml.Node) {
	doc.Content = append(doc.Content, scalarNode(name), value)
}

func (w *Writer) writeMappings(out *bufio.Writer, ms *model.MappingSet, reg *extension.Registry) error {
	if len(ms.Mappings) == 0 {
		return nil
	}

	// Only columns with at least one value are emitted.
	var used []*slotspkg.Slot[model.Mapping]
	for _, slot := range slotspkg.MappingSlots().Slots() {
		if slot.Kind == slotspkg.KindExtensionMap {
			continue
		}
		for _, m := range ms.Mappings {
			if slot.IsSet(m) {
				used = append(used, slot)
				break
			}
		}
	}
	extCols := reg.Definitions(true, true)

	cw := csv.NewWriter(out)
	cw.Comma = '\t'

	header := make([]string, 0, len(used)+len(extCols))
	for _, slot := range used {
		header = append(header, slot.Name)
	}
	for _, def := range extCols {
		header = append(header, def.SlotName)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("tsv: writing header: %w", err)
	}

	row := make([]string, len(header))
	for _, m := range ms.Mappings {
		row = row[:0]
		for _, slot := range used {
			row = append(row, renderCell(slot.Kind, slot.Get(m)))
		}
		for _, def := range extCols {
			if v, ok := m.Extensions[def.Property]; ok {
				row = append(row, v.String())
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("tsv: writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
