package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"sssom-kit/curie"
	"sssom-kit/extension"
	"sssom-kit/internal/diagnostic"
	"sssom-kit/model"
	slotspkg "sssom-kit/slots"
	"sssom-kit/utils"
)

// ErrNoMetadata reports input with no embedded metadata block; a mapping
// set cannot be reconstructed without one.
var ErrNoMetadata = errors.New("no embedded metadata block")

// Reader parses the SSSOM/TSV serialization: a #-prefixed YAML metadata
// block followed by a tab-separated table with a header row. Messy input is
// tolerated wherever the format allows: unknown columns become extension
// slots (or are dropped, per policy), unknown enumeration values and
// malformed cells are dropped with a diagnostic, and a multi-valued slot may
// be read back from a single scalar cell.
type Reader struct {
	src    io.Reader
	policy extension.Policy
	diags  diagnostic.Diagnostics
}

// NewReader creates a reader over src that accepts any non-standard field
// (extension.PolicyUndefined).
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, policy: extension.PolicyUndefined}
}

// SetPolicy changes how non-standard fields are handled.
func (r *Reader) SetPolicy(p extension.Policy) {
	r.policy = p
}

// Diagnostics returns the non-fatal findings of the last Read.
func (r *Reader) Diagnostics() *diagnostic.Diagnostics {
	return &r.diags
}

// Read parses one complete mapping set. Entity references are expanded to
// their long form using the set's own prefix map before the set is
// returned.
func (r *Reader) Read() (*model.MappingSet, error) {
	r.diags = diagnostic.Diagnostics{}

	raw, err := io.ReadAll(r.src)
	if err != nil {
		return nil, fmt.Errorf("tsv: reading input: %w", err)
	}

	metaLines, tsvBody, err := splitMetadata(string(raw))
	if err != nil {
		return nil, err
	}

	ms := &model.MappingSet{}
	reg := extension.NewRegistry(r.policy)
	if err := r.readMetadata(ms, reg, metaLines); err != nil {
		return nil, err
	}

	if err := r.readMappings(ms, reg, tsvBody); err != nil {
		return nil, err
	}

	reg.InferFromSet(ms)
	if !reg.IsEmpty() {
		ms.ExtensionDefinitions = reg.Definitions(false, false)
	}

	pm := curie.NewMap()
	pm.AddAll(ms.CurieMap)
	pm.ExpandSet(ms)
	for _, name := range pm.Unresolved() {
		r.diags.AddWarning("unresolved_prefix",
			fmt.Sprintf("prefix %q is not in the curie map", name), name, 0)
	}

	return ms, nil
}

// splitMetadata separates the leading #-prefixed YAML block from the TSV
// body.
func splitMetadata(input string) (meta, body string, err error) {
	var metaLines, bodyLines []string
	inBody := false
	for _, line := range strings.Split(input, "\n") {
		if !inBody && strings.HasPrefix(line, "#") {
			metaLines = append(metaLines, strings.TrimPrefix(line, "#"))
			continue
		}
		inBody = true
		bodyLines = append(bodyLines, line)
	}
	if len(metaLines) == 0 {
		return "", "", ErrNoMetadata
	}
	return strings.Join(metaLines, "\n"), strings.Join(bodyLines, "\n"), nil
}

func (r *Reader) readMetadata(ms *model.MappingSet, reg *extension.Registry, meta string) error {
	var fields map[string]any
	if err := yaml.Unmarshal([]byte(meta), &fields); err != nil {
		return fmt.Errorf("tsv: invalid metadata block: %w", err)
	}

	// Definitions must be known before any other field is routed to the
	// registry.
	if raw, ok := fields["extension_definitions"]; ok {
		r.readDefinitions(reg, raw)
		delete(fields, "extension_definitions")
	}

	catalogue := slotspkg.MappingSetSlots()
	for name, raw := range fields {
		slot, err := catalogue.ByName(name)
		if err != nil {
			r.readSetExtension(ms, reg, name, raw)
			continue
		}
		r.assignMetadataField(ms, slot, raw)
	}
	return nil
}

func (r *Reader) readDefinitions(reg *extension.Registry, raw any) {
	list, ok := raw.([]any)
	if !ok {
		r.diags.AddWarning("invalid_extension_definitions",
			"extension_definitions is not a sequence", "extension_definitions", 0)
		return
	}
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		slotName, _ := entry["slot_name"].(string)
		property, _ := entry["property"].(string)
		hint := model.ExtensionKind(0)
		if h, ok := entry["type_hint"].(string); ok {
			hint = model.ParseExtensionKind(h)
		}
		if !reg.AddDefinition(slotName, property, hint) {
			r.diags.AddWarning("dropped_extension_definition",
				fmt.Sprintf("invalid extension definition for %q", slotName), slotName, 0)
		}
	}
}

// readSetExtension routes an unknown metadata field to the registry.
func (r *Reader) readSetExtension(ms *model.MappingSet, reg *extension.Registry, name string, raw any) {
	def, ok := reg.DefinitionForSlot(name)
	if !ok {
		r.diags.AddWarning("dropped_field",
			fmt.Sprintf("non-standard field %q dropped by policy", name), name, 0)
		return
	}
	if ms.Extensions == nil {
		ms.Extensions = make(map[string]model.ExtensionValue)
	}
	ms.Extensions[def.Property] = model.StringValue(fmt.Sprintf("%v", raw))
}

func (r *Reader) assignMetadataField(ms *model.MappingSet, slot *slotspkg.Slot[model.MappingSet], raw any) {
	switch slot.Kind {
	case slotspkg.KindCurieMap:
		entries, ok := raw.(map[string]any)
		if !ok {
			r.diags.AddWarning("invalid_curie_map", "curie_map is not a mapping", slot.Name, 0)
			return
		}
		cm := make(map[string]string, len(entries))
		for k, v := range entries {
			if s, ok := v.(string); ok {
				cm[k] = s
			}
		}
		_ = slot.Set(ms, slotspkg.CurieMapValue(cm))

	case slotspkg.KindTextList:
		for _, item := range yamlList(raw) {
			_ = slot.Append(ms, item)
		}

	case slotspkg.KindDate:
		// yaml.v3 resolves ISO dates to time.Time on its own; strings
		// are parsed here.
		if t, ok := raw.(time.Time); ok {
			_ = slot.Set(ms, slotspkg.DateValue(t))
			return
		}
		r.assignScalar(ms, slot, raw)

	default:
		r.assignScalar(ms, slot, raw)
	}
}

func (r *Reader) assignScalar(ms *model.MappingSet, slot *slotspkg.Slot[model.MappingSet], raw any) {
	text := fmt.Sprintf("%v", raw)
	v, ok := parseCell(slot.Kind, text)
	if !ok {
		r.diags.AddWarning("invalid_value",
			fmt.Sprintf("cannot parse %q as %v", text, slot.Kind), slot.Name, 0)
		return
	}
	_ = slot.Set(ms, v)
}

// yamlList accepts either a YAML sequence or a single scalar, the scalar
// tolerance the format mandates for multi-valued fields.
func yamlList(raw any) []string {
	switch v := raw.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case nil:
		return nil
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}

// column binds one TSV column to either a standard slot or an extension
// definition.
type column struct {
	slot *slotspkg.Slot[model.Mapping]
	def  model.ExtensionDefinition
	skip bool
}

func (r *Reader) readMappings(ms *model.MappingSet, reg *extension.Registry, body string) error {
	body = strings.TrimLeft(body, "\n")
	if strings.TrimSpace(body) == "" {
		return nil
	}

	cr := csv.NewReader(strings.NewReader(body))
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("tsv: reading header: %w", err)
	}

	catalogue := slotspkg.MappingSlots()
	columns := make([]column, len(header))
	for i, name := range header {
		if slot, err := catalogue.ByName(name); err == nil {
			columns[i] = column{slot: slot}
			continue
		}
		if def, ok := reg.DefinitionForSlot(name); ok {
			columns[i] = column{def: def}
			continue
		}
		r.diags.AddWarning("unknown_column",
			fmt.Sprintf("column %q matches no slot and was dropped", name), name, 1)
		columns[i] = column{skip: true}
	}

	line := 1
	for {
		record, err := cr.Read()
		line++
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("tsv: reading row: %w", err)
		}

		m := &model.Mapping{}
		for i, cell := range record {
			if i >= len(columns) || cell == "" || columns[i].skip {
				continue
			}
			if columns[i].slot != nil {
				r.assignCell(m, columns[i].slot, cell, line)
				continue
			}
			v, ok := parseExtensionCell(columns[i].def.EffectiveType, cell)
			if !ok {
				r.diags.AddWarning("invalid_extension_value",
					fmt.Sprintf("cannot parse %q", cell), columns[i].def.SlotName, line)
				continue
			}
			if m.Extensions == nil {
				m.Extensions = make(map[string]model.ExtensionValue)
			}
			m.Extensions[columns[i].def.Property] = v
		}
		ms.Mappings = append(ms.Mappings, m)
	}
	return nil
}

func (r *Reader) assignCell(m *model.Mapping, slot *slotspkg.Slot[model.Mapping], cell string, line int) {
	v, ok := parseCell(slot.Kind, cell)
	if !ok {
		r.diags.AddWarning("invalid_value",
			fmt.Sprintf("cannot parse %q as %v", cell, slot.Kind), slot.Name, line)
		return
	}
	if slot.Kind == slotspkg.KindDouble && !utils.IsUnitInterval(*v.Num) {
		r.diags.AddWarning("score_out_of_range",
			fmt.Sprintf("%s %q is outside [0, 1]", slot.Name, cell), slot.Name, line)
	}
	_ = slot.Set(m, v)
}

// parseExtensionCell parses an extension cell by its effective type,
// falling back to raw text for unparseable content only where the type is
// text-like.
func parseExtensionCell(kind model.ExtensionKind, cell string) (model.ExtensionValue, bool) {
	switch kind {
	case model.ExtBoolean:
		return model.BooleanValue(cell == "true"), true
	case model.ExtDate:
		t, err := time.Parse(dateLayout, cell)
		if err != nil {
			return model.ExtensionValue{}, false
		}
		return model.DateValue(t), true
	case model.ExtDatetime:
		t, err := time.Parse(time.RFC3339, cell)
		if err != nil {
			return model.ExtensionValue{}, false
		}
		return model.DatetimeValue(t), true
	case model.ExtDouble:
		v, ok := parseCell(slotspkg.KindDouble, cell)
		if !ok {
			return model.ExtensionValue{}, false
		}
		return model.DoubleValue(*v.Num), true
	case model.ExtInteger:
		var i int64
		if _, err := fmt.Sscanf(cell, "%d", &i); err != nil {
			return model.ExtensionValue{}, false
		}
		return model.IntegerValue(i), true
	case model.ExtIdentifier:
		return model.IdentifierValue(cell), true
	case model.ExtOther:
		return model.OtherValue(cell), true
	default:
		return model.StringValue(cell), true
	}
}
