package extension

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"sssom-kit/curie"
	"sssom-kit/model"
)

// The "other" slot was the original mechanism for non-standard metadata:
// a single text value holding |-joined name=value items. Extension slots
// supersede it, but not every implementation supports them, so the toolkit
// can convert in both directions.

// ToOther encodes the extension values of the set and of every mapping into
// their "other" slots. When remove is true the extension maps are cleared
// after conversion.
func ToOther(ms *model.MappingSet, remove bool) {
	r, pm := registryForSet(ms)

	if len(ms.Extensions) > 0 {
		ms.Other = encodeOther(ms.Extensions, r, pm)
		if remove {
			ms.Extensions = nil
		}
	}

	for _, m := range ms.Mappings {
		if len(m.Extensions) > 0 {
			m.Other = encodeOther(m.Extensions, r, pm)
			if remove {
				m.Extensions = nil
			}
		}
	}
}

// FromOther decodes the "other" slots of the set and of every mapping back
// into extension values, updating the set's extension definitions with
// whatever had to be synthesized. When remove is true the "other" slots are
// cleared after conversion.
func FromOther(ms *model.MappingSet, remove bool) {
	r, pm := registryForSet(ms)

	if ms.Other != "" {
		mergeDecoded(&ms.Extensions, decodeOther(ms.Other, r, pm))
		if remove {
			ms.Other = ""
		}
	}

	for _, m := range ms.Mappings {
		if m.Other != "" {
			mergeDecoded(&m.Extensions, decodeOther(m.Other, r, pm))
			if remove {
				m.Other = ""
			}
		}
	}

	if !r.IsEmpty() {
		ms.ExtensionDefinitions = r.Definitions(false, false)
	}
}

// mergeDecoded adds decoded values into an extension map, allocating it on
// first use. Existing extension values win over decoded ones.
func mergeDecoded(dst *map[string]model.ExtensionValue, decoded map[string]model.ExtensionValue) {
	if len(decoded) == 0 {
		return
	}
	if *dst == nil {
		*dst = make(map[string]model.ExtensionValue, len(decoded))
	}
	for property, v := range decoded {
		if _, ok := (*dst)[property]; !ok {
			(*dst)[property] = v
		}
	}
}

func registryForSet(ms *model.MappingSet) (*Registry, *curie.Map) {
	r := NewRegistry(PolicyUndefined)
	for _, def := range ms.ExtensionDefinitions {
		r.AddDefinition(def.SlotName, def.Property, def.TypeHint)
	}
	pm := curie.NewMap()
	pm.AddAll(ms.CurieMap)
	return r, pm
}

func encodeOther(ext map[string]model.ExtensionValue, r *Registry, pm *curie.Map) string {
	items := make([]string, 0, len(ext))
	for property, v := range ext {
		def, ok := r.DefinitionForProperty(property)
		if !ok {
			continue
		}
		str := v.String()
		if v.IsIdentifier() {
			str = pm.Shorten(v.AsString())
		}
		items = append(items, def.SlotName+"="+str)
	}
	if len(items) == 0 {
		return ""
	}
	slices.Sort(items)
	return strings.Join(items, "|")
}

func decodeOther(other string, r *Registry, pm *curie.Map) map[string]model.ExtensionValue {
	decoded := make(map[string]model.ExtensionValue)
	for _, item := range strings.Split(other, "|") {
		name, raw, found := strings.Cut(item, "=")
		if !found {
			// Ignore invalid item.
			continue
		}

		def, ok := r.DefinitionForSlot(name)
		if !ok {
			continue
		}

		v, ok := parseExtensionValue(def.EffectiveType, raw, pm)
		if ok {
			decoded[def.Property] = v
		}
	}
	return decoded
}

// parseExtensionValue parses a raw string according to the effective type of
// its definition. Unparseable values are dropped, not raised.
func parseExtensionValue(kind model.ExtensionKind, raw string, pm *curie.Map) (model.ExtensionValue, bool) {
	switch kind {
	case model.ExtBoolean:
		return model.BooleanValue(raw == "true"), true
	case model.ExtDate:
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return model.ExtensionValue{}, false
		}
		return model.DateValue(t), true
	case model.ExtDatetime:
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return model.ExtensionValue{}, false
		}
		return model.DatetimeValue(t), true
	case model.ExtDouble:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.ExtensionValue{}, false
		}
		return model.DoubleValue(f), true
	case model.ExtInteger:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return model.ExtensionValue{}, false
		}
		return model.IntegerValue(i), true
	case model.ExtIdentifier:
		return model.IdentifierValue(pm.Expand(raw)), true
	case model.ExtOther:
		return model.OtherValue(raw), true
	default:
		return model.StringValue(raw), true
	}
}
