package tsv

import (
	"math"
	"strconv"
	"strings"
	"time"

	"sssom-kit/model"
	slotspkg "sssom-kit/slots"
)

// listSeparator joins the items of a multi-valued cell. The corresponding
// split is the parsing inverse.
const listSeparator = "|"

// dateLayout is the wire form of calendar dates.
const dateLayout = "2006-01-02"

// formatDouble renders a real number with up to three fractional digits,
// rounded half-up, trailing zeros trimmed.
func formatDouble(f float64) string {
	rounded := math.Floor(f*1000+0.5) / 1000
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// renderCell renders one slot value as a single TSV cell.
func renderCell(kind slotspkg.ValueKind, v slotspkg.Value) string {
	switch kind {
	case slotspkg.KindText:
		return v.Text
	case slotspkg.KindTextList:
		return strings.Join(v.List, listSeparator)
	case slotspkg.KindDouble:
		if v.Num == nil {
			return ""
		}
		return formatDouble(*v.Num)
	case slotspkg.KindDate:
		if v.Time.IsZero() {
			return ""
		}
		return v.Time.Format(dateLayout)
	case slotspkg.KindEntityType:
		return v.Entity.String()
	case slotspkg.KindCardinality:
		return v.Cardinality.String()
	case slotspkg.KindModifier:
		return v.Modifier.String()
	case slotspkg.KindVersion:
		return v.Version.String()
	default:
		// Map-shaped slots never serialize as cells.
		return ""
	}
}

// parseCell parses one TSV cell into a value of the slot's kind. A false
// result means the cell was tolerated but dropped (unknown enumeration
// value, malformed number or date); the caller records a diagnostic.
func parseCell(kind slotspkg.ValueKind, raw string) (slotspkg.Value, bool) {
	switch kind {
	case slotspkg.KindText:
		return slotspkg.TextValue(raw), true
	case slotspkg.KindTextList:
		return slotspkg.ListValue(strings.Split(raw, listSeparator)), true
	case slotspkg.KindDouble:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return slotspkg.Value{}, false
		}
		return slotspkg.DoubleValue(&f), true
	case slotspkg.KindDate:
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return slotspkg.Value{}, false
		}
		return slotspkg.DateValue(t), true
	case slotspkg.KindEntityType:
		t, err := model.ParseEntityType(raw)
		if err != nil {
			return slotspkg.Value{}, false
		}
		return slotspkg.EntityTypeValue(t), true
	case slotspkg.KindCardinality:
		c, err := model.ParseMappingCardinality(raw)
		if err != nil {
			return slotspkg.Value{}, false
		}
		return slotspkg.CardinalityValue(c), true
	case slotspkg.KindModifier:
		m, err := model.ParsePredicateModifier(raw)
		if err != nil {
			return slotspkg.Value{}, false
		}
		return slotspkg.ModifierValue(m), true
	case slotspkg.KindVersion:
		v, err := model.ParseVersion(raw)
		if err != nil {
			return slotspkg.Value{}, false
		}
		return slotspkg.VersionValue(v), true
	default:
		return slotspkg.Value{}, false
	}
}
