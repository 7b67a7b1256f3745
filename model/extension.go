package model

import (
	"fmt"
	"strconv"
	"time"
)

// ExtensionKind is the value shape of a non-standard slot.
type ExtensionKind int

const (
	_ ExtensionKind = iota

	ExtString
	ExtInteger
	ExtDouble
	ExtBoolean
	ExtDate
	ExtDatetime
	ExtIdentifier
	ExtOther

	// ExtensionKindTotal is a constant that represents the total number of extension kinds defined
	ExtensionKindTotal = int(iota) - 1
)

var extensionKindNames = map[ExtensionKind]string{
	ExtString:     "xsd:string",
	ExtInteger:    "xsd:integer",
	ExtDouble:     "xsd:double",
	ExtBoolean:    "xsd:boolean",
	ExtDate:       "xsd:date",
	ExtDatetime:   "xsd:dateTime",
	ExtIdentifier: "linkml:Uriorcurie",
}

var extensionKindURIs = map[ExtensionKind]string{
	ExtString:     "http://www.w3.org/2001/XMLSchema#string",
	ExtInteger:    "http://www.w3.org/2001/XMLSchema#integer",
	ExtDouble:     "http://www.w3.org/2001/XMLSchema#double",
	ExtBoolean:    "http://www.w3.org/2001/XMLSchema#boolean",
	ExtDate:       "http://www.w3.org/2001/XMLSchema#date",
	ExtDatetime:   "http://www.w3.org/2001/XMLSchema#dateTime",
	ExtIdentifier: "https://w3id.org/linkml/Uriorcurie",
}

// String returns the compact wire form of the kind ("xsd:string", ...).
// ExtOther and the unset value render as empty strings.
func (k ExtensionKind) String() string {
	return extensionKindNames[k]
}

// TypeURI returns the full URI of the kind's value type, or an empty string
// for ExtOther and the unset value.
func (k ExtensionKind) TypeURI() string {
	return extensionKindURIs[k]
}

// ParseExtensionKind parses an extension kind from either the full type URI
// or the compact wire form. The URI table is consulted first. Unrecognized
// forms map to ExtOther rather than failing, since a type hint is advisory.
func ParseExtensionKind(s string) ExtensionKind {
	for k, uri := range extensionKindURIs {
		if s == uri {
			return k
		}
	}
	for k, name := range extensionKindNames {
		if s == name {
			return k
		}
	}
	return ExtOther
}

// ExtensionValue is the immutable, tagged value of a non-standard slot.
// The zero value is "no value"; equality is by (kind, payload).
type ExtensionValue struct {
	kind ExtensionKind
	str  string
	num  int64
	dbl  float64
	boo  bool
	tm   time.Time
}

// StringValue wraps a plain string.
func StringValue(s string) ExtensionValue { return ExtensionValue{kind: ExtString, str: s} }

// IntegerValue wraps an integer.
func IntegerValue(i int64) ExtensionValue { return ExtensionValue{kind: ExtInteger, num: i} }

// DoubleValue wraps a real number.
func DoubleValue(f float64) ExtensionValue { return ExtensionValue{kind: ExtDouble, dbl: f} }

// BooleanValue wraps a boolean.
func BooleanValue(b bool) ExtensionValue { return ExtensionValue{kind: ExtBoolean, boo: b} }

// DateValue wraps a calendar date; the time-of-day part is discarded.
func DateValue(t time.Time) ExtensionValue {
	y, m, d := t.Date()
	return ExtensionValue{kind: ExtDate, tm: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DatetimeValue wraps a point in time.
func DatetimeValue(t time.Time) ExtensionValue { return ExtensionValue{kind: ExtDatetime, tm: t} }

// IdentifierValue wraps an entity identifier, which is subject to the same
// expansion/shortening as standard entity-reference slots.
func IdentifierValue(id string) ExtensionValue { return ExtensionValue{kind: ExtIdentifier, str: id} }

// OtherValue wraps a value of unknown shape, kept as raw text.
func OtherValue(s string) ExtensionValue { return ExtensionValue{kind: ExtOther, str: s} }

// Kind returns the value's shape tag; zero for the zero value.
func (v ExtensionValue) Kind() ExtensionKind { return v.kind }

// IsZero returns true for the "no value" zero value.
func (v ExtensionValue) IsZero() bool { return v.kind == 0 }

// IsIdentifier returns true if the value is an entity identifier.
func (v ExtensionValue) IsIdentifier() bool { return v.kind == ExtIdentifier }

// AsString returns the textual payload of string-like values, and an empty
// string otherwise.
func (v ExtensionValue) AsString() string { return v.str }

// AsInteger returns the integer payload, or 0 for non-integer values.
func (v ExtensionValue) AsInteger() int64 { return v.num }

// AsDouble returns the real-number payload, or 0 for non-double values.
func (v ExtensionValue) AsDouble() float64 { return v.dbl }

// AsBoolean returns the boolean payload, or false for non-boolean values.
func (v ExtensionValue) AsBoolean() bool { return v.boo }

// AsTime returns the date or datetime payload, or the zero time otherwise.
func (v ExtensionValue) AsTime() time.Time { return v.tm }

// String renders the payload in its wire form: dates as YYYY-MM-DD,
// datetimes as RFC 3339, numbers in their shortest exact form.
func (v ExtensionValue) String() string {
	switch v.kind {
	case ExtString, ExtIdentifier, ExtOther:
		return v.str
	case ExtInteger:
		return strconv.FormatInt(v.num, 10)
	case ExtDouble:
		return strconv.FormatFloat(v.dbl, 'g', -1, 64)
	case ExtBoolean:
		return strconv.FormatBool(v.boo)
	case ExtDate:
		return v.tm.Format("2006-01-02")
	case ExtDatetime:
		return v.tm.Format(time.RFC3339)
	default:
		return ""
	}
}

// Equal reports whether two values have the same kind and payload.
func (v ExtensionValue) Equal(o ExtensionValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ExtDate, ExtDatetime:
		return v.tm.Equal(o.tm)
	default:
		return v.str == o.str && v.num == o.num && v.dbl == o.dbl && v.boo == o.boo
	}
}

// ExtensionDefinition associates the local name of a non-standard slot, as it
// appears in serialized form, with the global property it stands for and the
// shape of its values.
type ExtensionDefinition struct {
	// SlotName is the local, serialized field name.
	SlotName string
	// Property is the global property identifier the slot corresponds to.
	Property string
	// TypeHint is the declared value shape; zero when none was declared.
	TypeHint ExtensionKind
	// EffectiveType is the resolved value shape; ExtString when nothing
	// better is known.
	EffectiveType ExtensionKind
}

// NewExtensionDefinition builds a definition whose effective type falls back
// to ExtString when no hint is given.
func NewExtensionDefinition(slotName, property string, hint ExtensionKind) ExtensionDefinition {
	effective := hint
	if effective == 0 {
		effective = ExtString
	}
	return ExtensionDefinition{
		SlotName:      slotName,
		Property:      property,
		TypeHint:      hint,
		EffectiveType: effective,
	}
}

func (d ExtensionDefinition) String() string {
	return fmt.Sprintf("%s (%s)", d.SlotName, d.Property)
}
