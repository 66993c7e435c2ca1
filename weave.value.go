package weave

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindSequence
	KindUnsupported
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindText:
		return KindNameText
	case KindNumber:
		return KindNameNumber
	case KindSequence:
		return KindNameSequence
	default:
		return KindNameUnsupported
	}
}

// Value is a closed union over text, numbers, nested sequences and
// unsupported payloads. The zero Value is the empty text.
type Value struct {
	kind Kind
	text string
	num  float64
	seq  Sequence
	raw  any
}

// Sequence is an ordered list of values as produced by Interleave.
type Sequence []Value

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Seq returns a nested sequence value.
func Seq(items ...Value) Value {
	return Value{kind: KindSequence, seq: Sequence(items)}
}

// Unsupported wraps a payload the renderer does not know how to stringify.
func Unsupported(raw any) Value {
	return Value{kind: KindUnsupported, raw: raw}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// AsText returns the text and whether v is a text value.
func (v Value) AsText() (string, bool) {
	return v.text, v.kind == KindText
}

// AsNumber returns the number and whether v is a numeric value.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsSequence returns the nested items and whether v is a sequence.
func (v Value) AsSequence() (Sequence, bool) {
	return v.seq, v.kind == KindSequence
}

// Raw returns the wrapped payload of an unsupported value.
func (v Value) Raw() any { return v.raw }

// TypeName describes the payload, using the Go type for unsupported values.
func (v Value) TypeName() string {
	if v.kind != KindUnsupported {
		return v.kind.String()
	}
	if v.raw == nil {
		return "nil"
	}
	return reflect.TypeOf(v.raw).String()
}

// GoString renders v for debugging and test failure output.
func (v Value) GoString() string {
	switch v.kind {
	case KindText:
		return strconv.Quote(v.text)
	case KindNumber:
		return FormatNumber(v.num)
	case KindSequence:
		return fmt.Sprintf("%#v", []Value(v.seq))
	default:
		return fmt.Sprintf("<%s>", v.TypeName())
	}
}

// Substitution is an optional value in one template slot. The zero
// Substitution is absent.
type Substitution struct {
	value   Value
	present bool
}

// Present returns a substitution carrying v.
func Present(v Value) Substitution {
	return Substitution{value: v, present: true}
}

// Absent returns the substitution that omits its slot.
func Absent() Substitution {
	return Substitution{}
}

// IsAbsent reports whether the slot should be omitted.
func (s Substitution) IsAbsent() bool { return !s.present }

// Value returns the carried value and whether one is present.
func (s Substitution) Value() (Value, bool) {
	return s.value, s.present
}

// KindName returns the carried kind name or "absent".
func (s Substitution) KindName() string {
	if !s.present {
		return KindNameAbsent
	}
	return s.value.kind.String()
}

// Substitutions converts Go values into substitutions; nil becomes Absent.
func Substitutions(values ...any) []Substitution {
	subs := make([]Substitution, len(values))
	for i, v := range values {
		subs[i] = SubstitutionOf(v)
	}
	return subs
}

// SubstitutionOf converts a Go value into a substitution.
// nil maps to Absent; Substitution values pass through unchanged.
func SubstitutionOf(v any) Substitution {
	sub, err := substitutionOf(v, DefaultMaxDepth)
	if err != nil {
		return Present(Unsupported(v))
	}
	return sub
}

func substitutionOf(v any, limit int) (Substitution, error) {
	switch t := v.(type) {
	case nil:
		return Absent(), nil
	case Substitution:
		return t, nil
	}
	val, err := fromAny(v, 1, limit)
	if err != nil {
		return Substitution{}, err
	}
	return Present(val), nil
}

// FromAny converts a Go value into a Value.
//
// Strings become text, every integer and float type becomes a number, and
// slices or arrays (except []byte) become nested sequences. Anything else,
// including nil and bool, is wrapped as Unsupported. A slice nested deeper
// than DefaultMaxDepth, or one that contains itself, is wrapped as
// Unsupported as a whole.
func FromAny(v any) Value {
	val, err := fromAny(v, 1, DefaultMaxDepth)
	if err != nil {
		return Unsupported(v)
	}
	return val
}

// fromAny converts v as a value nested at depth. A slice at a depth beyond
// limit fails with a recursion limit error.
func fromAny(v any, depth, limit int) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case Sequence:
		return Value{kind: KindSequence, seq: t}, nil
	case []Value:
		return Value{kind: KindSequence, seq: Sequence(t)}, nil
	case Substitution:
		if val, ok := t.Value(); ok {
			return val, nil
		}
		return Unsupported(nil), nil
	case string:
		return Text(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int8:
		return Number(float64(t)), nil
	case int16:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint8:
		return Number(float64(t)), nil
	case uint16:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case []any:
		return fromItems(len(t), func(i int) any { return t[i] }, depth, limit)
	case []string:
		return fromItems(len(t), func(i int) any { return t[i] }, depth, limit)
	case []byte:
		return Unsupported(t), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return fromItems(rv.Len(), func(i int) any { return rv.Index(i).Interface() }, depth, limit)
	}
	return Unsupported(v), nil
}

// fromItems builds a sequence at depth from n items.
func fromItems(n int, item func(int) any, depth, limit int) (Value, error) {
	if limit > 0 && depth > limit {
		return Value{}, NewMaxDepthError(depth, limit)
	}
	items := make(Sequence, n)
	for i := range n {
		val, err := fromAny(item(i), depth+1, limit)
		if err != nil {
			return Value{}, err
		}
		items[i] = val
	}
	return Value{kind: KindSequence, seq: items}, nil
}

// FormatNumber returns the canonical decimal text of f: the shortest
// representation that round-trips, without exponent notation.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return NumberTextNaN
	case math.IsInf(f, 1):
		return NumberTextPosInf
	case math.IsInf(f, -1):
		return NumberTextNegInf
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
