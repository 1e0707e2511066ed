package extras

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/bytedance/sonic"
)

// Kind identifies which member of the closed value set a Value holds.
type Kind int

const (
	// KindNull is the zero Kind; the zero Value is null.
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func parseKind(s string) (Kind, bool) {
	for k := KindNull; k <= KindMap; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return KindNull, false
}

// Value is an immutable tagged union over string, int64, float64, bool,
// null and nested Extras. Nested maps are copied on the way in and on the way
// out, so a Value never shares storage with its caller.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
	m    *Extras
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Null returns the null Value.
func Null() Value { return Value{} }

// Map returns a Value holding a copy of e. A nil e yields an empty map.
func Map(e *Extras) Value { return Value{kind: KindMap, m: e.Clone()} }

// Kind reports which member of the union v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string payload and whether v is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsInt returns the integer payload and whether v is an integer.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the floating-point payload and whether v is a float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsBool returns the boolean payload and whether v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsMap returns a copy of the nested map and whether v is a map.
func (v Value) AsMap() (*Extras, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m.Clone(), true
}

// Interface converts v to a plain Go value: string, int64, float64, bool,
// nil or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindMap:
		return v.m.ToMap()
	default:
		return nil
	}
}

// Equal reports whether v and o hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	case KindMap:
		return v.m.Equal(o.m)
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.s)
	case KindMap:
		return fmt.Sprintf("map[%d]", v.m.Len())
	case KindNull:
		return "null"
	default:
		return fmt.Sprint(v.Interface())
	}
}

// ValueOf converts a plain Go value into a Value. Supported inputs are
// strings, bools, every integer and float type, nil, Value, *Extras and
// map[string]any (recursively).
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return fromUnsigned(uint64(t), x)
	case uint64:
		return fromUnsigned(t, x)
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case *Extras:
		return Map(t), nil
	case map[string]any:
		nested, err := FromMap(t)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindMap, m: nested}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, x)
	}
}

// fromUnsigned rejects values that do not fit in an int64.
func fromUnsigned(u uint64, x any) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %T %d overflows int64", ErrUnsupportedValue, x, u)
	}
	return Int(int64(u)), nil
}

// wireValue is the tagged JSON form of a Value.
type wireValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes v as {"type": <kind>, "value": <payload>}.
func (v Value) MarshalJSON() ([]byte, error) {
	w := wireValue{Type: v.kind.String()}
	var payload any
	switch v.kind {
	case KindString:
		payload = v.s
	case KindInt:
		payload = v.i
	case KindFloat:
		payload = v.f
	case KindBool:
		payload = v.b
	case KindMap:
		payload = v.m
	}
	if payload != nil {
		raw, err := sonic.Marshal(payload)
		if err != nil {
			return nil, err
		}
		w.Value = raw
	}
	return sonic.Marshal(w)
}

// UnmarshalJSON decodes the tagged form written by MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w wireValue
	if err := sonic.Unmarshal(data, &w); err != nil {
		return err
	}
	kind, ok := parseKind(w.Type)
	if !ok {
		return fmt.Errorf("%w: type %q", ErrUnsupportedValue, w.Type)
	}
	out := Value{kind: kind}
	var err error
	switch kind {
	case KindString:
		err = sonic.Unmarshal(w.Value, &out.s)
	case KindInt:
		err = sonic.Unmarshal(w.Value, &out.i)
	case KindFloat:
		err = sonic.Unmarshal(w.Value, &out.f)
	case KindBool:
		err = sonic.Unmarshal(w.Value, &out.b)
	case KindMap:
		out.m = New()
		if len(w.Value) > 0 {
			err = sonic.Unmarshal(w.Value, out.m)
		}
	}
	if err != nil {
		return fmt.Errorf("decode %s extra: %w", kind, err)
	}
	*v = out
	return nil
}
