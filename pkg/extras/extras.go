// Package extras implements the typed key/value payload passed to activities
// at start time and carried by intents.
//
// Values are restricted to a closed set of kinds (string, integer, float,
// bool, null and nested maps) represented by the [Value] tagged union.
// Bulk accessors return copies: nothing a caller does with the result of
// [Extras.All], [Extras.Clone] or [Value.AsMap] can reach the store.
//
//	x := extras.New()
//	x.PutString("user", "ada")
//	x.PutInt("count", 3)
//	n := x.Int("count", 0) // 3
package extras

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bytedance/sonic"
)

// ErrUnsupportedValue is returned when converting a Go value that has no
// corresponding Kind.
var ErrUnsupportedValue = errors.New("extras: unsupported value")

// Extras maps string keys to Values. The zero value is ready to use.
type Extras struct {
	values map[string]Value
}

// New returns an empty Extras.
func New() *Extras {
	return &Extras{values: make(map[string]Value)}
}

// FromMap converts a plain map into Extras, failing on the first value
// that ValueOf rejects.
func FromMap(m map[string]any) (*Extras, error) {
	e := New()
	for k, raw := range m {
		v, err := ValueOf(raw)
		if err != nil {
			return nil, fmt.Errorf("extra %q: %w", k, err)
		}
		e.values[k] = v
	}
	return e, nil
}

// Put stores v under key, replacing any previous value.
func (e *Extras) Put(key string, v Value) {
	if e.values == nil {
		e.values = make(map[string]Value)
	}
	e.values[key] = v
}

// PutString stores a string value.
func (e *Extras) PutString(key, s string) { e.Put(key, String(s)) }

// PutInt stores an integer value.
func (e *Extras) PutInt(key string, i int64) { e.Put(key, Int(i)) }

// PutFloat stores a floating-point value.
func (e *Extras) PutFloat(key string, f float64) { e.Put(key, Float(f)) }

// PutBool stores a boolean value.
func (e *Extras) PutBool(key string, b bool) { e.Put(key, Bool(b)) }

// PutNull stores an explicit null, which Has reports as present.
func (e *Extras) PutNull(key string) { e.Put(key, Null()) }

// PutMap stores a copy of m.
func (e *Extras) PutMap(key string, m *Extras) { e.Put(key, Map(m)) }

// Get returns the value stored under key, or def if the key is absent.
func (e *Extras) Get(key string, def Value) Value {
	if e == nil {
		return def
	}
	if v, ok := e.values[key]; ok {
		return v
	}
	return def
}

// Lookup returns the value stored under key and whether it was present.
func (e *Extras) Lookup(key string) (Value, bool) {
	if e == nil {
		return Value{}, false
	}
	v, ok := e.values[key]
	return v, ok
}

// String returns the string under key, or def if absent or of another kind.
func (e *Extras) String(key, def string) string {
	if v, ok := e.Get(key, Value{}).AsString(); ok {
		return v
	}
	return def
}

// Int returns the integer under key, or def if absent or of another kind.
func (e *Extras) Int(key string, def int64) int64 {
	if v, ok := e.Get(key, Value{}).AsInt(); ok {
		return v
	}
	return def
}

// Float returns the float under key, or def if absent or of another kind.
func (e *Extras) Float(key string, def float64) float64 {
	if v, ok := e.Get(key, Value{}).AsFloat(); ok {
		return v
	}
	return def
}

// Bool returns the bool under key, or def if absent or of another kind.
func (e *Extras) Bool(key string, def bool) bool {
	if v, ok := e.Get(key, Value{}).AsBool(); ok {
		return v
	}
	return def
}

// Map returns a copy of the nested map under key, or nil.
func (e *Extras) Map(key string) *Extras {
	m, _ := e.Get(key, Value{}).AsMap()
	return m
}

// Has reports whether key is present.
func (e *Extras) Has(key string) bool {
	_, ok := e.Lookup(key)
	return ok
}

// Remove deletes key and reports whether it was present.
func (e *Extras) Remove(key string) bool {
	if !e.Has(key) {
		return false
	}
	delete(e.values, key)
	return true
}

// Len returns the number of keys.
func (e *Extras) Len() int {
	if e == nil {
		return 0
	}
	return len(e.values)
}

// Keys returns the keys in sorted order.
func (e *Extras) Keys() []string {
	if e == nil {
		return nil
	}
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns a copy of every entry. Values are immutable, so mutating the
// returned map never affects e.
func (e *Extras) All() map[string]Value {
	out := make(map[string]Value, e.Len())
	if e == nil {
		return out
	}
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy of e. Cloning nil yields an empty map.
func (e *Extras) Clone() *Extras {
	return &Extras{values: e.All()}
}

// Merge copies every entry of other into e, overwriting existing keys.
func (e *Extras) Merge(other *Extras) {
	for k, v := range other.All() {
		e.Put(k, v)
	}
}

// Equal reports whether e and o hold the same keys and values.
func (e *Extras) Equal(o *Extras) bool {
	if e.Len() != o.Len() {
		return false
	}
	for k, v := range e.All() {
		ov, ok := o.Lookup(k)
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// ToMap converts e into a plain map using Value.Interface.
func (e *Extras) ToMap() map[string]any {
	out := make(map[string]any, e.Len())
	for k, v := range e.All() {
		out[k] = v.Interface()
	}
	return out
}

// MarshalJSON encodes e as an object of tagged values.
func (e *Extras) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(e.All())
}

// UnmarshalJSON replaces the contents of e with the decoded object.
func (e *Extras) UnmarshalJSON(data []byte) error {
	values := make(map[string]Value)
	if err := sonic.Unmarshal(data, &values); err != nil {
		return err
	}
	e.values = values
	return nil
}
