package models

import "sort"

// ValueKind names the active variant of a Value.
type ValueKind int

const (
	KindObject ValueKind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k ValueKind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed document. It is implemented by ObjectValue,
// ArrayValue, StringValue, NumberValue, BoolValue and NullValue only.
type Value interface {
	Kind() ValueKind
	isValue()
}

// ObjectValue maps keys to values. A nil Entries map is an object with no
// entries; the parser never produces a non-nil empty map.
type ObjectValue struct {
	Entries map[string]Value
}

// ArrayValue is an ordered sequence of values. A nil Items slice is an
// array with no elements.
type ArrayValue struct {
	Items []Value
}

// StringValue holds the raw characters between the quotes.
type StringValue string

// BoolValue is true or false.
type BoolValue bool

// NullValue is the null literal.
type NullValue struct{}

func (ObjectValue) Kind() ValueKind { return KindObject }
func (ArrayValue) Kind() ValueKind  { return KindArray }
func (StringValue) Kind() ValueKind { return KindString }
func (NumberValue) Kind() ValueKind { return KindNumber }
func (BoolValue) Kind() ValueKind   { return KindBool }
func (NullValue) Kind() ValueKind   { return KindNull }

func (ObjectValue) isValue() {}
func (ArrayValue) isValue()  {}
func (StringValue) isValue() {}
func (NumberValue) isValue() {}
func (BoolValue) isValue()   {}
func (NullValue) isValue()   {}

// NewObject builds an ObjectValue, normalizing an empty map to nil.
func NewObject(entries map[string]Value) ObjectValue {
	if len(entries) == 0 {
		return ObjectValue{}
	}
	return ObjectValue{Entries: entries}
}

// NewArray builds an ArrayValue, normalizing an empty slice to nil.
func NewArray(items ...Value) ArrayValue {
	if len(items) == 0 {
		return ArrayValue{}
	}
	return ArrayValue{Items: items}
}

// Len returns the number of entries.
func (o ObjectValue) Len() int { return len(o.Entries) }

// IsEmpty reports whether the object has no entries.
func (o ObjectValue) IsEmpty() bool { return o.Entries == nil }

// Get returns the value stored under key.
func (o ObjectValue) Get(key string) (Value, bool) {
	v, ok := o.Entries[key]
	return v, ok
}

// Keys returns the object's keys in sorted order.
func (o ObjectValue) Keys() []string {
	keys := make([]string, 0, len(o.Entries))
	for k := range o.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of elements.
func (a ArrayValue) Len() int { return len(a.Items) }

// IsEmpty reports whether the array has no elements.
func (a ArrayValue) IsEmpty() bool { return a.Items == nil }

// Equal reports whether two trees are structurally equal. Object entries are
// compared as maps, so key order never matters.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case ObjectValue:
		bv := b.(ObjectValue)
		if av.Len() != bv.Len() {
			return false
		}
		for k, v := range av.Entries {
			other, ok := bv.Entries[k]
			if !ok || !Equal(v, other) {
				return false
			}
		}
		return true
	case ArrayValue:
		bv := b.(ArrayValue)
		if av.Len() != bv.Len() {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
