package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewObject_NormalizesEmpty(t *testing.T) {
	assert.Nil(t, NewObject(map[string]Value{}).Entries)
	assert.Nil(t, NewObject(nil).Entries)
	assert.True(t, NewObject(nil).IsEmpty())

	o := NewObject(map[string]Value{"a": NullValue{}})
	assert.False(t, o.IsEmpty())
	assert.Equal(t, 1, o.Len())
}

func TestNewArray_NormalizesEmpty(t *testing.T) {
	assert.Nil(t, NewArray().Items)
	assert.True(t, NewArray().IsEmpty())
	assert.Equal(t, 2, NewArray(Integer(1), Integer(2)).Len())
}

func TestObjectValue_KeysSorted(t *testing.T) {
	o := NewObject(map[string]Value{"b": Integer(1), "a": Integer(2), "c": Integer(3)})
	assert.Equal(t, []string{"a", "b", "c"}, o.Keys())

	v, ok := o.Get("a")
	assert.True(t, ok)
	assert.Equal(t, Integer(2), v)

	_, ok = o.Get("missing")
	assert.False(t, ok)
}

func TestValueKinds(t *testing.T) {
	tests := []struct {
		value    Value
		kind     ValueKind
		expected string
	}{
		{ObjectValue{}, KindObject, "object"},
		{ArrayValue{}, KindArray, "array"},
		{StringValue("s"), KindString, "string"},
		{Integer(1), KindNumber, "number"},
		{BoolValue(true), KindBool, "bool"},
		{NullValue{}, KindNull, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.value.Kind())
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestNumberValue(t *testing.T) {
	i := Integer(42)
	assert.True(t, i.IsInteger())
	got, ok := i.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(42), got)
	assert.Equal(t, float64(42), i.Float64())
	assert.Equal(t, "42", i.String())

	f := Float(1.5)
	assert.False(t, f.IsInteger())
	assert.Equal(t, FloatNumber, f.NumberKind())
	_, ok = f.Int64()
	assert.False(t, ok)
	assert.Equal(t, 1.5, f.Float64())
	assert.Equal(t, "1.5", f.String())

	assert.NotEqual(t, Integer(1), Float(1))
}

func TestEqual(t *testing.T) {
	tree := func() Value {
		return NewObject(map[string]Value{
			"a": NewArray(Integer(1), Float(2.5), StringValue("x")),
			"b": NewObject(map[string]Value{"c": BoolValue(true), "d": NullValue{}}),
		})
	}

	tests := []struct {
		name     string
		a, b     Value
		expected bool
	}{
		{"identical trees", tree(), tree(), true},
		{"both nil", nil, nil, true},
		{"one nil", tree(), nil, false},
		{"different kinds", StringValue("1"), Integer(1), false},
		{"integer vs float", Integer(1), Float(1), false},
		{"array order matters", NewArray(Integer(1), Integer(2)), NewArray(Integer(2), Integer(1)), false},
		{"array length", NewArray(Integer(1)), NewArray(Integer(1), Integer(1)), false},
		{"object value differs", NewObject(map[string]Value{"k": Integer(1)}), NewObject(map[string]Value{"k": Integer(2)}), false},
		{"object key differs", NewObject(map[string]Value{"k": Integer(1)}), NewObject(map[string]Value{"j": Integer(1)}), false},
		{"empty objects", ObjectValue{}, NewObject(nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Equal(tt.a, tt.b))
		})
	}
}
