package models

import "strconv"

// NumberKind tells which representation a NumberValue holds.
type NumberKind int

const (
	IntegerNumber NumberKind = iota
	FloatNumber
)

// NumberValue is either a 64-bit signed integer or a 64-bit float. The
// parser never produces NaN or infinities, so == is a total equality.
type NumberValue struct {
	kind NumberKind
	i    int64
	f    float64
}

// Integer returns an integer NumberValue.
func Integer(i int64) NumberValue {
	return NumberValue{kind: IntegerNumber, i: i}
}

// Float returns a float NumberValue.
func Float(f float64) NumberValue {
	return NumberValue{kind: FloatNumber, f: f}
}

// NumberKind returns the representation in use.
func (n NumberValue) NumberKind() NumberKind { return n.kind }

// IsInteger reports whether n holds an integer.
func (n NumberValue) IsInteger() bool { return n.kind == IntegerNumber }

// Int64 returns the integer and true when n is an integer.
func (n NumberValue) Int64() (int64, bool) {
	return n.i, n.kind == IntegerNumber
}

// Float64 returns n as a float. Integers are converted.
func (n NumberValue) Float64() float64 {
	if n.kind == IntegerNumber {
		return float64(n.i)
	}
	return n.f
}

func (n NumberValue) String() string {
	if n.kind == IntegerNumber {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
