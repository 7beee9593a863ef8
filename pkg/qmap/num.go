package qmap

import (
	"math"
	"strconv"
	"strings"
)

// Num is a single numeric token from a face line. It carries both the
// value and whether the on-disk token was written without a decimal point,
// so Serialize can reproduce "128" rather than "128.0" for untouched,
// integer-valued faces — the fidelity the round-trip invariant depends on. Arithmetic performed by the transform package produces new
// Num values whose IsInt is recomputed from the result, not carried
// blindly: a translation by an integer vector keeps whole numbers whole,
// while a centroid difference involving a fractional component correctly
// downgrades to float formatting.
type Num struct {
	Value float64
	IsInt bool
}

// NewNum builds a Num, inferring IsInt from whether the value is whole.
func NewNum(v float64) Num {
	return Num{Value: v, IsInt: v == math.Trunc(v)}
}

// ParseNum parses a single numeric token, preserving whether it was
// written as an integer (no '.', no exponent) on disk.
func ParseNum(tok string) (Num, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return Num{}, err
	}
	isInt := !strings.ContainsAny(tok, ".eE")
	return Num{Value: v, IsInt: isInt}, nil
}

// String formats the number the way it would have been written on disk:
// as a bare integer when IsInt, otherwise as the shortest decimal form
// that still carries a decimal point.
func (n Num) String() string {
	if n.IsInt {
		return strconv.FormatFloat(n.Value, 'f', 0, 64)
	}
	s := strconv.FormatFloat(n.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Add returns n shifted by delta, re-deriving IsInt from the sum.
func (n Num) Add(delta float64) Num {
	return NewNum(n.Value + delta)
}

// Neg returns -n, preserving IsInt (negating an integer is still an
// integer).
func (n Num) Neg() Num {
	return Num{Value: -n.Value, IsInt: n.IsInt}
}
