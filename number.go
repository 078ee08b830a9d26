// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"unitcalc/units"
)

// Number is either a big integer or float, or NaN when neither can hold
// the result.
type Number struct {
	i   *big.Int
	f   *big.Float
	nan bool
}

const PRECISION = 113 // match IEEE 754 quadruple-precision binary floating-point format (binary128)

func newFloat() *big.Float {
	return new(big.Float).SetPrec(PRECISION)
}

func newInt() *big.Int {
	return new(big.Int)
}

func parseNumber(input string) (Number, bool) {
	if i, ok := newInt().SetString(input, 10); ok {
		return Number{i: i}, true
	} else if f, ok := newFloat().SetString(input); ok {
		return Number{f: f}, true
	} else {
		return Number{}, false
	}
}

func (n Number) isInt() bool {
	return n.i != nil
}

func (n Number) toFloat() *big.Float {
	if n.isInt() {
		return newFloat().SetInt(n.i)
	}
	return n.f
}

// String is the full value, without rounding.
func (n Number) String() string {
	if n.nan {
		return "NaN"
	}
	if n.i != nil {
		return n.i.String()
	}
	if n.f != nil {
		return n.f.String()
	}
	return ""
}

// format rounds floats to precision decimal places and drops trailing zeros.
func (n Number) format(precision int) string {
	if n.nan {
		return "NaN"
	}
	if n.isInt() {
		return n.i.String()
	}

	f, _ := n.f.Float64()
	if math.IsInf(f, 0) {
		return n.f.String()
	}
	return decimal.NewFromFloat(f).Round(int32(precision)).String()
}

// binaryOp returns a new Number and leaves both operands untouched. Integer
// division that leaves a remainder becomes a float. Zero times infinity,
// zero over zero and infinity over infinity are NaN.
func (n Number) binaryOp(other Number, op string) Number {
	if n.nan || other.nan {
		return Number{nan: true}
	}

	if n.isInt() && other.isInt() {
		switch op {
		case "*", ".":
			return Number{i: newInt().Mul(n.i, other.i)}
		case "/":
			var modulus big.Int
			quotient, _ := newInt().QuoRem(n.i, other.i, &modulus)
			if modulus.Sign() == 0 {
				return Number{i: quotient}
			}
		}
	}

	left, right := n.toFloat(), other.toFloat()
	switch op {
	case "*", ".":
		if (left.Sign() == 0 && right.IsInf()) || (left.IsInf() && right.Sign() == 0) {
			return Number{nan: true}
		}
		return Number{f: newFloat().Mul(left, right)}
	case "/":
		if (left.Sign() == 0 && right.Sign() == 0) || (left.IsInf() && right.IsInf()) {
			return Number{nan: true}
		}
		return Number{f: newFloat().Quo(left, right)}
	}

	panic("Unimplemented binary op: '" + op + "'")
}

// scale multiplies n by a conversion coefficient. Exact coefficients keep
// an integer amount integral when the result divides evenly.
func (n Number) scale(c units.Coefficient) Number {
	if r, ok := c.Rational(); ok {
		num := Number{i: newInt().SetUint64(r.Numerator())}
		den := Number{i: newInt().SetUint64(r.Denominator())}
		return n.binaryOp(num, "*").binaryOp(den, "/")
	}

	f := c.Float64()
	if math.IsNaN(f) {
		return Number{nan: true}
	}
	return n.binaryOp(Number{f: newFloat().SetFloat64(f)}, "*")
}

// rational shows an integer amount times an exact coefficient as p/q;
// ok is false when either side is approximate.
func (n Number) rational(c units.Coefficient) (string, bool) {
	r, exact := c.Rational()
	if !exact || !n.isInt() {
		return "", false
	}

	num := newInt().Mul(n.i, newInt().SetUint64(r.Numerator()))
	return new(big.Rat).SetFrac(num, newInt().SetUint64(r.Denominator())).RatString(), true
}
