// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"fmt"
	"math/bits"
)

// Rational is a non-negative fraction, always held in lowest terms.
type Rational struct {
	num uint64
	den uint64
}

// NewRational returns num/den reduced to lowest terms.
// Panics if den is zero.
func NewRational(num, den uint64) Rational {
	if den == 0 {
		panic("zero is an invalid denominator")
	}

	g := gcd(num, den)
	return Rational{num: num / g, den: den / g}
}

// Euclid; gcd(0, d) == d
func gcd(x, y uint64) uint64 {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

func (r Rational) Numerator() uint64 {
	return r.num
}

func (r Rational) Denominator() uint64 {
	return r.den
}

// Multiply cross-reduces before multiplying and panics if the reduced
// product still does not fit in 64 bits.
func (r Rational) Multiply(other Rational) Rational {
	g1 := gcd(r.num, other.den)
	g2 := gcd(other.num, r.den)
	return NewRational(mul64(r.num/g1, other.num/g2), mul64(r.den/g2, other.den/g1))
}

// Divide panics if other is zero-valued.
func (r Rational) Divide(other Rational) Rational {
	if other.num == 0 {
		panic("cannot divide by a zero-valued rational")
	}

	return r.Multiply(Rational{num: other.den, den: other.num})
}

func mul64(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		panic(fmt.Sprintf("rational overflow: %d * %d does not fit in 64 bits", x, y))
	}
	return lo
}

// Float64 is lossy and only meant for display.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

func (r Rational) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d|%d", r.num, r.den)
}
