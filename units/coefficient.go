// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import "strconv"

// Coefficient is either an exact Rational or an approximate float.
// Exact combined with exact stays exact; anything touching a float
// becomes a float.
type Coefficient struct {
	float bool
	f     float64
	r     Rational
}

// Unit returns the multiplicative identity, exactly 1.
func Unit() Coefficient {
	return Exact(NewRational(1, 1))
}

func Exact(r Rational) Coefficient {
	return Coefficient{r: r}
}

func Float(f float64) Coefficient {
	return Coefficient{float: true, f: f}
}

func (c Coefficient) IsExact() bool {
	return !c.float
}

// Rational returns the exact value; ok is false for a float coefficient.
func (c Coefficient) Rational() (Rational, bool) {
	return c.r, !c.float
}

// IsUnit is true only for an exact 1. A float equal to 1.0 is not the unit.
func (c Coefficient) IsUnit() bool {
	return !c.float && c.r.num == c.r.den
}

func (c Coefficient) Float64() float64 {
	if c.float {
		return c.f
	}
	return c.r.Float64()
}

func (c Coefficient) Multiply(other Coefficient) Coefficient {
	if c.float || other.float {
		return Float(c.Float64() * other.Float64())
	}
	return Exact(c.r.Multiply(other.r))
}

// Divide panics when dividing by an exact zero; a float zero yields Inf or NaN.
func (c Coefficient) Divide(other Coefficient) Coefficient {
	if c.float || other.float {
		return Float(c.Float64() / other.Float64())
	}
	return Exact(c.r.Divide(other.r))
}

func (c Coefficient) String() string {
	if c.float {
		return strconv.FormatFloat(c.f, 'g', -1, 64)
	}
	return c.r.String()
}
