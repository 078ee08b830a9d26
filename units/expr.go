// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import "strings"

// Expr is a symbolic unit expression: a Basic atom, a Ratio of atoms,
// or a Scaled expression carrying a coefficient.
type Expr interface {
	String() string
	expr()
}

// Basic is an atomic unit symbol; two atoms are equal when their names are.
type Basic string

// Ratio is a product of atoms over a product of atoms. Repeated atoms
// stand for powers.
type Ratio struct {
	Num []Basic
	Den []Basic
}

// Scaled is only built by Scale, which keeps it from wrapping another
// Scaled or the identity coefficient.
type Scaled struct {
	coef  Coefficient
	inner Expr
}

func (Basic) expr()  {}
func (Ratio) expr()  {}
func (Scaled) expr() {}

func (b Basic) String() string {
	return string(b)
}

func (r Ratio) String() string {
	var parts []string
	for _, b := range r.Num {
		parts = append(parts, string(b))
	}
	if len(r.Den) > 0 {
		if len(r.Num) == 0 {
			parts = append(parts, "1")
		}
		parts = append(parts, "/")
		for _, b := range r.Den {
			parts = append(parts, string(b))
		}
	}
	return strings.Join(parts, " ")
}

// IsEmpty reports whether the ratio is dimensionless (no atoms at all).
func (r Ratio) IsEmpty() bool {
	return len(r.Num) == 0 && len(r.Den) == 0
}

func (s Scaled) Coefficient() Coefficient {
	return s.coef
}

func (s Scaled) Inner() Expr {
	return s.inner
}

func (s Scaled) String() string {
	inner := s.inner.String()
	if inner == "" {
		return s.coef.String()
	}
	return s.coef.String() + " " + inner
}

// Scale is the only constructor for Scaled. A Scaled argument has its
// coefficient folded into c, and an identity result returns e bare.
func Scale(c Coefficient, e Expr) Expr {
	inner, ec := FactorOutCoefficient(e)
	c = c.Multiply(ec)
	if c.IsUnit() {
		return inner
	}
	return Scaled{coef: c, inner: inner}
}

// FactorOutCoefficient splits e into its bare expression and coefficient;
// bare expressions have the unit coefficient.
func FactorOutCoefficient(e Expr) (Expr, Coefficient) {
	if s, ok := e.(Scaled); ok {
		return s.inner, s.coef
	}
	return e, Unit()
}

// asRatio treats a Basic atom b as b / (nothing).
func asRatio(e Expr) Ratio {
	switch v := e.(type) {
	case Basic:
		return Ratio{Num: []Basic{v}}
	case Ratio:
		return v
	case Scaled:
		return asRatio(v.inner)
	}
	return Ratio{}
}

// concat never aliases either argument.
func concat(a, b []Basic) []Basic {
	result := make([]Basic, 0, len(a)+len(b))
	result = append(result, a...)
	return append(result, b...)
}

func Multiply(left, right Expr) Expr {
	l, lc := FactorOutCoefficient(left)
	r, rc := FactorOutCoefficient(right)
	lr, rr := asRatio(l), asRatio(r)

	num, den := Cancel(concat(lr.Num, rr.Num), concat(lr.Den, rr.Den))
	return Scale(lc.Multiply(rc), Ratio{Num: num, Den: den})
}

// Divide multiplies left by the reciprocal of right.
func Divide(left, right Expr) Expr {
	l, lc := FactorOutCoefficient(left)
	r, rc := FactorOutCoefficient(right)
	lr, rr := asRatio(l), asRatio(r)

	num, den := Cancel(concat(lr.Num, rr.Den), concat(lr.Den, rr.Num))
	return Scale(lc.Divide(rc), Ratio{Num: num, Den: den})
}

// Cancel removes pairs of equal atoms from num and den until none are
// left. Each round removes the first numerator atom (lowest index) that
// has a match, paired with its first match in den.
func Cancel(num, den []Basic) ([]Basic, []Basic) {
	num = append([]Basic(nil), num...)
	den = append([]Basic(nil), den...)

	for {
		ni, di := findPair(num, den)
		if ni < 0 {
			return num, den
		}
		num = append(num[:ni], num[ni+1:]...)
		den = append(den[:di], den[di+1:]...)
	}
}

func findPair(num, den []Basic) (int, int) {
	for ni, n := range num {
		for di, d := range den {
			if n == d {
				return ni, di
			}
		}
	}
	return -1, -1
}
