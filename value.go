// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import "unitcalc/units"

// Value is a converted amount and whatever units did not cancel.
type Value struct {
	number Number
	exact  string // p/q form, empty when the amount is approximate
	units  units.Expr
}

func convertValue(amount Number, conversion units.Conversion) Value {
	exact, _ := amount.rational(conversion.Coefficient)
	return Value{
		number: amount.scale(conversion.Coefficient),
		exact:  exact,
		units:  conversion.Leftover,
	}
}

func (v Value) String() string {
	return v.withUnits(v.number.String())
}

func (v Value) format(precision int, rational bool) string {
	if rational && v.exact != "" {
		return v.withUnits(v.exact)
	}
	return v.withUnits(v.number.format(precision))
}

func (v Value) withUnits(number string) string {
	if v.units == nil {
		return number
	}
	return number + " " + v.units.String()
}
