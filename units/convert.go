// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import "unitcalc/internal/errors"

// Conversion is the answer to "how many of one unit make another".
type Conversion struct {
	Coefficient Coefficient

	// Leftover is the uncancelled symbolic part, nil when the two units
	// are commensurate.
	Leftover Expr
}

// Commensurate reports whether every atom cancelled.
func (c Conversion) Commensurate() bool {
	return c.Leftover == nil
}

func (c Conversion) String() string {
	if c.Leftover == nil {
		return c.Coefficient.String()
	}
	return c.Coefficient.String() + " " + c.Leftover.String()
}

// Convert returns how many `to` there are in one `from`, i.e. from / to.
// Incompatible units are not rejected; the result then has a Leftover.
func Convert(reg *Registry, from, to string) (Conversion, error) {
	fromExpr, ok := reg.Lookup(from)
	if !ok {
		return Conversion{}, notFound(from)
	}
	toExpr, ok := reg.Lookup(to)
	if !ok {
		return Conversion{}, notFound(to)
	}

	bare, coef := FactorOutCoefficient(Divide(fromExpr, toExpr))
	conversion := Conversion{Coefficient: coef}
	if r, ok := bare.(Ratio); !ok || !r.IsEmpty() {
		conversion.Leftover = bare
	}
	return conversion, nil
}

func notFound(name string) error {
	return errors.Newf(errors.TypeNotFound, "no unit found for %s", name).WithContext("unit", name)
}
