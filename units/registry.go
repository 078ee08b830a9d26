// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"unitcalc/enumerable"
	"unitcalc/internal/errors"
)

// Fundamental marks a unit that is not defined in terms of any other.
const Fundamental = "!"

// name [num[.frac][|den]] [ref[^n] ...] [# comment]
var definitionRe = regexp.MustCompile(`^\s*(?P<name>\S+)\s+(?:(?P<num>\d+(?:\.\d+)?)(?:\|(?P<den>\d+))?(?:\s+|$))?(?P<def>[^#]*)(?:#.*)?$`)

var (
	nameGroup = definitionRe.SubexpIndex("name")
	numGroup  = definitionRe.SubexpIndex("num")
	denGroup  = definitionRe.SubexpIndex("den")
	defGroup  = definitionRe.SubexpIndex("def")
)

// Registry maps unit names to their resolved expressions. It is not
// modified after Load returns.
type Registry struct {
	units map[string]Expr
	order []string
}

// Lookup returns the expression registered for name.
func (r *Registry) Lookup(name string) (Expr, bool) {
	e, ok := r.units[name]
	return e, ok
}

// Names returns unit names in the order they were first defined.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

func (r *Registry) Len() int {
	return len(r.units)
}

func (r *Registry) define(name string, e Expr) {
	if _, ok := r.units[name]; !ok {
		r.order = append(r.order, name)
	}
	r.units[name] = e
}

// Load builds a registry from definition lines, in order. A reference
// to an undefined unit is logged and dropped; a malformed coefficient
// aborts with a PARSING_ERROR.
func Load(lines []string, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	reg := &Registry{units: make(map[string]Expr)}
	for i, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		match := definitionRe.FindStringSubmatch(line)
		if match == nil {
			logger.Warn("skipping line without a definition", zap.Int("line", i+1), zap.String("text", line))
			continue
		}

		name := match[nameGroup]
		e, err := reg.parseDefinition(name, match[numGroup], match[denGroup], strings.TrimSpace(match[defGroup]), logger)
		if err != nil {
			return nil, err.WithContext("line", i+1).WithContext("unit", name)
		}

		logger.Debug("defined unit", zap.String("unit", name), zap.Stringer("expr", e))
		reg.define(name, e)
	}

	return reg, nil
}

// MustLoad is Load for tables known to be well formed.
func MustLoad(lines []string, logger *zap.Logger) *Registry {
	reg, err := Load(lines, logger)
	if err != nil {
		panic(err)
	}
	return reg
}

func (r *Registry) parseDefinition(name, num, den, def string, logger *zap.Logger) (e Expr, perr *errors.Error) {
	// exact coefficients that outgrow 64 bits make the line unusable
	defer func() {
		if p := recover(); p != nil {
			e, perr = nil, errors.Newf(errors.TypeParsing, "coefficient of '%s' is out of range: %v", name, p)
		}
	}()

	if def == Fundamental {
		return Basic(name), nil
	}

	tokens, err := expandPowers(def)
	if err != nil {
		return nil, err
	}

	coef := Unit()
	var atoms []Basic
	for _, token := range tokens {
		e, ok := r.units[token]
		if !ok {
			logger.Warn("couldn't find unit", zap.String("unit", name), zap.String("reference", token))
			continue
		}
		c, refAtoms := numeratorOf(e)
		coef = coef.Multiply(c)
		atoms = append(atoms, refAtoms...)
	}

	if num != "" {
		c, err := parseCoefficient(num, den)
		if err != nil {
			return nil, err
		}
		coef = coef.Multiply(c)
	}

	return Scale(coef, Ratio{Num: atoms}), nil
}

// numeratorOf returns the coefficient and numerator atoms of a
// registered unit. Denominator atoms of a referenced ratio are not
// carried into the new definition.
func numeratorOf(e Expr) (Coefficient, []Basic) {
	switch v := e.(type) {
	case Basic:
		return Unit(), []Basic{v}
	case Ratio:
		return Unit(), v.Num
	case Scaled:
		c, atoms := numeratorOf(v.inner)
		return v.coef.Multiply(c), atoms
	}
	return Unit(), nil
}

// MaxPower bounds the exponent accepted by expandPowers.
const MaxPower = 64

// expandPowers turns "in^3" into "in in in".
func expandPowers(def string) ([]string, *errors.Error) {
	var tokens []string
	for _, field := range strings.Fields(def) {
		base, power, found := strings.Cut(field, "^")
		if !found {
			tokens = append(tokens, field)
			continue
		}

		n, err := strconv.Atoi(power)
		if err != nil || n < 0 {
			return nil, errors.Wrap(errors.TypeParsing, err, "invalid power in '"+field+"'")
		}
		if n > MaxPower {
			return nil, errors.Newf(errors.TypeParsing, "power in '%s' exceeds %d", field, MaxPower)
		}
		tokens = append(tokens, enumerable.Repeat(base, n)...)
	}
	return tokens, nil
}

// parseCoefficient reads "231" or "1|4" as exact and "2.54" as a float.
func parseCoefficient(num, den string) (Coefficient, *errors.Error) {
	if strings.Contains(num, ".") {
		if den != "" {
			return Coefficient{}, errors.Newf(errors.TypeParsing, "decimal coefficient '%s|%s' cannot have a denominator", num, den)
		}
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Coefficient{}, errors.Wrap(errors.TypeParsing, err, "invalid coefficient '"+num+"'")
		}
		return Float(f), nil
	}

	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return Coefficient{}, errors.Wrap(errors.TypeParsing, err, "invalid coefficient '"+num+"'")
	}

	d := uint64(1)
	if den != "" {
		if d, err = strconv.ParseUint(den, 10, 64); err != nil {
			return Coefficient{}, errors.Wrap(errors.TypeParsing, err, "invalid denominator '"+den+"'")
		}
		if d == 0 {
			return Coefficient{}, errors.Newf(errors.TypeParsing, "zero denominator in '%s|%s'", num, den)
		}
	}

	return Exact(NewRational(n, d)), nil
}
