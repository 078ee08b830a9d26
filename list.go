// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"unitcalc/enumerable"
	"unitcalc/internal/errors"
	"unitcalc/units"
)

func newUnitsCmd(calc *calculator) *cobra.Command {
	var fundamental bool

	cmd := &cobra.Command{
		Use:   "units [NAME...]",
		Short: "Show unit definitions (all of them by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = calc.registry.Names()
			}

			lines, err := calc.describe(names)
			if err != nil {
				return err
			}
			if fundamental {
				lines = enumerable.Filter(lines, func(line string) bool {
					return strings.HasSuffix(line, " = "+units.Fundamental)
				})
			}

			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&fundamental, "fundamental", "f", false, "only show fundamental units")

	return cmd
}

// describe renders "name = definition" for each name, in the given order
func (c *calculator) describe(names []string) ([]string, error) {
	for _, name := range names {
		if _, ok := c.registry.Lookup(name); !ok {
			return nil, errors.Newf(errors.TypeNotFound, "no unit found for %s", name).WithContext("unit", name)
		}
	}

	return enumerable.Map(names, func(name string) string {
		e, _ := c.registry.Lookup(name)
		if b, ok := e.(units.Basic); ok && string(b) == name {
			return name + " = " + units.Fundamental
		}
		return name + " = " + e.String()
	}), nil
}
