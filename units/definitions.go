// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"sync"

	"go.uber.org/zap"
)

// Definitions is the built-in table, taken from GNU units
// (/usr/share/units/definitions.units).
var Definitions = []string{
	"cm !", // the only fundamental unit needed for volume
	"inch                    2.54 cm",
	"in                      inch",
	"usgallon                231 in^3 # US liquid measure is derived from",
	"gallon                  usgallon",
	"gal                     gallon          # the British wine gallon of 1707.",
	"quart                   1|4 gallon      # See the \"winegallon\" entry below",
	"pint                    1|2 quart       # more historical information.",
	"gill                    1|4 pint",
	"usquart                 1|4 usgallon",
	"uspint                  1|2 usquart",
	"usgill                  1|4 uspint",
	"usfluidounce            1|16 uspint",
	"usfloz                  usfluidounce",
	"fluiddram               1|8 usfloz",
	"minimvolume             1|60 fluiddram",
	"qt                      quart",
	"pt                      pint",
	"uscup                   8 usfloz",
	"ustablespoon            1|16 uscup",
	"usteaspoon              1|3 ustablespoon",
	"ustbl                   ustablespoon",
	"ustbsp                  ustablespoon",
	"ustblsp                 ustablespoon",
	"ustsp                   usteaspoon",
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry for the built-in table, built on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustLoad(Definitions, zap.NewNop())
	})
	return defaultRegistry
}
