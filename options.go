// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"unitcalc/internal/config"
)

type Options struct {
	configPath   string
	precision    int
	trace        bool
	showRational bool
	definitions  string
	noHistory    bool
	historyPath  string
}

func heredoc(text string) string {
	lines := strings.Split(strings.TrimRight(text, " \t\n"), "\n")

	// Find the minimum leading whitespace for non-empty lines
	minIndent := -1
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			leadingSpaces := len(line) - len(strings.TrimLeft(line, " "))
			if minIndent == -1 || leadingSpaces < minIndent {
				minIndent = leadingSpaces
			}
		}
	}

	// Remove the minimum leading whitespace from each line
	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		}
	}

	return strings.TrimLeft(strings.Join(lines, "\n"), "\n")
}

var longHelp = heredoc(`
        calc converts between units defined in a table of definitions.

        Each definition line has the form
          name [coefficient] [unit[^n] ...] [# comment]
        where coefficient is an integer, a decimal or an exact fraction p|q,
        and a body of '!' declares a fundamental unit.

        Units:
          volume (built from cm)
            inch (in), usgallon, gallon (gal), quart (qt), pint (pt), gill
            usquart, uspint, usgill, usfluidounce (usfloz), fluiddram, minimvolume
            uscup, ustablespoon (ustbl, ustbsp, ustblsp), usteaspoon (ustsp)

        Extra definitions can be loaded with --definitions or the
        "definitions" entry of the config file.
`)

func (o *Options) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", config.DefaultPath(), "config file")
	flags.IntVarP(&o.precision, "precision", "p", 4, "display precision for floating point numbers")
	flags.BoolVarP(&o.trace, "trace", "t", false, "trace operations")
	flags.BoolVarP(&o.showRational, "rational", "r", false, "show exact results as numerator/denominator")
	flags.StringVar(&o.definitions, "definitions", "", "file of extra unit definitions")
	flags.BoolVar(&o.noHistory, "no-history", false, "do not record conversions")
	flags.StringVar(&o.historyPath, "history-db", "", "conversion history database")
}

// applyTo overrides cfg with the flags given on the command line
func (o *Options) applyTo(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Precision = o.precision
	}
	if flags.Changed("definitions") {
		cfg.Definitions = o.definitions
	}
	if flags.Changed("history-db") {
		cfg.History.Path = o.historyPath
	}
	if o.noHistory {
		cfg.History.Enabled = false
	}
	if o.trace {
		cfg.Logging.Level = "debug"
	}
}
