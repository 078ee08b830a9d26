// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitcalc/internal/config"
	"unitcalc/internal/errors"
	"unitcalc/internal/logging"
	"unitcalc/units"
)

// calculator is what every command works with once flags and config are read
type calculator struct {
	options  *Options
	config   *config.Config
	logger   *zap.Logger
	registry *units.Registry
}

func (c *calculator) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.options.configPath)
	if err != nil {
		return err
	}
	c.options.applyTo(cmd, cfg)
	c.config = cfg

	if c.logger, err = logging.New(cfg.Logging); err != nil {
		return errors.Wrap(errors.TypeConfig, err, "failed to initialize logging")
	}

	extra, err := cfg.DefinitionLines()
	if err != nil {
		return err
	}
	if len(extra) == 0 {
		c.registry = units.Default()
		return nil
	}

	lines := append(append([]string(nil), units.Definitions...), extra...)
	c.registry, err = units.Load(lines, c.logger)
	return err
}

func (c *calculator) teardown(_ *cobra.Command, _ []string) {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

func newRootCmd() *cobra.Command {
	calc := &calculator{options: &Options{}}

	rootCmd := &cobra.Command{
		Use:               "calc",
		Short:             "Convert between units of measure",
		Long:              longHelp,
		SilenceUsage:      true,
		PersistentPreRunE: calc.setup,
		PersistentPostRun: calc.teardown,
	}
	calc.options.addFlags(rootCmd)

	rootCmd.AddCommand(newConvertCmd(calc))
	rootCmd.AddCommand(newUnitsCmd(calc))
	rootCmd.AddCommand(newHistoryCmd(calc))

	return rootCmd
}

func newConvertCmd(calc *calculator) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [AMOUNT] FROM TO",
		Short: "Convert an amount (default 1) of FROM into TO",
		Example: heredoc(`
            calc convert in cm
            calc convert 3 quart pint
            calc convert -r ustbsp ustsp
		`),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amountText := "1"
			if len(args) == 3 {
				amountText, args = args[0], args[1:]
			}
			amount, ok := parseNumber(amountText)
			if !ok {
				return errors.Newf(errors.TypeInput, "cannot parse amount '%s'", amountText)
			}

			return calc.convert(cmd, amount, amountText, args[0], args[1])
		},
	}
}

func (c *calculator) convert(cmd *cobra.Command, amount Number, amountText, from, to string) error {
	conversion, err := units.Convert(c.registry, from, to)
	if err != nil {
		return err
	}
	value := convertValue(amount, conversion)
	c.logger.Debug("converted",
		zap.String("from", from),
		zap.String("to", to),
		zap.Stringer("coefficient", conversion.Coefficient),
		zap.Bool("commensurate", conversion.Commensurate()),
		zap.Stringer("value", value),
	)

	result := value.format(c.config.Precision, c.options.showRational)
	fmt.Fprintln(cmd.OutOrStdout(), result)

	if !c.config.History.Enabled {
		return nil
	}
	history, err := openHistory(c.config.History.Path)
	if err != nil {
		c.logger.Warn("conversion not recorded", zap.Error(err))
		return nil
	}
	defer history.Close()

	if err := history.record(from, to, amountText, result); err != nil {
		c.logger.Warn("conversion not recorded", zap.Error(err))
	}
	return nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Error: %v, exiting\n", r)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
