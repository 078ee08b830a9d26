// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"unitcalc/internal/errors"
)

func newHistoryCmd(calc *calculator) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return errors.Newf(errors.TypeInput, "count must be positive, got %d", limit)
			}

			history, err := openHistory(calc.config.History.Path)
			if err != nil {
				return err
			}
			defer history.Close()

			entries, err := history.recent(limit)
			if err != nil {
				return err
			}
			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s = %s %s\n",
					entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					entry.Amount, entry.From, entry.Result, entry.To)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "count", "n", 10, "number of conversions to show")

	return cmd
}
