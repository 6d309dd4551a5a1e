// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"fmt"

	"github.com/dalzilio/xadd"
	"github.com/dalzilio/xadd/ioxadd"
	"github.com/dalzilio/xadd/symbolic"
	"github.com/spf13/cobra"
)

var assumeFlags []string

var reduceLPCmd = &cobra.Command{
	Use:   "reduce-lp <diagram>",
	Short: "Prune infeasible branches from a diagram using the LP backend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := xadd.New(storeOptions()...)
		id, err := ioxadd.Parse(s, args[0])
		if err != nil {
			return err
		}
		preconditions := make([]*symbolic.Expr, 0, len(assumeFlags))
		for _, ineq := range assumeFlags {
			expr, err := ioxadd.ParseInequality(ineq)
			if err != nil {
				return err
			}
			preconditions = append(preconditions, expr)
		}
		res, err := s.ReduceLP(id, preconditions...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ioxadd.Sprint(s, res))
		return nil
	},
}

func init() {
	reduceLPCmd.Flags().StringArrayVar(&assumeFlags, "assume", nil, "linear inequality (e.g. \"x >= 0\") assumed to hold, may be repeated")
	rootCmd.AddCommand(reduceLPCmd)
}
