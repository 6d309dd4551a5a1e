// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"fmt"

	"github.com/dalzilio/xadd"
	"github.com/dalzilio/xadd/ioxadd"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <operator> <left-diagram> <right-diagram>",
	Short: "Compose two diagrams under a binary operator",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := xadd.ParseOperator(args[0])
		if err != nil {
			return err
		}
		s := xadd.New(storeOptions()...)
		left, err := ioxadd.Parse(s, args[1])
		if err != nil {
			return fmt.Errorf("left operand: %w", err)
		}
		right, err := ioxadd.Parse(s, args[2])
		if err != nil {
			return fmt.Errorf("right operand: %w", err)
		}
		res, err := s.Apply(op, left, right)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ioxadd.Sprint(s, res))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
