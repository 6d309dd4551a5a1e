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

var buildDot bool

var buildCmd = &cobra.Command{
	Use:   "build <diagram>",
	Short: "Parse a textual diagram description and print it back",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := xadd.New(storeOptions()...)
		id, err := ioxadd.Parse(s, args[0])
		if err != nil {
			return err
		}
		if buildDot {
			ioxadd.PrintDot(cmd.OutOrStdout(), s, id)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), ioxadd.Sprint(s, id))
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildDot, "dot", false, "emit GraphViz DOT instead of the textual form")
	rootCmd.AddCommand(buildCmd)
}
