// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dalzilio/xadd"
	"github.com/dalzilio/xadd/ioxadd"
	"github.com/spf13/cobra"
)

var (
	evalAssign []string
	evalStrict bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <diagram>",
	Short: "Evaluate a diagram against a variable assignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assign, err := parseAssignment(evalAssign)
		if err != nil {
			return err
		}
		s := xadd.New(storeOptions()...)
		id, err := ioxadd.Parse(s, args[0])
		if err != nil {
			return err
		}
		v, err := s.Evaluate(id, assign, evalStrict)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

func parseAssignment(kvs []string) (map[string]float64, error) {
	assign := make(map[string]float64, len(kvs))
	for _, kv := range kvs {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("malformed assignment %q, want name=value", kv)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed assignment %q: %w", kv, err)
		}
		assign[name] = v
	}
	return assign, nil
}

func init() {
	evalCmd.Flags().StringSliceVarP(&evalAssign, "set", "s", nil, "variable assignment name=value, repeatable")
	evalCmd.Flags().BoolVar(&evalStrict, "strict", false, "fail if any free variable is left unbound")
	rootCmd.AddCommand(evalCmd)
}
