// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package cmd implements the xadd command-line tool: a thin driver over
// package xadd for building, composing, reducing, and evaluating
// diagrams from the command line, in the spirit of the small cobra
// front-ends the example corpus builds over its libraries (aretw0-
// trellis's cmd/trellis, glossopoeia-boba's compiler front-end).
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "xadd",
	Short: "xadd builds and manipulates eXtended Algebraic Decision Diagrams",
	Long: `xadd is a command-line front-end over package xadd: it builds diagrams
from a textual description, composes them under an operator, prunes
infeasible branches with an LP solver, and evaluates them against a
variable assignment.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		return loadConfig(cfgFile)
	},
}

// Execute runs the root command, exiting the process with status 1 on
// error, mirroring aretw0-trellis's cmd/trellis Execute.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file (default: none)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
