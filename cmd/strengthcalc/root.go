package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/notargets/strengthcalc/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "strengthcalc",
	Short:         "strengthcalc is a minimal finite-element solver for bar structures",
	Long:          `strengthcalc assembles bar elements into a global stiffness matrix, applies fixed supports and point loads, and solves for nodal displacements.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// newLogger builds the stderr logger from the --log-level flag
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	lvl, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(lvl)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}
