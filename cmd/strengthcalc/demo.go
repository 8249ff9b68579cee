package main

import (
	"fmt"

	"github.com/notargets/strengthcalc/analysis"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a 1D bar demo problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}

		m, bar, err := analysis.Demo()
		if err != nil {
			return err
		}
		res, err := analysis.Run(m, analysis.Options{Logger: log})
		if err != nil {
			return err
		}

		u := res.Displacements
		stress := bar.E * (u[1] - u[0]) / bar.Length
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Displacement at node 1: %.6e m\n", u[1])
		fmt.Fprintf(out, "Axial stress: %.6e Pa\n", stress)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
