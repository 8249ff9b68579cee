package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/notargets/strengthcalc/analysis"
	"github.com/notargets/strengthcalc/model"
	"github.com/notargets/strengthcalc/partitions"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve a model file (YAML or JSON)",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("model")
		workers, _ := cmd.Flags().GetInt("workers")
		roundRobin, _ := cmd.Flags().GetBool("round-robin")
		asJSON, _ := cmd.Flags().GetBool("json")

		m, err := model.Load(path)
		if err != nil {
			return err
		}
		log.Info("model loaded", "path", path, "elements", len(m.Elements), "dof", m.NumDOF())

		opts := analysis.Options{Workers: workers, Logger: log}
		if roundRobin {
			opts.Strategy = partitions.RoundRobin
		}
		res, err := analysis.Run(m, opts)
		if err != nil {
			log.Error("analysis failed", "error", err)
			return err
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		printResult(cmd.OutOrStdout(), m, res)
		return nil
	},
}

func printResult(w io.Writer, m *analysis.Model, res *analysis.Result) {
	fmt.Fprintln(w, "Displacements:")
	for i, u := range res.Displacements {
		fmt.Fprintf(w, "  dof %d: %.6e m\n", i, u)
	}
	fmt.Fprintln(w, "Element stresses:")
	for i, s := range res.Stresses {
		fmt.Fprintf(w, "  element %d: %.6e Pa\n", i, s)
	}
	fmt.Fprintln(w, "Reactions:")
	for i, r := range res.Reactions {
		fmt.Fprintf(w, "  dof %d: %.6e N\n", m.Fixed[i], r)
	}
}

func init() {
	runCmd.Flags().StringP("model", "f", "", "Model file (.yaml, .yml or .json)")
	runCmd.Flags().Int("workers", 1, "Assembly workers; more than 1 assembles partitions concurrently")
	runCmd.Flags().Bool("round-robin", false, "Partition elements round-robin instead of in blocks")
	runCmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = runCmd.MarkFlagRequired("model")
	rootCmd.AddCommand(runCmd)
}
