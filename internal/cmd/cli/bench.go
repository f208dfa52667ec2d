package cli

import (
	"fmt"

	"github.com/rzbill/fastuuid/internal/bench"
	"github.com/rzbill/fastuuid/pkg/fastuuid"
	"github.com/spf13/cobra"
)

func newBenchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure generator throughput across goroutines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workers := a.cfg.Bench.Workers
			if cmd.Flags().Changed("workers") {
				workers, _ = cmd.Flags().GetInt("workers")
			}
			perWorker := a.cfg.Bench.PerWorker
			if cmd.Flags().Changed("count") {
				perWorker, _ = cmd.Flags().GetInt("count")
			}
			modeName := a.cfg.Bench.Mode
			if cmd.Flags().Changed("mode") {
				modeName, _ = cmd.Flags().GetString("mode")
			}
			check, _ := cmd.Flags().GetBool("check")

			mode, err := bench.ParseMode(modeName)
			if err != nil {
				return err
			}
			opts, err := a.cfg.GeneratorOptions()
			if err != nil {
				return err
			}
			g, err := fastuuid.NewGenerator(opts...)
			if err != nil {
				return err
			}

			rep, err := bench.Run(cmd.Context(), g, bench.Options{
				Workers:   workers,
				PerWorker: perWorker,
				Mode:      mode,
				Check:     check,
			}, a.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode: %s\n", rep.Mode)
			fmt.Fprintf(out, "workers: %d\n", rep.Workers)
			fmt.Fprintf(out, "total: %d\n", rep.Total)
			fmt.Fprintf(out, "elapsed: %s\n", rep.Elapsed)
			fmt.Fprintf(out, "ns/op: %.2f\n", rep.NsPerOp)
			if rep.Checked {
				fmt.Fprintf(out, "distinct: %d\n", rep.Distinct)
				if !rep.Unique() {
					return fmt.Errorf("bench produced %d duplicates", rep.Total-rep.Distinct)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntP("workers", "w", 4, "Number of goroutines")
	cmd.Flags().IntP("count", "n", 100000, "Ids per goroutine")
	cmd.Flags().String("mode", string(bench.ModeNext), "next|hex128|hex128-unchecked|string|string-unchecked")
	cmd.Flags().Bool("check", true, "Keep every value and verify they are distinct")
	return cmd
}
