package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/rzbill/fastuuid/internal/audit"
	pebblestore "github.com/rzbill/fastuuid/internal/storage/pebble"
	"github.com/spf13/cobra"
)

func newAuditCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "audit", Short: "Inspect the id audit store"}
	cmd.AddCommand(newAuditStatsCommand(a))
	cmd.AddCommand(newAuditRunsCommand(a))
	return cmd
}

func (a *app) openAudit() (*audit.Store, error) {
	fsync, err := pebblestore.ParseFsyncMode(a.cfg.Audit.Fsync)
	if err != nil {
		return nil, err
	}
	return audit.Open(audit.Options{
		DataDir:       a.cfg.AuditDir(),
		Fsync:         fsync,
		FsyncInterval: time.Duration(a.cfg.Audit.FsyncIntervalMs) * time.Millisecond,
		Logger:        a.logger,
	})
}

func newAuditStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the number of stored ids, generator tails and runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openAudit()
			if err != nil {
				return err
			}
			defer st.Close()
			stats, err := st.Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ids: %d\n", stats.IDs)
			fmt.Fprintf(out, "tails: %d\n", stats.Tails)
			fmt.Fprintf(out, "runs: %d\n", stats.Runs)
			return nil
		},
	}
}

func newAuditRunsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openAudit()
			if err != nil {
				return err
			}
			defer st.Close()
			runs, err := st.Runs(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RUN\tSTARTED\tORDER\tCOUNT\tDUPLICATES\tSEED TAIL")
			for _, r := range runs {
				started := time.UnixMilli(r.StartedAtMs).UTC().Format(time.RFC3339)
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\n", r.ID, started, r.ByteOrder, r.Count, r.Duplicates, r.SeedTail)
			}
			return tw.Flush()
		},
	}
}
