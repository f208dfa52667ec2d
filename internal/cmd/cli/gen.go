package cli

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rzbill/fastuuid/internal/audit"
	cfgpkg "github.com/rzbill/fastuuid/internal/config"
	pebblestore "github.com/rzbill/fastuuid/internal/storage/pebble"
	"github.com/rzbill/fastuuid/pkg/fastuuid"
	logpkg "github.com/rzbill/fastuuid/pkg/log"
	"github.com/spf13/cobra"
)

// auditChunk is the number of ids written per audit batch.
const auditChunk = 4096

func newGenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			unchecked, _ := cmd.Flags().GetBool("unchecked")
			if count < 0 {
				return fmt.Errorf("--count must not be negative")
			}

			cfg := a.cfg
			if cmd.Flags().Changed("format") {
				cfg.Format, _ = cmd.Flags().GetString("format")
			}
			if cmd.Flags().Changed("byte-order") {
				cfg.Generator.ByteOrder, _ = cmd.Flags().GetString("byte-order")
			}
			if cmd.Flags().Changed("counter") {
				cfg.Generator.CounterStart, _ = cmd.Flags().GetString("counter")
			}
			if cmd.Flags().Changed("audit") {
				cfg.Audit.Enabled, _ = cmd.Flags().GetBool("audit")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			opts, err := cfg.GeneratorOptions()
			if err != nil {
				return err
			}
			g, err := fastuuid.NewGenerator(opts...)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			defer w.Flush()

			start := time.Now()
			if cfg.Audit.Enabled {
				err = genAudited(cmd, a, cfg, g, unchecked, count, w)
			} else {
				err = genPlain(g, cfg.Format, unchecked, count, w)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("generated ids",
				logpkg.Int("count", count),
				logpkg.Str("format", cfg.Format),
				logpkg.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 1, "Number of ids to generate")
	cmd.Flags().String("format", cfgpkg.FormatHex128, "Output format: hex128|raw|uuid")
	cmd.Flags().Bool("unchecked", false, "Skip UTF-8 validation of hex128 output")
	cmd.Flags().String("byte-order", "little", "Counter byte order: little|big")
	cmd.Flags().String("counter", "seed", "Counter start: seed|zero")
	cmd.Flags().Bool("audit", false, "Record ids in the audit store and fail on duplicates")
	return cmd
}

// genPlain uses the generator's own entry points, so --unchecked picks the
// trusted variant.
func genPlain(g *fastuuid.Generator, format string, unchecked bool, count int, w *bufio.Writer) error {
	var buf [fastuuid.Hex128Size]byte
	for i := 0; i < count; i++ {
		var line string
		switch format {
		case cfgpkg.FormatHex128:
			if unchecked {
				line = g.Hex128IntoUnchecked(&buf)
			} else {
				b, err := g.Hex128Into(&buf)
				if err != nil {
					return err
				}
				line = string(b)
			}
		case cfgpkg.FormatUUID:
			line = g.UUID().String()
		default:
			id := g.Next()
			line = hex.EncodeToString(id[:])
		}
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// genAudited draws raw ids so they can be stored, then encodes them.
func genAudited(cmd *cobra.Command, a *app, cfg cfgpkg.Config, g *fastuuid.Generator, unchecked bool, count int, w *bufio.Writer) error {
	fsync, err := pebblestore.ParseFsyncMode(cfg.Audit.Fsync)
	if err != nil {
		return err
	}
	st, err := audit.Open(audit.Options{
		DataDir:       cfg.AuditDir(),
		Fsync:         fsync,
		FsyncInterval: time.Duration(cfg.Audit.FsyncIntervalMs) * time.Millisecond,
		Logger:        a.logger,
	})
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.BeginRun(g.Seed(), g.ByteOrder().String())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	chunk := make([][fastuuid.Size]byte, 0, auditChunk)
	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		if _, err := st.Record(ctx, &run, chunk); err != nil {
			return err
		}
		chunk = chunk[:0]
		return nil
	}

	var buf [fastuuid.Hex128Size]byte
	for i := 0; i < count; i++ {
		id := g.Next()
		chunk = append(chunk, id)
		var line string
		switch cfg.Format {
		case cfgpkg.FormatHex128:
			b, err := encodeHex128(&buf, id, unchecked)
			if err != nil {
				return err
			}
			line = string(b)
		case cfgpkg.FormatUUID:
			line = fastuuid.ToUUID(id).String()
		default:
			line = hex.EncodeToString(id[:])
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if len(chunk) == auditChunk {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}
	if err := st.FinishRun(run); err != nil {
		return err
	}
	if run.Duplicates > 0 {
		return fmt.Errorf("audit found %d duplicate ids in run %d", run.Duplicates, run.ID)
	}
	return nil
}

// encodeHex128 encodes an id that was already drawn, honouring --unchecked.
func encodeHex128(dst *[fastuuid.Hex128Size]byte, id [fastuuid.Size]byte, unchecked bool) ([]byte, error) {
	if unchecked {
		return fastuuid.EncodeHex128(dst, id), nil
	}
	return fastuuid.EncodeHex128Checked(dst, id)
}
