// Package bench measures generator throughput across goroutines and checks
// that every produced value is distinct.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/rzbill/fastuuid/pkg/fastuuid"
	logpkg "github.com/rzbill/fastuuid/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Mode selects the generator entry point exercised by each worker.
type Mode string

const (
	ModeNext            Mode = "next"
	ModeHex128          Mode = "hex128"
	ModeHex128Unchecked Mode = "hex128-unchecked"
	ModeString          Mode = "string"
	ModeStringUnchecked Mode = "string-unchecked"
)

// Modes lists every supported mode.
var Modes = []Mode{ModeNext, ModeHex128, ModeHex128Unchecked, ModeString, ModeStringUnchecked}

// ParseMode validates s.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("bench: unknown mode %q", s)
}

// Options configures Run.
type Options struct {
	Workers   int
	PerWorker int
	Mode      Mode
	// Check keeps every value and counts distinct ones after the run.
	Check bool
}

// Report is the outcome of Run.
type Report struct {
	Mode     Mode
	Workers  int
	Total    int
	Elapsed  time.Duration
	NsPerOp  float64
	Checked  bool
	Distinct int
}

// Unique reports whether every value was distinct. It is false when the
// run was not checked.
func (r Report) Unique() bool { return r.Checked && r.Distinct == r.Total }

// checkEvery bounds how often workers look at ctx.
const checkEvery = 1024

// Run starts opts.Workers goroutines that each call the selected entry
// point opts.PerWorker times on g.
func Run(ctx context.Context, g *fastuuid.Generator, opts Options, logger logpkg.Logger) (Report, error) {
	if opts.Workers <= 0 || opts.PerWorker <= 0 {
		return Report{}, fmt.Errorf("bench: workers and per-worker count must be positive")
	}
	if opts.Mode == "" {
		opts.Mode = ModeNext
	}
	if _, err := ParseMode(string(opts.Mode)); err != nil {
		return Report{}, err
	}
	if logger == nil {
		logger = logpkg.NewLogger(logpkg.WithOutput(logpkg.NullOutput{}))
	}
	logger = logger.WithComponent("bench")

	// each value is kept as its 36-byte text, or as the 24 raw bytes for next
	results := make([][][fastuuid.Hex128Size]byte, opts.Workers)
	eg, ectx := errgroup.WithContext(ctx)
	start := time.Now()
	for w := 0; w < opts.Workers; w++ {
		w := w
		eg.Go(func() error {
			var out [][fastuuid.Hex128Size]byte
			if opts.Check {
				out = make([][fastuuid.Hex128Size]byte, 0, opts.PerWorker)
			}
			var buf [fastuuid.Hex128Size]byte
			for i := 0; i < opts.PerWorker; i++ {
				if i%checkEvery == 0 {
					if err := ectx.Err(); err != nil {
						return err
					}
				}
				if err := step(g, opts.Mode, &buf); err != nil {
					return err
				}
				if opts.Check {
					out = append(out, buf)
				}
			}
			results[w] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}
	elapsed := time.Since(start)

	total := opts.Workers * opts.PerWorker
	rep := Report{
		Mode:    opts.Mode,
		Workers: opts.Workers,
		Total:   total,
		Elapsed: elapsed,
		NsPerOp: float64(elapsed.Nanoseconds()) / float64(total),
		Checked: opts.Check,
	}
	if opts.Check {
		seen := make(map[[fastuuid.Hex128Size]byte]struct{}, total)
		for _, out := range results {
			for _, v := range out {
				seen[v] = struct{}{}
			}
		}
		rep.Distinct = len(seen)
		if !rep.Unique() {
			logger.Error("duplicate values generated",
				logpkg.Int("total", total),
				logpkg.Int("distinct", rep.Distinct),
			)
		}
	}
	logger.Debug("bench finished",
		logpkg.Str("mode", string(rep.Mode)),
		logpkg.Int("workers", rep.Workers),
		logpkg.Int("total", rep.Total),
		logpkg.Duration("elapsed", rep.Elapsed),
	)
	return rep, nil
}

func step(g *fastuuid.Generator, mode Mode, buf *[fastuuid.Hex128Size]byte) error {
	switch mode {
	case ModeNext:
		id := g.Next()
		copy(buf[:], id[:])
	case ModeHex128:
		if _, err := g.Hex128Into(buf); err != nil {
			return err
		}
	case ModeHex128Unchecked:
		g.Hex128IntoUnchecked(buf)
	case ModeString:
		s, err := g.Hex128String()
		if err != nil {
			return err
		}
		copy(buf[:], s)
	case ModeStringUnchecked:
		copy(buf[:], g.Hex128StringUnchecked())
	}
	return nil
}
