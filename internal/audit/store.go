package audit

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	pebblestore "github.com/rzbill/fastuuid/internal/storage/pebble"
	"github.com/rzbill/fastuuid/pkg/fastuuid"
	logpkg "github.com/rzbill/fastuuid/pkg/log"
)

// Options for opening a Store.
type Options struct {
	DataDir       string
	Fsync         pebblestore.FsyncMode
	FsyncInterval time.Duration
	Logger        logpkg.Logger
}

// Run describes one generator session recorded in the store.
type Run struct {
	ID           uint64 `json:"id"`
	StartedAtMs  int64  `json:"startedAtMs"`
	FinishedAtMs int64  `json:"finishedAtMs,omitempty"`
	// SeedTail is the hex form of the constant id bytes 8..23.
	SeedTail   string `json:"seedTail"`
	ByteOrder  string `json:"byteOrder"`
	Count      uint64 `json:"count"`
	Duplicates uint64 `json:"duplicates"`
}

// Result summarises one Record call.
type Result struct {
	Written    int
	Duplicates int
}

// Stats summarises the whole store.
type Stats struct {
	IDs   uint64
	Tails int
	Runs  int
}

// Store is a Pebble-backed id audit log.
type Store struct {
	db     *pebblestore.DB
	logger logpkg.Logger
	// mu serialises check-then-set across Record calls.
	mu sync.Mutex
}

// Open opens or creates the store in opts.DataDir.
func Open(opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger(logpkg.WithOutput(logpkg.NullOutput{}))
	}
	s := &Store{logger: logger.WithComponent("audit")}
	db, err := pebblestore.Open(pebblestore.Options{
		DataDir:       opts.DataDir,
		Fsync:         opts.Fsync,
		FsyncInterval: opts.FsyncInterval,
		Metrics:       s,
	})
	if err != nil {
		return nil, err
	}
	s.db = db
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// ObserveRead implements pebblestore.MetricsHook.
func (s *Store) ObserveRead(time.Duration, int) {}

// ObserveBatchCommit implements pebblestore.MetricsHook.
func (s *Store) ObserveBatchCommit(elapsed time.Duration, numOps int, bytes int) {
	s.logger.Debug("batch committed",
		logpkg.Int("ops", numOps),
		logpkg.Int("bytes", bytes),
		logpkg.Duration("elapsed", elapsed),
	)
}

// BeginRun allocates the next run id and stores its metadata.
func (s *Store) BeginRun(seedTail [fastuuid.Size - 8]byte, byteOrder string) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, err := s.lastRunID()
	if err != nil {
		return Run{}, err
	}
	run := Run{
		ID:          last + 1,
		StartedAtMs: time.Now().UnixMilli(),
		SeedTail:    hex.EncodeToString(seedTail[:]),
		ByteOrder:   byteOrder,
	}
	if err := s.putRun(run); err != nil {
		return Run{}, err
	}
	s.logger.Info("audit run started", logpkg.Uint64("run", run.ID), logpkg.Str("seed_tail", run.SeedTail))
	return run, nil
}

// FinishRun stamps the finish time and stores the final counts.
func (s *Store) FinishRun(run Run) error {
	run.FinishedAtMs = time.Now().UnixMilli()
	if err := s.putRun(run); err != nil {
		return err
	}
	s.logger.Info("audit run finished",
		logpkg.Uint64("run", run.ID),
		logpkg.Uint64("count", run.Count),
		logpkg.Uint64("duplicates", run.Duplicates),
	)
	return nil
}

// Record writes ids in one batch and counts those already present, either
// committed earlier or earlier in the same slice. run counters are updated.
func (s *Store) Record(ctx context.Context, run *Run, ids [][fastuuid.Size]byte) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res Result
	b := s.db.NewBatch()
	defer b.Close()

	var runID []byte
	if run != nil {
		runID = appendBE8(nil, run.ID)
	}
	for _, id := range ids {
		key := keyID(id)
		seen, err := s.db.Has(b, key)
		if err != nil {
			return Result{}, fmt.Errorf("audit: lookup: %w", err)
		}
		if seen {
			res.Duplicates++
			s.logger.Warn("duplicate id", logpkg.Str("id", hex.EncodeToString(id[:])))
			continue
		}
		if err := b.Set(key, runID, nil); err != nil {
			return Result{}, err
		}
		res.Written++
	}
	if err := s.db.CommitBatch(ctx, b); err != nil {
		return Result{}, fmt.Errorf("audit: commit: %w", err)
	}
	if run != nil {
		run.Count += uint64(res.Written + res.Duplicates)
		run.Duplicates += uint64(res.Duplicates)
	}
	return res, nil
}

// Contains reports whether id was recorded.
func (s *Store) Contains(id [fastuuid.Size]byte) (bool, error) {
	return s.db.Has(nil, keyID(id))
}

// Runs lists every run in id order.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	var runs []Run
	err := s.scan(ctx, runPrefix, func(_, value []byte) error {
		var r Run
		if err := json.Unmarshal(value, &r); err != nil {
			return fmt.Errorf("audit: decode run: %w", err)
		}
		runs = append(runs, r)
		return nil
	})
	return runs, err
}

// Stats counts stored ids, distinct seed tails and runs.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	tails := make(map[[fastuuid.Size - 8]byte]struct{})
	err := s.scan(ctx, idPrefix, func(key, _ []byte) error {
		var tail [fastuuid.Size - 8]byte
		copy(tail[:], key[len(idPrefix)+8:])
		tails[tail] = struct{}{}
		st.IDs++
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	st.Tails = len(tails)
	err = s.scan(ctx, runPrefix, func(_, _ []byte) error {
		st.Runs++
		return nil
	})
	return st, err
}

func (s *Store) putRun(run Run) error {
	b, err := json.Marshal(run)
	if err != nil {
		return err
	}
	return s.db.Set(keyRun(run.ID), b)
}

func (s *Store) lastRunID() (uint64, error) {
	it, err := s.db.NewIter(&pebble.IterOptions{LowerBound: runPrefix, UpperBound: prefixEnd(runPrefix)})
	if err != nil {
		return 0, err
	}
	defer it.Close()
	if !it.Last() {
		return 0, it.Error()
	}
	key := it.Key()
	return binary.BigEndian.Uint64(key[len(runPrefix):]), nil
}

func (s *Store) scan(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error {
	it, err := s.db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: prefixEnd(prefix)})
	if err != nil {
		return err
	}
	defer it.Close()
	for it.First(); it.Valid(); it.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(it.Key(), it.Value()); err != nil {
			return err
		}
	}
	return it.Error()
}
