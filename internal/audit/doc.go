// Package audit records generated ids in a Pebble store and reports ids that
// were seen before, within one batch, one run, or across runs.
//
// It is an offline check of the uniqueness guarantee. Nothing read from the
// store ever feeds back into a Generator.
//
// Example:
//
//	st, _ := audit.Open(audit.Options{DataDir: "./audit", Fsync: pebblestore.FsyncModeInterval})
//	defer st.Close()
//	run, _ := st.BeginRun(g.Seed(), g.ByteOrder().String())
//	res, _ := st.Record(ctx, &run, ids)
//	_ = st.FinishRun(run)
package audit
