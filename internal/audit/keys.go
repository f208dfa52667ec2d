package audit

import (
	"encoding/binary"

	"github.com/rzbill/fastuuid/pkg/fastuuid"
)

// Keyspace (byte-wise, lexicographically sortable):
// - id/{24 raw id bytes}  -> run_be8
// - run/{run_be8}         -> JSON Run

var (
	idPrefix  = []byte("id/")
	runPrefix = []byte("run/")
)

func appendBE8(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// keyID builds the key of a raw id.
func keyID(id [fastuuid.Size]byte) []byte {
	k := make([]byte, 0, len(idPrefix)+fastuuid.Size)
	k = append(k, idPrefix...)
	k = append(k, id[:]...)
	return k
}

// keyRun builds the metadata key of a run.
func keyRun(run uint64) []byte {
	k := make([]byte, 0, len(runPrefix)+8)
	k = append(k, runPrefix...)
	return appendBE8(k, run)
}

// prefixEnd returns the smallest key greater than every key with prefix p.
func prefixEnd(p []byte) []byte {
	end := append([]byte(nil), p...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
