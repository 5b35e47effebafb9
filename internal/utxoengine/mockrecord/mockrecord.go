// Package mockrecord provides the in-memory Record and Host test doubles
// described in the engine's design notes: a bin-name-to-value map standing
// in for a real key-value store record, and a host whose Commit can be
// made to fail on demand.
package mockrecord

import "github.com/bsv-blockchain/teranode-utxo-engine/internal/utxoengine"

// Record is a minimal in-memory implementation of utxoengine.Record.
type Record struct {
	bins map[string]any
}

// New returns an empty record.
func New() *Record {
	return &Record{bins: map[string]any{}}
}

// NewWithBins returns a record pre-populated with bins.
func NewWithBins(bins map[string]any) *Record {
	r := New()
	for k, v := range bins {
		r.bins[k] = v
	}
	return r
}

func (r *Record) Get(bin string) any {
	return r.bins[bin]
}

func (r *Record) Set(bin string, value any) error {
	if value == nil {
		delete(r.bins, bin)
		return nil
	}
	r.bins[bin] = value
	return nil
}

func (r *Record) NumBins() int {
	return len(r.bins)
}

// Host is a Commit double. CommitErr, if set, is returned by every Commit
// call instead of nil; Commits counts how many times Commit was called.
type Host struct {
	CommitErr error
	Commits   int
}

func (h *Host) Commit(_ utxoengine.Record) error {
	h.Commits++
	return h.CommitErr
}
