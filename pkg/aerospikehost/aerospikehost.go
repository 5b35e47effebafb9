// Package aerospikehost adapts a real Aerospike record and client into the
// engine's Record/Host interfaces, so internal/utxoengine can run directly
// against a live cluster instead of only through the Lua UDF path.
package aerospikehost

import (
	"fmt"

	as "github.com/aerospike/aerospike-client-go/v8"
	"github.com/bsv-blockchain/teranode-utxo-engine/internal/ulogger"
	"github.com/bsv-blockchain/teranode-utxo-engine/internal/utxoengine"
)

// Record adapts an Aerospike bin map to utxoengine.Record. Values keep
// whatever concrete type the Aerospike client decoded them as (int64,
// []byte, []interface{}, map[interface{}]interface{}, ...).
type Record struct {
	bins as.BinMap
}

// NewRecord wraps an Aerospike record's bins. A nil record adapts to an
// empty bin map, which dispatch treats as TX_NOT_FOUND.
func NewRecord(rec *as.Record) *Record {
	if rec == nil {
		return &Record{bins: as.BinMap{}}
	}
	return &Record{bins: rec.Bins}
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

// Load fetches a record by key and adapts it.
func Load(client *as.Client, policy *as.BasePolicy, key *as.Key) (*Record, error) {
	rec, err := client.Get(policy, key)
	if err != nil {
		if err == as.ErrKeyNotFound {
			return NewRecord(nil), nil
		}
		return nil, fmt.Errorf("aerospikehost: get %v: %w", key, err)
	}
	return NewRecord(rec), nil
}

// Host commits an adapted Record back to a live Aerospike cluster with a
// single Put, matching §4.8's "commit exactly once" contract.
type Host struct {
	Client *as.Client
	Key    *as.Key
	Policy *as.WritePolicy
	Logger ulogger.Logger
}

func (h *Host) Commit(rec utxoengine.Record) error {
	adapted, ok := rec.(*Record)
	if !ok {
		return fmt.Errorf("aerospikehost: commit requires a *Record, got %T", rec)
	}

	policy := h.Policy
	if policy == nil {
		policy = as.NewWritePolicy(0, 0)
		policy.RecordExistsAction = as.UPDATE
	}

	if err := h.Client.Put(policy, h.Key, adapted.bins); err != nil {
		if h.Logger != nil {
			h.Logger.Errorf("aerospikehost: commit failed for key %v: %v", h.Key, err)
		}
		return err
	}
	return nil
}
