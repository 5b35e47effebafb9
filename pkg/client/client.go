// Package teranode is the generalised successor to the original
// ClientWrapper example: it still hands callers one typed method per UTXO
// operation, but the actual call is dispatched through a Backend, so the
// same Client can drive a live Aerospike cluster's registered Lua UDF or
// the embedded internal/utxoengine package in-process.
package teranode

import (
	"fmt"
	"sync"
	"time"

	as "github.com/aerospike/aerospike-client-go/v8"
	"github.com/bsv-blockchain/teranode-utxo-engine/internal/metrics"
	"github.com/bsv-blockchain/teranode-utxo-engine/internal/ulogger"
	"github.com/bsv-blockchain/teranode-utxo-engine/internal/utxoengine"
)

// Backend is whatever a Client dispatches a named operation through.
type Backend interface {
	Call(key *as.Key, functionName string, args []any) (map[string]any, error)
}

// Client provides type-safe access to the twelve UTXO operations, same as
// the original ClientWrapper, but against any Backend.
type Client struct {
	backend Backend
}

// NewClient wraps a Backend.
func NewClient(backend Backend) *Client {
	return &Client{backend: backend}
}

// call dispatches through the backend and records the same host-facing
// metrics a live Aerospike UDF commit would: the wall-clock cost of the
// round trip, and every delete-at-height signal the response carries.
func (c *Client) call(key *as.Key, functionName string, args ...any) (map[string]any, error) {
	start := time.Now()
	resp, err := c.backend.Call(key, functionName, args)
	metrics.CommitDuration.Observe(time.Since(start).Seconds())

	if signal, ok := resp["signal"].(string); ok && signal != "" {
		metrics.DAHSignalsTotal.WithLabelValues(signal).Inc()
	}

	return resp, err
}

// Spend marks a single UTXO as spent.
func (c *Client) Spend(key *as.Key, offset int64, utxoHash, spendingData []byte, ignoreConflicting, ignoreLocked bool, currentBlockHeight, blockHeightRetention int64) (map[string]any, error) {
	return c.call(key, "spend", offset, utxoHash, spendingData, ignoreConflicting, ignoreLocked, currentBlockHeight, blockHeightRetention)
}

// SpendMulti marks multiple UTXOs as spent in one operation.
func (c *Client) SpendMulti(key *as.Key, spends []map[string]any, ignoreConflicting, ignoreLocked bool, currentBlockHeight, blockHeightRetention int64) (map[string]any, error) {
	// Both backends expect a plain []any of per-item maps: AerospikeBackend's
	// toAerospikeValue only special-cases that shape, and the embedded
	// engine's asList only accepts []any/[]int64, not []map[string]any.
	items := make([]any, len(spends))
	for i, s := range spends {
		items[i] = s
	}
	return c.call(key, "spendMulti", items, ignoreConflicting, ignoreLocked, currentBlockHeight, blockHeightRetention)
}

// Unspend reverses a spend operation.
func (c *Client) Unspend(key *as.Key, offset int64, utxoHash []byte, currentBlockHeight, blockHeightRetention int64) (map[string]any, error) {
	return c.call(key, "unspend", offset, utxoHash, currentBlockHeight, blockHeightRetention)
}

// Freeze prevents a UTXO from being spent.
func (c *Client) Freeze(key *as.Key, offset int64, utxoHash []byte) (map[string]any, error) {
	return c.call(key, "freeze", offset, utxoHash)
}

// Unfreeze allows a previously frozen UTXO to be spent again.
func (c *Client) Unfreeze(key *as.Key, offset int64, utxoHash []byte) (map[string]any, error) {
	return c.call(key, "unfreeze", offset, utxoHash)
}

// Reassign changes a frozen UTXO's locking hash.
func (c *Client) Reassign(key *as.Key, offset int64, utxoHash, newUtxoHash []byte, blockHeight, spendableAfter int64) (map[string]any, error) {
	return c.call(key, "reassign", offset, utxoHash, newUtxoHash, blockHeight, spendableAfter)
}

// SetMined tracks the block height and ID a transaction was mined into.
func (c *Client) SetMined(key *as.Key, blockID, blockHeight, subtreeIdx, currentBlockHeight, blockHeightRetention int64, onLongestChain, unsetMined bool) (map[string]any, error) {
	return c.call(key, "setMined", blockID, blockHeight, subtreeIdx, currentBlockHeight, blockHeightRetention, onLongestChain, unsetMined)
}

// SetConflicting marks or clears a transaction's conflicting flag.
func (c *Client) SetConflicting(key *as.Key, setValue bool, currentBlockHeight, blockHeightRetention int64) (map[string]any, error) {
	return c.call(key, "setConflicting", setValue, currentBlockHeight, blockHeightRetention)
}

// SetLocked locks or unlocks a transaction against spending.
func (c *Client) SetLocked(key *as.Key, setValue bool) (map[string]any, error) {
	return c.call(key, "setLocked", setValue)
}

// PreserveUntil defers deletion of a record until at least blockHeight.
func (c *Client) PreserveUntil(key *as.Key, blockHeight int64) (map[string]any, error) {
	return c.call(key, "preserveUntil", blockHeight)
}

// IncrementSpentExtraRecs adjusts the extra-record counter used for
// paginated spend tracking.
func (c *Client) IncrementSpentExtraRecs(key *as.Key, inc, currentBlockHeight, blockHeightRetention int64) (map[string]any, error) {
	return c.call(key, "incrementSpentExtraRecs", inc, currentBlockHeight, blockHeightRetention)
}

// SetDeleteAtHeight re-runs the delete-at-height evaluator without any
// other side effect.
func (c *Client) SetDeleteAtHeight(key *as.Key, currentBlockHeight, blockHeightRetention int64) (map[string]any, error) {
	return c.call(key, "setDeleteAtHeight", currentBlockHeight, blockHeightRetention)
}

// AerospikeBackend dispatches through a live cluster's registered Lua UDF,
// the same client.Execute call the original ClientWrapper made directly.
type AerospikeBackend struct {
	Client     *as.Client
	Policy     *as.WritePolicy
	UDFPackage string
}

func (b *AerospikeBackend) Call(key *as.Key, functionName string, args []any) (map[string]any, error) {
	policy := b.Policy
	if policy == nil {
		policy = as.NewWritePolicy(0, 0)
	}
	pkg := b.UDFPackage
	if pkg == "" {
		pkg = "teranode"
	}

	values := make([]as.Value, len(args))
	for i, a := range args {
		values[i] = toAerospikeValue(a)
	}

	res, err := b.Client.Execute(policy, key, pkg, functionName, values...)
	if err != nil {
		return nil, fmt.Errorf("aerospike execute %s: %w", functionName, err)
	}
	return normalizeResult(res), nil
}

func toAerospikeValue(v any) as.Value {
	switch t := v.(type) {
	case []byte:
		return as.NewBytesValue(t)
	case int64:
		return as.NewLongValue(t)
	case int:
		return as.NewLongValue(int64(t))
	case []any:
		return as.NewListValue(t)
	default:
		return as.NewValue(v)
	}
}

func normalizeResult(res any) map[string]any {
	switch m := res.(type) {
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprintf("%v", k)] = v
		}
		return out
	case map[string]any:
		return m
	default:
		return nil
	}
}

// EmbeddedBackend drives internal/utxoengine directly against an
// in-process record store, for hosts that embed the engine instead of
// registering it as a Lua UDF (e.g. cmd/utxoengine-demo, integration
// tests).
type EmbeddedBackend struct {
	mu     sync.Mutex
	store  map[string]*memRecord
	Logger ulogger.Logger
}

// NewEmbeddedBackend returns an empty in-process backend.
func NewEmbeddedBackend() *EmbeddedBackend {
	return &EmbeddedBackend{store: map[string]*memRecord{}}
}

// Seed installs bins for a key before the first call touches it, used to
// set up fixtures without going through a "create" operation.
func (b *EmbeddedBackend) Seed(key *as.Key, bins map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.store[string(key.Digest())] = &memRecord{bins: cloneBins(bins)}
}

func (b *EmbeddedBackend) Call(key *as.Key, functionName string, args []any) (map[string]any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	digest := string(key.Digest())
	rec, ok := b.store[digest]
	if !ok {
		rec = &memRecord{bins: map[string]any{}}
		b.store[digest] = rec
	}

	name := functionName
	handled, resp := utxoengine.ApplyRecord(rec, &name, args, &memHost{})
	if !handled && b.Logger != nil {
		b.Logger.Warnf("embedded backend: function %s unavailable", functionName)
	}

	m, _ := resp.(map[string]any)
	return m, nil
}

type memRecord struct {
	bins map[string]any
}

func (r *memRecord) Get(bin string) any { return r.bins[bin] }

func (r *memRecord) Set(bin string, value any) error {
	if value == nil {
		delete(r.bins, bin)
		return nil
	}
	r.bins[bin] = value
	return nil
}

func (r *memRecord) NumBins() int { return len(r.bins) }

type memHost struct{}

func (*memHost) Commit(utxoengine.Record) error { return nil }

func cloneBins(bins map[string]any) map[string]any {
	out := make(map[string]any, len(bins))
	for k, v := range bins {
		out[k] = v
	}
	return out
}
