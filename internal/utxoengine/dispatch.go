package utxoengine

import "fmt"

// handlerFunc is the shape every operation implements. It never returns a
// raw error: every path, including pre-check failures, terminates in a
// response map (§7, "the engine never raises or panics out of a handler").
type handlerFunc func(rec Record, host Host, args []any) map[string]any

type namedHandler struct {
	name string
	fn   handlerFunc
}

// buckets groups the twelve operation names by first character, the
// hot-path lookup structure §4.1 recommends: short-string dispatch without
// building a full string-keyed hash map per call.
var buckets = map[byte][]namedHandler{}

func register(name string, fn handlerFunc) {
	buckets[name[0]] = append(buckets[name[0]], namedHandler{name: name, fn: fn})
}

func init() {
	register("spend", handleSpend)
	register("spendMulti", handleSpendMulti)
	register("unspend", handleUnspend)
	register("setMined", handleSetMined)
	register("freeze", handleFreeze)
	register("unfreeze", handleUnfreeze)
	register("reassign", handleReassign)
	register("setConflicting", handleSetConflicting)
	register("preserveUntil", handlePreserveUntil)
	register("setLocked", handleSetLocked)
	register("incrementSpentExtraRecs", handleIncrementSpentExtraRecs)
	register("setDeleteAtHeight", handleSetDeleteAtHeight)
}

func lookup(name string) (handlerFunc, bool) {
	if name == "" {
		return nil, false
	}
	for _, h := range buckets[name[0]] {
		if h.name == name {
			return h.fn, true
		}
	}
	return nil, false
}

// ApplyRecord is the dispatch entry point of §4.1: resolve functionName to
// a handler and forward to it, or fail before ever touching the record.
// The bool result mirrors the module-facing (success|failure) contract;
// on failure, value is a plain error message rather than a response map.
func ApplyRecord(rec Record, functionName *string, args []any, host Host) (bool, any) {
	h := LockRead()
	defer h.Unlock()

	if functionName == nil {
		return false, "function name required"
	}
	fn, ok := lookup(*functionName)
	if !ok {
		return false, fmt.Sprintf("unknown function: %s", *functionName)
	}

	if host == nil {
		return true, errorResponse(errInvalidParameter("host handle required"))
	}
	if rec.NumBins() == 0 {
		return true, errorResponse(errTxNotFound())
	}

	return true, fn(rec, host, args)
}
