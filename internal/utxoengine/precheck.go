package utxoengine

// checkSpendGates runs the record-state gates of §4.4 items 3-6, common to
// spend and spendMulti. Pre-check item 7 (utxos bin present) is left to the
// caller since it needs the resolved list, not just a boolean.
func checkSpendGates(rec Record, ignoreConflicting, ignoreLocked bool, currentBlockHeight int64) *EngineError {
	if creating, ok := asBool(rec.Get(binCreating)); ok && creating {
		return errCreating()
	}
	if conflicting, ok := asBool(rec.Get(binConflicting)); ok && conflicting && !ignoreConflicting {
		return errConflicting()
	}
	if locked, ok := asBool(rec.Get(binLocked)); ok && locked && !ignoreLocked {
		return errLocked()
	}
	if spendingHeight, ok := asInt64(rec.Get(binSpendingHeight)); ok && spendingHeight > 0 && spendingHeight > currentBlockHeight {
		return errCoinbaseImmature(spendingHeight, currentBlockHeight)
	}
	return nil
}

func resolveUTXOList(rec Record) ([]any, *EngineError) {
	utxos, ok := asList(rec.Get(binUTXOs))
	if !ok {
		return nil, errUTXOsNotFound()
	}
	return utxos, nil
}
