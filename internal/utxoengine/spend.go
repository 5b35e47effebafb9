package utxoengine

// handleSpend implements §4.4. Positional args: offset, utxoHash,
// spendingData, ignoreConflicting, ignoreLocked, currentBlockHeight,
// blockHeightRetention.
func handleSpend(rec Record, host Host, args []any) map[string]any {
	offset, okOffset := asInt64(arg(args, 0))
	utxoHash, _ := asBytes(arg(args, 1))
	spendingData, _ := asBytes(arg(args, 2))
	ignoreConflicting, _ := asBool(arg(args, 3))
	ignoreLocked, _ := asBool(arg(args, 4))
	currentBlockHeight, okHeight := asInt64(arg(args, 5))
	blockHeightRetention, okRetention := asInt64(arg(args, 6))

	if !okOffset || !okHeight || !okRetention {
		return errorResponse(errInvalidParameter("spend: offset, currentBlockHeight and blockHeightRetention are required integers"))
	}
	if utxoHash == nil || spendingData == nil {
		return errorResponse(errInvalidParameter("spend: utxoHash and spendingData are required"))
	}

	if eerr := checkSpendGates(rec, ignoreConflicting, ignoreLocked, currentBlockHeight); eerr != nil {
		return errorResponse(eerr)
	}

	utxos, eerr := resolveUTXOList(rec)
	if eerr != nil {
		return errorResponse(eerr)
	}

	deletedChildren, _ := asGenericMap(rec.Get(binDeletedChildren))
	utxoSpendableIn, _ := asGenericMap(rec.Get(binUTXOSpendableIn))

	outcome, spendErr := spendSingleUTXO(utxos, deletedChildren, utxoSpendableIn, offset, utxoHash, spendingData, currentBlockHeight)
	if spendErr == nil {
		_ = rec.Set(binUTXOs, utxos)
		if outcome == spendOK {
			_ = rec.Set(binSpentUTXOs, asInt64Default(rec.Get(binSpentUTXOs), 0)+1)
		}
	}

	signal, childCount := evaluateDeleteAtHeight(rec, currentBlockHeight, blockHeightRetention, nil)

	if eerr := commitOrFail(host, rec); eerr != nil {
		return errorResponse(eerr)
	}

	if spendErr != nil {
		resp := map[string]any{
			"status": "ERROR",
			"errors": map[any]any{int64(0): errorMap(spendErr)},
		}
		attachBlockIDs(resp, rec)
		attachSignal(resp, signal, childCount)
		return resp
	}

	resp := okResponse()
	attachBlockIDs(resp, rec)
	attachSignal(resp, signal, childCount)
	return resp
}

// arg returns args[i], or nil if the argument list is too short.
func arg(args []any, i int) any {
	if i < 0 || i >= len(args) {
		return nil
	}
	return args[i]
}
