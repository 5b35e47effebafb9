package utxoengine

// handleUnspend implements §4.6. Positional args: offset, utxoHash,
// currentBlockHeight, blockHeightRetention.
func handleUnspend(rec Record, host Host, args []any) map[string]any {
	offset, okOffset := asInt64(arg(args, 0))
	utxoHash, _ := asBytes(arg(args, 1))
	currentBlockHeight, okHeight := asInt64(arg(args, 2))
	blockHeightRetention, okRetention := asInt64(arg(args, 3))

	if !okOffset || !okHeight || !okRetention {
		return errorResponse(errInvalidParameter("unspend: offset, currentBlockHeight and blockHeightRetention are required integers"))
	}
	if utxoHash == nil {
		return errorResponse(errInvalidParameter("unspend: utxoHash is required"))
	}

	utxos, eerr := resolveUTXOList(rec)
	if eerr != nil {
		return errorResponse(eerr)
	}

	v, eerr := getAndValidate(utxos, offset, utxoHash)
	if eerr != nil {
		return errorResponse(eerr)
	}

	if v.spendingData != nil {
		if isFrozenSpendingData(v.spendingData) {
			return errorResponse(errFrozen())
		}
		utxos[offset] = append([]byte{}, utxoHash...)
		_ = rec.Set(binUTXOs, utxos)
		_ = rec.Set(binSpentUTXOs, asInt64Default(rec.Get(binSpentUTXOs), 0)-1)
	}
	// 32-byte unspent form: no state change, falls through to OK.

	signal, childCount := evaluateDeleteAtHeight(rec, currentBlockHeight, blockHeightRetention, nil)

	if eerr := commitOrFail(host, rec); eerr != nil {
		return errorResponse(eerr)
	}

	resp := okResponse()
	attachBlockIDs(resp, rec)
	attachSignal(resp, signal, childCount)
	return resp
}
