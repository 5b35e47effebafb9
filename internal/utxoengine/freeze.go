package utxoengine

// handleFreeze implements §4.7's freeze. Positional args: offset, utxoHash.
func handleFreeze(rec Record, host Host, args []any) map[string]any {
	offset, okOffset := asInt64(arg(args, 0))
	utxoHash, _ := asBytes(arg(args, 1))
	if !okOffset || utxoHash == nil {
		return errorResponse(errInvalidParameter("freeze: offset and utxoHash are required"))
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
			return errorResponse(errAlreadyFrozen())
		}
		return errorResponse(errSpent(v.spendingData))
	}

	newUTXO := make([]byte, 0, spentLen)
	newUTXO = append(newUTXO, utxoHash...)
	newUTXO = append(newUTXO, frozenPattern...)
	utxos[offset] = newUTXO
	_ = rec.Set(binUTXOs, utxos)

	if eerr := commitOrFail(host, rec); eerr != nil {
		return errorResponse(eerr)
	}

	resp := okResponse()
	attachBlockIDs(resp, rec)
	return resp
}

// handleUnfreeze implements §4.7's unfreeze. Positional args: offset,
// utxoHash.
func handleUnfreeze(rec Record, host Host, args []any) map[string]any {
	offset, okOffset := asInt64(arg(args, 0))
	utxoHash, _ := asBytes(arg(args, 1))
	if !okOffset || utxoHash == nil {
		return errorResponse(errInvalidParameter("unfreeze: offset and utxoHash are required"))
	}

	utxos, eerr := resolveUTXOList(rec)
	if eerr != nil {
		return errorResponse(eerr)
	}

	v, eerr := getAndValidate(utxos, offset, utxoHash)
	if eerr != nil {
		return errorResponse(eerr)
	}

	if v.spendingData == nil || !isFrozenSpendingData(v.spendingData) {
		return errorResponse(errUTXONotFrozen())
	}

	utxos[offset] = append([]byte{}, utxoHash...)
	_ = rec.Set(binUTXOs, utxos)

	if eerr := commitOrFail(host, rec); eerr != nil {
		return errorResponse(eerr)
	}

	resp := okResponse()
	attachBlockIDs(resp, rec)
	return resp
}
