package utxoengine

// handleReassign implements §4.7's reassign. Positional args: offset,
// utxoHash, newUtxoHash, blockHeight, spendableAfter.
func handleReassign(rec Record, host Host, args []any) map[string]any {
	offset, okOffset := asInt64(arg(args, 0))
	utxoHash, _ := asBytes(arg(args, 1))
	newUTXOHash, _ := asBytes(arg(args, 2))
	blockHeight, okBlockHeight := asInt64(arg(args, 3))
	spendableAfter, okSpendableAfter := asInt64(arg(args, 4))

	if !okOffset || utxoHash == nil || newUTXOHash == nil || !okBlockHeight || !okSpendableAfter {
		return errorResponse(errInvalidParameter("reassign: offset, utxoHash, newUtxoHash, blockHeight and spendableAfter are required"))
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

	utxos[offset] = append([]byte{}, newUTXOHash...)
	_ = rec.Set(binUTXOs, utxos)

	reassignments, _ := asList(rec.Get(binReassignments))
	entry := map[any]any{
		"offset":      offset,
		"utxoHash":    utxoHash,
		"newUtxoHash": newUTXOHash,
		"blockHeight": blockHeight,
	}
	reassignments = append(reassignments, entry)
	_ = rec.Set(binReassignments, reassignments)

	utxoSpendableIn, ok := asGenericMap(rec.Get(binUTXOSpendableIn))
	if !ok {
		utxoSpendableIn = map[any]any{}
	}
	setIntKey(utxoSpendableIn, offset, blockHeight+spendableAfter)
	_ = rec.Set(binUTXOSpendableIn, utxoSpendableIn)

	_ = rec.Set(binRecordUTXOs, asInt64Default(rec.Get(binRecordUTXOs), 0)+1)

	if eerr := commitOrFail(host, rec); eerr != nil {
		return errorResponse(eerr)
	}

	resp := okResponse()
	attachBlockIDs(resp, rec)
	return resp
}
