package utxoengine

// handleSpendMulti implements §4.5. Positional args: spends (list of
// per-item maps), ignoreConflicting, ignoreLocked, currentBlockHeight,
// blockHeightRetention.
func handleSpendMulti(rec Record, host Host, args []any) map[string]any {
	spendsRaw, ok := asList(arg(args, 0))
	if !ok {
		return errorResponse(errInvalidParameter("spendMulti: spends must be a list"))
	}
	ignoreConflicting, _ := asBool(arg(args, 1))
	ignoreLocked, _ := asBool(arg(args, 2))
	currentBlockHeight, okHeight := asInt64(arg(args, 3))
	blockHeightRetention, okRetention := asInt64(arg(args, 4))
	if !okHeight || !okRetention {
		return errorResponse(errInvalidParameter("spendMulti: currentBlockHeight and blockHeightRetention are required integers"))
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

	errs := map[any]any{}
	okCount := int64(0)

	for batchIdx, item := range spendsRaw {
		m, ok := asGenericMap(item)
		if !ok {
			continue
		}
		offset, okOffset := asInt64(m["offset"])
		utxoHash, okHash := asBytes(m["utxoHash"])
		spendingData, okData := asBytes(m["spendingData"])
		if !okOffset || !okHash || !okData {
			continue
		}

		idx := any(int64(batchIdx))
		if rawIdx, present := m["idx"]; present {
			if n, ok := asInt64(rawIdx); ok {
				idx = n
			}
		}

		outcome, spendErr := spendSingleUTXO(utxos, deletedChildren, utxoSpendableIn, offset, utxoHash, spendingData, currentBlockHeight)
		if spendErr != nil {
			errs[idx] = errorMap(spendErr)
			continue
		}
		if outcome == spendOK {
			okCount++
		}
	}

	_ = rec.Set(binUTXOs, utxos)
	_ = rec.Set(binSpentUTXOs, asInt64Default(rec.Get(binSpentUTXOs), 0)+okCount)

	signal, childCount := evaluateDeleteAtHeight(rec, currentBlockHeight, blockHeightRetention, nil)

	if eerr := commitOrFail(host, rec); eerr != nil {
		return errorResponse(eerr)
	}

	if len(errs) > 0 {
		resp := map[string]any{"status": "ERROR", "errors": errs}
		attachBlockIDs(resp, rec)
		attachSignal(resp, signal, childCount)
		return resp
	}

	resp := okResponse()
	attachBlockIDs(resp, rec)
	attachSignal(resp, signal, childCount)
	return resp
}
