package utxoengine

// handleSetConflicting implements §4.11's setConflicting. Positional args:
// setValue, currentBlockHeight, blockHeightRetention.
func handleSetConflicting(rec Record, host Host, args []any) map[string]any {
	setValue, okValue := asBool(arg(args, 0))
	currentBlockHeight, okHeight := asInt64(arg(args, 1))
	blockHeightRetention, okRetention := asInt64(arg(args, 2))
	if !okValue || !okHeight || !okRetention {
		return errorResponse(errInvalidParameter("setConflicting: setValue, currentBlockHeight and blockHeightRetention are required"))
	}

	_ = rec.Set(binConflicting, setValue)

	signal, childCount := evaluateDeleteAtHeight(rec, currentBlockHeight, blockHeightRetention, nil)

	if eerr := commitOrFail(host, rec); eerr != nil {
		return errorResponse(eerr)
	}

	resp := okResponse()
	attachBlockIDs(resp, rec)
	attachSignal(resp, signal, childCount)
	return resp
}

// handlePreserveUntil implements §4.11's preserveUntil. Positional args:
// blockHeight.
func handlePreserveUntil(rec Record, host Host, args []any) map[string]any {
	blockHeight, ok := asInt64(arg(args, 0))
	if !ok {
		return errorResponse(errInvalidParameter("preserveUntil: blockHeight is required"))
	}

	_ = rec.Set(binDeleteAtHeight, nil)
	_ = rec.Set(binPreserveUntil, blockHeight)

	if eerr := commitOrFail(host, rec); eerr != nil {
		return errorResponse(eerr)
	}

	resp := okResponse()
	attachBlockIDs(resp, rec)
	if !isNilOrAbsent(rec.Get(binExternal)) {
		resp["signal"] = SignalPreserve
	}
	return resp
}

// handleSetLocked implements §4.11's setLocked. Positional args: setValue.
func handleSetLocked(rec Record, host Host, args []any) map[string]any {
	setValue, ok := asBool(arg(args, 0))
	if !ok {
		return errorResponse(errInvalidParameter("setLocked: setValue is required"))
	}

	_ = rec.Set(binLocked, setValue)
	if setValue {
		_ = rec.Set(binDeleteAtHeight, nil)
	}

	if eerr := commitOrFail(host, rec); eerr != nil {
		return errorResponse(eerr)
	}

	resp := okResponse()
	attachBlockIDs(resp, rec)
	resp["childCount"] = asInt64Default(rec.Get(binTotalExtraRecs), 0)
	return resp
}

// handleIncrementSpentExtraRecs implements §4.11's
// incrementSpentExtraRecs. Positional args: inc, currentBlockHeight,
// blockHeightRetention.
func handleIncrementSpentExtraRecs(rec Record, host Host, args []any) map[string]any {
	inc, okInc := asInt64(arg(args, 0))
	currentBlockHeight, okHeight := asInt64(arg(args, 1))
	blockHeightRetention, okRetention := asInt64(arg(args, 2))
	if !okInc || !okHeight || !okRetention {
		return errorResponse(errInvalidParameter("incrementSpentExtraRecs: inc, currentBlockHeight and blockHeightRetention are required"))
	}

	total, isMaster := asInt64(rec.Get(binTotalExtraRecs))
	if !isMaster {
		return errorResponse(errInvalidParameter("incrementSpentExtraRecs: totalExtraRecs must be present and an integer"))
	}

	newCount := asInt64Default(rec.Get(binSpentExtraRecs), 0) + inc
	if newCount < 0 || newCount > total {
		return errorResponse(errInvalidParameter("incrementSpentExtraRecs: %d would take spentExtraRecs out of range [0, %d]", newCount, total))
	}
	_ = rec.Set(binSpentExtraRecs, newCount)

	signal, childCount := evaluateDeleteAtHeight(rec, currentBlockHeight, blockHeightRetention, nil)

	if eerr := commitOrFail(host, rec); eerr != nil {
		return errorResponse(eerr)
	}

	resp := okResponse()
	attachBlockIDs(resp, rec)
	attachSignal(resp, signal, childCount)
	return resp
}

// handleSetDeleteAtHeight implements §4.11's setDeleteAtHeight. Positional
// args: currentBlockHeight, blockHeightRetention.
func handleSetDeleteAtHeight(rec Record, host Host, args []any) map[string]any {
	currentBlockHeight, okHeight := asInt64(arg(args, 0))
	blockHeightRetention, okRetention := asInt64(arg(args, 1))
	if !okHeight || !okRetention {
		return errorResponse(errInvalidParameter("setDeleteAtHeight: currentBlockHeight and blockHeightRetention are required"))
	}

	signal, childCount := evaluateDeleteAtHeight(rec, currentBlockHeight, blockHeightRetention, nil)

	if eerr := commitOrFail(host, rec); eerr != nil {
		return errorResponse(eerr)
	}

	resp := okResponse()
	attachBlockIDs(resp, rec)
	attachSignal(resp, signal, childCount)
	return resp
}
