package utxoengine

// handleSetMined implements §4.10. Positional args: blockID, blockHeight,
// subtreeIdx, currentBlockHeight, blockHeightRetention, onLongestChain,
// unsetMined.
func handleSetMined(rec Record, host Host, args []any) map[string]any {
	blockID, okBlockID := asInt64(arg(args, 0))
	blockHeight, okBlockHeight := asInt64(arg(args, 1))
	subtreeIdx, okSubtreeIdx := asInt64(arg(args, 2))
	currentBlockHeight, okCurrent := asInt64(arg(args, 3))
	blockHeightRetention, okRetention := asInt64(arg(args, 4))
	onLongestChain, _ := asBool(arg(args, 5))
	unsetMined, _ := asBool(arg(args, 6))

	if !okBlockID || !okBlockHeight || !okSubtreeIdx || !okCurrent || !okRetention {
		return errorResponse(errInvalidParameter("setMined: blockID, blockHeight, subtreeIdx, currentBlockHeight and blockHeightRetention are required integers"))
	}

	blockIDs, _ := asList(rec.Get(binBlockIDs))
	blockHeights, _ := asList(rec.Get(binBlockHeights))
	subtreeIdxs, _ := asList(rec.Get(binSubtreeIdxs))

	if unsetMined {
		if pos := indexOfInt64(blockIDs, blockID); pos >= 0 {
			blockIDs = removeAt(blockIDs, pos)
			blockHeights = removeAt(blockHeights, pos)
			subtreeIdxs = removeAt(subtreeIdxs, pos)
		}
	} else if indexOfInt64(blockIDs, blockID) < 0 {
		blockIDs = append(blockIDs, blockID)
		blockHeights = append(blockHeights, blockHeight)
		subtreeIdxs = append(subtreeIdxs, subtreeIdx)
	}

	blockCount := int64(len(blockIDs))
	switch {
	case blockCount > 0 && onLongestChain:
		_ = rec.Set(binUnminedSince, nil)
	case blockCount == 0:
		_ = rec.Set(binUnminedSince, currentBlockHeight)
	}

	if locked, ok := asBool(rec.Get(binLocked)); ok && locked {
		_ = rec.Set(binLocked, false)
	}
	if !isNilOrAbsent(rec.Get(binCreating)) {
		_ = rec.Set(binCreating, nil)
	}

	_ = rec.Set(binBlockIDs, blockIDs)
	_ = rec.Set(binBlockHeights, blockHeights)
	_ = rec.Set(binSubtreeIdxs, subtreeIdxs)

	signal, childCount := evaluateDeleteAtHeight(rec, currentBlockHeight, blockHeightRetention, &dahOverride{
		blockCountKnown: true,
		blockCount:      blockCount,
	})

	if eerr := commitOrFail(host, rec); eerr != nil {
		return errorResponse(eerr)
	}

	resp := okResponse()
	attachBlockIDs(resp, rec)
	attachSignal(resp, signal, childCount)
	return resp
}

func indexOfInt64(list []any, target int64) int {
	for i, v := range list {
		if n, ok := asInt64(v); ok && n == target {
			return i
		}
	}
	return -1
}

func removeAt(list []any, pos int) []any {
	out := make([]any, 0, len(list)-1)
	out = append(out, list[:pos]...)
	out = append(out, list[pos+1:]...)
	return out
}
