package utxoengine

// dahOverride lets setMined pass in the blockCount/onLongestChain it just
// computed from its own list maintenance instead of having the evaluator
// re-read blockIDs/unminedSince off the record (§4.10's inlining note).
// Leaving a field unset ("Known" false) falls back to reading the bin.
type dahOverride struct {
	blockCountKnown     bool
	blockCount          int64
	onLongestChainKnown bool
	onLongestChain      bool
}

func asInt64Default(v any, def int64) int64 {
	if n, ok := asInt64(v); ok {
		return n
	}
	return def
}

// evaluateDeleteAtHeight implements §4.9 verbatim, optionally substituting
// ov's known block-count/longest-chain state for the master-record path.
func evaluateDeleteAtHeight(rec Record, currentBlockHeight, blockHeightRetention int64, ov *dahOverride) (string, int64) {
	if blockHeightRetention == 0 {
		return "", 0
	}
	if !isNilOrAbsent(rec.Get(binPreserveUntil)) {
		return "", 0
	}
	newDeleteHeight := currentBlockHeight + blockHeightRetention

	if conflicting, ok := asBool(rec.Get(binConflicting)); ok && conflicting {
		if isNilOrAbsent(rec.Get(binDeleteAtHeight)) {
			_ = rec.Set(binDeleteAtHeight, newDeleteHeight)
			total, isInt := asInt64(rec.Get(binTotalExtraRecs))
			if !isNilOrAbsent(rec.Get(binExternal)) && isInt {
				return SignalDAHSet, total
			}
		}
		return "", 0
	}

	totalRaw := rec.Get(binTotalExtraRecs)
	total, isMaster := asInt64(totalRaw)
	if isNilOrAbsent(totalRaw) || !isMaster {
		spentUTXOs := asInt64Default(rec.Get(binSpentUTXOs), 0)
		recordUTXOs := asInt64Default(rec.Get(binRecordUTXOs), 0)
		currentState := SignalNotAllSpent
		if spentUTXOs == recordUTXOs {
			currentState = SignalAllSpent
		}
		lastState := SignalNotAllSpent
		if s, ok := rec.Get(binLastSpentState).(string); ok && s != "" {
			lastState = s
		}
		if currentState != lastState {
			_ = rec.Set(binLastSpentState, currentState)
			return currentState, 0
		}
		return "", 0
	}

	spentExtraRecs := asInt64Default(rec.Get(binSpentExtraRecs), 0)
	spentUTXOs := asInt64Default(rec.Get(binSpentUTXOs), 0)
	recordUTXOs := asInt64Default(rec.Get(binRecordUTXOs), 0)
	allSpent := total == spentExtraRecs && spentUTXOs == recordUTXOs

	var hasBlockIDs bool
	if ov != nil && ov.blockCountKnown {
		hasBlockIDs = ov.blockCount > 0
	} else {
		blockIDs, _ := asList(rec.Get(binBlockIDs))
		hasBlockIDs = len(blockIDs) > 0
	}

	var isOnLongestChain bool
	if ov != nil && ov.onLongestChainKnown {
		isOnLongestChain = ov.onLongestChain
	} else {
		isOnLongestChain = isNilOrAbsent(rec.Get(binUnminedSince))
	}

	if allSpent && hasBlockIDs && isOnLongestChain {
		existing, existingOK := asInt64(rec.Get(binDeleteAtHeight))
		if !existingOK || existing < newDeleteHeight {
			_ = rec.Set(binDeleteAtHeight, newDeleteHeight)
			if !isNilOrAbsent(rec.Get(binExternal)) {
				return SignalDAHSet, total
			}
		}
		return "", total
	}

	if !isNilOrAbsent(rec.Get(binDeleteAtHeight)) {
		_ = rec.Set(binDeleteAtHeight, nil)
		if !isNilOrAbsent(rec.Get(binExternal)) {
			return SignalDAHUnset, total
		}
	}
	return "", total
}
