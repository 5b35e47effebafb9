package utxoengine

func okResponse() map[string]any {
	return map[string]any{"status": "OK"}
}

func errorMap(e *EngineError) map[string]any {
	m := map[string]any{
		"errorCode": string(e.Code),
		"message":   e.Message,
	}
	if e.SpendingData != nil {
		m["spendingData"] = spendingDataHex(e.SpendingData)
	}
	return m
}

func errorResponse(e *EngineError) map[string]any {
	m := errorMap(e)
	m["status"] = "ERROR"
	return m
}

func attachBlockIDs(resp map[string]any, rec Record) {
	if ids, ok := asList(rec.Get(binBlockIDs)); ok && len(ids) > 0 {
		resp["blockIDs"] = ids
	}
}

func attachSignal(resp map[string]any, signal string, childCount int64) {
	if signal == "" {
		return
	}
	resp["signal"] = signal
	if childCount > 0 {
		resp["childCount"] = childCount
	}
}

func commitOrFail(host Host, rec Record) *EngineError {
	if err := host.Commit(rec); err != nil {
		return errUpdateFailed(err)
	}
	return nil
}
