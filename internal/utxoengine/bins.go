package utxoengine

// Bin names recognised by the engine. Every other bin on a record is left
// untouched and is never read.
const (
	binUTXOs               = "utxos"
	binSpentUTXOs          = "spentUtxos"
	binRecordUTXOs         = "recordUtxos"
	binUTXOSpendableIn     = "utxoSpendableIn"
	binDeletedChildren     = "deletedChildren"
	binCreating            = "creating"
	binConflicting         = "conflicting"
	binLocked              = "locked"
	binSpendingHeight      = "spendingHeight"
	binBlockIDs            = "blockIDs"
	binBlockHeights        = "blockHeights"
	binSubtreeIdxs         = "subtreeIdxs"
	binUnminedSince        = "unminedSince"
	binExternal            = "external"
	binTotalExtraRecs      = "totalExtraRecs"
	binSpentExtraRecs      = "spentExtraRecs"
	binDeleteAtHeight      = "deleteAtHeight"
	binPreserveUntil       = "preserveUntil"
	binReassignments       = "reassignments"
	binLastSpentState      = "lastSpentState"
)

// Signal strings the DAH evaluator and a handful of handlers may emit.
const (
	SignalDAHSet      = "DAHSET"
	SignalDAHUnset    = "DAHUNSET"
	SignalAllSpent    = "ALLSPENT"
	SignalNotAllSpent = "NOTALLSPENT"
	SignalPreserve    = "PRESERVE"
)
